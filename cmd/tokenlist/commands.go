package main

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/viktordanov/tokenlist"
	"github.com/viktordanov/tokenlist/internal/fixture"
)

func (c *cli) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize VALUE...",
		Short: "Print the canonical form of each attribute value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				ts := tokenlist.Parse(arg)
				c.logger.Debug("Normalized value", zap.String("input", arg), zap.Int("tokens", ts.Size()))
				fmt.Fprintln(cmd.OutOrStdout(), ts.String())
			}
			return nil
		},
	}
}

func (c *cli) matchCmd() *cobra.Command {
	var (
		key   string
		all   bool
		exact string
		expr  string
	)
	cmd := &cobra.Command{
		Use:   "match FILE",
		Short: "Match an attribute pattern against every element of a document",
		Example: `  tokenlist match doc.yaml --exact "bold italic"
  tokenlist match doc.yaml --key title --regexp '^note'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pattern tokenlist.Pattern
			switch {
			case expr != "":
				re, err := regexp.Compile(expr)
				if err != nil {
					return fmt.Errorf("invalid --regexp: %w", err)
				}
				pattern = tokenlist.MatchRegexp(re)
			case cmd.Flags().Changed("exact"):
				pattern = tokenlist.MatchExact(exact)
			default:
				pattern = tokenlist.MatchAll()
			}

			elements, err := fixture.Load(args[0])
			if err != nil {
				return err
			}
			c.logger.Debug("Matching elements",
				zap.String("file", args[0]),
				zap.String("key", key),
				zap.Stringer("pattern", pattern),
				zap.Int("elements", len(elements)))

			out := cmd.OutOrStdout()
			hit := color.New(color.FgGreen)
			miss := color.New(color.FgRed)
			for _, el := range elements {
				pairs, ok := el.Attrs.Match(tokenlist.AttributePattern{Key: key, Pattern: pattern})
				if !ok {
					fmt.Fprintf(out, "%s: %s\n", el, miss.Sprint("no match"))
					continue
				}
				parts := make([]string, 0, len(pairs))
				for _, p := range pairs {
					parts = append(parts, p.Key+"="+string(p.Token))
				}
				fmt.Fprintf(out, "%s: %s\n", el, hit.Sprint(strings.Join(parts, " ")))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", tokenlist.ClassKey, "attribute to match")
	cmd.Flags().BoolVar(&all, "all", false, "match every token (default)")
	cmd.Flags().StringVar(&exact, "exact", "", "require all of these space-separated tokens")
	cmd.Flags().StringVar(&expr, "regexp", "", "match tokens against a regular expression")
	cmd.MarkFlagsMutuallyExclusive("all", "exact", "regexp")
	return cmd
}

func (c *cli) mergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge FILE",
		Short: "Coalesce neighbouring mergeable elements and print the result as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := fixture.Load(args[0])
			if err != nil {
				return err
			}
			merged := tokenlist.Coalesce(elements)
			c.logger.Debug("Coalesced elements",
				zap.String("file", args[0]),
				zap.Int("before", len(elements)),
				zap.Int("after", len(merged)))
			return fixture.Encode(cmd.OutOrStdout(), merged)
		},
	}
}

func (c *cli) similarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "similar FILE",
		Short: "Compare each element of a document with its predecessor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := fixture.Load(args[0])
			if err != nil {
				return err
			}
			if len(elements) < 2 {
				return errors.New("need at least two elements to compare")
			}
			out := cmd.OutOrStdout()
			for i := 1; i < len(elements); i++ {
				prev, cur := elements[i-1], elements[i]
				fmt.Fprintf(out, "%s %s: similar=%t mergeable=%t\n",
					prev, cur, prev.IsSimilar(cur), prev.CanMergeFrom(cur))
			}
			return nil
		},
	}
}
