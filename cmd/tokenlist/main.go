package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type cli struct {
	verbose bool
	color   string
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "tokenlist",
		Short: "Inspect, match and merge space-separated attribute values",
		Long: `tokenlist normalizes class-like attribute values and works on element
documents (YAML or TOML): matching attribute patterns against each element
and coalescing neighbouring elements the way a view reconciler would.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.setColor(); err != nil {
				return err
			}
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.color, "color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(c.normalizeCmd())
	root.AddCommand(c.matchCmd())
	root.AddCommand(c.mergeCmd())
	root.AddCommand(c.similarCmd())
	return root
}

func (c *cli) setColor() error {
	switch c.color {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color %q (want auto, on or off)", c.color)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
