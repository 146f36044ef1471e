package tokenlist

import (
	"regexp"
	"strings"
)

type patternKind uint8

const (
	kindAll patternKind = iota
	kindExact
	kindPredicate
)

// Pattern selects tokens of an attribute. The zero Pattern matches everything.
type Pattern struct {
	kind  patternKind
	exact string
	pred  func(string) bool
}

// MatchAll matches every token, including none at all.
func MatchAll() Pattern {
	return Pattern{kind: kindAll}
}

// MatchExact matches when every whitespace-separated part of value is
// present. A partial hit is a failed match.
func MatchExact(value string) Pattern {
	return Pattern{kind: kindExact, exact: value}
}

// MatchPattern matches the tokens accepted by pred. At least one token must
// be accepted.
func MatchPattern(pred func(string) bool) Pattern {
	return Pattern{kind: kindPredicate, pred: pred}
}

func MatchRegexp(re *regexp.Regexp) Pattern {
	return MatchPattern(re.MatchString)
}

func (p Pattern) String() string {
	switch p.kind {
	case kindExact:
		return "exact(" + p.exact + ")"
	case kindPredicate:
		return "pattern"
	default:
		return "all"
	}
}

// Pair is a single matched (attribute key, token) result.
type Pair struct {
	Key   string
	Token Token
}

// MatchTokens reports the tokens of ts selected by p, paired with key.
// ok is false when the pattern is not satisfied; a satisfied MatchAll on an
// empty set returns an empty, non-nil slice.
func (ts *TokenSet) MatchTokens(key string, p Pattern) (pairs []Pair, ok bool) {
	switch p.kind {
	case kindExact:
		parts := strings.Fields(p.exact)
		if len(parts) == 0 {
			return nil, false
		}
		pairs = make([]Pair, 0, len(parts))
		for _, part := range parts {
			if !ts.Has(Token(part)) {
				return nil, false
			}
			pairs = append(pairs, Pair{Key: key, Token: Token(part)})
		}
		return pairs, true

	case kindPredicate:
		for _, t := range ts.order {
			if p.pred(string(t)) {
				pairs = append(pairs, Pair{Key: key, Token: t})
			}
		}
		if len(pairs) == 0 {
			return nil, false
		}
		return pairs, true

	default:
		pairs = make([]Pair, 0, len(ts.order))
		for _, t := range ts.order {
			pairs = append(pairs, Pair{Key: key, Token: t})
		}
		return pairs, true
	}
}

// matchValue applies p to a plain, non-tokenized attribute value.
func (p Pattern) matchValue(value string) bool {
	switch p.kind {
	case kindExact:
		return value == p.exact
	case kindPredicate:
		return p.pred(value)
	default:
		return true
	}
}
