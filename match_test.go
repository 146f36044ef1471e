package tokenlist

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchTokens(t *testing.T) {
	tests := []struct {
		name    string
		set     string
		pattern Pattern
		want    []Pair
		ok      bool
	}{
		{
			name:    "exact all present",
			set:     "a b",
			pattern: MatchExact("a b"),
			want:    []Pair{{"class", "a"}, {"class", "b"}},
			ok:      true,
		},
		{
			name:    "exact partial fails",
			set:     "a",
			pattern: MatchExact("a b"),
			ok:      false,
		},
		{
			name:    "exact follows pattern order",
			set:     "a b c",
			pattern: MatchExact("c  a"),
			want:    []Pair{{"class", "c"}, {"class", "a"}},
			ok:      true,
		},
		{
			name:    "exact empty pattern fails",
			set:     "a",
			pattern: MatchExact(" "),
			ok:      false,
		},
		{
			name:    "all on empty set",
			set:     "",
			pattern: MatchAll(),
			want:    []Pair{},
			ok:      true,
		},
		{
			name:    "all",
			set:     "x y",
			pattern: MatchAll(),
			want:    []Pair{{"class", "x"}, {"class", "y"}},
			ok:      true,
		},
		{
			name:    "zero pattern matches all",
			set:     "x",
			pattern: Pattern{},
			want:    []Pair{{"class", "x"}},
			ok:      true,
		},
		{
			name:    "regexp subset",
			set:     "text-bold text-red border",
			pattern: MatchRegexp(regexp.MustCompile(`^text-`)),
			want:    []Pair{{"class", "text-bold"}, {"class", "text-red"}},
			ok:      true,
		},
		{
			name:    "regexp none",
			set:     "border",
			pattern: MatchRegexp(regexp.MustCompile(`^text-`)),
			ok:      false,
		},
		{
			name: "predicate",
			set:  "a bb ccc",
			pattern: MatchPattern(func(s string) bool {
				return len(s) > 1
			}),
			want: []Pair{{"class", "bb"}, {"class", "ccc"}},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.set).MatchTokens("class", tt.pattern)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchAllEmptyIsNotNoMatch(t *testing.T) {
	pairs, ok := New().MatchTokens("class", MatchAll())
	assert.True(t, ok)
	assert.NotNil(t, pairs)
	assert.Empty(t, pairs)
}

func TestPatternString(t *testing.T) {
	assert.Equal(t, "all", MatchAll().String())
	assert.Equal(t, "exact(a b)", MatchExact("a b").String())
	assert.Equal(t, "pattern", MatchPattern(func(string) bool { return true }).String())
}

func TestPatternMatchValue(t *testing.T) {
	assert.True(t, MatchAll().matchValue(""))
	assert.True(t, MatchExact("x y").matchValue("x y"))
	assert.False(t, MatchExact("x y").matchValue("x"))
	assert.True(t, MatchPattern(func(s string) bool { return strings.HasPrefix(s, "n") }).matchValue("note"))
}
