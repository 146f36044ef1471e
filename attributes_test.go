package tokenlist

import (
	"errors"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attrs(kv ...string) *Attributes {
	a := NewAttributes()
	for i := 0; i+1 < len(kv); i += 2 {
		a.Set(kv[i], kv[i+1])
	}
	return a
}

func TestAttributesSetGet(t *testing.T) {
	a := attrs("title", "note", "class", " b  a b", "href", "#")

	v, ok := a.Get("class")
	assert.True(t, ok)
	assert.Equal(t, "b a", v)
	assert.Equal(t, []string{"title", "class", "href"}, a.Keys())
	assert.Equal(t, 3, a.Len())

	a.RemoveClass("a", "b")
	assert.False(t, a.Has("class"))
	assert.Equal(t, []string{"title", "href"}, a.Keys())

	a.AddClass("z")
	assert.Equal(t, []string{"title", "class", "href"}, a.Keys())

	a.Remove("title")
	_, ok = a.Get("title")
	assert.False(t, ok)
	assert.Equal(t, []string{"class", "href"}, a.Keys())
}

func TestAttributesSimilarAndMerge(t *testing.T) {
	a := attrs("class", "a b", "title", "x")
	b := attrs("title", "x", "class", "b a")
	c := attrs("class", "c", "href", "#")
	conflict := attrs("title", "y")

	assert.True(t, a.IsSimilar(b))
	assert.False(t, a.IsSimilar(c))
	assert.True(t, a.CanMergeFrom(c))
	assert.False(t, a.CanMergeFrom(conflict))

	a.MergeFrom(c)
	got := map[string]string{}
	for _, k := range a.Keys() {
		got[k], _ = a.Get(k)
	}
	want := map[string]string{"class": "a b c", "title": "x", "href": "#"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merged attributes mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "c", c.Classes().String())
	assert.True(t, a.IsMatching(c))
	assert.False(t, c.IsMatching(a))
}

func TestAttributesMergeAddsClassKey(t *testing.T) {
	a := attrs("title", "x")
	a.MergeFrom(attrs("class", "k"))
	assert.Equal(t, []string{"title", "class"}, a.Keys())
}

func TestAttributesClone(t *testing.T) {
	a := attrs("class", "a", "title", "x")
	c := a.Clone()
	c.Set("title", "y")
	c.AddClass("b")

	v, _ := a.Get("title")
	assert.Equal(t, "x", v)
	assert.Equal(t, "a", a.Classes().String())
}

func TestAttributesMatch(t *testing.T) {
	a := attrs("class", "a b", "title", "note")

	pairs, ok := a.Match(
		AttributePattern{Key: "class", Pattern: MatchExact("a")},
		AttributePattern{Key: "title", Pattern: MatchRegexp(regexp.MustCompile(`^no`))},
	)
	require.True(t, ok)
	assert.Equal(t, []Pair{{"class", "a"}, {"title", "note"}}, pairs)

	_, ok = a.Match(AttributePattern{Key: "href", Pattern: MatchAll()})
	assert.False(t, ok)

	_, ok = a.Match(
		AttributePattern{Key: "title", Pattern: MatchAll()},
		AttributePattern{Key: "class", Pattern: MatchExact("a c")},
	)
	assert.False(t, ok)

	pairs, ok = a.Match()
	assert.True(t, ok)
	assert.Empty(t, pairs)
}

func TestElementCoalesce(t *testing.T) {
	span := func(kv ...string) *Element {
		el := NewElement("span")
		el.Attrs = attrs(kv...)
		return el
	}
	bold := NewElement("b")

	in := []*Element{
		span("class", "a"),
		span("class", "b", "title", "x"),
		span("title", "y"),
		bold,
		span(),
	}
	out := Coalesce(in)

	require.Len(t, out, 4)
	assert.Equal(t, `<span class="a b" title="x">`, out[0].String())
	assert.Equal(t, `<span title="y">`, out[1].String())
	assert.Equal(t, "<b>", out[2].String())
	assert.Equal(t, "<span>", out[3].String())
	assert.Equal(t, `<span class="a">`, in[0].String(), "inputs untouched")
}

func TestElementMergeFrom(t *testing.T) {
	a := NewElement("span")
	b := NewElement("span")
	b.Priority = 5

	assert.False(t, a.IsSimilar(b))
	err := a.MergeFrom(b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCannotMerge))

	b.Priority = DefaultPriority
	assert.True(t, a.IsSimilar(b))
	require.NoError(t, a.MergeFrom(b))

	c := a.Clone()
	c.Attrs.Set("id", "1")
	assert.False(t, a.Attrs.Has("id"))
}
