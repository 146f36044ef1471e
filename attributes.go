package tokenlist

import (
	"maps"
	"slices"
)

// ClassKey is the attribute whose value is kept as a TokenSet.
const ClassKey = "class"

// Attributes owns the attributes of one element. The class attribute is held
// as a TokenSet; every other attribute is an opaque string.
type Attributes struct {
	classes *TokenSet
	values  map[string]string
	order   []string
}

func NewAttributes() *Attributes {
	return &Attributes{
		classes: New(),
		values:  make(map[string]string),
	}
}

func (a *Attributes) Classes() *TokenSet {
	return a.classes
}

func (a *Attributes) Set(key, value string) {
	if key == ClassKey {
		a.classes.SetTo(value)
	} else {
		a.values[key] = value
	}
	a.touch(key)
}

func (a *Attributes) Get(key string) (string, bool) {
	if key == ClassKey {
		return a.classes.String(), !a.classes.IsEmpty()
	}
	v, ok := a.values[key]
	return v, ok
}

func (a *Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

func (a *Attributes) Remove(key string) {
	if key == ClassKey {
		a.classes.Clear()
	} else {
		delete(a.values, key)
	}
	a.order = slices.DeleteFunc(a.order, func(k string) bool { return k == key })
}

func (a *Attributes) AddClass(tokens ...Token) {
	a.classes.Add(tokens...)
	a.touch(ClassKey)
}

func (a *Attributes) RemoveClass(tokens ...Token) {
	a.classes.Remove(tokens...)
}

// Keys lists the present attributes in the order they were first set. The
// class key is omitted while the class set is empty.
func (a *Attributes) Keys() []string {
	keys := make([]string, 0, len(a.order))
	for _, k := range a.order {
		if k == ClassKey && a.classes.IsEmpty() {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

func (a *Attributes) Len() int {
	return len(a.Keys())
}

func (a *Attributes) touch(key string) {
	if !slices.Contains(a.order, key) {
		a.order = append(a.order, key)
	}
}

// IsSimilar reports whether a and other carry the same attributes with the
// same values.
func (a *Attributes) IsSimilar(other *Attributes) bool {
	return maps.Equal(a.values, other.values) && a.classes.IsSimilar(other.classes)
}

// IsMatching reports whether every attribute of other is present in a with
// the same value, and every class of other is present in a.
func (a *Attributes) IsMatching(other *Attributes) bool {
	for k, v := range other.values {
		if mine, ok := a.values[k]; !ok || mine != v {
			return false
		}
	}
	return a.classes.IsMatching(other.classes)
}

// CanMergeFrom reports whether other can be folded into a: no attribute may
// be set to conflicting values on both sides.
func (a *Attributes) CanMergeFrom(other *Attributes) bool {
	for k, v := range other.values {
		if mine, ok := a.values[k]; ok && mine != v {
			return false
		}
	}
	return a.classes.CanMergeFrom(other.classes)
}

// MergeFrom copies the attributes of other that a lacks and unions the class
// sets. Callers check CanMergeFrom first.
func (a *Attributes) MergeFrom(other *Attributes) {
	for _, k := range other.order {
		if k == ClassKey {
			continue
		}
		if _, ok := a.values[k]; ok {
			continue
		}
		if v, ok := other.values[k]; ok {
			a.values[k] = v
			a.touch(k)
		}
	}
	if mergeValues(a.classes, other.classes) && !a.classes.IsEmpty() {
		a.touch(ClassKey)
	}
}

func (a *Attributes) Clone() *Attributes {
	return &Attributes{
		classes: a.classes.Clone(),
		values:  maps.Clone(a.values),
		order:   slices.Clone(a.order),
	}
}

// AttributePattern pairs an attribute key with the Pattern its value must
// satisfy.
type AttributePattern struct {
	Key     string
	Pattern Pattern
}

// Match applies every pattern and collects the resulting pairs. If any
// pattern fails, the whole match fails. For plain attributes the pair's
// Token carries the complete value.
func (a *Attributes) Match(patterns ...AttributePattern) ([]Pair, bool) {
	pairs := []Pair{}
	for _, ap := range patterns {
		if ap.Key == ClassKey {
			matched, ok := a.classes.MatchTokens(ClassKey, ap.Pattern)
			if !ok {
				return nil, false
			}
			pairs = append(pairs, matched...)
			continue
		}

		v, ok := a.values[ap.Key]
		if !ok || !ap.Pattern.matchValue(v) {
			return nil, false
		}
		pairs = append(pairs, Pair{Key: ap.Key, Token: Token(v)})
	}
	return pairs, true
}
