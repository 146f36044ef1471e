package tokenlist

import "maps"

// Mergeable is the reconciliation contract of an attribute value: two values
// built independently can be compared, and one folded into the other.
// Clone returns the same concrete type as its receiver.
type Mergeable[T any] interface {
	IsSimilar(other T) bool
	CanMergeFrom(other T) bool
	MergeFrom(other T)
	Clone() T
}

var (
	_ Mergeable[*TokenSet]   = (*TokenSet)(nil)
	_ Mergeable[*Attributes] = (*Attributes)(nil)
)

// IsSimilar reports whether ts and other hold the same tokens. Order is
// ignored.
func (ts *TokenSet) IsSimilar(other *TokenSet) bool {
	if ts.Size() != other.Size() {
		return false
	}
	for _, t := range ts.order {
		if !other.Has(t) {
			return false
		}
	}
	return true
}

// IsMatching reports whether every token of other is present in ts.
func (ts *TokenSet) IsMatching(other *TokenSet) bool {
	for _, t := range other.order {
		if !ts.Has(t) {
			return false
		}
	}
	return true
}

// CanMergeFrom always holds for a plain token set.
func (ts *TokenSet) CanMergeFrom(*TokenSet) bool {
	return true
}

// MergeFrom adds the tokens of other that ts lacks. Tokens present only in
// ts are kept and other is left untouched.
func (ts *TokenSet) MergeFrom(other *TokenSet) {
	ts.Add(other.order...)
}

func (ts *TokenSet) Clone() *TokenSet {
	return &TokenSet{
		index: maps.Clone(ts.index),
		order: append([]Token(nil), ts.order...),
	}
}

// mergeValues folds src into dst when dst accepts it.
func mergeValues[T Mergeable[T]](dst, src T) bool {
	if !dst.CanMergeFrom(src) {
		return false
	}
	dst.MergeFrom(src)
	return true
}
