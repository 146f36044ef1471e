// Package tokenlist models space-separated attribute values such as class
// and the attribute holders that own them.
package tokenlist

import "slices"

type Token string

// TokenSet holds the distinct tokens of a single space-separated attribute
// value, such as class. Tokens keep their insertion order.
//
// A TokenSet is not safe for concurrent mutation.
type TokenSet struct {
	index map[Token]struct{}
	order []Token
}

func New(tokens ...Token) *TokenSet {
	ts := &TokenSet{index: make(map[Token]struct{}, len(tokens))}
	ts.Add(tokens...)
	return ts
}

func (ts *TokenSet) IsEmpty() bool {
	return len(ts.order) == 0
}

func (ts *TokenSet) Size() int {
	return len(ts.order)
}

func (ts *TokenSet) Has(t Token) bool {
	_, exists := ts.index[t]
	return exists
}

// Keys returns a snapshot of the tokens in insertion order.
func (ts *TokenSet) Keys() []Token {
	return append(make([]Token, 0, len(ts.order)), ts.order...)
}

// Add inserts each token that is not already present. Empty tokens are
// skipped; a token containing whitespace is split first.
func (ts *TokenSet) Add(tokens ...Token) {
	if ts.index == nil {
		ts.index = make(map[Token]struct{}, len(tokens))
	}
	for _, t := range splitTokens(tokens) {
		if ts.Has(t) {
			continue
		}
		ts.index[t] = struct{}{}
		ts.order = append(ts.order, t)
	}
}

func (ts *TokenSet) Remove(tokens ...Token) {
	for _, t := range splitTokens(tokens) {
		if !ts.Has(t) {
			continue
		}
		delete(ts.index, t)
		ts.order = slices.DeleteFunc(ts.order, func(o Token) bool { return o == t })
	}
}

func (ts *TokenSet) Clear() {
	clear(ts.index)
	ts.order = ts.order[:0]
}
