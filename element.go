package tokenlist

import (
	"errors"
	"fmt"
)

// DefaultPriority is the merge priority of elements created by NewElement.
const DefaultPriority = 10

var ErrCannotMerge = errors.New("elements cannot be merged")

// Element is a named view element. Neighbouring elements with the same name
// and priority whose attributes do not conflict are coalesced into one.
type Element struct {
	Name     string
	Priority int
	Attrs    *Attributes
}

func NewElement(name string) *Element {
	return &Element{
		Name:     name,
		Priority: DefaultPriority,
		Attrs:    NewAttributes(),
	}
}

func (e *Element) String() string {
	s := "<" + e.Name
	for _, k := range e.Attrs.Keys() {
		v, _ := e.Attrs.Get(k)
		s += fmt.Sprintf(" %s=%q", k, v)
	}
	return s + ">"
}

func (e *Element) IsSimilar(other *Element) bool {
	return e.Name == other.Name &&
		e.Priority == other.Priority &&
		e.Attrs.IsSimilar(other.Attrs)
}

func (e *Element) CanMergeFrom(other *Element) bool {
	return e.Name == other.Name &&
		e.Priority == other.Priority &&
		e.Attrs.CanMergeFrom(other.Attrs)
}

// MergeFrom folds the attributes of other into e.
func (e *Element) MergeFrom(other *Element) error {
	if !e.CanMergeFrom(other) {
		return fmt.Errorf("merge %s into %s: %w", other, e, ErrCannotMerge)
	}
	e.Attrs.MergeFrom(other.Attrs)
	return nil
}

func (e *Element) Clone() *Element {
	return &Element{
		Name:     e.Name,
		Priority: e.Priority,
		Attrs:    e.Attrs.Clone(),
	}
}

// Coalesce merges each element into its predecessor when possible and
// returns the resulting run. The input elements are not modified.
func Coalesce(elements []*Element) []*Element {
	out := make([]*Element, 0, len(elements))
	for _, el := range elements {
		if n := len(out); n > 0 {
			if err := out[n-1].MergeFrom(el); err == nil {
				continue
			}
		}
		out = append(out, el.Clone())
	}
	return out
}
