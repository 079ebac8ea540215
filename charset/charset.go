// Package charset describes the characters an atlas is built for.
//
// A Set is an ordered list of distinct runes. The order is the packing
// order, so two builds from equal sets produce identical atlases.
//
//	charset.Of('A', 'B', ' ')
//	charset.Range(' ', '~')
//	charset.FromString("Hello, world")
//	charset.FromNormalizedString("é", norm.NFC)
package charset

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Set is an ordered collection of distinct runes. The zero value is empty
// and ready to use. Sets are immutable once built.
type Set struct {
	runes []rune
	index map[rune]struct{}
}

func newSet(capacity int) *Set {
	return &Set{
		runes: make([]rune, 0, capacity),
		index: make(map[rune]struct{}, capacity),
	}
}

// add appends r unless it is already present.
func (s *Set) add(r rune) {
	if _, ok := s.index[r]; ok {
		return
	}
	s.index[r] = struct{}{}
	s.runes = append(s.runes, r)
}

// Of returns the distinct runes in first-occurrence order.
func Of(runes ...rune) Set {
	s := newSet(len(runes))
	for _, r := range runes {
		s.add(r)
	}
	return *s
}

// Range returns first..last inclusive in code point order. The walk stops at
// unicode.MaxRune, so a last beyond it is clamped. A first greater than last
// yields an empty set. Negative runes are skipped.
func Range(first, last rune) Set {
	first = max(first, 0)
	last = min(last, unicode.MaxRune)
	if first > last {
		return Set{}
	}

	s := newSet(int(last-first) + 1)
	for r := first; ; r++ {
		s.add(r)
		if r == last {
			break
		}
	}
	return *s
}

// FromString returns the distinct runes of str in first-occurrence order.
// Invalid UTF-8 bytes contribute unicode.ReplacementChar.
func FromString(str string) Set {
	s := newSet(len(str))
	for _, r := range str {
		s.add(r)
	}
	return *s
}

// FromNormalizedString normalizes str to form before extracting its distinct
// runes. NFC keeps precomposed letters such as 'é' as one glyph instead of a
// base letter plus a combining mark.
func FromNormalizedString(str string, form norm.Form) Set {
	return FromString(form.String(str))
}

// Len returns the number of runes.
func (s Set) Len() int {
	return len(s.runes)
}

// Runes returns a copy of the runes in order.
func (s Set) Runes() []rune {
	return slices.Clone(s.runes)
}

// Contains reports whether r is in the set.
func (s Set) Contains(r rune) bool {
	_, ok := s.index[r]
	return ok
}

// Union returns s followed by the runes of other not already in s.
func (s Set) Union(other Set) Set {
	out := newSet(len(s.runes) + len(other.runes))
	for _, r := range s.runes {
		out.add(r)
	}
	for _, r := range other.runes {
		out.add(r)
	}
	return *out
}

// String returns the runes as a string.
func (s Set) String() string {
	var b strings.Builder
	for _, r := range s.runes {
		b.WriteRune(r)
	}
	return b.String()
}
