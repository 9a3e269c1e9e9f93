package eda

import (
	"sort"
)

// -------------------------------------------------------------------------
// Float Set

// Float set is a set of float64 values.
type FloatSet map[float64]struct{}

func NewFloatSet() FloatSet {
	return make(FloatSet)
}

// Add adds x to s.
func (s FloatSet) Add(x float64) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s FloatSet) Contains(x float64) bool {
	_, ok := s[x]
	return ok
}

// Elements returns the members of s in ascending order.
func (s FloatSet) Elements() []float64 {
	elems := make([]float64, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Float64s(elems)
	return elems
}

// -------------------------------------------------------------------------
// String Set

// String set is a set of string values.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

func NewStringSetFrom(init []string) StringSet {
	s := NewStringSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Elements returns the members of s in lexical order.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Strings(elems)
	return elems
}
