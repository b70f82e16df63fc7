// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

// Interval is an inclusive [start, stop] range of input symbols.
type Interval struct {
	Start, Stop int
}

func (i Interval) contains(v int) bool {
	return v >= i.Start && v <= i.Stop
}

// IntervalSet is a set of input symbols represented as a sorted, merged list
// of disjoint intervals. It backs terminal-transition labels (Range, Set,
// NotSet) and the FOLLOW sets computed by LL1Analyzer.
type IntervalSet struct {
	intervals []Interval
	readOnly  bool
}

// NewIntervalSet returns an empty, mutable IntervalSet.
func NewIntervalSet() *IntervalSet {
	return &IntervalSet{}
}

// NewIntervalSetFromRange returns a single-interval set covering [from, to].
func NewIntervalSetFromRange(from, to int) *IntervalSet {
	s := NewIntervalSet()
	s.addRange(from, to)
	return s
}

func (s *IntervalSet) AddOne(v int) {
	s.addRange(v, v)
}

func (s *IntervalSet) addRange(l, h int) {
	if s.readOnly {
		panic("cannot alter read-only IntervalSet")
	}
	if l > h {
		return
	}
	// Binary-search for the insertion point using the ordering the teacher's
	// slice-based IntervalSet relies on.
	idx, _ := slices.BinarySearchFunc(s.intervals, Interval{Start: l}, func(a, b Interval) int {
		return a.Start - b.Start
	})
	s.intervals = slices.Insert(s.intervals, idx, Interval{Start: l, Stop: h})
	s.reduce()
}

// reduce merges overlapping/adjacent intervals after an insertion. Intervals
// are kept sorted by Start, so a single left-to-right pass suffices.
func (s *IntervalSet) reduce() {
	sort.Slice(s.intervals, func(i, j int) bool { return s.intervals[i].Start < s.intervals[j].Start })
	out := s.intervals[:0:0]
	for _, iv := range s.intervals {
		if len(out) > 0 && iv.Start <= out[len(out)-1].Stop+1 {
			last := &out[len(out)-1]
			if iv.Stop > last.Stop {
				last.Stop = iv.Stop
			}
			continue
		}
		out = append(out, iv)
	}
	s.intervals = out
}

func (s *IntervalSet) addSet(other *IntervalSet) *IntervalSet {
	if other == nil {
		return s
	}
	for _, iv := range other.intervals {
		s.addRange(iv.Start, iv.Stop)
	}
	return s
}

func (s *IntervalSet) removeOne(v int) {
	if s.readOnly {
		panic("cannot alter read-only IntervalSet")
	}
	for i, iv := range s.intervals {
		if !iv.contains(v) {
			continue
		}
		switch {
		case iv.Start == iv.Stop:
			s.intervals = append(s.intervals[:i], s.intervals[i+1:]...)
		case v == iv.Start:
			s.intervals[i].Start++
		case v == iv.Stop:
			s.intervals[i].Stop--
		default:
			upper := Interval{Start: v + 1, Stop: iv.Stop}
			s.intervals[i].Stop = v - 1
			s.intervals = slices.Insert(s.intervals, i+1, upper)
		}
		return
	}
}

// Contains reports whether v is covered by any interval in the set.
func (s *IntervalSet) Contains(v int) bool {
	if s == nil {
		return false
	}
	idx := sort.Search(len(s.intervals), func(i int) bool { return s.intervals[i].Stop >= v })
	return idx < len(s.intervals) && s.intervals[idx].contains(v)
}

// Length returns the total number of symbols covered.
func (s *IntervalSet) Length() int {
	n := 0
	for _, iv := range s.intervals {
		n += iv.Stop - iv.Start + 1
	}
	return n
}

func (s *IntervalSet) first() int {
	if len(s.intervals) == 0 {
		return TokenInvalidType
	}
	return s.intervals[0].Start
}

// String renders the set ANTLR-style: a bare element ("5" or "3..7") when the
// set is one interval, a brace-delimited comma list otherwise.
func (s *IntervalSet) String() string {
	if s == nil || len(s.intervals) == 0 {
		return "{}"
	}
	var parts []string
	for _, iv := range s.intervals {
		if iv.Start == iv.Stop {
			parts = append(parts, fmt.Sprintf("%d", iv.Start))
		} else {
			parts = append(parts, fmt.Sprintf("%d..%d", iv.Start, iv.Stop))
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
