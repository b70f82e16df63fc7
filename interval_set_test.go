// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalSet_AddRangeMergesAdjacentAndOverlapping(t *testing.T) {
	s := NewIntervalSet()
	s.addRange(1, 3)
	s.addRange(4, 6)
	assert.Equal(t, "1..6", s.String())

	s2 := NewIntervalSet()
	s2.addRange(1, 5)
	s2.addRange(3, 8)
	assert.Equal(t, "1..8", s2.String())

	s3 := NewIntervalSet()
	s3.AddOne(1)
	s3.AddOne(5)
	assert.Equal(t, "{1, 5}", s3.String())
}

func TestIntervalSet_Contains(t *testing.T) {
	s := NewIntervalSetFromRange(10, 20)
	assert.True(t, s.Contains(10))
	assert.True(t, s.Contains(20))
	assert.True(t, s.Contains(15))
	assert.False(t, s.Contains(9))
	assert.False(t, s.Contains(21))
}

func TestIntervalSet_RemoveOneSplitsInterval(t *testing.T) {
	s := NewIntervalSetFromRange(1, 10)
	s.removeOne(5)
	assert.False(t, s.Contains(5))
	assert.True(t, s.Contains(4))
	assert.True(t, s.Contains(6))
	assert.Equal(t, 9, s.Length())
}

func TestIntervalSet_RemoveOneAtBoundaryShrinksInterval(t *testing.T) {
	s := NewIntervalSetFromRange(1, 10)
	s.removeOne(1)
	assert.False(t, s.Contains(1))
	assert.True(t, s.Contains(2))

	s2 := NewIntervalSetFromRange(1, 10)
	s2.removeOne(10)
	assert.False(t, s2.Contains(10))
	assert.True(t, s2.Contains(9))
}

func TestIntervalSet_RemoveOneSingletonDropsInterval(t *testing.T) {
	s := NewIntervalSetFromRange(5, 5)
	s.removeOne(5)
	assert.False(t, s.Contains(5))
	assert.Equal(t, 0, s.Length())
}

func TestIntervalSet_StringEmpty(t *testing.T) {
	s := NewIntervalSet()
	assert.Equal(t, "{}", s.String())
}

func TestIntervalSet_AddSetUnions(t *testing.T) {
	a := NewIntervalSetFromRange(1, 3)
	b := NewIntervalSetFromRange(10, 12)
	a.addSet(b)
	assert.True(t, a.Contains(2))
	assert.True(t, a.Contains(11))
	assert.False(t, a.Contains(5))
}
