// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitSet_AddContains(t *testing.T) {
	b := NewBitSet()
	b.Add(3)
	b.Add(130)

	assert.True(t, b.Contains(3))
	assert.True(t, b.Contains(130))
	assert.False(t, b.Contains(4))
}

func TestBitSet_LenAndMinimum(t *testing.T) {
	b := NewBitSet()
	assert.Equal(t, -1, b.Minimum())
	assert.Equal(t, 0, b.Len())

	b.Add(5)
	b.Add(2)
	b.Add(9)

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 2, b.Minimum())
}

func TestBitSet_Values(t *testing.T) {
	b := NewBitSet()
	b.Add(64)
	b.Add(0)
	b.Add(63)

	assert.Equal(t, []int{0, 63, 64}, b.Values())
}

func TestBitSet_Or(t *testing.T) {
	a := NewBitSet()
	a.Add(1)
	a.Add(2)

	b := NewBitSet()
	b.Add(2)
	b.Add(3)

	or := a.Or(b)
	assert.Equal(t, []int{1, 2, 3}, or.Values())

	// Or must not mutate either input.
	assert.Equal(t, []int{1, 2}, a.Values())
	assert.Equal(t, []int{2, 3}, b.Values())
}

func TestBitSet_String(t *testing.T) {
	b := NewBitSet()
	b.Add(1)
	b.Add(2)
	assert.Equal(t, "{1, 2}", b.String())

	empty := NewBitSet()
	assert.Equal(t, "{}", empty.String())
}
