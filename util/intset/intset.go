// Package intset implements a compact set of integers backed by a bitmap.
package intset

import (
	"math/bits"
)

const (
	chunkSize  = bits.UintSize
	chunkShift = 5 + bits.UintSize>>6
)

// Set is a mutable integer set. The zero value is not usable, use New.
type Set struct {
	low, high int // covered item range, multiples of chunkSize
	chunks    []uint
}

func New(items ...int) *Set {
	s := &Set{}
	s.Add(items...)
	return s
}

func base(item int) int {
	return item & ^(chunkSize - 1)
}

func (s *Set) allocate(low, high int) {
	low = base(low)
	high = base(high) + chunkSize
	if len(s.chunks) == 0 {
		s.chunks = make([]uint, (high-low)>>chunkShift)
		s.low, s.high = low, high
		return
	}

	if low >= s.low && high <= s.high {
		return
	}
	if low > s.low {
		low = s.low
	}
	if high < s.high {
		high = s.high
	}

	chunks := make([]uint, (high-low)>>chunkShift)
	copy(chunks[(s.low-low)>>chunkShift:], s.chunks)
	s.chunks = chunks
	s.low = low
	s.high = high
}

func bitMask(item int) uint {
	return 1 << (uint(item) & (chunkSize - 1))
}

func (s *Set) Add(items ...int) *Set {
	for _, item := range items {
		s.allocate(item, item)
		s.chunks[(item-s.low)>>chunkShift] |= bitMask(item)
	}
	return s
}

func (s *Set) Contains(item int) bool {
	if len(s.chunks) == 0 || item < s.low || item >= s.high {
		return false
	}
	return s.chunks[(item-s.low)>>chunkShift]&bitMask(item) != 0
}

// Clear empties the set keeping allocated storage.
func (s *Set) Clear() {
	for i := range s.chunks {
		s.chunks[i] = 0
	}
}

func (s *Set) IsEmpty() bool {
	for _, chunk := range s.chunks {
		if chunk != 0 {
			return false
		}
	}
	return true
}

func (s *Set) Len() int {
	result := 0
	for _, chunk := range s.chunks {
		result += bits.OnesCount(chunk)
	}
	return result
}

// ToSlice returns set items in ascending order.
func (s *Set) ToSlice() []int {
	result := make([]int, 0, s.Len())
	for i, chunk := range s.chunks {
		item := s.low + i<<chunkShift
		for chunk != 0 {
			shift := bits.TrailingZeros(chunk)
			result = append(result, item+shift)
			chunk &= chunk - 1
		}
	}
	return result
}
