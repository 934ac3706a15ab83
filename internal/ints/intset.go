// Package ints implements a bit set for small non-negative integers.
package ints

const intSizeShift = 5 + (^uint(0) >> 32 & 1)
const intSize = 1 << intSizeShift

// Set holds a set of integers as a chunked bit mask.
// Iteration order is always ascending, which makes loops over grammar
// symbol indexes deterministic.
type Set struct {
	lowItem, highItem int
	chunks            []uint
}

func NewSet(items ...int) *Set {
	result := &Set{0, 0, []uint{}}
	if len(items) > 0 {
		result.Add(items...)
	}
	return result
}

func countBits(chunk uint) int {
	result := 0
	for chunk != 0 {
		result++
		chunk &= (chunk - 1)
	}
	return result
}

// ToSlice returns all stored items in ascending order.
func (s *Set) ToSlice() []int {
	bitCnt := 0
	for _, chunk := range s.chunks {
		bitCnt += countBits(chunk)
	}
	result := make([]int, bitCnt)
	item := s.lowItem
	index := 0
	for _, chunk := range s.chunks {
		for i := intSize; i > 0; i-- {
			if chunk&1 != 0 {
				result[index] = item
				index++
			}
			item++
			chunk = chunk >> 1
		}
	}
	return result
}

func baseItem(item int) int {
	return item & ^(intSize - 1)
}

func (s *Set) allocate(low, high int) {
	lowItem := baseItem(low)
	highItem := baseItem(high) + intSize
	if lowItem >= s.lowItem && highItem <= s.highItem {
		return
	}

	if lowItem > s.lowItem {
		lowItem = s.lowItem
	}
	if highItem < s.highItem {
		highItem = s.highItem
	}

	chunkCnt := (highItem - lowItem) >> intSizeShift
	chunks := make([]uint, chunkCnt)
	if s.lowItem != 0 || s.highItem != 0 {
		offset := (s.lowItem - lowItem) >> intSizeShift
		copy(chunks[offset:], s.chunks)
	}
	s.chunks = chunks
	s.lowItem = lowItem
	s.highItem = highItem
}

func (s *Set) chunkIndex(item int) int {
	return (item - s.lowItem) >> intSizeShift
}

func bitMask(item int) uint {
	return 1 << (uint(item) & (intSize - 1))
}

func minMax(items []int) (min, max int) {
	min = items[0]
	max = items[0]
	for i := 1; i < len(items); i++ {
		item := items[i]
		if item < min {
			min = item
		}
		if item > max {
			max = item
		}
	}
	return
}

func (s *Set) Add(items ...int) *Set {
	if len(items) == 0 {
		return s
	}

	min, max := minMax(items)
	s.allocate(min, max)
	for _, item := range items {
		s.chunks[s.chunkIndex(item)] |= bitMask(item)
	}
	return s
}

func (s *Set) Contains(item int) bool {
	if item < s.lowItem || item >= s.highItem {
		return false
	}
	return s.chunks[s.chunkIndex(item)]&bitMask(item) != 0
}

func (s *Set) IsEmpty() bool {
	for _, chunk := range s.chunks {
		if chunk != 0 {
			return false
		}
	}
	return true
}

func (s *Set) Copy() *Set {
	chunks := make([]uint, len(s.chunks))
	copy(chunks, s.chunks)
	return &Set{s.lowItem, s.highItem, chunks}
}
