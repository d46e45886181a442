// Package sort provides bubble, quick and insertion sorts over []int behind a
// common Algorithm interface.
package sort

// Algorithm reorders data in place into non-decreasing order.
type Algorithm interface {
	Sort(data []int)
}

// Sorter forwards sort requests to the algorithm it was built with.
type Sorter struct {
	algorithm Algorithm
}

func NewSorter(a Algorithm) *Sorter {
	if a == nil {
		panic("sort: nil algorithm")
	}
	return &Sorter{algorithm: a}
}

func (s *Sorter) SortData(data []int) {
	s.algorithm.Sort(data)
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data []int) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// SameElements reports whether a and b hold the same multiset of values.
func SameElements(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		if counts[v] == 0 {
			return false
		}
		counts[v]--
	}
	return true
}
