package sort

// Insertion is a stable insertion sort: O(n) on sorted input, O(n^2) otherwise.
type Insertion struct{}

func (Insertion) Sort(data []int) {
	insertionSortFunc(data, func(a, b int) bool { return a > b })
}

// insertionSortFunc shifts every element greater than the key one slot right
// and drops the key into the gap. Equal elements never move past each other.
func insertionSortFunc[E any](data []E, greater func(a, b E) bool) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && greater(data[j], key) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
