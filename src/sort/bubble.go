package sort

// Bubble compares every adjacent pair on each pass and swaps the ones out of
// order. It always runs len(data) passes unless EarlyExit is set, in which case
// it stops after the first pass without a swap.
type Bubble struct {
	EarlyExit bool
}

func (b Bubble) Sort(data []int) {
	for pass := 0; pass < len(data); pass++ {
		swapped := false
		for i := 0; i < len(data)-1; i++ {
			if data[i] > data[i+1] {
				data[i], data[i+1] = data[i+1], data[i]
				swapped = true
			}
		}
		if b.EarlyExit && !swapped {
			return
		}
	}
}
