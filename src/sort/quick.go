package sort

// Partition describes one partitioning step of Quick over data[Lo:Hi+1].
// Depth counts partition steps from the whole slice, not stack frames: the
// larger side is looped in place, so Depth can reach n-2 while the stack holds
// at most log2(n)+1 frames.
type Partition struct {
	Lo, Hi int
	Pivot  int
	Depth  int
}

// Quick is a Hoare-style quicksort with the middle element as pivot.
//
// The smaller side of each partition is sorted recursively and the larger side
// by looping in the same frame, so stack depth stays within O(log n) even when
// the running time degrades to O(n^2). Not stable.
type Quick struct {
	// Trace, if set, is called before every partitioning step in preorder.
	Trace func(p Partition)
}

func (q Quick) Sort(data []int) {
	if len(data) < 2 {
		return
	}
	q.sort(data, 0, len(data)-1, 0)
}

func (q Quick) sort(data []int, l, r, depth int) {
	for l < r {
		i, j := l, r
		pivot := data[(l+r)/2]
		if q.Trace != nil {
			q.Trace(Partition{Lo: l, Hi: r, Pivot: pivot, Depth: depth})
		}

		for i <= j {
			for data[i] < pivot {
				i++
			}
			for data[j] > pivot {
				j--
			}
			if i <= j {
				data[i], data[j] = data[j], data[i]
				i++
				j--
			}
		}

		depth++
		if j-l < r-i {
			if l < j {
				q.sort(data, l, j, depth)
			}
			l = i
		} else {
			if i < r {
				q.sort(data, i, r, depth)
			}
			r = j
		}
	}
}
