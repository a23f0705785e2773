package analysis

import "sort"

// FindPeaks returns the indices of local maxima of x that are >= height and
// at least distance positions apart, in ascending order.
//
// A maximum is a sample strictly greater than its left neighbour and greater
// than the first differing sample to its right; a flat top reports its middle
// index (rounded down). The first and last samples are never peaks. When
// peaks are closer than distance the higher one wins; among equal heights the
// later one does.
func FindPeaks(x []float64, height float64, distance int) []int {
	candidates := localMaxima(x)

	kept := candidates[:0]
	for _, i := range candidates {
		if x[i] >= height {
			kept = append(kept, i)
		}
	}
	return selectByDistance(x, kept, distance)
}

func localMaxima(x []float64) []int {
	var peaks []int
	last := len(x) - 1
	for i := 1; i < last; i++ {
		if !(x[i-1] < x[i]) {
			continue
		}
		ahead := i + 1
		for ahead < last && x[ahead] == x[i] {
			ahead++
		}
		if x[ahead] < x[i] {
			peaks = append(peaks, (i+ahead-1)/2)
			i = ahead
		}
	}
	return peaks
}

// selectByDistance suppresses peaks within distance of a higher kept peak.
func selectByDistance(x []float64, peaks []int, distance int) []int {
	if distance <= 1 || len(peaks) < 2 {
		return peaks
	}

	// Ascending by height; stable so equal heights keep index order and the
	// later peak is visited first below.
	order := make([]int, len(peaks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return x[peaks[order[a]]] < x[peaks[order[b]]]
	})

	suppressed := make([]bool, len(peaks))
	for n := len(order) - 1; n >= 0; n-- {
		j := order[n]
		if suppressed[j] {
			continue
		}
		for k := j - 1; k >= 0 && peaks[j]-peaks[k] < distance; k-- {
			suppressed[k] = true
		}
		for k := j + 1; k < len(peaks) && peaks[k]-peaks[j] < distance; k++ {
			suppressed[k] = true
		}
	}

	out := make([]int, 0, len(peaks))
	for i, p := range peaks {
		if !suppressed[i] {
			out = append(out, p)
		}
	}
	return out
}
