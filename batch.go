package eda

// Batches splits levels into consecutive batches of at most size
// elements. The last batch may be shorter.
func Batches(levels []string, size int) [][]string {
	if size <= 0 {
		panic("eda: non-positive batch size")
	}
	batches := make([][]string, 0, (len(levels)+size-1)/size)
	for start := 0; start < len(levels); start += size {
		end := start + size
		if end > len(levels) {
			end = len(levels)
		}
		batches = append(batches, levels[start:end])
	}
	return batches
}
