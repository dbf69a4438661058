package reconcile

import "fmt"

// Chunks splits items into contiguous slices of at most size elements.
//
// Order is preserved inside and across chunks; the final chunk holds the
// remainder. The returned slices alias the input, so callers must not mutate
// items while batches are in flight. An empty input yields no chunks.
//
// size must be positive; a non-positive size is a programming error and
// panics rather than returning a recoverable failure.
func Chunks[T any](items []T, size int) [][]T {
	if size <= 0 {
		panic(fmt.Sprintf("reconcile: non-positive chunk size %d", size))
	}

	if len(items) == 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
