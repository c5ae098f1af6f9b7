package workshop

import (
	"context"

	"github.com/rs/zerolog"
)

// chunkIDs partitions ids into contiguous chunks of at most size items.
func chunkIDs(ids []string, size int) [][]string {
	if size <= 0 || len(ids) == 0 {
		return nil
	}

	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

// batchedFetch calls fetch once per chunk, sequentially, and concatenates the
// results in chunk order. The first failing chunk aborts the whole fetch and no
// partial results are returned.
func batchedFetch[T any](ctx context.Context, logger zerolog.Logger, ids []string, chunkSize int, fetch func(ctx context.Context, chunk []string) ([]T, error)) ([]T, error) {
	chunks := chunkIDs(ids, chunkSize)
	results := make([]T, 0, len(ids))

	for i, chunk := range chunks {
		logger.Debug().
			Int("chunk", i+1).
			Int("chunks", len(chunks)).
			Int("size", len(chunk)).
			Msg("Fetching batch")

		items, err := fetch(ctx, chunk)
		if err != nil {
			return nil, err
		}
		results = append(results, items...)
	}

	return results, nil
}
