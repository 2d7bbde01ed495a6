package document

import (
	"context"
	"errors"
	"iter"

	"golang.org/x/sync/semaphore"
)

// FileResult is the outcome of decoding one file.
type FileResult struct {
	Path    string
	Records []Record
	Err     error
}

// DecodeFiles decodes paths concurrently, running at most limit decoders at
// a time, and yields the results in path order. Stopping the iteration
// cancels decoders that have not finished. A limit below 1 means 1.
func DecodeFiles(ctx context.Context, limit int, paths ...string) iter.Seq[FileResult] {
	return func(yield func(FileResult) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		sem := semaphore.NewWeighted(int64(max(limit, 1)))

		// one buffered slot per path keeps the output order
		slots := make([]chan FileResult, len(paths))
		for i, path := range paths {
			slot := make(chan FileResult, 1)
			slots[i] = slot

			go func() {
				if err := sem.Acquire(ctx, 1); err != nil {
					slot <- FileResult{Path: path, Err: errors.Join(ErrDecodeCancelled, err)}
					return
				}
				defer sem.Release(1)

				records, err := DecodeFile(ctx, path)
				slot <- FileResult{Path: path, Records: records, Err: err}
			}()
		}

		for _, slot := range slots {
			if !yield(<-slot) {
				return
			}
		}
	}
}
