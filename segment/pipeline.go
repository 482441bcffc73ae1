package segment

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MarkPipeline fans Mark() out across segs using a bounded goroutine
// pool, a goroutine-level complement to the process-level fan-out
// rangedriver.SiZCount performs across `cores` workers (spec §5):
// within one such worker, the independently-allocated segments for a
// row block can still be marked concurrently since each owns its own
// bitmaps. limit caps concurrent goroutines; limit<=0 means unbounded.
func MarkPipeline(ctx context.Context, segs []*VXSegment, rootPrimes []uint64, kvx int, limit int) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, seg := range segs {
		seg := seg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seg.Mark(rootPrimes, kvx)
			return nil
		})
	}

	return g.Wait()
}
