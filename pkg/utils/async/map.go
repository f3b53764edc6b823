package async

import (
	"context"
	"runtime"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// Map applies fn to every item on a bounded worker pool and returns the
// results in input order. The first error cancels the remaining work and
// is returned; no partial result is produced. workers <= 0 uses
// GOMAXPROCS. A panic in fn is recovered and returned as an error.
func Map[In, Out any](ctx context.Context, workers int, items []In, fn func(ctx context.Context, item In) (Out, error)) ([]Out, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Out, len(items))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, item := range items {
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					ctxlog.From(egCtx).Error("Panic in async worker",
						"recover", r,
						"stack", string(stack),
					)
					err = goerr.New("panic in async worker",
						goerr.V("index", i),
						goerr.V("recover", r))
				}
			}()

			if err := egCtx.Err(); err != nil {
				return err
			}

			out, err := fn(egCtx, item)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
