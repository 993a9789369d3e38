package generator

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/multierr"
)

// pool fans indexed tasks out to a fixed number of goroutines.
type pool struct {
	workers int
}

func newPool(workers int) pool {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return pool{workers: workers}
}

// run calls workerFn for every index in [0, total). Task errors are combined;
// cancellation is reported on its own.
func (p pool) run(ctx context.Context, total int, workerFn func(idx int) error) error {
	if total == 0 {
		return nil
	}
	indexCh := make(chan int)
	errCh := make(chan error, total)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for idx := range indexCh {
			if err := workerFn(idx); err != nil {
				select {
				case errCh <- err:
				case <-ctx.Done():
					return
				}
			}
		}
	}

	workers := p.workers
	if workers > total {
		workers = total
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker()
	}

Loop:
	for i := 0; i < total; i++ {
		select {
		case indexCh <- i:
		case <-ctx.Done():
			break Loop
		}
	}
	close(indexCh)
	wg.Wait()
	close(errCh)

	if err := ctx.Err(); err != nil {
		return err
	}

	var combined error
	for err := range errCh {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		combined = multierr.Append(combined, err)
	}
	return combined
}
