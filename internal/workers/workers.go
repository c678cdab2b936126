package workers

import (
	"context"
	"sync"
)

// Group tracks detached tasks. The zero value is ready to use.
type Group struct {
	wg sync.WaitGroup
}

// Go runs task in a new goroutine. The task gets a context that carries
// the values of ctx but ignores its cancellation, so it keeps running after
// the scheduling request has returned.
func (g *Group) Go(ctx context.Context, task Task) {
	detached := context.WithoutCancel(ctx)

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		task(detached)
	}()
}

// Wait blocks until every task scheduled so far has returned.
func (g *Group) Wait() {
	g.wg.Wait()
}

// WaitContext is like Wait but gives up when ctx is done. It reports
// whether all tasks finished.
func (g *Group) WaitContext(ctx context.Context) bool {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}
