package petitions

import (
	"context"
	"fmt"

	"petitions/internal/domain"
)

// Result is what a background load hands back to the UI task.
type Result struct {
	Mode      domain.Mode
	Petitions []domain.Petition
	Err       error
}

// OK reports whether the load succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Load fetches and decodes one feed. Every failure wraps ErrLoading.
func Load(ctx context.Context, f Fetcher, mode domain.Mode) Result {
	data, err := f.Fetch(ctx, mode)
	if err != nil {
		return Result{Mode: mode, Err: fmt.Errorf("%w: %w", ErrLoading, err)}
	}

	list, err := Decode(data)
	if err != nil {
		return Result{Mode: mode, Err: fmt.Errorf("%w: %w", ErrLoading, err)}
	}
	return Result{Mode: mode, Petitions: list}
}

// Start runs Load on its own goroutine. The returned channel yields exactly
// one Result and is then closed; its reader is the only consumer.
func Start(ctx context.Context, f Fetcher, mode domain.Mode) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		ch <- Load(ctx, f, mode)
	}()
	return ch
}
