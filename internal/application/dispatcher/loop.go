// Package dispatcher serializes host events onto a single goroutine.
// Each event runs to completion before the next one starts, and the
// submitter gets a Pending result for it.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/localport/internal/application/usecase"
	"github.com/bnema/localport/internal/domain/entity"
	"github.com/bnema/localport/internal/logging"
	"golang.org/x/sync/errgroup"
)

const defaultQueueSize = 64

// ErrStopped resolves events submitted to, or queued in, a stopped loop.
var ErrStopped = errors.New("event loop stopped")

type job struct {
	name string
	ctx  context.Context
	run  func(ctx context.Context) error
	fail func(err error)
}

// Loop delivers omnibox, tab and toolbar events in arrival order.
type Loop struct {
	omnibox     *usecase.OmniboxUseCase
	adjacent    *usecase.OpenAdjacentTabUseCase
	activations <-chan entity.TabActivation

	jobs    chan job
	stopped chan struct{}

	mu      sync.RWMutex
	closed  bool
	started bool
}

// Config tunes the loop.
type Config struct {
	QueueSize int
}

// New creates a loop. activations may be nil when the host reports none.
func New(
	omnibox *usecase.OmniboxUseCase,
	adjacent *usecase.OpenAdjacentTabUseCase,
	activations <-chan entity.TabActivation,
	cfg Config,
) *Loop {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	return &Loop{
		omnibox:     omnibox,
		adjacent:    adjacent,
		activations: activations,
		jobs:        make(chan job, cfg.QueueSize),
		stopped:     make(chan struct{}),
	}
}

// Run processes events until ctx is cancelled. Events still queued at that
// point resolve with ErrStopped. Run returns nil on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return fmt.Errorf("event loop already started")
	}
	l.started = true
	l.mu.Unlock()

	log := logging.FromContext(ctx)
	log.Debug().Msg("event loop started")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return l.forwardActivations(gctx) })
	g.Go(func() error { return l.process(gctx) })
	err := g.Wait()

	l.stop()
	log.Debug().Msg("event loop stopped")

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func (l *Loop) process(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case j := <-l.jobs:
			l.handle(j)
		}
	}
}

func (l *Loop) handle(j job) {
	if err := j.ctx.Err(); err != nil {
		j.fail(err)
		return
	}
	if err := j.run(j.ctx); err != nil {
		logging.FromContext(j.ctx).Error().Err(err).Str("event", j.name).Msg("event handler failed")
	}
}

func (l *Loop) forwardActivations(ctx context.Context) error {
	if l.activations == nil {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a, ok := <-l.activations:
			if !ok {
				logging.FromContext(ctx).Debug().Msg("tab activation stream closed")
				return nil
			}
			// Processed like any other event, after what is already queued.
			l.TabActivated(ctx, a)
		}
	}
}

func (l *Loop) stop() {
	close(l.stopped)

	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()

	for {
		select {
		case j := <-l.jobs:
			j.fail(ErrStopped)
		default:
			return
		}
	}
}

func (l *Loop) enqueue(j job) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		j.fail(ErrStopped)
		return
	}
	select {
	case l.jobs <- j:
	case <-l.stopped:
		j.fail(ErrStopped)
	case <-j.ctx.Done():
		j.fail(j.ctx.Err())
	}
}

func submit[T any](l *Loop, ctx context.Context, name string, fn func(ctx context.Context) (T, error)) *Pending[T] {
	p := newPending[T]()
	var zero T
	l.enqueue(job{
		name: name,
		ctx:  ctx,
		run: func(ctx context.Context) error {
			v, err := fn(ctx)
			p.resolve(v, err)
			return err
		},
		fail: func(err error) { p.resolve(zero, err) },
	})
	return p
}

// InputEntered queues committed omnibox text.
func (l *Loop) InputEntered(ctx context.Context, text string) *Pending[*usecase.InputEnteredOutput] {
	return submit(l, ctx, "input_entered", func(ctx context.Context) (*usecase.InputEnteredOutput, error) {
		return l.omnibox.InputEntered(ctx, text)
	})
}

// InputChanged queues a keystroke's worth of omnibox text.
func (l *Loop) InputChanged(ctx context.Context, text string) *Pending[*usecase.InputChangedOutput] {
	return submit(l, ctx, "input_changed", func(ctx context.Context) (*usecase.InputChangedOutput, error) {
		return l.omnibox.InputChanged(ctx, text)
	})
}

// SuggestionDeleted queues the removal of a suggestion.
func (l *Loop) SuggestionDeleted(ctx context.Context, text string) *Pending[struct{}] {
	return submit(l, ctx, "suggestion_deleted", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, l.omnibox.DeleteSuggestion(ctx, text)
	})
}

// TabActivated queues an active tab change.
func (l *Loop) TabActivated(ctx context.Context, a entity.TabActivation) *Pending[struct{}] {
	return submit(l, ctx, "tab_activated", func(ctx context.Context) (struct{}, error) {
		l.omnibox.TabActivated(ctx, a)
		return struct{}{}, nil
	})
}

// ActionClicked queues the toolbar action.
func (l *Loop) ActionClicked(ctx context.Context) *Pending[*usecase.OpenAdjacentTabOutput] {
	return submit(l, ctx, "action_clicked", func(ctx context.Context) (*usecase.OpenAdjacentTabOutput, error) {
		return l.adjacent.Execute(ctx)
	})
}
