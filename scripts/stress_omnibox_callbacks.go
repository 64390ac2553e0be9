//go:build devtools

// Command stress_omnibox_callbacks drives synthetic omnibox events through the
// event loop against an in-memory browser and a throwaway SQLite store.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/localport/internal/application/dispatcher"
	"github.com/bnema/localport/internal/application/usecase"
	"github.com/bnema/localport/internal/domain/entity"
	"github.com/bnema/localport/internal/infrastructure/browser/memory"
	"github.com/bnema/localport/internal/infrastructure/desktop"
	"github.com/bnema/localport/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/localport/internal/logging"
)

const defaultIterations = 5000

type countingSink struct {
	defaults    atomic.Int64
	suggestions atomic.Int64
}

func (s *countingSink) SetDefaultSuggestion(context.Context, entity.SuggestionDescription) {
	s.defaults.Add(1)
}

func (s *countingSink) Suggest(context.Context, []entity.Suggestion) {
	s.suggestions.Add(1)
}

func main() {
	iterations := flag.Int("iterations", defaultIterations, "number of synthetic omnibox updates")
	enterEvery := flag.Int("enter-every", 50, "submit the input every N updates (0 disables)")
	flag.Parse()

	if err := run(*iterations, *enterEvery); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(iterations, enterEvery int) error {
	logger := logging.NewFromEnv()
	ctx, cancel := context.WithCancel(logging.WithContext(context.Background(), logger))
	defer cancel()

	dir, err := os.MkdirTemp("", "localport-stress-")
	if err != nil {
		return err
	}
	defer func() { _ = os.RemoveAll(dir) }()

	db := sqlite.NewLazyDB(filepath.Join(dir, "localport.db"))
	defer func() { _ = db.Close() }()

	host := memory.New()
	defer func() { _ = host.Close() }()

	sink := &countingSink{}
	history := usecase.NewPortHistoryUseCase(sqlite.NewKeyValueStore(db), 0)
	omnibox := usecase.NewOmniboxUseCase(history, host, desktop.DisabledNotifier{}, sink, usecase.OmniboxConfig{})
	loop := dispatcher.New(omnibox, usecase.NewOpenAdjacentTabUseCase(host), host.Activations(), dispatcher.Config{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loop.Run(gctx) })

	start := time.Now()
	var last *dispatcher.Pending[*usecase.InputChangedOutput]
	for i := 1; i <= iterations; i++ {
		text := strconv.Itoa(3000 + rand.IntN(7000))
		text = text[:1+rand.IntN(len(text))]
		last = loop.InputChanged(gctx, text)
		if enterEvery > 0 && i%enterEvery == 0 {
			if _, err := loop.InputEntered(gctx, text).Wait(gctx); err != nil {
				return fmt.Errorf("enter %q: %w", text, err)
			}
		}
	}
	if last != nil {
		if _, err := last.Wait(gctx); err != nil {
			return fmt.Errorf("wait last update: %w", err)
		}
	}
	elapsed := time.Since(start)

	ports, err := history.FetchUsedPorts(gctx)
	if err != nil {
		return err
	}
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("updates=%d elapsed=%s per_update=%s\n", iterations, elapsed, elapsed/time.Duration(max(iterations, 1)))
	fmt.Printf("default_suggestions=%d dropdowns=%d remembered_ports=%d\n",
		sink.defaults.Load(), sink.suggestions.Load(), len(ports))
	return nil
}
