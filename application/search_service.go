package application

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"eduadmin/domain/contracts"
	"eduadmin/domain/listing"
	"eduadmin/logging"
)

// SearchConfig tunes the search overlay's length gate and debounce
// window.
type SearchConfig struct {
	MinLength  int
	DebounceMs int
}

// DefaultSearchConfig returns the standard overlay tuning.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{MinLength: 2, DebounceMs: 300}
}

func (c SearchConfig) debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// SearchState is a snapshot of the overlay. A non-empty query means
// the UI displays Results instead of the paginated collection; the
// page cache is never touched.
type SearchState[T listing.Item] struct {
	Query   string
	Results []T
	Loading bool
	Error   string
}

// SearchService is the debounced, length-gated query channel that
// shadows the list store's displayed items. Responses apply
// last-write-wins by issuance order: every call advances a monotonic
// token and a resolving fetch whose token is stale is discarded.
type SearchService[T listing.Item] struct {
	mu     sync.Mutex
	api    contracts.SearchAPI[T]
	logger *logging.Logger
	cfg    SearchConfig

	timer     *time.Timer
	seq       uint64
	query     string
	results   []T
	loading   bool
	lastError string
}

// NewSearchService creates a search overlay for one entity type.
func NewSearchService[T listing.Item](api contracts.SearchAPI[T], cfg SearchConfig, logger *logging.Logger) *SearchService[T] {
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultSearchConfig().MinLength
	}
	if cfg.DebounceMs <= 0 {
		cfg.DebounceMs = DefaultSearchConfig().DebounceMs
	}
	return &SearchService[T]{
		api:    api,
		logger: logger.WithComponent("search_service"),
		cfg:    cfg,
	}
}

// Search records a keystroke. An empty query clears results and exits
// overlay mode; a query below the length gate makes no request and
// leaves prior results in place. Otherwise a fetch is issued after the
// debounce window, unless a newer keystroke supersedes it first.
func (s *SearchService[T]) Search(ctx context.Context, query string) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Every keystroke supersedes any in-flight or pending fetch.
	s.seq++
	s.stopTimerLocked()
	s.query = query

	if query == "" {
		s.results = nil
		s.loading = false
		s.lastError = ""
		return
	}
	if utf8.RuneCountInString(query) < s.cfg.MinLength {
		s.loading = false
		return
	}

	token := s.seq
	s.loading = true
	// The fetch outlives the caller: an HTTP request's context is
	// canceled the moment its handler returns, long before the debounce
	// window closes. The API client's own timeout bounds the call.
	fetchCtx := context.WithoutCancel(ctx)
	s.timer = time.AfterFunc(s.cfg.debounce(), func() {
		s.execute(fetchCtx, query, token) //nolint:errcheck // surfaced via snapshot
	})
}

// SearchNow bypasses the debounce timer and issues immediately if the
// length gate passes, blocking until the response resolves.
func (s *SearchService[T]) SearchNow(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	s.seq++
	s.stopTimerLocked()
	s.query = query

	if query == "" {
		s.results = nil
		s.loading = false
		s.lastError = ""
		s.mu.Unlock()
		return nil
	}
	if utf8.RuneCountInString(query) < s.cfg.MinLength {
		s.loading = false
		s.mu.Unlock()
		return nil
	}

	token := s.seq
	s.loading = true
	s.mu.Unlock()

	return s.execute(ctx, query, token)
}

// execute issues the fetch and applies the response only if the token
// is still current: a response to an older query must never overwrite
// results from a newer one.
func (s *SearchService[T]) execute(ctx context.Context, query string, token uint64) error {
	s.mu.Lock()
	if token != s.seq {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	results, err := s.api.Search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		s.logger.Search("discarding stale search response", "query", query)
		return nil
	}

	s.loading = false
	if err != nil {
		// Prior results stay visible during transient failures.
		s.lastError = err.Error()
		return err
	}
	s.results = results
	s.lastError = ""
	return nil
}

// Active reports whether the overlay currently shadows the paginated
// collection.
func (s *SearchService[T]) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query != ""
}

// Snapshot returns the overlay state.
func (s *SearchService[T]) Snapshot() SearchState[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SearchState[T]{
		Query:   s.query,
		Results: append([]T(nil), s.results...),
		Loading: s.loading,
		Error:   s.lastError,
	}
}

func (s *SearchService[T]) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
