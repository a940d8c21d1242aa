package completion

import (
	"sync"
	"time"

	"github.com/dshills/notelex/internal/pattern"
)

// Defaults for the engine. All are overridable via options.
const (
	DefaultTTL      = 5 * time.Second
	DefaultCapacity = 64
	DefaultLimit    = 15
)

// Engine computes ranked completions for the pattern at the cursor.
// Safe for concurrent use.
type Engine struct {
	mu         sync.Mutex
	candidates map[pattern.Type][]Item
	cache      *cache
	limit      int
	now        func() time.Time
	computes   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithTTL sets how long cached results stay valid.
func WithTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		e.cache.ttl = ttl
	}
}

// WithCapacity sets the cache entry limit.
func WithCapacity(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cache.capacity = n
		}
	}
}

// WithLimit sets the maximum items per result.
func WithLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.limit = n
		}
	}
}

// WithClock injects the time source. Cache expiry tests use this.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithCandidates replaces the candidate table for one pattern type.
func WithCandidates(typ pattern.Type, items []Item) Option {
	return func(e *Engine) {
		e.candidates[typ] = items
	}
}

// New creates an Engine with the default candidate tables.
func New(opts ...Option) *Engine {
	e := &Engine{
		candidates: make(map[pattern.Type][]Item, len(defaultCandidates)),
		cache:      newCache(DefaultCapacity, DefaultTTL),
		limit:      DefaultLimit,
		now:        time.Now,
	}
	for typ, items := range defaultCandidates {
		e.candidates[typ] = items
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Complete returns ranked completions for the pattern at cursor, or nil
// when the cursor is not inside a pattern or nothing matches the query.
// cursor is a rune offset.
func (e *Engine) Complete(text string, cursor int) *Result {
	ctx, ok := detectContext(text, cursor)
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	key := cacheKey{typ: ctx.Type, query: ctx.Query}
	if res, ok := e.cache.get(key, now, cursor); ok {
		return copyResult(res)
	}

	e.computes++
	items := rank(e.candidates[ctx.Type], ctx.Query)
	if len(items) == 0 {
		return nil
	}
	if len(items) > e.limit {
		items = items[:e.limit]
	}

	res := &Result{
		Type:  ctx.Type,
		Query: ctx.Query,
		Start: ctx.Start,
		End:   cursor,
		Items: items,
	}
	e.cache.put(key, res, now)
	return copyResult(res)
}

// copyResult clones a result so callers own what they get back. The
// cache keeps its own copy; host-side mutation of Items must not leak
// into later hits.
func copyResult(r *Result) *Result {
	out := *r
	out.Items = append([]Item(nil), r.Items...)
	return &out
}

// Clear drops all cached results.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache.clear()
}

// ComputeCount reports how many Complete calls ranked candidates instead
// of hitting the cache.
func (e *Engine) ComputeCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.computes
}
