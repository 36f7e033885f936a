// Package readiness joins independently fetched remote fields. A Group
// starts one goroutine per field; a designated subset of fields gates
// readiness while the rest may resolve late. Readiness is re-evaluated on
// every resolution.
package readiness

import (
	"context"
	"sync"
)

// ErrorHook is called once for every field whose fetch returned an error.
type ErrorHook func(field string, err error)

// Group tracks a set of fields fetched concurrently under one context.
type Group struct {
	ctx    context.Context
	onErr  ErrorHook
	wg     sync.WaitGroup
	mu     sync.Mutex
	order  []string
	gating map[string]bool
	done   map[string]bool
	// changed is closed and replaced each time a field resolves.
	changed chan struct{}
}

// Option configures a Group.
type Option func(*Group)

// WithErrorHook sets the callback for failed fetches.
func WithErrorHook(h ErrorHook) Option {
	return func(g *Group) { g.onErr = h }
}

// NewGroup returns a Group whose fetches run under ctx.
func NewGroup(ctx context.Context, opts ...Option) *Group {
	g := &Group{
		ctx:     ctx,
		gating:  make(map[string]bool),
		done:    make(map[string]bool),
		changed: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Field is the eventual result of one fetch.
type Field[T any] struct {
	name  string
	mu    sync.Mutex
	value T
	err   error
	done  bool
}

// Name returns the field name given at registration.
func (f *Field[T]) Name() string { return f.name }

// Get returns the value and true when the fetch completed without error.
func (f *Field[T]) Get() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.done && f.err == nil
}

// Resolved reports whether the fetch completed, successfully or not.
func (f *Field[T]) Resolved() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

// Err returns the fetch error, if any.
func (f *Field[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Gate starts fetch as a readiness-gating field.
func Gate[T any](g *Group, name string, fetch func(context.Context) (T, error)) *Field[T] {
	return start(g, name, true, fetch)
}

// Lag starts fetch as a field that may resolve after the group is ready.
func Lag[T any](g *Group, name string, fetch func(context.Context) (T, error)) *Field[T] {
	return start(g, name, false, fetch)
}

func start[T any](g *Group, name string, gating bool, fetch func(context.Context) (T, error)) *Field[T] {
	f := &Field[T]{name: name}

	g.mu.Lock()
	if _, dup := g.gating[name]; dup {
		g.mu.Unlock()
		panic("readiness: duplicate field " + name)
	}
	g.order = append(g.order, name)
	g.gating[name] = gating
	g.mu.Unlock()

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		v, err := fetch(g.ctx)
		if err != nil && g.ctx.Err() != nil {
			// Aborted by the group context: the field stays unresolved.
			return
		}

		f.mu.Lock()
		f.value, f.err, f.done = v, err, true
		f.mu.Unlock()

		if err != nil && g.onErr != nil {
			g.onErr(name, err)
		}
		g.resolve(name)
	}()
	return f
}

func (g *Group) resolve(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.done[name] = true
	close(g.changed)
	g.changed = make(chan struct{})
}

// Changed returns a channel closed at the next field resolution.
func (g *Group) Changed() <-chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.changed
}

// Ready reports whether every gating field has resolved.
func (g *Group) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.readyLocked()
}

func (g *Group) readyLocked() bool {
	for name, gating := range g.gating {
		if gating && !g.done[name] {
			return false
		}
	}
	return true
}

func (g *Group) allLocked() bool {
	return len(g.done) == len(g.gating)
}

// Pending lists unresolved fields in registration order, gating and
// lagging separately.
func (g *Group) Pending() (gating, lagging []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, name := range g.order {
		if g.done[name] {
			continue
		}
		if g.gating[name] {
			gating = append(gating, name)
		} else {
			lagging = append(lagging, name)
		}
	}
	return gating, lagging
}

// WaitReady blocks until the group is ready or ctx is done, and reports
// readiness.
func (g *Group) WaitReady(ctx context.Context) bool {
	return g.waitFor(ctx, g.readyLocked)
}

// WaitAll blocks until every field resolved or ctx is done, and reports
// whether every field resolved.
func (g *Group) WaitAll(ctx context.Context) bool {
	return g.waitFor(ctx, g.allLocked)
}

func (g *Group) waitFor(ctx context.Context, cond func() bool) bool {
	for {
		g.mu.Lock()
		ok := cond()
		ch := g.changed
		g.mu.Unlock()
		if ok {
			return true
		}
		select {
		case <-ch:
		case <-ctx.Done():
			g.mu.Lock()
			defer g.mu.Unlock()
			return cond()
		}
	}
}

// Wait blocks until every fetch goroutine returned. Cancel the group
// context first when fetches may still be blocked. Fields whose fetch
// failed after the group context ended remain unresolved.
func (g *Group) Wait() {
	g.wg.Wait()
}
