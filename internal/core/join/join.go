// Package join runs independent fetches concurrently and waits for all of them.
//
// Each task declares its own failure policy at the call site: Go tasks are
// fatal (the first error is returned from Wait unchanged), GoRecover tasks
// convert their error into a substitute value and never fail the group.
package join

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group is a wait-for-all join over typed tasks.
type Group struct {
	g   *errgroup.Group
	ctx context.Context
}

// Result holds a task's value. It is only valid after Wait returned nil.
type Result[T any] struct {
	value T
}

// Value returns the task's value, or the substitute for recovered tasks.
func (r *Result[T]) Value() T {
	return r.value
}

// New creates a Group. Tasks receive a context derived from ctx that is
// cancelled once a fatal task fails or Wait returns.
func New(ctx context.Context) *Group {
	g, gctx := errgroup.WithContext(ctx)
	return &Group{g: g, ctx: gctx}
}

// Go starts a fatal task: its error fails the whole group.
func Go[T any](g *Group, fn func(ctx context.Context) (T, error)) *Result[T] {
	r := &Result[T]{}
	g.g.Go(func() error {
		v, err := fn(g.ctx)
		if err != nil {
			return err
		}
		r.value = v
		return nil
	})
	return r
}

// GoRecover starts a task whose error is absorbed: recover maps the error to
// the value the task resolves with, and the group keeps going.
func GoRecover[T any](g *Group, fn func(ctx context.Context) (T, error), recover func(err error) T) *Result[T] {
	r := &Result[T]{}
	g.g.Go(func() error {
		v, err := fn(g.ctx)
		if err != nil {
			r.value = recover(err)
			return nil
		}
		r.value = v
		return nil
	})
	return r
}

// Resolved returns a Result that needs no work, for optional branches that
// were not requested.
func Resolved[T any](value T) *Result[T] {
	return &Result[T]{value: value}
}

// Wait blocks until every task has finished and returns the first fatal error.
func (g *Group) Wait() error {
	return g.g.Wait()
}
