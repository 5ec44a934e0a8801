// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Futures provide a simple abstraction for results of asynchronous
// computations. A future is a placeholder for a Result that may not yet be
// available, allowing code to proceed without blocking until the outcome is
// needed.
//
// A Promise is used to settle a Future with either a value or an error
// payload. The producer side of a Future typically looks as follows:
//
//	promise, future := future.Create[T, E]()
//	go func() {
//	   // perform some asynchronous operation
//	   promise.Fulfill(someOperation())
//	}()
//	return future
//
// Alternatively, if the outcome is already available, an immediate Future can
// be created using Ready.
package future

import (
	"context"

	"github.com/0xsoniclabs/expected/common/result"
)

// Promise represents the handle used to settle a Future. A Promise must be
// settled exactly once.
type Promise[T, E any] struct {
	c chan<- result.Result[T, E]
}

// Future represents a placeholder for a Result that will be available in the
// future. Futures can only be consumed once.
type Future[T, E any] struct {
	c <-chan result.Result[T, E]
}

// Create initializes a new Promise and Future pair.
func Create[T, E any]() (Promise[T, E], Future[T, E]) {
	ch := make(chan result.Result[T, E], 1)
	return Promise[T, E]{c: ch}, Future[T, E]{c: ch}
}

// Ready creates a Future that is already settled with the given Result.
func Ready[T, E any](res result.Result[T, E]) Future[T, E] {
	ch := make(chan result.Result[T, E], 1)
	ch <- res
	close(ch)
	return Future[T, E]{c: ch}
}

// Go runs the given operation in a new goroutine and returns a Future
// settled with its outcome.
func Go[T, E any](operation func() result.Result[T, E]) Future[T, E] {
	promise, future := Create[T, E]()
	go func() {
		promise.Fulfill(operation())
	}()
	return future
}

// Fulfill settles the Promise with the given Result.
func (p Promise[T, E]) Fulfill(res result.Result[T, E]) {
	p.c <- res
	close(p.c)
}

// Resolve settles the Promise with a value.
func (p Promise[T, E]) Resolve(value T) {
	p.Fulfill(result.Ok[E](value))
}

// Reject settles the Promise with an error payload.
func (p Promise[T, E]) Reject(err E) {
	p.Fulfill(result.Err[T](err))
}

// Forward connects the Promise to the given Future, such that when the Future
// is settled, the Promise is settled with the same Result.
func (p Promise[T, E]) Forward(f Future[T, E]) {
	go func() {
		p.Fulfill(f.Await())
	}()
}

// Await blocks until the Future is settled and returns its Result.
func (f Future[T, E]) Await() result.Result[T, E] {
	return <-f.c
}

// AwaitContext is like Await but gives up once ctx is done, in which case the
// context's error is returned. The Future is not consumed in that case.
func (f Future[T, E]) AwaitContext(ctx context.Context) (result.Result[T, E], error) {
	select {
	case res := <-f.c:
		return res, nil
	case <-ctx.Done():
		return result.Result[T, E]{}, ctx.Err()
	}
}

// Then creates a new Future by applying the given continuation to the value of
// the original Future once it is settled. Error payloads are passed on without
// invoking the continuation.
func Then[A, B, E any](f Future[A, E], next func(A) result.Result[B, E]) Future[B, E] {
	return Go(func() result.Result[B, E] {
		return result.AndThen(f.Await(), next)
	})
}
