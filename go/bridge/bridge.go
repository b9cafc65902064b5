// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package bridge runs asynchronous operations to completion from synchronous
// code. Each operation gets its own bounded-lifetime execution context which
// is torn down before control returns to the caller; no background loop is
// shared between operations.
package bridge

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	ErrTimeout = ConstError("operation timed out")
	ErrPanic   = ConstError("operation panicked")
)

// ConstError is a error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// Run is RunContext with a background parent context.
func Run[T any](timeout time.Duration, op func(context.Context) (T, error)) (T, error) {
	return RunContext(context.Background(), timeout, op)
}

// RunContext executes op and blocks until it produced a result, failed, or
// the timeout expired. A non-positive timeout means no deadline beyond the
// one of the parent context. On expiry ErrTimeout is returned even if op
// ignores its context; such an op keeps running detached until it returns,
// and its result is discarded. Panics in op are reported as ErrPanic.
func RunContext[T any](parent context.Context, timeout time.Duration, op func(context.Context) (T, error)) (T, error) {
	var zero T

	var scope context.Context
	var cancel context.CancelFunc
	if timeout > 0 {
		scope, cancel = context.WithTimeout(parent, timeout)
	} else {
		scope, cancel = context.WithCancel(parent)
	}
	defer cancel()

	result := make(chan T, 1)
	group, ctx := errgroup.WithContext(scope)
	group.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()
		res, err := op(ctx)
		if err != nil {
			return err
		}
		result <- res
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- group.Wait() }()

	expired := func() bool {
		return scope.Err() == context.DeadlineExceeded && parent.Err() == nil
	}

	select {
	case err := <-done:
		if err != nil {
			if expired() {
				return zero, fmt.Errorf("%w after %v: %v", ErrTimeout, timeout, err)
			}
			return zero, err
		}
		return <-result, nil
	case <-scope.Done():
		// Completion and expiry may race; a finished operation wins.
		select {
		case err := <-done:
			if err == nil {
				return <-result, nil
			}
		default:
		}
		if expired() {
			return zero, fmt.Errorf("%w after %v", ErrTimeout, timeout)
		}
		return zero, scope.Err()
	}
}
