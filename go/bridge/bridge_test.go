// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package bridge

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRun_ReturnsResultOfOperation(t *testing.T) {
	got, err := Run(time.Second, func(context.Context) (int, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("unexpected result, wanted 42, got %d", got)
	}
}

func TestRun_ForwardsOperationError(t *testing.T) {
	injected := errors.New("injected")
	_, err := Run(time.Second, func(context.Context) (int, error) {
		return 0, injected
	})
	if !errors.Is(err, injected) {
		t.Errorf("expected injected error, got %v", err)
	}
}

func TestRun_OperationIgnoringContextTimesOut(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	start := time.Now()
	_, err := Run(20*time.Millisecond, func(context.Context) (int, error) {
		<-release
		return 1, nil
	})
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected timeout, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("timeout was not enforced, took %v", elapsed)
	}
}

func TestRun_OperationObservingContextTimesOut(t *testing.T) {
	_, err := Run(20*time.Millisecond, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected timeout, got %v", err)
	}
}

func TestRun_NonPositiveTimeoutMeansNoDeadline(t *testing.T) {
	for _, timeout := range []time.Duration{0, -1} {
		got, err := Run(timeout, func(ctx context.Context) (bool, error) {
			_, hasDeadline := ctx.Deadline()
			return hasDeadline, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got {
			t.Errorf("timeout %v should not set a deadline", timeout)
		}
	}
}

func TestRun_PanicIsReportedAsError(t *testing.T) {
	_, err := Run(time.Second, func(context.Context) (int, error) {
		panic("boom")
	})
	if !errors.Is(err, ErrPanic) {
		t.Errorf("expected panic error, got %v", err)
	}
}

func TestRunContext_CanceledParentIsNotATimeout(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunContext(parent, time.Second, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	if err == nil {
		t.Fatalf("expected an error for a canceled parent")
	}
	if errors.Is(err, ErrTimeout) {
		t.Errorf("cancellation should not be reported as timeout, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation error, got %v", err)
	}
}

func TestRun_ContextIsReleasedAfterCompletion(t *testing.T) {
	var captured context.Context
	_, err := Run(time.Minute, func(ctx context.Context) (int, error) {
		captured = ctx
		return 0, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-captured.Done():
	default:
		t.Errorf("execution context still alive after Run returned")
	}
}
