/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errTransient = errors.New("rate limited")

func alwaysRetryable(error) bool { return true }

func fastConfig(maxRetries int) Config {
	return Config{
		MaxRetries:  maxRetries,
		BaseBackoff: time.Millisecond,
		MaxBackoff:  2 * time.Millisecond,
	}
}

func TestWithBackoffSucceedsFirstTry(t *testing.T) {
	calls := 0
	got, err := WithBackoff(context.Background(), fastConfig(3), "judge", alwaysRetryable, func() (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("WithBackoff() error = %v", err)
	}
	if got != "ok" || calls != 1 {
		t.Errorf("got %q after %d calls, want %q after 1", got, calls, "ok")
	}
}

func TestWithBackoffRetriesUntilSuccess(t *testing.T) {
	calls := 0
	got, err := WithBackoff(context.Background(), fastConfig(3), "judge", alwaysRetryable, func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errTransient
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("WithBackoff() error = %v", err)
	}
	if got != 42 || calls != 3 {
		t.Errorf("got %d after %d calls, want 42 after 3", got, calls)
	}
}

func TestWithBackoffStopsOnNonRetryable(t *testing.T) {
	permanent := errors.New("invalid request")
	calls := 0
	_, err := WithBackoff(context.Background(), fastConfig(5), "judge", func(err error) bool {
		return !errors.Is(err, permanent)
	}, func() (int, error) {
		calls++
		return 0, permanent
	})
	if !errors.Is(err, permanent) {
		t.Errorf("WithBackoff() error = %v, want %v", err, permanent)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (non-retryable must not retry)", calls)
	}
}

func TestWithBackoffExhaustsRetries(t *testing.T) {
	calls := 0
	_, err := WithBackoff(context.Background(), fastConfig(2), "judge", alwaysRetryable, func() (int, error) {
		calls++
		return 0, errTransient
	})
	if !errors.Is(err, errTransient) {
		t.Errorf("WithBackoff() error = %v, want wrapped %v", err, errTransient)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3 (initial try + 2 retries)", calls)
	}
}

func TestWithBackoffZeroRetriesMeansOneCall(t *testing.T) {
	calls := 0
	_, err := WithBackoff(context.Background(), fastConfig(0), "judge", alwaysRetryable, func() (int, error) {
		calls++
		return 0, errTransient
	})
	if err == nil {
		t.Error("WithBackoff() error = nil, want error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestWithBackoffHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := Config{
		MaxRetries:  5,
		BaseBackoff: time.Hour,
		MaxBackoff:  time.Hour,
	}
	calls := 0
	done := make(chan error, 1)
	go func() {
		_, err := WithBackoff(ctx, cfg, "judge", alwaysRetryable, func() (int, error) {
			calls++
			return 0, errTransient
		})
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("WithBackoff() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("WithBackoff() did not return after cancellation")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{{
		name: "defaults are valid",
		cfg:  DefaultConfig(),
	}, {
		name: "zero value is valid",
		cfg:  Config{},
	}, {
		name:    "negative retries",
		cfg:     Config{MaxRetries: -1},
		wantErr: true,
	}, {
		name:    "negative base backoff",
		cfg:     Config{BaseBackoff: -time.Second},
		wantErr: true,
	}, {
		name:    "negative max backoff",
		cfg:     Config{MaxBackoff: -time.Second},
		wantErr: true,
	}, {
		name:    "negative jitter",
		cfg:     Config{MaxJitter: -time.Millisecond},
		wantErr: true,
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
