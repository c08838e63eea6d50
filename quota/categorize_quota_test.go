package quota

import (
	"context"
	"testing"
	"time"
)

func TestWaitAndReserveDailyLimit(t *testing.T) {
	l := &CategorizeQuotaLimiter{dailyLimit: 2}

	for i := 0; i < 2; i++ {
		ok, err := l.WaitAndReserve(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("call %d: expected reservation to succeed", i+1)
		}
	}

	ok, err := l.WaitAndReserve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected reservation to be denied after daily limit")
	}
}

func TestWaitAndReserveUnlimitedWhenZero(t *testing.T) {
	l := &CategorizeQuotaLimiter{}

	for i := 0; i < 10; i++ {
		ok, err := l.WaitAndReserve(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("expected unlimited limiter to always allow")
		}
	}
}

func TestWaitAndReserveSpacesCalls(t *testing.T) {
	l := &CategorizeQuotaLimiter{interval: 50 * time.Millisecond}

	start := time.Now()
	for i := 0; i < 3; i++ {
		ok, err := l.WaitAndReserve(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("expected reservation to succeed")
		}
	}
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Fatalf("expected at least 100ms spacing across 3 calls, got %s", elapsed)
	}
}

func TestWaitAndReserveHonorsCancellation(t *testing.T) {
	l := &CategorizeQuotaLimiter{interval: time.Minute}

	// consume the first slot so the next call has to wait
	if ok, err := l.WaitAndReserve(context.Background()); err != nil || !ok {
		t.Fatalf("expected first reservation to succeed, ok=%v err=%v", ok, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	ok, err := l.WaitAndReserve(ctx)
	if ok {
		t.Fatalf("expected reservation to fail on cancelled context")
	}
	if err == nil {
		t.Fatalf("expected context error")
	}
}
