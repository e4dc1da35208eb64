package network

import (
	"context"
	"testing"
	"time"
)

func TestHostLimiterAllowsBurst(t *testing.T) {
	hl := NewHostLimiter(100, 2)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 2; i++ {
		if err := hl.WaitURL(ctx, "https://vacancymail.co.zw/jobs/"); err != nil {
			t.Fatalf("unexpected wait error: %v", err)
		}
	}
}

func TestHostLimiterCancel(t *testing.T) {
	hl := NewHostLimiter(0.001, 1)
	ctx, cancel := context.WithCancel(context.Background())

	// drain the single burst token
	if err := hl.WaitURL(ctx, "https://zimbojobs.com/jobs"); err != nil {
		t.Fatalf("unexpected wait error: %v", err)
	}

	cancel()
	if err := hl.WaitURL(ctx, "https://zimbojobs.com/jobs"); err == nil {
		t.Fatal("expected error after cancel")
	}
}

func TestHostLimiterBadURL(t *testing.T) {
	hl := NewHostLimiter(100, 1)
	if err := hl.WaitURL(context.Background(), "::not a url"); err != nil {
		t.Fatalf("bad URLs should fall back to the shared bucket: %v", err)
	}
}
