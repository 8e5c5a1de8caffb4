package postgres

import (
	"context"
	"testing"
)

func TestNewPoolInvalidURL(t *testing.T) {
	ctx := context.Background()

	if _, err := NewPool(ctx, "not-a-url", 1, 0); err == nil {
		t.Fatalf("expected error when parsing invalid URL")
	}
}

func TestNewPoolPingFailure(t *testing.T) {
	ctx := context.Background()

	// Port 1 refuses connections immediately.
	if _, err := NewPool(ctx, "postgres://127.0.0.1:1/db", 1, 0); err == nil {
		t.Fatalf("expected error when pool cannot connect")
	}
}
