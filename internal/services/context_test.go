package services

import (
	"context"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	ctx = WithPath(ctx, "Salsa/cross-body-lead.mp4")
	ctx = WithOperation(ctx, "upsert")
	ctx = WithRequestID(ctx, "req-1")

	if v, ok := PathFromContext(ctx); !ok || v != "Salsa/cross-body-lead.mp4" {
		t.Fatalf("path = %q, ok=%v", v, ok)
	}
	if v, ok := OperationFromContext(ctx); !ok || v != "upsert" {
		t.Fatalf("operation = %q, ok=%v", v, ok)
	}
	if v, ok := RequestIDFromContext(ctx); !ok || v != "req-1" {
		t.Fatalf("request id = %q, ok=%v", v, ok)
	}
}

func TestContextEmptyValuesIgnored(t *testing.T) {
	ctx := WithPath(context.Background(), "")
	if _, ok := PathFromContext(ctx); ok {
		t.Fatal("expected no path")
	}
	if _, ok := OperationFromContext(context.Background()); ok {
		t.Fatal("expected no operation")
	}
}
