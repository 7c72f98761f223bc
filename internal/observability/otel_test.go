package observability

import (
	"context"
	"testing"
)

func TestOTLPHeaders(t *testing.T) {
	got := otlpHeaders(" api-key = abc , broken, =x, tenant=gyansetu ")
	if len(got) != 2 || got["api-key"] != "abc" || got["tenant"] != "gyansetu" {
		t.Fatalf("unexpected headers: %v", got)
	}
	if otlpHeaders("") != nil {
		t.Fatalf("empty input should yield nil")
	}
}

func TestStartSpanWithoutProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "test.span")
	defer span.End()
	if ctx == nil {
		t.Fatalf("nil context")
	}
}
