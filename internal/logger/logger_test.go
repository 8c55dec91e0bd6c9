package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	if l == nil {
		t.Fatal("NewLogger returned nil")
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// Must not panic and must be usable.
	l.Info().Msg("discarded")
	if l.GetLevel() != zerolog.Disabled {
		t.Errorf("expected disabled level, got %v", l.GetLevel())
	}
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	if child == parent {
		t.Fatal("child logger should be a new instance")
	}
}

func TestFromContext_FallsBackToGlobal(t *testing.T) {
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("FromContext returned nil")
	}
}

func TestFromRequest_UsesRequestContext(t *testing.T) {
	base := Nop()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(base.WithContext(r.Context()))

	l := FromRequest(r)
	if l == nil {
		t.Fatal("FromRequest returned nil")
	}
	if l.GetLevel() != zerolog.Disabled {
		t.Errorf("expected the nop logger from context, got level %v", l.GetLevel())
	}
}
