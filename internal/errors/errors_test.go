package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestIsTypeThroughWrapping(t *testing.T) {
	base := UnknownTechnology("UnknownTech")
	wrapped := fmt.Errorf("comparing options: %w", base)

	if !IsType(wrapped, TypeUnknownTechnology) {
		t.Fatalf("expected wrapped error to be %s", TypeUnknownTechnology)
	}
	if IsType(wrapped, TypeInput) {
		t.Errorf("wrapped error should not match %s", TypeInput)
	}
	if got := base.Context["option"]; got != "UnknownTech" {
		t.Errorf("expected option context 'UnknownTech', got %v", got)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain", Input("missing constraints"), "[INPUT_ERROR] missing constraints"},
		{"unknown", UnknownTechnology("Cobol"), "[UNKNOWN_TECHNOLOGY] unknown technology: Cobol"},
		{"wrapped", Provider("gemini", stderrors.New("status 503")), "[PROVIDER_ERROR] gemini provider failed: status 503"},
		{"catalog", Catalog("extra.hcl", "bad value"), "[CATALOG_ERROR] extra.hcl: bad value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeOfNonDomainError(t *testing.T) {
	if got := TypeOf(stderrors.New("boom")); got != "" {
		t.Errorf("expected empty type, got %q", got)
	}
	if IsType(nil, TypeInternal) {
		t.Error("nil error must not match any type")
	}
}
