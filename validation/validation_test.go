package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/idkit/errors"
)

type sampleConfig struct {
	ClientID    string `mapstructure:"client_id" validate:"required"`
	RedirectURL string `mapstructure:"redirect_url" validate:"omitempty,url"`
}

func TestValidate_Struct_Success(t *testing.T) {
	cfg := sampleConfig{ClientID: "abc123", RedirectURL: "https://app.example.com/callback"}
	if err := Validate(cfg); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidate_Struct_MissingRequired(t *testing.T) {
	err := Validate(sampleConfig{})
	if err == nil {
		t.Fatal("expected error for missing client_id")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatal("expected AppError")
	}
	if !strings.Contains(appErr.Message, "client_id") {
		t.Errorf("expected message keyed by mapstructure tag, got %q", appErr.Message)
	}
	if !strings.Contains(appErr.Message, "is required") {
		t.Errorf("expected 'is required', got %q", appErr.Message)
	}
}

func TestValidate_Struct_BadURL(t *testing.T) {
	err := Validate(sampleConfig{ClientID: "abc", RedirectURL: "not a url"})
	if err == nil {
		t.Fatal("expected error for bad redirect_url")
	}
	if !strings.Contains(err.Error(), "redirect_url") {
		t.Errorf("expected redirect_url in error, got %q", err.Error())
	}
}

func TestValidator_Fluent_Success(t *testing.T) {
	err := New().
		Required("client_id", "abc").
		OptionalURL("redirect_url", "https://x/cb").
		OptionalUUID("correlation_id", "").
		Validate()
	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestValidator_Fluent_CollectsAll(t *testing.T) {
	v := New().
		Required("client_id", "  ").
		OptionalURL("redirect_url", "::bad").
		OptionalUUID("correlation_id", "nope")
	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(v.Errors()) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(v.Errors()), v.Errors())
	}
	err := v.Validate()
	if err == nil {
		t.Fatal("expected AppError")
	}
	if err.Details["fields"] == nil {
		t.Error("expected fields detail")
	}
}

func TestValidator_MaxLength(t *testing.T) {
	v := New().MaxLength("scope", strings.Repeat("x", 300), 255)
	if !v.HasErrors() {
		t.Error("expected max length violation")
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("Scope"); got != "scope" {
		t.Errorf("expected scope, got %s", got)
	}
	if got := toSnakeCase("DisplayName"); got != "display_name" {
		t.Errorf("expected display_name, got %s", got)
	}
}
