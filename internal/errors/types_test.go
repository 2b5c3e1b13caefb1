// File: internal/errors/types_test.go
package errors

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *ConsoleError
		want string
	}{
		{
			name: "without details",
			err:  New(ErrCodePanelUnknown, "unknown panel"),
			want: "PANEL_UNKNOWN: unknown panel",
		},
		{
			name: "with details",
			err:  New(ErrCodeConfigLoad, "failed to load configuration").WithDetails("config.json"),
			want: "CONFIG_LOAD_FAILED: failed to load configuration (config.json)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q; expected %q", got, tt.want)
			}
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeFileSystem, "write failed", cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable through errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap did not return the cause")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := NewPanelUnknownError("spreadsheet")

	if !stderrors.Is(err, New(ErrCodePanelUnknown, "")) {
		t.Error("errors with the same code did not match")
	}
	if stderrors.Is(err, New(ErrCodePanelCreate, "")) {
		t.Error("errors with different codes matched")
	}
}

func TestGetCodeFallsBackToInternal(t *testing.T) {
	if got := GetCode(stderrors.New("plain")); got != ErrCodeInternal {
		t.Errorf("GetCode(plain error) = %s; expected %s", got, ErrCodeInternal)
	}
	if got := GetCode(NewClipboardError(nil)); got != ErrCodeClipboard {
		t.Errorf("GetCode = %s; expected %s", got, ErrCodeClipboard)
	}
}

func TestToSlogAttrsCarriesContext(t *testing.T) {
	err := NewPanelCreateError("logview", stderrors.New("boom")).
		WithContext("attempt", 2)

	attrs := err.ToSlogAttrs()

	keys := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		keys[a.Key] = true
	}
	for _, want := range []string{"error_code", "error_message", "severity", "cause", "ctx_panel_kind", "ctx_attempt"} {
		if !keys[want] {
			t.Errorf("ToSlogAttrs missing %q (got %v)", want, keys)
		}
	}
}

func TestBuilderSeverities(t *testing.T) {
	if sev := NewClipboardError(nil).Severity; sev != SeverityWarning {
		t.Errorf("clipboard severity = %s; expected %s", sev, SeverityWarning)
	}
	if sev := NewPanelNotTrackedError("help").Severity; sev != SeverityInfo {
		t.Errorf("not-tracked severity = %s; expected %s", sev, SeverityInfo)
	}
}

func TestFromOSErrorClassifies(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	_, statErr := os.Stat(missing)
	if statErr == nil {
		t.Fatal("expected stat to fail for missing path")
	}

	err := FromOSError(statErr, missing)
	if err.Code != ErrCodeFileSystem {
		t.Errorf("code = %s; expected %s", err.Code, ErrCodeFileSystem)
	}
	if !strings.Contains(err.Details, "does not exist") {
		t.Errorf("details = %q; expected not-exist hint", err.Details)
	}

	if FromOSError(nil, missing) != nil {
		t.Error("FromOSError(nil) should be nil")
	}
}
