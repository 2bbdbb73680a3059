package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindValidation, "validation error"},
		{KindIO, "I/O error"},
		{KindNetwork, "network error"},
		{KindServer, "server error"},
		{KindConfig, "configuration error"},
		{KindAuth, "authentication error"},
		{KindTask, "task failed"},
		{KindTimeout, "timeout"},
		{KindCancelled, "cancelled"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "api.ImportGitHub", Context: "start import", Err: errors.New("connection refused")},
			expected: "api.ImportGitHub: start import: connection refused",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "api.ImportGitHub", Err: errors.New("connection refused")},
			expected: "api.ImportGitHub: connection refused",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("connection refused")},
			expected: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE(t *testing.T) {
	tests := []struct {
		name     string
		args     []any
		wantOp   Op
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "all args",
			args:     []any{Op("api.Login"), KindAuth, "login", errors.New("bad password")},
			wantOp:   "api.Login",
			wantKind: KindAuth,
			wantMsg:  "api.Login: login: bad password",
		},
		{
			name:     "context becomes message",
			args:     []any{Op("project.ValidateCreate"), KindValidation, "You must enter a name."},
			wantOp:   "project.ValidateCreate",
			wantKind: KindValidation,
			wantMsg:  "project.ValidateCreate: You must enter a name.",
		},
		{
			name:     "kind inherited from cause",
			args:     []any{Op("outer"), E(Op("inner"), KindTimeout, "slow")},
			wantOp:   "outer",
			wantKind: KindTimeout,
			wantMsg:  "outer: inner: slow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := E(tt.args...)
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("E() returned %T, want *Error", err)
			}
			if e.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", e.Op, tt.wantOp)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{"matching", E(Op("t"), KindNotFound, "x"), KindNotFound, true},
		{"non-matching", E(Op("t"), KindNotFound, "x"), KindInvalid, false},
		{"plain error", errors.New("x"), KindNotFound, false},
		{"nil", nil, KindNotFound, false},
		{"wrapped", fmt.Errorf("wrapped: %w", E(Op("t"), KindCancelled, "x")), KindCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("boom"), "boom"},
		{"validation", Validation("project.ValidateCreate", "You must enter a name."), "You must enter a name."},
		{"http status", HTTPStatus("api.get", 502, "bad gateway"), "server returned status 502: bad gateway"},
		{"nested", E(Op("outer"), E(Op("inner"), KindTask, "repo not found")), "repo not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHelpers(t *testing.T) {
	underlying := errors.New("permission denied")

	if err := ConfigLoadFailed("/x", underlying); !Is(err, KindConfig) || !errors.Is(err, underlying) {
		t.Error("ConfigLoadFailed should be KindConfig and wrap the cause")
	}
	if err := ConfigSaveFailed("/x", underlying); !Is(err, KindConfig) {
		t.Error("ConfigSaveFailed should be KindConfig")
	}
	if err := ConfigInvalid("bad"); !Is(err, KindInvalid) {
		t.Error("ConfigInvalid should be KindInvalid")
	}
	if err := TaskFailed("abc", ""); !Is(err, KindTask) || Message(err) != "task abc failed" {
		t.Errorf("TaskFailed() = %v", err)
	}
	if err := TaskTimeout("abc"); !Is(err, KindTimeout) {
		t.Error("TaskTimeout should be KindTimeout")
	}
	if err := ServerError("api.x", "Invalid SDK version"); !Is(err, KindServer) || Message(err) != "Invalid SDK version" {
		t.Errorf("ServerError message = %q", Message(err))
	}
}
