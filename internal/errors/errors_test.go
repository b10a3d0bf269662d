package errors

import (
	"errors"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		err      error
		expected string
	}{
		{
			name:     "with underlying error",
			op:       "clone",
			err:      errors.New("repository not found"),
			expected: "clone: repository not found",
		},
		{
			name:     "without underlying error",
			op:       "lock",
			err:      nil,
			expected: "lock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opErr := New(tt.op, tt.err)
			if got := opErr.Error(); got != tt.expected {
				t.Errorf("OperationError.Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	opErr := New("config", underlying)

	if !errors.Is(opErr, underlying) {
		t.Errorf("errors.Is should match the wrapped error")
	}
	if got := opErr.Unwrap(); got != underlying {
		t.Errorf("OperationError.Unwrap() = %v, want %v", got, underlying)
	}
}

func TestNewf(t *testing.T) {
	opErr := Newf("lock", "held by pid %d", 42)
	if got, want := opErr.Error(), "lock: held by pid 42"; got != want {
		t.Errorf("Newf().Error() = %v, want %v", got, want)
	}
}
