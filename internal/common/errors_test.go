package common

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatusError(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{nil, codes.OK},
		{fmt.Errorf("%w: extraction x", ErrNotFound), codes.NotFound},
		{fmt.Errorf("%w: extraction is PROCESSED", ErrConflict), codes.Aborted},
		{fmt.Errorf("%w: total: not a number", ErrValidation), codes.InvalidArgument},
		{fmt.Errorf("%w: bad category", ErrInvalidInput), codes.InvalidArgument},
		{fmt.Errorf("%w: llm 503", ErrCapability), codes.Unavailable},
		{fmt.Errorf("%w: oops", ErrInternal), codes.Internal},
		{errors.New("unclassified"), codes.Internal},
	}
	for _, tt := range tests {
		got := ToStatusError(tt.err)
		if tt.want == codes.OK {
			if got != nil {
				t.Errorf("ToStatusError(nil) = %v", got)
			}
			continue
		}
		st, ok := status.FromError(got)
		if !ok {
			t.Errorf("ToStatusError(%v) is not a status error", tt.err)
			continue
		}
		if st.Code() != tt.want {
			t.Errorf("ToStatusError(%v) = %v, want %v", tt.err, st.Code(), tt.want)
		}
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := ErrConflict
	err := NewAppError("COMMIT", "commit failed", cause)
	if !errors.Is(err, ErrConflict) {
		t.Fatal("AppError must unwrap to its cause")
	}
	if err.Error() != "COMMIT: commit failed: status conflict" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestWrapErrorNil(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Fatal("wrapping nil must stay nil")
	}
	wrapped := WrapError(ErrNotFound, "get extraction")
	if !errors.Is(wrapped, ErrNotFound) {
		t.Fatal("wrapped error must keep its identity")
	}
}
