package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{NotFound("survey", 3), http.StatusNotFound},
		{MalformedSubmission("question", 9, "question not answered"), http.StatusBadRequest},
		{Forbidden("psychologist", 4, "profile can only be updated by its owner"), http.StatusForbidden},
		{StorageFailure(errors.New("connection reset")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.err.StatusCode(); got != tc.want {
			t.Errorf("StatusCode() = %d, want %d for %v", got, tc.want, tc.err)
		}
	}
}

func TestAsUnwrapsThroughWrapping(t *testing.T) {
	inner := NotFound("student", 7)
	wrapped := fmt.Errorf("processing submission: %w", inner)

	ae, ok := As(wrapped)
	if !ok {
		t.Fatal("As failed to find the AppError")
	}
	if ae.Kind != KindNotFound || ae.Entity != "student" {
		t.Errorf("unwrapped = %+v", ae)
	}
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound missed a wrapped not-found error")
	}
	if IsMalformedSubmission(wrapped) {
		t.Error("IsMalformedSubmission matched a not-found error")
	}
	if IsForbidden(wrapped) {
		t.Error("IsForbidden matched a not-found error")
	}

	forbidden := fmt.Errorf("updating profile: %w", Forbidden("psychologist", 4, "profile can only be updated by its owner"))
	if !IsForbidden(forbidden) {
		t.Error("IsForbidden missed a wrapped forbidden error")
	}
}

func TestErrorMessageNamesEntity(t *testing.T) {
	err := MalformedSubmission("option", 42, "option does not belong to this question")
	if got := err.Error(); got != "option 42: option does not belong to this question" {
		t.Errorf("Error() = %q", got)
	}
}

func TestStorageFailurePreservesCause(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := StorageFailure(cause)
	if !errors.Is(err, cause) {
		t.Error("cause lost through StorageFailure")
	}
}
