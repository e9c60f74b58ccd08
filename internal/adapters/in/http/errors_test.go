package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"exchange/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("batch", "id"), http.StatusNotFound},
		{"not authorized", errs.NewNotAuthorizedError("actor", "accept"), http.StatusForbidden},
		{"already resolved", errs.NewAlreadyResolvedError("order", "id", "Rejected"), http.StatusConflict},
		{"duplicate rating", errs.NewDuplicateRatingError("order", "rater"), http.StatusConflict},
		{"invalid transition", errs.NewInvalidTransitionError("batch", "Collected", "Available"), http.StatusUnprocessableEntity},
		{"not eligible", errs.NewNotEligibleError("order is not completed"), http.StatusUnprocessableEntity},
		{"invalid value", errs.NewValueIsInvalidError("item_id"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("score", 9, 1, 5), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("title"), http.StatusBadRequest},
		{"store unavailable", errs.NewStoreUnavailableError("batch.Get", errors.New("conn refused")), http.StatusServiceUnavailable},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, statusCodeFor(test.err))
		})
	}
}

// An override that failed on a concurrent status change must surface the
// conflict, not the override wrapper.
func TestStatusCodeFor_UnwrapsOverrideErrors(t *testing.T) {
	conflict := errs.NewAlreadyResolvedError("batch", "id", "Reserved")
	wrapped := errs.NewOverrideError(errs.OverrideStageStatus, conflict)

	assert.Equal(t, http.StatusConflict, statusCodeFor(wrapped))

	storeErr := errs.NewOverrideError(
		errs.OverrideStageAudit,
		errs.NewStoreUnavailableError("audit.Add", fmt.Errorf("timeout")),
	)
	assert.Equal(t, http.StatusServiceUnavailable, statusCodeFor(storeErr))
}
