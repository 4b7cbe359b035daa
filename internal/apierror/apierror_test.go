package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("Stand not found")))
	assert.Equal(t, KindInvalid, KindOf(fmt.Errorf("wrapped: %w", Invalid("bad"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindInvalid.Status())
	assert.Equal(t, http.StatusUnauthorized, KindUnauthorized.Status())
	assert.Equal(t, http.StatusForbidden, KindForbidden.Status())
	assert.Equal(t, http.StatusNotFound, KindNotFound.Status())
	assert.Equal(t, http.StatusConflict, KindConflict.Status())
	assert.Equal(t, http.StatusServiceUnavailable, KindUnavailable.Status())
	assert.Equal(t, http.StatusInternalServerError, KindInternal.Status())
}

func TestPublicMessage_HidesInternalCause(t *testing.T) {
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("pq: relation does not exist")))
	assert.Equal(t, "Internal server error", PublicMessage(Internal(errors.New("disk full"))))
	assert.Equal(t, "Purchase has no items", PublicMessage(Invalid("Purchase has no items")))
}

func TestConflict_Unwraps(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Conflict("Duplicate value", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "duplicate key")
}
