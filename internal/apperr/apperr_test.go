package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("gone")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("nope")))
	assert.Equal(t, KindValidation, KindOf(Validation("bad")))
	assert.Equal(t, KindUnauthenticated, KindOf(Unauthenticated("who")))
	assert.Equal(t, KindConflict, KindOf(Conflict("raced")))
	assert.Equal(t, KindNotImplemented, KindOf(NotImplemented("later")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestKindOfSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("while saving: %w", NotFound("record not found"))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestInternalKeepsCauseForLogs(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("save failed", cause)

	assert.Equal(t, "save failed", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("x"), http.StatusNotFound},
		{Forbidden("x"), http.StatusForbidden},
		{Validation("x"), http.StatusBadRequest},
		{Unauthenticated("x"), http.StatusUnauthorized},
		{Conflict("x"), http.StatusConflict},
		{NotImplemented("x"), http.StatusNotImplemented},
		{Internal("x", errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}
