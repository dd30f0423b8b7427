package serviceerrs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantKind   Kind
		wantStatus int
		wantMsg    string
	}{
		{
			"configuration",
			NewConfigurationError("no keys"),
			KindConfiguration, 0, "no keys",
		},
		{
			"validation",
			NewValidationError("Invalid currency: XYZ"),
			KindValidation, 0, "Invalid currency: XYZ",
		},
		{
			"authentication",
			NewAuthenticationError(http.StatusUnauthorized),
			KindAuthentication, http.StatusUnauthorized, MsgUnauthorized,
		},
		{
			"bad request with message",
			NewBadRequestError("X", http.StatusBadRequest),
			KindBadRequest, http.StatusBadRequest, "X",
		},
		{
			"bad request default message",
			NewBadRequestError("", http.StatusBadRequest),
			KindBadRequest, http.StatusBadRequest, MsgBadRequest,
		},
		{
			"server default message",
			NewServerError("", http.StatusNotFound),
			KindServer, http.StatusInternalServerError, MsgUnexpectedServer,
		},
		{
			"transport",
			NewTransportError(context.DeadlineExceeded),
			KindServer, http.StatusInternalServerError, MsgNoResponse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.err.Kind)
			assert.Equal(t, string(tt.wantKind), tt.err.Code())
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestError_HTTPStatusIsIndependentOfTag(t *testing.T) {
	err := NewServerError("gone", http.StatusNotFound)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
}

func TestError_Is(t *testing.T) {
	wrapped := fmt.Errorf("calling members: %w", NewAuthenticationError(http.StatusUnauthorized))

	assert.True(t, errors.Is(wrapped, &Error{Kind: KindAuthentication}))
	assert.True(t, errors.Is(wrapped, &Error{}))
	assert.False(t, errors.Is(wrapped, &Error{Kind: KindServer}))
	assert.False(t, errors.Is(errors.New("plain"), &Error{}))

	assert.True(t, IsKind(wrapped, KindAuthentication))
	assert.False(t, IsKind(wrapped, KindBadRequest))
}

func TestError_UnwrapKeepsCauseOutOfMessage(t *testing.T) {
	err := NewTransportError(context.DeadlineExceeded)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotContains(t, err.Error(), "deadline")
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("wrap: %w", NewValidationError("bad")))
	require.True(t, ok)
	assert.Equal(t, KindValidation, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}
