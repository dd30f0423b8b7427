package httpclient

import (
	"encoding/json"
	"net/http"

	"github.com/talx-hub/nexus-sdk/serviceerrs"
)

type errorBody struct {
	Message string `json:"message"`
}

// Normalize maps a non-2xx response to one of the remote error kinds.
// Only the message field of the body is ever surfaced.
func Normalize(status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized:
		return serviceerrs.NewAuthenticationError(status)
	case http.StatusBadRequest:
		return serviceerrs.NewBadRequestError(serverMessage(body), status)
	default:
		return serviceerrs.NewServerError(serverMessage(body), status)
	}
}

func serverMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return eb.Message
}
