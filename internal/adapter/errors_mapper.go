package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elparchetipk/go-auth-api/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx answer into one of the package sentinels,
// carrying the server's envelope message (and itemized validation problems)
// as context.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := envelopeMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrValidation, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	default:
		return fmt.Errorf("%w: unexpected status %d: %s", ErrServer, resp.StatusCode(), message)
	}
}

// envelopeMessage extracts the human-readable failure summary from the
// response body. Validation answers append the per-field problems.
func envelopeMessage(resp *resty.Response) string {
	var envelope models.Response
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil || envelope.Message == "" {
		return strings.TrimSpace(string(resp.Body()))
	}

	if len(envelope.Errors) > 0 {
		return envelope.Message + ": " + strings.Join(envelope.Errors, "; ")
	}

	return envelope.Message
}
