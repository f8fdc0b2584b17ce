package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const maxErrorBody = 256

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	var kind error
	switch {
	case code == http.StatusNotFound || code == http.StatusGone:
		kind = ErrNotPublished
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		kind = ErrAccessDenied
	case code >= http.StatusInternalServerError || code == http.StatusTooManyRequests:
		kind = ErrOriginUnavailable
	default:
		kind = ErrUnexpectedStatus
	}

	return fmt.Errorf("%w: http %d: %s", kind, code, errorBody(resp))
}

func errorBody(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return body
}
