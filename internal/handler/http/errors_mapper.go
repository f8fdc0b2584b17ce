package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/sealed-vitae/internal/service"
)

// errorStatuses is checked in order; the first match wins. Context errors
// come first because a cancelled load also wraps ErrBundleUnavailable.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrRequestTooLarge, http.StatusRequestEntityTooLarge},
	{ErrInvalidJSON, http.StatusBadRequest},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{context.Canceled, http.StatusServiceUnavailable},
	{service.ErrBundleUnavailable, http.StatusServiceUnavailable},
	{service.ErrNoBundleSource, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	http.Error(w, http.StatusText(status), status)
}
