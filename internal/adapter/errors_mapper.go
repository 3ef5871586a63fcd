package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-flow/internal/flow"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", flow.ErrInvalidCredentials, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", flow.ErrProviderRejected, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", flow.ErrNotFound, body)
	case http.StatusGone, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", flow.ErrVerificationInvalid, body)
	default:
		return fmt.Errorf("%w: http %d: %s", flow.ErrNetworkFailure, resp.StatusCode(), body)
	}
}
