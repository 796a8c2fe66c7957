package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/denmor86/ya-pickupdesk/internal/client"
	"github.com/denmor86/ya-pickupdesk/internal/scanner"
	"github.com/denmor86/ya-pickupdesk/internal/settings"
	"github.com/denmor86/ya-pickupdesk/internal/validators"
)

// Describe - сообщение об ошибке для оператора. Подробности пишутся в журнал отдельно.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var (
		netErr      *client.NetworkError
		httpErr     *client.HTTPError
		rejectedErr *client.APIRejectedError
	)
	switch {
	case errors.Is(err, scanner.ErrWrongQRType):
		return "This QR code is not an order pickup code"
	case errors.Is(err, scanner.ErrEmptyScan):
		return "Scan is empty"
	case errors.Is(err, validators.ErrTokenTooShort):
		return "QR code is too short to be an order code"
	case errors.Is(err, ErrNotConfigured):
		return "API URL is not configured, open settings"
	case errors.Is(err, settings.ErrEmptyURL), errors.Is(err, settings.ErrInvalidScheme):
		return err.Error()
	case errors.Is(err, ErrIssueRejected):
		return "Order service refused to issue the order"
	case errors.Is(err, ErrIssueUnavailable):
		return "Order cannot be issued in its current status"
	case errors.Is(err, client.ErrServiceUnavailable):
		return "Order service is temporarily unavailable, try again later"
	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return "Server did not respond in time"
		}
		return "No connection to the server"
	case errors.As(err, &rejectedErr):
		return rejectedErr.Message
	case errors.As(err, &httpErr):
		switch {
		case httpErr.StatusCode == http.StatusNotFound:
			return "Order not found"
		case httpErr.StatusCode == http.StatusUnauthorized, httpErr.StatusCode == http.StatusForbidden:
			return "Access to the order service denied"
		case httpErr.StatusCode >= http.StatusInternalServerError:
			return fmt.Sprintf("Order service error (%d)", httpErr.StatusCode)
		default:
			return fmt.Sprintf("Unexpected response from order service (%d)", httpErr.StatusCode)
		}
	case errors.Is(err, client.ErrMalformedResponse):
		return "Order service returned an invalid response"
	default:
		return "Unexpected error: " + err.Error()
	}
}
