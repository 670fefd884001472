// Package apperrors turns backend and transport errors into user-facing
// messages. The mapping is best-effort string matching over the status code
// and message text, deliberately lossy: the original detail is dropped in
// favor of something a buyer or gate staffer can act on.
package apperrors

import (
	"errors"
	"net"
	"net/url"
	"strings"

	"eventhub-client/internal/api"
	"eventhub-client/internal/notify"
)

// Category classifies a translated error.
type Category string

const (
	CategoryNetwork    Category = "network"
	CategoryValidation Category = "validation"
	CategoryUser       Category = "user"
	CategorySystem     Category = "system"
)

// Friendly is a translated, user-facing error.
type Friendly struct {
	Message     string
	Category    Category
	IsUserError bool
}

// Severity maps an error category to the notification severity it should be
// shown with: input problems warn, everything else errors.
func Severity(c Category) notify.Severity {
	switch c {
	case CategoryValidation, CategoryUser:
		return notify.SeverityWarning
	case CategoryNetwork, CategorySystem:
		return notify.SeverityError
	default:
		return notify.SeverityError
	}
}

// Translate converts err into a friendly error, falling back to
// defaultMessage when nothing matches.
func Translate(err error, defaultMessage string) Friendly {
	var rawMessage string
	var statusCode int

	var apiErr *api.Error
	var urlErr *url.Error
	var netErr net.Error
	switch {
	case errors.As(err, &apiErr):
		statusCode = apiErr.Status
		rawMessage = apiErr.Message
	case errors.As(err, &urlErr), errors.As(err, &netErr):
		// Transport-level failure, no status at all.
	case err != nil:
		rawMessage = err.Error()
	}

	return translate(rawMessage, statusCode, defaultMessage)
}

func translate(rawMessage string, statusCode int, defaultMessage string) Friendly {
	lower := strings.ToLower(rawMessage)

	// Network problems carry no HTTP status.
	if statusCode == 0 && (rawMessage == "" || strings.Contains(lower, "network") ||
		strings.Contains(lower, "timeout") || strings.Contains(lower, "connection refused")) {
		return Friendly{
			Message:  "Network problem. Please check your connection and try again.",
			Category: CategoryNetwork,
		}
	}

	// Validation and input errors: 4xx except auth.
	if statusCode >= 400 && statusCode < 500 && statusCode != 401 && statusCode != 403 {
		if msg := validationMessage(lower); msg != "" {
			return Friendly{Message: msg, Category: CategoryValidation, IsUserError: true}
		}
	}

	if statusCode == 401 || strings.Contains(lower, "unauthorized") {
		return Friendly{
			Message:  "Your session has expired. Please log in again.",
			Category: CategoryUser,
		}
	}

	if statusCode == 403 || strings.Contains(lower, "forbidden") {
		return Friendly{
			Message:  "You do not have permission to perform this action.",
			Category: CategoryUser,
		}
	}

	if statusCode >= 500 {
		return Friendly{
			Message:  "The server ran into a problem. Please try again later.",
			Category: CategorySystem,
		}
	}

	if f, ok := specificMessage(lower); ok {
		return f
	}

	if defaultMessage == "" {
		defaultMessage = "Something went wrong. Please try again."
	}
	return Friendly{Message: defaultMessage, Category: CategorySystem}
}

// validationMessage maps common backend validation phrases to friendly
// messages. Order matters only in that the first match wins.
func validationMessage(lower string) string {
	pairs := []struct{ needle, message string }{
		{"duplicate", "This already exists. Please use a different one."},
		{"already exists", "This already exists. Please use a different one."},
		{"not found", "The item you are looking for does not exist."},
		{"required", "Please fill in all required fields."},
		{"email", "The email address is not valid."},
		{"password", "The password is not valid."},
		{"too short", "Too short. Please enter more."},
		{"too long", "Too long. Please enter less."},
		{"bad request", "The request was not valid. Please check your input."},
		{"expired", "This has expired. Please try again."},
		{"quota", "No places left. Please try again later."},
		{"limit", "Over the allowed limit. Please try again later."},
		{"insufficient", "Not enough remaining. Please check and try again."},
		{"invalid", "The information you provided is not valid."},
	}
	for _, p := range pairs {
		if strings.Contains(lower, p.needle) {
			return p.message
		}
	}
	return ""
}

// specificMessage maps known backend error texts that arrive without a
// useful status code.
func specificMessage(lower string) (Friendly, bool) {
	pairs := []struct {
		needle string
		f      Friendly
	}{
		{"event not found", Friendly{Message: "This event does not exist or has been removed.", Category: CategoryUser}},
		{"ticket not found", Friendly{Message: "This ticket does not exist.", Category: CategoryUser}},
		{"order not found", Friendly{Message: "This order does not exist.", Category: CategoryUser}},
		{"user not found", Friendly{Message: "This user does not exist.", Category: CategoryUser}},
		{"insufficient quantity", Friendly{Message: "Not enough tickets left. Please choose a smaller quantity.", Category: CategoryUser, IsUserError: true}},
		{"payment failed", Friendly{Message: "The payment did not go through. Please try again.", Category: CategoryUser, IsUserError: true}},
	}
	for _, p := range pairs {
		if strings.Contains(lower, p.needle) {
			return p.f, true
		}
	}
	return Friendly{}, false
}
