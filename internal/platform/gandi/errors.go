package gandi

import (
	"errors"
	"fmt"

	"github.com/kolo/xmlrpc"
)

// Fault codes reported by the hosting API. Only the ones the CLI reacts
// to are named; everything else surfaces as an opaque APIError.
const (
	faultInvalidAPIKey  = 510150
	faultBadParameter   = 580042
	faultObjectNotFound = 581042
)

// APIError is a fault returned by the hosting API. Faults are terminal:
// the API either accepted the call or it did not, and no call is retried.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gandi api error %d: %s", e.Code, e.Message)
}

// wrapFault converts XML-RPC faults into APIError and leaves transport
// errors untouched.
func wrapFault(err error) error {
	if err == nil {
		return nil
	}
	var fault xmlrpc.FaultError
	if errors.As(err, &fault) {
		return &APIError{Code: fault.Code, Message: fault.String}
	}
	return err
}

func isAPIErrorCode(err error, codes ...int) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, code := range codes {
		if apiErr.Code == code {
			return true
		}
	}
	return false
}

// IsNotFound checks if an error indicates a missing API object.
func IsNotFound(err error) bool {
	return isAPIErrorCode(err, faultObjectNotFound)
}

// IsBadParameter checks if an error indicates a rejected argument.
// These errors are caller mistakes, never transient.
func IsBadParameter(err error) bool {
	return isAPIErrorCode(err, faultBadParameter)
}

// IsAuthFailure checks if an error indicates a bad or expired API key.
func IsAuthFailure(err error) bool {
	return isAPIErrorCode(err, faultInvalidAPIKey)
}
