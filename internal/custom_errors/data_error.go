package custom_errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type DataErrorKind string

const (
	KindNotFound     DataErrorKind = "not_found"
	KindAlreadyTaken DataErrorKind = "already_taken"
	KindMismatch     DataErrorKind = "mismatch"
)

// DataError reports a request whose values conflict with stored data or with
// each other. Properties are JSON pointers into the offending payload.
type DataError struct {
	Kind       DataErrorKind
	Object     string
	Properties []string
}

func NewNotFoundDataError(object string, properties ...string) *DataError {
	return &DataError{Kind: KindNotFound, Object: object, Properties: properties}
}

func NewAlreadyTakenDataError(object string, properties ...string) *DataError {
	return &DataError{Kind: KindAlreadyTaken, Object: object, Properties: properties}
}

func NewMismatchDataError(object string, properties ...string) *DataError {
	return &DataError{Kind: KindMismatch, Object: object, Properties: properties}
}

func (e *DataError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("At least one property of the %s has a value pointing to an resource that could not be found.", e.Object)
	case KindAlreadyTaken:
		return fmt.Sprintf("At least one property of the %s has a value that is already taken.", e.Object)
	case KindMismatch:
		return fmt.Sprintf("The %s contains some properties whose values don't match.", e.Object)
	default:
		return fmt.Sprintf("invalid %s", e.Object)
	}
}

// Status is the HTTP status the transport edge answers with.
func (e *DataError) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusUnprocessableEntity
	case KindAlreadyTaken:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func (e *DataError) AddProperty(property string) {
	e.Properties = append(e.Properties, property)
}

func (e *DataError) MarshalJSON() ([]byte, error) {
	properties := e.Properties
	if properties == nil {
		properties = []string{}
	}
	return json.Marshal(struct {
		Type       DataErrorKind `json:"type"`
		Object     string        `json:"object"`
		Properties []string      `json:"properties"`
		Message    string        `json:"message"`
	}{
		Type:       e.Kind,
		Object:     e.Object,
		Properties: properties,
		Message:    e.Error(),
	})
}

func AsDataError(err error) (*DataError, bool) {
	var dataErr *DataError
	if errors.As(err, &dataErr) {
		return dataErr, true
	}
	return nil, false
}

func IsKind(err error, kind DataErrorKind) bool {
	dataErr, ok := AsDataError(err)
	return ok && dataErr.Kind == kind
}
