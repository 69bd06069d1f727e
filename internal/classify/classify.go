// Package classify maps transport failures into a closed error taxonomy
// with user-facing messages. Classification is pure: no I/O, no state.
package classify

import (
	"errors"
	"net/http"

	"github.com/escolar-hub/escolar-console/internal/infrastructure/external/escolar"
)

// Kind is the closed failure taxonomy of the console.
type Kind int

const (
	Unknown Kind = iota
	Network
	Timeout
	NotFound
	Conflict
	Validation
	Unauthorized
	Server
	// CompetencyViolation is the one business-rule kind: a teacher chosen
	// for a subject outside their competency set. Detected client-side,
	// never produced from a wire response.
	CompetencyViolation
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case Network:
		return "NetworkError"
	case Timeout:
		return "TimeoutError"
	case NotFound:
		return "NotFoundError"
	case Conflict:
		return "ConflictError"
	case Validation:
		return "ValidationError"
	case Unauthorized:
		return "UnauthorizedError"
	case Server:
		return "ServerError"
	case CompetencyViolation:
		return "CompetencyViolation"
	default:
		return "UnknownError"
	}
}

// Error is a classified failure carrying the entity context it occurred
// in and a message suitable for direct display.
type Error struct {
	Kind    Kind
	Entity  string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// Is matches classified errors by kind, so callers can write
// errors.Is(err, &classify.Error{Kind: classify.NotFound}).
func (e *Error) Is(target error) bool {
	var ce *Error
	if errors.As(target, &ce) {
		return e.Kind == ce.Kind
	}
	return false
}

// Classify maps err into the taxonomy for the given entity context.
//
// Order: an already-classified error passes through; no response at all
// is Timeout or Network depending on the failure reason; otherwise the
// HTTP status decides. The message comes from the per-entity template
// table, except that a server-supplied message wins for Validation.
func Classify(err error, entity string) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}

	var terr *escolar.TransportError
	if errors.As(err, &terr) {
		kind := Network
		if terr.Timeout {
			kind = Timeout
		}
		return &Error{Kind: kind, Entity: entity, Message: messageFor(entity, kind), Err: err}
	}

	var rerr *escolar.ResponseError
	if errors.As(err, &rerr) {
		kind := kindForStatus(rerr.StatusCode)
		msg := messageFor(entity, kind)
		if kind == Validation && rerr.Message != "" {
			msg = rerr.Message
		}
		return &Error{Kind: kind, Entity: entity, Message: msg, Err: err}
	}

	return &Error{Kind: Unknown, Entity: entity, Message: messageFor(entity, Unknown), Err: err}
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return NotFound
	case status == http.StatusConflict:
		return Conflict
	case status == http.StatusBadRequest:
		return Validation
	case status == http.StatusUnauthorized:
		return Unauthorized
	case status >= 500:
		return Server
	default:
		return Unknown
	}
}

// NewCompetencyViolation builds the client-side business-rule error for
// a teacher assigned outside their competency set.
func NewCompetencyViolation(entity string) *Error {
	return &Error{
		Kind:    CompetencyViolation,
		Entity:  entity,
		Message: messageFor(entity, CompetencyViolation),
	}
}
