package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	ID       int64
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Resource == "":
		return "not found"
	case e.ID > 0:
		return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
	default:
		return fmt.Sprintf("%s not found", e.Resource)
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ViajeCerradoError rejects a sale mutation on a closed (fecha, viaje).
// Its message is shown to the user as is.
type ViajeCerradoError struct {
	Fecha string
	Viaje int
}

func (e ViajeCerradoError) Error() string {
	return fmt.Sprintf("El viaje %d del %s está cerrado y no se pueden modificar ventas.", e.Viaje, e.Fecha)
}

type PersistenceOp string

const (
	OpRead  PersistenceOp = "read"
	OpWrite PersistenceOp = "write"
)

// PersistenceError wraps a failure of the backing store, tagged with whether
// the failed call was a read or a write.
type PersistenceError struct {
	Op       PersistenceOp
	Resource string
	Err      error
}

func (e PersistenceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s failed", e.Resource, e.Op)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Resource, e.Op, e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

// ReadFailure and WriteFailure tag err for resource; nil stays nil.
func ReadFailure(resource string, err error) error {
	if err == nil {
		return nil
	}
	return PersistenceError{Op: OpRead, Resource: resource, Err: err}
}

func WriteFailure(resource string, err error) error {
	if err == nil {
		return nil
	}
	return PersistenceError{Op: OpWrite, Resource: resource, Err: err}
}

type UnauthorizedError struct {
	Msg string
}

func (e UnauthorizedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "unauthorized"
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsViajeCerrado(err error) bool {
	var target ViajeCerradoError
	return errors.As(err, &target)
}

func IsReadFailure(err error) bool {
	var target PersistenceError
	return errors.As(err, &target) && target.Op == OpRead
}

func IsWriteFailure(err error) bool {
	var target PersistenceError
	return errors.As(err, &target) && target.Op == OpWrite
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}
