// Package form holds the per-entity form state controllers. Each controller
// drives one editable record through Idle → Loading → Ready → Submitting →
// (Succeeded | Failed). A failed submit returns to Ready with field-level
// and submit-level error annotations attached, preserving every user-entered
// value; a successful submit is terminal for the form instance and fires the
// caller-supplied completion callback.
package form

import (
	"errors"

	"github.com/travel-content-admin/internal/content"
	"github.com/travel-content-admin/internal/upstream"
)

// State is the lifecycle phase of a form instance
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateSubmitting
	StateSucceeded
)

// String returns the lowercase state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	}
	return "unknown"
}

// ErrNotReady is returned when an operation is attempted in the wrong state,
// e.g. submitting while a submit is already in flight
var ErrNotReady = errors.New("form is not ready")

// ErrValidation is returned when pre-submit validation blocks the submit.
// The per-field messages are on the controller.
var ErrValidation = errors.New("validation failed")

// machine is the shared state and error-annotation bookkeeping embedded in
// every controller
type machine struct {
	state       State
	fieldErrors map[string]string
	submitError string
	onSuccess   func()
}

// State returns the current lifecycle phase
func (m *machine) State() State {
	return m.state
}

// FieldErrors returns the per-field validation messages from the last
// blocked submit, empty when none
func (m *machine) FieldErrors() map[string]string {
	if m.fieldErrors == nil {
		return map[string]string{}
	}
	return m.fieldErrors
}

// SubmitError returns the submit-level error message from the last failed
// submit, empty when none
func (m *machine) SubmitError() string {
	return m.submitError
}

// blockValidation records field errors and keeps the form Ready. No network
// call happens on this path.
func (m *machine) blockValidation(errs []content.FieldError) error {
	m.fieldErrors = map[string]string{}
	for _, e := range errs {
		m.fieldErrors[e.Field] = e.Message
	}
	m.state = StateReady
	return ErrValidation
}

// fail records a submit-level error and returns the form to Ready with all
// values preserved. Backend errors surface their message; the structured
// payload stays on the error for callers that need it.
func (m *machine) fail(err error) error {
	return m.failAt(err, StateReady)
}

// failAt is fail with an explicit next state, for load-phase failures that
// return to Idle rather than Ready
func (m *machine) failAt(err error, next State) error {
	var ue *upstream.Error
	if errors.As(err, &ue) {
		m.submitError = ue.Message
	} else {
		m.submitError = err.Error()
	}
	m.state = next
	return err
}

// succeed marks the form terminal and fires the completion callback
func (m *machine) succeed() {
	m.state = StateSucceeded
	m.submitError = ""
	m.fieldErrors = nil
	if m.onSuccess != nil {
		m.onSuccess()
	}
}

// clearErrors resets annotations before a new submit attempt
func (m *machine) clearErrors() {
	m.submitError = ""
	m.fieldErrors = nil
}
