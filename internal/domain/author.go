package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyAuthorName is returned by NewAuthorName when the input is empty
// after trimming.
var ErrEmptyAuthorName = errors.New("author name cannot be empty")

// AuthorName is a validated, non-empty author display name. The zero value is
// invalid; always construct via NewAuthorName.
type AuthorName struct {
	value string
}

// NewAuthorName trims raw and returns a valid AuthorName, or
// ErrEmptyAuthorName if nothing remains after trimming.
func NewAuthorName(raw string) (AuthorName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return AuthorName{}, ErrEmptyAuthorName
	}
	return AuthorName{value: trimmed}, nil
}

// String returns the display value.
func (n AuthorName) String() string { return n.value }

// IsZero reports whether the name was never constructed.
func (n AuthorName) IsZero() bool { return n.value == "" }

// InvalidEmailError reports input that failed email validation. It carries
// the rejected value for user-facing messaging.
type InvalidEmailError struct {
	Input string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("%s is not a valid email address", e.Input)
}

// EmailAddress is a validated email address. Optional on an Author; the zero
// value means "not provided".
type EmailAddress struct {
	value string
}

// NewEmailAddress trims raw and validates it, returning an *InvalidEmailError
// on failure.
func NewEmailAddress(raw string) (EmailAddress, error) {
	trimmed := strings.TrimSpace(raw)
	if err := validateEmailAddress(trimmed); err != nil {
		return EmailAddress{}, err
	}
	return EmailAddress{value: trimmed}, nil
}

// validateEmailAddress is the single substitution point for the email rule.
// Current rule: the input must parse as a bare RFC 5322 addr-spec with no
// display name. Not a full RFC 5322 implementation.
func validateEmailAddress(trimmed string) error {
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Name != "" || addr.Address != trimmed {
		return &InvalidEmailError{Input: trimmed}
	}
	return nil
}

// String returns the address, or "" if not provided.
func (e EmailAddress) String() string { return e.value }

// IsZero reports whether no address was provided.
func (e EmailAddress) IsZero() bool { return e.value == "" }

// Author is a uniquely identifiable, uniquely named author. Authors are
// created only through the author service and never mutated afterwards.
type Author struct {
	ID    uuid.UUID
	Name  AuthorName
	Email EmailAddress // optional
}

// CreateAuthorRequest carries the validated fields required to create an
// Author. It is transient and never persisted itself.
type CreateAuthorRequest struct {
	Name  AuthorName
	Email EmailAddress // optional
}

// NewCreateAuthorRequest builds a request from already-validated value types.
func NewCreateAuthorRequest(name AuthorName, email EmailAddress) CreateAuthorRequest {
	return CreateAuthorRequest{Name: name, Email: email}
}
