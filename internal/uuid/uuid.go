// Package uuid wraps google/uuid with the URI binding hook that the
// :id route parameters need.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID is the identifier type for all Kukkaro resources.
type UUID struct {
	google_uuid.UUID
}

// Nil is the zero UUID. An absent URI parameter binds to it.
var Nil UUID

// New returns a random UUID.
func New() UUID {
	return UUID{google_uuid.New()}
}

// NewString returns a random UUID in its canonical string form.
func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam implements gin's binding.BindUnmarshaler so that a UUID
// binds directly from a URI parameter. An empty parameter binds to Nil,
// the "required" binding tag rejects it afterwards.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
