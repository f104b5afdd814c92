package contact

import (
	"strings"

	"phonebook/errs"

	"github.com/google/uuid"
)

var (
	ErrNameMissing     = errs.Errorf(errs.EMISSING, "name missing")
	ErrNumberMissing   = errs.Errorf(errs.EMISSING, "number missing")
	ErrMalformedID     = errs.Errorf(errs.EMALFORMED, "malformatted id")
	ErrContactNotFound = errs.Errorf(errs.ENOTFOUND, "contact not found")
)

// Contact is a single phonebook entry. ID is assigned by the store on
// creation and never changes afterwards.
type Contact struct {
	ID     string
	Name   string
	Number string
}

// Validate checks that the fields required to create a contact are present.
// Name is checked before number.
func (c Contact) Validate() error {
	if c.Name == "" {
		return ErrNameMissing
	}

	if c.Number == "" {
		return ErrNumberMissing
	}

	return nil
}

// ParseID converts an identifier string into the store's id type.
func ParseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, ErrMalformedID
	}
	return parsed, nil
}
