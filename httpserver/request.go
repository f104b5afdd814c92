package httpserver

import (
	"phonebook/contact"
)

// ContactRequest is the body of create and update requests. Absent fields
// decode to empty strings.
type ContactRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

func (r ContactRequest) ToContact() contact.Contact {
	return contact.Contact{
		Name:   r.Name,
		Number: r.Number,
	}
}
