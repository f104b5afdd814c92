package httpserver

import (
	"phonebook/contact"
)

// ContactResponse is the external shape of a stored contact.
type ContactResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

func newContactResponse(c contact.Contact) ContactResponse {
	return ContactResponse{
		ID:     c.ID,
		Name:   c.Name,
		Number: c.Number,
	}
}

func newContactListResponse(contacts []contact.Contact) []ContactResponse {
	list := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		list = append(list, newContactResponse(c))
	}
	return list
}
