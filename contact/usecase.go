package contact

import "context"

type Service interface {
	ListContacts(ctx context.Context) ([]Contact, error)
	GetContact(ctx context.Context, id string) (Contact, error)
	AddContact(ctx context.Context, c Contact) (Contact, error)
	UpdateContact(ctx context.Context, id string, name, number string) (Contact, error)
	RemoveContact(ctx context.Context, id string) error
	CountContacts(ctx context.Context) (int64, error)
}

// Repository is the store holding contacts. Implementations enforce
// CheckConstraints on every write, report ErrMalformedID for identifiers
// they cannot address and ErrContactNotFound for missing records.
type Repository interface {
	AllContacts(ctx context.Context) ([]Contact, error)
	ContactByID(ctx context.Context, id string) (Contact, error)
	CreateContact(ctx context.Context, c Contact) (Contact, error)
	UpdateContact(ctx context.Context, c Contact) (Contact, error)
	DeleteContact(ctx context.Context, id string) error
	CountContacts(ctx context.Context) (int64, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListContacts(ctx context.Context) ([]Contact, error) {
	return uc.r.AllContacts(ctx)
}

func (uc *Usecase) GetContact(ctx context.Context, id string) (Contact, error) {
	return uc.r.ContactByID(ctx, id)
}

// AddContact stores a new contact. Field constraints are left to the store.
func (uc *Usecase) AddContact(ctx context.Context, c Contact) (Contact, error) {
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}
	c.ID = ""
	return uc.r.CreateContact(ctx, c)
}

// UpdateContact overwrites name and number of an existing contact exactly as
// given. Unlike AddContact no presence check is made here.
func (uc *Usecase) UpdateContact(ctx context.Context, id string, name, number string) (Contact, error) {
	c, err := uc.r.ContactByID(ctx, id)
	if err != nil {
		return Contact{}, err
	}

	c.Name = name
	c.Number = number
	return uc.r.UpdateContact(ctx, c)
}

// RemoveContact deletes a contact. Removing a missing contact is not an error.
func (uc *Usecase) RemoveContact(ctx context.Context, id string) error {
	return uc.r.DeleteContact(ctx, id)
}

func (uc *Usecase) CountContacts(ctx context.Context) (int64, error) {
	return uc.r.CountContacts(ctx)
}
