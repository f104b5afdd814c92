package postgres

import (
	"context"
	"errors"
	"phonebook/contact"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactModel represents the database model for contacts
type ContactModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Number    string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (ContactModel) TableName() string {
	return "persons"
}

// BeforeCreate assigns the identifier of a new contact.
func (m *ContactModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeSave rejects writes that violate the contact schema.
func (m *ContactModel) BeforeSave(_ *gorm.DB) error {
	return contact.CheckConstraints(m.toDomain())
}

func (m ContactModel) toDomain() contact.Contact {
	return contact.Contact{
		ID:     m.ID.String(),
		Name:   m.Name,
		Number: m.Number,
	}
}

// ContactRepository implements contact.Repository interface
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) AllContacts(ctx context.Context) ([]contact.Contact, error) {
	var models []ContactModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&models).Error; err != nil {
		return nil, err
	}

	contacts := make([]contact.Contact, len(models))
	for i, model := range models {
		contacts[i] = model.toDomain()
	}
	return contacts, nil
}

func (r *ContactRepository) ContactByID(ctx context.Context, id string) (contact.Contact, error) {
	uid, err := contact.ParseID(id)
	if err != nil {
		return contact.Contact{}, err
	}

	var model ContactModel
	err = r.db.WithContext(ctx).Where("id = ?", uid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return contact.Contact{}, contact.ErrContactNotFound
		}
		return contact.Contact{}, err
	}

	return model.toDomain(), nil
}

// CreateContact creates a new contact in the database
func (r *ContactRepository) CreateContact(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	model := ContactModel{
		Name:   c.Name,
		Number: c.Number,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return contact.Contact{}, err
	}
	return model.toDomain(), nil
}

// UpdateContact overwrites name and number of the contact with c.ID.
func (r *ContactRepository) UpdateContact(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	uid, err := contact.ParseID(c.ID)
	if err != nil {
		return contact.Contact{}, err
	}

	model := ContactModel{
		ID:     uid,
		Name:   c.Name,
		Number: c.Number,
	}
	res := r.db.WithContext(ctx).Model(&model).Select("name", "number").Updates(&model)
	if res.Error != nil {
		return contact.Contact{}, res.Error
	}
	if res.RowsAffected == 0 {
		return contact.Contact{}, contact.ErrContactNotFound
	}

	return model.toDomain(), nil
}

// DeleteContact removes a contact. Deleting a missing row is not an error.
func (r *ContactRepository) DeleteContact(ctx context.Context, id string) error {
	uid, err := contact.ParseID(id)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", uid).Delete(&ContactModel{}).Error
}

func (r *ContactRepository) CountContacts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ContactModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
