package postgres_test

import (
	"context"
	"phonebook/contact"
	"phonebook/errs"
	"phonebook/postgres"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newSQLiteDB opens a private in-memory database with the persons schema.
func newSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&postgres.ContactModel{}))
	return db
}

func TestContactRepository_CreateContact(t *testing.T) {
	t.Run("assigns an id and stores the contact", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := postgres.NewContactRepository(db)

		created, err := repo.CreateContact(context.Background(), contact.Contact{Name: "Arto Hellas", Number: "040-123456"})

		require.NoError(t, err)
		_, err = uuid.Parse(created.ID)
		assert.NoError(t, err, "id should be a uuid")
		assertContactExists(t, db, created)
	})

	t.Run("rejects constraint violations before writing", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := postgres.NewContactRepository(db)

		_, err := repo.CreateContact(context.Background(), contact.Contact{Name: "Al", Number: "1234"})

		require.Error(t, err)
		assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
		assert.Equal(t, "Name must be at least 3 characters long,Number must be at least 8 characters long", errs.ErrorMessage(err))
		assertContactCount(t, db, 0)
	})
}

func TestContactRepository_AllContacts(t *testing.T) {
	t.Run("returns all contacts", func(t *testing.T) {
		db := newSQLiteDB(t)
		repo := postgres.NewContactRepository(db)
		expected := mustCreateContacts(t, repo, []contact.Contact{
			{Name: "Arto Hellas", Number: "040-123456"},
			{Name: "Ada Lovelace", Number: "39-445323"},
			{Name: "Dan Abramov", Number: "12-4323434"},
		})

		contacts, err := repo.AllContacts(context.Background())

		require.NoError(t, err)
		assert.ElementsMatch(t, expected, contacts)
	})

	t.Run("returns empty list when no contacts exist", func(t *testing.T) {
		repo := postgres.NewContactRepository(newSQLiteDB(t))

		contacts, err := repo.AllContacts(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, contacts)
		assert.Empty(t, contacts)
	})
}

func TestContactRepository_ContactByID(t *testing.T) {
	db := newSQLiteDB(t)
	repo := postgres.NewContactRepository(db)
	stored := mustCreateContacts(t, repo, []contact.Contact{{Name: "Arto Hellas", Number: "040-123456"}})[0]

	t.Run("finds stored contact", func(t *testing.T) {
		found, err := repo.ContactByID(context.Background(), stored.ID)

		require.NoError(t, err)
		assert.Equal(t, stored, found)
	})

	t.Run("reports missing contact", func(t *testing.T) {
		_, err := repo.ContactByID(context.Background(), uuid.NewString())

		assert.Equal(t, contact.ErrContactNotFound, err)
	})

	t.Run("reports malformed id", func(t *testing.T) {
		_, err := repo.ContactByID(context.Background(), "abc")

		assert.Equal(t, contact.ErrMalformedID, err)
	})
}

func TestContactRepository_UpdateContact(t *testing.T) {
	db := newSQLiteDB(t)
	repo := postgres.NewContactRepository(db)
	stored := mustCreateContacts(t, repo, []contact.Contact{{Name: "Arto Hellas", Number: "040-123456"}})[0]

	t.Run("overwrites name and number", func(t *testing.T) {
		want := contact.Contact{ID: stored.ID, Name: "Arto Vihavainen", Number: "045-1232456"}

		updated, err := repo.UpdateContact(context.Background(), want)

		require.NoError(t, err)
		assert.Equal(t, want, updated)
		assertContactExists(t, db, want)
	})

	t.Run("rejects blank number", func(t *testing.T) {
		_, err := repo.UpdateContact(context.Background(), contact.Contact{ID: stored.ID, Name: "Arto Hellas"})

		require.Error(t, err)
		assert.Equal(t, "Number is required", errs.ErrorMessage(err))
	})

	t.Run("reports missing contact", func(t *testing.T) {
		_, err := repo.UpdateContact(context.Background(), contact.Contact{ID: uuid.NewString(), Name: "Arto Hellas", Number: "040-123456"})

		assert.Equal(t, contact.ErrContactNotFound, err)
	})
}

func TestContactRepository_DeleteContact(t *testing.T) {
	db := newSQLiteDB(t)
	repo := postgres.NewContactRepository(db)
	stored := mustCreateContacts(t, repo, []contact.Contact{
		{Name: "Arto Hellas", Number: "040-123456"},
		{Name: "Dan Abramov", Number: "12-4323434"},
	})

	t.Run("deletes contact", func(t *testing.T) {
		err := repo.DeleteContact(context.Background(), stored[0].ID)

		require.NoError(t, err)
		assertContactCount(t, db, 1)
	})

	t.Run("deleting twice is not an error", func(t *testing.T) {
		err := repo.DeleteContact(context.Background(), stored[0].ID)

		assert.NoError(t, err)
		assertContactCount(t, db, 1)
	})

	t.Run("reports malformed id", func(t *testing.T) {
		err := repo.DeleteContact(context.Background(), "abc")

		assert.Equal(t, contact.ErrMalformedID, err)
	})

	t.Run("count follows deletes", func(t *testing.T) {
		count, err := repo.CountContacts(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func mustCreateContacts(t *testing.T, repo *postgres.ContactRepository, contacts []contact.Contact) []contact.Contact {
	t.Helper()
	created := make([]contact.Contact, 0, len(contacts))
	for _, c := range contacts {
		saved, err := repo.CreateContact(context.Background(), c)
		require.NoError(t, err)
		created = append(created, saved)
	}
	return created
}

func assertContactCount(t testing.TB, db *gorm.DB, expected int64) {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&postgres.ContactModel{}).Count(&count).Error)
	assert.Equal(t, expected, count)
}

// assertContactExists verifies that a contact exists in the database with correct values
func assertContactExists(t testing.TB, db *gorm.DB, expected contact.Contact) {
	t.Helper()
	var model postgres.ContactModel
	result := db.Where("id = ?", uuid.MustParse(expected.ID)).First(&model)
	require.NoError(t, result.Error, "contact should exist in database")
	assert.Equal(t, expected.Name, model.Name)
	assert.Equal(t, expected.Number, model.Number)
}
