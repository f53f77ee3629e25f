package services

import (
	"context"
	"testing"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_CreateAndGet(t *testing.T) {
	f := newFixture(t, ConfirmContactDeletes)
	ctx := context.Background()

	created, err := f.accounts.Create(ctx, models.NewAccount{Name: "Ana", LastName: ptr("García"), Email: "ana@example.com", Password: "secreto"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, fixedNow.Equal(created.CreatedAt))
	assert.NotEqual(t, "secreto", created.PasswordHash)

	got, err := f.accounts.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, ptr("García"), got.LastName)

	ok, err := f.hasher.Verify("secreto", got.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := f.accounts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAccountService_CreateErrors(t *testing.T) {
	f := newFixture(t, ConfirmContactDeletes)
	ctx := context.Background()
	f.account(t, "Ana", "ana@example.com")

	_, err := f.accounts.Create(ctx, models.NewAccount{Name: "Otra", Email: "ana@example.com", Password: "x"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Contains(t, err.Error(), "ana@example.com")

	_, err = f.accounts.Create(ctx, models.NewAccount{Name: "Sin email", Password: "x"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = f.accounts.Create(ctx, models.NewAccount{Name: "Mal", Email: "no-es-email", Password: "x"})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestAccountService_GetUnknown(t *testing.T) {
	f := newFixture(t, ConfirmContactDeletes)

	_, err := f.accounts.Get(context.Background(), 404)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.EqualError(t, err, "usuario 404 no encontrado")
}

func TestAccountService_UpdateMerges(t *testing.T) {
	f := newFixture(t, ConfirmContactDeletes)
	ctx := context.Background()
	a := f.account(t, "Ana", "ana@example.com")
	oldHash := a.PasswordHash

	updated, err := f.accounts.Update(ctx, a.ID, models.AccountPatch{LastName: models.Some("Pérez")})
	require.NoError(t, err)
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, "ana@example.com", updated.Email)
	assert.Equal(t, ptr("Pérez"), updated.LastName)
	assert.Equal(t, oldHash, updated.PasswordHash)

	updated, err = f.accounts.Update(ctx, a.ID, models.AccountPatch{Password: models.Some("nuevo")})
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, updated.PasswordHash)

	stored, err := f.accounts.Get(ctx, a.ID)
	require.NoError(t, err)
	ok, err := f.hasher.Verify("nuevo", stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, ptr("Pérez"), stored.LastName)
}

func TestAccountService_UpdateErrors(t *testing.T) {
	f := newFixture(t, ConfirmContactDeletes)
	ctx := context.Background()
	ana := f.account(t, "Ana", "ana@example.com")
	f.account(t, "Luis", "luis@example.com")

	_, err := f.accounts.Update(ctx, ana.ID, models.AccountPatch{Email: models.Some("luis@example.com")})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = f.accounts.Update(ctx, ana.ID, models.AccountPatch{Name: models.Null[string]()})
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = f.accounts.Update(ctx, 999, models.AccountPatch{Name: models.Some("X")})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	stored, err := f.accounts.Get(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", stored.Email)
	assert.Equal(t, "Ana", stored.Name)
}

func TestAccountService_DeleteCascadesContacts(t *testing.T) {
	f := newFixture(t, ConfirmContactDeletes)
	ctx := context.Background()
	a := f.account(t, "Ana", "ana@example.com")
	c := f.contact(t, a.ID, models.NewContact{Name: "Luis", Phone: "1"})

	require.NoError(t, f.accounts.Delete(ctx, a.ID, false))

	_, err := f.contacts.Get(ctx, c.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, f.accounts.Delete(ctx, a.ID, false), common.ErrorNotFound)
}

func TestAccountService_DeleteUnderConfirmAll(t *testing.T) {
	f := newFixture(t, ConfirmAllDeletes)
	ctx := context.Background()
	a := f.account(t, "Ana", "ana@example.com")

	assert.ErrorIs(t, f.accounts.Delete(ctx, a.ID, false), common.ErrorValidation)
	_, err := f.accounts.Get(ctx, a.ID)
	require.NoError(t, err)

	require.NoError(t, f.accounts.Delete(ctx, a.ID, true))
}

func TestAccountService_EmailIgnoresCase(t *testing.T) {
	f := newFixture(t, ConfirmContactDeletes)
	ctx := context.Background()
	a := f.account(t, "Ana", "Ana@Example.com")
	assert.Equal(t, "ana@example.com", a.Email)

	_, err := f.accounts.Create(ctx, models.NewAccount{Name: "Otra", Email: "ANA@example.com", Password: "x"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	other := f.account(t, "Luis", "luis@example.com")
	_, err = f.accounts.Update(ctx, other.ID, models.AccountPatch{Email: models.Some("ANA@EXAMPLE.COM")})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := f.auth.Login(ctx, "ANA@example.COM", "secreto")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}
