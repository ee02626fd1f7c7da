package service

import (
	"context"
	"testing"

	"restaurant_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRemoveAddress(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "a@test.com", domain.RoleCustomer, "Home", "Work")
	a := NewAddresses(db)
	ctx := context.Background()

	list, err := a.Append(ctx, user.ID, "  Gym  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "Work", "Gym"}, list)

	list, err = a.RemoveAt(ctx, user.ID, len(list)-1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "Work"}, list, "removing the appended entry restores the list")

	list, err = a.RemoveAt(ctx, user.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Work"}, list)

	stored, err := a.List(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Work"}, stored)
}

func TestAddressesAllowDuplicates(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "d@test.com", domain.RoleCustomer)
	a := NewAddresses(db)
	ctx := context.Background()

	_, err := a.Append(ctx, user.ID, "Home")
	require.NoError(t, err)
	list, err := a.Append(ctx, user.ID, "Home")
	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "Home"}, list)
}

func TestAppendEmptyAddress(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "e@test.com", domain.RoleCustomer)
	_, err := NewAddresses(db).Append(context.Background(), user.ID, "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRemoveOutOfRangeLeavesListUntouched(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "r@test.com", domain.RoleCustomer, "Home")
	a := NewAddresses(db)
	ctx := context.Background()

	for _, index := range []int{-1, 1, 7} {
		_, err := a.RemoveAt(ctx, user.ID, index)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
	list, err := a.List(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Home"}, list)

	var reloaded domain.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.EqualValues(t, 0, reloaded.AddressVersion)
}

func TestRemoveLastAddressStoresEmptyArray(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "l@test.com", domain.RoleCustomer, "Only")
	list, err := NewAddresses(db).RemoveAt(context.Background(), user.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	var raw string
	require.NoError(t, db.Raw("SELECT addresses FROM users WHERE id = ?", user.ID).Scan(&raw).Error)
	assert.Equal(t, "[]", raw)
}

func TestStaleAddressWriteConflicts(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "s@test.com", domain.RoleCustomer, "Home")
	a := NewAddresses(db)
	ctx := context.Background()

	_, err := a.mutate(ctx, user.ID, func(list []string) ([]string, error) {
		// Another request saves in between our read and our write
		_, err := a.Append(ctx, user.ID, "Work")
		require.NoError(t, err)
		return append(list, "Gym"), nil
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	list, err := a.List(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "Work"}, list)
}

func TestAddressesUnknownUser(t *testing.T) {
	a := NewAddresses(newTestDB(t))
	_, err := a.List(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = a.Append(context.Background(), 42, "Home")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
