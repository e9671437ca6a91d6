// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package location_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardgroup/stratus/internal/core/location"
	"github.com/ardgroup/stratus/internal/platform/apperr"
	"github.com/ardgroup/stratus/pkg/pagination"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	locationsByID map[string]*location.Location
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{locationsByID: make(map[string]*location.Location)}
}

func (repo *fakeRepository) Create(_ context.Context, loc *location.Location) error {
	stored := *loc
	repo.locationsByID[loc.ID] = &stored
	return nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*location.Location, error) {
	if loc, ok := repo.locationsByID[id]; ok {
		found := *loc
		return &found, nil
	}
	return nil, apperr.NotFound("Location")
}

func (repo *fakeRepository) ListByUser(_ context.Context, userID string, params pagination.Params) ([]location.Location, int, error) {
	owned := make([]location.Location, 0)
	for _, loc := range repo.locationsByID {
		if loc.UserID == userID {
			owned = append(owned, *loc)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID > owned[j].ID })

	total := len(owned)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	return owned[start:end], total, nil
}

func (repo *fakeRepository) Update(_ context.Context, loc *location.Location) error {
	if _, ok := repo.locationsByID[loc.ID]; !ok {
		return apperr.NotFound("Location")
	}
	stored := *loc
	repo.locationsByID[loc.ID] = &stored
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := repo.locationsByID[id]; !ok {
		return apperr.NotFound("Location")
	}
	delete(repo.locationsByID, id)
	return nil
}

func floatPtr(f float64) *float64 { return &f }

/*
TestService_Create verifies the owner is stamped from the caller, never the payload.
*/
func TestService_Create(t *testing.T) {
	service := location.NewService(newFakeRepository())

	created, err := service.Create(context.Background(), "owner-1", location.CreateInput{
		Name:      "Quito",
		Latitude:  floatPtr(0),
		Longitude: floatPtr(-78.5),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "owner-1", created.UserID)

	// Zero latitude survives storage as a present value.
	require.NotNil(t, created.Latitude)
	assert.Equal(t, 0.0, *created.Latitude)
}

/*
TestService_Ownership verifies the 404-vs-403 split on single-record access.
*/
func TestService_Ownership(t *testing.T) {
	repository := newFakeRepository()
	service := location.NewService(repository)

	created, err := service.Create(context.Background(), "owner-1", location.CreateInput{Name: "Hanoi"})
	require.NoError(t, err)

	t.Run("owner_reads", func(t *testing.T) {
		found, err := service.Get(context.Background(), "owner-1", created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("other_user_forbidden", func(t *testing.T) {
		_, err := service.Get(context.Background(), "intruder", created.ID)
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})

	t.Run("absent_not_found", func(t *testing.T) {
		_, err := service.Get(context.Background(), "owner-1", "no-such-id")
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("other_user_cannot_update", func(t *testing.T) {
		_, err := service.Update(context.Background(), "intruder", created.ID, location.UpdateInput{Name: "Hijacked"})
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

		// The record is untouched.
		found, err := service.Get(context.Background(), "owner-1", created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hanoi", found.Name)
	})

	t.Run("other_user_cannot_delete", func(t *testing.T) {
		err := service.Delete(context.Background(), "intruder", created.ID)
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

		_, err = service.Get(context.Background(), "owner-1", created.ID)
		assert.NoError(t, err)
	})
}

/*
TestService_Update verifies an owner can modify their own record.
*/
func TestService_Update(t *testing.T) {
	service := location.NewService(newFakeRepository())

	created, err := service.Create(context.Background(), "owner-1", location.CreateInput{Name: "Hanoi"})
	require.NoError(t, err)

	country := "Vietnam"
	updated, err := service.Update(context.Background(), "owner-1", created.ID, location.UpdateInput{
		Name:      "Ha Noi",
		Country:   &country,
		Latitude:  floatPtr(21.03),
		Longitude: floatPtr(105.85),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ha Noi", updated.Name)
	require.NotNil(t, updated.Country)
	assert.Equal(t, "Vietnam", *updated.Country)
	assert.Equal(t, "owner-1", updated.UserID)
}

/*
TestService_List verifies list scoping: each user only sees their own rows.
*/
func TestService_List(t *testing.T) {
	service := location.NewService(newFakeRepository())

	for i := 0; i < 3; i++ {
		_, err := service.Create(context.Background(), "owner-1", location.CreateInput{Name: "A"})
		require.NoError(t, err)
	}
	_, err := service.Create(context.Background(), "owner-2", location.CreateInput{Name: "B"})
	require.NoError(t, err)

	params := pagination.Params{Page: 1, Limit: 10}

	ownerList, meta, err := service.List(context.Background(), "owner-1", params)
	require.NoError(t, err)
	assert.Len(t, ownerList, 3)
	assert.Equal(t, 3, meta.Total)

	otherList, otherMeta, err := service.List(context.Background(), "owner-2", params)
	require.NoError(t, err)
	assert.Len(t, otherList, 1)
	assert.Equal(t, 1, otherMeta.Total)

	for _, loc := range ownerList {
		assert.Equal(t, "owner-1", loc.UserID)
	}
}

/*
TestService_Delete verifies an owner can remove their own record.
*/
func TestService_Delete(t *testing.T) {
	service := location.NewService(newFakeRepository())

	created, err := service.Create(context.Background(), "owner-1", location.CreateInput{Name: "Hanoi"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), "owner-1", created.ID))

	_, err = service.Get(context.Background(), "owner-1", created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
