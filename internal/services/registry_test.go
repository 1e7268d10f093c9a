package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
)

type countingStatusRepo struct {
	inner *fakeStatusRepo
	calls int
}

func (c *countingStatusRepo) GetStatuses(ctx context.Context) ([]entities.OrderStatus, error) {
	c.calls++
	return c.inner.GetStatuses(ctx)
}

func (c *countingStatusRepo) FindStatus(ctx context.Context, id uint64) (*entities.OrderStatus, error) {
	return c.inner.FindStatus(ctx, id)
}

func (c *countingStatusRepo) FindByCode(ctx context.Context, code string) (*entities.OrderStatus, error) {
	return c.inner.FindByCode(ctx, code)
}

func (c *countingStatusRepo) CreateStatus(ctx context.Context, s entities.OrderStatus) (*entities.OrderStatus, error) {
	return c.inner.CreateStatus(ctx, s)
}

type countingTransitionRepo struct {
	inner *fakeTransitionRepo
	calls int
}

func (c *countingTransitionRepo) GetTransitions(ctx context.Context) ([]entities.StatusTransition, error) {
	c.calls++
	return c.inner.GetTransitions(ctx)
}

func (c *countingTransitionRepo) GetTransitionsFrom(ctx context.Context, fromStatusID uint64) ([]entities.StatusTransition, error) {
	return c.inner.GetTransitionsFrom(ctx, fromStatusID)
}

func (c *countingTransitionRepo) FindTransition(ctx context.Context, fromStatusID, toStatusID uint64) (*entities.StatusTransition, error) {
	return c.inner.FindTransition(ctx, fromStatusID, toStatusID)
}

func (c *countingTransitionRepo) CreateTransition(ctx context.Context, t entities.StatusTransition) (*entities.StatusTransition, error) {
	return c.inner.CreateTransition(ctx, t)
}

func (c *countingTransitionRepo) DeleteTransition(ctx context.Context, id uint64) error {
	return c.inner.DeleteTransition(ctx, id)
}

func TestRegistryCachesStatuses(t *testing.T) {
	statuses := &countingStatusRepo{inner: &fakeStatusRepo{statuses: []entities.OrderStatus{
		{ID: 1, Code: "booked", Label: "Booked", Sequence: 1},
	}}}
	transitions := &countingTransitionRepo{inner: &fakeTransitionRepo{}}

	svc := NewStatusRegistryService(statuses, transitions, newFakeCacheRepo(), zap.NewNop(), time.Minute)
	ctx := context.Background()

	first, err := svc.GetStatuses(ctx)
	require.NoError(t, err)
	second, err := svc.GetStatuses(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, statuses.calls, "second read must come from the cache")
}

func TestRegistryInvalidatesOnStatusCreate(t *testing.T) {
	statuses := &countingStatusRepo{inner: &fakeStatusRepo{statuses: []entities.OrderStatus{
		{ID: 1, Code: "booked", Label: "Booked", Sequence: 1},
	}}}
	transitions := &countingTransitionRepo{inner: &fakeTransitionRepo{}}

	svc := NewStatusRegistryService(statuses, transitions, newFakeCacheRepo(), zap.NewNop(), time.Minute)
	ctx := context.Background()

	_, err := svc.GetStatuses(ctx)
	require.NoError(t, err)

	_, err = svc.CreateStatus(ctx, dto.CreateStatusDTO{
		Code: "measuring", Label: "Measuring", Sequence: 2,
	})
	require.NoError(t, err)

	fresh, err := svc.GetStatuses(ctx)
	require.NoError(t, err)

	assert.Len(t, fresh, 2)
	assert.Equal(t, 2, statuses.calls, "create must invalidate the cached set")
}

func TestRegistryInvalidatesOnTransitionChange(t *testing.T) {
	statuses := &countingStatusRepo{inner: &fakeStatusRepo{statuses: []entities.OrderStatus{
		{ID: 1, Code: "booked", Label: "Booked", Sequence: 1},
		{ID: 2, Code: "stitching", Label: "Stitching", Sequence: 2},
	}}}
	transitions := &countingTransitionRepo{inner: &fakeTransitionRepo{}}

	svc := NewStatusRegistryService(statuses, transitions, newFakeCacheRepo(), zap.NewNop(), time.Minute)
	ctx := context.Background()

	_, err := svc.GetTransitions(ctx)
	require.NoError(t, err)

	created, err := svc.CreateTransition(ctx, entities.StatusTransition{FromStatusID: 1, ToStatusID: 2})
	require.NoError(t, err)

	edges, err := svc.GetTransitions(ctx)
	require.NoError(t, err)
	assert.Len(t, edges, 1)

	require.NoError(t, svc.DeleteTransition(ctx, created.ID))

	edges, err = svc.GetTransitions(ctx)
	require.NoError(t, err)
	assert.Empty(t, edges)
}
