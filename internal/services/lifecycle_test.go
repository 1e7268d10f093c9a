package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	"tailorshop/internal/repositories"
	"tailorshop/pkg/constants"
	apperrors "tailorshop/pkg/errors"
	"tailorshop/pkg/eventbus"
	"tailorshop/pkg/utils"
)

type fakeCacheRepo struct{ data map[string]string }

func newFakeCacheRepo() *fakeCacheRepo { return &fakeCacheRepo{data: map[string]string{}} }

func (f *fakeCacheRepo) Get(_ context.Context, key string) (string, error) {
	if v, ok := f.data[key]; ok {
		return v, nil
	}
	return "", errors.New("cache miss")
}

func (f *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.data[key] = fmt.Sprint(value)
	return nil
}

func (f *fakeCacheRepo) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

type fakeStatusRepo struct{ statuses []entities.OrderStatus }

func (f *fakeStatusRepo) GetStatuses(_ context.Context) ([]entities.OrderStatus, error) {
	return f.statuses, nil
}

func (f *fakeStatusRepo) FindStatus(_ context.Context, id uint64) (*entities.OrderStatus, error) {
	for i := range f.statuses {
		if f.statuses[i].ID == id {
			return &f.statuses[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeStatusRepo) FindByCode(_ context.Context, code string) (*entities.OrderStatus, error) {
	for i := range f.statuses {
		if f.statuses[i].Code == code {
			return &f.statuses[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeStatusRepo) CreateStatus(_ context.Context, status entities.OrderStatus) (*entities.OrderStatus, error) {
	status.ID = uint64(len(f.statuses) + 1)
	f.statuses = append(f.statuses, status)
	return &status, nil
}

type fakeTransitionRepo struct{ transitions []entities.StatusTransition }

func (f *fakeTransitionRepo) GetTransitions(_ context.Context) ([]entities.StatusTransition, error) {
	return f.transitions, nil
}

func (f *fakeTransitionRepo) GetTransitionsFrom(_ context.Context, fromStatusID uint64) ([]entities.StatusTransition, error) {
	var out []entities.StatusTransition
	for _, t := range f.transitions {
		if t.FromStatusID == fromStatusID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransitionRepo) FindTransition(_ context.Context, fromStatusID, toStatusID uint64) (*entities.StatusTransition, error) {
	for i := range f.transitions {
		if f.transitions[i].FromStatusID == fromStatusID && f.transitions[i].ToStatusID == toStatusID {
			return &f.transitions[i], nil
		}
	}
	return nil, apperrors.ErrInvalidTransition
}

func (f *fakeTransitionRepo) CreateTransition(_ context.Context, t entities.StatusTransition) (*entities.StatusTransition, error) {
	t.ID = uint64(len(f.transitions) + 1)
	f.transitions = append(f.transitions, t)
	return &t, nil
}

func (f *fakeTransitionRepo) DeleteTransition(_ context.Context, id uint64) error {
	for i := range f.transitions {
		if f.transitions[i].ID == id {
			f.transitions = append(f.transitions[:i], f.transitions[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeOrderRepo struct {
	order entities.Order

	// statusAtLock simulates a concurrent writer: when non-zero the locked
	// read observes this status instead of the unlocked one.
	statusAtLock uint64

	setStatusTo uint64
	deliveredAt *time.Time

	// work-type lines are served by the transactional read; pool reads are
	// counted so recompute tests can prove they stay inside the snapshot.
	workTypes            []entities.OrderWorkType
	workTypeReadsViaPool int
}

func (f *fakeOrderRepo) FindOrder(_ context.Context, id uint64) (*entities.Order, error) {
	if id != f.order.ID {
		return nil, apperrors.ErrNotFound
	}
	o := f.order
	return &o, nil
}

func (f *fakeOrderRepo) FindOrderForUpdateInTx(_ context.Context, _ pgx.Tx, id uint64) (*entities.Order, error) {
	if id != f.order.ID {
		return nil, apperrors.ErrNotFound
	}
	o := f.order
	if f.statusAtLock != 0 {
		o.CurrentStatusID = f.statusAtLock
	}
	return &o, nil
}

func (f *fakeOrderRepo) SetOrderStatusInTx(_ context.Context, _ pgx.Tx, orderID, toStatusID uint64, deliveredAt *time.Time) error {
	if orderID != f.order.ID {
		return apperrors.ErrNotFound
	}
	f.order.CurrentStatusID = toStatusID
	f.setStatusTo = toStatusID
	f.deliveredAt = deliveredAt
	return nil
}

func (f *fakeOrderRepo) FindOrderDetail(_ context.Context, id uint64) (*dto.OrderResponseDTO, error) {
	if id != f.order.ID {
		return nil, apperrors.ErrNotFound
	}
	return &dto.OrderResponseDTO{
		ID:            f.order.ID,
		OrderNumber:   f.order.OrderNumber,
		CurrentStatus: dto.ShortStatusDTO{ID: f.order.CurrentStatusID},
	}, nil
}

func (f *fakeOrderRepo) CreateOrderInTx(_ context.Context, _ pgx.Tx, _ entities.Order) (*entities.Order, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeOrderRepo) AddOrderWorkTypeInTx(_ context.Context, _ pgx.Tx, _ entities.OrderWorkType) error {
	return errors.New("not implemented")
}

func (f *fakeOrderRepo) GetOrders(_ context.Context, _, _ uint64, _ dto.OrderFilterDTO) ([]dto.OrderResponseDTO, uint64, error) {
	return nil, 0, errors.New("not implemented")
}

func (f *fakeOrderRepo) GetOrderWorkTypes(_ context.Context, _ uint64) ([]entities.OrderWorkType, error) {
	f.workTypeReadsViaPool++
	return f.workTypes, nil
}

func (f *fakeOrderRepo) GetOrderWorkTypesInTx(_ context.Context, _ pgx.Tx, _ uint64) ([]entities.OrderWorkType, error) {
	return f.workTypes, nil
}

func (f *fakeOrderRepo) UpdateOrder(_ context.Context, _ uint64, _ dto.UpdateOrderDTO) error {
	return errors.New("not implemented")
}

func (f *fakeOrderRepo) SoftDeleteOrder(_ context.Context, _ uint64) error {
	return errors.New("not implemented")
}

type historyRecord struct {
	fromStatusID uint64
	toStatusID   uint64
	changedByID  uint64
	changeReason *string
}

type fakeHistoryRepo struct{ records []historyRecord }

func (f *fakeHistoryRepo) CreateInTx(_ context.Context, _ pgx.Tx, orderID, fromStatusID, toStatusID, changedByID uint64, changeReason *string) error {
	f.records = append(f.records, historyRecord{fromStatusID, toStatusID, changedByID, changeReason})
	return nil
}

func (f *fakeHistoryRepo) GetByOrderID(_ context.Context, _ uint64) ([]dto.OrderHistoryDTO, error) {
	return nil, nil
}

type fakePaymentRepo struct {
	payments []entities.Payment
	modes    []entities.PaymentMode
}

func (f *fakePaymentRepo) HasCompletedPayment(_ context.Context, _ repositories.Querier, orderID uint64) (bool, error) {
	for _, p := range f.payments {
		if p.OrderID == orderID && p.Status == constants.PaymentCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePaymentRepo) CreateInTx(_ context.Context, _ pgx.Tx, payment entities.Payment) (*entities.Payment, error) {
	payment.ID = uint64(len(f.payments) + 1)
	payment.PaidAt = time.Now()
	f.payments = append(f.payments, payment)
	return &payment, nil
}

func (f *fakePaymentRepo) GetByOrderID(_ context.Context, orderID uint64) ([]entities.Payment, error) {
	out := make([]entities.Payment, 0)
	for _, p := range f.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) SumCompletedInTx(_ context.Context, _ pgx.Tx, orderID uint64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range f.payments {
		if p.OrderID == orderID && p.Status == constants.PaymentCompleted {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

func (f *fakePaymentRepo) GetPaymentModes(_ context.Context) ([]entities.PaymentMode, error) {
	return f.modes, nil
}

func (f *fakePaymentRepo) FindPaymentMode(_ context.Context, id uint64) (*entities.PaymentMode, error) {
	for i := range f.modes {
		if f.modes[i].ID == id {
			return &f.modes[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

type fakeActivityRepo struct{ logs []entities.ActivityLog }

func (f *fakeActivityRepo) Create(_ context.Context, log entities.ActivityLog) error {
	f.logs = append(f.logs, log)
	return nil
}

func (f *fakeActivityRepo) CreateInTx(_ context.Context, _ pgx.Tx, log entities.ActivityLog) error {
	f.logs = append(f.logs, log)
	return nil
}

func (f *fakeActivityRepo) GetByEntity(_ context.Context, _ string, _ uint64, _, _ uint64) ([]entities.ActivityLog, uint64, error) {
	return nil, 0, nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

const (
	stitchingID = 3
	readyID     = 6
	deliveredID = 7
	closedID    = 8
)

type lifecycleFixture struct {
	svc      *OrderLifecycleService
	orders   *fakeOrderRepo
	history  *fakeHistoryRepo
	payments *fakePaymentRepo
	activity *fakeActivityRepo
}

func newLifecycleFixture(t *testing.T, currentStatusID uint64) *lifecycleFixture {
	t.Helper()

	statuses := &fakeStatusRepo{statuses: []entities.OrderStatus{
		{ID: stitchingID, Code: constants.StatusStitching, Label: "Stitching", Sequence: 3},
		{ID: readyID, Code: constants.StatusReady, Label: "Ready", Sequence: 6},
		{ID: deliveredID, Code: constants.StatusDelivered, Label: "Delivered", Sequence: 7, IsTerminal: true},
		{ID: closedID, Code: constants.StatusClosed, Label: "Closed", Sequence: 8, IsTerminal: true},
	}}
	transitions := &fakeTransitionRepo{transitions: []entities.StatusTransition{
		{ID: 1, FromStatusID: stitchingID, ToStatusID: readyID, AllowedRoles: []string{constants.RoleStaff, constants.RoleAdmin}},
		{ID: 2, FromStatusID: readyID, ToStatusID: deliveredID,
			AllowedRoles: []string{constants.RoleDelivery, constants.RoleStaff, constants.RoleAdmin},
			Precondition: utils.Ptr(constants.PreconditionPaymentCompleted)},
		{ID: 3, FromStatusID: deliveredID, ToStatusID: closedID, AllowedRoles: []string{constants.RoleStaff, constants.RoleAdmin}},
	}}

	logger := zap.NewNop()
	registry := NewStatusRegistryService(statuses, transitions, newFakeCacheRepo(), logger, time.Minute)

	f := &lifecycleFixture{
		orders: &fakeOrderRepo{order: entities.Order{
			ID:              42,
			OrderNumber:     "ORD-2025-0001",
			CurrentStatusID: currentStatusID,
		}},
		history:  &fakeHistoryRepo{},
		payments: &fakePaymentRepo{},
		activity: &fakeActivityRepo{},
	}
	f.svc = NewOrderLifecycleService(registry, f.orders, f.history, f.payments, f.activity,
		fakeTxManager{}, eventbus.New(logger), logger)
	return f
}

func actorCtx(roles ...string) context.Context {
	return utils.WithActor(context.Background(), 7, roles)
}

func TestAttemptTransitionHappyPath(t *testing.T) {
	f := newLifecycleFixture(t, stitchingID)

	resp, err := f.svc.AttemptTransition(actorCtx(constants.RoleStaff), 42,
		dto.ChangeOrderStatusDTO{ToStatusID: readyID, ChangeReason: utils.Ptr("stitching done")})

	require.NoError(t, err)
	assert.Equal(t, uint64(readyID), resp.CurrentStatus.ID)
	assert.Equal(t, uint64(readyID), f.orders.setStatusTo)
	assert.Nil(t, f.orders.deliveredAt)

	require.Len(t, f.history.records, 1)
	assert.Equal(t, uint64(stitchingID), f.history.records[0].fromStatusID)
	assert.Equal(t, uint64(readyID), f.history.records[0].toStatusID)
	assert.Equal(t, uint64(7), f.history.records[0].changedByID)
	require.NotNil(t, f.history.records[0].changeReason)
	assert.Equal(t, "stitching done", *f.history.records[0].changeReason)

	require.Len(t, f.activity.logs, 1)
	assert.Equal(t, constants.ActionStatusChange, f.activity.logs[0].Action)
	assert.Equal(t, constants.EntityOrder, f.activity.logs[0].EntityType)
}

func TestAttemptTransitionUnknownEdge(t *testing.T) {
	f := newLifecycleFixture(t, stitchingID)

	_, err := f.svc.AttemptTransition(actorCtx(constants.RoleStaff), 42,
		dto.ChangeOrderStatusDTO{ToStatusID: deliveredID})

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Empty(t, f.history.records)
}

func TestAttemptTransitionUnknownTargetStatus(t *testing.T) {
	f := newLifecycleFixture(t, stitchingID)

	_, err := f.svc.AttemptTransition(actorCtx(constants.RoleStaff), 42,
		dto.ChangeOrderStatusDTO{ToStatusID: 999})

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestAttemptTransitionRoleNotAllowed(t *testing.T) {
	f := newLifecycleFixture(t, stitchingID)

	_, err := f.svc.AttemptTransition(actorCtx(constants.RoleTailor), 42,
		dto.ChangeOrderStatusDTO{ToStatusID: readyID})

	assert.ErrorIs(t, err, apperrors.ErrRoleNotAllowed)
	assert.Empty(t, f.history.records)
}

func TestAttemptTransitionPreconditionBlocked(t *testing.T) {
	f := newLifecycleFixture(t, readyID)
	// A pending payment is not enough; only a completed one counts.
	f.payments.payments = []entities.Payment{
		{OrderID: 42, Status: constants.PaymentPending, Amount: decimal.NewFromInt(500)},
	}

	_, err := f.svc.AttemptTransition(actorCtx(constants.RoleDelivery), 42,
		dto.ChangeOrderStatusDTO{ToStatusID: deliveredID})

	var pe *apperrors.PreconditionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, constants.PreconditionPaymentCompleted, pe.Rule)
	assert.Empty(t, f.history.records)
}

func TestAttemptTransitionPreconditionSatisfied(t *testing.T) {
	f := newLifecycleFixture(t, readyID)
	// One completed payment is enough even when it covers only part of the
	// bill; settlement lives on the invoice, not on the delivery gate.
	f.payments.payments = []entities.Payment{
		{OrderID: 42, Status: constants.PaymentCompleted, Amount: decimal.NewFromInt(500)},
	}

	resp, err := f.svc.AttemptTransition(actorCtx(constants.RoleDelivery), 42,
		dto.ChangeOrderStatusDTO{ToStatusID: deliveredID})

	require.NoError(t, err)
	assert.Equal(t, uint64(deliveredID), resp.CurrentStatus.ID)
	require.NotNil(t, f.orders.deliveredAt, "delivery must stamp the actual delivery time")
	assert.WithinDuration(t, time.Now(), *f.orders.deliveredAt, time.Minute)
}

func TestAttemptTransitionOutOfClosed(t *testing.T) {
	f := newLifecycleFixture(t, closedID)

	_, err := f.svc.AttemptTransition(actorCtx(constants.RoleAdmin), 42,
		dto.ChangeOrderStatusDTO{ToStatusID: readyID})

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestAttemptTransitionDeliveredToClosed(t *testing.T) {
	f := newLifecycleFixture(t, deliveredID)

	resp, err := f.svc.AttemptTransition(actorCtx(constants.RoleStaff), 42,
		dto.ChangeOrderStatusDTO{ToStatusID: closedID})

	require.NoError(t, err)
	assert.Equal(t, uint64(closedID), resp.CurrentStatus.ID)
	// closing does not touch the delivery timestamp
	assert.Nil(t, f.orders.deliveredAt)
}

func TestAttemptTransitionConcurrentChange(t *testing.T) {
	f := newLifecycleFixture(t, stitchingID)
	f.orders.statusAtLock = readyID

	_, err := f.svc.AttemptTransition(actorCtx(constants.RoleStaff), 42,
		dto.ChangeOrderStatusDTO{ToStatusID: readyID})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Empty(t, f.history.records)
}

func TestAttemptTransitionWithoutActor(t *testing.T) {
	f := newLifecycleFixture(t, stitchingID)

	_, err := f.svc.AttemptTransition(context.Background(), 42,
		dto.ChangeOrderStatusDTO{ToStatusID: readyID})

	assert.ErrorIs(t, err, apperrors.ErrUserIDNotFoundInContext)
}

func TestAvailableTransitionsFilteredByRole(t *testing.T) {
	f := newLifecycleFixture(t, readyID)

	available, err := f.svc.AvailableTransitions(actorCtx(constants.RoleDelivery), 42)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, constants.StatusDelivered, available[0].ToStatus.Code)
	require.NotNil(t, available[0].Precondition)
	assert.Equal(t, constants.PreconditionPaymentCompleted, *available[0].Precondition)

	available, err = f.svc.AvailableTransitions(actorCtx(constants.RoleTailor), 42)
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestAvailableTransitionsTerminalStatus(t *testing.T) {
	f := newLifecycleFixture(t, closedID)

	available, err := f.svc.AvailableTransitions(actorCtx(constants.RoleAdmin), 42)
	require.NoError(t, err)
	assert.Empty(t, available)
}
