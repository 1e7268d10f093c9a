package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	"tailorshop/pkg/constants"
	apperrors "tailorshop/pkg/errors"
	"tailorshop/pkg/eventbus"
)

type fakeBillRepo struct{ bill entities.OrderBill }

func (f *fakeBillRepo) CreateInTx(_ context.Context, _ pgx.Tx, _ entities.OrderBill) (*entities.OrderBill, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBillRepo) FindByOrderID(_ context.Context, orderID uint64) (*entities.OrderBill, error) {
	if orderID != f.bill.OrderID {
		return nil, apperrors.ErrNotFound
	}
	b := f.bill
	return &b, nil
}

func (f *fakeBillRepo) FindByOrderIDInTx(_ context.Context, _ pgx.Tx, orderID uint64) (*entities.OrderBill, error) {
	return f.FindByOrderID(context.Background(), orderID)
}

func (f *fakeBillRepo) UpdateDerivedInTx(_ context.Context, _ pgx.Tx, bill entities.OrderBill) error {
	if bill.OrderID != f.bill.OrderID {
		return apperrors.ErrNotFound
	}
	f.bill = bill
	return nil
}

func (f *fakeBillRepo) AddAdvanceInTx(_ context.Context, _ pgx.Tx, orderID uint64, amount decimal.Decimal) error {
	if orderID != f.bill.OrderID {
		return apperrors.ErrNotFound
	}
	f.bill.AdvanceAmount = f.bill.AdvanceAmount.Add(amount)
	f.bill.BalanceAmount = f.bill.TotalAmount.Sub(f.bill.AdvanceAmount)
	return nil
}

type fakeInvoiceRepo struct {
	invoice   entities.Invoice
	setStatus string
}

func (f *fakeInvoiceRepo) CreateInTx(_ context.Context, _ pgx.Tx, _ entities.Invoice) (*entities.Invoice, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeInvoiceRepo) FindByOrderID(_ context.Context, orderID uint64) (*entities.Invoice, error) {
	if orderID != f.invoice.OrderID {
		return nil, apperrors.ErrNotFound
	}
	inv := f.invoice
	return &inv, nil
}

func (f *fakeInvoiceRepo) FindByNumber(_ context.Context, _ string) (*entities.Invoice, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeInvoiceRepo) GetInvoices(_ context.Context, _, _ uint64, _ string) ([]entities.Invoice, uint64, error) {
	return nil, 0, nil
}

func (f *fakeInvoiceRepo) SetStatusInTx(_ context.Context, _ pgx.Tx, invoiceID uint64, status string) error {
	if invoiceID != f.invoice.ID {
		return apperrors.ErrNotFound
	}
	f.invoice.Status = status
	f.setStatus = status
	return nil
}

func (f *fakeInvoiceRepo) MarkOverdue(_ context.Context) (int64, error) { return 0, nil }

func (f *fakeInvoiceRepo) CountOverdue(_ context.Context) (uint64, error) { return 0, nil }

type fakeUserRepo struct{ users map[uint64]entities.User }

func (f *fakeUserRepo) GetUsers(_ context.Context, _, _ uint64, _ string) ([]entities.User, uint64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) FindUser(_ context.Context, id uint64) (*entities.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*entities.User, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) CreateUser(_ context.Context, _ entities.User, _ []uint64) (*entities.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, _ uint64, _ dto.UpdateUserDTO) (*entities.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) SoftDeleteUser(_ context.Context, _ uint64) error {
	return errors.New("not implemented")
}

func (f *fakeUserRepo) GetUserRoleNames(_ context.Context, _ uint64) ([]string, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetUserIDsByRoleNames(_ context.Context, _ []string) ([]uint64, error) {
	return nil, nil
}

func (f *fakeUserRepo) SetUserRoles(_ context.Context, _ uint64, _ []uint64) error {
	return errors.New("not implemented")
}

type paymentFixture struct {
	svc      *PaymentService
	payments *fakePaymentRepo
	bills    *fakeBillRepo
	invoices *fakeInvoiceRepo
	activity *fakeActivityRepo
}

func newPaymentFixture(t *testing.T, total decimal.Decimal, prior []entities.Payment) *paymentFixture {
	t.Helper()

	advance := decimal.Zero
	for _, p := range prior {
		if p.Status == constants.PaymentCompleted {
			advance = advance.Add(p.Amount)
		}
	}

	logger := zap.NewNop()
	f := &paymentFixture{
		payments: &fakePaymentRepo{
			payments: prior,
			modes: []entities.PaymentMode{
				{ID: 1, Code: "cash", Name: "Cash", IsActive: true},
				{ID: 2, Code: "card", Name: "Card", IsActive: false},
			},
		},
		bills: &fakeBillRepo{bill: entities.OrderBill{
			ID:            5,
			OrderID:       42,
			TotalAmount:   total,
			AdvanceAmount: advance,
			BalanceAmount: total.Sub(advance),
		}},
		invoices: &fakeInvoiceRepo{invoice: entities.Invoice{
			ID:      9,
			OrderID: 42,
			Status:  constants.InvoiceIssued,
		}},
		activity: &fakeActivityRepo{},
	}
	orders := &fakeOrderRepo{order: entities.Order{
		ID:              42,
		OrderNumber:     "ORD-2025-0001",
		CurrentStatusID: readyID,
	}}
	users := &fakeUserRepo{users: map[uint64]entities.User{
		7: {ID: 7, FullName: "Front Desk"},
	}}
	f.svc = NewPaymentService(f.payments, orders, f.bills, f.invoices, users, f.activity,
		fakeTxManager{}, eventbus.New(logger), logger)
	return f
}

func TestRecordPaymentPartialKeepsInvoicePartiallyPaid(t *testing.T) {
	f := newPaymentFixture(t, decimal.NewFromInt(1584), nil)

	resp, err := f.svc.RecordPayment(actorCtx(constants.RoleStaff),
		dto.CreatePaymentDTO{OrderID: 42, PaymentModeID: 1, Amount: "500.00"})

	require.NoError(t, err)
	assert.Equal(t, "500.00", resp.Amount)
	assert.Equal(t, constants.PaymentCompleted, resp.Status)
	assert.Equal(t, "Cash", resp.PaymentMode)

	assert.Equal(t, constants.InvoicePartiallyPaid, f.invoices.setStatus)
	assert.True(t, f.bills.bill.AdvanceAmount.Equal(decimal.NewFromInt(500)))
	assert.True(t, f.bills.bill.BalanceAmount.Equal(decimal.NewFromInt(1084)))
	require.Len(t, f.activity.logs, 1)
	assert.Equal(t, constants.EntityPayment, f.activity.logs[0].EntityType)
}

func TestRecordPaymentSettlementMarksInvoicePaid(t *testing.T) {
	f := newPaymentFixture(t, decimal.NewFromInt(1584), []entities.Payment{
		{ID: 1, OrderID: 42, PaymentModeID: 1, Amount: decimal.NewFromInt(500), Status: constants.PaymentCompleted},
	})

	_, err := f.svc.RecordPayment(actorCtx(constants.RoleStaff),
		dto.CreatePaymentDTO{OrderID: 42, PaymentModeID: 1, Amount: "1084.00"})

	require.NoError(t, err)
	assert.Equal(t, constants.InvoicePaid, f.invoices.setStatus)
	assert.True(t, f.bills.bill.BalanceAmount.IsZero())
}

func TestRecordPaymentRefundedRowsDoNotSettle(t *testing.T) {
	// A refunded payment covers nothing; only completed rows count toward
	// settlement even when their nominal sum exceeds the total.
	f := newPaymentFixture(t, decimal.NewFromInt(1584), []entities.Payment{
		{ID: 1, OrderID: 42, PaymentModeID: 1, Amount: decimal.NewFromInt(1584), Status: constants.PaymentRefunded},
	})

	_, err := f.svc.RecordPayment(actorCtx(constants.RoleStaff),
		dto.CreatePaymentDTO{OrderID: 42, PaymentModeID: 1, Amount: "500.00"})

	require.NoError(t, err)
	assert.Equal(t, constants.InvoicePartiallyPaid, f.invoices.setStatus)
}

func TestRecordPaymentInactiveMode(t *testing.T) {
	f := newPaymentFixture(t, decimal.NewFromInt(1584), nil)

	_, err := f.svc.RecordPayment(actorCtx(constants.RoleStaff),
		dto.CreatePaymentDTO{OrderID: 42, PaymentModeID: 2, Amount: "500.00"})

	var iie *apperrors.InvalidInputError
	require.ErrorAs(t, err, &iie)
	assert.Empty(t, f.invoices.setStatus)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	f := newPaymentFixture(t, decimal.NewFromInt(1584), nil)

	for _, amount := range []string{"0", "-10.00", "abc"} {
		t.Run(amount, func(t *testing.T) {
			_, err := f.svc.RecordPayment(actorCtx(constants.RoleStaff),
				dto.CreatePaymentDTO{OrderID: 42, PaymentModeID: 1, Amount: amount})

			var iie *apperrors.InvalidInputError
			require.ErrorAs(t, err, &iie)
		})
	}
}
