package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeBill(t *testing.T) {
	tests := []struct {
		name          string
		in            BillingInput
		wantSurcharge string
		wantSubtotal  string
		wantTax       string
		wantTotal     string
		wantBalance   string
	}{
		{
			name: "urgent order with work charges",
			in: BillingInput{
				BaseGarmentPrice:  d("1000"),
				WorkTypeCharges:   []decimal.Decimal{d("200")},
				IsUrgent:          true,
				UrgencyMultiplier: d("1.20"),
				TaxRate:           d("10"),
				AdvanceAmount:     d("500"),
			},
			wantSurcharge: "240.00",
			wantSubtotal:  "1440.00",
			wantTax:       "144.00",
			wantTotal:     "1584.00",
			wantBalance:   "1084.00",
		},
		{
			name: "regular order with alterations",
			in: BillingInput{
				BaseGarmentPrice:  d("800"),
				WorkTypeCharges:   []decimal.Decimal{d("150"), d("50")},
				AlterationCharges: []decimal.Decimal{d("100")},
				UrgencyMultiplier: d("1.20"),
				TaxRate:           d("18"),
				AdvanceAmount:     d("0"),
			},
			wantSurcharge: "0.00",
			wantSubtotal:  "1100.00",
			wantTax:       "198.00",
			wantTotal:     "1298.00",
			wantBalance:   "1298.00",
		},
		{
			name: "overpaid advance yields negative balance",
			in: BillingInput{
				BaseGarmentPrice:  d("600"),
				UrgencyMultiplier: d("1.20"),
				TaxRate:           d("0"),
				AdvanceAmount:     d("700"),
			},
			wantSurcharge: "0.00",
			wantSubtotal:  "600.00",
			wantTax:       "0.00",
			wantTotal:     "600.00",
			wantBalance:   "-100.00",
		},
		{
			name: "fractional tax rounds to two places",
			in: BillingInput{
				BaseGarmentPrice:  d("999.99"),
				UrgencyMultiplier: d("1.50"),
				IsUrgent:          true,
				TaxRate:           d("18"),
				AdvanceAmount:     d("0"),
			},
			// surcharge 999.99 * 0.50 = 500.00 (rounded), tax on 1499.99
			wantSurcharge: "500.00",
			wantSubtotal:  "1499.99",
			wantTax:       "270.00",
			wantTotal:     "1769.99",
			wantBalance:   "1769.99",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bill := ComputeBill(tc.in)

			assert.Equal(t, tc.wantSurcharge, bill.UrgencySurcharge.StringFixed(2))
			assert.Equal(t, tc.wantSubtotal, bill.Subtotal.StringFixed(2))
			assert.Equal(t, tc.wantTax, bill.TaxAmount.StringFixed(2))
			assert.Equal(t, tc.wantTotal, bill.TotalAmount.StringFixed(2))
			assert.Equal(t, tc.wantBalance, bill.BalanceAmount.StringFixed(2))
		})
	}
}

func TestComputeBillKeepsInputsVerbatim(t *testing.T) {
	in := BillingInput{
		BaseGarmentPrice:  d("1000"),
		WorkTypeCharges:   []decimal.Decimal{d("100"), d("200")},
		AlterationCharges: []decimal.Decimal{d("50")},
		UrgencyMultiplier: d("1.20"),
		TaxRate:           d("18"),
		AdvanceAmount:     d("300"),
	}

	bill := ComputeBill(in)

	assert.True(t, bill.BaseGarmentPrice.Equal(d("1000")))
	assert.True(t, bill.WorkTypeCharges.Equal(d("300")))
	assert.True(t, bill.AlterationCharges.Equal(d("50")))
	assert.True(t, bill.TaxRate.Equal(d("18")))
	assert.True(t, bill.AdvanceAmount.Equal(d("300")))
}

func TestInvoiceDueDate(t *testing.T) {
	invoiceDate := time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC)
	due := invoiceDueDate(invoiceDate, 14)
	assert.Equal(t, "2025-04-08", due.Format("2006-01-02"))
}

type fakeTrialRepo struct{ billable []entities.Alteration }

func (f *fakeTrialRepo) CreateTrial(_ context.Context, _ entities.Trial) (*entities.Trial, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTrialRepo) FindTrial(_ context.Context, _ uint64) (*entities.Trial, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTrialRepo) GetTrialsByOrderID(_ context.Context, _ uint64) ([]entities.Trial, error) {
	return nil, nil
}

func (f *fakeTrialRepo) UpdateTrial(_ context.Context, _ uint64, _ dto.UpdateTrialDTO) (*entities.Trial, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTrialRepo) CreateAlteration(_ context.Context, _ entities.Alteration) (*entities.Alteration, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTrialRepo) FindAlteration(_ context.Context, _ uint64) (*entities.Alteration, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTrialRepo) GetAlterationsByOrderID(_ context.Context, _ uint64) ([]entities.Alteration, error) {
	return nil, nil
}

func (f *fakeTrialRepo) SetAlterationStatusInTx(_ context.Context, _ pgx.Tx, _ uint64, _ string) (*entities.Alteration, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTrialRepo) GetBillableAlterationChargesInTx(_ context.Context, _ pgx.Tx, _ uint64) ([]entities.Alteration, error) {
	return f.billable, nil
}

type fakeConfigRepo struct{ cfg entities.SystemConfiguration }

func (f *fakeConfigRepo) Get(_ context.Context) (*entities.SystemConfiguration, error) {
	c := f.cfg
	return &c, nil
}

func (f *fakeConfigRepo) Update(_ context.Context, _ dto.UpdateSystemConfigurationDTO, _ uint64) (*entities.SystemConfiguration, error) {
	return nil, errors.New("not implemented")
}

// Recomputation reads every pricing input through its own transaction so the
// derived bill reflects one snapshot of the order.
func TestRecomputeBillInTxSingleSnapshot(t *testing.T) {
	orders := &fakeOrderRepo{
		order: entities.Order{
			ID:                42,
			OrderNumber:       "ORD-2025-0001",
			IsUrgent:          true,
			UrgencyMultiplier: d("1.20"),
		},
		workTypes: []entities.OrderWorkType{
			{ID: 1, OrderID: 42, WorkTypeID: 3, ExtraCharge: d("200"), WorkTypeName: "Lining"},
		},
	}
	bills := &fakeBillRepo{bill: entities.OrderBill{
		ID:               5,
		OrderID:          42,
		BaseGarmentPrice: d("1000"),
		AdvanceAmount:    d("500"),
	}}
	trials := &fakeTrialRepo{billable: []entities.Alteration{}}
	cfg := &fakeConfigRepo{cfg: entities.SystemConfiguration{
		TaxRate:           d("10"),
		UrgencyMultiplier: d("1.20"),
		InvoiceDueDays:    14,
	}}
	svc := NewBillingService(bills, orders, trials, cfg,
		&fakeInvoiceRepo{}, fakeTxManager{}, zap.NewNop())

	updated, err := svc.RecomputeBillInTx(context.Background(), nil, 42)

	require.NoError(t, err)
	assert.Equal(t, "1584.00", updated.TotalAmount.StringFixed(2))
	assert.Equal(t, "1084.00", updated.BalanceAmount.StringFixed(2))
	assert.Zero(t, orders.workTypeReadsViaPool,
		"work types must be read through the open transaction")
	assert.True(t, bills.bill.TotalAmount.Equal(updated.TotalAmount))
}
