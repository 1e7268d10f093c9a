package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	"tailorshop/internal/repositories"
	"tailorshop/pkg/utils"
)

// BillingInput carries everything bill derivation needs. All pricing inputs
// are passed in explicitly; nothing is read from ambient state.
type BillingInput struct {
	BaseGarmentPrice  decimal.Decimal
	WorkTypeCharges   []decimal.Decimal
	AlterationCharges []decimal.Decimal
	IsUrgent          bool
	UrgencyMultiplier decimal.Decimal
	TaxRate           decimal.Decimal
	AdvanceAmount     decimal.Decimal
}

var decimalHundred = decimal.NewFromInt(100)

// ComputeBill derives the full price breakdown. The urgency surcharge applies
// to the pre-surcharge subtotal, tax applies to the surcharged subtotal, and
// the balance may go negative when the customer has overpaid.
func ComputeBill(in BillingInput) entities.OrderBill {
	workCharges := decimal.Zero
	for _, c := range in.WorkTypeCharges {
		workCharges = workCharges.Add(c)
	}
	alterationCharges := decimal.Zero
	for _, c := range in.AlterationCharges {
		alterationCharges = alterationCharges.Add(c)
	}

	beforeSurcharge := in.BaseGarmentPrice.Add(workCharges).Add(alterationCharges)

	surcharge := decimal.Zero
	if in.IsUrgent {
		surcharge = beforeSurcharge.Mul(in.UrgencyMultiplier.Sub(decimal.NewFromInt(1))).Round(2)
	}

	subtotal := beforeSurcharge.Add(surcharge)
	tax := subtotal.Mul(in.TaxRate).Div(decimalHundred).Round(2)
	total := subtotal.Add(tax)

	return entities.OrderBill{
		BaseGarmentPrice:  in.BaseGarmentPrice,
		WorkTypeCharges:   workCharges,
		AlterationCharges: alterationCharges,
		UrgencySurcharge:  surcharge,
		Subtotal:          subtotal,
		TaxRate:           in.TaxRate,
		TaxAmount:         tax,
		TotalAmount:       total,
		AdvanceAmount:     in.AdvanceAmount,
		BalanceAmount:     total.Sub(in.AdvanceAmount),
	}
}

type BillingService struct {
	billRepo    repositories.BillRepositoryInterface
	orderRepo   repositories.OrderRepositoryInterface
	trialRepo   repositories.TrialRepositoryInterface
	configRepo  repositories.ConfigRepositoryInterface
	invoiceRepo repositories.InvoiceRepositoryInterface
	txm         repositories.TxManagerInterface
	logger      *zap.Logger
}

func NewBillingService(
	billRepo repositories.BillRepositoryInterface,
	orderRepo repositories.OrderRepositoryInterface,
	trialRepo repositories.TrialRepositoryInterface,
	configRepo repositories.ConfigRepositoryInterface,
	invoiceRepo repositories.InvoiceRepositoryInterface,
	txm repositories.TxManagerInterface,
	logger *zap.Logger,
) *BillingService {
	return &BillingService{
		billRepo:    billRepo,
		orderRepo:   orderRepo,
		trialRepo:   trialRepo,
		configRepo:  configRepo,
		invoiceRepo: invoiceRepo,
		txm:         txm,
		logger:      logger,
	}
}

func (s *BillingService) GetBill(ctx context.Context, orderID uint64) (*dto.BillDTO, error) {
	bill, err := s.billRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	billDTO := BillToDTO(bill)
	return &billDTO, nil
}

// RecomputeBill rebuilds every derived amount of the order's bill from its
// current inputs: snapshotted base price and work charges, billable
// alterations, the order's urgency snapshot, and the current tax rate. The
// advance survives recomputation untouched.
func (s *BillingService) RecomputeBill(ctx context.Context, orderID uint64) (*dto.BillDTO, error) {
	var updated *entities.OrderBill
	err := s.txm.RunInTransaction(ctx, func(tx pgx.Tx) error {
		bill, err := s.RecomputeBillInTx(ctx, tx, orderID)
		if err != nil {
			return err
		}
		updated = bill
		return nil
	})
	if err != nil {
		return nil, err
	}
	billDTO := BillToDTO(updated)
	s.logger.Info("bill recomputed",
		zap.Uint64("orderID", orderID),
		zap.String("total", updated.TotalAmount.String()))
	return &billDTO, nil
}

// RecomputeBillInTx is the transactional core of recomputation so callers
// that already hold a transaction (transitions, alteration approval) can
// fold it into their own atomic step.
func (s *BillingService) RecomputeBillInTx(ctx context.Context, tx pgx.Tx, orderID uint64) (*entities.OrderBill, error) {
	order, err := s.orderRepo.FindOrderForUpdateInTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	bill, err := s.billRepo.FindByOrderIDInTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	workTypes, err := s.orderRepo.GetOrderWorkTypesInTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	alterations, err := s.trialRepo.GetBillableAlterationChargesInTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	workCharges := make([]decimal.Decimal, 0, len(workTypes))
	for _, wt := range workTypes {
		workCharges = append(workCharges, wt.ExtraCharge)
	}
	alterationCharges := make([]decimal.Decimal, 0, len(alterations))
	for _, a := range alterations {
		alterationCharges = append(alterationCharges, a.Charge)
	}

	computed := ComputeBill(BillingInput{
		BaseGarmentPrice:  bill.BaseGarmentPrice,
		WorkTypeCharges:   workCharges,
		AlterationCharges: alterationCharges,
		IsUrgent:          order.IsUrgent,
		UrgencyMultiplier: order.UrgencyMultiplier,
		TaxRate:           cfg.TaxRate,
		AdvanceAmount:     bill.AdvanceAmount,
	})
	computed.ID = bill.ID
	computed.OrderID = orderID
	computed.GeneratedAt = bill.GeneratedAt

	if err := s.billRepo.UpdateDerivedInTx(ctx, tx, computed); err != nil {
		return nil, err
	}
	return &computed, nil
}

func BillToDTO(b *entities.OrderBill) dto.BillDTO {
	return dto.BillDTO{
		ID:                b.ID,
		OrderID:           b.OrderID,
		BaseGarmentPrice:  b.BaseGarmentPrice.StringFixed(2),
		WorkTypeCharges:   b.WorkTypeCharges.StringFixed(2),
		AlterationCharges: b.AlterationCharges.StringFixed(2),
		UrgencySurcharge:  b.UrgencySurcharge.StringFixed(2),
		Subtotal:          b.Subtotal.StringFixed(2),
		TaxRate:           b.TaxRate.String(),
		TaxAmount:         b.TaxAmount.StringFixed(2),
		TotalAmount:       b.TotalAmount.StringFixed(2),
		AdvanceAmount:     b.AdvanceAmount.StringFixed(2),
		BalanceAmount:     b.BalanceAmount.StringFixed(2),
		GeneratedAt:       utils.FormatTimestamp(b.GeneratedAt),
		UpdatedAt:         utils.FormatTimestamp(b.UpdatedAt),
	}
}

func InvoiceToDTO(inv *entities.Invoice) dto.InvoiceDTO {
	var issuedAt *string
	if inv.IssuedAt != nil {
		issuedAt = utils.Ptr(utils.FormatTimestamp(*inv.IssuedAt))
	}
	return dto.InvoiceDTO{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		OrderID:       inv.OrderID,
		BillID:        inv.BillID,
		InvoiceDate:   utils.FormatDate(inv.InvoiceDate),
		DueDate:       utils.FormatDate(inv.DueDate),
		CustomerName:  inv.CustomerName,
		CustomerPhone: inv.CustomerPhone,
		Status:        inv.Status,
		IssuedAt:      issuedAt,
		CreatedAt:     utils.FormatTimestamp(inv.CreatedAt),
	}
}

func (s *BillingService) GetInvoiceByOrderID(ctx context.Context, orderID uint64) (*dto.InvoiceDTO, error) {
	inv, err := s.invoiceRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	invDTO := InvoiceToDTO(inv)
	return &invDTO, nil
}

func (s *BillingService) GetInvoices(ctx context.Context, limit, offset uint64, status string) (*dto.InvoiceListResponseDTO, error) {
	invoices, total, err := s.invoiceRepo.GetInvoices(ctx, limit, offset, status)
	if err != nil {
		return nil, err
	}
	list := make([]dto.InvoiceDTO, 0, len(invoices))
	for i := range invoices {
		list = append(list, InvoiceToDTO(&invoices[i]))
	}
	return &dto.InvoiceListResponseDTO{List: list, TotalCount: total}, nil
}

// MarkOverdueInvoices is run by the scheduler.
func (s *BillingService) MarkOverdueInvoices(ctx context.Context) (int64, error) {
	marked, err := s.invoiceRepo.MarkOverdue(ctx)
	if err != nil {
		return 0, err
	}
	if marked > 0 {
		s.logger.Info("invoices marked overdue", zap.Int64("count", marked))
	}
	return marked, nil
}

// invoiceDueDate derives the due date from the invoice date and configured
// net terms.
func invoiceDueDate(invoiceDate time.Time, dueDays int) time.Time {
	return invoiceDate.AddDate(0, 0, dueDays)
}
