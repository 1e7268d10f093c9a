package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	"tailorshop/internal/repositories"
	"tailorshop/pkg/constants"
	apperrors "tailorshop/pkg/errors"
	"tailorshop/pkg/utils"
)

type InventoryService struct {
	fabricRepo   repositories.FabricRepositoryInterface
	orderRepo    repositories.OrderRepositoryInterface
	activityRepo repositories.ActivityLogRepositoryInterface
	txm          repositories.TxManagerInterface
	logger       *zap.Logger
}

func NewInventoryService(
	fabricRepo repositories.FabricRepositoryInterface,
	orderRepo repositories.OrderRepositoryInterface,
	activityRepo repositories.ActivityLogRepositoryInterface,
	txm repositories.TxManagerInterface,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		fabricRepo:   fabricRepo,
		orderRepo:    orderRepo,
		activityRepo: activityRepo,
		txm:          txm,
		logger:       logger,
	}
}

func (s *InventoryService) GetFabrics(ctx context.Context, limit, offset uint64, search string) (*dto.FabricListResponseDTO, error) {
	fabrics, total, err := s.fabricRepo.GetFabrics(ctx, limit, offset, search)
	if err != nil {
		return nil, err
	}
	list := make([]dto.FabricDTO, 0, len(fabrics))
	for i := range fabrics {
		list = append(list, fabricToDTO(&fabrics[i]))
	}
	return &dto.FabricListResponseDTO{List: list, TotalCount: total}, nil
}

func (s *InventoryService) FindFabric(ctx context.Context, id uint64) (*dto.FabricDTO, error) {
	fabric, err := s.fabricRepo.FindFabric(ctx, id)
	if err != nil {
		return nil, err
	}
	fabricDTO := fabricToDTO(fabric)
	return &fabricDTO, nil
}

func (s *InventoryService) CreateFabric(ctx context.Context, payload dto.CreateFabricDTO) (*dto.FabricDTO, error) {
	created, err := s.fabricRepo.CreateFabric(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("fabric created", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	fabricDTO := fabricToDTO(created)
	return &fabricDTO, nil
}

func (s *InventoryService) UpdateFabric(ctx context.Context, id uint64, payload dto.UpdateFabricDTO) (*dto.FabricDTO, error) {
	updated, err := s.fabricRepo.UpdateFabric(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	fabricDTO := fabricToDTO(updated)
	return &fabricDTO, nil
}

// RecordStockMovement appends a ledger entry and adjusts the fabric balance
// in one transaction. IN raises the balance; OUT and DAMAGE lower it;
// ADJUSTMENT applies the signed quantity as given.
func (s *InventoryService) RecordStockMovement(ctx context.Context, payload dto.CreateStockMovementDTO) (*dto.StockMovementDTO, error) {
	actorID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	quantity, err := decimal.NewFromString(payload.Quantity)
	if err != nil || quantity.IsZero() {
		return nil, apperrors.NewInvalidInputError("quantity must be a non-zero amount")
	}
	if quantity.IsNegative() && payload.Kind != constants.StockAdjustment {
		return nil, apperrors.NewInvalidInputError("negative quantities are only valid for adjustments")
	}
	if payload.OrderID != nil {
		if _, err := s.orderRepo.FindOrder(ctx, *payload.OrderID); err != nil {
			return nil, err
		}
	}

	delta := quantity
	switch payload.Kind {
	case constants.StockOut, constants.StockDamage:
		delta = quantity.Neg()
	}

	var created *entities.StockMovement
	err = s.txm.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.fabricRepo.FindFabricForUpdateInTx(ctx, tx, payload.FabricID); err != nil {
			return err
		}
		if err := s.fabricRepo.AdjustQuantityInTx(ctx, tx, payload.FabricID, delta); err != nil {
			return err
		}
		created, err = s.fabricRepo.CreateStockMovementInTx(ctx, tx, entities.StockMovement{
			FabricID:     payload.FabricID,
			Kind:         payload.Kind,
			Quantity:     quantity,
			Reason:       payload.Reason,
			OrderID:      payload.OrderID,
			RecordedByID: actorID,
		})
		if err != nil {
			return err
		}
		return s.activityRepo.CreateInTx(ctx, tx, entities.ActivityLog{
			ActorID:    actorID,
			Action:     constants.ActionUpdate,
			EntityType: constants.EntityInventory,
			EntityID:   payload.FabricID,
			Details:    utils.Ptr(payload.Kind + " " + quantity.String()),
		})
	})
	if err != nil {
		return nil, err
	}

	movementDTO := stockMovementToDTO(created)
	return &movementDTO, nil
}

func (s *InventoryService) GetStockMovements(ctx context.Context, fabricID uint64, limit, offset uint64) ([]dto.StockMovementDTO, uint64, error) {
	movements, total, err := s.fabricRepo.GetStockMovements(ctx, fabricID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	list := make([]dto.StockMovementDTO, 0, len(movements))
	for i := range movements {
		list = append(list, stockMovementToDTO(&movements[i]))
	}
	return list, total, nil
}

// AllocateFabric reserves fabric for an order: it locks the fabric, draws
// down the stock, and records both the allocation and the OUT movement.
func (s *InventoryService) AllocateFabric(ctx context.Context, orderID uint64, payload dto.CreateAllocationDTO) (*dto.AllocationDTO, error) {
	actorID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	quantity, err := decimal.NewFromString(payload.Quantity)
	if err != nil || !quantity.IsPositive() {
		return nil, apperrors.NewInvalidInputError("quantity must be a positive amount")
	}
	if _, err := s.orderRepo.FindOrder(ctx, orderID); err != nil {
		return nil, err
	}

	var created *entities.MaterialAllocation
	var fabricName string
	err = s.txm.RunInTransaction(ctx, func(tx pgx.Tx) error {
		fabric, err := s.fabricRepo.FindFabricForUpdateInTx(ctx, tx, payload.FabricID)
		if err != nil {
			return err
		}
		if fabric.QuantityOnHand.LessThan(quantity) {
			return apperrors.NewPreconditionError("stock_available",
				"fabric %q has %s on hand, %s requested", fabric.Name, fabric.QuantityOnHand.String(), quantity.String())
		}
		fabricName = fabric.Name

		if err := s.fabricRepo.AdjustQuantityInTx(ctx, tx, fabric.ID, quantity.Neg()); err != nil {
			return err
		}
		created, err = s.fabricRepo.CreateAllocationInTx(ctx, tx, entities.MaterialAllocation{
			OrderID:       orderID,
			FabricID:      fabric.ID,
			Quantity:      quantity,
			AllocatedByID: actorID,
		})
		if err != nil {
			return err
		}
		_, err = s.fabricRepo.CreateStockMovementInTx(ctx, tx, entities.StockMovement{
			FabricID:     fabric.ID,
			Kind:         constants.StockOut,
			Quantity:     quantity,
			Reason:       utils.Ptr("allocated to order"),
			OrderID:      &orderID,
			RecordedByID: actorID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &dto.AllocationDTO{
		ID:          created.ID,
		OrderID:     created.OrderID,
		FabricID:    created.FabricID,
		FabricName:  fabricName,
		Quantity:    created.Quantity.String(),
		AllocatedAt: utils.FormatTimestamp(created.AllocatedAt),
	}, nil
}

func (s *InventoryService) GetAllocationsByOrder(ctx context.Context, orderID uint64) ([]dto.AllocationDTO, error) {
	allocations, err := s.fabricRepo.GetAllocationsByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	list := make([]dto.AllocationDTO, 0, len(allocations))
	for _, a := range allocations {
		fabricName := ""
		if fabric, err := s.fabricRepo.FindFabric(ctx, a.FabricID); err == nil {
			fabricName = fabric.Name
		}
		list = append(list, dto.AllocationDTO{
			ID:          a.ID,
			OrderID:     a.OrderID,
			FabricID:    a.FabricID,
			FabricName:  fabricName,
			Quantity:    a.Quantity.String(),
			AllocatedAt: utils.FormatTimestamp(a.AllocatedAt),
		})
	}
	return list, nil
}

func fabricToDTO(f *entities.Fabric) dto.FabricDTO {
	return dto.FabricDTO{
		ID:             f.ID,
		Name:           f.Name,
		Color:          f.Color,
		Material:       f.Material,
		PricePerUnit:   f.PricePerUnit.StringFixed(2),
		Unit:           f.Unit,
		QuantityOnHand: f.QuantityOnHand.String(),
		ReorderLevel:   f.ReorderLevel.String(),
		IsLowStock:     f.QuantityOnHand.LessThanOrEqual(f.ReorderLevel),
		IsActive:       f.IsActive,
		CreatedAt:      utils.FormatTimestamp(f.CreatedAt),
	}
}

func stockMovementToDTO(m *entities.StockMovement) dto.StockMovementDTO {
	return dto.StockMovementDTO{
		ID:         m.ID,
		FabricID:   m.FabricID,
		Kind:       m.Kind,
		Quantity:   m.Quantity.String(),
		Reason:     m.Reason,
		OrderID:    m.OrderID,
		RecordedAt: utils.FormatTimestamp(m.RecordedAt),
	}
}
