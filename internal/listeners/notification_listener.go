package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tailorshop/internal/events"
	"tailorshop/internal/services"
	"tailorshop/pkg/constants"
	"tailorshop/pkg/eventbus"
	"tailorshop/pkg/utils"
)

// NotificationListener turns domain events into in-app notifications for
// the staff roles that act on them.
type NotificationListener struct {
	notifications *services.NotificationService
	logger        *zap.Logger
}

func NewNotificationListener(notifications *services.NotificationService, logger *zap.Logger) *NotificationListener {
	return &NotificationListener{notifications: notifications, logger: logger}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.OrderCreatedName, l.onOrderCreated)
	bus.Subscribe(events.OrderStatusChangedName, l.onOrderStatusChanged)
	bus.Subscribe(events.PaymentRecordedName, l.onPaymentRecorded)
	bus.Subscribe(events.AlterationApprovedName, l.onAlterationApproved)
}

func (l *NotificationListener) onOrderCreated(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderCreated)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Name())
	}
	l.notifications.NotifyRoles(ctx,
		[]string{constants.RoleStaff, constants.RoleTailor},
		"New order",
		fmt.Sprintf("Order %s has been booked", e.OrderNumber),
		utils.Ptr(constants.EntityOrder), &e.OrderID)
	return nil
}

func (l *NotificationListener) onOrderStatusChanged(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderStatusChanged)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Name())
	}
	roles := []string{constants.RoleStaff}
	switch e.ToStatusCode {
	case constants.StatusStitching, constants.StatusAlteration:
		roles = append(roles, constants.RoleTailor)
	case constants.StatusReady:
		roles = append(roles, constants.RoleDelivery)
	}
	l.notifications.NotifyRoles(ctx, roles,
		"Order status changed",
		fmt.Sprintf("Order %s moved from %s to %s", e.OrderNumber, e.FromStatusCode, e.ToStatusCode),
		utils.Ptr(constants.EntityOrder), &e.OrderID)
	return nil
}

func (l *NotificationListener) onPaymentRecorded(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.PaymentRecorded)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Name())
	}
	l.notifications.NotifyRoles(ctx,
		[]string{constants.RoleStaff, constants.RoleAdmin},
		"Payment received",
		fmt.Sprintf("Payment of %s recorded for order %s", e.Amount, e.OrderNumber),
		utils.Ptr(constants.EntityPayment), &e.PaymentID)
	return nil
}

func (l *NotificationListener) onAlterationApproved(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.AlterationApproved)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Name())
	}
	l.notifications.NotifyRoles(ctx,
		[]string{constants.RoleTailor, constants.RoleStaff},
		"Alteration approved",
		fmt.Sprintf("Alteration #%d was approved with charge %s", e.AlterationID, e.Charge),
		utils.Ptr(constants.EntityOrder), &e.OrderID)
	return nil
}
