package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"tailorshop/internal/services"
)

// Scheduler owns the background cron jobs. Right now that is a single daily
// sweep flagging unpaid invoices past their due date as overdue.
type Scheduler struct {
	cron    *cron.Cron
	billing *services.BillingService
	logger  *zap.Logger
}

const overdueSweepSchedule = "15 0 * * *"

func NewScheduler(billing *services.BillingService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		billing: billing,
		logger:  logger,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(overdueSweepSchedule, s.runOverdueSweep); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("job scheduler started", zap.String("overdueSweep", overdueSweepSchedule))
	return nil
}

// Stop waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runOverdueSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	flagged, err := s.billing.MarkOverdueInvoices(ctx)
	if err != nil {
		s.logger.Error("overdue invoice sweep failed", zap.Error(err))
		return
	}
	if flagged > 0 {
		s.logger.Info("invoices marked overdue", zap.Int64("count", flagged))
	}
}
