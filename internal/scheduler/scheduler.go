package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type reminderSender interface {
	SendReminders(ctx context.Context) (int, error)
}

// Scheduler periodically sweeps for sessions about to start and sends
// attendee reminders.
type Scheduler struct {
	bookingService reminderSender
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService reminderSender,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sent, err := s.bookingService.SendReminders(ctx)
	if err != nil {
		s.logger.Error("failed to send session reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	if sent > 0 {
		s.logger.Info("session reminders sent",
			logger.Int("count", sent),
		)
	}
}
