package worker

import (
	"context"
	"errors"
	"time"

	"github.com/elverra/zenika-api/internal/config"
	"github.com/elverra/zenika-api/internal/logger"
	"github.com/elverra/zenika-api/internal/queue"

	"github.com/go-co-op/gocron/v2"
	"github.com/hibiken/asynq"
)

const (
	paymentSweepInterval = time.Minute
	planRollInterval     = time.Hour
)

// Service runs the asynq consumer plus the periodic sweeps.
type Service struct {
	name      string
	server    *asynq.Server
	mux       *asynq.ServeMux
	consumer  *Consumer
	scheduler gocron.Scheduler
}

// NewService creates the worker service.
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name reports the service name.
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start runs the consumer until the server shuts down.
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if err := s.startScheduler(); err != nil {
		logger.Warnw("worker_scheduler_start_failed", "error", err)
	}
	_ = ctx
	return s.server.Run(s.mux)
}

// Stop shuts the consumer and scheduler down.
func (s *Service) Stop(ctx context.Context) error {
	if s == nil {
		return nil
	}
	_ = ctx
	if s.scheduler != nil {
		if err := s.scheduler.Shutdown(); err != nil {
			logger.Warnw("worker_scheduler_shutdown_failed", "error", err)
		}
	}
	if s.server != nil {
		s.server.Shutdown()
	}
	return nil
}

func (s *Service) startScheduler() error {
	if s.consumer == nil {
		return nil
	}
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	if s.consumer.PaymentService != nil {
		if _, err := scheduler.NewJob(
			gocron.DurationJob(paymentSweepInterval),
			gocron.NewTask(s.sweepStalePayments),
		); err != nil {
			return err
		}
	}
	if s.consumer.PaymentPlanService != nil {
		if _, err := scheduler.NewJob(
			gocron.DurationJob(planRollInterval),
			gocron.NewTask(s.rollPaymentPlans),
		); err != nil {
			return err
		}
	}
	scheduler.Start()
	s.scheduler = scheduler
	return nil
}

func (s *Service) sweepStalePayments() {
	expired, err := s.consumer.PaymentService.ExpireStale(time.Now())
	if err != nil {
		logger.Warnw("worker_payment_sweep_failed", "error", err)
		return
	}
	if expired > 0 {
		logger.Infow("worker_payment_sweep_expired", "count", expired)
	}
}

func (s *Service) rollPaymentPlans() {
	rolled, err := s.consumer.PaymentPlanService.RollDueDates(time.Now())
	if err != nil {
		logger.Warnw("worker_plan_roll_failed", "error", err)
		return
	}
	if rolled > 0 {
		logger.Infow("worker_plan_roll_advanced", "count", rolled)
	}
}
