package schedule

import (
	"context"
	"time"

	"classy-weather/internal/domain/usecase/lookup"
	"classy-weather/pkg/log"
	"classy-weather/pkg/msg"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultWarmupTimeout = 30 * time.Second

// CacheWarmupConfig holds the cron expression and the locations to pre-resolve
type CacheWarmupConfig struct {
	CronExpression string
	Locations      []string
	Timeout        time.Duration
}

// CacheWarmupScheduler periodically geocodes a fixed list of locations so their
// entries stay fresh in the geocoding cache
type CacheWarmupScheduler struct {
	cron    *cron.Cron
	useCase lookup.UseCase
	config  *CacheWarmupConfig
}

func NewCacheWarmupScheduler(useCase lookup.UseCase, cronExpression string, locations []string) *CacheWarmupScheduler {
	return &CacheWarmupScheduler{
		cron:    cron.New(),
		useCase: useCase,
		config: &CacheWarmupConfig{
			CronExpression: cronExpression,
			Locations:      locations,
			Timeout:        defaultWarmupTimeout,
		},
	}
}

// InitCacheWarmupTasks registers the warm-up job and starts the cron runner.
// Nothing is scheduled when the location list is empty.
func (s *CacheWarmupScheduler) InitCacheWarmupTasks() error {
	if len(s.config.Locations) == 0 {
		log.Info(msg.GetMessage("cache.warm.disabled"))
		return nil
	}

	if _, err := s.cron.AddFunc(s.config.CronExpression, func() { s.ExecuteScheduledTask() }); err != nil {
		return err
	}

	s.cron.Start()
	log.Info("Geocoding cache warm-up scheduled",
		zap.String("cron", s.config.CronExpression),
		zap.Int("locations", len(s.config.Locations)))
	return nil
}

// ExecuteScheduledTask resolves every configured location once and reports
// how many succeeded and failed
func (s *CacheWarmupScheduler) ExecuteScheduledTask() (warmed int, failed int) {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("cache.warm.start"), zap.String("request_id", requestID))

	for _, location := range s.config.Locations {
		ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
		_, err := s.useCase.ResolveLocation(ctx, location)
		cancel()

		if err != nil {
			failed++
			log.Error(msg.GetMessage("lookup.failed", location, err),
				zap.String("request_id", requestID),
				zap.Error(err))
			continue
		}
		warmed++
	}

	log.Info(msg.GetMessage("cache.warm.end", warmed, failed), zap.String("request_id", requestID))
	return warmed, failed
}

// Stop waits for a running warm-up to finish and stops the cron runner
func (s *CacheWarmupScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
