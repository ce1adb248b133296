package services

import (
	"context"
	"log"
	"time"

	"loyalty/internal/config"
	"loyalty/internal/metrics"
	dbm "loyalty/internal/models/db_models"
	resp "loyalty/internal/models/response_models"
	"loyalty/internal/repositories"
	"loyalty/pkg/utils"
)

type SweepServiceInterface interface {
	// Run inspects every customer for milestone and inactivity conditions.
	// Per-customer push failures are counted and skipped, never fatal to the
	// remaining batch.
	Run(ctx context.Context) (*resp.SweepReport, error)
}

type SweepService struct {
	customerRepo repositories.CustomerRepository
	provider     PushProvider
	cfg          config.SweepConfig
}

func NewSweepService(customerRepo repositories.CustomerRepository, provider PushProvider, cfg config.SweepConfig) SweepServiceInterface {
	return &SweepService{
		customerRepo: customerRepo,
		provider:     provider,
		cfg:          cfg,
	}
}

const (
	milestoneTitle = "🏆 Loyalty Reward"
	milestoneBody  = "You've visited us 20+ times! Ask for your VIP gift 🎁"
	missYouTitle   = "We Miss You 💔"
	missYouBody    = "Haven't seen you in a while. Come back for a treat!"
)

func (s *SweepService) Run(ctx context.Context) (*resp.SweepReport, error) {
	started := time.Now()
	report := &resp.SweepReport{}

	err := s.customerRepo.ForEachBatch(ctx, s.cfg.BatchSize, func(batch []dbm.Customer) error {
		for i := range batch {
			s.inspect(ctx, started, &batch[i], report)
		}
		return nil
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Printf("Sweep completed: %d scanned, %d notified, %d failed in %s",
		report.Scanned, report.Notified, report.Failed, time.Since(started))
	return report, nil
}

// inspect applies both checks independently: a customer over the milestone who
// is also inactive gets both pushes in the same run. Notifications repeat on
// every run a condition still holds; there is no cross-run de-duplication.
func (s *SweepService) inspect(ctx context.Context, now time.Time, customer *dbm.Customer, report *resp.SweepReport) {
	report.Scanned++
	if customer.FCMToken == nil {
		return
	}

	if customer.Points >= s.cfg.MilestoneThreshold {
		s.push(ctx, *customer.FCMToken, milestoneTitle, milestoneBody, report)
	}

	if customer.LastVisit != nil && now.Sub(*customer.LastVisit) >= s.cfg.InactivityWindow {
		s.push(ctx, *customer.FCMToken, missYouTitle, missYouBody, report)
	}
}

func (s *SweepService) push(ctx context.Context, token, title, body string, report *resp.SweepReport) {
	if err := s.provider.Send(ctx, token, title, body); err != nil {
		metrics.SweepNotified.WithLabelValues("failed").Inc()
		log.Printf("Sweep push failed: %v", err)
		report.Failed++
		return
	}
	metrics.SweepNotified.WithLabelValues("sent").Inc()
	report.Notified++
}
