package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"loyalty/internal/metrics"
	dbm "loyalty/internal/models/db_models"
	resp "loyalty/internal/models/response_models"
	"loyalty/internal/repositories"
	"loyalty/pkg/utils"
)

type ScanServiceInterface interface {
	// ScanByCustomerID awards a manual QR scan. businessID, when present, is
	// the scanning business's identity and must match the customer's owner.
	ScanByCustomerID(ctx context.Context, customerID uuid.UUID, businessID *uuid.UUID) (*resp.ScanResponse, error)

	// ScanByWalletSerial awards a pass scan, enrolling the customer on first
	// contact.
	ScanByWalletSerial(ctx context.Context, serial string, businessID uuid.UUID) (*resp.ScanResponse, error)
}

type ScanService struct {
	scanRepo      repositories.ScanRepository
	businessRepo  repositories.BusinessRepository
	notifications NotificationServiceInterface
	mailing       MailingListServiceInterface
	policy        RewardPolicy
	// defaultWalletType is assigned to customers enrolled by their first pass
	// scan.
	defaultWalletType dbm.RewardType
}

func NewScanService(
	scanRepo repositories.ScanRepository,
	businessRepo repositories.BusinessRepository,
	notifications NotificationServiceInterface,
	mailing MailingListServiceInterface,
	policy RewardPolicy,
	defaultWalletType dbm.RewardType,
) ScanServiceInterface {
	return &ScanService{
		scanRepo:          scanRepo,
		businessRepo:      businessRepo,
		notifications:     notifications,
		mailing:           mailing,
		policy:            policy,
		defaultWalletType: defaultWalletType,
	}
}

func (s *ScanService) ScanByCustomerID(ctx context.Context, customerID uuid.UUID, businessID *uuid.UUID) (*resp.ScanResponse, error) {
	locate := repositories.ScanLocator{
		CustomerID: &customerID,
		BusinessID: businessID,
	}
	return s.performScan(ctx, locate)
}

func (s *ScanService) ScanByWalletSerial(ctx context.Context, serial string, businessID uuid.UUID) (*resp.ScanResponse, error) {
	if serial == "" {
		return nil, utils.ErrValidationFailed
	}
	locate := repositories.ScanLocator{
		BusinessID:       &businessID,
		WalletSerial:     serial,
		CreateRewardType: s.defaultWalletType,
	}
	return s.performScan(ctx, locate)
}

// performScan runs the commit sequence: evaluate under the row lock, persist
// points + logs atomically, then hand the side effects to the dispatchers.
func (s *ScanService) performScan(ctx context.Context, locate repositories.ScanLocator) (*resp.ScanResponse, error) {
	start := time.Now()
	result := "failed"
	defer func() {
		metrics.RecordScanDuration(result, time.Since(start).Seconds())
	}()

	var outcome RewardOutcome
	customer, err := s.scanRepo.PerformScan(ctx, locate, func(c *dbm.Customer) (repositories.ScanMutation, error) {
		// A pass must never award points on the wrong business's behalf.
		if locate.BusinessID != nil && c.BusinessID != *locate.BusinessID {
			return repositories.ScanMutation{}, utils.ErrForbiddenScan
		}

		outcome = s.policy.Evaluate(c.RewardType, c.Points)

		description := outcome.RewardMessage
		if description == "" {
			description = dbm.NoRewardDescription
		}

		return repositories.ScanMutation{
			Points:             outcome.NewPoints,
			ScanCount:          c.ScanCount + 1,
			LastVisit:          time.Now(),
			HistoryDescription: description,
			LogVisit:           locate.BusinessID != nil,
		}, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, utils.ErrCustomerNotFound):
			result = "not_found"
			return nil, err
		case errors.Is(err, utils.ErrForbiddenScan):
			result = "forbidden"
			return nil, err
		case errors.Is(err, utils.ErrValidationFailed):
			result = "invalid"
			return nil, err
		default:
			log.Printf("Scan persistence failed: %v", err)
			return nil, utils.ErrScanFailed
		}
	}

	result = "success"
	if outcome.RewardFired() {
		metrics.RewardsFired.WithLabelValues(string(customer.RewardType)).Inc()
	}

	s.dispatchSideEffects(customer, outcome)

	response := &resp.ScanResponse{
		CustomerID: customer.ID.String(),
		Points:     customer.Points,
		ScanCount:  customer.ScanCount,
		Returning:  customer.ScanCount > 1,
	}
	if outcome.RewardFired() {
		message := outcome.RewardMessage
		response.Reward = &message
	}
	return response, nil
}

// dispatchSideEffects runs after the transaction committed and holds no lock.
// Both channels are best-effort; neither can fail or delay the scan.
func (s *ScanService) dispatchSideEffects(customer *dbm.Customer, outcome RewardOutcome) {
	business, err := s.businessRepo.FindByID(context.Background(), customer.BusinessID)
	if err != nil || business == nil {
		log.Printf("Plan lookup failed for business %s: %v", customer.BusinessID, err)
		return
	}

	if outcome.RewardFired() && business.NotificationsAllowed() && customer.FCMToken != nil {
		s.notifications.Notify(*customer.FCMToken, "🎉 Reward Unlocked!", outcome.RewardMessage)
	}

	if customer.Email != nil && business.MailingSyncAllowed() {
		s.mailing.SyncContact(*customer.Email)
	}
}
