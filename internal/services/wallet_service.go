package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dbm "loyalty/internal/models/db_models"
	req "loyalty/internal/models/request_models"
	resp "loyalty/internal/models/response_models"
	"loyalty/internal/repositories"
	"loyalty/pkg/utils"
)

type WalletServiceInterface interface {
	// Register upserts the customer behind the join form (email preferred,
	// phone second, name-only last resort), ensures the wallet row exists and
	// mints the pass serial.
	Register(ctx context.Context, request req.WalletRegisterRequest) (*resp.WalletRegisterResponse, error)

	// PassData materializes the fields the Apple/Google pass issuers consume.
	PassData(ctx context.Context, customerID uuid.UUID) (*resp.WalletPassResponse, error)

	// BusinessJoinQR renders the printable QR pointing at the join form.
	BusinessJoinQR(ctx context.Context, businessID uuid.UUID, baseURL string) ([]byte, error)
}

type WalletService struct {
	customerRepo repositories.CustomerRepository
	businessRepo repositories.BusinessRepository
	walletRepo   repositories.WalletRepository
}

func NewWalletService(
	customerRepo repositories.CustomerRepository,
	businessRepo repositories.BusinessRepository,
	walletRepo repositories.WalletRepository,
) WalletServiceInterface {
	return &WalletService{
		customerRepo: customerRepo,
		businessRepo: businessRepo,
		walletRepo:   walletRepo,
	}
}

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonPhonePattern = regexp.MustCompile(`[^\d+]`)
)

func sanitizeText(value string, max int) string {
	value = strings.TrimSpace(value)
	if len(value) > max {
		value = value[:max]
	}
	return value
}

func sanitizeEmail(value string) string {
	value = strings.TrimSpace(value)
	if emailPattern.MatchString(value) {
		return value
	}
	return ""
}

func sanitizePhone(value string) string {
	value = nonPhonePattern.ReplaceAllString(value, "")
	if len(value) >= 6 {
		return value
	}
	return ""
}

func (w *WalletService) Register(ctx context.Context, request req.WalletRegisterRequest) (*resp.WalletRegisterResponse, error) {
	businessID, err := uuid.Parse(request.BusinessID)
	if err != nil {
		return nil, utils.ErrValidationFailed
	}
	name := sanitizeText(request.Name, 120)
	if name == "" {
		return nil, utils.ErrValidationFailed
	}
	email := sanitizeEmail(request.Email)
	phone := sanitizePhone(request.Phone)

	business, err := w.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if business == nil {
		return nil, utils.ErrBusinessNotFound
	}

	customer, err := w.resolveCustomer(ctx, businessID, name, email, phone)
	if err != nil {
		return nil, err
	}

	if customer.WalletSerial == nil {
		serial := uuid.New().String()
		if err := w.customerRepo.AssignWalletSerial(ctx, customer.ID, serial); err != nil {
			return nil, utils.ErrDatabaseError
		}
		// Re-read: a concurrent registration may have won the assignment.
		refreshed, err := w.customerRepo.FindByID(ctx, customer.ID)
		if err != nil || refreshed == nil {
			return nil, utils.ErrDatabaseError
		}
		customer = refreshed
	}

	wallet, err := w.walletRepo.EnsureExists(ctx, businessID, customer.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	passData, err := json.Marshal(map[string]interface{}{
		"serial":        *customer.WalletSerial,
		"business_name": business.Name,
		"points":        wallet.Points,
	})
	if err == nil {
		// Cache is advisory; registration does not fail on it.
		_ = w.walletRepo.SavePassData(ctx, wallet.ID, datatypes.JSON(passData))
	}

	return &resp.WalletRegisterResponse{
		CustomerID:       customer.ID.String(),
		WalletSerial:     *customer.WalletSerial,
		AppleInstallURL:  fmt.Sprintf("/apple-wallet/generate/%s", customer.ID),
		GoogleInstallURL: fmt.Sprintf("/google-wallet/generate-link/%s", customer.ID),
	}, nil
}

// resolveCustomer prefers the email identity, falls back to phone, and only
// then creates an unverified name-only record.
func (w *WalletService) resolveCustomer(ctx context.Context, businessID uuid.UUID, name, email, phone string) (*dbm.Customer, error) {
	if email != "" {
		existing, err := w.customerRepo.FindByBusinessAndEmail(ctx, businessID, email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			// Refresh blanks on the existing record, keep everything else.
			var phonePtr *string
			if phone != "" {
				phonePtr = &phone
			}
			if err := w.customerRepo.UpdateContact(ctx, existing.ID, name, phonePtr); err != nil {
				return nil, utils.ErrDatabaseError
			}
			return existing, nil
		}

		customer := &dbm.Customer{BusinessID: businessID, Name: name, Email: &email}
		if phone != "" {
			customer.Phone = &phone
		}
		if err := w.customerRepo.Insert(ctx, customer); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Concurrent join with the same email; take their row.
				existing, ferr := w.customerRepo.FindByBusinessAndEmail(ctx, businessID, email)
				if ferr != nil || existing == nil {
					return nil, utils.ErrDatabaseError
				}
				return existing, nil
			}
			return nil, utils.ErrDatabaseError
		}
		return customer, nil
	}

	if phone != "" {
		existing, err := w.customerRepo.FindByBusinessAndPhone(ctx, businessID, phone)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return existing, nil
		}

		customer := &dbm.Customer{BusinessID: businessID, Name: name, Phone: &phone}
		if err := w.customerRepo.Insert(ctx, customer); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return customer, nil
	}

	customer := &dbm.Customer{BusinessID: businessID, Name: name}
	if err := w.customerRepo.Insert(ctx, customer); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return customer, nil
}

func (w *WalletService) PassData(ctx context.Context, customerID uuid.UUID) (*resp.WalletPassResponse, error) {
	customer, err := w.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if customer == nil {
		return nil, utils.ErrCustomerNotFound
	}

	business, err := w.businessRepo.FindByID(ctx, customer.BusinessID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if business == nil {
		return nil, utils.ErrBusinessNotFound
	}

	response := &resp.WalletPassResponse{
		CustomerID:   customer.ID.String(),
		BusinessName: business.Name,
		Points:       customer.Points,
	}
	if customer.WalletSerial != nil {
		response.WalletSerial = *customer.WalletSerial
	}

	wallet, err := w.walletRepo.FindByOwner(ctx, customer.BusinessID, customer.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if wallet != nil && wallet.LastScanned != nil {
		lastScanned := wallet.LastScanned.Unix()
		response.LastScanned = &lastScanned
	}

	return response, nil
}

func (w *WalletService) BusinessJoinQR(ctx context.Context, businessID uuid.UUID, baseURL string) ([]byte, error) {
	business, err := w.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if business == nil {
		return nil, utils.ErrBusinessNotFound
	}

	joinLink := fmt.Sprintf("%s/api/wallet/start/%s", strings.TrimRight(baseURL, "/"), businessID)
	return utils.QRCodePNG(joinLink, 384)
}
