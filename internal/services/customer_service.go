package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "loyalty/internal/models/db_models"
	req "loyalty/internal/models/request_models"
	resp "loyalty/internal/models/response_models"
	"loyalty/internal/repositories"
	"loyalty/pkg/utils"
)

type CustomerServiceInterface interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]resp.CustomerResponse, error)

	// AddCustomer enrolls a customer from the business dashboard and returns
	// the printable join QR alongside the record.
	AddCustomer(ctx context.Context, request req.AddCustomerRequest) (*resp.CustomerWithQRResponse, error)

	// Join enrolls a customer through the public QR form. No reward type is
	// assigned yet; the business picks one afterwards.
	Join(ctx context.Context, request req.JoinRequest) (*resp.CustomerResponse, error)

	AssignRewardType(ctx context.Context, customerID uuid.UUID, rewardType string) error
}

type CustomerService struct {
	customerRepo repositories.CustomerRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository) CustomerServiceInterface {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

func (c *CustomerService) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]resp.CustomerResponse, error) {
	customers, err := c.customerRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]resp.CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, toCustomerResponse(&customers[i]))
	}
	return responses, nil
}

func (c *CustomerService) AddCustomer(ctx context.Context, request req.AddCustomerRequest) (*resp.CustomerWithQRResponse, error) {
	rewardType := dbm.RewardType(request.RewardType)
	if !rewardType.Valid() {
		return nil, utils.ErrInvalidRewardType
	}

	businessID, err := uuid.Parse(request.BusinessID)
	if err != nil {
		return nil, utils.ErrValidationFailed
	}

	customer := &dbm.Customer{
		BusinessID: businessID,
		Name:       request.Name,
		RewardType: rewardType,
	}
	if request.Email != "" {
		email := request.Email
		customer.Email = &email
	}

	if err := c.customerRepo.Insert(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	// The QR payload is what the scanning device posts back on each visit.
	payload, err := json.Marshal(map[string]string{
		"customer_id": customer.ID.String(),
		"reward_type": string(customer.RewardType),
		"business_id": customer.BusinessID.String(),
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	qrCode, err := utils.QRCodeDataURL(string(payload))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &resp.CustomerWithQRResponse{
		Customer: toCustomerResponse(customer),
		QRCode:   qrCode,
	}, nil
}

func (c *CustomerService) Join(ctx context.Context, request req.JoinRequest) (*resp.CustomerResponse, error) {
	if request.Name == "" || request.Email == "" || request.BusinessID == "" {
		return nil, utils.ErrValidationFailed
	}

	businessID, err := uuid.Parse(request.BusinessID)
	if err != nil {
		return nil, utils.ErrValidationFailed
	}

	email := request.Email
	customer := &dbm.Customer{
		BusinessID: businessID,
		Name:       request.Name,
		Email:      &email,
	}

	if err := c.customerRepo.Insert(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	response := toCustomerResponse(customer)
	return &response, nil
}

func (c *CustomerService) AssignRewardType(ctx context.Context, customerID uuid.UUID, rewardType string) error {
	if rewardType == "" {
		return utils.ErrValidationFailed
	}

	typed := dbm.RewardType(rewardType)
	if !typed.Valid() {
		return utils.ErrInvalidRewardType
	}

	updated, err := c.customerRepo.UpdateRewardType(ctx, customerID, typed)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !updated {
		return utils.ErrCustomerNotFound
	}
	return nil
}

func toCustomerResponse(customer *dbm.Customer) resp.CustomerResponse {
	response := resp.CustomerResponse{
		ID:           customer.ID.String(),
		BusinessID:   customer.BusinessID.String(),
		Name:         customer.Name,
		Email:        customer.Email,
		Phone:        customer.Phone,
		RewardType:   string(customer.RewardType),
		Points:       customer.Points,
		ScanCount:    customer.ScanCount,
		WalletSerial: customer.WalletSerial,
	}
	if customer.LastVisit != nil {
		lastVisit := customer.LastVisit.Unix()
		response.LastVisit = &lastVisit
	}
	return response
}
