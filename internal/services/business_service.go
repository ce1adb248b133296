package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "loyalty/internal/models/db_models"
	req "loyalty/internal/models/request_models"
	resp "loyalty/internal/models/response_models"
	"loyalty/internal/repositories"
	"loyalty/pkg/utils"
)

type BusinessServiceInterface interface {
	Register(ctx context.Context, request req.RegisterBusinessRequest) (*resp.BusinessResponse, error)
	Login(ctx context.Context, request req.LoginRequest) (*resp.LoginResponse, error)

	ListBusinesses(ctx context.Context) ([]resp.BusinessResponse, error)
	GetBusiness(ctx context.Context, id uuid.UUID) (*resp.BusinessResponse, error)
	DeleteBusiness(ctx context.Context, id uuid.UUID) error
}

type BusinessService struct {
	businessRepo repositories.BusinessRepository
}

func NewBusinessService(businessRepo repositories.BusinessRepository) BusinessServiceInterface {
	return &BusinessService{
		businessRepo: businessRepo,
	}
}

func (b *BusinessService) Register(ctx context.Context, request req.RegisterBusinessRequest) (*resp.BusinessResponse, error) {
	existing, err := b.businessRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	business := &dbm.Business{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashed,
		Role:         "business",
	}
	if request.PlanID != "" {
		planID, err := uuid.Parse(request.PlanID)
		if err != nil {
			return nil, utils.ErrValidationFailed
		}
		business.PlanID = &planID
	}

	if err := b.businessRepo.Insert(ctx, business); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	response := toBusinessResponse(business)
	return &response, nil
}

func (b *BusinessService) Login(ctx context.Context, request req.LoginRequest) (*resp.LoginResponse, error) {
	business, err := b.businessRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if business == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(business.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(business.ID, business.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &resp.LoginResponse{
		Token:    token,
		Business: toBusinessResponse(business),
	}, nil
}

func (b *BusinessService) ListBusinesses(ctx context.Context) ([]resp.BusinessResponse, error) {
	businesses, err := b.businessRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]resp.BusinessResponse, 0, len(businesses))
	for i := range businesses {
		responses = append(responses, toBusinessResponse(&businesses[i]))
	}
	return responses, nil
}

func (b *BusinessService) GetBusiness(ctx context.Context, id uuid.UUID) (*resp.BusinessResponse, error) {
	business, err := b.businessRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if business == nil {
		return nil, utils.ErrBusinessNotFound
	}

	response := toBusinessResponse(business)
	return &response, nil
}

func (b *BusinessService) DeleteBusiness(ctx context.Context, id uuid.UUID) error {
	if err := b.businessRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toBusinessResponse(business *dbm.Business) resp.BusinessResponse {
	response := resp.BusinessResponse{
		ID:    business.ID.String(),
		Name:  business.Name,
		Email: business.Email,
	}
	if business.Plan != nil {
		response.PlanName = business.Plan.Name
		response.Features = &resp.PlanFeatures{
			Notifications:   business.Plan.AllowNotifications,
			Mailchimp:       business.Plan.AllowMailingSync,
			AdvancedRewards: business.Plan.AllowAdvancedRewards,
		}
	}
	return response
}
