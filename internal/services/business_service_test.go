package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	dbm "loyalty/internal/models/db_models"
	req "loyalty/internal/models/request_models"
	"loyalty/pkg/utils"
)

func newBusinessRepoFixture() *stubBusinessRepo {
	return &stubBusinessRepo{businesses: map[uuid.UUID]*dbm.Business{}}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newBusinessRepoFixture()
	service := NewBusinessService(repo)

	result, err := service.Register(context.Background(), req.RegisterBusinessRequest{
		Name:     "Cafe Nord",
		Email:    "nord@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if result.Email != "nord@example.com" {
		t.Errorf("Unexpected email in response: %q", result.Email)
	}

	stored, _ := repo.FindByEmail(context.Background(), "nord@example.com")
	if stored == nil {
		t.Fatalf("Expected the business persisted")
	}
	if stored.PasswordHash == "hunter22" || stored.PasswordHash == "" {
		t.Errorf("Expected a bcrypt hash, got %q", stored.PasswordHash)
	}
	if err := utils.ComparePasswords(stored.PasswordHash, "hunter22"); err != nil {
		t.Errorf("Stored hash does not verify: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newBusinessRepoFixture()
	service := NewBusinessService(repo)

	request := req.RegisterBusinessRequest{Name: "Cafe Nord", Email: "nord@example.com", Password: "hunter22"}
	if _, err := service.Register(context.Background(), request); err != nil {
		t.Fatalf("First register failed: %v", err)
	}

	_, err := service.Register(context.Background(), request)
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("Expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newBusinessRepoFixture()
	service := NewBusinessService(repo)
	if _, err := service.Register(context.Background(), req.RegisterBusinessRequest{
		Name: "Cafe Nord", Email: "nord@example.com", Password: "hunter22",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	result, err := service.Login(context.Background(), req.LoginRequest{Email: "nord@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.Token == "" {
		t.Errorf("Expected a signed token")
	}

	claims, err := utils.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("Token does not validate: %v", err)
	}
	if claims.Role != "business" {
		t.Errorf("Expected business role in claims, got %q", claims.Role)
	}

	if _, err := service.Login(context.Background(), req.LoginRequest{Email: "nord@example.com", Password: "wrong"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for a bad password, got %v", err)
	}
	if _, err := service.Login(context.Background(), req.LoginRequest{Email: "ghost@example.com", Password: "hunter22"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for an unknown email, got %v", err)
	}
}

func TestGetBusinessNotFound(t *testing.T) {
	service := NewBusinessService(newBusinessRepoFixture())

	_, err := service.GetBusiness(context.Background(), uuid.New())
	if !errors.Is(err, utils.ErrBusinessNotFound) {
		t.Errorf("Expected ErrBusinessNotFound, got %v", err)
	}
}

func TestBusinessResponseCarriesPlanFeatures(t *testing.T) {
	repo := newBusinessRepoFixture()
	business := newTestBusiness(true, false)
	repo.businesses[business.ID] = business
	service := NewBusinessService(repo)

	result, err := service.GetBusiness(context.Background(), business.ID)
	if err != nil {
		t.Fatalf("GetBusiness failed: %v", err)
	}
	if result.Features == nil {
		t.Fatalf("Expected plan features in the response")
	}
	if !result.Features.Notifications || result.Features.Mailchimp {
		t.Errorf("Plan features mismatch: %+v", result.Features)
	}
}
