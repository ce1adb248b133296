package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	dbm "loyalty/internal/models/db_models"
	req "loyalty/internal/models/request_models"
	"loyalty/pkg/utils"
)

type stubWalletRepo struct {
	wallets map[string]*dbm.Wallet
}

func newStubWalletRepo() *stubWalletRepo {
	return &stubWalletRepo{wallets: make(map[string]*dbm.Wallet)}
}

func ownerKey(businessID, customerID uuid.UUID) string {
	return businessID.String() + "|" + customerID.String()
}

func (s *stubWalletRepo) FindByOwner(ctx context.Context, businessID, customerID uuid.UUID) (*dbm.Wallet, error) {
	return s.wallets[ownerKey(businessID, customerID)], nil
}

func (s *stubWalletRepo) EnsureExists(ctx context.Context, businessID, customerID uuid.UUID) (*dbm.Wallet, error) {
	key := ownerKey(businessID, customerID)
	if existing, ok := s.wallets[key]; ok {
		return existing, nil
	}
	wallet := &dbm.Wallet{BusinessID: businessID, CustomerID: customerID}
	wallet.ID = uuid.New()
	s.wallets[key] = wallet
	return wallet, nil
}

func (s *stubWalletRepo) SavePassData(ctx context.Context, walletID uuid.UUID, passData datatypes.JSON) error {
	for _, wallet := range s.wallets {
		if wallet.ID == walletID {
			wallet.PassData = passData
		}
	}
	return nil
}

func newWalletFixture() (*stubCustomerRepo, *stubBusinessRepo, *stubWalletRepo, *dbm.Business, WalletServiceInterface) {
	customerRepo := &stubCustomerRepo{}
	businessRepo := newBusinessRepoFixture()
	walletRepo := newStubWalletRepo()
	business := newTestBusiness(false, false)
	businessRepo.businesses[business.ID] = business
	service := NewWalletService(customerRepo, businessRepo, walletRepo)
	return customerRepo, businessRepo, walletRepo, business, service
}

func TestWalletRegisterCreatesCustomerAndSerial(t *testing.T) {
	customerRepo, _, walletRepo, business, service := newWalletFixture()

	result, err := service.Register(context.Background(), req.WalletRegisterRequest{
		BusinessID: business.ID.String(),
		Name:       "  Nia  ",
		Email:      "nia@example.com",
		Phone:      "+1 (555) 010-2030",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if result.WalletSerial == "" {
		t.Errorf("Expected a minted wallet serial")
	}
	if len(customerRepo.customers) != 1 {
		t.Fatalf("Expected one customer row, got %d", len(customerRepo.customers))
	}
	created := customerRepo.customers[0]
	if created.Name != "Nia" {
		t.Errorf("Expected trimmed name, got %q", created.Name)
	}
	if created.Phone == nil || *created.Phone != "+15550102030" {
		t.Errorf("Expected normalized phone, got %v", created.Phone)
	}
	if len(walletRepo.wallets) != 1 {
		t.Errorf("Expected a wallet row, got %d", len(walletRepo.wallets))
	}
}

func TestWalletRegisterReusesEmailIdentity(t *testing.T) {
	customerRepo, _, _, business, service := newWalletFixture()
	email := "omar@example.com"
	existing := &dbm.Customer{BusinessID: business.ID, Name: "Omar", Email: &email}
	if err := customerRepo.Insert(context.Background(), existing); err != nil {
		t.Fatalf("Seed insert failed: %v", err)
	}

	result, err := service.Register(context.Background(), req.WalletRegisterRequest{
		BusinessID: business.ID.String(),
		Name:       "Omar K",
		Email:      email,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if len(customerRepo.customers) != 1 {
		t.Errorf("Expected no second row for the same email, got %d", len(customerRepo.customers))
	}
	if result.CustomerID != existing.ID.String() {
		t.Errorf("Expected the existing customer reused")
	}
	if customerRepo.customers[0].Name != "Omar K" {
		t.Errorf("Expected the name refreshed, got %q", customerRepo.customers[0].Name)
	}
}

func TestWalletRegisterRepeatKeepsSerial(t *testing.T) {
	_, _, _, business, service := newWalletFixture()

	request := req.WalletRegisterRequest{
		BusinessID: business.ID.String(),
		Name:       "Pia",
		Email:      "pia@example.com",
	}
	first, err := service.Register(context.Background(), request)
	if err != nil {
		t.Fatalf("First register failed: %v", err)
	}
	second, err := service.Register(context.Background(), request)
	if err != nil {
		t.Fatalf("Second register failed: %v", err)
	}

	if first.WalletSerial != second.WalletSerial {
		t.Errorf("Expected a stable serial, got %q then %q", first.WalletSerial, second.WalletSerial)
	}
}

func TestWalletRegisterFallsBackToPhoneThenName(t *testing.T) {
	customerRepo, _, _, business, service := newWalletFixture()

	// Invalid email degrades to the phone identity.
	if _, err := service.Register(context.Background(), req.WalletRegisterRequest{
		BusinessID: business.ID.String(),
		Name:       "Quin",
		Email:      "not-an-email",
		Phone:      "5550102030",
	}); err != nil {
		t.Fatalf("Phone register failed: %v", err)
	}
	if customerRepo.customers[0].Email != nil {
		t.Errorf("Expected the invalid email dropped, got %v", *customerRepo.customers[0].Email)
	}
	if customerRepo.customers[0].Phone == nil {
		t.Fatalf("Expected the phone identity kept")
	}

	// Too-short phone degrades to a name-only record.
	if _, err := service.Register(context.Background(), req.WalletRegisterRequest{
		BusinessID: business.ID.String(),
		Name:       "Remy",
		Phone:      "123",
	}); err != nil {
		t.Fatalf("Name-only register failed: %v", err)
	}
	if len(customerRepo.customers) != 2 {
		t.Fatalf("Expected two customers, got %d", len(customerRepo.customers))
	}
	if customerRepo.customers[1].Phone != nil {
		t.Errorf("Expected the short phone dropped, got %v", *customerRepo.customers[1].Phone)
	}
}

func TestWalletRegisterUnknownBusiness(t *testing.T) {
	_, _, _, _, service := newWalletFixture()

	_, err := service.Register(context.Background(), req.WalletRegisterRequest{
		BusinessID: uuid.New().String(),
		Name:       "Sol",
	})
	if !errors.Is(err, utils.ErrBusinessNotFound) {
		t.Errorf("Expected ErrBusinessNotFound, got %v", err)
	}
}

func TestPassDataUnknownCustomer(t *testing.T) {
	_, _, _, _, service := newWalletFixture()

	_, err := service.PassData(context.Background(), uuid.New())
	if !errors.Is(err, utils.ErrCustomerNotFound) {
		t.Errorf("Expected ErrCustomerNotFound, got %v", err)
	}
}

func TestPassDataReflectsWalletState(t *testing.T) {
	customerRepo, _, _, business, service := newWalletFixture()

	registered, err := service.Register(context.Background(), req.WalletRegisterRequest{
		BusinessID: business.ID.String(),
		Name:       "Tess",
		Email:      "tess@example.com",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	customerRepo.customers[0].Points = 7

	pass, err := service.PassData(context.Background(), uuid.MustParse(registered.CustomerID))
	if err != nil {
		t.Fatalf("PassData failed: %v", err)
	}
	if pass.BusinessName != business.Name {
		t.Errorf("Expected business name %q, got %q", business.Name, pass.BusinessName)
	}
	if pass.Points != 7 {
		t.Errorf("Expected 7 points, got %d", pass.Points)
	}
	if pass.WalletSerial != registered.WalletSerial {
		t.Errorf("Expected serial %q, got %q", registered.WalletSerial, pass.WalletSerial)
	}
}

func TestBusinessJoinQR(t *testing.T) {
	_, _, _, business, service := newWalletFixture()

	png, err := service.BusinessJoinQR(context.Background(), business.ID, "http://localhost:5000/")
	if err != nil {
		t.Fatalf("BusinessJoinQR failed: %v", err)
	}
	if len(png) == 0 {
		t.Errorf("Expected PNG bytes")
	}

	if _, err := service.BusinessJoinQR(context.Background(), uuid.New(), "http://localhost:5000"); !errors.Is(err, utils.ErrBusinessNotFound) {
		t.Errorf("Expected ErrBusinessNotFound, got %v", err)
	}
}
