package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestCreateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	businessID := uuid.New()

	token, err := CreateToken(businessID, "business")
	if err != nil {
		t.Fatalf("CreateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.BusinessID != businessID.String() {
		t.Errorf("Expected business id %s, got %s", businessID, claims.BusinessID)
	}
	if claims.Role != "business" {
		t.Errorf("Expected business role, got %q", claims.Role)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Errorf("Expected a parse error for a malformed token")
	}
}
