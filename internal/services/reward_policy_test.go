package services

import (
	"testing"

	dbm "loyalty/internal/models/db_models"
)

func TestEvaluateStamps(t *testing.T) {
	policy := RewardPolicy{StampThreshold: 4}

	tests := []struct {
		name       string
		points     int
		wantPoints int
		wantReward bool
	}{
		{"first stamp", 0, 1, false},
		{"second stamp", 1, 2, false},
		{"third stamp", 2, 3, false},
		{"threshold crossed", 3, 4, true},
		{"past threshold", 4, 5, false},
		{"second threshold", 7, 8, true},
		{"large total", 99, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := policy.Evaluate(dbm.RewardStamps, tt.points)
			if outcome.NewPoints != tt.wantPoints {
				t.Errorf("Expected %d points, got %d", tt.wantPoints, outcome.NewPoints)
			}
			if outcome.RewardFired() != tt.wantReward {
				t.Errorf("Expected reward fired %v, got %v", tt.wantReward, outcome.RewardFired())
			}
		})
	}
}

func TestEvaluateStampsAlternateThreshold(t *testing.T) {
	policy := RewardPolicy{StampThreshold: 5}

	outcome := policy.Evaluate(dbm.RewardStamps, 3)
	if outcome.RewardFired() {
		t.Errorf("Expected no reward at 4 stamps with threshold 5")
	}

	outcome = policy.Evaluate(dbm.RewardStamps, 4)
	if outcome.NewPoints != 5 || !outcome.RewardFired() {
		t.Errorf("Expected reward at 5 stamps, got points=%d fired=%v", outcome.NewPoints, outcome.RewardFired())
	}
}

func TestEvaluatePayback(t *testing.T) {
	policy := RewardPolicy{StampThreshold: 4}

	tests := []struct {
		name       string
		points     int
		wantPoints int
		wantReward bool
	}{
		{"first scan", 0, 10, false},
		{"mid accumulation", 40, 50, false},
		{"crossing hundred", 90, 100, true},
		{"just past hundred", 100, 110, false},
		{"second hundred", 190, 200, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := policy.Evaluate(dbm.RewardPayback, tt.points)
			if outcome.NewPoints != tt.wantPoints {
				t.Errorf("Expected %d points, got %d", tt.wantPoints, outcome.NewPoints)
			}
			if outcome.RewardFired() != tt.wantReward {
				t.Errorf("Expected reward fired %v, got %v", tt.wantReward, outcome.RewardFired())
			}
		})
	}
}

func TestEvaluateOnetimeCollapses(t *testing.T) {
	policy := RewardPolicy{StampThreshold: 4}

	for _, points := range []int{0, 1, 7, 500} {
		outcome := policy.Evaluate(dbm.RewardOnetime, points)
		if outcome.NewPoints != 1 {
			t.Errorf("Expected onetime to collapse %d to 1, got %d", points, outcome.NewPoints)
		}
		if !outcome.RewardFired() {
			t.Errorf("Expected onetime reward to always fire")
		}
	}
}

func TestEvaluateUntyped(t *testing.T) {
	policy := RewardPolicy{StampThreshold: 4}

	outcome := policy.Evaluate(dbm.RewardNone, 7)
	if outcome.NewPoints != 7 || outcome.RewardFired() {
		t.Errorf("Expected untyped scan to be a no-op, got points=%d fired=%v", outcome.NewPoints, outcome.RewardFired())
	}

	accruing := RewardPolicy{StampThreshold: 4, AccrueUntyped: true}
	outcome = accruing.Evaluate(dbm.RewardNone, 7)
	if outcome.NewPoints != 8 || outcome.RewardFired() {
		t.Errorf("Expected accruing untyped scan to add one point without reward, got points=%d fired=%v", outcome.NewPoints, outcome.RewardFired())
	}
}

func TestEvaluateUnknownStoredValue(t *testing.T) {
	policy := RewardPolicy{StampThreshold: 4}

	outcome := policy.Evaluate(dbm.RewardType("legacy-tier"), 3)
	if outcome.NewPoints != 3 || outcome.RewardFired() {
		t.Errorf("Expected unknown reward type to behave like none, got points=%d fired=%v", outcome.NewPoints, outcome.RewardFired())
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	policy := RewardPolicy{StampThreshold: 4}

	first := policy.Evaluate(dbm.RewardStamps, 11)
	second := policy.Evaluate(dbm.RewardStamps, 11)
	if first != second {
		t.Errorf("Expected identical outcomes for identical inputs, got %+v and %+v", first, second)
	}
}
