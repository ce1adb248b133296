package services

import (
	dbm "loyalty/internal/models/db_models"
)

// RewardPolicy holds the deployment's accrual constants. The stamp threshold
// varies per deployment and is configuration, never a literal in the switch below.
type RewardPolicy struct {
	// StampThreshold is the stamp count multiple at which a free-item reward fires.
	StampThreshold int
	// AccrueUntyped makes customers without an assigned reward type still gain
	// one point per scan. When false the scan is logged but points stay put.
	AccrueUntyped bool
}

// RewardOutcome is the full result of evaluating one scan.
type RewardOutcome struct {
	NewPoints     int
	RewardMessage string // empty when no threshold was crossed
}

func (o RewardOutcome) RewardFired() bool { return o.RewardMessage != "" }

const (
	stampRewardMessage   = "🎉 You earned a free item!"
	paybackRewardMessage = "💰 You earned $10 cashback!"
	onetimeRewardMessage = "🎁 One-time reward used!"
)

// Evaluate decides the post-scan point total and whether a reward fires. It is a
// pure function of (rewardType, currentPoints): no I/O, no clock, total over its
// input domain. Replaying the same inputs always yields the same outcome.
func (p RewardPolicy) Evaluate(rewardType dbm.RewardType, currentPoints int) RewardOutcome {
	switch rewardType {
	case dbm.RewardStamps:
		newPoints := currentPoints + 1
		outcome := RewardOutcome{NewPoints: newPoints}
		if p.StampThreshold > 0 && newPoints%p.StampThreshold == 0 {
			outcome.RewardMessage = stampRewardMessage
		}
		return outcome

	case dbm.RewardPayback:
		newPoints := currentPoints + 10
		outcome := RewardOutcome{NewPoints: newPoints}
		if newPoints >= 100 && newPoints%100 == 0 {
			outcome.RewardMessage = paybackRewardMessage
		}
		return outcome

	case dbm.RewardOnetime:
		// Single-redeemable-voucher semantics: every scan collapses to 1 and
		// the reward always fires, regardless of prior state.
		return RewardOutcome{NewPoints: 1, RewardMessage: onetimeRewardMessage}

	default:
		// RewardNone and any unrecognized stored value: record the scan only.
		if p.AccrueUntyped {
			return RewardOutcome{NewPoints: currentPoints + 1}
		}
		return RewardOutcome{NewPoints: currentPoints}
	}
}
