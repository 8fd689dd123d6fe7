package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceClaimOverlaps(t *testing.T) {
	c := ResourceClaim{StartMin: 1020, EndMin: 1080}

	assert.True(t, c.Overlaps(1050, 1110))
	assert.True(t, c.Overlaps(990, 1050))
	assert.True(t, c.Overlaps(1020, 1080))
	assert.True(t, c.Overlaps(990, 1110))

	// Touching boundaries are not an overlap
	assert.False(t, c.Overlaps(1080, 1140))
	assert.False(t, c.Overlaps(960, 1020))
}

func TestBlackoutRuleAppliesTo(t *testing.T) {
	axe := ActivityAxeThrowing

	universal := BlackoutRule{}
	assert.True(t, universal.AppliesTo(ActivityAxeThrowing))
	assert.True(t, universal.AppliesTo(ActivityDuckpin))
	assert.True(t, universal.AppliesTo(ActivityCombo))

	axeOnly := BlackoutRule{Activity: &axe}
	assert.True(t, axeOnly.AppliesTo(ActivityAxeThrowing))
	assert.False(t, axeOnly.AppliesTo(ActivityDuckpin))

	// A combo is constrained by rules on either of its sub-activities
	assert.True(t, axeOnly.AppliesTo(ActivityCombo))
}

func TestBufferRuleAppliesTo(t *testing.T) {
	duckpin := ActivityDuckpin

	rule := BufferRule{Activity: &duckpin, AfterMinutes: 15}
	assert.False(t, rule.AppliesTo(ActivityAxeThrowing))
	assert.True(t, rule.AppliesTo(ActivityDuckpin))
	assert.True(t, rule.AppliesTo(ActivityCombo))
}
