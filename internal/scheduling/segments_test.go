package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

func TestSplitCombo_AxeFirst(t *testing.T) {
	segments := SplitCombo(1020, 60, 90, true)

	first, second := segments[0], segments[1]
	assert.Equal(t, domain.ResourceAxeBay, first.ResourceType)
	assert.Equal(t, domain.SegmentFirst, first.Label)
	assert.Equal(t, 1020, first.StartMin)
	assert.Equal(t, 1080, first.EndMin)

	assert.Equal(t, domain.ResourceDuckpinLane, second.ResourceType)
	assert.Equal(t, domain.SegmentSecond, second.Label)
	assert.Equal(t, 1080, second.StartMin)
	assert.Equal(t, 1170, second.EndMin)
}

func TestSplitCombo_DuckpinFirst(t *testing.T) {
	segments := SplitCombo(1020, 60, 90, false)

	first, second := segments[0], segments[1]
	assert.Equal(t, domain.ResourceDuckpinLane, first.ResourceType)
	assert.Equal(t, 1020, first.StartMin)
	assert.Equal(t, 1110, first.EndMin)

	assert.Equal(t, domain.ResourceAxeBay, second.ResourceType)
	assert.Equal(t, 1110, second.StartMin)
	assert.Equal(t, 1170, second.EndMin)
}

func TestSplitCombo_SegmentsContiguous(t *testing.T) {
	for _, axeFirst := range []bool{true, false} {
		segments := SplitCombo(960, 120, 60, axeFirst)
		assert.Equal(t, segments[0].EndMin, segments[1].StartMin)
		assert.Equal(t, 180, segments[0].Duration()+segments[1].Duration())
	}
}

func TestSegmentsFor_SingleActivity(t *testing.T) {
	segments := SegmentsFor(domain.ActivityDuckpin, 1020, 90, 0, 0, false)

	require.Len(t, segments, 1)
	assert.Equal(t, domain.ResourceDuckpinLane, segments[0].ResourceType)
	assert.Equal(t, domain.SegmentMain, segments[0].Label)
	assert.Equal(t, 1020, segments[0].StartMin)
	assert.Equal(t, 1110, segments[0].EndMin)
}
