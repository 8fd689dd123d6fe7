package check_availability

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AXB-BookingService/internal/api/handlers"
	"github.com/m04kA/AXB-BookingService/internal/domain"
)

func TestDecodeRequestWithWindowBounds(t *testing.T) {
	body := []byte(`{
		"activity": "axe_throwing",
		"partySize": 6,
		"date": "2026-09-04",
		"durationMinutes": 60,
		"stepMinutes": 30,
		"openMin": 1020,
		"closeMin": 1200
	}`)
	r := httptest.NewRequest("POST", "/api/v1/availability/check", bytes.NewReader(body))

	var req CheckAvailabilityRequest
	require.NoError(t, handlers.DecodeJSON(r, &req))
	require.NotNil(t, req.OpenMin)
	require.NotNil(t, req.CloseMin)
	assert.Equal(t, 1020, *req.OpenMin)
	assert.Equal(t, 1200, *req.CloseMin)

	useCaseReq, err := req.ToUseCaseRequest()
	require.NoError(t, err)
	require.NotNil(t, useCaseReq.OpenMinOverride)
	require.NotNil(t, useCaseReq.CloseMinOverride)
	assert.Equal(t, 1020, *useCaseReq.OpenMinOverride)
	assert.Equal(t, 1200, *useCaseReq.CloseMinOverride)
}

func TestToUseCaseRequestDefaults(t *testing.T) {
	req := CheckAvailabilityRequest{
		Activity:        "duckpin",
		PartySize:       4,
		Date:            "2026-09-04",
		DurationMinutes: 60,
	}

	useCaseReq, err := req.ToUseCaseRequest()
	require.NoError(t, err)
	assert.Equal(t, domain.ActivityDuckpin, useCaseReq.Activity)
	assert.Equal(t, domain.DefaultSlotStep, useCaseReq.StepMinutes)
	assert.Nil(t, useCaseReq.OpenMinOverride)
	assert.Nil(t, useCaseReq.CloseMinOverride)
}
