package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AXB-BookingService/internal/domain"
	bookingStorage "github.com/m04kA/AXB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/AXB-BookingService/pkg/ptr"
)

// In-memory фейки контрактов usecase

type fakeBookingRepo struct {
	bookings    map[int64]*domain.Booking
	claims      []domain.ResourceClaim
	nextClaimID int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
}

func (r *fakeBookingRepo) put(booking *domain.Booking, claims ...domain.ResourceClaim) {
	r.bookings[booking.ID] = booking
	for _, c := range claims {
		r.nextClaimID++
		c.ID = r.nextClaimID
		c.BookingID = booking.ID
		c.BookingDate = booking.BookingDate
		r.claims = append(r.claims, c)
	}
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, bookingStorage.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) UpdateSchedule(_ context.Context, booking *domain.Booking) error {
	stored, ok := r.bookings[booking.ID]
	if !ok {
		return bookingStorage.ErrBookingNotFound
	}
	*stored = *booking
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	r.bookings[id].Status = status
	return nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	booking := r.bookings[id]
	booking.Status = domain.StatusCancelled
	booking.CancellationReason = &reason
	return nil
}

func (r *fakeBookingRepo) UpdateNotes(_ context.Context, id int64, notes *string) error {
	r.bookings[id].Notes = notes
	return nil
}

func (r *fakeBookingRepo) CreateClaim(_ context.Context, claim *domain.ResourceClaim) (*domain.ResourceClaim, error) {
	r.nextClaimID++
	saved := *claim
	saved.ID = r.nextClaimID
	r.claims = append(r.claims, saved)
	return &saved, nil
}

func (r *fakeBookingRepo) GetActiveClaimsByDate(_ context.Context, date time.Time) ([]domain.ResourceClaim, error) {
	var out []domain.ResourceClaim
	for _, c := range r.claims {
		if c.BookingDate.Equal(date) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) DeleteClaimsByBookingID(_ context.Context, bookingID int64) error {
	kept := r.claims[:0]
	for _, c := range r.claims {
		if c.BookingID != bookingID {
			kept = append(kept, c)
		}
	}
	r.claims = kept
	return nil
}

func (r *fakeBookingRepo) UpdateClaimResource(_ context.Context, claimID, resourceID int64) error {
	for i := range r.claims {
		if r.claims[i].ID == claimID {
			r.claims[i].ResourceID = resourceID
			return nil
		}
	}
	return bookingStorage.ErrClaimNotFound
}

func (r *fakeBookingRepo) claimsFor(bookingID int64) []domain.ResourceClaim {
	var out []domain.ResourceClaim
	for _, c := range r.claims {
		if c.BookingID == bookingID {
			out = append(out, c)
		}
	}
	return out
}

type fakeResourceRepo struct {
	resources []domain.Resource
}

func (r *fakeResourceRepo) List(_ context.Context) ([]domain.Resource, error) {
	return r.resources, nil
}

type fakeRulesRepo struct{}

func (r *fakeRulesRepo) ListBlackoutsByDate(_ context.Context, _ time.Time) ([]domain.BlackoutRule, error) {
	return nil, nil
}

func (r *fakeRulesRepo) ListBuffers(_ context.Context) ([]domain.BufferRule, error) {
	return nil, nil
}

type fakePayments struct {
	refunds []string
}

func (p *fakePayments) RefundCharge(_ context.Context, chargeID string) error {
	p.refunds = append(p.refunds, chargeID)
	return nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	payments *fakePayments
}

func newFixture() *fixture {
	bookings := newFakeBookingRepo()
	pay := &fakePayments{}

	resources := []domain.Resource{
		{ID: 1, Name: "Bay 1", Type: domain.ResourceAxeBay, Active: true, SortPosition: 1},
		{ID: 2, Name: "Bay 2", Type: domain.ResourceAxeBay, Active: true, SortPosition: 2},
		{ID: 11, Name: "Lane 1", Type: domain.ResourceDuckpinLane, Active: true, SortPosition: 1},
		{ID: 12, Name: "Lane 2", Type: domain.ResourceDuckpinLane, Active: true, SortPosition: 2},
		{ID: 13, Name: "Lane 3", Type: domain.ResourceDuckpinLane, Active: true, SortPosition: 3},
		{ID: 14, Name: "Lane 4", Type: domain.ResourceDuckpinLane, Active: true, SortPosition: 4},
	}

	uc := NewUseCase(
		bookings,
		&fakeResourceRepo{resources: resources},
		&fakeRulesRepo{},
		pay,
		&fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}

	return &fixture{uc: uc, bookings: bookings, payments: pay}
}

var friday = time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

func axeBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:                 id,
		Activity:           domain.ActivityAxeThrowing,
		PartySize:          6,
		BookingDate:        friday,
		StartMin:           1020,
		EndMin:             1080,
		DurationMinutes:    60,
		CustomerName:       "Анна Смирнова",
		CustomerPhone:      "+79001234567",
		PaymentDisposition: domain.PayAtDoor,
		PriceTotal:         168,
		Status:             domain.StatusConfirmed,
	}
}

func TestExecute_CancelReleasesClaims(t *testing.T) {
	f := newFixture()
	f.bookings.put(axeBooking(1), domain.ResourceClaim{
		ResourceID: 1, StartMin: 1020, EndMin: 1080, Segment: domain.SegmentMain,
	})

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID:          1,
		Status:             ptr.Ptr(domain.StatusCancelled),
		CancellationReason: ptr.Ptr("гость отменил"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, resp.Status)
	assert.Empty(t, f.bookings.claimsFor(1))
	assert.Empty(t, f.payments.refunds)
}

func TestExecute_CancelRefundsOnlinePayment(t *testing.T) {
	f := newFixture()
	booking := axeBooking(1)
	booking.PaymentDisposition = domain.PayOnline
	booking.PaymentChargeID = ptr.Ptr("ch_42")
	f.bookings.put(booking)

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:          1,
		Status:             ptr.Ptr(domain.StatusCancelled),
		CancellationReason: ptr.Ptr("передумали"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ch_42"}, f.payments.refunds)
}

func TestExecute_CancelTwiceRejected(t *testing.T) {
	f := newFixture()
	booking := axeBooking(1)
	booking.Status = domain.StatusCancelled
	f.bookings.put(booking)

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:          1,
		Status:             ptr.Ptr(domain.StatusCancelled),
		CancellationReason: ptr.Ptr("повторно"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatusChange)
}

func TestExecute_NoShowKeepsClaims(t *testing.T) {
	f := newFixture()
	f.bookings.put(axeBooking(1), domain.ResourceClaim{
		ResourceID: 1, StartMin: 1020, EndMin: 1080, Segment: domain.SegmentMain,
	})

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		Status:    ptr.Ptr(domain.StatusNoShow),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, resp.Status)
	assert.Len(t, f.bookings.claimsFor(1), 1)
}

func TestExecute_BookingNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 99,
		StartMin:  ptr.Ptr(1080),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_RescheduleRewritesClaims(t *testing.T) {
	f := newFixture()
	f.bookings.put(axeBooking(1), domain.ResourceClaim{
		ResourceID: 1, StartMin: 1020, EndMin: 1080, Segment: domain.SegmentMain,
	})

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		StartMin:  ptr.Ptr(1140),
	})
	require.NoError(t, err)
	assert.Equal(t, 1140, resp.StartMin)
	assert.Equal(t, 1200, resp.EndMin)

	claims := f.bookings.claimsFor(1)
	require.Len(t, claims, 1)
	assert.Equal(t, 1140, claims[0].StartMin)
}

func TestExecute_RescheduleIntoOccupiedSlot(t *testing.T) {
	f := newFixture()
	f.bookings.put(axeBooking(1), domain.ResourceClaim{
		ResourceID: 1, StartMin: 1020, EndMin: 1080, Segment: domain.SegmentMain,
	})
	// Второе бронирование занимает второй стенд на целевом интервале
	other := axeBooking(2)
	other.StartMin, other.EndMin = 1140, 1200
	f.bookings.put(other, domain.ResourceClaim{
		ResourceID: 2, StartMin: 1140, EndMin: 1200, Segment: domain.SegmentMain,
	})

	// Группе на 12 нужны оба стенда
	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		StartMin:  ptr.Ptr(1140),
		PartySize: ptr.Ptr(12),
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_CancelledBookingNotEditable(t *testing.T) {
	f := newFixture()
	booking := axeBooking(1)
	booking.Status = domain.StatusCancelled
	f.bookings.put(booking)

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		StartMin:  ptr.Ptr(1140),
	})
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestExecute_NotesOnly(t *testing.T) {
	f := newFixture()
	f.bookings.put(axeBooking(1))

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		Notes:     ptr.Ptr("аллергия на орехи"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "аллергия на орехи", *resp.Notes)
}

func TestExecute_SwitchActivityToDuckpin(t *testing.T) {
	f := newFixture()
	f.bookings.put(axeBooking(1), domain.ResourceClaim{
		ResourceID: 1, StartMin: 1020, EndMin: 1080, Segment: domain.SegmentMain,
	})

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		Activity:  ptr.Ptr(domain.ActivityDuckpin),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ActivityDuckpin, resp.Activity)
	assert.Equal(t, 132.0, resp.PriceTotal)

	claims := f.bookings.claimsFor(1)
	require.Len(t, claims, 1)
	assert.Equal(t, int64(11), claims[0].ResourceID)
	assert.Equal(t, domain.SegmentMain, claims[0].Segment)
}

func TestExecute_SwitchActivityToCombo(t *testing.T) {
	f := newFixture()
	f.bookings.put(axeBooking(1), domain.ResourceClaim{
		ResourceID: 1, StartMin: 1020, EndMin: 1080, Segment: domain.SegmentMain,
	})

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID:              1,
		Activity:               ptr.Ptr(domain.ActivityCombo),
		AxeDurationMinutes:     ptr.Ptr(60),
		DuckpinDurationMinutes: ptr.Ptr(60),
		AxeFirst:               ptr.Ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ActivityCombo, resp.Activity)
	assert.Equal(t, 1020, resp.StartMin)
	assert.Equal(t, 1140, resp.EndMin)
	assert.Equal(t, 300.0, resp.PriceTotal)

	claims := f.bookings.claimsFor(1)
	require.Len(t, claims, 2)
	bySegment := map[domain.ClaimSegment]domain.ResourceClaim{}
	for _, c := range claims {
		bySegment[c.Segment] = c
	}
	first, ok := bySegment[domain.SegmentFirst]
	require.True(t, ok)
	assert.Equal(t, int64(1), first.ResourceID)
	assert.Equal(t, 1020, first.StartMin)
	assert.Equal(t, 1080, first.EndMin)
	second, ok := bySegment[domain.SegmentSecond]
	require.True(t, ok)
	assert.Equal(t, int64(11), second.ResourceID)
	assert.Equal(t, 1080, second.StartMin)
	assert.Equal(t, 1140, second.EndMin)
}

func TestExecute_SwitchToComboWithoutSegmentsRejected(t *testing.T) {
	f := newFixture()
	f.bookings.put(axeBooking(1), domain.ResourceClaim{
		ResourceID: 1, StartMin: 1020, EndMin: 1080, Segment: domain.SegmentMain,
	})

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		Activity:  ptr.Ptr(domain.ActivityCombo),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SwitchComboToSingleDropsSegments(t *testing.T) {
	f := newFixture()
	combo := axeBooking(1)
	combo.Activity = domain.ActivityCombo
	combo.EndMin = 1140
	combo.DurationMinutes = 120
	combo.AxeDurationMinutes = ptr.Ptr(60)
	combo.DuckpinDurationMinutes = ptr.Ptr(60)
	combo.AxeFirst = true
	f.bookings.put(combo,
		domain.ResourceClaim{ResourceID: 1, StartMin: 1020, EndMin: 1080, Segment: domain.SegmentFirst},
		domain.ResourceClaim{ResourceID: 11, StartMin: 1080, EndMin: 1140, Segment: domain.SegmentSecond},
	)

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID:       1,
		Activity:        ptr.Ptr(domain.ActivityAxeThrowing),
		DurationMinutes: ptr.Ptr(60),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ActivityAxeThrowing, resp.Activity)
	assert.Equal(t, 1080, resp.EndMin)
	assert.Equal(t, 60, resp.DurationMinutes)

	claims := f.bookings.claimsFor(1)
	require.Len(t, claims, 1)
	assert.Equal(t, int64(1), claims[0].ResourceID)
	assert.Equal(t, domain.SegmentMain, claims[0].Segment)
}

func TestExecute_ComboFieldsRejectedForSingleTarget(t *testing.T) {
	f := newFixture()
	f.bookings.put(axeBooking(1), domain.ResourceClaim{
		ResourceID: 1, StartMin: 1020, EndMin: 1080, Segment: domain.SegmentMain,
	})

	// Цель — одиночная активность, сегментные поля неприменимы
	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:          1,
		Activity:           ptr.Ptr(domain.ActivityDuckpin),
		AxeDurationMinutes: ptr.Ptr(60),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CancelRepairsLanePair(t *testing.T) {
	f := newFixture()

	// Следствие прошлых правок: бронирование 2 сидит на дорожках 2 и 3
	// из разных пар, бронирование 1 держит дорожку 1
	duckpin1 := axeBooking(1)
	duckpin1.Activity = domain.ActivityDuckpin
	duckpin1.PartySize = 10
	f.bookings.put(duckpin1, domain.ResourceClaim{
		ResourceID: 11, StartMin: 1020, EndMin: 1080, Segment: domain.SegmentMain,
	})

	duckpin2 := axeBooking(2)
	duckpin2.Activity = domain.ActivityDuckpin
	duckpin2.PartySize = 10
	f.bookings.put(duckpin2,
		domain.ResourceClaim{ResourceID: 12, StartMin: 1020, EndMin: 1080, Segment: domain.SegmentMain},
		domain.ResourceClaim{ResourceID: 13, StartMin: 1020, EndMin: 1080, Segment: domain.SegmentMain},
	)

	// Отмена первого бронирования освобождает дорожку 1: пары можно
	// собрать обратно, бронирование 2 молча переезжает на {1,2} или {3,4}
	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:          1,
		Status:             ptr.Ptr(domain.StatusCancelled),
		CancellationReason: ptr.Ptr("гость отменил"),
	})
	require.NoError(t, err)

	claims := f.bookings.claimsFor(2)
	require.Len(t, claims, 2)
	lanes := map[int64]bool{claims[0].ResourceID: true, claims[1].ResourceID: true}
	matched := (lanes[11] && lanes[12]) || (lanes[13] && lanes[14])
	assert.True(t, matched, "booking 2 should occupy a declared lane pair, got %v", lanes)
}
