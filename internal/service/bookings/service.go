package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/AXB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/AXB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/AXB-BookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований: карточка брони, день площадки,
// история гостя. Мутации идут через usecase-слой.
type Service struct {
	bookingRepo  BookingRepository
	resourceRepo ResourceRepository
	hours        domain.VenueHours
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		hours:        domain.DefaultVenueHours,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID вместе с его claims
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	names, err := s.resourceNames(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking, names), nil
}

// GetVenueSchedule собирает день площадки для стойки персонала:
// окно работы, ресурсы и бронирования на дату вместе с их claims
func (s *Service) GetVenueSchedule(ctx context.Context, date time.Time, includeInactive bool) (*models.DayScheduleResponse, error) {
	s.logger.Info("GetVenueSchedule: date=%s, includeInactive=%v",
		date.Format(domain.DateFormat), includeInactive)

	window := s.hours.WindowFor(date)

	resources, err := s.resourceRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetVenueSchedule: failed to load resources: %v", err)
		return nil, fmt.Errorf("%w: GetVenueSchedule - failed to load resources: %v", ErrInternal, err)
	}

	resp := &models.DayScheduleResponse{
		Date:      date.Format(domain.DateFormat),
		Closed:    window.Closed,
		Resources: make([]models.ResourceResponse, 0, len(resources)),
		Bookings:  []models.BookingResponse{},
	}
	if !window.Closed {
		resp.OpenMin = window.OpenMin
		resp.CloseMin = window.CloseMin
	}

	names := make(map[int64]string, len(resources))
	for _, resource := range resources {
		names[resource.ID] = resource.Name
		resp.Resources = append(resp.Resources, models.FromDomainResource(resource))
	}

	bookings, err := s.bookingRepo.ListByDate(ctx, date, includeInactive)
	if err != nil {
		s.logger.Error("GetVenueSchedule: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: GetVenueSchedule - failed to load bookings: %v", ErrInternal, err)
	}

	for _, booking := range bookings {
		claims, err := s.bookingRepo.GetClaimsByBookingID(ctx, booking.ID)
		if err != nil {
			s.logger.Error("GetVenueSchedule: failed to load claims for booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: GetVenueSchedule - failed to load claims: %v", ErrInternal, err)
		}
		booking.Claims = claims
		resp.Bookings = append(resp.Bookings, *models.FromDomainBooking(booking, names))
	}

	s.logger.Info("GetVenueSchedule: %d bookings on %s", len(resp.Bookings), resp.Date)
	return resp, nil
}

// GetCustomerBookings получает историю бронирований гостя по телефону
func (s *Service) GetCustomerBookings(ctx context.Context, phone string) (*models.BookingListResponse, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	s.logger.Info("GetCustomerBookings: phone=%s", phone)

	bookings, err := s.bookingRepo.ListByPhone(ctx, phone)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: %d bookings for phone=%s", len(bookings), phone)
	return models.FromDomainBookingList(bookings, nil), nil
}

// resourceNames строит карту id → имя для рендера claims
func (s *Service) resourceNames(ctx context.Context) (map[int64]string, error) {
	resources, err := s.resourceRepo.List(ctx)
	if err != nil {
		s.logger.Error("resourceNames: failed to load resources: %v", err)
		return nil, fmt.Errorf("%w: failed to load resources: %v", ErrInternal, err)
	}

	names := make(map[int64]string, len(resources))
	for _, resource := range resources {
		names[resource.ID] = resource.Name
	}
	return names, nil
}
