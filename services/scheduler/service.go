package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bookingRepo "wardsched/database/repository/booking"
	roomRepo "wardsched/database/repository/room"
	"wardsched/models"
	"wardsched/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SchedulingService is the surface the request-handling and reporting layers
// consume. Placement decisions run inside the booking store's atomic unit;
// occupancy reads recompute from a fresh snapshot, optionally short-circuited
// by a per-room cache.
type SchedulingService interface {
	RequestBooking(ctx context.Context, input models.BookingRequestInput) (*models.Booking, error)
	UpdateBooking(ctx context.Context, bookingID string, input models.BookingUpdateInput) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
	GetRoomOccupancy(roomID string, onDate time.Time) (*models.RoomSummary, error)
	GetWindowGrid(ctx context.Context, roomID string, windowStart, windowEnd time.Time) (*models.OccupancyGrid, error)
}

// DefaultSchedulingService implements SchedulingService.
type DefaultSchedulingService struct {
	Rooms    roomRepo.RoomRepository
	Bookings bookingRepo.BookingRepository
	Cache    *redis.Client // optional; nil disables grid caching
	CacheTTL time.Duration
}

// ErrRoomNotFound mirrors the repository sentinel for callers that do not
// import the repo package.
var ErrRoomNotFound = roomRepo.ErrRoomNotFound

// ErrBookingNotFound mirrors the repository sentinel.
var ErrBookingNotFound = bookingRepo.ErrBookingNotFound

// RequestBooking validates and persists a booking in one atomic unit. The
// conflict decision is re-run by the store against the transactional
// snapshot, so a concurrent request for the same room cannot double-book.
func (s *DefaultSchedulingService) RequestBooking(ctx context.Context, input models.BookingRequestInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	start, err := ParseDayKey(input.StartDate)
	if err != nil {
		return nil, newValidationError("start_date", "invalid day key %q", input.StartDate)
	}
	end, err := ParseDayKey(input.EndDate)
	if err != nil {
		return nil, newValidationError("end_date", "invalid day key %q", input.EndDate)
	}

	room, err := s.Rooms.GetRoomByID(input.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, newValidationError("room_id", "room %s not found", input.RoomID)
		}
		return nil, fmt.Errorf("failed to resolve room: %w", err)
	}

	isReal := true
	if input.IsRealPatient != nil {
		isReal = *input.IsRealPatient
	}
	candidate := models.Booking{
		ID:            uuid.New().String(),
		RoomID:        room.ID,
		BedNumber:     input.BedNumber,
		PatientID:     input.PatientID,
		IsRealPatient: isReal,
		StartDate:     start,
		EndDate:       end,
		Note:          input.Note,
		CreatedAt:     time.Now(),
	}

	placed, err := s.Bookings.PlaceBooking(ctx, room.ID, func(existing []models.Booking) (models.Booking, error) {
		placement, vErr := Validate(*room, existing, candidate)
		if vErr != nil {
			return models.Booking{}, vErr
		}
		final := candidate
		final.BedNumber = placement.BedNumber
		final.StartDate = placement.StartDate
		final.EndDate = placement.EndDate
		return final, nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateRoomCache(ctx, room.ID)
	logger.Info("booking placed",
		zap.String("bookingID", placed.ID),
		zap.String("roomID", room.ID),
		zap.Int("bed", placed.BedNumber),
		zap.String("start", DayKey(placed.StartDate)),
		zap.String("end", DayKey(placed.EndDate)))
	return placed, nil
}

// UpdateBooking applies an administrative edit (date change, note). Date
// changes re-run conflict validation for the booking's bed against a
// snapshot that excludes the booking itself; the bed is never reassigned.
func (s *DefaultSchedulingService) UpdateBooking(ctx context.Context, bookingID string, input models.BookingUpdateInput) (*models.Booking, error) {
	current, err := s.Bookings.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}
	room, err := s.Rooms.GetRoomByID(current.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve room: %w", err)
	}

	updated := *current
	if input.StartDate != nil {
		start, pErr := ParseDayKey(*input.StartDate)
		if pErr != nil {
			return nil, newValidationError("start_date", "invalid day key %q", *input.StartDate)
		}
		updated.StartDate = start
	}
	if input.EndDate != nil {
		end, pErr := ParseDayKey(*input.EndDate)
		if pErr != nil {
			return nil, newValidationError("end_date", "invalid day key %q", *input.EndDate)
		}
		updated.EndDate = end
	}
	if input.Note != nil {
		updated.Note = *input.Note
	}

	replaced, err := s.Bookings.ReplaceBooking(ctx, room.ID, bookingID, func(existing []models.Booking) (models.Booking, error) {
		placement, vErr := Validate(*room, existing, updated)
		if vErr != nil {
			return models.Booking{}, vErr
		}
		final := updated
		final.BedNumber = placement.BedNumber
		final.StartDate = placement.StartDate
		final.EndDate = placement.EndDate
		return final, nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateRoomCache(ctx, room.ID)
	return replaced, nil
}

// CancelBooking removes a booking. No cascading logic; the booking simply
// leaves the set the scheduler operates over.
func (s *DefaultSchedulingService) CancelBooking(ctx context.Context, bookingID string) error {
	current, err := s.Bookings.GetBookingByID(bookingID)
	if err != nil {
		return err
	}
	if err := s.Bookings.DeleteBooking(bookingID); err != nil {
		return err
	}
	s.invalidateRoomCache(ctx, current.RoomID)
	return nil
}

// GetRoomOccupancy reports capacity/occupied/available plus per-bed status
// for a single day.
func (s *DefaultSchedulingService) GetRoomOccupancy(roomID string, onDate time.Time) (*models.RoomSummary, error) {
	room, err := s.Rooms.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}
	day := Day(onDate)
	bookings, err := s.Bookings.ListBookings(roomID, day, day)
	if err != nil {
		return nil, err
	}
	summary := Summary(*room, bookings, day)
	return &summary, nil
}

// GetWindowGrid computes the bed-by-day occupancy matrix for a query window,
// serving it from the per-room cache when possible.
func (s *DefaultSchedulingService) GetWindowGrid(ctx context.Context, roomID string, windowStart, windowEnd time.Time) (*models.OccupancyGrid, error) {
	logger := utils.GetLogger()

	room, err := s.Rooms.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}
	start, end := Day(windowStart), Day(windowEnd)
	if start.After(end) {
		return nil, newValidationError("window", "window end %s precedes start %s", DayKey(end), DayKey(start))
	}

	cacheKey, cached := s.lookupGridCache(ctx, roomID, start, end)
	if cached != nil {
		return cached, nil
	}

	bookings, err := s.Bookings.ListBookings(roomID, start, end)
	if err != nil {
		return nil, err
	}
	asg := AssignBeds(*room, bookings)
	if len(asg.Unplaced) > 0 {
		// Persisted data should never exceed capacity; surface loudly if it does.
		logger.Warn("room has bookings exceeding bed capacity",
			zap.String("roomID", roomID),
			zap.Int("unplaced", len(asg.Unplaced)))
	}
	grid := WindowOccupancy(*room, asg, start, end)

	s.storeGridCache(ctx, cacheKey, &grid)
	return &grid, nil
}

// Cache keys carry a per-room version stamp bumped on every mutation, so
// invalidation is a single INCR instead of a key scan.
func (s *DefaultSchedulingService) roomCacheVersion(ctx context.Context, roomID string) string {
	ver, err := s.Cache.Get(ctx, "occupancy:ver:"+roomID).Result()
	if err != nil {
		return "0"
	}
	return ver
}

func (s *DefaultSchedulingService) invalidateRoomCache(ctx context.Context, roomID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Incr(ctx, "occupancy:ver:"+roomID).Err(); err != nil {
		utils.GetLogger().Warn("failed to bump occupancy cache version",
			zap.String("roomID", roomID), zap.Error(err))
	}
}

func (s *DefaultSchedulingService) lookupGridCache(ctx context.Context, roomID string, start, end time.Time) (string, *models.OccupancyGrid) {
	if s.Cache == nil {
		return "", nil
	}
	key := fmt.Sprintf("occupancy:grid:%s:%s:%s:%s",
		roomID, s.roomCacheVersion(ctx, roomID), DayKey(start), DayKey(end))
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return key, nil
	}
	var grid models.OccupancyGrid
	if err := json.Unmarshal([]byte(data), &grid); err != nil {
		return key, nil
	}
	return key, &grid
}

func (s *DefaultSchedulingService) storeGridCache(ctx context.Context, key string, grid *models.OccupancyGrid) {
	if s.Cache == nil || key == "" {
		return
	}
	data, err := json.Marshal(grid)
	if err != nil {
		return
	}
	ttl := s.CacheTTL
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	if err := s.Cache.Set(ctx, key, data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache occupancy grid", zap.Error(err))
	}
}
