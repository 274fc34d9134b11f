package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wardsched/database"
	"wardsched/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrBookingNotFound is returned when a booking ID resolves to nothing.
var ErrBookingNotFound = errors.New("booking not found")

const dayKeyFormat = "2006-01-02"

// bookingDoc is the persisted shape of a booking. Stay dates are stored as
// calendar day strings, not BSON datetimes: the driver's datetime codec
// decodes to UTC, which shifts the day across midnight on hosts away from
// UTC. Day strings also compare lexicographically in date order, so range
// filters work unchanged.
type bookingDoc struct {
	ID            string    `bson:"id"`
	RoomID        string    `bson:"room_id"`
	BedNumber     int       `bson:"bed_number"`
	PatientID     string    `bson:"patient_id"`
	IsRealPatient bool      `bson:"is_real_patient"`
	StartDate     string    `bson:"start_date"`
	EndDate       string    `bson:"end_date"`
	Note          string    `bson:"note,omitempty"`
	CreatedAt     time.Time `bson:"created_at"`
}

func newBookingDoc(b models.Booking) bookingDoc {
	return bookingDoc{
		ID:            b.ID,
		RoomID:        b.RoomID,
		BedNumber:     b.BedNumber,
		PatientID:     b.PatientID,
		IsRealPatient: b.IsRealPatient,
		StartDate:     b.StartDate.Format(dayKeyFormat),
		EndDate:       b.EndDate.Format(dayKeyFormat),
		Note:          b.Note,
		CreatedAt:     b.CreatedAt,
	}
}

// booking rehydrates the model, pinning stay dates to local midnight of the
// stored calendar day.
func (d bookingDoc) booking() (models.Booking, error) {
	start, err := time.ParseInLocation(dayKeyFormat, d.StartDate, time.Local)
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking %s has malformed start_date %q: %w", d.ID, d.StartDate, err)
	}
	end, err := time.ParseInLocation(dayKeyFormat, d.EndDate, time.Local)
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking %s has malformed end_date %q: %w", d.ID, d.EndDate, err)
	}
	return models.Booking{
		ID:            d.ID,
		RoomID:        d.RoomID,
		BedNumber:     d.BedNumber,
		PatientID:     d.PatientID,
		IsRealPatient: d.IsRealPatient,
		StartDate:     start,
		EndDate:       end,
		Note:          d.Note,
		CreatedAt:     d.CreatedAt,
	}, nil
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("wardsched")
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
	}
}

func (repo *MongoBookingRepo) ListBookings(roomID string, windowStart, windowEnd time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Inclusive ranges: a booking intersects the window when it starts no
	// later than the window's end and ends no earlier than its start. Day
	// strings order lexicographically like dates, so $lte/$gte apply directly.
	filter := bson.M{
		"room_id":    roomID,
		"start_date": bson.M{"$lte": windowEnd.Format(dayKeyFormat)},
		"end_date":   bson.M{"$gte": windowStart.Format(dayKeyFormat)},
	}
	return repo.findBookings(ctx, filter)
}

func (repo *MongoBookingRepo) GetBookingByID(bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc bookingDoc
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": bookingID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", bookingID, err)
	}
	booking, err := doc.booking()
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// PlaceBooking inserts the booking decided by decide, running the decision
// and the insert inside one transaction so validation always sees the
// snapshot it writes against.
func (repo *MongoBookingRepo) PlaceBooking(ctx context.Context, roomID string, decide DecideFunc) (*models.Booking, error) {
	var placed models.Booking
	txnFn := func(sc mongo.SessionContext) error {
		existing, err := repo.findBookings(sc, bson.M{"room_id": roomID})
		if err != nil {
			return err
		}
		booking, err := decide(existing)
		if err != nil {
			return err
		}
		if _, err := repo.bookingColl.InsertOne(sc, newBookingDoc(booking)); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		placed = booking
		return nil
	}
	if err := repo.withTransaction(ctx, txnFn); err != nil {
		return nil, err
	}
	return &placed, nil
}

// ReplaceBooking swaps a booking for the edited version decided by decide.
// The snapshot handed to decide excludes the edited booking itself, so a
// booking never conflicts with its own previous dates.
func (repo *MongoBookingRepo) ReplaceBooking(ctx context.Context, roomID, bookingID string, decide DecideFunc) (*models.Booking, error) {
	var replaced models.Booking
	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{"room_id": roomID, "id": bson.M{"$ne": bookingID}}
		existing, err := repo.findBookings(sc, filter)
		if err != nil {
			return err
		}
		booking, err := decide(existing)
		if err != nil {
			return err
		}
		res, err := repo.bookingColl.ReplaceOne(sc, bson.M{"id": bookingID}, newBookingDoc(booking))
		if err != nil {
			return fmt.Errorf("replace booking failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrBookingNotFound
		}
		replaced = booking
		return nil
	}
	if err := repo.withTransaction(ctx, txnFn); err != nil {
		return nil, err
	}
	return &replaced, nil
}

func (repo *MongoBookingRepo) DeleteBooking(bookingID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.bookingColl.DeleteOne(ctx, bson.M{"id": bookingID})
	if err != nil {
		return fmt.Errorf("error deleting booking %s: %w", bookingID, err)
	}
	if res.DeletedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (repo *MongoBookingRepo) findBookings(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := repo.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var doc bookingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		b, err := doc.booking()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) withTransaction(ctx context.Context, txnFn func(mongo.SessionContext) error) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
