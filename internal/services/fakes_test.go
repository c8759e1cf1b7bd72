package services

import (
	"context"
	"fmt"
	"time"

	"unistay/internal/apperrors"
	"unistay/internal/models"
	"unistay/internal/repositories/interfaces"
	"unistay/internal/utils"
	"unistay/pkg/logger"
	"unistay/pkg/maps"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *logger.Logger {
	log, err := logger.NewLogger(&logger.Config{Level: "error", Format: "text", Output: "stderr"})
	if err != nil {
		panic(err)
	}
	return log
}

// fakeMaps returns a fixed distance or a canned error.
type fakeMaps struct {
	result *maps.DistanceResult
	err    error
}

func (f *fakeMaps) CalculateDistance(_ context.Context, _ *maps.DistanceRequest) (*maps.DistanceResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeRideRepo keeps rides in a map and applies update documents onto the
// stored model the way the mongo layer would.
type fakeRideRepo struct {
	rides map[primitive.ObjectID]*models.Ride

	similarResult []*models.Ride
	sharedResult  []*models.Ride

	lastSimilarQuery *interfaces.SimilarRideQuery
	lastSharedQuery  *interfaces.SharedRideQuery

	avgRideRating  float64
	ratedRideCount int64
}

func newFakeRideRepo() *fakeRideRepo {
	return &fakeRideRepo{rides: make(map[primitive.ObjectID]*models.Ride)}
}

func (f *fakeRideRepo) put(ride *models.Ride) primitive.ObjectID {
	if ride.ID.IsZero() {
		ride.ID = primitive.NewObjectID()
	}
	f.rides[ride.ID] = ride
	return ride.ID
}

func (f *fakeRideRepo) Create(_ context.Context, ride *models.Ride) error {
	ride.ID = primitive.NewObjectID()
	ride.CreatedAt = time.Now()
	ride.UpdatedAt = ride.CreatedAt
	f.rides[ride.ID] = ride
	return nil
}

func (f *fakeRideRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Ride, error) {
	ride, ok := f.rides[id]
	if !ok {
		return nil, fmt.Errorf("ride %s: %w", id.Hex(), apperrors.ErrNotFound)
	}
	copied := *ride
	return &copied, nil
}

func (f *fakeRideRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	ride, ok := f.rides[id]
	if !ok {
		return fmt.Errorf("ride %s: %w", id.Hex(), apperrors.ErrNotFound)
	}
	for key, value := range updates {
		switch key {
		case "status":
			ride.Status = value.(models.RideStatus)
		case "driver_id":
			v := value.(primitive.ObjectID)
			ride.DriverID = &v
		case "accepted_at":
			v := value.(time.Time)
			ride.AcceptedAt = &v
		case "completed_at":
			v := value.(time.Time)
			ride.CompletedAt = &v
		case "actual_price":
			v := value.(float64)
			ride.ActualPrice = &v
		case "rating":
			v := value.(int)
			ride.Rating = &v
		case "feedback":
			ride.Feedback = value.(string)
		case "shared_passengers":
			ride.SharedPassengers = value.([]models.SharedPassenger)
		case "split_fare":
			ride.SplitFare = value.(*models.SplitFare)
		}
	}
	ride.UpdatedAt = time.Now()
	return nil
}

func (f *fakeRideRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.rides[id]; !ok {
		return fmt.Errorf("ride %s: %w", id.Hex(), apperrors.ErrNotFound)
	}
	delete(f.rides, id)
	return nil
}

func (f *fakeRideRepo) List(_ context.Context, _ *utils.PaginationParams) ([]*models.Ride, int64, error) {
	out := make([]*models.Ride, 0, len(f.rides))
	for _, r := range f.rides {
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRideRepo) GetByStudent(_ context.Context, studentID string, _ *utils.PaginationParams) ([]*models.Ride, int64, error) {
	var out []*models.Ride
	for _, r := range f.rides {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRideRepo) GetByDriver(_ context.Context, driverID primitive.ObjectID, _ *utils.PaginationParams) ([]*models.Ride, int64, error) {
	var out []*models.Ride
	for _, r := range f.rides {
		if r.DriverID != nil && *r.DriverID == driverID {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRideRepo) GetByStatus(_ context.Context, status models.RideStatus, _ *utils.PaginationParams) ([]*models.Ride, int64, error) {
	var out []*models.Ride
	for _, r := range f.rides {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRideRepo) FindSimilar(_ context.Context, query *interfaces.SimilarRideQuery) ([]*models.Ride, error) {
	f.lastSimilarQuery = query
	return f.similarResult, nil
}

func (f *fakeRideRepo) FindShared(_ context.Context, query *interfaces.SharedRideQuery) ([]*models.Ride, error) {
	f.lastSharedQuery = query
	return f.sharedResult, nil
}

func (f *fakeRideRepo) AverageDriverRideRating(_ context.Context, _ primitive.ObjectID) (float64, int64, error) {
	return f.avgRideRating, f.ratedRideCount, nil
}

func (f *fakeRideRepo) CountByStatus(_ context.Context) (map[models.RideStatus]int64, error) {
	out := make(map[models.RideStatus]int64)
	for _, r := range f.rides {
		out[r.Status]++
	}
	return out, nil
}

type fakeDriverRepo struct {
	drivers        map[primitive.ObjectID]*models.Driver
	ratings        map[primitive.ObjectID]float64
	incrementCalls []primitive.ObjectID
}

func newFakeDriverRepo() *fakeDriverRepo {
	return &fakeDriverRepo{
		drivers: make(map[primitive.ObjectID]*models.Driver),
		ratings: make(map[primitive.ObjectID]float64),
	}
}

func (f *fakeDriverRepo) put(driver *models.Driver) primitive.ObjectID {
	if driver.ID.IsZero() {
		driver.ID = primitive.NewObjectID()
	}
	f.drivers[driver.ID] = driver
	return driver.ID
}

func (f *fakeDriverRepo) Create(_ context.Context, driver *models.Driver) error {
	driver.ID = primitive.NewObjectID()
	f.drivers[driver.ID] = driver
	return nil
}

func (f *fakeDriverRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Driver, error) {
	driver, ok := f.drivers[id]
	if !ok {
		return nil, fmt.Errorf("driver %s: %w", id.Hex(), apperrors.ErrNotFound)
	}
	copied := *driver
	return &copied, nil
}

func (f *fakeDriverRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	driver, ok := f.drivers[id]
	if !ok {
		return fmt.Errorf("driver %s: %w", id.Hex(), apperrors.ErrNotFound)
	}
	if v, ok := updates["is_available"]; ok {
		driver.IsAvailable = v.(bool)
	}
	return nil
}

func (f *fakeDriverRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.drivers[id]; !ok {
		return fmt.Errorf("driver %s: %w", id.Hex(), apperrors.ErrNotFound)
	}
	delete(f.drivers, id)
	return nil
}

func (f *fakeDriverRepo) List(_ context.Context, _ *utils.PaginationParams) ([]*models.Driver, int64, error) {
	out := make([]*models.Driver, 0, len(f.drivers))
	for _, d := range f.drivers {
		out = append(out, d)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDriverRepo) GetAvailableActive(_ context.Context) ([]*models.Driver, error) {
	var out []*models.Driver
	for _, d := range f.drivers {
		if d.IsAvailable && d.Status == models.DriverStatusActive {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDriverRepo) UpdateRating(_ context.Context, id primitive.ObjectID, rating float64) error {
	driver, ok := f.drivers[id]
	if !ok {
		return fmt.Errorf("driver %s: %w", id.Hex(), apperrors.ErrNotFound)
	}
	driver.Rating = rating
	f.ratings[id] = rating
	return nil
}

func (f *fakeDriverRepo) IncrementTotalRides(_ context.Context, id primitive.ObjectID) error {
	driver, ok := f.drivers[id]
	if !ok {
		return fmt.Errorf("driver %s: %w", id.Hex(), apperrors.ErrNotFound)
	}
	driver.TotalRides++
	f.incrementCalls = append(f.incrementCalls, id)
	return nil
}

func (f *fakeDriverRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.drivers)), nil
}

// fakeDriverRatingRepo keys driver ratings by (driver, user).
type fakeDriverRatingRepo struct {
	ratings map[string]*models.DriverRating
}

func newFakeDriverRatingRepo() *fakeDriverRatingRepo {
	return &fakeDriverRatingRepo{ratings: make(map[string]*models.DriverRating)}
}

func driverRatingKey(driverID primitive.ObjectID, userID string) string {
	return driverID.Hex() + "/" + userID
}

func (f *fakeDriverRatingRepo) Upsert(_ context.Context, rating *models.DriverRating) (bool, error) {
	key := driverRatingKey(rating.DriverID, rating.UserID)
	_, exists := f.ratings[key]
	f.ratings[key] = rating
	return !exists, nil
}

func (f *fakeDriverRatingRepo) GetByDriverAndUser(_ context.Context, driverID primitive.ObjectID, userID string) (*models.DriverRating, error) {
	rating, ok := f.ratings[driverRatingKey(driverID, userID)]
	if !ok {
		return nil, fmt.Errorf("driver rating: %w", apperrors.ErrNotFound)
	}
	return rating, nil
}

func (f *fakeDriverRatingRepo) GetByDriver(_ context.Context, driverID primitive.ObjectID, _ *utils.PaginationParams) ([]*models.DriverRating, int64, error) {
	var out []*models.DriverRating
	for _, r := range f.ratings {
		if r.DriverID == driverID {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeDriverRatingRepo) Delete(_ context.Context, driverID primitive.ObjectID, userID string) error {
	key := driverRatingKey(driverID, userID)
	if _, ok := f.ratings[key]; !ok {
		return fmt.Errorf("driver rating: %w", apperrors.ErrNotFound)
	}
	delete(f.ratings, key)
	return nil
}

func (f *fakeDriverRatingRepo) GetAverage(_ context.Context, driverID primitive.ObjectID) (float64, int64, error) {
	var sum, count int64
	for _, r := range f.ratings {
		if r.DriverID == driverID {
			sum += int64(r.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (f *fakeDriverRatingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.ratings)), nil
}

// fakeRatingRepo keys room ratings by (room, user).
type fakeRatingRepo struct {
	ratings map[string]*models.Rating
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[string]*models.Rating)}
}

func roomRatingKey(roomID primitive.ObjectID, userID string) string {
	return roomID.Hex() + "/" + userID
}

func (f *fakeRatingRepo) Upsert(_ context.Context, rating *models.Rating) (bool, error) {
	key := roomRatingKey(rating.RoomID, rating.UserID)
	_, exists := f.ratings[key]
	f.ratings[key] = rating
	return !exists, nil
}

func (f *fakeRatingRepo) GetByRoomAndUser(_ context.Context, roomID primitive.ObjectID, userID string) (*models.Rating, error) {
	rating, ok := f.ratings[roomRatingKey(roomID, userID)]
	if !ok {
		return nil, fmt.Errorf("rating: %w", apperrors.ErrNotFound)
	}
	return rating, nil
}

func (f *fakeRatingRepo) GetByRoom(_ context.Context, roomID primitive.ObjectID, _ *utils.PaginationParams) ([]*models.Rating, int64, error) {
	var out []*models.Rating
	for _, r := range f.ratings {
		if r.RoomID == roomID {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRatingRepo) Delete(_ context.Context, roomID primitive.ObjectID, userID string) error {
	key := roomRatingKey(roomID, userID)
	if _, ok := f.ratings[key]; !ok {
		return fmt.Errorf("rating: %w", apperrors.ErrNotFound)
	}
	delete(f.ratings, key)
	return nil
}

func (f *fakeRatingRepo) GetAverage(_ context.Context, roomID primitive.ObjectID) (float64, int64, error) {
	var sum, count int64
	for _, r := range f.ratings {
		if r.RoomID == roomID {
			sum += int64(r.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (f *fakeRatingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.ratings)), nil
}

type fakeRoomRepo struct {
	rooms map[primitive.ObjectID]*models.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[primitive.ObjectID]*models.Room)}
}

func (f *fakeRoomRepo) put(room *models.Room) primitive.ObjectID {
	if room.ID.IsZero() {
		room.ID = primitive.NewObjectID()
	}
	f.rooms[room.ID] = room
	return room.ID
}

func (f *fakeRoomRepo) Create(_ context.Context, room *models.Room) error {
	room.ID = primitive.NewObjectID()
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, fmt.Errorf("room %s: %w", id.Hex(), apperrors.ErrNotFound)
	}
	copied := *room
	return &copied, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	room, ok := f.rooms[id]
	if !ok {
		return fmt.Errorf("room %s: %w", id.Hex(), apperrors.ErrNotFound)
	}
	if v, ok := updates["price"]; ok {
		room.Price = v.(int)
	}
	if v, ok := updates["title"]; ok {
		room.Title = v.(string)
	}
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.rooms[id]; !ok {
		return fmt.Errorf("room %s: %w", id.Hex(), apperrors.ErrNotFound)
	}
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomRepo) List(_ context.Context, _ *interfaces.RoomFilter, _ *utils.PaginationParams) ([]*models.Room, int64, error) {
	out := make([]*models.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRoomRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.rooms)), nil
}

type fakeFeedbackRepo struct {
	feedback map[string]*models.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{feedback: make(map[string]*models.Feedback)}
}

func (f *fakeFeedbackRepo) Create(_ context.Context, fb *models.Feedback) error {
	if _, ok := f.feedback[fb.UserID]; ok {
		return fmt.Errorf("feedback for user %s: %w", fb.UserID, apperrors.ErrConflict)
	}
	fb.ID = primitive.NewObjectID()
	f.feedback[fb.UserID] = fb
	return nil
}

func (f *fakeFeedbackRepo) GetByUser(_ context.Context, userID string) (*models.Feedback, error) {
	fb, ok := f.feedback[userID]
	if !ok {
		return nil, fmt.Errorf("feedback for user %s: %w", userID, apperrors.ErrNotFound)
	}
	return fb, nil
}

func (f *fakeFeedbackRepo) ListPublic(_ context.Context, _ *utils.PaginationParams) ([]*models.Feedback, int64, error) {
	var out []*models.Feedback
	for _, fb := range f.feedback {
		if fb.IsPublic && fb.IsApproved {
			out = append(out, fb)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeFeedbackRepo) List(_ context.Context, _ *utils.PaginationParams) ([]*models.Feedback, int64, error) {
	out := make([]*models.Feedback, 0, len(f.feedback))
	for _, fb := range f.feedback {
		out = append(out, fb)
	}
	return out, int64(len(out)), nil
}

func (f *fakeFeedbackRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	for _, fb := range f.feedback {
		if fb.ID == id {
			if v, ok := updates["is_approved"]; ok {
				fb.IsApproved = v.(bool)
			}
			return nil
		}
	}
	return fmt.Errorf("feedback %s: %w", id.Hex(), apperrors.ErrNotFound)
}

func (f *fakeFeedbackRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for userID, fb := range f.feedback {
		if fb.ID == id {
			delete(f.feedback, userID)
			return nil
		}
	}
	return fmt.Errorf("feedback %s: %w", id.Hex(), apperrors.ErrNotFound)
}

func (f *fakeFeedbackRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.feedback)), nil
}

func (f *fakeFeedbackRepo) AverageWebsiteRating(_ context.Context) (float64, error) {
	var sum, count int64
	for _, fb := range f.feedback {
		sum += int64(fb.WebsiteRating)
		count++
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}
