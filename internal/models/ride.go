package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideStatus string
type BookingType string

const (
	RideStatusPending    RideStatus = "pending"
	RideStatusAccepted   RideStatus = "accepted"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"

	BookingTypeRegular          BookingType = "regular"
	BookingTypeSemesterMoveIn   BookingType = "semester_move_in"
	BookingTypeSemesterMoveOut  BookingType = "semester_move_out"
	BookingTypeHolidayTransport BookingType = "holiday_transport"
	BookingTypeGroupBooking     BookingType = "group_booking"
)

type Ride struct {
	ID              primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	StudentID       string              `json:"student_id" bson:"student_id"`
	StudentName     string              `json:"student_name" bson:"student_name"`
	StudentContact  string              `json:"student_contact" bson:"student_contact"`
	DriverID        *primitive.ObjectID `json:"driver_id" bson:"driver_id"`
	PickupLocation  GeoPoint            `json:"pickup_location" bson:"pickup_location"`
	DropoffLocation GeoPoint            `json:"dropoff_location" bson:"dropoff_location"`
	Distance        float64             `json:"distance" bson:"distance"` // kilometers
	EstimatedPrice  float64             `json:"estimated_price" bson:"estimated_price"`
	ActualPrice     *float64            `json:"actual_price" bson:"actual_price"`
	Status          RideStatus          `json:"status" bson:"status"`
	ScheduledTime   time.Time           `json:"scheduled_time" bson:"scheduled_time"`
	AcceptedAt      *time.Time          `json:"accepted_at" bson:"accepted_at"`
	CompletedAt     *time.Time          `json:"completed_at" bson:"completed_at"`
	Rating          *int                `json:"rating" bson:"rating"`
	Feedback        string              `json:"feedback" bson:"feedback"`

	BookingType    BookingType     `json:"booking_type" bson:"booking_type"`
	GroupSize      int             `json:"group_size" bson:"group_size"`
	LuggageCount   int             `json:"luggage_count" bson:"luggage_count"`
	FurnitureItems []FurnitureItem `json:"furniture_items" bson:"furniture_items"`
	Semester       string          `json:"semester" bson:"semester"`
	AcademicYear   string          `json:"academic_year" bson:"academic_year"`
	HolidayType    string          `json:"holiday_type" bson:"holiday_type"`

	SplitFare           *SplitFare        `json:"split_fare" bson:"split_fare"`
	IsSharedRide        bool              `json:"is_shared_ride" bson:"is_shared_ride"`
	MaxSharedPassengers int               `json:"max_shared_passengers" bson:"max_shared_passengers"`
	SharedPassengers    []SharedPassenger `json:"shared_passengers" bson:"shared_passengers"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type FurnitureItem struct {
	Item     string `json:"item" bson:"item"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

type SplitFare struct {
	Enabled           bool                   `json:"enabled" bson:"enabled"`
	TotalParticipants int                    `json:"total_participants" bson:"total_participants"`
	Participants      []SplitFareParticipant `json:"participants" bson:"participants"`
	IsOpen            bool                   `json:"is_open" bson:"is_open"`
}

type SplitFareParticipant struct {
	StudentID      string  `json:"student_id" bson:"student_id"`
	StudentName    string  `json:"student_name" bson:"student_name"`
	StudentContact string  `json:"student_contact" bson:"student_contact"`
	ShareAmount    float64 `json:"share_amount" bson:"share_amount"`
}

type SharedPassenger struct {
	StudentID       string   `json:"student_id" bson:"student_id"`
	StudentName     string   `json:"student_name" bson:"student_name"`
	StudentContact  string   `json:"student_contact" bson:"student_contact"`
	PickupLocation  GeoPoint `json:"pickup_location" bson:"pickup_location"`
	DropoffLocation GeoPoint `json:"dropoff_location" bson:"dropoff_location"`
	ShareAmount     float64  `json:"share_amount" bson:"share_amount"`
}

// SimilarRide is the trimmed projection returned by quote calculation; internal
// booking metadata is omitted and the driver is reduced to a display name.
type SimilarRide struct {
	ID              primitive.ObjectID `json:"id"`
	PickupLocation  GeoPoint           `json:"pickup_location"`
	DropoffLocation GeoPoint           `json:"dropoff_location"`
	ScheduledTime   time.Time          `json:"scheduled_time"`
	Status          RideStatus         `json:"status"`
	EstimatedPrice  float64            `json:"estimated_price"`
	DriverName      string             `json:"driver_name"`
}

var rideTransitions = map[RideStatus][]RideStatus{
	RideStatusPending:    {RideStatusAccepted, RideStatusCancelled},
	RideStatusAccepted:   {RideStatusInProgress, RideStatusCancelled},
	RideStatusInProgress: {RideStatusCompleted, RideStatusCancelled},
	RideStatusCompleted:  {},
	RideStatusCancelled:  {},
}

// ValidTransition reports whether a ride may move from one status to another.
// completed and cancelled are terminal.
func ValidTransition(from, to RideStatus) bool {
	for _, next := range rideTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s RideStatus) IsTerminal() bool {
	return len(rideTransitions[s]) == 0
}

// IsValid reports whether s is a known ride status.
func (s RideStatus) IsValid() bool {
	_, ok := rideTransitions[s]
	return ok
}

// IsValid reports whether b is a known booking type.
func (b BookingType) IsValid() bool {
	switch b {
	case BookingTypeRegular, BookingTypeSemesterMoveIn, BookingTypeSemesterMoveOut,
		BookingTypeHolidayTransport, BookingTypeGroupBooking:
		return true
	}
	return false
}
