// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names for booking lifecycle events.
const (
	RequestedQueueName = "booking.requested"
	ResolvedQueueName  = "booking.resolved"
)

// BookingRequestedEvent is published when a new booking request is created.
// It carries enough information for downstream consumers to log or trigger
// analytics without querying the primary database.
type BookingRequestedEvent struct {
	EventID     string `json:"event_id"`
	BookingID   uint64 `json:"booking_id"`
	SpaceID     uint64 `json:"space_id"`
	SpaceName   string `json:"space_name"`
	RequesterID uint64 `json:"requester_id"`
	BookingDate string `json:"booking_date"`
	RequestedAt string `json:"requested_at"`
}

// BookingResolvedEvent is published when a space owner approves or denies
// a booking request.
type BookingResolvedEvent struct {
	EventID     string `json:"event_id"`
	BookingID   uint64 `json:"booking_id"`
	SpaceID     uint64 `json:"space_id"`
	SpaceName   string `json:"space_name"`
	RequesterID uint64 `json:"requester_id"`
	ActorID     uint64 `json:"actor_id"`
	NewStatus   string `json:"new_status"`
	BookingDate string `json:"booking_date"`
	ResolvedAt  string `json:"resolved_at"`
}
