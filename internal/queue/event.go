package queue

// ReservationConfirmedQueue is the durable queue that carries confirmed
// reservation events from the chat engine to the notification consumer.
const ReservationConfirmedQueue = "reservation.confirmed"

// ReservationConfirmedEvent is published after a reservation row is
// inserted. The consumer appends it to the notification log.
type ReservationConfirmedEvent struct {
	ReservationID int64   `json:"reservation_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ShowingID     int64   `json:"showing_id"`
	MovieTitle    string  `json:"movie_title"`
	StartsAt      string  `json:"starts_at"`
	Quantity      int64   `json:"quantity"`
	Total         float64 `json:"total"`
	ConfirmedAt   string  `json:"confirmed_at"`
}
