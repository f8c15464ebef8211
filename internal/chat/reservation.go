package chat

import (
	"errors"
	"strconv"
	"strings"
)

// Validation sentinels for reservation lines. All are user-correctable;
// the engine turns them into re-prompt replies.
var (
	ErrReservationFormat = errors.New("reservation line needs name, email, showing id and quantity")
	ErrInvalidEmail      = errors.New("email must contain @")
	ErrInvalidShowingID  = errors.New("showing id must be a number")
	ErrInvalidQuantity   = errors.New("quantity must be a whole number of at least 1")
)

// ReservationRequest is a parsed "name, email, showing-id, quantity" line.
type ReservationRequest struct {
	Name      string
	Email     string
	ShowingID int64
	Quantity  int64
}

// DetectReservation reports whether a message is shaped like a reservation
// line: the raw text must contain both "@" and ",". It deliberately skips
// Normalize, which strips commas along with the rest of the punctuation.
// The gate only decides routing and wins over intent classification
// whenever it matches; ParseReservation remains the authority on whether
// the line is valid.
func DetectReservation(message string) bool {
	return strings.Contains(message, "@") && strings.Contains(message, ",")
}

// ParseReservation splits a reservation line on commas and validates its
// four leading fields. Fields beyond the fourth are ignored.
func ParseReservation(message string) (*ReservationRequest, error) {
	parts := strings.Split(message, ",")
	if len(parts) < 4 {
		return nil, ErrReservationFormat
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	req := &ReservationRequest{Name: parts[0], Email: parts[1]}
	if !strings.Contains(req.Email, "@") {
		return nil, ErrInvalidEmail
	}
	id, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return nil, ErrInvalidShowingID
	}
	req.ShowingID = id
	qty, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil || qty < 1 {
		return nil, ErrInvalidQuantity
	}
	req.Quantity = qty
	return req, nil
}

// splitFields is the comma splitter shared by the admin data-entry steps.
func splitFields(message string) []string {
	parts := strings.Split(message, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
