package chat

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/cinema-chatbot/internal/queue"
	"github.com/iliyamo/cinema-chatbot/internal/repository"
	"github.com/iliyamo/cinema-chatbot/internal/utils"
)

// Publisher delivers a reservation confirmation event to the broker. It
// is a function value so main can wire the RabbitMQ publisher while tests
// capture events in memory. A nil Publisher disables publishing.
type Publisher func(ctx context.Context, ev queue.ReservationConfirmedEvent) error

// Engine drives the dialogue. It owns the per-session conversation state
// and decides, for each inbound message, which handler produces the one
// reply. Store failures never escape as errors: they degrade to an
// apology reply and leave the session state unchanged so the user can
// retry.
type Engine struct {
	movies       *repository.MovieRepo
	showings     *repository.ShowingRepo
	reservations *repository.ReservationRepo
	sessions     SessionStore
	passHash     string
	publish      Publisher
}

// NewEngine assembles the dialogue engine. passHash is the bcrypt hash of
// the configured admin passphrase.
func NewEngine(
	movies *repository.MovieRepo,
	showings *repository.ShowingRepo,
	reservations *repository.ReservationRepo,
	sessions SessionStore,
	passHash string,
	publish Publisher,
) *Engine {
	return &Engine{
		movies:       movies,
		showings:     showings,
		reservations: reservations,
		sessions:     sessions,
		passHash:     passHash,
		publish:      publish,
	}
}

// HandleMessage processes one inbound message for one session and returns
// exactly one reply.
//
// Routing order: an in-progress admin step takes exclusive control of the
// message; otherwise the reservation-shape gate wins over intent
// classification whenever it matches, then the classifier runs, then the
// admin trigger words are checked, and finally the title similarity
// fallback has a go before the help text.
func (e *Engine) HandleMessage(ctx context.Context, sessionID, message string) string {
	state, err := e.sessions.Get(ctx, sessionID)
	if err != nil {
		log.Printf("chat: read session %s: %v", sessionID, err)
		state = ConversationState{Step: StepNone}
	}

	if !state.Idle() {
		return e.handleAdminStep(ctx, sessionID, state, message)
	}

	if DetectReservation(message) {
		return e.handleReservation(ctx, message)
	}

	switch Classify(message) {
	case IntentGreeting:
		return replyGreeting
	case IntentFarewell:
		return replyFarewell
	case IntentListMovies:
		return e.handleListMovies(ctx)
	case IntentSchedule:
		return e.handleSchedule(ctx)
	case IntentPrices:
		return e.handlePrices(ctx)
	case IntentStartReservation:
		return e.handleReservationPrompt(ctx)
	}

	if IsAdminTrigger(message) {
		e.setState(ctx, sessionID, ConversationState{Step: StepAwaitPassword})
		return replyAskPassword
	}

	return e.handleFallback(ctx, message)
}

// isCancel matches the explicit escape hatch out of an admin step.
func isCancel(message string) bool {
	msg := strings.TrimSpace(Normalize(message))
	return msg == "cancelar" || msg == "cancel"
}

// handleAdminStep routes a message while an admin flow is in progress.
// The classifier is never consulted here: the flow has exclusive control
// until it completes, is cancelled, or its state expires.
func (e *Engine) handleAdminStep(ctx context.Context, sessionID string, state ConversationState, message string) string {
	if isCancel(message) {
		e.resetState(ctx, sessionID)
		return replyCancelled
	}

	switch state.Step {
	case StepAwaitPassword:
		if !utils.VerifyPassphrase(e.passHash, message) {
			return replyWrongPassword
		}
		e.setState(ctx, sessionID, ConversationState{Authenticated: true, Step: StepAwaitMovie})
		return replyAskMovie
	case StepAwaitMovie:
		return e.handleMovieFields(ctx, sessionID, message)
	case StepAwaitShowing:
		return e.handleShowingFields(ctx, sessionID, message)
	}

	// Unknown step value, e.g. state written by an older build.
	e.resetState(ctx, sessionID)
	return replyHelp
}

// handleMovieFields parses "title, duration, description" and writes the
// movie. Malformed input re-prompts without changing the step.
func (e *Engine) handleMovieFields(ctx context.Context, sessionID, message string) string {
	parts := splitFields(message)
	if len(parts) < 3 {
		return replyMovieFormat
	}
	duration, err := strconv.Atoi(parts[1])
	if err != nil || duration < 1 {
		return replyBadDuration
	}
	m := &repository.Movie{Title: parts[0], DurationMin: duration, Description: parts[2]}
	if err := e.movies.Insert(ctx, m); err != nil {
		log.Printf("chat: insert movie %q: %v", m.Title, err)
		return replyStoreError
	}
	e.setState(ctx, sessionID, ConversationState{Authenticated: true, Step: StepAwaitShowing})
	return replyAskShowing
}

// handleShowingFields parses "movieId, time, room, price", writes the
// showing and ends the admin flow, de-authenticating the session.
func (e *Engine) handleShowingFields(ctx context.Context, sessionID, message string) string {
	parts := splitFields(message)
	if len(parts) < 4 {
		return replyShowingFormat
	}
	movieID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return replyBadMovieID
	}
	price, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return replyBadPrice
	}
	s := &repository.Showing{MovieID: movieID, StartsAt: parts[1], Room: parts[2], Price: price}
	if err := e.showings.Insert(ctx, s); err != nil {
		log.Printf("chat: insert showing for movie %d: %v", movieID, err)
		return replyStoreError
	}
	e.resetState(ctx, sessionID)
	return replyShowingAdded
}

// handleReservation validates a reservation line, confirms the showing
// exists, computes the total and persists the reservation.
func (e *Engine) handleReservation(ctx context.Context, message string) string {
	req, err := ParseReservation(message)
	if err != nil {
		return reservationErrorReply(err)
	}

	info, err := e.showings.FindByID(ctx, req.ShowingID)
	if errors.Is(err, repository.ErrShowingNotFound) {
		return replyShowingNotFound
	}
	if err != nil {
		log.Printf("chat: find showing %d: %v", req.ShowingID, err)
		return replyStoreError
	}

	total := info.Price * float64(req.Quantity)
	res := &repository.Reservation{
		Name:      req.Name,
		Email:     req.Email,
		ShowingID: req.ShowingID,
		Quantity:  req.Quantity,
		Total:     total,
	}
	if err := e.reservations.Insert(ctx, res); err != nil {
		log.Printf("chat: insert reservation for showing %d: %v", req.ShowingID, err)
		return replyStoreError
	}

	if e.publish != nil {
		ev := queue.ReservationConfirmedEvent{
			ReservationID: res.ID,
			Name:          req.Name,
			Email:         req.Email,
			ShowingID:     req.ShowingID,
			MovieTitle:    info.Title,
			StartsAt:      info.StartsAt,
			Quantity:      req.Quantity,
			Total:         total,
			ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		if err := e.publish(ctx, ev); err != nil {
			log.Printf("chat: publish reservation %d: %v", res.ID, err)
		}
	}

	return reservationConfirmedReply(req.Name, info.Title, info.StartsAt, req.Quantity, total)
}

func (e *Engine) handleListMovies(ctx context.Context) string {
	titles, err := e.movies.ListTitles(ctx)
	if err != nil {
		log.Printf("chat: list movies: %v", err)
		return replyStoreError
	}
	if len(titles) == 0 {
		return replyNoMovies
	}
	return movieListReply(titles)
}

func (e *Engine) handleSchedule(ctx context.Context) string {
	entries, err := e.showings.ListSchedule(ctx)
	if err != nil {
		log.Printf("chat: list schedule: %v", err)
		return replyStoreError
	}
	if len(entries) == 0 {
		return replyNoShowings
	}
	return scheduleReply(entries)
}

func (e *Engine) handlePrices(ctx context.Context) string {
	entries, err := e.showings.ListPrices(ctx)
	if err != nil {
		log.Printf("chat: list prices: %v", err)
		return replyStoreError
	}
	if len(entries) == 0 {
		return replyNoPrices
	}
	return pricesReply(entries)
}

func (e *Engine) handleReservationPrompt(ctx context.Context) string {
	showings, err := e.showings.ListWithMovies(ctx)
	if err != nil {
		log.Printf("chat: list showings: %v", err)
		return replyStoreError
	}
	if len(showings) == 0 {
		return replyNoShowings
	}
	return reservationPromptReply(showings)
}

// handleFallback runs the title similarity scorer over the catalog. On a
// match it enriches the reply with the movie's first showing; otherwise
// the help text lists the supported topics.
func (e *Engine) handleFallback(ctx context.Context, message string) string {
	titles, err := e.movies.ListTitles(ctx)
	if err != nil {
		log.Printf("chat: list movies for fallback: %v", err)
		return replyHelp
	}
	title, _, ok := BestTitle(message, titles)
	if !ok {
		return replyHelp
	}
	info, err := e.showings.FirstByTitle(ctx, title)
	if err != nil {
		if !errors.Is(err, repository.ErrShowingNotFound) {
			log.Printf("chat: first showing of %q: %v", title, err)
		}
		return partialMatchReply(title)
	}
	return partialMatchDetailReply(info)
}

// setState persists the session state; storage trouble is logged and the
// dialogue carries on, since the reply itself is still valid.
func (e *Engine) setState(ctx context.Context, sessionID string, state ConversationState) {
	if err := e.sessions.Put(ctx, sessionID, state); err != nil {
		log.Printf("chat: write session %s: %v", sessionID, err)
	}
}

func (e *Engine) resetState(ctx context.Context, sessionID string) {
	if err := e.sessions.Reset(ctx, sessionID); err != nil {
		log.Printf("chat: reset session %s: %v", sessionID, err)
	}
}
