package chat

import "strings"

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentGreeting         Intent = "greeting"
	IntentFarewell         Intent = "farewell"
	IntentListMovies       Intent = "list_movies"
	IntentSchedule         Intent = "schedule"
	IntentPrices           Intent = "prices"
	IntentStartReservation Intent = "start_reservation"
	IntentAdminAdd         Intent = "admin_add"
	IntentUnknown          Intent = "unknown"
)

// intentGroup pairs an intent with its trigger phrases.
type intentGroup struct {
	intent   Intent
	triggers []string
}

// intentGroups is ordered by priority: trigger sets overlap ("funciones"
// is both a schedule and a movie-listing trigger) and the first matching
// group wins. The documented order is greeting, farewell,
// start_reservation, prices, schedule, list_movies. Admin-add triggers
// live in adminTriggers and are consulted separately by the engine, only
// when nothing here matches.
var intentGroups = []intentGroup{
	{IntentGreeting, []string{"hola", "buenas", "hey", "holo", "saludos", "buen"}},
	{IntentFarewell, []string{"chau", "adios", "bye", "nos vemos", "gracias"}},
	{IntentStartReservation, []string{"reservar", "comprar", "apartado", "guardar"}},
	{IntentPrices, []string{"precio", "cuanto vale", "entrada"}},
	{IntentSchedule, []string{"horario", "hora", "cuando", "funciones"}},
	{IntentListMovies, []string{"pelicula", "peliculas", "cartelera", "pelis", "funciones"}},
}

// adminTriggers start the administrator data-entry flow.
var adminTriggers = []string{"agregar", "insertar", "nueva", "poner"}

// Classify maps a free-text message to an Intent by testing, in priority
// order, whether the normalized message contains any trigger phrase of a
// group. Side-effect free; returns IntentUnknown when no group matches.
func Classify(message string) Intent {
	msg := Normalize(message)
	for _, g := range intentGroups {
		if containsAny(msg, g.triggers) {
			return g.intent
		}
	}
	return IntentUnknown
}

// IsAdminTrigger reports whether the message contains one of the
// administrator flow trigger words.
func IsAdminTrigger(message string) bool {
	return containsAny(Normalize(message), adminTriggers)
}

// containsAny tests normalized substring containment for each trigger.
// Triggers are normalized too, so accented spellings keep matching.
func containsAny(normalizedMsg string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(normalizedMsg, Normalize(t)) {
			return true
		}
	}
	return false
}
