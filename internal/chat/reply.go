package chat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iliyamo/cinema-chatbot/internal/repository"
)

// Reply texts. The product copy keeps the bot's original Spanish voice;
// one constant or builder exists per outcome kind so transports never
// assemble text themselves.
const (
	replyGreeting = "👋 ¡Hola! Soy Cinebot, el asistente virtual del cine. Podés preguntarme por películas, horarios, precios o para reservar."
	replyFarewell = "👋 ¡Gracias por tu visita!"
	replyHelp     = "🤔 No entendí. Podés preguntar por 'películas', 'horarios', 'precios' o 'reservar'."

	replyAskPassword   = "🔐 Ingrese la contraseña:"
	replyWrongPassword = "❌ Contraseña incorrecta."
	replyAskMovie      = "Ingrese: título, duración, descripción"
	replyMovieFormat   = "Formato: título, duración, descripción"
	replyBadDuration   = "⚠️ La duración debe ser un número de minutos. Formato: título, duración, descripción"
	replyAskShowing    = "Película agregada. Ahora ingrese: id_película, horario, sala, precio"
	replyShowingFormat = "Formato: id_película, horario, sala, precio"
	replyBadMovieID    = "⚠️ El ID de película debe ser un número. Formato: id_película, horario, sala, precio"
	replyBadPrice      = "⚠️ El precio debe ser un número. Formato: id_película, horario, sala, precio"
	replyShowingAdded  = "✅ Función agregada correctamente."
	replyCancelled     = "Operación cancelada. ¿En qué más puedo ayudarte?"

	replyReservationFormat = "⚠️ Formato: nombre, correo, ID función, cantidad"
	replyBadEmail          = "⚠️ El correo no parece válido, tiene que incluir una @."
	replyBadShowingID      = "⚠️ El ID de función debe ser un número."
	replyBadQuantity       = "⚠️ La cantidad debe ser un número mayor a cero."
	replyShowingNotFound   = "❌ No se encontró esa función. Escribí 'reservar' para ver las funciones disponibles."

	replyStoreError = "❌ Ocurrió un error consultando los datos, intentá de nuevo."

	replyNoMovies   = "No hay películas cargadas."
	replyNoShowings = "No hay funciones disponibles."
	replyNoPrices   = "No hay precios cargados."
)

// formatPrice renders a price or total without trailing zeros, so a
// showing priced at 10 reads "$10" and one at 7.5 reads "$7.5".
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// movieListReply joins the catalog titles into the billboard reply.
func movieListReply(titles []string) string {
	return "🎥 En cartelera: " + strings.Join(titles, ", ")
}

// scheduleReply renders one "title - time" line per showing.
func scheduleReply(entries []repository.ScheduleEntry) string {
	var b strings.Builder
	b.WriteString("🕓 Horarios:")
	for _, e := range entries {
		b.WriteString("\n")
		b.WriteString(e.Title)
		b.WriteString(" - ")
		b.WriteString(e.StartsAt)
	}
	return b.String()
}

// pricesReply renders one "title: $price" line per showing.
func pricesReply(entries []repository.PriceEntry) string {
	var b strings.Builder
	b.WriteString("💰 Precios:")
	for _, e := range entries {
		b.WriteString("\n")
		b.WriteString(e.Title)
		b.WriteString(": $")
		b.WriteString(formatPrice(e.Price))
	}
	return b.String()
}

// reservationPromptReply explains the expected input line and lists every
// available showing with its id, title, time and price.
func reservationPromptReply(showings []repository.ShowingInfo) string {
	var b strings.Builder
	b.WriteString("🎟️ Para reservar escribí los datos así:\n\n")
	b.WriteString("nombre, correo, ID función, cantidad\n\n")
	b.WriteString("📌 Ejemplo:\nFer Trucolo, fer@gmail.com, 4, 2\n\n")
	b.WriteString("📽️ Funciones disponibles:\n")
	for _, s := range showings {
		fmt.Fprintf(&b, "\n• ID %d — %s (%s) — $%s", s.ID, s.Title, s.StartsAt, formatPrice(s.Price))
	}
	return b.String()
}

// reservationConfirmedReply is the receipt shown after the reservation
// row is written.
func reservationConfirmedReply(name, title, startsAt string, quantity int64, total float64) string {
	return fmt.Sprintf("✅ ¡Reserva confirmada a nombre de %s!\n🎬 %s\n🕓 %s\n🎟️ %d entradas\n💰 Total: $%s",
		name, title, startsAt, quantity, formatPrice(total))
}

// reservationErrorReply maps a parse sentinel to its re-prompt text.
func reservationErrorReply(err error) string {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		return replyBadEmail
	case errors.Is(err, ErrInvalidShowingID):
		return replyBadShowingID
	case errors.Is(err, ErrInvalidQuantity):
		return replyBadQuantity
	default:
		return replyReservationFormat
	}
}

// partialMatchReply nudges the user toward the title the similarity
// scorer picked when no showing details are available.
func partialMatchReply(title string) string {
	return fmt.Sprintf("🎬 %s. ¿Querés ver horarios o reservar?", title)
}

// partialMatchDetailReply shows the matched movie's next showing and
// offers a reservation.
func partialMatchDetailReply(s *repository.ShowingInfo) string {
	return fmt.Sprintf("🎬 %s\n🕓 %s\n💰 $%s\n¿Querés reservar?", s.Title, s.StartsAt, formatPrice(s.Price))
}
