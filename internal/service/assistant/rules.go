package assistant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

// Детерминированный rule-based fallback
// Используется, когда completion-сервис выключен, недоступен
// или вернул непригодный ответ. Ответы всегда на английском

func fallbackResponse(message string, museum *domain.Museum) string {
	query := strings.ToLower(message)

	if museum != nil {
		switch {
		case containsAny(query, "ticket", "price", "cost"):
			return ticketsReply(museum)

		case containsAny(query, "time", "hour", "when", "open"):
			return timingsReply(museum)

		case containsAny(query, "location", "address", "where"):
			return locationReply(museum)

		case containsAny(query, "show", "event", "exhibition"):
			return showsReply(museum)
		}

		return fmt.Sprintf("I can help you with information about %s, including tickets, timings, and special shows. What would you like to know?", museum.Name)
	}

	// Без выбранного музея
	switch {
	case containsAny(query, "ticket", "price", "cost"):
		return "Ticket prices vary by museum. Please select a specific museum to get detailed ticket information."

	case containsAny(query, "book", "reservation", "purchase", "buy"):
		return "I can help you book tickets. Please select a museum first, then tell me which tickets you would like."

	case containsAny(query, "hello", "hi ", "namaste", "greetings") || query == "hi":
		return "Hello! I can help you with information about museums, tickets, and shows. How can I assist you today?"
	}

	return "I can help you with information about museums, tickets, and shows. Please select a museum or ask a more specific question."
}

func ticketsReply(museum *domain.Museum) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here are the ticket prices for %s:\n", museum.Name)

	// Стабильный порядок по идентификатору типа билета
	ids := make([]string, 0, len(museum.Tickets))
	for id := range museum.Tickets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		ticket := museum.Tickets[id]
		fmt.Fprintf(&b, "- %s: ₹%.0f - %s\n", ticket.Name, ticket.Price, ticket.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func timingsReply(museum *domain.Museum) string {
	reply := fmt.Sprintf("%s is open from %s to %s.", museum.Name, museum.Timings.Opening, museum.Timings.Closing)
	if len(museum.Timings.Holidays) > 0 {
		reply += fmt.Sprintf(" The museum is closed on %s.", strings.Join(museum.Timings.Holidays, ", "))
	}
	return reply
}

func locationReply(museum *domain.Museum) string {
	return fmt.Sprintf("%s is located at %s, %s, %s, %s.",
		museum.Name,
		museum.Location.Address,
		museum.Location.City,
		museum.Location.State,
		museum.Location.Pincode,
	)
}

func showsReply(museum *domain.Museum) string {
	if !museum.HasShows() {
		return fmt.Sprintf("There are currently no special shows or events at %s.", museum.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Current shows at %s:\n", museum.Name)
	for _, show := range museum.Shows {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", show.Name, show.Description, show.Schedule)
	}
	return strings.TrimRight(b.String(), "\n")
}

func containsAny(query string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(query, keyword) {
			return true
		}
	}
	return false
}
