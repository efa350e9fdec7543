package assistant

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MuseumService/internal/service/catalog"
)

// buildSystemContext собирает системный преамбул для live-бэкенда
// из полного снапшота каталога
func buildSystemContext(snapshot *catalog.Snapshot, language string) string {
	var b strings.Builder

	b.WriteString(`You are a helpful assistant for a museum ticketing system. Here's what you need to know:

**General Museum Information**
1. Museums in India typically open between 9-10 AM and close between 5-6 PM
2. Most museums are closed on Mondays
3. Common ticket types: General Admission, Student/Senior Concession, Family Pass
4. Many museums offer free entry on special days like International Museum Day
5. Photography rules vary - some allow it with a fee, others prohibit it
6. Most museums have guided tours available, often in multiple languages

**Available Museums**
`)

	for _, museum := range snapshot.Museums() {
		fmt.Fprintf(&b, "\n**%s**\n", museum.Name)
		fmt.Fprintf(&b, "Location: %s, %s\n", museum.Location.City, museum.Location.State)
		fmt.Fprintf(&b, "Timings: %s - %s\n", museum.Timings.Opening, museum.Timings.Closing)

		b.WriteString("Tickets: ")
		for _, ticket := range museum.Tickets {
			fmt.Fprintf(&b, "%s (₹%.0f) ", ticket.Name, ticket.Price)
		}
		b.WriteString("\n")

		fmt.Fprintf(&b, "Facilities: %s\n", strings.Join(museum.Facilities, ", "))

		if museum.HasShows() {
			b.WriteString("Current Shows: ")
			for _, show := range museum.Shows {
				fmt.Fprintf(&b, "%s (₹%s) ", show.Name, show.Price)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(`
Your role is to provide accurate, helpful information about any of these museums. Be polite, enthusiastic about cultural heritage, and always maintain a professional tone. If you don't know an answer, say so and suggest where the visitor might find the information.
`)
	b.WriteString(LanguageDirective(language))

	return b.String()
}
