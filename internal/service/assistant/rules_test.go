package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

func testMuseum() *domain.Museum {
	return &domain.Museum{
		ID:          "vitm",
		Name:        "Visvesvaraya Industrial and Technological Museum",
		Description: "Science and technology museum",
		Location: domain.Location{
			Address: "Kasturba Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560001",
		},
		Timings: domain.Timings{
			Opening:  "10:00 AM",
			Closing:  "6:00 PM",
			Holidays: []string{"Ganesh Chaturthi", "Deepavali"},
		},
		Tickets: map[string]domain.Ticket{
			"general": {Name: "General", Price: 200, Description: "Standard entry"},
			"student": {Name: "Student", Price: 100, Description: "With valid ID"},
		},
		Shows: []domain.Show{
			{Name: "Science Show", Description: "Live demonstrations", Schedule: "Hourly", Price: "Free"},
		},
		Facilities: []string{"Parking", "Cafeteria"},
	}
}

func TestFallbackResponse_WithMuseumContext(t *testing.T) {
	museum := testMuseum()

	t.Run("ticket keywords list prices", func(t *testing.T) {
		for _, q := range []string{"ticket info", "what is the price?", "how much does it cost"} {
			reply := fallbackResponse(q, museum)
			assert.Contains(t, reply, museum.Name)
			assert.Contains(t, reply, "₹200")
			assert.Contains(t, reply, "₹100")
			assert.Contains(t, reply, "General")
			assert.Contains(t, reply, "Student")
		}
	})

	t.Run("ticket list order is stable", func(t *testing.T) {
		first := fallbackResponse("ticket", museum)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, fallbackResponse("ticket", museum))
		}
	})

	t.Run("timing keywords quote opening hours", func(t *testing.T) {
		for _, q := range []string{"what time", "opening hour", "when are you open"} {
			reply := fallbackResponse(q, museum)
			assert.Contains(t, reply, "10:00 AM")
			assert.Contains(t, reply, "6:00 PM")
		}
	})

	t.Run("timings mention holidays", func(t *testing.T) {
		reply := fallbackResponse("when are you open", museum)
		assert.Contains(t, reply, "Ganesh Chaturthi")
		assert.Contains(t, reply, "Deepavali")
	})

	t.Run("location keywords quote address", func(t *testing.T) {
		for _, q := range []string{"location please", "what is the address", "where are you"} {
			reply := fallbackResponse(q, museum)
			assert.Contains(t, reply, "Kasturba Road")
			assert.Contains(t, reply, "Bengaluru")
		}
	})

	t.Run("show keywords list shows", func(t *testing.T) {
		for _, q := range []string{"any shows?", "events today", "exhibition schedule"} {
			reply := fallbackResponse(q, museum)
			assert.Contains(t, reply, "Science Show")
		}
	})

	t.Run("no shows fallback", func(t *testing.T) {
		quiet := testMuseum()
		quiet.Shows = nil
		reply := fallbackResponse("any shows?", quiet)
		assert.Contains(t, reply, "no special shows")
	})

	t.Run("default mentions museum name", func(t *testing.T) {
		reply := fallbackResponse("tell me something", museum)
		assert.Contains(t, reply, museum.Name)
	})
}

func TestFallbackResponse_WithoutMuseumContext(t *testing.T) {
	t.Run("ticket question asks to pick a museum", func(t *testing.T) {
		reply := fallbackResponse("ticket price", nil)
		assert.Contains(t, reply, "select a specific museum")
	})

	t.Run("booking question asks to pick a museum", func(t *testing.T) {
		for _, q := range []string{"I want to book", "purchase something", "buy entry"} {
			reply := fallbackResponse(q, nil)
			assert.Contains(t, reply, "select a museum first")
		}
	})

	t.Run("greeting", func(t *testing.T) {
		for _, q := range []string{"hello", "hi", "namaste"} {
			reply := fallbackResponse(q, nil)
			assert.Contains(t, reply, "Hello!")
		}
	})

	t.Run("default", func(t *testing.T) {
		reply := fallbackResponse("42", nil)
		assert.Contains(t, reply, "Please select a museum")
	})
}

func TestFallbackResponse_NeverEmpty(t *testing.T) {
	museum := testMuseum()
	queries := []string{"", "ticket", "time", "where", "show", "book", "hello", "random words"}

	for _, q := range queries {
		assert.NotEmpty(t, fallbackResponse(q, museum))
		assert.NotEmpty(t, fallbackResponse(q, nil))
	}
}
