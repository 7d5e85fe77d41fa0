package event

import (
	"errors"
	"time"

	"clubdesk/internal/application/fielderr"
)

// Event status constants (backend enumeration).
const (
	StatusPlanned   = "planned"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Statuses lists the valid event statuses in display order.
var Statuses = []string{StatusPlanned, StatusOngoing, StatusCompleted, StatusCancelled}

// Max length constants.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
)

// FormTimeLayout is the datetime-local input format used by the
// event forms.
const FormTimeLayout = "2006-01-02T15:04"

// Domain errors
var (
	ErrNotFound = errors.New("event not found")
)

// Event is a club event as the backend serves it. Description is
// markdown and rendered on the detail screen.
type Event struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Status               string    `json:"status"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	ReminderTime         time.Time `json:"reminder_time"`
	Venue                string    `json:"venue"`
	Organizer            string    `json:"organizer"`
}

// IsUpcoming returns true if the event has not started yet and is not
// cancelled.
// INVARIANT: Event fields are not mutated
func (e *Event) IsUpcoming(now time.Time) bool {
	return e.Status == StatusPlanned && e.StartDate.After(now)
}

// ValidStatus reports whether s is one of the backend's event statuses.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Form carries the submitted event fields. Date fields arrive as
// datetime-local strings and are validated for ordering before any
// upstream call.
type Form struct {
	Title                string `json:"title"`
	Description          string `json:"description"`
	Status               string `json:"status"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	RegistrationDeadline string `json:"registration_deadline"`
	Venue                string `json:"venue"`
	Organizer            string `json:"organizer"`
}

// Validate runs the local form rules.
// PRE: Form holds submitted values
// POST: returns per-field messages; empty when the form may be submitted
// INVARIANT: end date >= start date; registration deadline <= start date
func (f *Form) Validate() fielderr.Errors {
	errs := fielderr.New()
	if f.Title == "" {
		errs.Add("title", "required")
	}
	if len(f.Title) > MaxTitleLength {
		errs.Add("title", "cannot exceed 200 characters")
	}
	if len(f.Description) > MaxDescriptionLength {
		errs.Add("description", "cannot exceed 5000 characters")
	}
	if f.Status != "" && !ValidStatus(f.Status) {
		errs.Add("status", "must be planned, ongoing, completed or cancelled")
	}

	start, startErr := parseFormTime(f.StartDate)
	if f.StartDate == "" {
		errs.Add("start_date", "required")
	} else if startErr != nil {
		errs.Add("start_date", "must be a valid date and time")
	}

	if f.EndDate != "" {
		end, err := parseFormTime(f.EndDate)
		if err != nil {
			errs.Add("end_date", "must be a valid date and time")
		} else if startErr == nil && end.Before(start) {
			errs.Add("end_date", "must not be before the start date")
		}
	}

	if f.RegistrationDeadline != "" {
		deadline, err := parseFormTime(f.RegistrationDeadline)
		if err != nil {
			errs.Add("registration_deadline", "must be a valid date and time")
		} else if startErr == nil && deadline.After(start) {
			errs.Add("registration_deadline", "must not be after the start date")
		}
	}
	return errs
}

// TicketForm carries an event ticket's sale window.
type TicketForm struct {
	Name          string `json:"name"`
	Price         string `json:"price"`
	StartSaleDate string `json:"start_sale_date"`
	EndSaleDate   string `json:"end_sale_date"`
}

// Validate checks the ticket sale window.
// INVARIANT: end_sale_date >= start_sale_date
func (f *TicketForm) Validate() fielderr.Errors {
	errs := fielderr.New()
	if f.Name == "" {
		errs.Add("name", "required")
	}
	start, startErr := parseFormTime(f.StartSaleDate)
	if f.StartSaleDate == "" {
		errs.Add("start_sale_date", "required")
	} else if startErr != nil {
		errs.Add("start_sale_date", "must be a valid date and time")
	}
	if f.EndSaleDate == "" {
		errs.Add("end_sale_date", "required")
	} else if end, err := parseFormTime(f.EndSaleDate); err != nil {
		errs.Add("end_sale_date", "must be a valid date and time")
	} else if startErr == nil && end.Before(start) {
		errs.Add("end_sale_date", "must not be before the sale start date")
	}
	return errs
}

func parseFormTime(s string) (time.Time, error) {
	t, err := time.Parse(FormTimeLayout, s)
	if err != nil {
		// Date-only values are accepted too
		t, err = time.Parse("2006-01-02", s)
	}
	return t, err
}
