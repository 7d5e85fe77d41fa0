package facility

import (
	"strings"

	"clubdesk/internal/application/fielderr"
	"clubdesk/internal/domain/billing"
)

// Facility statuses as the backend reports them.
const (
	StatusAvailable   = "available"
	StatusMaintenance = "maintenance"
	StatusClosed      = "closed"
)

// Statuses lists the valid facility statuses in display order.
var Statuses = []string{StatusAvailable, StatusMaintenance, StatusClosed}

// Facility is a bookable club facility.
type Facility struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	HourlyRate  string `json:"hourly_rate"`
	Status      string `json:"status"`
	Image       string `json:"image"`
}

// IsAvailable reports whether the facility can currently be booked.
func (f *Facility) IsAvailable() bool {
	return f.Status == StatusAvailable
}

// Restaurant is a club restaurant with its menu items.
type Restaurant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsOpen      bool   `json:"is_open"`
	Items       []Item `json:"items"`
}

// Item is a restaurant menu item. Price is a decimal string.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	IsAvailable bool   `json:"is_available"`
}

// Form carries a submitted facility.
type Form struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	HourlyRate  string `json:"hourly_rate"`
	Status      string `json:"status"`
}

// Validate runs the local facility rules.
// POST: returns per-field messages; empty when the form may be submitted
func (f *Form) Validate() fielderr.Errors {
	errs := fielderr.New()
	if strings.TrimSpace(f.Name) == "" {
		errs.Add("name", "required")
	}
	if f.Capacity < 0 {
		errs.Add("capacity", "cannot be negative")
	}
	if f.HourlyRate != "" {
		if err := billing.ValidateAmount(f.HourlyRate); err != nil {
			errs.Add("hourly_rate", "must be a positive decimal amount")
		}
	}
	switch f.Status {
	case "", StatusAvailable, StatusMaintenance, StatusClosed:
	default:
		errs.Add("status", "must be available, maintenance or closed")
	}
	return errs
}

// ItemForm carries a submitted restaurant menu item.
type ItemForm struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

// Validate runs the local menu item rules.
func (f *ItemForm) Validate() fielderr.Errors {
	errs := fielderr.New()
	if strings.TrimSpace(f.Name) == "" {
		errs.Add("name", "required")
	}
	if f.Price == "" {
		errs.Add("price", "required")
	} else if err := billing.ValidateAmount(f.Price); err != nil {
		errs.Add("price", "must be a positive decimal amount")
	}
	return errs
}
