package mail

import (
	"strings"
	"time"

	"clubdesk/internal/application/fielderr"
)

// Recipient modes for a campaign.
const (
	RecipientsAll      = "all"
	RecipientsActive   = "active"
	RecipientsSelected = "selected"
)

// Campaign statuses as the backend reports them.
const (
	StatusDraft   = "draft"
	StatusQueued  = "queued"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Config is an outgoing mail configuration record.
type Config struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name"`
	UseTLS    bool   `json:"use_tls"`
	IsDefault bool   `json:"is_default"`
}

// Campaign is a bulk email run. Body holds markdown; the backend
// renders and delivers it.
type Campaign struct {
	ID         string     `json:"id"`
	Subject    string     `json:"subject"`
	Body       string     `json:"body"`
	Recipients string     `json:"recipients"`
	MemberIDs  []string   `json:"member_ids"`
	ConfigID   string     `json:"config_id"`
	Status     string     `json:"status"`
	SentCount  int        `json:"sent_count"`
	TotalCount int        `json:"total_count"`
	CreatedAt  time.Time  `json:"created_at"`
	SentAt     *time.Time `json:"sent_at"`
}

// IsDone reports whether the campaign has finished, successfully or not.
func (c *Campaign) IsDone() bool {
	return c.Status == StatusSent || c.Status == StatusFailed
}

// ConfigForm carries a submitted mail configuration.
type ConfigForm struct {
	Name      string `json:"name"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name"`
	UseTLS    bool   `json:"use_tls"`
	IsDefault bool   `json:"is_default"`
}

// Validate runs the local mail configuration rules.
// POST: returns per-field messages; empty when the form may be submitted
func (f *ConfigForm) Validate() fielderr.Errors {
	errs := fielderr.New()
	if strings.TrimSpace(f.Name) == "" {
		errs.Add("name", "required")
	}
	if strings.TrimSpace(f.Host) == "" {
		errs.Add("host", "required")
	}
	if f.Port <= 0 || f.Port > 65535 {
		errs.Add("port", "must be between 1 and 65535")
	}
	if strings.TrimSpace(f.FromEmail) == "" {
		errs.Add("from_email", "required")
	} else if !strings.Contains(f.FromEmail, "@") {
		errs.Add("from_email", "must be a valid email address")
	}
	return errs
}

// CampaignForm carries a submitted bulk email.
type CampaignForm struct {
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	Recipients string   `json:"recipients"`
	MemberIDs  []string `json:"member_ids"`
	ConfigID   string   `json:"config_id"`
}

// Validate runs the local campaign rules.
// POST: returns per-field messages; empty when the form may be submitted
func (f *CampaignForm) Validate() fielderr.Errors {
	errs := fielderr.New()
	if strings.TrimSpace(f.Subject) == "" {
		errs.Add("subject", "required")
	}
	if strings.TrimSpace(f.Body) == "" {
		errs.Add("body", "required")
	}
	switch f.Recipients {
	case RecipientsAll, RecipientsActive:
	case RecipientsSelected:
		if len(f.MemberIDs) == 0 {
			errs.Add("member_ids", "select at least one recipient")
		}
	default:
		errs.Add("recipients", "must be all, active or selected")
	}
	return errs
}
