package mail_test

import (
	"testing"

	"clubdesk/internal/domain/mail"
)

func TestConfigFormValidate(t *testing.T) {
	valid := mail.ConfigForm{
		Name:      "Club SMTP",
		Host:      "smtp.example.org",
		Port:      587,
		FromEmail: "noreply@example.org",
	}

	tests := []struct {
		name      string
		mutate    func(f *mail.ConfigForm)
		wantField string
	}{
		{"valid", func(f *mail.ConfigForm) {}, ""},
		{"emptyName", func(f *mail.ConfigForm) { f.Name = "" }, "name"},
		{"emptyHost", func(f *mail.ConfigForm) { f.Host = "" }, "host"},
		{"zeroPort", func(f *mail.ConfigForm) { f.Port = 0 }, "port"},
		{"portTooHigh", func(f *mail.ConfigForm) { f.Port = 70000 }, "port"},
		{"emptyFrom", func(f *mail.ConfigForm) { f.FromEmail = "" }, "from_email"},
		{"badFrom", func(f *mail.ConfigForm) { f.FromEmail = "not-an-email" }, "from_email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			errs := f.Validate()
			if tt.wantField == "" {
				if !errs.Empty() {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if !errs.Has(tt.wantField) {
				t.Fatalf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestCampaignFormValidate(t *testing.T) {
	tests := []struct {
		name      string
		form      mail.CampaignForm
		wantField string
	}{
		{"validAll", mail.CampaignForm{Subject: "AGM", Body: "# Notice", Recipients: mail.RecipientsAll}, ""},
		{"validSelected", mail.CampaignForm{Subject: "AGM", Body: "x", Recipients: mail.RecipientsSelected, MemberIDs: []string{"m1"}}, ""},
		{"emptySubject", mail.CampaignForm{Body: "x", Recipients: mail.RecipientsAll}, "subject"},
		{"emptyBody", mail.CampaignForm{Subject: "AGM", Recipients: mail.RecipientsAll}, "body"},
		{"selectedWithoutMembers", mail.CampaignForm{Subject: "AGM", Body: "x", Recipients: mail.RecipientsSelected}, "member_ids"},
		{"badRecipients", mail.CampaignForm{Subject: "AGM", Body: "x", Recipients: "everyone"}, "recipients"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			if tt.wantField == "" {
				if !errs.Empty() {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if !errs.Has(tt.wantField) {
				t.Fatalf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestCampaignIsDone(t *testing.T) {
	if (&mail.Campaign{Status: mail.StatusQueued}).IsDone() {
		t.Error("queued campaign should not be done")
	}
	if !(&mail.Campaign{Status: mail.StatusSent}).IsDone() {
		t.Error("sent campaign should be done")
	}
	if !(&mail.Campaign{Status: mail.StatusFailed}).IsDone() {
		t.Error("failed campaign should be done")
	}
}
