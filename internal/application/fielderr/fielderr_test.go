package fielderr_test

import (
	"reflect"
	"testing"

	"clubdesk/internal/application/fielderr"
)

// TestErrors_AddAndLookup tests basic add/has/first behavior.
func TestErrors_AddAndLookup(t *testing.T) {
	e := fielderr.New()
	e.Add("name", "required")
	e.Add("name", "too long")
	e.Add("email", "invalid")

	if !e.Has("name") {
		t.Error("Has(name) = false, want true")
	}
	if e.Has("code") {
		t.Error("Has(code) = true, want false")
	}
	if got := e.First("name"); got != "required" {
		t.Errorf("First(name) = %q, want required", got)
	}
	if got := e.First("missing"); got != "" {
		t.Errorf("First(missing) = %q, want empty", got)
	}
}

// TestErrors_NonFieldBucket tests the standalone-notice bucket.
func TestErrors_NonFieldBucket(t *testing.T) {
	e := fielderr.New()
	e.AddNonField("promo code expired")

	if got := e.NonField(); len(got) != 1 || got[0] != "promo code expired" {
		t.Errorf("NonField() = %v", got)
	}
	if got := e.Fields(); len(got) != 0 {
		t.Errorf("Fields() = %v, want empty (non-field excluded)", got)
	}
}

// TestErrors_Empty tests emptiness detection.
func TestErrors_Empty(t *testing.T) {
	e := fielderr.New()
	if !e.Empty() {
		t.Error("new Errors should be empty")
	}
	e.Add("amount", "must be a decimal")
	if e.Empty() {
		t.Error("Errors with a message should not be empty")
	}
}

// TestErrors_Merge tests merging a server-side error map onto local errors.
func TestErrors_Merge(t *testing.T) {
	e := fielderr.New()
	e.Add("name", "required")
	e.Merge(map[string][]string{
		"name":  {"already taken"},
		"email": {"invalid"},
	})

	if got := e["name"]; !reflect.DeepEqual(got, []string{"required", "already taken"}) {
		t.Errorf("name messages = %v", got)
	}
	if !e.Has("email") {
		t.Error("merged field email missing")
	}
}

// TestErrors_FieldsSorted tests deterministic field ordering.
func TestErrors_FieldsSorted(t *testing.T) {
	e := fielderr.New()
	e.Add("zebra", "x")
	e.Add("alpha", "y")
	e.AddNonField("z")

	if got := e.Fields(); !reflect.DeepEqual(got, []string{"alpha", "zebra"}) {
		t.Errorf("Fields() = %v, want [alpha zebra]", got)
	}
}
