package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexibleDate_UnmarshalDateOnly(t *testing.T) {
	var f FlexibleDate
	if err := json.Unmarshal([]byte(`"2026-06-20"`), &f); err != nil {
		t.Fatalf("failed to parse date-only string: %v", err)
	}
	want := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	if !f.Time.Equal(want) {
		t.Errorf("expected %v, got %v", want, f.Time)
	}
}

func TestFlexibleDate_UnmarshalRFC3339(t *testing.T) {
	var f FlexibleDate
	if err := json.Unmarshal([]byte(`"2026-06-20T15:04:05Z"`), &f); err != nil {
		t.Fatalf("failed to parse RFC3339 string: %v", err)
	}
	if f.Hour() != 15 {
		t.Errorf("expected the time component to survive, got hour %d", f.Hour())
	}
}

func TestFlexibleDate_UnmarshalRejectsGarbage(t *testing.T) {
	var f FlexibleDate
	if err := json.Unmarshal([]byte(`"June the twentieth"`), &f); err == nil {
		t.Error("expected an error for an unparseable date")
	}
}

func TestDateOnly_MarshalFormat(t *testing.T) {
	d := DateOnly{Time: time.Date(2026, 6, 20, 15, 4, 5, 0, time.UTC)}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `"2026-06-20"` {
		t.Errorf("expected the date-only form, got %s", b)
	}
}
