package service

import (
	"testing"
	"time"

	"bed_forecast/internal/models"
)

func TestDateFeatureBuilder_SundayAcrossWeek(t *testing.T) {
	b := NewDateFeatureBuilder(DefaultRestDay)
	start := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC) // Wednesday

	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		f := b.Build(d)
		wantHoliday := d.Format(models.DateLayout) == "2024-03-10" // the only Sunday
		if f.IsHoliday != wantHoliday {
			t.Fatalf("%s (%s): is_holiday=%v want %v", d.Format(models.DateLayout), d.Weekday(), f.IsHoliday, wantHoliday)
		}
	}
}

func TestDateFeatureBuilder_RestDayIndexIsSix(t *testing.T) {
	if got := models.MondayIndex(DefaultRestDay); got != 6 {
		t.Fatalf("rest day index=%d, want 6 (Monday=0..Sunday=6)", got)
	}
	if got := models.MondayIndex(time.Monday); got != 0 {
		t.Fatalf("Monday index=%d", got)
	}
}

func TestDateFeatureBuilder_StripsTimeOfDay(t *testing.T) {
	b := NewDateFeatureBuilder(time.Sunday)
	in := time.Date(2024, 3, 10, 22, 45, 0, 0, time.UTC)
	f := b.Build(in)
	if !f.TargetDate.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("target date=%v", f.TargetDate)
	}
	if !f.IsHoliday {
		t.Fatalf("expected Sunday to be a holiday")
	}
}

func TestDateFeatureBuilder_OtherRestDay(t *testing.T) {
	b := NewDateFeatureBuilder(time.Friday)
	if !b.Build(time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)).IsHoliday {
		t.Fatalf("Friday should be the rest day")
	}
	if b.Build(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)).IsHoliday {
		t.Fatalf("Sunday should not be the rest day")
	}
}
