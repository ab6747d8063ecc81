package appointment

import (
	"testing"
	"time"
)

func at(h, m int) time.Time {
	return time.Date(2026, 1, 5, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{"identical", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"partial", at(10, 0), at(11, 0), at(10, 30), at(11, 30), true},
		{"contained", at(10, 0), at(12, 0), at(10, 30), at(11, 0), true},
		{"touching end-start", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"touching start-end", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjoint", at(8, 0), at(9, 0), at(10, 0), at(11, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}

			// simetria: trocar os intervalos não muda o resultado
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("Overlaps() swapped = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddMinutes(t *testing.T) {
	got := AddMinutes(at(16, 45), 30)
	want := at(17, 15)
	if !got.Equal(want) {
		t.Errorf("AddMinutes() = %v, want %v", got, want)
	}
}

func TestClockAt(t *testing.T) {
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	got := ClockAt(date, "09:30")
	want := time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ClockAt() = %v, want %v", got, want)
	}
}

func TestValidClock(t *testing.T) {
	if !ValidClock("09:00") {
		t.Error("ValidClock(09:00) = false")
	}
	if ValidClock("25:00") {
		t.Error("ValidClock(25:00) = true")
	}
	if ValidClock("") {
		t.Error("ValidClock(\"\") = true")
	}
}

func TestClockBefore(t *testing.T) {
	if !ClockBefore("09:00", "17:00") {
		t.Error("ClockBefore(09:00, 17:00) = false")
	}
	if ClockBefore("17:00", "09:00") {
		t.Error("ClockBefore(17:00, 09:00) = true")
	}
	if ClockBefore("09:00", "09:00") {
		t.Error("ClockBefore(09:00, 09:00) = true")
	}
}
