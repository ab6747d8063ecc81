package appointment

import "time"

// ===============================
// Aritmética de intervalos
// ===============================

// Overlaps usa semântica meio-aberta [start, end):
// extremos encostados não contam como conflito.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// AddMinutes soma duração em minutos (sempre dentro do mesmo dia:
// expedientes nunca cruzam meia-noite).
func AddMinutes(t time.Time, min int) time.Time {
	return t.Add(time.Duration(min) * time.Minute)
}

// ClockAt ancora um horário "HH:MM" na data informada.
func ClockAt(date time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}

// ValidClock verifica o formato "HH:MM".
func ValidClock(hm string) bool {
	_, err := time.Parse("15:04", hm)
	return err == nil
}

// ClockBefore compara dois horários "HH:MM".
func ClockBefore(a, b string) bool {
	ta, _ := time.Parse("15:04", a)
	tb, _ := time.Parse("15:04", b)
	return ta.Before(tb)
}
