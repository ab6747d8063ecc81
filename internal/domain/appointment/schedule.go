package appointment

import (
	"time"

	"github.com/NavalhaStudio/barbearia-api/internal/httperr"
	"github.com/NavalhaStudio/barbearia-api/internal/models"
)

// Limites estruturais do expediente
const (
	MinIntervalMin = 15
	MaxIntervalMin = 120

	MaxServiceDurationMin = 240
)

// ===============================
// Janelas de tempo
// ===============================

type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Overlaps(start, end time.Time) bool {
	return Overlaps(start, end, w.Start, w.End)
}

// Contains: o instante cai dentro de [Start, End)?
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// DaySchedule é o expediente de um barbeiro ancorado em uma data concreta.
// A pausa é um valor opcional explícito, nunca um par de strings vazias.
type DaySchedule struct {
	Start    time.Time
	End      time.Time
	Interval int
	Break    *Window
}

// DayScheduleFrom materializa o template semanal na data consultada.
func DayScheduleFrom(s *models.Schedule, date time.Time) *DaySchedule {
	ds := &DaySchedule{
		Start:    ClockAt(date, s.StartTime),
		End:      ClockAt(date, s.EndTime),
		Interval: s.IntervalMin,
	}

	if s.BreakStart != "" && s.BreakEnd != "" {
		ds.Break = &Window{
			Start: ClockAt(date, s.BreakStart),
			End:   ClockAt(date, s.BreakEnd),
		}
	}

	return ds
}

// ExceptionWindow materializa a exceção na data.
// fullDay=true quando a exceção bloqueia o dia inteiro (janela irrelevante).
func ExceptionWindow(e *models.ScheduleException, date time.Time) (Window, bool) {
	if e.FullDay() {
		return Window{}, true
	}
	return Window{
		Start: ClockAt(date, e.StartTime),
		End:   ClockAt(date, e.EndTime),
	}, false
}

// ===============================
// Validação estrutural (write boundary)
// ===============================

func ValidateSchedule(s *models.Schedule) error {
	if s.Weekday < 0 || s.Weekday > 6 {
		return httperr.ErrBusiness("invalid_weekday")
	}

	if !ValidClock(s.StartTime) || !ValidClock(s.EndTime) {
		return httperr.ErrBusiness("invalid_time_format")
	}

	if !ClockBefore(s.StartTime, s.EndTime) {
		return httperr.ErrBusiness("invalid_time_range")
	}

	if s.IntervalMin < MinIntervalMin || s.IntervalMin > MaxIntervalMin {
		return httperr.ErrBusiness("invalid_interval")
	}

	hasBreakStart := s.BreakStart != ""
	hasBreakEnd := s.BreakEnd != ""
	if hasBreakStart != hasBreakEnd {
		// pausa pela metade não existe
		return httperr.ErrBusiness("invalid_break")
	}

	if hasBreakStart {
		if !ValidClock(s.BreakStart) || !ValidClock(s.BreakEnd) {
			return httperr.ErrBusiness("invalid_time_format")
		}
		if !ClockBefore(s.BreakStart, s.BreakEnd) {
			return httperr.ErrBusiness("invalid_break")
		}
		if ClockBefore(s.BreakStart, s.StartTime) || ClockBefore(s.EndTime, s.BreakEnd) {
			return httperr.ErrBusiness("invalid_break")
		}
	}

	return nil
}

func ValidateException(e *models.ScheduleException) error {
	hasStart := e.StartTime != ""
	hasEnd := e.EndTime != ""
	if hasStart != hasEnd {
		return httperr.ErrBusiness("invalid_exception_window")
	}

	if hasStart {
		if !ValidClock(e.StartTime) || !ValidClock(e.EndTime) {
			return httperr.ErrBusiness("invalid_time_format")
		}
		if !ClockBefore(e.StartTime, e.EndTime) {
			return httperr.ErrBusiness("invalid_exception_window")
		}
	}

	return nil
}

func ValidateService(svc *models.Service) error {
	if svc.Name == "" {
		return httperr.ErrBusiness("invalid_service_name")
	}
	if svc.Price <= 0 {
		return httperr.ErrBusiness("invalid_price")
	}
	if svc.DurationMin <= 0 || svc.DurationMin > MaxServiceDurationMin {
		return httperr.ErrBusiness("invalid_duration")
	}
	return nil
}
