package appointment

import (
	"context"
	"time"

	domain "github.com/NavalhaStudio/barbearia-api/internal/domain/appointment"
	"github.com/NavalhaStudio/barbearia-api/internal/httperr"
	"github.com/NavalhaStudio/barbearia-api/internal/models"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute enumera os horários livres de um barbeiro em uma data.
// O cursor anda de interval em interval; pausa e exceções parciais
// pulam o cursor direto para o fim da janela bloqueada.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	weekday := int(in.Date.Weekday())

	sched, err := uc.repo.GetActiveSchedule(ctx, in.BarberID, weekday)
	if err != nil || !sched.Active {
		return []domain.TimeSlot{}, nil
	}

	day := domain.DayScheduleFrom(sched, in.Date)

	exceptions, err := uc.repo.ListActiveExceptions(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	var blocked []domain.Window
	for i := range exceptions {
		w, fullDay := domain.ExceptionWindow(&exceptions[i], in.Date)
		if fullDay {
			return []domain.TimeSlot{}, nil
		}
		blocked = append(blocked, w)
	}

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.BarberID,
		day.Start,
		day.End,
	)
	if err != nil {
		return nil, err
	}

	slots := []domain.TimeSlot{}

	cursor := day.Start
	for !domain.AddMinutes(cursor, service.DurationMin).After(day.End) {

		slotStart := cursor
		slotEnd := domain.AddMinutes(cursor, service.DurationMin)

		// pausa: pula direto para o fim dela
		if day.Break != nil && day.Break.Overlaps(slotStart, slotEnd) {
			cursor = day.Break.End
			continue
		}

		// exceções parciais bloqueiam como a pausa
		if w, hit := firstBlocked(blocked, slotStart, slotEnd); hit {
			cursor = w.End
			continue
		}

		if !hasConflict(appointments, slotStart, slotEnd) {
			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}

		cursor = domain.AddMinutes(cursor, day.Interval)
	}

	return slots, nil
}

func firstBlocked(blocked []domain.Window, start, end time.Time) (domain.Window, bool) {
	for _, w := range blocked {
		if w.Overlaps(start, end) {
			return w, true
		}
	}
	return domain.Window{}, false
}

// hasConflict varre a lista ordenada de agendamentos {pending, confirmed}.
func hasConflict(appointments []models.Appointment, start, end time.Time) bool {
	for i := range appointments {
		ap := &appointments[i]
		if !ap.StartTime.Before(end) {
			break
		}
		if domain.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true
		}
	}
	return false
}
