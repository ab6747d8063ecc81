package appointment

import (
	"context"
	"time"

	"github.com/NavalhaStudio/barbearia-api/internal/audit"
	domain "github.com/NavalhaStudio/barbearia-api/internal/domain/appointment"
	"github.com/NavalhaStudio/barbearia-api/internal/httperr"
	"github.com/NavalhaStudio/barbearia-api/internal/lock"
	"github.com/NavalhaStudio/barbearia-api/internal/models"
	"github.com/NavalhaStudio/barbearia-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	// ClientID vem sempre da identidade autenticada, nunca do body.
	ClientID  uint
	BarberID  uint
	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	locker lock.Locker
	audit  *audit.Dispatcher
	now    func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	locker lock.Locker,
	auditDisp *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		locker: locker,
		audit:  auditDisp,
		now:    timezone.Now,
	}
}

// Quanto tempo o lock de reserva pode viver se o processo morrer no meio.
const bookingLockTTL = 10 * time.Second

// ======================================================
// EXECUTE
// ======================================================

// Execute valida a reserva gate a gate (fail-fast) e só então insere.
// A ordem importa: checagens baratas e fundamentais vêm antes da
// varredura de conflitos.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.IsBarber() || !barber.Active {
		return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
	}

	// 1. data no passado
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startDate := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	if startDate.Before(today) {
		return nil, httperr.ErrBusiness(httperr.CodePastDate)
	}

	// 2. expediente ativo no dia da semana
	sched, err := uc.repo.GetActiveSchedule(ctx, in.BarberID, int(start.Weekday()))
	if err != nil || !sched.Active {
		return nil, httperr.ErrBusiness(httperr.CodeNoSchedule)
	}

	day := domain.DayScheduleFrom(sched, start)

	// 3. exceção de dia inteiro
	exceptions, err := uc.repo.ListActiveExceptions(ctx, in.BarberID, start)
	if err != nil {
		return nil, err
	}

	var blocked []domain.Window
	for i := range exceptions {
		w, fullDay := domain.ExceptionWindow(&exceptions[i], start)
		if fullDay {
			return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
		}
		blocked = append(blocked, w)
	}

	// 4. início dentro do expediente
	if start.Before(day.Start) || !start.Before(day.End) {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideHours)
	}

	// 5. início dentro da pausa
	if day.Break != nil && day.Break.Contains(start) {
		return nil, httperr.ErrBusiness(httperr.CodeBreakTime)
	}

	// 6. fim derivado do serviço
	end := domain.AddMinutes(start, service.DurationMin)

	// 7. fim dentro do expediente
	if end.After(day.End) {
		return nil, httperr.ErrBusiness(httperr.CodeExceedsHours)
	}

	// o atendimento não pode atravessar a pausa nem uma exceção parcial
	if day.Break != nil && day.Break.Overlaps(start, end) {
		return nil, httperr.ErrBusiness(httperr.CodeBreakTime)
	}
	if _, hit := firstBlocked(blocked, start, end); hit {
		return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
	}

	// 8. conflito com agendamentos existentes, sob exclusão mútua.
	// O lock distribuído cobre o caso multi-instância; a transação com
	// lock de linha no repositório cobre o caso single-instância.
	if uc.locker != nil {
		key := lock.BookingKey(in.BarberID, start)

		ok, lockErr := uc.locker.Lock(ctx, key, bookingLockTTL)
		if lockErr != nil {
			return nil, lockErr
		}
		if !ok {
			// outra reserva em andamento para o mesmo barbeiro/dia
			return nil, httperr.ErrBusiness(httperr.CodeTimeConflict)
		}
		defer func() { _ = uc.locker.Unlock(ctx, key) }()
	}

	ap := &models.Appointment{
		ClientID:  in.ClientID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := uc.repo.BookAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.ClientID,
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
