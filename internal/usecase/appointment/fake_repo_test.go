package appointment

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/NavalhaStudio/barbearia-api/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo cobre o contrato do domínio com dados em memória.
type fakeRepo struct {
	service      *models.Service
	barber       *models.User
	schedule     *models.Schedule
	exceptions   []models.ScheduleException
	appointments []models.Appointment

	appointment *models.Appointment

	bookErr error
	booked  []*models.Appointment
	updated *models.Appointment
}

func (f *fakeRepo) GetService(ctx context.Context, serviceID uint) (*models.Service, error) {
	if f.service == nil {
		return nil, errNotFound
	}
	return f.service, nil
}

func (f *fakeRepo) GetBarber(ctx context.Context, barberID uint) (*models.User, error) {
	if f.barber == nil {
		return nil, errNotFound
	}
	return f.barber, nil
}

func (f *fakeRepo) GetActiveSchedule(ctx context.Context, barberID uint, weekday int) (*models.Schedule, error) {
	if f.schedule == nil || f.schedule.Weekday != weekday {
		return nil, errNotFound
	}
	return f.schedule, nil
}

func (f *fakeRepo) ListActiveExceptions(ctx context.Context, barberID uint, date time.Time) ([]models.ScheduleException, error) {
	return f.exceptions, nil
}

func (f *fakeRepo) BookAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.bookErr != nil {
		return f.bookErr
	}
	ap.ID = uint(len(f.booked) + 1)
	f.booked = append(f.booked, ap)
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	if f.appointment == nil {
		return nil, errNotFound
	}
	return f.appointment, nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.updated = ap
	return nil
}

func (f *fakeRepo) ListAppointmentsForDay(ctx context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	// o contrato exige ordenação por start_time ASC
	out := append([]models.Appointment(nil), f.appointments...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	return f.appointments, nil
}

// fakeLocker simula o lock distribuído.
type fakeLocker struct {
	denied  bool
	lockErr error

	locked   []string
	unlocked []string
}

func (f *fakeLocker) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if f.lockErr != nil {
		return false, f.lockErr
	}
	if f.denied {
		return false, nil
	}
	f.locked = append(f.locked, key)
	return true, nil
}

func (f *fakeLocker) Unlock(ctx context.Context, key string) error {
	f.unlocked = append(f.unlocked, key)
	return nil
}
