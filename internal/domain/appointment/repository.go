package appointment

import (
	"context"
	"time"

	"github.com/NavalhaStudio/barbearia-api/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		barberID uint,
	) (*models.User, error)

	// -------- Schedule / Exception --------
	GetActiveSchedule(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.Schedule, error)

	ListActiveExceptions(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.ScheduleException, error)

	// -------- Appointment (create / conflict) --------

	// BookAppointment executa a checagem de conflito e o insert como
	// unidade atômica (transação + lock de linha). Perder a corrida
	// devolve erro de negócio time_conflict.
	BookAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability --------

	// ListAppointmentsForDay devolve os agendamentos que disputam agenda
	// no intervalo, ordenados por start_time ASC. A enumeração de slots
	// depende dessa ordem para abortar a varredura de conflitos cedo.
	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
