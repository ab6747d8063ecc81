package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/NavalhaStudio/barbearia-api/internal/domain/appointment"
	"github.com/NavalhaStudio/barbearia-api/internal/httperr"
	"github.com/NavalhaStudio/barbearia-api/internal/models"
)

// segunda-feira
var monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func mondaySchedule() *models.Schedule {
	return &models.Schedule{
		BarberID:    1,
		Weekday:     1, // segunda
		StartTime:   "09:00",
		EndTime:     "17:00",
		IntervalMin: 30,
		BreakStart:  "12:00",
		BreakEnd:    "13:00",
		Active:      true,
	}
}

func haircut() *models.Service {
	return &models.Service{ID: 1, Name: "Corte", Price: 50, DurationMin: 30, Active: true}
}

func availabilityInput() domain.AvailabilityInput {
	return domain.AvailabilityInput{BarberID: 1, ServiceID: 1, Date: monday}
}

func slotStarts(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start)
	}
	return out
}

func assertSlots(t *testing.T, got []domain.TimeSlot, want []string) {
	t.Helper()

	starts := slotStarts(got)
	if len(starts) != len(want) {
		t.Fatalf("slots = %v, want %v", starts, want)
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Fatalf("slots = %v, want %v", starts, want)
		}
	}
}

func TestGetAvailability_FullDayNoAppointments(t *testing.T) {
	repo := &fakeRepo{service: haircut(), schedule: mondaySchedule()}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// 09:00–11:30 e 13:00–16:30; a pausa 12:00–13:00 some
	assertSlots(t, slots, []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	})
}

func TestGetAvailability_ExistingAppointmentBlocksSlot(t *testing.T) {
	repo := &fakeRepo{
		service:  haircut(),
		schedule: mondaySchedule(),
		appointments: []models.Appointment{
			{
				BarberID:  1,
				StartTime: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC),
				Status:    string(domain.StatusConfirmed),
			},
		},
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	starts := slotStarts(slots)
	for _, s := range starts {
		if s == "10:00" {
			t.Error("10:00 está ocupado e não deveria aparecer")
		}
	}

	has := func(want string) bool {
		for _, s := range starts {
			if s == want {
				return true
			}
		}
		return false
	}
	if !has("09:30") || !has("10:30") {
		t.Errorf("vizinhos do horário ocupado deveriam aparecer: %v", starts)
	}
}

// Dois agendamentos entregues fora de ordem ao repositório: a varredura
// de conflitos só funciona sobre a lista ordenada, então os dois horários
// precisam sumir dos slots.
func TestGetAvailability_UnsortedAppointmentsBothBlock(t *testing.T) {
	repo := &fakeRepo{
		service:  haircut(),
		schedule: mondaySchedule(),
		appointments: []models.Appointment{
			{
				BarberID:  1,
				StartTime: time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC),
				Status:    string(domain.StatusConfirmed),
			},
			{
				BarberID:  1,
				StartTime: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC),
				Status:    string(domain.StatusPending),
			},
		},
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, s := range slotStarts(slots) {
		if s == "10:00" || s == "14:00" {
			t.Errorf("%s está ocupado e não deveria aparecer", s)
		}
	}
}

func TestGetAvailability_NoScheduleMeansNoSlots(t *testing.T) {
	repo := &fakeRepo{service: haircut()}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("sem expediente, slots = %v", slotStarts(slots))
	}
}

func TestGetAvailability_InactiveScheduleMeansNoSlots(t *testing.T) {
	sched := mondaySchedule()
	sched.Active = false

	repo := &fakeRepo{service: haircut(), schedule: sched}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expediente inativo, slots = %v", slotStarts(slots))
	}
}

func TestGetAvailability_FullDayException(t *testing.T) {
	repo := &fakeRepo{
		service:  haircut(),
		schedule: mondaySchedule(),
		exceptions: []models.ScheduleException{
			{BarberID: 1, Date: monday, Active: true}, // dia inteiro
		},
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("dia bloqueado, slots = %v", slotStarts(slots))
	}
}

// Exceções parciais são subtraídas da enumeração, igual à pausa.
// (No validador de criação a mesma janela também bloqueia: os dois
// caminhos foram unificados de propósito.)
func TestGetAvailability_PartialExceptionSubtracted(t *testing.T) {
	repo := &fakeRepo{
		service:  haircut(),
		schedule: mondaySchedule(),
		exceptions: []models.ScheduleException{
			{BarberID: 1, Date: monday, StartTime: "14:00", EndTime: "16:00", Active: true},
		},
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	assertSlots(t, slots, []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"13:00", "13:30",
		"16:00", "16:30",
	})
}

func TestGetAvailability_DurationLongerThanSpan(t *testing.T) {
	sched := mondaySchedule()
	sched.StartTime = "09:00"
	sched.EndTime = "12:00"
	sched.BreakStart, sched.BreakEnd = "", ""

	svc := haircut()
	svc.DurationMin = 240

	repo := &fakeRepo{service: svc, schedule: sched}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("serviço não cabe no expediente, slots = %v", slotStarts(slots))
	}
}

func TestGetAvailability_Idempotent(t *testing.T) {
	repo := &fakeRepo{service: haircut(), schedule: mondaySchedule()}
	uc := NewGetAvailability(repo)

	first, err := uc.Execute(context.Background(), availabilityInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	second, err := uc.Execute(context.Background(), availabilityInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	assertSlots(t, second, slotStarts(first))
}

func TestGetAvailability_UnknownService(t *testing.T) {
	repo := &fakeRepo{schedule: mondaySchedule()}
	uc := NewGetAvailability(repo)

	_, err := uc.Execute(context.Background(), availabilityInput())
	if !httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
		t.Fatalf("esperava service_not_found, veio %v", err)
	}
}

// Propriedade: nenhum slot começa antes do expediente nem termina depois.
func TestGetAvailability_SlotsWithinWorkingHours(t *testing.T) {
	repo := &fakeRepo{service: haircut(), schedule: mondaySchedule()}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, s := range slots {
		if s.Start < "09:00" {
			t.Errorf("slot %s antes do expediente", s.Start)
		}
		if s.End > "17:00" {
			t.Errorf("slot termina %s depois do expediente", s.End)
		}
	}
}
