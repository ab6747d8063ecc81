package appointment

import (
	"context"
	"os"
	"testing"
	"time"

	domain "github.com/NavalhaStudio/barbearia-api/internal/domain/appointment"
	"github.com/NavalhaStudio/barbearia-api/internal/httperr"
	"github.com/NavalhaStudio/barbearia-api/internal/models"
	"github.com/NavalhaStudio/barbearia-api/internal/timezone"
)

func TestMain(m *testing.M) {
	// fuso fixo para que "data + hora" vire sempre o mesmo instante
	timezone.Configure("UTC")
	os.Exit(m.Run())
}

func activeBarber() *models.User {
	return &models.User{ID: 1, Name: "João", Role: models.RoleBarber, Active: true}
}

func bookingRepo() *fakeRepo {
	return &fakeRepo{
		service:  haircut(),
		barber:   activeBarber(),
		schedule: mondaySchedule(),
	}
}

func createUC(repo *fakeRepo, locker *fakeLocker) *CreateAppointment {
	var uc *CreateAppointment
	if locker != nil {
		uc = NewCreateAppointment(repo, locker, nil)
	} else {
		uc = NewCreateAppointment(repo, nil, nil)
	}
	uc.now = func() time.Time {
		return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	return uc
}

func mondayBooking(hhmm string) CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientID:  7,
		BarberID:  1,
		ServiceID: 1,
		Date:      "2026-01-05",
		Time:      hhmm,
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := bookingRepo()
	locker := &fakeLocker{}
	uc := createUC(repo, locker)

	ap, err := uc.Execute(context.Background(), mondayBooking("10:00"))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if ap.ClientID != 7 || ap.BarberID != 1 || ap.ServiceID != 1 {
		t.Errorf("identidades erradas: %+v", ap)
	}
	if ap.Status != string(domain.StatusPending) {
		t.Errorf("status = %s, want pending", ap.Status)
	}

	wantEnd := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)
	if !ap.EndTime.Equal(wantEnd) {
		t.Errorf("EndTime = %v, want %v (início + duração do serviço)", ap.EndTime, wantEnd)
	}

	if len(repo.booked) != 1 {
		t.Fatalf("booked = %d, want 1", len(repo.booked))
	}

	// lock por barbeiro/dia, adquirido e liberado
	if len(locker.locked) != 1 || locker.locked[0] != "booking:1:2026-01-05" {
		t.Errorf("locked = %v", locker.locked)
	}
	if len(locker.unlocked) != 1 {
		t.Errorf("unlocked = %v", locker.unlocked)
	}
}

func TestCreateAppointment_InvalidDateOrTime(t *testing.T) {
	uc := createUC(bookingRepo(), nil)

	in := mondayBooking("10:00")
	in.Time = "25:99"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeInvalidDateOrTime) {
		t.Fatalf("esperava invalid_date_or_time, veio %v", err)
	}
}

func TestCreateAppointment_PastDate(t *testing.T) {
	uc := createUC(bookingRepo(), nil)

	in := mondayBooking("10:00")
	in.Date = "2025-12-29" // segunda, mas no passado

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodePastDate) {
		t.Fatalf("esperava past_date, veio %v", err)
	}
}

func TestCreateAppointment_NoSchedule(t *testing.T) {
	uc := createUC(bookingRepo(), nil)

	in := mondayBooking("10:00")
	in.Date = "2026-01-06" // terça, sem expediente cadastrado

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeNoSchedule) {
		t.Fatalf("esperava no_schedule, veio %v", err)
	}
}

func TestCreateAppointment_OutsideWorkingHours(t *testing.T) {
	uc := createUC(bookingRepo(), nil)

	for _, hhmm := range []string{"08:00", "17:00", "18:30"} {
		_, err := uc.Execute(context.Background(), mondayBooking(hhmm))
		if !httperr.IsBusiness(err, httperr.CodeOutsideHours) {
			t.Errorf("%s: esperava outside_working_hours, veio %v", hhmm, err)
		}
	}
}

func TestCreateAppointment_BreakTime(t *testing.T) {
	uc := createUC(bookingRepo(), nil)

	// começa dentro da pausa
	_, err := uc.Execute(context.Background(), mondayBooking("12:00"))
	if !httperr.IsBusiness(err, httperr.CodeBreakTime) {
		t.Fatalf("12:00: esperava break_time, veio %v", err)
	}

	// começa antes mas atravessa a pausa
	_, err = uc.Execute(context.Background(), mondayBooking("11:45"))
	if !httperr.IsBusiness(err, httperr.CodeBreakTime) {
		t.Fatalf("11:45: esperava break_time, veio %v", err)
	}
}

func TestCreateAppointment_ExceedsWorkingHours(t *testing.T) {
	uc := createUC(bookingRepo(), nil)

	// 16:45 + 30min = 17:15, passa do fim do expediente
	_, err := uc.Execute(context.Background(), mondayBooking("16:45"))
	if !httperr.IsBusiness(err, httperr.CodeExceedsHours) {
		t.Fatalf("esperava exceeds_working_hours, veio %v", err)
	}

	// 16:30 + 30min = 17:00 em ponto, ainda cabe
	repo := bookingRepo()
	ucOK := createUC(repo, nil)
	if _, err := ucOK.Execute(context.Background(), mondayBooking("16:30")); err != nil {
		t.Fatalf("16:30 deveria caber: %v", err)
	}
}

func TestCreateAppointment_FullDayException(t *testing.T) {
	repo := bookingRepo()
	repo.exceptions = []models.ScheduleException{
		{BarberID: 1, Date: monday, Active: true},
	}
	uc := createUC(repo, nil)

	_, err := uc.Execute(context.Background(), mondayBooking("10:00"))
	if !httperr.IsBusiness(err, httperr.CodeBarberUnavailable) {
		t.Fatalf("esperava barber_unavailable, veio %v", err)
	}
}

func TestCreateAppointment_PartialException(t *testing.T) {
	repo := bookingRepo()
	repo.exceptions = []models.ScheduleException{
		{BarberID: 1, Date: monday, StartTime: "14:00", EndTime: "16:00", Active: true},
	}
	uc := createUC(repo, nil)

	_, err := uc.Execute(context.Background(), mondayBooking("14:30"))
	if !httperr.IsBusiness(err, httperr.CodeBarberUnavailable) {
		t.Fatalf("esperava barber_unavailable, veio %v", err)
	}

	// fora da janela bloqueada segue livre
	if _, err := uc.Execute(context.Background(), mondayBooking("10:00")); err != nil {
		t.Fatalf("10:00 deveria passar: %v", err)
	}
}

func TestCreateAppointment_UnknownService(t *testing.T) {
	repo := bookingRepo()
	repo.service = nil
	uc := createUC(repo, nil)

	_, err := uc.Execute(context.Background(), mondayBooking("10:00"))
	if !httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
		t.Fatalf("esperava service_not_found, veio %v", err)
	}
}

func TestCreateAppointment_UnknownBarber(t *testing.T) {
	repo := bookingRepo()
	repo.barber = nil
	uc := createUC(repo, nil)

	_, err := uc.Execute(context.Background(), mondayBooking("10:00"))
	if !httperr.IsBusiness(err, httperr.CodeBarberNotFound) {
		t.Fatalf("esperava barber_not_found, veio %v", err)
	}
}

func TestCreateAppointment_ClientAsBarberRejected(t *testing.T) {
	repo := bookingRepo()
	repo.barber = &models.User{ID: 1, Role: models.RoleClient, Active: true}
	uc := createUC(repo, nil)

	_, err := uc.Execute(context.Background(), mondayBooking("10:00"))
	if !httperr.IsBusiness(err, httperr.CodeBarberNotFound) {
		t.Fatalf("esperava barber_not_found, veio %v", err)
	}
}

func TestCreateAppointment_RepositoryConflict(t *testing.T) {
	repo := bookingRepo()
	repo.bookErr = httperr.ErrBusiness(httperr.CodeTimeConflict)
	uc := createUC(repo, nil)

	_, err := uc.Execute(context.Background(), mondayBooking("10:00"))
	if !httperr.IsBusiness(err, httperr.CodeTimeConflict) {
		t.Fatalf("esperava time_conflict, veio %v", err)
	}
}

func TestCreateAppointment_LockDenied(t *testing.T) {
	repo := bookingRepo()
	locker := &fakeLocker{denied: true}
	uc := createUC(repo, locker)

	_, err := uc.Execute(context.Background(), mondayBooking("10:00"))
	if !httperr.IsBusiness(err, httperr.CodeTimeConflict) {
		t.Fatalf("esperava time_conflict, veio %v", err)
	}

	// nada foi gravado nem liberado
	if len(repo.booked) != 0 {
		t.Error("reserva não deveria ter sido gravada")
	}
	if len(locker.unlocked) != 0 {
		t.Error("lock negado não é liberado por quem não o tem")
	}
}
