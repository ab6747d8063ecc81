package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/NavalhaStudio/barbearia-api/internal/middleware"
	"github.com/NavalhaStudio/barbearia-api/internal/models"
)

func agendaContext(t *testing.T, role string, userID uint, query string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/api/appointments"+query, nil)
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextUserRole, role)

	return c, w
}

func TestResolveBarberID_ClientForbidden(t *testing.T) {
	h := &AppointmentHandler{}

	// cliente apontando para a agenda de outro barbeiro
	c, w := agendaContext(t, models.RoleClient, 7, "?barber_id=42")

	_, ok := h.resolveBarberID(c)
	if ok {
		t.Fatal("cliente não pode resolver agenda de barbeiro")
	}
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestResolveBarberID_BarberIgnoresQuery(t *testing.T) {
	h := &AppointmentHandler{}

	// barbeiro tentando espiar a agenda de outro via query
	c, _ := agendaContext(t, models.RoleBarber, 3, "?barber_id=42")

	barberID, ok := h.resolveBarberID(c)
	if !ok {
		t.Fatal("barbeiro deveria resolver a própria agenda")
	}
	if barberID != 3 {
		t.Errorf("barberID = %d, want 3 (sempre a própria agenda)", barberID)
	}
}

func TestResolveBarberID_AdminPicksViaQuery(t *testing.T) {
	h := &AppointmentHandler{}

	c, _ := agendaContext(t, models.RoleAdmin, 1, "?barber_id=42")

	barberID, ok := h.resolveBarberID(c)
	if !ok {
		t.Fatal("admin deveria resolver qualquer agenda")
	}
	if barberID != 42 {
		t.Errorf("barberID = %d, want 42", barberID)
	}
}

func TestResolveBarberID_AdminMissingQuery(t *testing.T) {
	h := &AppointmentHandler{}

	c, w := agendaContext(t, models.RoleAdmin, 1, "")

	_, ok := h.resolveBarberID(c)
	if ok {
		t.Fatal("admin sem barber_id não resolve agenda")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
