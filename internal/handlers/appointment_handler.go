package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/NavalhaStudio/barbearia-api/internal/domain/appointment"
	"github.com/NavalhaStudio/barbearia-api/internal/httperr"
	"github.com/NavalhaStudio/barbearia-api/internal/middleware"
	"github.com/NavalhaStudio/barbearia-api/internal/models"
	ucAppointment "github.com/NavalhaStudio/barbearia-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	changeStatusUC *ucAppointment.ChangeStatus
	listByDateUC   *ucAppointment.ListAppointmentsByDate
	listByMonthUC  *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	changeStatusUC *ucAppointment.ChangeStatus,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		changeStatusUC: changeStatusUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
	Notes     string `json:"notes"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	// cliente é sempre a identidade autenticada, nunca vem no body
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			ClientID:  clientID,
			BarberID:  req.BarberID,
			ServiceID: req.ServiceID,
			Date:      req.Date,
			Time:      req.Time,
			Notes:     req.Notes,
		},
	)

	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// mapCreateErrors traduz cada gate do validador para HTTP.
func mapCreateErrors(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	switch code {
	case httperr.CodeInvalidDateOrTime:
		httperr.BadRequest(c, code, "Data ou hora inválida.")
	case httperr.CodePastDate:
		httperr.BadRequest(c, code, "Não é possível agendar em data passada.")
	case httperr.CodeServiceNotFound:
		httperr.BadRequest(c, code, "Serviço não encontrado.")
	case httperr.CodeBarberNotFound:
		httperr.BadRequest(c, code, "Barbeiro não encontrado.")
	case httperr.CodeNoSchedule:
		httperr.BadRequest(c, code, "O barbeiro não atende neste dia.")
	case httperr.CodeBarberUnavailable:
		httperr.BadRequest(c, code, "O barbeiro está indisponível nesta data.")
	case httperr.CodeOutsideHours:
		httperr.BadRequest(c, code, "Fora do horário de atendimento.")
	case httperr.CodeBreakTime:
		httperr.BadRequest(c, code, "Horário dentro da pausa do barbeiro.")
	case httperr.CodeExceedsHours:
		httperr.BadRequest(c, code, "O atendimento terminaria após o expediente.")
	case httperr.CodeTimeConflict:
		httperr.Conflict(c, code, "Conflito de horário.")
	default:
		httperr.BadRequest(c, code, "Dados inválidos.")
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID, ok := h.resolveBarberID(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barberID, ok := h.resolveBarberID(c)
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), barberID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

// resolveBarberID: barbeiro vê a própria agenda; admin escolhe via query.
// A agenda carrega nome e observações de outros clientes, então nenhum
// outro papel enxerga agenda nenhuma.
func (h *AppointmentHandler) resolveBarberID(c *gin.Context) (uint, bool) {
	role := c.MustGet(middleware.ContextUserRole).(string)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	switch role {
	case models.RoleBarber:
		return userID, true

	case models.RoleAdmin:
		barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return 0, false
		}
		return uint(barberID), true

	default:
		httperr.Forbidden(c, "not_allowed", "Sem permissão para esta agenda.")
		return 0, false
	}
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	h.transition(c, domain.Status(req.Status))
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, domain.StatusConfirmed)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, domain.StatusCancelled)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, domain.StatusCompleted)
}

func (h *AppointmentHandler) transition(c *gin.Context, to domain.Status) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	actorRole := c.MustGet(middleware.ContextUserRole).(string)

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	ap, err := h.changeStatusUC.Execute(
		c.Request.Context(),
		uint(id),
		actorID,
		actorRole,
		to,
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "not_allowed"):
			httperr.Forbidden(c, "not_allowed", "Sem permissão para esta operação.")
		case httperr.IsBusiness(err, httperr.CodeInvalidTransition):
			httperr.BadRequest(c, httperr.CodeInvalidTransition, err.Error())
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}
