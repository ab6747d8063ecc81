package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/NavalhaStudio/barbearia-api/internal/domain/appointment"
	"github.com/NavalhaStudio/barbearia-api/internal/httperr"
	"github.com/NavalhaStudio/barbearia-api/internal/middleware"
	"github.com/NavalhaStudio/barbearia-api/internal/models"
)

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

// canManageBarber: admin gerencia qualquer agenda, barbeiro só a própria.
func canManageBarber(c *gin.Context, barberID uint) bool {
	role := c.MustGet(middleware.ContextUserRole).(string)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	return role == models.RoleAdmin ||
		(role == models.RoleBarber && userID == barberID)
}

func (h *ScheduleHandler) barberFromPath(c *gin.Context) (*models.User, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return nil, false
	}

	var barber models.User
	if err := h.db.
		Where("id = ? AND role = ?", uint(id), models.RoleBarber).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return nil, false
	}

	return &barber, true
}

// ======================================================
// LIST / CREATE (por barbeiro)
// ======================================================

func (h *ScheduleHandler) ListForBarber(c *gin.Context) {
	barber, ok := h.barberFromPath(c)
	if !ok {
		return
	}

	var schedules []models.Schedule
	if err := h.db.
		Where("barber_id = ?", barber.ID).
		Order("weekday ASC").
		Find(&schedules).Error; err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Erro ao listar horários.")
		return
	}

	c.JSON(http.StatusOK, schedules)
}

type ScheduleRequest struct {
	Weekday     int    `json:"weekday"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	IntervalMin int    `json:"interval_min" binding:"required"`
	BreakStart  string `json:"break_start"`
	BreakEnd    string `json:"break_end"`
}

func (h *ScheduleHandler) CreateForBarber(c *gin.Context) {
	barber, ok := h.barberFromPath(c)
	if !ok {
		return
	}

	if !canManageBarber(c, barber.ID) {
		httperr.Forbidden(c, "forbidden", "Sem permissão para esta agenda.")
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sched := models.Schedule{
		BarberID:    barber.ID,
		Weekday:     req.Weekday,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IntervalMin: req.IntervalMin,
		BreakStart:  req.BreakStart,
		BreakEnd:    req.BreakEnd,
		Active:      true,
	}

	if err := domain.ValidateSchedule(&sched); err != nil {
		writeBusinessError(c, err)
		return
	}

	// no máximo um expediente ativo por (barbeiro, dia da semana)
	var count int64
	h.db.Model(&models.Schedule{}).
		Where("barber_id = ? AND weekday = ? AND active = true", barber.ID, req.Weekday).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, httperr.CodeDuplicateSchedule, "Já existe expediente ativo para este dia.")
		return
	}

	if err := h.db.Create(&sched).Error; err != nil {
		httperr.Internal(c, "failed_to_create_schedule", "Erro ao criar horário.")
		return
	}

	c.JSON(http.StatusCreated, sched)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

type UpdateScheduleRequest struct {
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	IntervalMin *int    `json:"interval_min"`
	BreakStart  *string `json:"break_start"`
	BreakEnd    *string `json:"break_end"`
	Active      *bool   `json:"active"`
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var sched models.Schedule
	if err := h.db.First(&sched, id).Error; err != nil {
		httperr.NotFound(c, "schedule_not_found", "Horário não encontrado.")
		return
	}

	if !canManageBarber(c, sched.BarberID) {
		httperr.Forbidden(c, "forbidden", "Sem permissão para esta agenda.")
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.StartTime != "" {
		sched.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		sched.EndTime = req.EndTime
	}
	if req.IntervalMin != nil {
		sched.IntervalMin = *req.IntervalMin
	}
	if req.BreakStart != nil {
		sched.BreakStart = *req.BreakStart
	}
	if req.BreakEnd != nil {
		sched.BreakEnd = *req.BreakEnd
	}

	if err := domain.ValidateSchedule(&sched); err != nil {
		writeBusinessError(c, err)
		return
	}

	if req.Active != nil && *req.Active != sched.Active {
		if *req.Active {
			// reativar não pode furar a unicidade por dia
			var count int64
			h.db.Model(&models.Schedule{}).
				Where(
					"barber_id = ? AND weekday = ? AND active = true AND id <> ?",
					sched.BarberID, sched.Weekday, sched.ID,
				).
				Count(&count)
			if count > 0 {
				httperr.Conflict(c, httperr.CodeDuplicateSchedule, "Já existe expediente ativo para este dia.")
				return
			}
		}
		sched.Active = *req.Active
	}

	if err := h.db.Save(&sched).Error; err != nil {
		httperr.Internal(c, "failed_to_update_schedule", "Erro ao atualizar horário.")
		return
	}

	c.JSON(http.StatusOK, sched)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var sched models.Schedule
	if err := h.db.First(&sched, id).Error; err != nil {
		httperr.NotFound(c, "schedule_not_found", "Horário não encontrado.")
		return
	}

	if !canManageBarber(c, sched.BarberID) {
		httperr.Forbidden(c, "forbidden", "Sem permissão para esta agenda.")
		return
	}

	// desativação, nunca remoção física
	if err := h.db.Model(&sched).Update("active", false).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_schedule", "Erro ao remover horário.")
		return
	}

	c.Status(http.StatusNoContent)
}
