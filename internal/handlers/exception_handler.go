package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/NavalhaStudio/barbearia-api/internal/domain/appointment"
	"github.com/NavalhaStudio/barbearia-api/internal/httperr"
	"github.com/NavalhaStudio/barbearia-api/internal/models"
)

type ExceptionHandler struct {
	db *gorm.DB
}

func NewExceptionHandler(db *gorm.DB) *ExceptionHandler {
	return &ExceptionHandler{db: db}
}

func (h *ExceptionHandler) ListForBarber(c *gin.Context) {
	sh := &ScheduleHandler{db: h.db}
	barber, ok := sh.barberFromPath(c)
	if !ok {
		return
	}

	var exceptions []models.ScheduleException
	if err := h.db.
		Where("barber_id = ?", barber.ID).
		Order("date ASC").
		Find(&exceptions).Error; err != nil {
		httperr.Internal(c, "failed_to_list_exceptions", "Erro ao listar exceções.")
		return
	}

	c.JSON(http.StatusOK, exceptions)
}

type ExceptionRequest struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime string `json:"start_time"`              // vazio = dia inteiro
	EndTime   string `json:"end_time"`
	Type      string `json:"type"`
}

func (h *ExceptionHandler) CreateForBarber(c *gin.Context) {
	sh := &ScheduleHandler{db: h.db}
	barber, ok := sh.barberFromPath(c)
	if !ok {
		return
	}

	if !canManageBarber(c, barber.ID) {
		httperr.Forbidden(c, "forbidden", "Sem permissão para esta agenda.")
		return
	}

	var req ExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	excType := req.Type
	if excType == "" {
		excType = models.ExceptionOther
	}

	exc := models.ScheduleException{
		BarberID:  barber.ID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Type:      excType,
		Active:    true,
	}

	if err := domain.ValidateException(&exc); err != nil {
		writeBusinessError(c, err)
		return
	}

	// no máximo uma exceção ativa por (barbeiro, data)
	var count int64
	h.db.Model(&models.ScheduleException{}).
		Where("barber_id = ? AND date = ? AND active = true", barber.ID, date).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, httperr.CodeDuplicateException, "Já existe exceção ativa para esta data.")
		return
	}

	if err := h.db.Create(&exc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_exception", "Erro ao criar exceção.")
		return
	}

	c.JSON(http.StatusCreated, exc)
}

type UpdateExceptionRequest struct {
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Type      string  `json:"type"`
	Active    *bool   `json:"active"`
}

func (h *ExceptionHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var exc models.ScheduleException
	if err := h.db.First(&exc, id).Error; err != nil {
		httperr.NotFound(c, "exception_not_found", "Exceção não encontrada.")
		return
	}

	if !canManageBarber(c, exc.BarberID) {
		httperr.Forbidden(c, "forbidden", "Sem permissão para esta agenda.")
		return
	}

	var req UpdateExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.StartTime != nil {
		exc.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		exc.EndTime = *req.EndTime
	}
	if req.Type != "" {
		exc.Type = req.Type
	}

	if err := domain.ValidateException(&exc); err != nil {
		writeBusinessError(c, err)
		return
	}

	if req.Active != nil && *req.Active != exc.Active {
		if *req.Active {
			// reativar não pode furar a unicidade por data
			var count int64
			h.db.Model(&models.ScheduleException{}).
				Where(
					"barber_id = ? AND date = ? AND active = true AND id <> ?",
					exc.BarberID, exc.Date, exc.ID,
				).
				Count(&count)
			if count > 0 {
				httperr.Conflict(c, httperr.CodeDuplicateException, "Já existe exceção ativa para esta data.")
				return
			}
		}
		exc.Active = *req.Active
	}

	if err := h.db.Save(&exc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_exception", "Erro ao atualizar exceção.")
		return
	}

	c.JSON(http.StatusOK, exc)
}

func (h *ExceptionHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var exc models.ScheduleException
	if err := h.db.First(&exc, id).Error; err != nil {
		httperr.NotFound(c, "exception_not_found", "Exceção não encontrada.")
		return
	}

	if !canManageBarber(c, exc.BarberID) {
		httperr.Forbidden(c, "forbidden", "Sem permissão para esta agenda.")
		return
	}

	if err := h.db.Model(&exc).Update("active", false).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_exception", "Erro ao remover exceção.")
		return
	}

	c.Status(http.StatusNoContent)
}
