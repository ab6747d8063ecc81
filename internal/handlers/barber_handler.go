package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/NavalhaStudio/barbearia-api/internal/httperr"
	"github.com/NavalhaStudio/barbearia-api/internal/httpresp"
	"github.com/NavalhaStudio/barbearia-api/internal/models"
	"github.com/NavalhaStudio/barbearia-api/internal/validators"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

type BarberView struct {
	ID        uint              `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Active    bool              `json:"active"`
	Schedules []models.Schedule `json:"schedules"`
}

// List devolve os barbeiros com seus expedientes semanais.
func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Where("role = ?", models.RoleBarber).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	out := make([]BarberView, 0, len(barbers))
	for _, b := range barbers {
		var schedules []models.Schedule
		h.db.
			Where("barber_id = ?", b.ID).
			Order("weekday ASC").
			Find(&schedules)

		out = append(out, BarberView{
			ID:        b.ID,
			Name:      b.Name,
			Email:     b.Email,
			Phone:     b.Phone,
			Active:    b.Active,
			Schedules: schedules,
		})
	}

	httpresp.List(c, out)
}

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "E-mail já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro interno.")
		return
	}

	barber := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         models.RoleBarber,
		Active:       true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, userPayload(&barber))
}

type UpdateBarberRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Active *bool  `json:"active"`
}

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var barber models.User
	if err := h.db.
		Where("id = ? AND role = ?", id, models.RoleBarber).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != "" {
		barber.Name = req.Name
	}
	if req.Phone != "" {
		if !validators.IsPhoneValid(req.Phone) {
			httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
			return
		}
		barber.Phone = req.Phone
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, userPayload(&barber))
}

// Delete desativa o barbeiro e tudo que depende dele: expedientes e
// exceções ficam inválidos junto (a agenda some das consultas).
func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var barber models.User
	if err := h.db.
		Where("id = ? AND role = ?", id, models.RoleBarber).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&barber).Update("active", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Schedule{}).
			Where("barber_id = ?", barber.ID).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.ScheduleException{}).
			Where("barber_id = ?", barber.ID).
			Update("active", false).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}

	c.Status(http.StatusNoContent)
}
