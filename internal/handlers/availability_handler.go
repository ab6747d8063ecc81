package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/NavalhaStudio/barbearia-api/internal/domain/appointment"
	"github.com/NavalhaStudio/barbearia-api/internal/httperr"
	ucAppointment "github.com/NavalhaStudio/barbearia-api/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	availabilityUC *ucAppointment.GetAvailability
}

func NewAvailabilityHandler(availabilityUC *ucAppointment.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityUC: availabilityUC}
}

// List enumera os horários livres. Contrato permissivo de leitura:
// parâmetro inválido devolve lista vazia, nunca erro duro — o slot
// devolvido é só uma foto, não uma reserva.
func (h *AvailabilityHandler) List(c *gin.Context) {
	dateStr := c.Query("date")
	barberIDStr := c.Query("barber_id")
	serviceIDStr := c.Query("service_id")

	empty := gin.H{"date": dateStr, "slots": []domain.TimeSlot{}}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, empty)
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, empty)
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		c.JSON(http.StatusOK, empty)
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarberID:  uint(barberID),
			ServiceID: uint(serviceID),
			Date:      date,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
			c.JSON(http.StatusOK, empty)
			return
		}

		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
