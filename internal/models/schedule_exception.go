package models

import "time"

// Tipos de exceção de agenda
const (
	ExceptionHoliday  = "holiday"
	ExceptionVacation = "vacation"
	ExceptionSickness = "sickness"
	ExceptionOther    = "other"
)

// ScheduleException bloqueia a agenda de um barbeiro em uma data específica.
// StartTime/EndTime vazios = dia inteiro bloqueado.
type ScheduleException struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"index:idx_exception_barber_date" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date time.Time `gorm:"type:date;index:idx_exception_barber_date" json:"date"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Type      string `gorm:"size:20;default:'other'" json:"type"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullDay indica bloqueio do dia inteiro.
func (e *ScheduleException) FullDay() bool {
	return e.StartTime == "" || e.EndTime == ""
}
