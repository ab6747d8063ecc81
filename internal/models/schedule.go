package models

import "time"

// Schedule é o expediente semanal recorrente de um barbeiro.
// Horários guardados como "HH:MM"; pausa é opcional (ambos vazios = sem pausa).
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"index:idx_schedule_barber_weekday" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Weekday int `gorm:"index:idx_schedule_barber_weekday" json:"weekday"`

	StartTime   string `gorm:"size:5" json:"start_time"`
	EndTime     string `gorm:"size:5" json:"end_time"`
	IntervalMin int    `gorm:"default:30" json:"interval_min"`
	BreakStart  string `gorm:"size:5" json:"break_start"`
	BreakEnd    string `gorm:"size:5" json:"break_end"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
