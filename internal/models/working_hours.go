package models

import "time"

// WorkingHours guarda o expediente de um profissional num dia da semana (0 = domingo).
type WorkingHours struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ProfessionalID string `gorm:"column:profissional_id;type:uuid;uniqueIndex:idx_horario_profissional_dia" json:"profissional_id"`

	Weekday int `gorm:"column:dia_semana;uniqueIndex:idx_horario_profissional_dia" json:"dia_semana"`

	StartTime  string `gorm:"column:inicio;size:5" json:"inicio"`
	EndTime    string `gorm:"column:fim;size:5" json:"fim"`
	LunchStart string `gorm:"column:almoco_inicio;size:5" json:"almoco_inicio"`
	LunchEnd   string `gorm:"column:almoco_fim;size:5" json:"almoco_fim"`
	Active     bool   `gorm:"column:ativo" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WorkingHours) TableName() string { return "horarios_trabalho" }
