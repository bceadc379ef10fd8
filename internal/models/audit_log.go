package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UnitID   string `gorm:"column:unidade_id;size:36;index" json:"unidade_id"`
	UserID   string `gorm:"column:usuario_id;size:36" json:"usuario_id"`
	Action   string `gorm:"column:acao;size:50;not null" json:"acao"`
	Entity   string `gorm:"column:entidade;size:50" json:"entidade"`
	EntityID string `gorm:"column:entidade_id;size:36;index" json:"entidade_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
