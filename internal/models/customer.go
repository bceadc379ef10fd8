package models

import "time"

// Cliente da unidade, sem login
type Customer struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UnitID string `gorm:"column:unidade_id;type:uuid;index" json:"unidade_id"`

	Name  string `gorm:"column:nome;size:100;not null" json:"nome"`
	Phone string `gorm:"column:telefone;size:20" json:"telefone"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Customer) TableName() string { return "clientes" }
