package models

import "time"

type Professional struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UnitID string `gorm:"column:unidade_id;type:uuid;index" json:"unidade_id"`

	Name   string `gorm:"column:nome;size:100;not null" json:"nome"`
	Active bool   `gorm:"column:ativo;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Professional) TableName() string { return "profissionais" }
