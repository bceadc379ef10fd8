package models

import "time"

type Service struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UnitID string `gorm:"column:unidade_id;type:uuid;index" json:"unidade_id"`

	Name        string  `gorm:"column:nome;size:100;not null" json:"nome"`
	Price       float64 `gorm:"column:preco" json:"preco"`
	DurationMin int     `gorm:"column:duracao_minutos" json:"duracao_minutos"`
	Active      bool    `gorm:"column:ativo;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Service) TableName() string { return "servicos" }
