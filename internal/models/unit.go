package models

import "time"

type Unit struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string `gorm:"column:nome;size:100;not null" json:"nome"`
	Slug     string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Timezone string `gorm:"size:64" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Unit) TableName() string { return "unidades" }
