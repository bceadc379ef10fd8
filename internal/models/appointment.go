package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerID string   `gorm:"column:cliente_id;type:uuid;index" json:"cliente_id"`
	Customer   Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cliente,omitempty"`

	ProfessionalID string       `gorm:"column:profissional_id;type:uuid;index" json:"profissional_id"`
	Professional   Professional `gorm:"foreignKey:ProfessionalID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"profissional,omitempty"`

	UnitID string `gorm:"column:unidade_id;type:uuid;index" json:"unidade_id"`

	StartTime time.Time `gorm:"column:data_hora_inicio;not null" json:"data_hora_inicio"`
	EndTime   time.Time `gorm:"column:data_hora_fim;not null" json:"data_hora_fim"`

	Status string `gorm:"size:20;default:'criado'" json:"status"`
	Notes  string `gorm:"column:observacoes;type:text" json:"observacoes"`

	Services []AppointmentService `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE;" json:"servicos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string { return "agendamentos" }

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// AppointmentService é o item de linha; preço e duração são congelados no momento da reserva.
type AppointmentService struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentID string `gorm:"column:agendamento_id;type:uuid;index;not null" json:"agendamento_id"`

	ServiceID string  `gorm:"column:servico_id;type:uuid;index" json:"servico_id"`
	Service   Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"servico,omitempty"`

	AppliedPrice    float64 `gorm:"column:preco_aplicado" json:"preco_aplicado"`
	AppliedDuration int     `gorm:"column:duracao_aplicada" json:"duracao_aplicada"`
}

func (AppointmentService) TableName() string { return "agendamento_servicos" }

func (s *AppointmentService) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
