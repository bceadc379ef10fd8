package audit

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Logger grava eventos de auditoria na tabela audit_logs.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		UnitID:   ev.UnitID,
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

// --------------------------------------------------
// Consulta
// --------------------------------------------------

type Filter struct {
	UnitID   string
	Action   string
	Entity   string
	EntityID string
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

type Page struct {
	Logs  []models.AuditLog `json:"logs"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// List é sempre restrito à unidade do filtro.
func (l *Logger) List(ctx context.Context, f Filter) (*Page, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}

	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("unidade_id = ?", f.UnitID)

	if f.Action != "" {
		q = q.Where("acao = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entidade = ?", f.Entity)
	}
	if f.EntityID != "" {
		q = q.Where("entidade_id = ?", f.EntityID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	logs := []models.AuditLog{}
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	return &Page{Logs: logs, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

var _ Sink = (*Logger)(nil)
