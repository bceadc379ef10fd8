package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AgendamentoGormRepository struct {
	db *gorm.DB
}

func NewAgendamentoGormRepository(db *gorm.DB) *AgendamentoGormRepository {
	return &AgendamentoGormRepository{db: db}
}

// --------------------------------------------------
// Conflito
// --------------------------------------------------

// HasTimeConflict delega a decisão ao procedimento verificar_conflito_horario.
func (r *AgendamentoGormRepository) HasTimeConflict(
	ctx context.Context,
	professionalID string,
	start time.Time,
	end time.Time,
	excludeID string,
) (bool, error) {

	var exclude any
	if excludeID != "" {
		exclude = excludeID
	}

	var conflict bool
	if err := r.db.WithContext(ctx).
		Raw(
			"SELECT verificar_conflito_horario(?::uuid, ?, ?, ?::uuid)",
			professionalID, start, end, exclude,
		).
		Scan(&conflict).Error; err != nil {
		return false, err
	}

	return conflict, nil
}

// --------------------------------------------------
// Profissional
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetProfessional(
	ctx context.Context,
	id string,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Select("id", "unidade_id", "nome", "ativo").
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *AgendamentoGormRepository) GetWorkingHours(
	ctx context.Context,
	professionalID string,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("profissional_id = ? AND dia_semana = ?", professionalID, weekday).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wh, nil
}

func (r *AgendamentoGormRepository) ListWorkingHours(
	ctx context.Context,
	professionalID string,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("profissional_id = ?", professionalID).
		Order("dia_semana ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *AgendamentoGormRepository) ReplaceWorkingHours(
	ctx context.Context,
	professionalID string,
	hours []models.WorkingHours,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("profissional_id = ?", professionalID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		if len(hours) == 0 {
			return nil
		}
		return tx.Create(&hours).Error
	})
}

// --------------------------------------------------
// Agendamento (escrita)
// --------------------------------------------------

func (r *AgendamentoGormRepository) InsertAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ap).Error
}

func (r *AgendamentoGormRepository) InsertAppointmentServices(
	ctx context.Context,
	items []models.AppointmentService,
) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&items).Error
}

// DeleteAppointment só é usado como ação compensatória na criação.
func (r *AgendamentoGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("agendamento_id = ?", id).
			Delete(&models.AppointmentService{}).Error; err != nil {
			return err
		}
		return tx.
			Where("id = ?", id).
			Delete(&models.Appointment{}).Error
	})
}

func (r *AgendamentoGormRepository) UpdateAppointment(
	ctx context.Context,
	id string,
	patch map[string]any,
) (*models.Appointment, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return r.GetAppointment(ctx, id)
}

// --------------------------------------------------
// Agendamento (leitura)
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Professional").
		Preload("Services.Service").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (r *AgendamentoGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, int64, error) {

	q := applyListFilter(
		r.db.WithContext(ctx).Model(&models.Appointment{}),
		f,
	).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Appointment
	if err := q.
		Preload("Customer").
		Preload("Professional").
		Preload("Services.Service").
		Order("data_hora_inicio DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// applyListFilter adiciona exatamente um predicado por campo presente no filtro.
func applyListFilter(q *gorm.DB, f domain.ListFilter) *gorm.DB {
	if len(f.Statuses) > 0 {
		q = q.Where("agendamentos.status IN ?", f.Statuses)
	}
	if f.DateFrom != nil {
		q = q.Where("agendamentos.data_hora_inicio >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("agendamentos.data_hora_inicio <= ?", *f.DateTo)
	}
	if f.UnitID != "" {
		q = q.Where("agendamentos.unidade_id = ?", f.UnitID)
	}
	if f.ProfessionalID != "" {
		q = q.Where("agendamentos.profissional_id = ?", f.ProfessionalID)
	}
	if f.CustomerID != "" {
		q = q.Where("agendamentos.cliente_id = ?", f.CustomerID)
	}
	if term := strings.TrimSpace(f.Query); term != "" {
		like := likePattern(term)
		q = q.Where(
			`(agendamentos.observacoes ILIKE ? ESCAPE '\' OR agendamentos.cliente_id IN (SELECT id FROM clientes WHERE nome ILIKE ? ESCAPE '\'))`,
			like, like,
		)
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern trata o termo como texto literal: % e _ digitados não viram curinga.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func (r *AgendamentoGormRepository) ListBookingsForDay(
	ctx context.Context,
	professionalID string,
	start time.Time,
	end time.Time,
	excludeID string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Where(
			"profissional_id = ? AND status <> ? AND data_hora_inicio < ? AND data_hora_fim > ?",
			professionalID, string(domain.StatusCancelled), end, start,
		)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var apps []models.Appointment
	if err := q.Order("data_hora_inicio ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AgendamentoGormRepository) ListAppointmentsForStats(
	ctx context.Context,
	f domain.StatsFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Select("id", "status", "data_hora_inicio", "unidade_id", "profissional_id").
		Preload("Services.Service").
		Where("data_hora_inicio >= ? AND data_hora_inicio < ?", f.From, f.To)

	if f.UnitID != "" {
		q = q.Where("unidade_id = ?", f.UnitID)
	}
	if f.ProfessionalID != "" {
		q = q.Where("profissional_id = ?", f.ProfessionalID)
	}

	var apps []models.Appointment
	if err := q.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*AgendamentoGormRepository)(nil)
