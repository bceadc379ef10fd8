package agendamento

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Status do agendamento
// ===============================

type Status string

const (
	StatusCreated   Status = "criado"
	StatusConfirmed Status = "confirmado"
	StatusInService Status = "em_atendimento"
	StatusCompleted Status = "concluido"
	StatusCancelled Status = "cancelado"
	StatusNoShow    Status = "faltou"
)

// transitions é a única fonte de verdade das mudanças de status permitidas.
// Status terminais não aparecem como origem.
var transitions = map[Status][]Status{
	StatusCreated:   {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusInService, StatusCancelled, StatusNoShow},
	StatusInService: {StatusCompleted, StatusCancelled, StatusNoShow},
}

func AllStatuses() []Status {
	return []Status{
		StatusCreated,
		StatusConfirmed,
		StatusInService,
		StatusCompleted,
		StatusCancelled,
		StatusNoShow,
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusCreated, StatusConfirmed, StatusInService,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// ===============================
// Validações
// ===============================

// IsValidTransition responde se current -> requested é um passo permitido.
func IsValidTransition(current, requested Status) bool {
	for _, next := range transitions[current] {
		if next == requested {
			return true
		}
	}
	return false
}

func CanTransition(current, requested Status) error {
	if !requested.Valid() {
		return httperr.Validation("invalid_status", "Status inválido")
	}
	if !IsValidTransition(current, requested) {
		return httperr.Validation("invalid_status_transition", "Transição de status inválida")
	}
	return nil
}

// CanCancel define se um agendamento ainda pode ser cancelado
func CanCancel(current Status) error {
	if current.IsTerminal() {
		return httperr.Validation("already_finished", "Agendamento já foi concluído ou cancelado")
	}
	return nil
}

// CanReschedule bloqueia remarcação de atendimentos encerrados
func CanReschedule(current Status) error {
	if current.IsTerminal() {
		return httperr.Validation("already_finished", "Agendamento já foi concluído ou cancelado")
	}
	return nil
}

func InitialStatus() Status {
	return StatusCreated
}
