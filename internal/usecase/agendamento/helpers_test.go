package agendamento

import (
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	customerID     = "6f1c1c2e-4f0e-4c8a-9a55-0c1a7e0b1a01"
	professionalID = "6f1c1c2e-4f0e-4c8a-9a55-0c1a7e0b1a02"
	unitID         = "6f1c1c2e-4f0e-4c8a-9a55-0c1a7e0b1a03"
	serviceID      = "6f1c1c2e-4f0e-4c8a-9a55-0c1a7e0b1a04"
	appointmentID  = "6f1c1c2e-4f0e-4c8a-9a55-0c1a7e0b1a05"
)

var nine = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func createInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		CustomerID:     customerID,
		ProfessionalID: professionalID,
		UnitID:         unitID,
		Start:          nine,
		Services: []domain.ServiceLine{
			{ServiceID: serviceID, AppliedPrice: 40, AppliedDuration: 30},
		},
	}
}

func storedAppointment(status domain.Status) *models.Appointment {
	return &models.Appointment{
		ID:             appointmentID,
		CustomerID:     customerID,
		ProfessionalID: professionalID,
		UnitID:         unitID,
		StartTime:      nine,
		EndTime:        nine.Add(30 * time.Minute),
		Status:         string(status),
		Notes:          "primeira visita",
		Services: []models.AppointmentService{
			{AppointmentID: appointmentID, ServiceID: serviceID, AppliedPrice: 40, AppliedDuration: 30},
		},
	}
}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}
