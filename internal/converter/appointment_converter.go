package converter

import (
	"time"

	"github.com/glowcare/clinic/internal/delivery/dto"
	"github.com/glowcare/clinic/internal/domain/entity"
)

// AppointmentToResponse converts an appointment entity to its response
// DTO. Dates are rendered in ISO 8601.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		UserID:          appointment.UserID,
		TreatmentID:     appointment.TreatmentID,
		AppointmentDate: appointment.AppointmentDate.Format(time.RFC3339),
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt.Format(time.RFC3339),
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
