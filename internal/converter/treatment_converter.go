package converter

import (
	"time"

	"github.com/glowcare/clinic/internal/delivery/dto"
	"github.com/glowcare/clinic/internal/domain/entity"
)

func TreatmentToResponse(treatment *entity.Treatment) *dto.TreatmentResponse {
	return &dto.TreatmentResponse{
		ID:          treatment.ID,
		Name:        treatment.Name,
		Description: treatment.Description,
		Price:       treatment.Price,
		Duration:    treatment.Duration,
		CreatedAt:   treatment.CreatedAt.Format(time.RFC3339),
	}
}

func TreatmentsToResponses(treatments []entity.Treatment) []dto.TreatmentResponse {
	responses := make([]dto.TreatmentResponse, 0, len(treatments))
	for i := range treatments {
		responses = append(responses, *TreatmentToResponse(&treatments[i]))
	}
	return responses
}
