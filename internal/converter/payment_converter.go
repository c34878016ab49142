package converter

import (
	"time"

	"github.com/glowcare/clinic/internal/delivery/dto"
	"github.com/glowcare/clinic/internal/domain/entity"
)

func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	var paidAt *string
	if payment.PaidAt != nil {
		s := payment.PaidAt.Format(time.RFC3339)
		paidAt = &s
	}

	return &dto.PaymentResponse{
		ID:               payment.ID,
		UserID:           payment.UserID,
		AppointmentID:    payment.AppointmentID,
		Amount:           payment.Amount,
		PaymentMethod:    payment.PaymentMethod,
		PaymentReference: payment.PaymentReference,
		Status:           string(payment.Status),
		CreatedAt:        payment.CreatedAt.Format(time.RFC3339),
		PaidAt:           paidAt,
	}
}

func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, *PaymentToResponse(&payments[i]))
	}
	return responses
}
