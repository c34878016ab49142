package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/glowcare/clinic/internal/delivery/dto"
	"github.com/glowcare/clinic/internal/usecase"
	"github.com/glowcare/clinic/pkg/response"
	"github.com/glowcare/clinic/pkg/validator"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

// Create handles payment creation
// @Summary Create a new payment
// @Description Create a pending payment for an appointment
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Create Payment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /payments [post]
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.Create(r.Context(), &req)
	if err != nil {
		var dup *usecase.DuplicatePaymentError
		if errors.As(err, &dup) {
			response.Conflict(w, "Payment already exists for this appointment", dto.ExistingPaymentResponse{
				ExistingPaymentID: dup.ExistingID,
				PaymentReference:  dup.Reference,
			})
			return
		}
		response.InternalServerError(w, "Failed to create payment")
		return
	}

	response.Success(w, http.StatusCreated, "Payment created successfully", payment)
}

// GetAll lists payments newest first, optionally filtered by ?user_id=
func (h *PaymentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	var userID uint
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid user_id filter", nil)
			return
		}
		userID = uint(parsed)
	}

	payments, err := h.paymentUsecase.GetAll(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch payments")
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}

func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	payment, err := h.paymentUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		default:
			response.InternalServerError(w, "Failed to fetch payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment retrieved successfully", payment)
}

// GetByAppointment fetches the single payment linked to an appointment
func (h *PaymentHandler) GetByAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	payment, err := h.paymentUsecase.GetByAppointmentID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrNoPaymentForAppointment:
			response.NotFound(w, "No payment found for this appointment")
		default:
			response.InternalServerError(w, "Failed to fetch payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment retrieved successfully", payment)
}

// UpdateStatus applies a generic payment status transition
func (h *PaymentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.paymentUsecase.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch err {
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		case usecase.ErrInvalidPaymentStatus, usecase.ErrCompletedToFailed:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update payment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment status updated successfully", result)
}

// Confirm completes a pending payment
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	result, err := h.paymentUsecase.Confirm(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		case usecase.ErrPaymentNotPending:
			response.Error(w, http.StatusBadRequest, "Payment is not pending", nil)
		default:
			response.InternalServerError(w, "Failed to confirm payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment confirmed successfully", result)
}
