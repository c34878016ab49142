package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/glowcare/clinic/internal/delivery/dto"
	"github.com/glowcare/clinic/internal/gateway"
	"github.com/glowcare/clinic/internal/usecase"
	"github.com/glowcare/clinic/pkg/response"
	"github.com/glowcare/clinic/pkg/validator"
)

type TreatmentHandler struct {
	treatmentUsecase usecase.TreatmentUsecase
	validator        *validator.CustomValidator
}

func NewTreatmentHandler(treatmentUsecase usecase.TreatmentUsecase, validator *validator.CustomValidator) *TreatmentHandler {
	return &TreatmentHandler{
		treatmentUsecase: treatmentUsecase,
		validator:        validator,
	}
}

func (h *TreatmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	treatment, err := h.treatmentUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create treatment")
		return
	}

	response.Success(w, http.StatusCreated, "Treatment created successfully", treatment)
}

func (h *TreatmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	treatments, err := h.treatmentUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch treatments")
		return
	}

	response.Success(w, http.StatusOK, "Treatments retrieved successfully", treatments)
}

func (h *TreatmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment ID", nil)
		return
	}

	treatment, err := h.treatmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to fetch treatment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment retrieved successfully", treatment)
}

func (h *TreatmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment ID", nil)
		return
	}

	var req dto.UpdateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	treatment, err := h.treatmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to update treatment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment updated successfully", treatment)
}

func (h *TreatmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment ID", nil)
		return
	}

	if err := h.treatmentUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to delete treatment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment deleted successfully", nil)
}

// Book forwards a booking for this treatment to the appointment service
// and relays the outcome augmented with the treatment's name and price.
func (h *TreatmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment ID", nil)
		return
	}

	var req dto.BookTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.treatmentUsecase.Book(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTreatmentNotFound):
			response.NotFound(w, "Treatment not found")
		case errors.Is(err, gateway.ErrUpstreamUnavailable):
			response.BadGateway(w, "Appointment service unavailable")
		case errors.Is(err, usecase.ErrBookingRejected):
			response.Error(w, http.StatusBadRequest, "Failed to book appointment", nil)
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked for "+booking.TreatmentName, booking)
}
