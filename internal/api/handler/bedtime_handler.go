package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/blaisecz/better-rest/internal/api/validation"
	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/blaisecz/better-rest/internal/service"
	"github.com/blaisecz/better-rest/pkg/problem"
)

type BedtimeHandler struct {
	service service.BedtimeService
	logger  *slog.Logger
}

func NewBedtimeHandler(service service.BedtimeService, logger *slog.Logger) *BedtimeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BedtimeHandler{service: service, logger: logger}
}

// Calculate handles POST /v1/bedtime
// @Summary Calculate bedtime
// @Description Predict how much sleep is needed and count back from the wake-up time. When the model fails the response is 503, or 204 with no body if the server runs with ERROR_MODE=silent.
// @Tags bedtime
// @Accept json
// @Produce json
// @Param request body domain.CalculateBedtimeRequest true "Form inputs"
// @Success 200 {object} domain.Announcement "Recommended bedtime"
// @Success 204 "Prediction failed (silent error mode)"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Inputs out of range"
// @Failure 503 {object} problem.Problem "Prediction failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /bedtime [post]
func (h *BedtimeHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req domain.CalculateBedtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	h.respond(w, r, req.ToBedtimeRequest())
}

// CalculateQuery handles GET /v1/bedtime
// @Summary Calculate bedtime from query parameters
// @Description Same as POST /bedtime with the form inputs passed as query parameters.
// @Tags bedtime
// @Produce json
// @Param wake_time query string true "Wake-up time (HH:MM)" example(07:00)
// @Param sleep_amount query number true "Desired sleep in hours (4-12, step 0.25)" example(8)
// @Param coffee_amount query integer true "Daily coffee cups (1-20)" example(2)
// @Success 200 {object} domain.Announcement "Recommended bedtime"
// @Success 204 "Prediction failed (silent error mode)"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 503 {object} problem.Problem "Prediction failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /bedtime [get]
func (h *BedtimeHandler) CalculateQuery(w http.ResponseWriter, r *http.Request) {
	req, fieldErrors := parseBedtimeQuery(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	h.respond(w, r, req.ToBedtimeRequest())
}

// Form handles GET /v1/bedtime/form
// @Summary Form defaults
// @Description Initial wake time, sleep amount and coffee intake, with the range of each control.
// @Tags bedtime
// @Produce json
// @Success 200 {object} domain.FormDefaults
// @Router /bedtime/form [get]
func (h *BedtimeHandler) Form(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.service.FormDefaults())
}

func (h *BedtimeHandler) respond(w http.ResponseWriter, r *http.Request, req domain.BedtimeRequest) {
	announcement, err := h.service.Calculate(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrPredictionFailed) {
			if h.service.ErrorMode() == domain.ErrorModeSilent {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			problem.PredictionFailed(err.Error()).Write(w)
			return
		}
		h.logger.ErrorContext(r.Context(), "unexpected bedtime error", "error", err)
		problem.InternalError("Failed to calculate bedtime").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(announcement)
}

func parseBedtimeQuery(r *http.Request) (domain.CalculateBedtimeRequest, []problem.FieldError) {
	var req domain.CalculateBedtimeRequest
	var fieldErrors []problem.FieldError
	query := r.URL.Query()

	// Parse 'wake_time' parameter
	if s := query.Get("wake_time"); s != "" {
		wake, err := domain.ParseWakeTime(s)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "wake_time",
				Message: "must be a time of day in HH:MM format",
			})
		} else {
			req.WakeTime = &wake
		}
	}

	// Parse 'sleep_amount' parameter
	if s := query.Get("sleep_amount"); s != "" {
		hours, err := strconv.ParseFloat(s, 64)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "sleep_amount",
				Message: "must be a number",
			})
		} else {
			req.SleepAmount = &hours
		}
	}

	// Parse 'coffee_amount' parameter
	if s := query.Get("coffee_amount"); s != "" {
		cups, err := strconv.Atoi(s)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "coffee_amount",
				Message: "must be an integer",
			})
		} else {
			req.CoffeeAmount = &cups
		}
	}

	if len(fieldErrors) > 0 {
		return req, fieldErrors
	}

	return req, nil
}
