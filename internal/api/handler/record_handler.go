package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ymurata/motivation-tracker/internal/api/validation"
	"github.com/ymurata/motivation-tracker/internal/domain"
	"github.com/ymurata/motivation-tracker/internal/service"
	"github.com/ymurata/motivation-tracker/pkg/problem"
)

type RecordHandler struct {
	service service.RecordService
}

func NewRecordHandler(service service.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// SaveDay handles PUT /v1/users/{userId}/records/{date}
// @Summary Save a day
// @Description Upsert the record for a calendar date and replace its answers with the submitted set. Omitted or empty optional fields clear the stored values.
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User UUID" format(uuid)
// @Param date path string true "Calendar date" format(date) example(2024-06-01)
// @Param request body domain.SaveDayRequest true "Full day state"
// @Success 200 {object} domain.DailyRecordResponse
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 401 {object} problem.Problem
// @Failure 403 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Save failed; re-fetch the day before retrying"
// @Router /users/{userId}/records/{date} [put]
func (h *RecordHandler) SaveDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUserID(w, r)
	if !ok {
		return
	}

	date, err := parseRecordDate(r)
	if err != nil {
		problem.BadRequest("Invalid date, expected YYYY-MM-DD").Write(w)
		return
	}

	var req domain.SaveDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.SaveDay(r.Context(), userID, date, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrPartialSave) {
			problem.InternalError("Save partially applied; reload the day to see its stored state").Write(w)
			return
		}
		problem.InternalError("Failed to save day").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record.ToResponse())
}

// GetDay handles GET /v1/users/{userId}/records/{date}
// @Summary Get a day's editor state
// @Description Fetch the stored state for one date. A date without a record returns a blank state over the active question catalog.
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User UUID" format(uuid)
// @Param date path string true "Calendar date" format(date) example(2024-06-01)
// @Success 200 {object} domain.DayState
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 401 {object} problem.Problem
// @Failure 403 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/records/{date} [get]
func (h *RecordHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUserID(w, r)
	if !ok {
		return
	}

	date, err := parseRecordDate(r)
	if err != nil {
		problem.BadRequest("Invalid date, expected YYYY-MM-DD").Write(w)
		return
	}

	state, err := h.service.LoadDay(r.Context(), userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to load day").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// List handles GET /v1/users/{userId}/records
// @Summary List record history
// @Description Fetch paginated record history, newest first.
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User UUID" format(uuid)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.RecordListResponse
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 401 {object} problem.Problem
// @Failure 403 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/records [get]
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUserID(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseRecordFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list records").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseRecordDate(r *http.Request) (time.Time, error) {
	return time.ParseInLocation(domain.RecordDateLayout, chi.URLParam(r, "date"), time.UTC)
}

func parseRecordFilter(r *http.Request) (domain.RecordFilter, []problem.FieldError) {
	var filter domain.RecordFilter
	var fieldErrors []problem.FieldError

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
