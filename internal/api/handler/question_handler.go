package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ymurata/motivation-tracker/internal/domain"
	"github.com/ymurata/motivation-tracker/internal/repository"
	"github.com/ymurata/motivation-tracker/pkg/problem"
)

// QuestionHandler serves the active question catalog.
type QuestionHandler struct {
	repo repository.QuestionRepository
}

func NewQuestionHandler(repo repository.QuestionRepository) *QuestionHandler {
	return &QuestionHandler{repo: repo}
}

// List handles GET /v1/questions
// @Summary List active questions
// @Description Fetch the active yes/no question catalog in display order.
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.QuestionResponse
// @Failure 401 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /questions [get]
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.repo.ListActive(r.Context())
	if err != nil {
		problem.InternalError("Failed to list questions").Write(w)
		return
	}

	responses := make([]domain.QuestionResponse, 0, len(questions))
	for i := range questions {
		responses = append(responses, questions[i].ToResponse())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}
