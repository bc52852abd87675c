package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/money-tracker/internal/logger"
	"github.com/MKhiriev/money-tracker/internal/utils"
	"github.com/MKhiriev/money-tracker/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// expenseLocationPrefix is the canonical path used in Location headers.
const expenseLocationPrefix = "/api/Expenses/"

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.listExpenses", ErrMissingUserID)
		return
	}

	expenses, err := h.services.ExpenseService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listExpenses", err)
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}

	h.writeJSON(w, r, expenses, http.StatusOK, "*Handler.listExpenses")
}

func (h *Handler) getExpense(w http.ResponseWriter, r *http.Request) {
	userID, id, err := expenseRequestIDs(r)
	if err != nil {
		writeError(w, r, "*Handler.getExpense", err)
		return
	}

	expense, err := h.services.ExpenseService.Get(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, "*Handler.getExpense", err)
		return
	}

	h.writeJSON(w, r, expense, http.StatusOK, "*Handler.getExpense")
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.createExpense", ErrMissingUserID)
		return
	}

	var request models.CreateExpenseRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, "*Handler.createExpense", err)
		return
	}

	expense, err := h.services.ExpenseService.Create(r.Context(), request, userID)
	if err != nil {
		writeError(w, r, "*Handler.createExpense", err)
		return
	}

	w.Header().Set("Location", expenseLocationPrefix+expense.ID.String())
	h.writeJSON(w, r, expense, http.StatusCreated, "*Handler.createExpense")
}

func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	userID, id, err := expenseRequestIDs(r)
	if err != nil {
		writeError(w, r, "*Handler.updateExpense", err)
		return
	}

	var request models.UpdateExpenseRequest
	if err = decodeJSON(w, r, &request); err != nil {
		writeError(w, r, "*Handler.updateExpense", err)
		return
	}

	if err = h.services.ExpenseService.Update(r.Context(), id, request, userID); err != nil {
		writeError(w, r, "*Handler.updateExpense", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, id, err := expenseRequestIDs(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteExpense", err)
		return
	}

	if err = h.services.ExpenseService.Delete(r.Context(), id, userID); err != nil {
		writeError(w, r, "*Handler.deleteExpense", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// expenseRequestIDs returns the authenticated user ID and the {id} path
// parameter.
func expenseRequestIDs(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, uuid.Nil, ErrMissingUserID
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidExpenseID, err)
	}

	return userID, id, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int, funcName string) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing response")
	}
}
