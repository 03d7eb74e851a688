package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"pharmaplus-backend/internal/domain"
	"pharmaplus-backend/internal/usecase"
	"pharmaplus-backend/pkg/utils"
)

// ReminderHandler serves the pastillero. All routes sit behind
// AuthMiddleware; the user comes from the request context.
type ReminderHandler struct {
	reminderUC *usecase.ReminderUsecase
}

func NewReminderHandler(uc *usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{reminderUC: uc}
}

// POST /api/v1/reminders
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(domain.UserContextKey).(*domain.User)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.Reminder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	view, err := h.reminderUC.Create(r.Context(), user.ID, &req)
	if err != nil {
		utils.WriteError(w, statusForReminderErr(err), err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusCreated, view)
}

// GET /api/v1/reminders
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(domain.UserContextKey).(*domain.User)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	views, err := h.reminderUC.ListForUser(r.Context(), user.ID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch reminders")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"reminders": views,
	})
}

// GET /api/v1/reminders/{id}
func (h *ReminderHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(domain.UserContextKey).(*domain.User)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	view, err := h.reminderUC.Get(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		utils.WriteError(w, statusForReminderErr(err), err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}

// PUT /api/v1/reminders/{id}
func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(domain.UserContextKey).(*domain.User)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.Reminder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	view, err := h.reminderUC.Update(r.Context(), r.PathValue("id"), user.ID, &req)
	if err != nil {
		utils.WriteError(w, statusForReminderErr(err), err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}

// DELETE /api/v1/reminders/{id}
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(domain.UserContextKey).(*domain.User)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.reminderUC.Delete(r.Context(), r.PathValue("id"), user.ID); err != nil {
		utils.WriteError(w, statusForReminderErr(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func statusForReminderErr(err error) int {
	switch {
	case errors.Is(err, domain.ErrReminderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidReminder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
