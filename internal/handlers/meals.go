package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/mfialho/dietlog-backend/internal/middleware"
	"github.com/mfialho/dietlog-backend/internal/models"
	"github.com/mfialho/dietlog-backend/pkg/utils"
)

// MealHandler owns the meal lifecycle: creation with date+time composition,
// listing, lookup, partial-update merge and deletion. Lookups take only the
// meal id; records are not checked against the caller's identity.
type MealHandler struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewMealHandler(db *sqlx.DB, log *logrus.Logger) *MealHandler {
	return &MealHandler{db: db, log: log}
}

type createMealRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	IsOnDiet    *bool   `json:"isOnDiet"`
}

type updateMealRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	IsOnDiet    *bool   `json:"isOnDiet"`
}

// mealID extracts and validates the {mealId} path parameter.
func mealID(r *http.Request) (string, bool) {
	id := chi.URLParam(r, "mealId")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// Create logs a new meal for the caller. Date and time arrive as separate
// fields and are composed into a single naive timestamp before persisting.
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Name == "" {
		writeMessage(w, http.StatusBadRequest, "Please provide a name.")
		return
	}
	if !utils.IsValidDate(req.Date) {
		writeMessage(w, http.StatusBadRequest, "Provide a valid date format.")
		return
	}
	if !utils.IsValidTime(req.Time) {
		writeMessage(w, http.StatusBadRequest, "Time must be in HH:MM format.")
		return
	}
	if req.IsOnDiet == nil {
		writeMessage(w, http.StatusBadRequest, "isOnDiet is required.")
		return
	}

	datetime, err := utils.ComposeDateTime(req.Date, req.Time)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Provide a valid date format.")
		return
	}

	userID := middleware.UserID(r.Context())
	now := time.Now().UTC()
	_, err = h.db.Exec(h.db.Rebind(`
		INSERT INTO meals (id, name, description, datetime, is_on_diet, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		uuid.NewString(), req.Name, req.Description, datetime, *req.IsOnDiet, userID, now, now)
	if err != nil {
		h.log.WithError(err).Error("failed to insert meal")
		writeMessage(w, http.StatusInternalServerError, "Failed to create meal.")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// List returns every meal owned by the caller, in natural storage order.
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	meals := []models.Meal{}
	err := h.db.Select(&meals, h.db.Rebind(`SELECT * FROM meals WHERE user_id = ?`), userID)
	if err != nil {
		h.log.WithError(err).Error("failed to list meals")
		writeMessage(w, http.StatusInternalServerError, "Failed to list meals.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"mealsList": meals})
}

// Get returns a meal by id. Any authenticated caller may read any meal.
func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := mealID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid meal id.")
		return
	}

	var meal models.Meal
	err := h.db.Get(&meal, h.db.Rebind(`SELECT * FROM meals WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		writeMessage(w, http.StatusNotFound, "Meal not found")
		return
	}
	if err != nil {
		h.log.WithError(err).Error("failed to fetch meal")
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch meal.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"meal": meal})
}

// Update merges the supplied fields into the stored meal. The temporal pair
// is merged three ways: a new date keeps the stored time-of-day, a new time
// keeps the stored date, and both together recompose from scratch. The
// read-then-write pair is not transactional; concurrent updates to the same
// meal are last-write-wins.
func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := mealID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid meal id.")
		return
	}

	var meal models.Meal
	err := h.db.Get(&meal, h.db.Rebind(`SELECT * FROM meals WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		// Update reports the missing record as a client error, unlike the
		// 404 on the read path.
		writeMessage(w, http.StatusBadRequest, "Meal not found.")
		return
	}
	if err != nil {
		h.log.WithError(err).Error("failed to fetch meal for update")
		writeMessage(w, http.StatusInternalServerError, "Failed to update meal.")
		return
	}

	var req updateMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Date != nil && !utils.IsValidDate(*req.Date) {
		writeMessage(w, http.StatusBadRequest, "Provide a valid date format.")
		return
	}
	if req.Time != nil && !utils.IsValidTime(*req.Time) {
		writeMessage(w, http.StatusBadRequest, "Time must be in HH:MM format.")
		return
	}

	datetime := meal.Datetime
	switch {
	case req.Date != nil && req.Time == nil:
		datetime, err = utils.ComposeDateTime(*req.Date, utils.FormatTime(meal.Datetime))
	case req.Date == nil && req.Time != nil:
		datetime, err = utils.ComposeDateTime(utils.FormatDate(meal.Datetime), *req.Time)
	case req.Date != nil && req.Time != nil:
		datetime, err = utils.ComposeDateTime(*req.Date, *req.Time)
	}
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Provide a valid date format.")
		return
	}

	name := meal.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := meal.Description
	if req.Description != nil {
		description = req.Description
	}
	isOnDiet := meal.IsOnDiet
	if req.IsOnDiet != nil {
		isOnDiet = *req.IsOnDiet
	}

	_, err = h.db.Exec(h.db.Rebind(`
		UPDATE meals SET name = ?, description = ?, datetime = ?, is_on_diet = ?, updated_at = ?
		WHERE id = ?`),
		name, description, datetime, isOnDiet, time.Now().UTC(), id)
	if err != nil {
		h.log.WithError(err).Error("failed to update meal")
		writeMessage(w, http.StatusInternalServerError, "Failed to update meal.")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Delete removes a meal by id. Deleting an id that no longer exists still
// succeeds; delete is idempotent.
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := mealID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid meal id.")
		return
	}

	if _, err := h.db.Exec(h.db.Rebind(`DELETE FROM meals WHERE id = ?`), id); err != nil {
		h.log.WithError(err).Error("failed to delete meal")
		writeMessage(w, http.StatusInternalServerError, "Failed to delete meal.")
		return
	}

	w.WriteHeader(http.StatusOK)
}
