package handlers

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/mfialho/dietlog-backend/internal/middleware"
	"github.com/mfialho/dietlog-backend/internal/models"
	"github.com/mfialho/dietlog-backend/internal/services"
	"github.com/mfialho/dietlog-backend/pkg/utils"
)

// UserHandler handles account registration and adherence metrics.
type UserHandler struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewUserHandler(db *sqlx.DB, log *logrus.Logger) *UserHandler {
	return &UserHandler{db: db, log: log}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. The e-mail must be unused and the password
// is stored only as a bcrypt hash; the plaintext is never echoed back.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Name == "" {
		writeMessage(w, http.StatusBadRequest, "name is required.")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid email address.")
		return
	}
	if len(req.Password) < 8 {
		writeMessage(w, http.StatusBadRequest, "Password must be at least 8 char long.")
		return
	}

	var existingID string
	err := h.db.QueryRow(h.db.Rebind(`SELECT id FROM users WHERE email = ?`), req.Email).Scan(&existingID)
	if err == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "E-mail already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		h.log.WithError(err).Error("failed to hash password")
		writeMessage(w, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	now := time.Now().UTC()
	_, err = h.db.Exec(h.db.Rebind(`
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`),
		uuid.NewString(), req.Name, req.Email, hash, now, now)
	if err != nil {
		h.log.WithError(err).Error("failed to insert user")
		writeMessage(w, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Metrics returns the caller's adherence summary. Meals are fetched ordered
// by datetime descending; the streak scan depends on that exact order.
func (h *UserHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var meals []models.Meal
	err := h.db.Select(&meals, h.db.Rebind(`
		SELECT * FROM meals WHERE user_id = ? ORDER BY datetime DESC`), userID)
	if err != nil {
		h.log.WithError(err).Error("failed to fetch meals for metrics")
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch metrics.")
		return
	}

	writeJSON(w, http.StatusOK, services.ComputeMetrics(meals))
}
