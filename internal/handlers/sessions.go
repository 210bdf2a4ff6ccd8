package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/mfialho/dietlog-backend/internal/middleware"
	"github.com/mfialho/dietlog-backend/internal/models"
	"github.com/mfialho/dietlog-backend/pkg/utils"
)

// identityCookieMaxAge is 7 days. The cookie is the whole session: the
// server keeps no record of it and never revokes it.
const identityCookieMaxAge = 7 * 24 * 60 * 60

// SessionHandler authenticates accounts and issues the identity cookie.
type SessionHandler struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewSessionHandler(db *sqlx.DB, log *logrus.Logger) *SessionHandler {
	return &SessionHandler{db: db, log: log}
}

type createSessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Create verifies e-mail and password and binds the identity cookie to the
// matched user. Failures share one generic message so callers cannot probe
// which part was wrong. When the request already carries a cookie for the
// same user, no new cookie is issued.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
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

	var user models.User
	err := h.db.Get(&user, h.db.Rebind(`SELECT * FROM users WHERE email = ?`), req.Email)
	if errors.Is(err, sql.ErrNoRows) {
		writeMessage(w, http.StatusBadRequest, "Invalid e-mail or password.")
		return
	}
	if err != nil {
		h.log.WithError(err).Error("failed to look up user")
		writeMessage(w, http.StatusInternalServerError, "Failed to authenticate.")
		return
	}

	if !utils.VerifyPassword(req.Password, user.PasswordHash) {
		writeMessage(w, http.StatusBadRequest, "Invalid e-mail or password.")
		return
	}

	current, _ := r.Cookie(middleware.IdentityCookie)
	if current == nil || current.Value != user.ID {
		http.SetCookie(w, &http.Cookie{
			Name:   middleware.IdentityCookie,
			Value:  user.ID,
			Path:   "/",
			MaxAge: identityCookieMaxAge,
		})
	}

	w.WriteHeader(http.StatusCreated)
}
