package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/HarshDhiman001/site-plus/internal/auth"
	"github.com/HarshDhiman001/site-plus/internal/models"
	"github.com/HarshDhiman001/site-plus/internal/storage"
)

const minPasswordLen = 8

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is returned by both register and login.
type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register handles POST /api/auth/register. It creates the user and returns
// a session token, so registration doubles as the first login.
func Register(store *storage.Store, tokens *auth.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body registerRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		body.Email = strings.ToLower(strings.TrimSpace(body.Email))
		if _, err := mail.ParseAddress(body.Email); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid email address")
			return
		}
		if len(body.Password) < minPasswordLen {
			writeError(w, http.StatusBadRequest, "Password must be at least 8 characters")
			return
		}

		hash, err := auth.HashPassword(body.Password)
		if err != nil {
			slog.Error("failed to hash password", "error", err)
			writeError(w, http.StatusInternalServerError, "Registration failed")
			return
		}

		user, err := store.CreateUser(ctx, body.Email, hash, strings.TrimSpace(body.DisplayName))
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				writeError(w, http.StatusConflict, "An account with this email already exists")
				return
			}
			slog.Error("failed to create user", "error", err)
			writeError(w, http.StatusInternalServerError, "Registration failed")
			return
		}

		token, err := tokens.GenerateToken(user)
		if err != nil {
			slog.Error("failed to generate token", "error", err)
			writeError(w, http.StatusInternalServerError, "Registration failed")
			return
		}

		writeJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
	}
}

// Login handles POST /api/auth/login. Unknown emails and wrong passwords
// both return the same 401 message.
func Login(store *storage.Store, tokens *auth.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body loginRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		body.Email = strings.ToLower(strings.TrimSpace(body.Email))

		user, err := store.GetUserByEmail(ctx, body.Email)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
				return
			}
			slog.Error("failed to look up user", "error", err)
			writeError(w, http.StatusInternalServerError, "Login failed")
			return
		}

		if !auth.CheckPassword(user.HashedPassword, body.Password) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		if err := store.TouchLastLogin(ctx, user.ID); err != nil {
			slog.Error("failed to update last login", "user_id", user.ID, "error", err)
		}

		token, err := tokens.GenerateToken(user)
		if err != nil {
			slog.Error("failed to generate token", "error", err)
			writeError(w, http.StatusInternalServerError, "Login failed")
			return
		}

		writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
	}
}
