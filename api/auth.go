package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/centralbjl/directory/internal/profile"
	"github.com/centralbjl/directory/pkg/models"
	"github.com/centralbjl/directory/pkg/repository"
)

type AuthHandler struct {
	accountRepo         repository.AccountRepo
	profiles            *profile.Service
	jwtSecret           string
	tokenDuration       time.Duration
	requireConfirmation bool
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ar repository.AccountRepo, ps *profile.Service, jwtSecret string, tokenDuration time.Duration, requireConfirmation bool) *AuthHandler {
	return &AuthHandler{
		accountRepo:         ar,
		profiles:            ps,
		jwtSecret:           jwtSecret,
		tokenDuration:       tokenDuration,
		requireConfirmation: requireConfirmation,
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token   string          `json:"token,omitempty"`
	Profile *models.Profile `json:"profile,omitempty"`
	Message string          `json:"message,omitempty"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &models.ValidationError{Fields: []string{"body: invalid json"}})
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	var missing []string
	if req.Email == "" {
		missing = append(missing, "email: required")
	}
	if len(req.Password) < 6 {
		missing = append(missing, "password: must be at least 6 characters")
	}
	if len(missing) > 0 {
		writeError(w, &models.ValidationError{Fields: missing})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()

	account := models.Account{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Confirmed:    !h.requireConfirmation,
	}
	if err := h.accountRepo.CreateAccount(ctx, &account); err != nil {
		writeError(w, err)
		return
	}

	// The profile row is created eagerly here; EnsureProfile still covers any
	// identity whose row went missing later.
	p, err := h.profiles.Create(ctx, account.ID, req.Name)
	if err != nil {
		logger.Error("create profile", slog.String("id", account.ID), slog.Any("err", err))
		writeError(w, err)
		return
	}

	if h.requireConfirmation {
		writeJSON(w, authResponse{Message: "confirmation required"}, http.StatusCreated)
		return
	}

	tokenStr, err := h.issueToken(account.ID, account.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, authResponse{Token: tokenStr, Profile: p}, http.StatusCreated)
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &models.ValidationError{Fields: []string{"body: invalid json"}})
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		writeError(w, models.ErrInvalidCredentials)
		return
	}

	ctx := r.Context()

	account, err := h.accountRepo.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	if account == nil {
		writeError(w, models.ErrInvalidCredentials)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, models.ErrInvalidCredentials)
		return
	}

	if h.requireConfirmation && !account.Confirmed {
		writeError(w, models.ErrConfirmationRequired)
		return
	}

	p, err := h.profiles.EnsureProfile(ctx, account.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	tokenStr, err := h.issueToken(account.ID, account.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, authResponse{Token: tokenStr, Profile: p}, http.StatusOK)
}

func (h *AuthHandler) Signout(w http.ResponseWriter, r *http.Request) {
	// For stateless JWT, signout is client-side (just delete token)
	writeJSON(w, authResponse{Message: "signed out"}, http.StatusOK)
}

// Me returns the authenticated caller's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	p := ProfileFromContext(r.Context())
	if p == nil {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	writeJSON(w, p, http.StatusOK)
}

// Confirm marks an account as confirmed. In a full deployment the id would
// arrive inside a signed email link; the handler only covers the final step.
func (h *AuthHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeError(w, &models.ValidationError{Fields: []string{"id: required"}})
		return
	}

	if err := h.accountRepo.ConfirmAccount(r.Context(), req.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, authResponse{Message: "confirmed"}, http.StatusOK)
}

func (h *AuthHandler) issueToken(id, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   id,
		"email": email,
		"exp":   time.Now().Add(h.tokenDuration).Unix(),
	})

	return token.SignedString([]byte(h.jwtSecret))
}
