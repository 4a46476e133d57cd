package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/haoyu/ai-notebook/internal/api/middleware"
	"github.com/haoyu/ai-notebook/internal/domain"
	"github.com/haoyu/ai-notebook/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type UpdatePreferencesRequest struct {
	PomodoroWorkDuration       *int `json:"pomodoro_work_duration"`
	PomodoroShortBreakDuration *int `json:"pomodoro_short_break_duration"`
	PomodoroLongBreakDuration  *int `json:"pomodoro_long_break_duration"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// Duplicates report 400 rather than 409 to keep the API contract
		// existing clients rely on.
		if errors.Is(err, domain.ErrUsernameTaken) {
			respondError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		if errors.Is(err, domain.ErrEmailTaken) {
			respondError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Printf("ERROR [auth.Register] registration failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("INFO [auth.Register] new user registered: %s", user.Username)
	respondJSON(w, http.StatusCreated, map[string]string{"message": "Registration successful, please log in"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("ERROR [auth.Login] login failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		User:  toUserResponse(result.User),
		Token: result.Token,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]UserResponse{"user": toUserResponse(user)})
}

func (h *AuthHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.UpdatePreferences(r.Context(), userID, service.PreferencesInput{
		PomodoroWorkDuration:       req.PomodoroWorkDuration,
		PomodoroShortBreakDuration: req.PomodoroShortBreakDuration,
		PomodoroLongBreakDuration:  req.PomodoroLongBreakDuration,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDuration) {
			respondError(w, http.StatusBadRequest, "Durations must be positive numbers of minutes")
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [auth.UpdatePreferences] update failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]UserResponse{"user": toUserResponse(user)})
}

func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.authService.DeleteAccount(r.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [auth.DeleteAccount] delete failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("INFO [auth.DeleteAccount] account deleted: %s", userID)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Account deleted"})
}
