package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/flowgate/flowgate/internal/api/response"
	"github.com/flowgate/flowgate/internal/api/validation"
	"github.com/flowgate/flowgate/internal/user"
)

type changePasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// userResponse is the read projection. There is deliberately no field for
// the password hash, so no code path can leak it.
type userResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Role       string  `json:"role"`
	RoleSlug   string  `json:"roleSlug"`
	Disabled   bool    `json:"disabled"`
	MFAEnabled bool    `json:"mfaEnabled"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

type listUsersBody struct {
	Success bool           `json:"success"`
	Users   []userResponse `json:"users"`
	Count   int            `json:"count"`
}

type getUserBody struct {
	Success bool         `json:"success"`
	User    userResponse `json:"user"`
}

type changePasswordBody struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    user.Ref `json:"user"`
}

// UserHandler handles the /api/users endpoints.
type UserHandler struct {
	service *user.Service
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		response.Fail(w, response.KindDatabase, err.Error())
		return
	}

	items := make([]userResponse, 0, len(users))
	for i := range users {
		items = append(items, toUserResponse(&users[i]))
	}

	response.Success(w, listUsersBody{
		Success: true,
		Users:   items,
		Count:   len(items),
	})
}

// GetByEmail handles GET /api/users/{email}. Matching is exact and
// case-sensitive, as stored.
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	// chi hands back the raw path segment; accept percent-encoded
	// emails too. An undecodable segment is used as-is.
	email := chi.URLParam(r, "email")
	if decoded, err := url.PathUnescape(email); err == nil {
		email = decoded
	}

	u, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Fail(w, response.KindNotFound, "User not found")
			return
		}
		slog.Error("failed to get user", "error", err, "email", email)
		response.Fail(w, response.KindDatabase, err.Error())
		return
	}

	response.Success(w, getUserBody{
		Success: true,
		User:    toUserResponse(u),
	})
}

// ChangePassword handles POST /api/users/change-password.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req changePasswordRequest
	// A body that does not decode supplies neither required field, so it
	// falls through to the same validation failure.
	_ = json.NewDecoder(r.Body).Decode(&req)

	if msg := validation.ValidateChangePasswordRequest(validation.ChangePasswordRequest{
		Email:       req.Email,
		NewPassword: req.NewPassword,
	}); msg != "" {
		response.Fail(w, response.KindBadRequest, msg)
		return
	}

	ref, err := h.service.ChangePassword(r.Context(), req.Email, req.NewPassword)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Fail(w, response.KindNotFound, "User not found")
			return
		}
		slog.Error("failed to change password", "error", err, "email", req.Email)
		response.Fail(w, response.KindServer, err.Error())
		return
	}

	response.Success(w, changePasswordBody{
		Success: true,
		Message: "Password changed successfully",
		User:    *ref,
	})
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       u.Role,
		RoleSlug:   u.RoleSlug,
		Disabled:   u.Disabled,
		MFAEnabled: u.MFAEnabled,
		CreatedAt:  u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
