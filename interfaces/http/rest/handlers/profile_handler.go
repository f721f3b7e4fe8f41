// Package handlers implements the REST endpoints.
package handlers

import (
	"net/http"

	"korabo/application/services"
	"korabo/domain/user"
	"korabo/pkg/auth"
	"korabo/pkg/common"
	apperrors "korabo/pkg/errors"
	"korabo/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// ProfileHandler serves the profile endpoints
type ProfileHandler struct {
	service *services.ProfileService
	logger  *zap.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service *services.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger,
	}
}

// GetMyProfile handles GET /users/me/profile. A missing profile is not an
// error for the owner: registration processing may still be in flight, so
// the handler answers 202 until the profile materializes.
func (h *ProfileHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userCtx := auth.GetUserFromContext(r.Context())
	if userCtx == nil {
		common.RespondError(w, http.StatusUnauthorized, string(apperrors.ErrorTypeUnauthorized), "Authentication required")
		return
	}

	profile, err := h.service.GetOwnProfile(r.Context(), userCtx.UserID)
	if err != nil {
		h.logger.Error("Failed to get profile",
			zap.Error(err),
			zap.String("userID", userCtx.UserID),
		)
		common.RespondAppError(w, err)
		return
	}

	if profile == nil {
		common.RespondJSON(w, http.StatusAccepted, map[string]string{
			"status": "pending",
		})
		return
	}

	common.RespondJSON(w, http.StatusOK, profile)
}

// UpdateMyProfile handles PATCH /users/me/profile
func (h *ProfileHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	userCtx := auth.GetUserFromContext(r.Context())
	if userCtx == nil {
		common.RespondError(w, http.StatusUnauthorized, string(apperrors.ErrorTypeUnauthorized), "Authentication required")
		return
	}

	var req user.UpdateProfileRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), err.Error())
		return
	}

	if err := h.service.UpdateProfile(r.Context(), userCtx.UserID, req); err != nil {
		// The update is conditional on the profile row existing.
		if apperrors.IsConditionalCheck(err) {
			common.RespondError(w, http.StatusNotFound, string(apperrors.ErrorTypeNotFound), "Profile not found")
			return
		}
		h.logger.Error("Failed to update profile",
			zap.Error(err),
			zap.String("userID", userCtx.UserID),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"status": "updated",
	})
}

// GetUserProfile handles GET /users/{userID}/profile. The response is the
// privacy-filtered public view; unknown users answer 404.
func (h *ProfileHandler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		common.RespondError(w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), "Missing user ID")
		return
	}

	profile, err := h.service.GetPublicProfile(r.Context(), userID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			h.logger.Error("Failed to get public profile",
				zap.Error(err),
				zap.String("userID", userID),
			)
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, profile)
}
