package handlers

import (
	"net/http"

	"korabo/application/services"
	"korabo/pkg/auth"
	"korabo/pkg/common"
	apperrors "korabo/pkg/errors"
	"korabo/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CourseHandler serves the enrollment endpoints
type CourseHandler struct {
	service *services.ProfileService
	logger  *zap.Logger
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(service *services.ProfileService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service: service,
		logger:  logger,
	}
}

type addCourseRequest struct {
	CourseID string `json:"course_id" validate:"required,max=64"`
}

// GetMyCourses handles GET /users/me/courses
func (h *CourseHandler) GetMyCourses(w http.ResponseWriter, r *http.Request) {
	userCtx := auth.GetUserFromContext(r.Context())
	if userCtx == nil {
		common.RespondError(w, http.StatusUnauthorized, string(apperrors.ErrorTypeUnauthorized), "Authentication required")
		return
	}

	courses, err := h.service.GetCourses(r.Context(), userCtx.UserID)
	if err != nil {
		h.logger.Error("Failed to list courses",
			zap.Error(err),
			zap.String("userID", userCtx.UserID),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string][]string{
		"courses": courses,
	})
}

// AddCourse handles POST /users/me/courses. Re-adding a course the user
// already has answers 409.
func (h *CourseHandler) AddCourse(w http.ResponseWriter, r *http.Request) {
	userCtx := auth.GetUserFromContext(r.Context())
	if userCtx == nil {
		common.RespondError(w, http.StatusUnauthorized, string(apperrors.ErrorTypeUnauthorized), "Authentication required")
		return
	}

	var req addCourseRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), err.Error())
		return
	}

	if err := h.service.AddCourse(r.Context(), userCtx.UserID, req.CourseID); err != nil {
		if !apperrors.IsValidation(err) && !apperrors.IsConditionalCheck(err) {
			h.logger.Error("Failed to add course",
				zap.Error(err),
				zap.String("userID", userCtx.UserID),
			)
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]string{
		"status": "added",
	})
}

// RemoveCourse handles DELETE /users/me/courses/{courseID}. Removing a
// course the user never added answers 404.
func (h *CourseHandler) RemoveCourse(w http.ResponseWriter, r *http.Request) {
	userCtx := auth.GetUserFromContext(r.Context())
	if userCtx == nil {
		common.RespondError(w, http.StatusUnauthorized, string(apperrors.ErrorTypeUnauthorized), "Authentication required")
		return
	}

	courseID := chi.URLParam(r, "courseID")
	if courseID == "" {
		common.RespondError(w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), "Missing course ID")
		return
	}

	if err := h.service.RemoveCourse(r.Context(), userCtx.UserID, courseID); err != nil {
		if apperrors.IsConditionalCheck(err) {
			common.RespondError(w, http.StatusNotFound, string(apperrors.ErrorTypeNotFound), "Course not found")
			return
		}
		if !apperrors.IsValidation(err) {
			h.logger.Error("Failed to remove course",
				zap.Error(err),
				zap.String("userID", userCtx.UserID),
			)
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"status": "removed",
	})
}
