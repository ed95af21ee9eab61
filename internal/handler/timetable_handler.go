package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/edfast/edfast-backend/internal/middleware"
	"github.com/edfast/edfast-backend/internal/response"
	"github.com/edfast/edfast-backend/internal/service"
	"github.com/edfast/edfast-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TimetableHandler exposes timetable upload, browsing, and conflict checks.
type TimetableHandler struct {
	timetableService *service.TimetableService
}

// NewTimetableHandler creates a new TimetableHandler.
func NewTimetableHandler(timetableService *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableService: timetableService}
}

// Upload godoc
// POST /api/v1/timetables
// Accepts multipart "files" (or a single "file") and creates a timetable.
func (h *TimetableHandler) Upload(c *gin.Context) {
	claims := middleware.GetClaims(c)

	form, err := c.MultipartForm()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}
	if len(files) == 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}

	result, err := h.timetableService.Upload(c.Request.Context(), claims.UserID, files)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		case errors.Is(err, service.ErrNoUsableEntries):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrNoUsableEntries)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// List godoc
// GET /api/v1/timetables
// Lists the caller's timetables.
func (h *TimetableHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)

	timetables, err := h.timetableService.List(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"timetables": timetables})
}

// Get godoc
// GET /api/v1/timetables/:id?courses=CS101,MATH201&departments=CS
// Returns entries. With courses/departments query params the result is the
// filtered projection; without them, the full entry set.
func (h *TimetableHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, ok := parseTimetableID(c)
	if !ok {
		return
	}

	coursesParam, hasCourses := c.GetQuery("courses")
	departmentsParam, hasDepartments := c.GetQuery("departments")

	var entries interface{}
	var err error
	if hasCourses || hasDepartments {
		entries, err = h.timetableService.Filtered(c.Request.Context(), claims.UserID, id,
			splitParam(coursesParam), splitParam(departmentsParam))
	} else {
		entries, err = h.timetableService.Entries(c.Request.Context(), claims.UserID, id)
	}
	if err != nil {
		failTimetableErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"entries": entries})
}

// Courses godoc
// GET /api/v1/timetables/:id/courses
// Lists distinct course codes in the timetable.
func (h *TimetableHandler) Courses(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, ok := parseTimetableID(c)
	if !ok {
		return
	}

	courses, err := h.timetableService.Courses(c.Request.Context(), claims.UserID, id)
	if err != nil {
		failTimetableErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// Stats godoc
// GET /api/v1/timetables/:id/stats
func (h *TimetableHandler) Stats(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, ok := parseTimetableID(c)
	if !ok {
		return
	}

	stats, err := h.timetableService.Stats(c.Request.Context(), claims.UserID, id)
	if err != nil {
		failTimetableErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// SelectionRequest carries the course selection for conflict checks and
// schedule building.
type SelectionRequest struct {
	Courses []string `json:"courses" binding:"required,min=1,dive,min=1"`
}

// Conflicts godoc
// POST /api/v1/timetables/:id/conflicts
// Detects overlaps among the selected courses and recommends alternatives.
func (h *TimetableHandler) Conflicts(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, ok := parseTimetableID(c)
	if !ok {
		return
	}

	var req SelectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	report, err := h.timetableService.Conflicts(c.Request.Context(), claims.UserID, id, req.Courses)
	if err != nil {
		failTimetableErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, report)
}

// BuildSchedule godoc
// POST /api/v1/timetables/:id/schedule
// Builds a minimal-conflict personal schedule for the selected courses.
func (h *TimetableHandler) BuildSchedule(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, ok := parseTimetableID(c)
	if !ok {
		return
	}

	var req SelectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	built, err := h.timetableService.BuildSchedule(c.Request.Context(), claims.UserID, id, req.Courses)
	if err != nil {
		failTimetableErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"schedule": built})
}

// Delete godoc
// DELETE /api/v1/timetables/:id
func (h *TimetableHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, ok := parseTimetableID(c)
	if !ok {
		return
	}

	if err := h.timetableService.Delete(c.Request.Context(), claims.UserID, id); err != nil {
		failTimetableErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "timetable deleted"})
}

func parseTimetableID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

func failTimetableErr(c *gin.Context, err error) {
	if errors.Is(err, service.ErrTimetableNotFound) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}

// splitParam splits a comma-separated query value, dropping empty parts.
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
