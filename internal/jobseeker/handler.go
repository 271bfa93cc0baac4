package jobseeker

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"matcher-backend/internal/profile"
	"matcher-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job-seeker routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profile", h.createProfile)
	rg.GET("/profile/latest", h.latestProfile)
	rg.GET("/profile/:id", h.getProfile)
	rg.PUT("/profile/:id", h.updateProfile)
	rg.POST("/analyze", h.analyze)
	rg.GET("/history", h.history)
	rg.POST("/generate", h.generate)
	rg.GET("/generate/:id", h.getGenerated)
	rg.POST("/generate/:id/export", h.export)
}

func (h *Handler) createProfile(c *gin.Context) {
	var p profile.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec, err := h.Svc.SaveProfile(c.Request.Context(), p)
	if err != nil {
		if verr, ok := IsValidationError(err); ok {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid profile", verr.Issues)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		return
	}
	respond.Created(c, toProfileResponse(rec))
}

func (h *Handler) updateProfile(c *gin.Context) {
	var p profile.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec, err := h.Svc.UpdateProfile(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		if verr, ok := IsValidationError(err); ok {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid profile", verr.Issues)
			return
		}
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update profile", nil)
		return
	}
	respond.OK(c, toProfileResponse(rec))
}

func (h *Handler) getProfile(c *gin.Context) {
	rec, err := h.Svc.Profile(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		return
	}
	respond.OK(c, toProfileResponse(rec))
}

func (h *Handler) latestProfile(c *gin.Context) {
	rec, err := h.Svc.Profile(c.Request.Context(), "")
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no profiles stored", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		return
	}
	respond.OK(c, toProfileResponse(rec))
}

type analyzeRequest struct {
	ProfileID string `json:"profile_id"`
	JobText   string `json:"job_text"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	a, err := h.Svc.Analyze(c.Request.Context(), req.ProfileID, req.JobText)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingJobText):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze job description", nil)
		}
		return
	}

	c.Set("analysisId", a.ID)
	respond.Created(c, toAnalysisResponse(a))
}

type generateRequest struct {
	ProfileID  string `json:"profile_id"`
	AnalysisID string `json:"analysis_id"`
	JobText    string `json:"job_text"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	gen, err := h.Svc.Generate(c.Request.Context(), req.ProfileID, req.AnalysisID, req.JobText)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "profile or analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate resume", nil)
		}
		return
	}

	c.Set("generatedResumeId", gen.ID)
	respond.Created(c, toGeneratedResponse(gen))
}

func (h *Handler) getGenerated(c *gin.Context) {
	gen, err := h.Svc.Generated(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "generated resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch generated resume", nil)
		return
	}
	respond.OK(c, toGeneratedResponse(gen))
}

func (h *Handler) export(c *gin.Context) {
	key, err := h.Svc.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "generated resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export resume", nil)
		return
	}
	respond.OK(c, gin.H{"exportKey": key})
}

func (h *Handler) history(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	list, err := h.Svc.History(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}

	resp := make([]analysisResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, toAnalysisResponse(a))
	}
	respond.OK(c, resp)
}
