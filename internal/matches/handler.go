package matches

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"matcher-backend/internal/extract"
	"matcher-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches matching routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/match", h.compute)
	rg.POST("/match/file", h.computeFromFile)
	rg.GET("/match/history", h.history)
	rg.GET("/match/:id", h.get)
}

type matchRequest struct {
	CandidateName string `json:"candidate_name"`
	ResumeText    string `json:"resume_text"`
	JobTitle      string `json:"job_title"`
	JobText       string `json:"job_text"`
}

func (h *Handler) compute(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	m, err := h.Svc.Compute(c.Request.Context(), req.CandidateName, req.ResumeText, req.JobTitle, req.JobText)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute match", nil)
		}
		return
	}

	c.Set("matchId", m.ID)
	respond.Created(c, toResponse(m))
}

func (h *Handler) computeFromFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read resume file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read resume file", nil)
		return
	}

	m, err := h.Svc.ComputeFromUpload(
		c.Request.Context(),
		c.PostForm("candidate_name"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
		c.PostForm("job_title"),
		c.PostForm("job_text"),
	)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported resume file type", nil)
		case errors.Is(err, ErrExtractionFailed):
			respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", err.Error(), nil)
		case errors.Is(err, ErrMissingInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute match", nil)
		}
		return
	}

	c.Set("matchId", m.ID)
	respond.Created(c, toResponse(m))
}

func (h *Handler) get(c *gin.Context) {
	m, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "match not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch match", nil)
		}
		return
	}
	respond.OK(c, toResponse(m))
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
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list matches", nil)
		return
	}

	resp := make([]matchResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, toResponse(m))
	}
	respond.OK(c, resp)
}
