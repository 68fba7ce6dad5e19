package resumes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/shared/server/respond"
	"jobtrack-backend/resume/model"
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

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.POST("/resumes/upload", h.upload)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.delete)
	rg.POST("/resumes/:id/parse", h.parse)
	rg.GET("/resumes/:id/export", h.export)
}

type createRequest struct {
	Name           string               `json:"name"`
	IsMaster       bool                 `json:"isMaster"`
	MasterResumeID string               `json:"masterResumeId"`
	LatexContent   string               `json:"latexContent"`
	Content        *model.ResumeContent `json:"content"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec, err := h.Svc.Create(c.Request.Context(), CreateInput{
		Name:           req.Name,
		IsMaster:       req.IsMaster,
		MasterResumeID: req.MasterResumeID,
		LatexContent:   req.LatexContent,
		Content:        req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create resume", nil)
		}
		return
	}

	c.Set("resumeId", rec.ID)
	respond.Created(c, toResponse(rec))
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	rec, err := h.Svc.Upload(c.Request.Context(), c.PostForm("name"), fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", err.Error(), nil)
		}
		return
	}

	c.Set("resumeId", rec.ID)
	respond.Created(c, toResponse(rec))
}

func (h *Handler) list(c *gin.Context) {
	recs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}

	resp := make([]ResumeResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toResponse(rec))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	rec, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "failed to fetch resume")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rec))
}

type updateRequest struct {
	Name           *string              `json:"name"`
	IsMaster       *bool                `json:"isMaster"`
	MasterResumeID *string              `json:"masterResumeId"`
	LatexContent   *string              `json:"latexContent"`
	Content        *model.ResumeContent `json:"content"`
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec, err := h.Svc.Update(c.Request.Context(), id, UpdateInput{
		Name:           req.Name,
		IsMaster:       req.IsMaster,
		MasterResumeID: req.MasterResumeID,
		LatexContent:   req.LatexContent,
		Content:        req.Content,
	})
	if err != nil {
		h.respondError(c, err, "failed to update resume")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rec))
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "failed to delete resume")
		return
	}
	respond.NoContent(c)
}

func (h *Handler) parse(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	rec, err := h.Svc.Parse(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNoLatex) {
			respond.Error(c, http.StatusBadRequest, "no_latex", "resume has no latex source to parse", nil)
			return
		}
		h.respondError(c, err, "failed to parse resume")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rec))
}

func (h *Handler) export(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	body, name, err := h.Svc.Export(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "failed to export resume")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".tex"))
	c.Data(http.StatusOK, "application/x-tex", []byte(body))
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
