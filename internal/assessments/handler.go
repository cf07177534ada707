package assessments

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orensade/Intub/internal/analyzer"
	"github.com/orensade/Intub/internal/shared/server/respond"
)

// Handler wires the analyze endpoints to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches analyze routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.POST("/analyze/mock", h.analyzeDemo)
}

func (h *Handler) analyze(c *gin.Context) {
	h.handle(c, h.Svc.Analyze)
}

func (h *Handler) analyzeDemo(c *gin.Context) {
	h.handle(c, h.Svc.AnalyzeDemo)
}

func (h *Handler) handle(c *gin.Context, run func(context.Context, []analyzer.Image) (Outcome, error)) {
	images, err := h.readImages(c)
	if err != nil {
		var verr validationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusBadRequest, "validation_error", verr.Error(), nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read uploaded images", nil)
		return
	}

	outcome, err := run(c.Request.Context(), images)
	if err != nil {
		var netErr *analyzer.NetworkError
		if errors.As(err, &netErr) {
			respond.Error(c, http.StatusBadGateway, "analyzer_unavailable", netErr.Message, nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Analysis failed", nil)
		return
	}

	c.Set("historyId", outcome.HistoryID)
	c.Set("riskCategory", outcome.Result.RiskCategory)

	respond.OK(c, gin.H{
		"score":           outcome.Result.Score,
		"risk_category":   outcome.Result.RiskCategory,
		"concerns":        outcome.Result.Concerns,
		"images_analyzed": outcome.Result.ImagesAnalyzed,
		"history_id":      outcome.HistoryID,
		"recommendations": outcome.Recommendations,
		"explanations":    outcome.Explanations,
	})
}

// readImages parses the multipart form and loads the validated image set
// into memory for the analyzer and thumbnail deriver.
func (h *Handler) readImages(c *gin.Context) ([]analyzer.Image, error) {
	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, validationError("No images provided")
	}
	files, err := validateImages(form.File["images"])
	if err != nil {
		return nil, err
	}

	images := make([]analyzer.Image, 0, len(files))
	for _, header := range files {
		data, err := readFile(header)
		if err != nil {
			return nil, err
		}
		images = append(images, analyzer.Image{Filename: header.Filename, Data: data})
	}
	return images, nil
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
