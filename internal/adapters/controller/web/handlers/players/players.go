package players

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Badsnus/golf-stats/internal/domain/common/errorz"
	"github.com/Badsnus/golf-stats/internal/domain/dto"
	"github.com/Badsnus/golf-stats/pkg/logger/types"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type statsService interface {
	Summaries(ctx context.Context) ([]dto.PlayerSummary, error)
	Report(ctx context.Context, memberID uint) (*dto.PlayerReport, error)
}

type Handler struct {
	stats  statsService
	export func(report *dto.PlayerReport) (*bytes.Buffer, error)
	logger *types.Logger
}

func New(stats statsService, export func(*dto.PlayerReport) (*bytes.Buffer, error), logger *types.Logger) *Handler {
	return &Handler{
		stats:  stats,
		export: export,
		logger: logger,
	}
}

// Setup registers the player pages and their JSON counterparts.
func (h Handler) Setup(r gin.IRouter) {
	r.GET("/", h.Index)
	r.GET("/players", h.List)
	r.GET("/player/:id", h.Detail)
	r.GET("/player/:id/export.xlsx", h.Export)

	api := r.Group("/api")
	api.GET("/players", h.APIList)
	api.GET("/players/:id", h.APIDetail)
}

func (h Handler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/players")
}

func (h Handler) List(c *gin.Context) {
	summaries, err := h.stats.Summaries(c.Request.Context())
	if err != nil {
		h.fail(c, err, false)
		return
	}
	c.HTML(http.StatusOK, "players.html", gin.H{"Players": summaries})
}

func (h Handler) Detail(c *gin.Context) {
	report, ok := h.report(c, false)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "player.html", gin.H{"Report": report})
}

func (h Handler) Export(c *gin.Context) {
	report, ok := h.report(c, false)
	if !ok {
		return
	}

	buf, err := h.export(report)
	if err != nil {
		h.fail(c, fmt.Errorf("failed to render report: %w", err), false)
		return
	}

	filename := fmt.Sprintf("player-%d.xlsx", report.Summary.MemberID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h Handler) APIList(c *gin.Context) {
	summaries, err := h.stats.Summaries(c.Request.Context())
	if err != nil {
		h.fail(c, err, true)
		return
	}
	if summaries == nil {
		summaries = []dto.PlayerSummary{}
	}
	c.JSON(http.StatusOK, summaries)
}

func (h Handler) APIDetail(c *gin.Context) {
	report, ok := h.report(c, true)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report)
}

// report loads the report of the :id member; malformed and unknown ids are both not found.
func (h Handler) report(c *gin.Context, api bool) (*dto.PlayerReport, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 || uint64(uint(id)) != id {
		h.fail(c, fmt.Errorf("%w: malformed member id %q", errorz.ErrNotFound, c.Param("id")), api)
		return nil, false
	}

	report, err := h.stats.Report(c.Request.Context(), uint(id))
	if err != nil {
		h.fail(c, err, api)
		return nil, false
	}
	return report, true
}

func (h Handler) fail(c *gin.Context, err error, api bool) {
	status := http.StatusInternalServerError
	message := "internal server error"
	if errors.Is(err, errorz.ErrNotFound) {
		status = http.StatusNotFound
		message = "player not found"
	} else {
		h.logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		_ = c.Error(err)
	}

	c.Abort()
	if api {
		c.JSON(status, gin.H{"error": message})
		return
	}
	c.String(status, message)
}
