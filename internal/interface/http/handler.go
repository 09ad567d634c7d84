package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/itinerary-roaster/internal/domain/persona"
	"github.com/yanqian/itinerary-roaster/internal/domain/roast"
	"github.com/yanqian/itinerary-roaster/internal/infra/personaassets"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	roastSvc roast.Service
	catalog  *persona.Catalog
	assets   personaassets.Resolver
	logger   *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(roastSvc roast.Service, catalog *persona.Catalog, assets personaassets.Resolver, logger *slog.Logger) *Handler {
	return &Handler{
		roastSvc: roastSvc,
		catalog:  catalog,
		assets:   assets,
		logger:   logger.With("component", "http.handler"),
	}
}

type manualRoastRequest struct {
	Days      []roast.Day `json:"days"`
	PersonaID string      `json:"personaId"`
}

type sheetRoastRequest struct {
	SheetURL  string `json:"sheetUrl"`
	PersonaID string `json:"personaId"`
}

type voiceRoastRequest struct {
	Transcript string `json:"transcript"`
	PersonaID  string `json:"personaId"`
}

type personaView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// RoastManual roasts a day-by-day itinerary.
func (h *Handler) RoastManual(c *gin.Context) {
	var req manualRoastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	h.roast(c, roast.Request{Input: roast.ManualInput(req.Days), PersonaID: req.PersonaID})
}

// RoastSheet roasts a published spreadsheet.
func (h *Handler) RoastSheet(c *gin.Context) {
	var req sheetRoastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	h.roast(c, roast.Request{Input: roast.SheetInput(req.SheetURL), PersonaID: req.PersonaID})
}

// RoastVoice roasts a dictated transcript.
func (h *Handler) RoastVoice(c *gin.Context) {
	var req voiceRoastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	h.roast(c, roast.Request{Input: roast.VoiceInput(req.Transcript), PersonaID: req.PersonaID})
}

// Failures keep the roast result shape so the UI can show the message as is.
func (h *Handler) roast(c *gin.Context, req roast.Request) {
	result, err := h.roastSvc.Roast(c.Request.Context(), req)
	if err != nil {
		c.JSON(roastStatus(result.Code), result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListPersonas returns the persona carousel in catalog order.
func (h *Handler) ListPersonas(c *gin.Context) {
	ctx := c.Request.Context()
	personas := h.catalog.List()
	views := make([]personaView, 0, len(personas))
	for _, p := range personas {
		views = append(views, personaView{
			ID:          p.ID,
			Name:        p.DisplayName,
			Description: p.Description,
			ImageURL:    h.assets.Resolve(ctx, p.ImageRef),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"personas":  views,
		"defaultId": h.catalog.Default().ID,
	})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
