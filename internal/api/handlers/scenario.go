package handlers

import (
	"fmt"
	"log"
	"net/http"

	"energy-package-roi/internal/api/models"
	"energy-package-roi/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScenarioHandler manages saved scenarios. Only inputs are stored; simulating
// a saved scenario always recomputes.
type ScenarioHandler struct {
	store  store.Store
	runner *Runner
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(s store.Store, runner *Runner) *ScenarioHandler {
	return &ScenarioHandler{store: s, runner: runner}
}

// Create handles POST /api/v1/scenarios
func (h *ScenarioHandler) Create(c *gin.Context) {
	h.save(c, uuid.Nil, http.StatusCreated)
}

// Update handles PUT /api/v1/scenarios/:id
func (h *ScenarioHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.store.Get(c.Request.Context(), id); err != nil {
		writeError(c, "ScenarioHandler", err)
		return
	}
	h.save(c, id, http.StatusOK)
}

func (h *ScenarioHandler) save(c *gin.Context, id uuid.UUID, status int) {
	var req models.SaveScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if _, err := h.runner.Inputs(req.Scenario); err != nil {
		writeError(c, "ScenarioHandler", err)
		return
	}

	s := &store.Scenario{ID: id, Name: req.Name, Config: req.Scenario}
	if err := h.store.Save(c.Request.Context(), s); err != nil {
		writeError(c, "ScenarioHandler", err)
		return
	}
	log.Printf("ScenarioHandler: saved scenario %s (%s)", s.ID, s.Name)
	c.JSON(status, toInfo(s))
}

// List handles GET /api/v1/scenarios
func (h *ScenarioHandler) List(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		writeError(c, "ScenarioHandler", err)
		return
	}
	out := make([]models.ScenarioInfo, 0, len(list))
	for i := range list {
		out = append(out, toInfo(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": out})
}

// Get handles GET /api/v1/scenarios/:id
func (h *ScenarioHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, "ScenarioHandler", err)
		return
	}
	c.JSON(http.StatusOK, toInfo(s))
}

// Delete handles DELETE /api/v1/scenarios/:id
func (h *ScenarioHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		writeError(c, "ScenarioHandler", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Simulate handles POST /api/v1/scenarios/:id/simulate. The body is optional
// and carries SimulateOptions.
func (h *ScenarioHandler) Simulate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var opts models.SimulateOptions
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&opts); err != nil {
			badRequest(c, err)
			return
		}
	}

	s, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, "ScenarioHandler", err)
		return
	}
	body, hit, err := h.runner.RunJSON(c.Request.Context(), s.Config, opts)
	if err != nil {
		writeError(c, "ScenarioHandler", err)
		return
	}
	writeCached(c, body, hit)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, fmt.Errorf("invalid scenario id %q", c.Param("id")))
		return uuid.Nil, false
	}
	return id, true
}

func toInfo(s *store.Scenario) models.ScenarioInfo {
	return models.ScenarioInfo{
		ID:        s.ID.String(),
		Name:      s.Name,
		Scenario:  s.Config,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
