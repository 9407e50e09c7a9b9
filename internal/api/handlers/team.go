package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"duty-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /team
// @Summary Create a new team
// @Description Create a new team with a unique name
// @Tags team
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team "Successfully created team"
// @Failure 400 {object} ErrorResponse "Team name is required"
// @Failure 409 {object} ErrorResponse "Team with this name already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /team [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /team
// @Summary List all teams
// @Description Get all teams, newest first
// @Tags team
// @Produce json
// @Success 200 {array} models.Team "Successfully retrieved teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /team [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.FindAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /team/:id
// @Summary Get team by ID
// @Description Get a specific team by its numeric ID
// @Tags team
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.Team "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /team/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, err := h.teamService.FindOne(teamID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PUT /team/:id
// @Summary Update a team
// @Description Apply a partial update; omitted fields keep their stored values
// @Tags team
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body service.UpdateTeamRequest true "Fields to change"
// @Success 200 {object} models.Team "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid team ID or empty update"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Team with this name already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /team/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var req service.UpdateTeamRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.Update(teamID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /team/:id
// @Summary Delete a team
// @Description Delete a team by its numeric ID
// @Tags team
// @Param id path int true "Team ID"
// @Success 204 "Team deleted"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /team/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	if err := h.teamService.Remove(teamID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// teamID parses the :id path segment; parse failures yield 0 so the service rejects them.
// gin requires one wildcard name per segment, so update and delete share :id with get.
func teamID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// bindOptionalJSON binds the JSON body into obj; a missing or empty body leaves
// obj at its zero value so the service reports the precise validation error.
func bindOptionalJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
