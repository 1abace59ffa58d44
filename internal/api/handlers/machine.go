package handlers

import (
	"net/http"

	"worklink-backend/internal/auth"
	"worklink-backend/internal/database/models"
	"worklink-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MachineHandler handles HTTP requests for machines
type MachineHandler struct {
	machineService service.MachineServiceInterface
}

// NewMachineHandler creates a new machine handler
func NewMachineHandler(machineService service.MachineServiceInterface) *MachineHandler {
	return &MachineHandler{
		machineService: machineService,
	}
}

// ListMachines handles GET /machines
// @Summary List machines
// @Description List available machines, or the caller's own machines when mine=true and the caller is a manufacturer
// @Tags machines
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Number of items per page" default(10)
// @Param mine query bool false "List only the caller's own machines"
// @Success 200 {object} service.MachineListResponse "Successfully retrieved machines"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /machines [get]
func (h *MachineHandler) ListMachines(c *gin.Context) {
	page, limit := parsePageLimit(c)

	if c.Query("mine") == "true" {
		principalID, ok := auth.GetPrincipalID(c)
		role, roleOK := auth.GetRole(c)
		if !ok || !roleOK || role != models.RoleManufacturer {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only manufacturers own machines"})
			return
		}

		resp, err := h.machineService.ListMachinesByManufacturer(principalID, page, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.machineService.ListAvailableMachines(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateMachine handles POST /machines
// @Summary Create a machine
// @Description Create a new machine owned by the authenticated manufacturer
// @Tags machines
// @Accept json
// @Produce json
// @Param machine body service.CreateMachineRequest true "Machine data"
// @Success 201 {object} service.MachineResponse "Successfully created machine"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is not a manufacturer"
// @Security BearerAuth
// @Router /machines [post]
func (h *MachineHandler) CreateMachine(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	machine, err := h.machineService.CreateMachine(principalID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, machine)
}

// GetMachine handles GET /machines/:id
// @Summary Get machine by ID
// @Description Get a specific machine by its UUID
// @Tags machines
// @Accept json
// @Produce json
// @Param id path string true "Machine ID (UUID)"
// @Success 200 {object} service.MachineResponse "Successfully retrieved machine"
// @Failure 400 {object} ErrorResponse "Invalid machine ID"
// @Failure 404 {object} ErrorResponse "Machine not found"
// @Security BearerAuth
// @Router /machines/{id} [get]
func (h *MachineHandler) GetMachine(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid machine ID"})
		return
	}

	machine, err := h.machineService.GetMachineByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, machine)
}

// UpdateMachine handles PUT /machines/:id
// @Summary Update a machine
// @Description Update a machine owned by the authenticated manufacturer
// @Tags machines
// @Accept json
// @Produce json
// @Param id path string true "Machine ID (UUID)"
// @Param machine body service.UpdateMachineRequest true "Machine data"
// @Success 200 {object} service.MachineResponse "Successfully updated machine"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller does not own the machine"
// @Failure 404 {object} ErrorResponse "Machine not found"
// @Security BearerAuth
// @Router /machines/{id} [put]
func (h *MachineHandler) UpdateMachine(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid machine ID"})
		return
	}

	var req service.UpdateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	machine, err := h.machineService.UpdateMachine(id, principalID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, machine)
}

// DeleteMachine handles DELETE /machines/:id
// @Summary Delete a machine
// @Description Delete a machine owned by the authenticated manufacturer along with its applications
// @Tags machines
// @Accept json
// @Produce json
// @Param id path string true "Machine ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted machine"
// @Failure 400 {object} ErrorResponse "Invalid machine ID"
// @Failure 403 {object} ErrorResponse "Caller does not own the machine"
// @Failure 404 {object} ErrorResponse "Machine not found"
// @Security BearerAuth
// @Router /machines/{id} [delete]
func (h *MachineHandler) DeleteMachine(c *gin.Context) {
	principalID, ok := auth.GetPrincipalID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid machine ID"})
		return
	}

	if err := h.machineService.DeleteMachine(id, principalID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Machine deleted successfully"})
}
