package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sostinewaliaula/rental-management-system/internal/error/code"
	"github.com/sostinewaliaula/rental-management-system/internal/error/response"
	"github.com/sostinewaliaula/rental-management-system/models"
	"github.com/sostinewaliaula/rental-management-system/services"
	"github.com/sostinewaliaula/rental-management-system/services/container"
)

// InterfacePropertyController defines the property controller interface
type InterfacePropertyController interface {
	GetProperties()
	GetProperty()
	CreateProperty()
	UpdateProperty()
	DeleteProperty()
	UpdateUnit()
}

// PropertyController handles property registry requests
type PropertyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPropertyController creates a new property controller
func NewPropertyController(ctx *gin.Context, container *container.ServiceContainer) *PropertyController {
	return &PropertyController{
		Ctx:       ctx,
		Container: container,
	}
}

// UnitRequest represents a unit inside a create property request
type UnitRequest struct {
	Number string  `json:"number" binding:"required" example:"G1"`
	Type   string  `json:"type" binding:"required" example:"bedsitter"`
	Status string  `json:"status" binding:"omitempty,oneof=vacant maintenance" example:"vacant"`
	Rent   float64 `json:"rent" binding:"required,gt=0" example:"15000"`
}

// FloorRequest represents a floor inside a create property request
type FloorRequest struct {
	Name  string        `json:"name" binding:"required" example:"Ground Floor"`
	Units []UnitRequest `json:"units" binding:"dive"`
}

// PropertyRequest represents a create property request
type PropertyRequest struct {
	Name     string         `json:"name" binding:"required" example:"Sunrise Apartments"`
	Location string         `json:"location" binding:"required" example:"Nairobi West"`
	Type     string         `json:"type" binding:"required" example:"apartment"`
	Image    string         `json:"image" example:"https://cdn.example.com/sunrise.jpg"`
	Floors   []FloorRequest `json:"floors" binding:"dive"`
}

// UpdatePropertyRequest represents an update property request
type UpdatePropertyRequest struct {
	Name     string `json:"name" example:"Sunrise Apartments"`
	Location string `json:"location" example:"Nairobi West"`
	Type     string `json:"type" example:"apartment"`
	Image    string `json:"image" example:"https://cdn.example.com/sunrise.jpg"`
}

// UpdateUnitRequest represents an update unit request; status may only
// be set to vacant or maintenance, occupancy is driven by tenants
type UpdateUnitRequest struct {
	Number string   `json:"number" example:"G1"`
	Type   string   `json:"type" example:"one-bedroom"`
	Rent   *float64 `json:"rent" binding:"omitempty,gt=0" example:"18000"`
	Status string   `json:"status" binding:"omitempty,oneof=vacant maintenance" example:"maintenance"`
}

// HandlePropertyFunc returns a gin handler for property requests
func HandlePropertyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPropertyController(ctx, container)

		switch method {
		case "getProperties":
			controller.GetProperties()
		case "getProperty":
			controller.GetProperty()
		case "createProperty":
			controller.CreateProperty()
		case "updateProperty":
			controller.UpdateProperty()
		case "deleteProperty":
			controller.DeleteProperty()
		case "updateUnit":
			controller.UpdateUnit()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}

// GetProperties lists all properties
// @Summary      List properties
// @Description  List all properties with their floors and units
// @Tags         Property
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Router       /properties [get]
func (c *PropertyController) GetProperties() {
	page, pageSize := parsePagination(c.Ctx)

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	properties, total, err := propertyService.GetAllProperties(page, pageSize)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":      total,
		"page":       page,
		"page_size":  pageSize,
		"properties": properties,
	})
}

// GetProperty returns one property with floors and units
// @Summary      Get property
// @Tags         Property
// @Produce      json
// @Param        id path int true "Property ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /properties/{id} [get]
func (c *PropertyController) GetProperty() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	property, err := propertyService.GetPropertyByID(id)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"property": property})
}

// CreateProperty creates a property with nested floors and units
// @Summary      Create property
// @Tags         Property
// @Accept       json
// @Produce      json
// @Param        request body PropertyRequest true "Property parameters"
// @Security     BearerAuth
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /properties [post]
func (c *PropertyController) CreateProperty() {
	var req PropertyRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	input := services.CreatePropertyInput{
		Name:     req.Name,
		Location: req.Location,
		Type:     req.Type,
		Image:    req.Image,
	}
	for _, floor := range req.Floors {
		floorInput := services.CreateFloorInput{Name: floor.Name}
		for _, unit := range floor.Units {
			floorInput.Units = append(floorInput.Units, services.CreateUnitInput{
				Number: unit.Number,
				Type:   unit.Type,
				Status: models.UnitStatus(unit.Status),
				Rent:   unit.Rent,
			})
		}
		input.Floors = append(input.Floors, floorInput)
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	property, err := propertyService.CreateProperty(&input)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, gin.H{"property": property})
}

// UpdateProperty updates property details
// @Summary      Update property
// @Tags         Property
// @Accept       json
// @Produce      json
// @Param        id path int true "Property ID"
// @Param        request body UpdatePropertyRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /properties/{id} [patch]
func (c *PropertyController) UpdateProperty() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	property, err := propertyService.UpdateProperty(id, updates)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"property": property})
}

// DeleteProperty deletes a property and everything under it
// @Summary      Delete property
// @Description  Delete a property with its floors and units. Fails when any unit is occupied.
// @Tags         Property
// @Produce      json
// @Param        id path int true "Property ID"
// @Security     BearerAuth
// @Success      204  "No Content"
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /properties/{id} [delete]
func (c *PropertyController) DeleteProperty() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	if err := propertyService.DeleteProperty(id); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.NoContent(c.Ctx)
}

// UpdateUnit updates a unit's details
// @Summary      Update unit
// @Description  Update unit number, type, rent or toggle between vacant and maintenance
// @Tags         Property
// @Accept       json
// @Produce      json
// @Param        id path int true "Unit ID"
// @Param        request body UpdateUnitRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /units/{id} [patch]
func (c *PropertyController) UpdateUnit() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateUnitRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	unit, err := propertyService.UpdateUnit(id, &services.UpdateUnitInput{
		Number: req.Number,
		Type:   req.Type,
		Rent:   req.Rent,
		Status: models.UnitStatus(req.Status),
	})
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"unit": unit})
}
