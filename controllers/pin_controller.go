package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pin-point/server-go/services"
	"github.com/pin-point/server-go/utils"
)

type PinController struct {
	Pins services.PinService
}

func NewPinController(pins services.PinService) *PinController {
	return &PinController{Pins: pins}
}

type pushPinInput struct {
	Category string `json:"category" binding:"required"`
	// No "required" on coordinates: 0 is a valid latitude and a valid
	// longitude. Range checks live in the service.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	AuthorID  uint    `json:"author_id"`
}

type deletePinInput struct {
	PinID string `json:"pid" binding:"required"`
	UID   uint   `json:"uid"`
}

// FetchPins godoc
// @Summary List all pins
// @Tags pins
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /fetchpins [get]
func (pc *PinController) FetchPins(c *gin.Context) {
	pins, err := pc.Pins.ListPins(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pins": pins})
}

// PushPin godoc
// @Summary Create a pin at the given coordinates
// @Tags pins
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /pushpin [post]
func (pc *PinController) PushPin(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found in context"})
		return
	}

	var input pushPinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	// The body carries author_id for contract compatibility; the token
	// is the authority on who is submitting.
	if input.AuthorID != 0 && input.AuthorID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"message": "cannot create pins for another user"})
		return
	}

	pin, err := pc.Pins.CreatePin(c.Request.Context(), input.Category, input.Latitude, input.Longitude, user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"pin": pin})
}

// DeletePin godoc
// @Summary Delete a pin the requester authored
// @Tags pins
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /deletepin [post]
func (pc *PinController) DeletePin(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found in context"})
		return
	}

	var input deletePinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := pc.Pins.DeletePin(c.Request.Context(), input.PinID, user.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pin deleted"})
}
