package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pin-point/server-go/services"
	"github.com/pin-point/server-go/utils"
)

type WatcherController struct {
	Watchers services.WatcherService
}

func NewWatcherController(watchers services.WatcherService) *WatcherController {
	return &WatcherController{Watchers: watchers}
}

type fetchWatchersInput struct {
	UID uint `json:"uid"`
}

type pushWatcherInput struct {
	Category  string  `json:"category" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	AuthorID  uint    `json:"author_id"`
	Radius    float64 `json:"radius" binding:"required"`
}

type deleteWatcherInput struct {
	ZoneID string `json:"pid" binding:"required"`
}

// FetchWatchers godoc
// @Summary List the requester's watch zones
// @Tags watchers
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /fetchwatchers [post]
func (wc *WatcherController) FetchWatchers(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found in context"})
		return
	}

	var input fetchWatchersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if input.UID != 0 && input.UID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"message": "cannot list another user's watch zones"})
		return
	}

	zones, err := wc.Watchers.ListZonesFor(c.Request.Context(), user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	// The client renders zones through the same marker list as pins.
	c.JSON(http.StatusOK, gin.H{"pins": zones})
}

// PushWatcher godoc
// @Summary Create a watch zone
// @Tags watchers
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /pushwatcher [post]
func (wc *WatcherController) PushWatcher(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found in context"})
		return
	}

	var input pushWatcherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if input.AuthorID != 0 && input.AuthorID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"message": "cannot create watch zones for another user"})
		return
	}

	zone, err := wc.Watchers.CreateZone(c.Request.Context(), user.UserID, input.Category, input.Latitude, input.Longitude, input.Radius)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"pin": zone})
}

// DeleteWatcher godoc
// @Summary Delete a watch zone the requester owns
// @Tags watchers
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /deletewatcher [post]
func (wc *WatcherController) DeleteWatcher(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found in context"})
		return
	}

	var input deleteWatcherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := wc.Watchers.DeleteZone(c.Request.Context(), input.ZoneID, user.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "watch zone deleted"})
}
