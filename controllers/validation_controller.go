package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pin-point/server-go/services"
	"github.com/pin-point/server-go/utils"
)

// ValidationController serves the /api/validates endpoints: the
// endorsement ("validation" in client speak) ledger.
type ValidationController struct {
	Endorsements services.EndorsementService
}

func NewValidationController(endorsements services.EndorsementService) *ValidationController {
	return &ValidationController{Endorsements: endorsements}
}

type validateInput struct {
	User uint   `json:"user"`
	Pin  string `json:"pin" binding:"required"`
}

type getScoreInput struct {
	Pin string `json:"pin" binding:"required"`
}

type getValidatedInput struct {
	User uint `json:"user"`
}

func (vc *ValidationController) requester(c *gin.Context, bodyUser uint) (uint, bool) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found in context"})
		return 0, false
	}
	if bodyUser != 0 && bodyUser != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"message": "cannot act for another user"})
		return 0, false
	}
	return user.UserID, true
}

// AddValidation godoc
// @Summary Endorse a pin
// @Tags validations
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /validates/add [post]
func (vc *ValidationController) AddValidation(c *gin.Context) {
	var input validateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	userID, ok := vc.requester(c, input.User)
	if !ok {
		return
	}

	if err := vc.Endorsements.Endorse(c.Request.Context(), userID, input.Pin); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "pin endorsed"})
}

// DeleteValidation godoc
// @Summary Retract an endorsement
// @Tags validations
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /validates/delete [post]
func (vc *ValidationController) DeleteValidation(c *gin.Context) {
	var input validateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	userID, ok := vc.requester(c, input.User)
	if !ok {
		return
	}

	if err := vc.Endorsements.Retract(c.Request.Context(), userID, input.Pin); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "endorsement retracted"})
}

// GetScore godoc
// @Summary Current endorsement score of a pin
// @Tags validations
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /validates/getscore [post]
func (vc *ValidationController) GetScore(c *gin.Context) {
	var input getScoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	score, err := vc.Endorsements.Score(c.Request.Context(), input.Pin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": score})
}

// GetValidated godoc
// @Summary Pins the requester has endorsed
// @Description Used by the client at session start to reconcile its
// @Description local endorsed set with server truth.
// @Tags validations
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /validates/getvalidated [post]
func (vc *ValidationController) GetValidated(c *gin.Context) {
	var input getValidatedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	userID, ok := vc.requester(c, input.User)
	if !ok {
		return
	}

	pinIDs, err := vc.Endorsements.ListEndorsedBy(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"validated": pinIDs})
}
