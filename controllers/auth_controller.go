package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/pin-point/server-go/config"
	"github.com/pin-point/server-go/models"
	"github.com/pin-point/server-go/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

type credentialsInput struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Password string `json:"password" binding:"required,min=6"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not hash password"})
		return
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashedPassword),
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "username already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered",
		"user":    gin.H{"id": user.ID, "username": user.Username},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	if err := ac.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid username or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid username or password"})
		return
	}

	accessToken, err := ac.signAccessToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not create token"})
		return
	}

	tokenValue, err := randomToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not create token"})
		return
	}
	refreshToken := models.RefreshToken{
		UserID:         user.ID,
		Token:          tokenValue,
		ExpirationDate: time.Now().Add(30 * 24 * time.Hour),
	}
	if err := ac.DB.Create(&refreshToken).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not store refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":         accessToken,
		"refresh_token": refreshToken.Token,
		"user":          gin.H{"id": user.ID, "username": user.Username},
	})
}

func (ac *AuthController) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var stored models.RefreshToken
	if err := ac.DB.Where("token = ?", input.RefreshToken).First(&stored).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid refresh token"})
		return
	}
	if time.Now().After(stored.ExpirationDate) {
		ac.DB.Delete(&stored)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "refresh token expired"})
		return
	}

	accessToken, err := ac.signAccessToken(stored.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": accessToken})
}

func (ac *AuthController) Logout(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found in context"})
		return
	}
	ac.DB.Where("user_id = ?", user.UserID).Delete(&models.RefreshToken{})
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// RegisterPushToken stores an Expo push token on the user record so
// the notification dispatch collaborator can reach the device.
func (ac *AuthController) RegisterPushToken(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found in context"})
		return
	}

	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var record models.User
	if err := ac.DB.First(&record, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}
	for _, t := range record.PushTokens {
		if t == input.Token {
			c.JSON(http.StatusOK, gin.H{"message": "push token already registered"})
			return
		}
	}
	record.PushTokens = append(record.PushTokens, input.Token)
	if err := ac.DB.Model(&record).Update("push_tokens", record.PushTokens).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not store push token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "push token registered"})
}

func (ac *AuthController) signAccessToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.Cfg.JWTSecret))
}

// randomToken draws 32 bytes from crypto/rand. A failed read must not
// degrade into a predictable refresh token.
func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
