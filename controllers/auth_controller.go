package controllers

import (
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/resp"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/services"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{service: s}
}

type registerReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// POST /register
func (ctl *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "email, password and name are required")
		return
	}

	token, user, err := ctl.service.Register(req.Email, req.Password, req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"token": token, "user": user})
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /login
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "email and password are required")
		return
	}

	token, user, err := ctl.service.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /verify (Protected) — the bearer-token contract other services rely on
func (ctl *AuthController) Verify(c *gin.Context) {
	userID, _ := utils.UserIDFromCtx(c)
	resp.OK(c, gin.H{
		"userId": userID,
		"email":  utils.EmailFromCtx(c),
		"name":   utils.UserNameFromCtx(c),
	})
}

// GET /profile (Protected)
func (ctl *AuthController) GetProfile(c *gin.Context) {
	userID, _ := utils.UserIDFromCtx(c)
	user, err := ctl.service.GetProfile(userID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

type profileReq struct {
	Name      string   `json:"name"`
	FoodTypes []string `json:"foodTypes"`
	Location  string   `json:"location"`
}

// PUT /profile (Protected)
func (ctl *AuthController) UpdateProfile(c *gin.Context) {
	userID, _ := utils.UserIDFromCtx(c)

	var req profileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}

	user, err := ctl.service.UpdateProfile(userID, services.ProfileInput{
		Name:      req.Name,
		FoodTypes: req.FoodTypes,
		Location:  req.Location,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

type completeSetupReq struct {
	FoodTypes []string `json:"foodTypes" binding:"required"`
	Location  string   `json:"location" binding:"required"`
}

// POST /profile/complete-setup (Protected)
func (ctl *AuthController) CompleteSetup(c *gin.Context) {
	userID, _ := utils.UserIDFromCtx(c)

	var req completeSetupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "foodTypes and location are required")
		return
	}

	user, err := ctl.service.CompleteSetup(userID, req.FoodTypes, req.Location)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

type resetRequestReq struct {
	Email string `json:"email" binding:"required"`
}

// POST /password-reset-request — same answer whether or not the account
// exists
func (ctl *AuthController) RequestPasswordReset(c *gin.Context) {
	var req resetRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "email is required")
		return
	}

	if err := ctl.service.RequestPasswordReset(req.Email); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "if the account exists, a reset code has been sent"})
}

type verifyCodeReq struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// POST /verify-reset-code
func (ctl *AuthController) VerifyResetCode(c *gin.Context) {
	var req verifyCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "email and code are required")
		return
	}

	token, err := ctl.service.VerifyResetCode(req.Email, req.Code)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"resetToken": token})
}

type resetPasswordReq struct {
	Email       string `json:"email" binding:"required"`
	ResetToken  string `json:"resetToken" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// POST /password-reset
func (ctl *AuthController) ResetPassword(c *gin.Context) {
	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "email, resetToken and newPassword are required")
		return
	}

	if err := ctl.service.ResetPassword(req.Email, req.ResetToken, req.NewPassword); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "password updated"})
}
