package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renovalte/renovalte/internal/auth"
	"github.com/renovalte/renovalte/internal/constant"
	"github.com/renovalte/renovalte/internal/model"
	"github.com/renovalte/renovalte/internal/util"
	"gorm.io/gorm"
)

type AuthController struct {
	*baseController
}

func (ac AuthController) Register(ctx *gin.Context) {
	type Request struct {
		Email     string `json:"email" form:"email" binding:"required,email"`
		FirstName string `json:"firstName" form:"firstName" binding:"required,strNotEmpty,max=30"`
		LastName  string `json:"lastName" form:"lastName" binding:"required,strNotEmpty,max=30"`
		Password  string `json:"password" form:"password" binding:"required,min=8"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := ac.app.Repository.User.GetByEmail(ctx, nil, body.Email); err == nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Registration failed", util.GenerateErrorMessages(errors.New("an account with this email already exists"), "email"), nil)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Registration failed", util.GenerateErrorMessages(err), nil)
		return
	}

	passwordHash, err := auth.HashPassword(body.Password)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Registration failed", util.GenerateErrorMessages(err), nil)
		return
	}

	newUser := &model.User{
		Email:        body.Email,
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		PasswordHash: passwordHash,
	}
	if err := ac.app.Repository.User.Create(ctx, nil, newUser); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Registration failed", util.GenerateErrorMessages(err), nil)
		return
	}

	refreshToken, accessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		ID:        newUser.ID,
		Email:     newUser.Email,
		FirstName: newUser.FirstName,
		LastName:  newUser.LastName,
	})
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Registration failed", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseCreated(ctx, "Registration successful", gin.H{
		"user":         newUser,
		"refreshToken": refreshToken,
		"accessToken":  accessToken,
	})
}

func (ac AuthController) Login(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" form:"email" binding:"required,email"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.GetByEmail(ctx, nil, body.Email)
	if err != nil || !auth.ComparePassword(user.PasswordHash, body.Password) {
		// Same response for unknown email and wrong password.
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid email or password", util.GenerateErrorMessages(errors.New("invalid email or password"), "email"), nil)
		return
	}

	refreshToken, accessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Login failed", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user":         user,
		"refreshToken": refreshToken,
		"accessToken":  accessToken,
	})
}

func (ac AuthController) Me(ctx *gin.Context) {
	authUser, err := ac.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

func (ac AuthController) RefreshAccessToken(ctx *gin.Context) {
	refreshToken, err := util.ReadRefreshToken(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	jwtClaims, err := ac.app.JWTService.VerifyJwtToken(refreshToken)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if jwtClaims.Type != constant.JWT_TYPE_REFRESH {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("invalid jwt token type")), nil)
		return
	}

	newRefreshToken, newAccessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(jwtClaims.User)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"refreshToken": newRefreshToken,
		"accessToken":  newAccessToken,
	})
}
