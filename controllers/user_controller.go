package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect/store"
	"github.com/devconnect/devconnect/utils"
)

// UserController serves the profile data the dashboard needs.
type UserController struct {
	users store.UserStore
}

// NewUserController creates a new UserController instance.
func NewUserController(users store.UserStore) *UserController {
	return &UserController{users: users}
}

// Me returns the authenticated user's profile.
func (u *UserController) Me(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	user, err := u.users.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40403, "user not found")
			return
		}
		if utils.Sugar != nil {
			utils.Sugar.Errorf("load current user: %v", err)
		}
		utils.Error(ctx, http.StatusInternalServerError, 50010, "internal server error")
		return
	}

	utils.Success(ctx, gin.H{"user": user})
}
