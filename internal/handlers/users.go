package handlers

import (
	"errors"
	"net/http"

	"userapi/internal/models"
	"userapi/internal/service"

	"github.com/gin-gonic/gin"
)

// getUser returns the profile of the authenticated user.
func (h *Handler) getUser(c *gin.Context) {
	username := currentUsername(c)

	u, err := h.services.GetByUsername(username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if h.log != nil {
			h.log.Errorw("get_user_failed", "username", username, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, u.Public())
}

// getUsers returns all registered accounts without credential material.
func (h *Handler) getUsers(c *gin.Context) {
	users, err := h.services.List()
	if err != nil {
		if h.log != nil {
			h.log.Errorw("list_users_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	c.JSON(http.StatusOK, out)
}
