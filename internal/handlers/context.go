package handlers

import (
	"github.com/gin-gonic/gin"
)

// userIdentity is the caller identity placed on the gin context by the auth
// middleware.
type userIdentity struct {
	ID    string
	Name  string
	Image string
}

func currentUser(c *gin.Context) (userIdentity, bool) {
	id := c.GetString("user_id")
	if id == "" {
		return userIdentity{}, false
	}
	return userIdentity{
		ID:    id,
		Name:  c.GetString("user_name"),
		Image: c.GetString("user_image"),
	}, true
}
