package actor

import (
	"github.com/gin-gonic/gin"
)

const contextKey = "actor"

// Set stores the authenticated actor on the request context.
func Set(c *gin.Context, a Actor) {
	c.Set(contextKey, a)
}

// FromGin returns the actor stored by the auth middleware.
func FromGin(c *gin.Context) (Actor, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return Actor{}, false
	}
	a, ok := v.(Actor)
	if !ok || a.IsSystem() {
		return Actor{}, false
	}
	a.IP = c.ClientIP()
	return a, true
}
