package router

import "github.com/gin-gonic/gin"

// Module is implemented by each resource area that mounts routes under
// the versioned API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
