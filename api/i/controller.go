package i

import "github.com/gin-gonic/gin"

// Controller registers its handlers on the public and the authenticated route groups.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
