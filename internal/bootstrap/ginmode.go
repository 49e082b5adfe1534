package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode puts gin into release mode for production deployments; every
// other APP_ENV keeps the debug logger.
func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}
