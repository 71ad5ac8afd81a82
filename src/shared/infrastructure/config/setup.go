package config

import (
	"sales/src/shared/infrastructure/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SharedConfig contiene la configuración de los middlewares compartidos
type SharedConfig struct {
	EnableMetrics  bool
	AllowedOrigins []string // vacío permite cualquier origen
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() SharedConfig {
	return SharedConfig{
		EnableMetrics:  true,
		AllowedOrigins: nil,
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, config SharedConfig) {
	corsConfig := cors.DefaultConfig()
	if len(config.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = config.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	if config.EnableMetrics {
		router.Use(middleware.Metrics())
	}
}
