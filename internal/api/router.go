package api

import "github.com/gin-gonic/gin"

// NewRouter builds the gin engine with all routes mounted. Extra middleware
// (request logging, CORS) runs ahead of every route.
func NewRouter(handler *Handler, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)

	router.GET("/healthz", handler.Health)

	v1 := router.Group("/api/v1")
	v1.Use(CallerIdentity())
	{
		v1.GET("/applications/:id", handler.Get)
		v1.POST("/applications/:id/approve", handler.Approve)
	}

	return router
}
