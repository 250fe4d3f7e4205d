package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/filter", s.filterHandler)
		api.POST("/cards/render", s.renderHandler)
		api.POST("/deck/image", s.deckImageHandler)
		api.GET("/qr", qrHandler)
	}
}
