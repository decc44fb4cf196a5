package api

import (
	"turnos/queue-service/internal/api/handler/turn"
	"turnos/queue-service/internal/api/middleware"
)

// SetupAPIRoutes
// @title						Turnos Service
// @version         			1.0.0
// @description     			Walk-in service queue
// @Host 						localhost:3000
// @BasePath  					/
// @Schemes 					http
func (s *Server) SetupAPIRoutes(
	turnHandler *turn.TurnHandler,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	r := s.engine
	r.Use(middleware.HandleRequestLog(s.logger), middleware.HandleCors())

	r.GET("/healthz", turnHandler.Health)

	turnos := r.Group("turnos")
	{
		if rateLimitMiddleware != nil {
			turnos.POST("", rateLimitMiddleware.Handle, turnHandler.Submit)
		} else {
			turnos.POST("", turnHandler.Submit)
		}
		turnos.GET("", turnHandler.ListPending)
		turnos.GET("/siguiente", turnHandler.ServeNext)
		turnos.GET("/stats", turnHandler.Stats)
	}
}
