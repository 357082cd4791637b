package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "repairdesk.com/repairdesk/internal/http/middlewares"
	"repairdesk.com/repairdesk/internal/sessions"
)

func Register(e *echo.Echo, h *Handler, store sessions.Store, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	api := e.Group("/api")

	api.POST("/createJob", h.CreateJob)
	api.POST("/getListJobs", h.GetListJobs)
	api.PUT("/editJobInfo", h.EditJobInfo)

	api.POST("/createClient", h.CreateClient)
	api.GET("/getClients", h.GetClients)
	api.DELETE("/deleteClient/:id", h.DeleteClient)

	api.POST("/createUser", h.CreateUser)
	api.GET("/getUsers", h.GetUsers)
	api.PUT("/editUser", h.EditUser)
	api.DELETE("/deleteUser/:id", h.DeleteUser)

	api.POST("/sendMessage", h.SendMessage)
	api.POST("/loadWebSocketMessages", h.LoadWebSocketMessages)

	api.POST("/login", h.Login)

	session := api.Group("", middleware.Session(store))
	session.POST("/logout", h.Logout)
	session.GET("/me", h.Me)
}
