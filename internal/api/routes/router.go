package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yemenhybrid/workshop-go/internal/api/handlers"
	"github.com/yemenhybrid/workshop-go/internal/api/middleware"
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"github.com/yemenhybrid/workshop-go/internal/realtime"
)

// RegisterRoutes wires the REST surface and the websocket endpoint.
// The websocket route skips JWT middleware: authentication happens
// in-band over the socket.
func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, hub *realtime.Hub) {
	api := r.Group("/api")

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/forgot-password", h.Auth.ForgotPassword)
	api.POST("/auth/reset-password", h.Auth.ResetPassword)

	api.GET("/ws", hub.HandleWS)

	auth := api.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		users := auth.Group("/users")
		{
			users.GET("/me", h.User.Me)
			users.PUT("/me", h.User.UpdateMe)
			users.GET("", middleware.RequireRole(user.RoleAdmin, user.RoleSupervisor), h.User.ListUsers)
			users.GET("/:id", middleware.RequireRole(user.RoleAdmin, user.RoleSupervisor), h.User.GetUser)
			users.POST("", middleware.RequireRole(user.RoleAdmin), h.User.CreateUser)
			users.PATCH("/:id", middleware.RequireRole(user.RoleAdmin), h.User.UpdateUser)
			users.DELETE("/:id", middleware.RequireRole(user.RoleAdmin), h.User.DeactivateUser)
		}

		catalog := auth.Group("/catalog")
		{
			staffOnly := middleware.RequireRole(user.RoleAdmin, user.RoleSupervisor)

			catalog.GET("/services", h.Catalog.ListServices)
			catalog.POST("/services", staffOnly, h.Catalog.CreateService)
			catalog.PATCH("/services/:id", staffOnly, h.Catalog.UpdateService)
			catalog.DELETE("/services/:id", staffOnly, h.Catalog.DeactivateService)

			catalog.GET("/parts", h.Catalog.ListSpareParts)
			catalog.POST("/parts", staffOnly, h.Catalog.CreateSparePart)
			catalog.PATCH("/parts/:id", staffOnly, h.Catalog.UpdateSparePart)
			catalog.DELETE("/parts/:id", staffOnly, h.Catalog.DeactivateSparePart)

			catalog.GET("/specializations", h.Catalog.ListSpecializations)
			catalog.POST("/specializations", staffOnly, h.Catalog.CreateSpecialization)
			catalog.PATCH("/specializations/:id", staffOnly, h.Catalog.UpdateSpecialization)
			catalog.DELETE("/specializations/:id", staffOnly, h.Catalog.DeleteSpecialization)
		}

		// Work-order permissions are enforced in the service layer,
		// which knows the transition table.
		work := auth.Group("/work/orders")
		{
			work.GET("", h.WorkOrder.List)
			work.POST("", h.WorkOrder.Create)
			work.GET("/:id", h.WorkOrder.Get)
			work.PATCH("/:id/assign", h.WorkOrder.Assign)
			work.PATCH("/:id/start", h.WorkOrder.Start)
			work.PATCH("/:id/finish", h.WorkOrder.Finish)
			work.PATCH("/:id/deliver", h.WorkOrder.Deliver)
			work.PATCH("/:id/cancel", h.WorkOrder.Cancel)
			work.GET("/:id/parts", h.WorkOrder.ListParts)
			work.POST("/:id/parts", h.WorkOrder.AddPart)
			work.GET("/:id/events", h.WorkOrder.ListEvents)
		}

		chat := auth.Group("/chat")
		{
			chat.GET("/channels", h.Chat.ListChannels)
			chat.POST("/channels", h.Chat.CreateChannel)
			chat.GET("/messages/:channelId", h.Chat.ChannelMessages)
			chat.GET("/direct/:userId", h.Chat.DirectMessages)
			chat.POST("/messages", h.Chat.CreateMessage)
			chat.POST("/attachments", h.Chat.UploadAttachment)
			chat.GET("/threads", h.Chat.ListThreads)
			chat.POST("/threads", h.Chat.CreateThread)
		}

		notifications := auth.Group("/notifications")
		{
			notifications.GET("", h.Notification.List)
			notifications.PATCH("/read-all", h.Notification.MarkAllRead)
			notifications.PATCH("/:id/read", h.Notification.MarkRead)
			notifications.DELETE("/:id", h.Notification.Delete)
		}

		auth.GET("/reports/overview", middleware.RequireRole(user.RoleAdmin, user.RoleSupervisor), h.Report.Overview)
	}
}
