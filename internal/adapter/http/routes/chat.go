package routes

import (
	"meusdocumentos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConversations = "/conversations"
	PathOrders        = "/orders"
)

func addConversationRoutes(rg *gin.RouterGroup, conversationHandler *handlers.ConversationHandler) {
	conversations := rg.Group(PathConversations)
	{
		conversations.POST("", conversationHandler.StartConversation)
		conversations.GET("/:session_id", conversationHandler.GetConversation)
		conversations.POST("/:session_id/messages", conversationHandler.PostMessage)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("/:id", orderHandler.GetOrder)
		orders.POST("/:id/payment/confirm", orderHandler.ConfirmPayment)
	}
}
