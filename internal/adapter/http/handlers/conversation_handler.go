package handlers

import (
	"errors"
	"log"
	"net/http"

	request "meusdocumentos/internal/adapter/http/dto/request"
	response "meusdocumentos/internal/adapter/http/dto/response"
	"meusdocumentos/internal/usecase"
	"meusdocumentos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidConversationPayload = pkg.NewDomainErrorSimple("INVALID_CONVERSATION_INPUT", "Invalid conversation payload", http.StatusBadRequest)
)

// ConversationHandler handles the chat endpoints: session start, user turns
// and state reads.

type ConversationHandler struct {
	usecase usecase.IConversationUseCase
}

func NewConversationHandler(uc usecase.IConversationUseCase) *ConversationHandler {
	return &ConversationHandler{usecase: uc}
}

// StartConversation opens a new session (or resumes the caller's latest
// active one when authenticated and no entry point was given).
func (h *ConversationHandler) StartConversation(c *gin.Context) {
	var payload request.StartConversationRequest
	if err := c.ShouldBindJSON(&payload); err != nil && c.Request.ContentLength > 0 {
		c.JSON(errInvalidConversationPayload.HTTPStatus, errInvalidConversationPayload.ToHTTPError())
		return
	}
	log.Printf("[conversation][handler] start service_id=%s order_id=%s user_id=%s", payload.ServiceID, payload.OrderID, payload.UserID)

	snapshot, err := h.usecase.Start(c.Request.Context(), usecase.StartInput{
		ServiceID: payload.ServiceID,
		OrderID:   payload.OrderID,
		UserID:    payload.UserID,
	})
	if err != nil {
		log.Printf("[conversation][handler] start failed err=%v", err)
		appErr := mapConversationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[conversation][handler] start success session_id=%s state=%s", snapshot.SessionID, snapshot.State)

	c.JSON(http.StatusCreated, response.FromConversationSnapshot(snapshot))
}

// PostMessage handles one user turn and returns the updated conversation.
func (h *ConversationHandler) PostMessage(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.ConversationMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConversationPayload.HTTPStatus, errInvalidConversationPayload.ToHTTPError())
		return
	}
	log.Printf("[conversation][handler] message start session_id=%s", sessionID)

	snapshot, err := h.usecase.HandleInput(c.Request.Context(), sessionID, payload.ResolveText())
	if err != nil {
		log.Printf("[conversation][handler] message failed session_id=%s err=%v", sessionID, err)
		appErr := mapConversationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[conversation][handler] message success session_id=%s state=%s", sessionID, snapshot.State)

	c.JSON(http.StatusOK, response.FromConversationSnapshot(snapshot))
}

// GetConversation returns the current snapshot of a session.
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	sessionID := c.Param("session_id")

	snapshot, err := h.usecase.GetState(sessionID)
	if err != nil {
		appErr := mapConversationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConversationSnapshot(snapshot))
}

func mapConversationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Conversation session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
