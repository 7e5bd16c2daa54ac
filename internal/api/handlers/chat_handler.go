package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yemenhybrid/workshop-go/internal/application"
	"github.com/yemenhybrid/workshop-go/internal/domain/chat"
	"github.com/yemenhybrid/workshop-go/internal/storage"
	"github.com/yemenhybrid/workshop-go/pkg/response"
)

const maxAttachmentSize = 20 << 20 // 20 MiB

type ChatHandler struct {
	svc   *application.ChatService
	store *storage.Store
}

func NewChatHandler(svc *application.ChatService, store *storage.Store) *ChatHandler {
	return &ChatHandler{svc: svc, store: store}
}

func (h *ChatHandler) ListChannels(c *gin.Context) {
	channels, err := h.svc.ListChannels()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, channels)
}

func (h *ChatHandler) CreateChannel(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var input chat.CreateChannelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	channel, err := h.svc.CreateChannel(a, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, channel)
}

func (h *ChatHandler) ChannelMessages(c *gin.Context) {
	messages, err := h.svc.ChannelMessages(c.Param("channelId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) DirectMessages(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	messages, err := h.svc.DirectMessages(a.ID, c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) CreateMessage(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var input chat.CreateMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	msg, err := h.svc.CreateMessage(a, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// UploadAttachment stores the file and returns the metadata the client
// embeds into a subsequent message. Nothing is persisted in the chat
// tables here.
func (h *ChatHandler) UploadAttachment(c *gin.Context) {
	if _, ok := actor(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	if fileHeader.Size > maxAttachmentSize {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to read file"})
		return
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName, err := h.store.UploadAttachment(c.Request.Context(), fileHeader.Filename, contentType, f, fileHeader.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to store file"})
		return
	}

	c.JSON(http.StatusCreated, chat.AttachmentMeta{
		ObjectName:  objectName,
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
	})
}

func (h *ChatHandler) ListThreads(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	threads, err := h.svc.ListThreads(a)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, threads)
}

func (h *ChatHandler) CreateThread(c *gin.Context) {
	if _, ok := actor(c); !ok {
		return
	}

	var input chat.CreateThreadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	thread, err := h.svc.GetOrCreateThread(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}
