package chat

import "gorm.io/datatypes"

type CreateMessageInput struct {
	ChannelID      *string        `json:"channelId" binding:"omitempty,uuid"`
	RecipientID    *string        `json:"recipientId" binding:"omitempty,uuid"`
	Body           string         `json:"body" binding:"required"`
	AttachmentMeta datatypes.JSON `json:"attachmentMeta"`
}

type CreateChannelInput struct {
	Name        string      `json:"name" binding:"required"`
	Type        ChannelType `json:"type" binding:"omitempty,oneof=general tech sales direct customer_support"`
	Description *string     `json:"description"`
}

type CreateThreadInput struct {
	CustomerID string  `json:"customerId" binding:"required,uuid"`
	SalesRepID *string `json:"salesRepId" binding:"omitempty,uuid"`
}

// AttachmentMeta is what the upload endpoint returns and what clients
// embed into messages.
type AttachmentMeta struct {
	ObjectName  string `json:"objectName"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}
