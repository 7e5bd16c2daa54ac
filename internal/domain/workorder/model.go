package workorder

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the lifecycle state of a work order. Transitions move
// strictly forward along the order below, with cancelled reachable as a
// side-exit from any non-terminal state.
type Status string

const (
	StatusNew        Status = "new"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Terminal reports whether no further transitions are permitted.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type WorkOrder struct {
	ID                 string     `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID         string     `gorm:"type:uuid;not null;index" json:"customerId"`
	VehicleIdent       string     `gorm:"not null" json:"vehicleIdent"`
	VehicleMake        *string    `json:"vehicleMake,omitempty"`
	VehicleModel       *string    `json:"vehicleModel,omitempty"`
	Status             Status     `gorm:"size:20;not null;default:'new';index" json:"status"`
	OpenedByID         string     `gorm:"type:uuid;not null" json:"openedById"`
	AssignedEngineerID *string    `gorm:"type:uuid;index" json:"assignedEngineerId,omitempty"`
	ServiceID          string     `gorm:"type:uuid;not null" json:"serviceId"`
	OpenedAt           time.Time  `gorm:"not null;autoCreateTime" json:"openedAt"`
	StartedAt          *time.Time `json:"startedAt,omitempty"`
	FinishedAt         *time.Time `json:"finishedAt,omitempty"`
	DeliveredAt        *time.Time `json:"deliveredAt,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	TotalCost          float64    `gorm:"type:numeric(10,2);not null;default:0" json:"totalCost"`
}

func (w *WorkOrder) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// Part is a line item attached while the order is active. Unit price is
// captured from the catalog at attach time and never re-read, so later
// catalog price changes do not rewrite history.
type Part struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	WorkOrderID string    `gorm:"type:uuid;not null;index" json:"workOrderId"`
	PartID      string    `gorm:"type:uuid;not null" json:"partId"`
	Qty         float64   `gorm:"type:numeric(10,2);not null" json:"qty"`
	UnitPrice   float64   `gorm:"type:numeric(10,2);not null" json:"unitPrice"`
	LineTotal   float64   `gorm:"type:numeric(10,2);not null" json:"lineTotal"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (p *Part) TableName() string { return "work_order_parts" }

func (p *Part) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// EventType labels an audit event row. One row is appended per
// successful transition.
type EventType string

const (
	EventCreated   EventType = "created"
	EventAssigned  EventType = "assigned"
	EventStarted   EventType = "started"
	EventFinished  EventType = "finished"
	EventDelivered EventType = "delivered"
	EventCancelled EventType = "cancelled"
	EventPartAdded EventType = "part_added"
)

type Event struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	WorkOrderID   string    `gorm:"type:uuid;not null;index" json:"workOrderId"`
	EventType     EventType `gorm:"size:30;not null" json:"eventType"`
	PreviousValue *string   `json:"previousValue,omitempty"`
	NewValue      *string   `json:"newValue,omitempty"`
	PerformedByID *string   `gorm:"type:uuid" json:"performedById,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (e *Event) TableName() string { return "work_order_events" }

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
