package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/yemenhybrid/workshop-go/internal/apperr"
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"github.com/yemenhybrid/workshop-go/internal/domain/workorder"
	"github.com/yemenhybrid/workshop-go/internal/repository"
	"gorm.io/gorm"
)

type transitionAction string

const (
	actionCreate  transitionAction = "create"
	actionAssign  transitionAction = "assign"
	actionStart   transitionAction = "start"
	actionFinish  transitionAction = "finish"
	actionDeliver transitionAction = "deliver"
	actionCancel  transitionAction = "cancel"
)

// transitionRoles is the single place role gating lives; handlers and
// services consult it instead of scattering conditionals.
var transitionRoles = map[transitionAction][]user.Role{
	actionCreate:  {user.RoleAdmin, user.RoleSupervisor, user.RoleSales},
	actionAssign:  {user.RoleAdmin, user.RoleSupervisor},
	actionStart:   {user.RoleEngineer},
	actionFinish:  {user.RoleEngineer},
	actionDeliver: {user.RoleAdmin, user.RoleSupervisor, user.RoleSales},
	actionCancel:  {user.RoleAdmin, user.RoleSupervisor},
}

// transitionSource maps each action to the one status it may fire from.
// Cancel is handled separately: any non-terminal status qualifies.
var transitionSource = map[transitionAction]workorder.Status{
	actionAssign:  workorder.StatusNew,
	actionStart:   workorder.StatusAssigned,
	actionFinish:  workorder.StatusInProgress,
	actionDeliver: workorder.StatusDone,
}

var nonTerminalStatuses = []workorder.Status{
	workorder.StatusNew,
	workorder.StatusAssigned,
	workorder.StatusInProgress,
	workorder.StatusDone,
}

// partAttachableStatuses: part lines may only be added before delivery
// or cancellation.
var partAttachableStatuses = map[workorder.Status]bool{
	workorder.StatusNew:        true,
	workorder.StatusAssigned:   true,
	workorder.StatusInProgress: true,
	workorder.StatusDone:       true,
}

func roleAllowed(action transitionAction, role user.Role) bool {
	for _, r := range transitionRoles[action] {
		if r == role {
			return true
		}
	}
	return false
}

type WorkOrderService struct {
	Repos    *repository.Repos
	Notifier *NotificationService
}

func NewWorkOrderService(repos *repository.Repos, notifier *NotificationService) *WorkOrderService {
	return &WorkOrderService{Repos: repos, Notifier: notifier}
}

func (s *WorkOrderService) List(actor Actor, filter workorder.ListFilter) ([]workorder.WorkOrder, error) {
	// Customers only ever see their own orders.
	if actor.Role == user.RoleCustomer {
		filter.CustomerID = actor.ID
	}
	return s.Repos.WorkOrder.ListWorkOrders(filter)
}

func (s *WorkOrderService) Get(actor Actor, id string) (workorder.WorkOrder, error) {
	order, err := s.Repos.WorkOrder.GetWorkOrderByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workorder.WorkOrder{}, fmt.Errorf("%w: work order %s", apperr.ErrNotFound, id)
		}
		return workorder.WorkOrder{}, err
	}
	if actor.Role == user.RoleCustomer && order.CustomerID != actor.ID {
		return workorder.WorkOrder{}, fmt.Errorf("%w: not your work order", apperr.ErrUnauthorized)
	}
	return order, nil
}

func (s *WorkOrderService) Create(actor Actor, input workorder.CreateWorkOrderInput) (workorder.WorkOrder, error) {
	if !roleAllowed(actionCreate, actor.Role) {
		return workorder.WorkOrder{}, fmt.Errorf("%w: role %s cannot open work orders", apperr.ErrUnauthorized, actor.Role)
	}

	customer, err := s.Repos.User.GetUserByID(input.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workorder.WorkOrder{}, fmt.Errorf("%w: customer %s", apperr.ErrNotFound, input.CustomerID)
		}
		return workorder.WorkOrder{}, err
	}
	if !customer.IsActive {
		return workorder.WorkOrder{}, fmt.Errorf("%w: customer account is inactive", apperr.ErrValidation)
	}

	svc, err := s.Repos.Catalog.GetServiceByID(input.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workorder.WorkOrder{}, fmt.Errorf("%w: service %s", apperr.ErrNotFound, input.ServiceID)
		}
		return workorder.WorkOrder{}, err
	}
	if !svc.IsActive {
		return workorder.WorkOrder{}, fmt.Errorf("%w: service is no longer offered", apperr.ErrValidation)
	}

	order := workorder.WorkOrder{
		CustomerID:   input.CustomerID,
		VehicleIdent: input.VehicleIdent,
		VehicleMake:  input.VehicleMake,
		VehicleModel: input.VehicleModel,
		Status:       workorder.StatusNew,
		OpenedByID:   actor.ID,
		ServiceID:    input.ServiceID,
		Notes:        input.Notes,
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.WorkOrder.CreateWorkOrder(&order); err != nil {
			return err
		}
		return tx.WorkOrder.AppendEvent(&workorder.Event{
			WorkOrderID:   order.ID,
			EventType:     workorder.EventCreated,
			NewValue:      strPtr(string(workorder.StatusNew)),
			PerformedByID: &actor.ID,
		})
	})
	if err != nil {
		return workorder.WorkOrder{}, err
	}
	return s.Repos.WorkOrder.GetWorkOrderByID(order.ID)
}

func (s *WorkOrderService) Assign(actor Actor, id string, input workorder.AssignInput) (workorder.WorkOrder, error) {
	if !roleAllowed(actionAssign, actor.Role) {
		return workorder.WorkOrder{}, fmt.Errorf("%w: role %s cannot assign work orders", apperr.ErrUnauthorized, actor.Role)
	}

	engineer, err := s.Repos.User.GetUserByID(input.AssignedEngineerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workorder.WorkOrder{}, fmt.Errorf("%w: engineer %s", apperr.ErrNotFound, input.AssignedEngineerID)
		}
		return workorder.WorkOrder{}, err
	}
	if engineer.Role != user.RoleEngineer || !engineer.IsActive {
		return workorder.WorkOrder{}, fmt.Errorf("%w: user %s is not an active engineer", apperr.ErrValidation, input.AssignedEngineerID)
	}

	order, err := s.transition(actor, id, actionAssign, workorder.EventAssigned, map[string]interface{}{
		"status":               workorder.StatusAssigned,
		"assigned_engineer_id": input.AssignedEngineerID,
	}, nil)
	if err != nil {
		return workorder.WorkOrder{}, err
	}

	s.Notifier.WorkOrderAssigned(order, engineer)
	return order, nil
}

func (s *WorkOrderService) Start(actor Actor, id string) (workorder.WorkOrder, error) {
	if !roleAllowed(actionStart, actor.Role) {
		return workorder.WorkOrder{}, fmt.Errorf("%w: role %s cannot start work orders", apperr.ErrUnauthorized, actor.Role)
	}

	now := time.Now()
	order, err := s.transition(actor, id, actionStart, workorder.EventStarted, map[string]interface{}{
		"status":     workorder.StatusInProgress,
		"started_at": now,
	}, s.requireAssignedEngineer(actor))
	if err != nil {
		return workorder.WorkOrder{}, err
	}

	s.Notifier.WorkOrderStarted(order)
	return order, nil
}

func (s *WorkOrderService) Finish(actor Actor, id string) (workorder.WorkOrder, error) {
	if !roleAllowed(actionFinish, actor.Role) {
		return workorder.WorkOrder{}, fmt.Errorf("%w: role %s cannot finish work orders", apperr.ErrUnauthorized, actor.Role)
	}

	now := time.Now()
	order, err := s.transition(actor, id, actionFinish, workorder.EventFinished, map[string]interface{}{
		"status":      workorder.StatusDone,
		"finished_at": now,
	}, s.requireAssignedEngineer(actor))
	if err != nil {
		return workorder.WorkOrder{}, err
	}

	s.Notifier.WorkOrderCompleted(order)
	return order, nil
}

func (s *WorkOrderService) Deliver(actor Actor, id string) (workorder.WorkOrder, error) {
	if !roleAllowed(actionDeliver, actor.Role) {
		return workorder.WorkOrder{}, fmt.Errorf("%w: role %s cannot deliver work orders", apperr.ErrUnauthorized, actor.Role)
	}

	now := time.Now()
	order, err := s.transition(actor, id, actionDeliver, workorder.EventDelivered, map[string]interface{}{
		"status":       workorder.StatusDelivered,
		"delivered_at": now,
	}, nil)
	if err != nil {
		return workorder.WorkOrder{}, err
	}

	s.Notifier.WorkOrderDelivered(order)
	return order, nil
}

// Cancel exits the lifecycle from any non-terminal state. The
// cancellation time lives in the appended event row.
func (s *WorkOrderService) Cancel(actor Actor, id string, input workorder.CancelInput) (workorder.WorkOrder, error) {
	if !roleAllowed(actionCancel, actor.Role) {
		return workorder.WorkOrder{}, fmt.Errorf("%w: role %s cannot cancel work orders", apperr.ErrUnauthorized, actor.Role)
	}

	current, err := s.Repos.WorkOrder.GetWorkOrderByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workorder.WorkOrder{}, fmt.Errorf("%w: work order %s", apperr.ErrNotFound, id)
		}
		return workorder.WorkOrder{}, err
	}
	if current.Status.Terminal() {
		return workorder.WorkOrder{}, fmt.Errorf("%w: work order is already %s", apperr.ErrInvalidTransition, current.Status)
	}

	prev := string(current.Status)
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		rows, err := tx.WorkOrder.UpdateWorkOrderIfAny(id, nonTerminalStatuses, map[string]interface{}{
			"status": workorder.StatusCancelled,
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			return fmt.Errorf("%w: work order is no longer cancellable", apperr.ErrInvalidTransition)
		}
		return tx.WorkOrder.AppendEvent(&workorder.Event{
			WorkOrderID:   id,
			EventType:     workorder.EventCancelled,
			PreviousValue: &prev,
			NewValue:      strPtr(string(workorder.StatusCancelled)),
			PerformedByID: &actor.ID,
			Notes:         input.Reason,
		})
	})
	if err != nil {
		return workorder.WorkOrder{}, err
	}
	return s.Repos.WorkOrder.GetWorkOrderByID(id)
}

// AddPart attaches a catalog part as an immutable line item while the
// order is still being worked on.
func (s *WorkOrderService) AddPart(actor Actor, id string, input workorder.AddPartInput) (workorder.Part, error) {
	switch actor.Role {
	case user.RoleAdmin, user.RoleSupervisor, user.RoleEngineer:
	default:
		return workorder.Part{}, fmt.Errorf("%w: role %s cannot add part lines", apperr.ErrUnauthorized, actor.Role)
	}

	order, err := s.Repos.WorkOrder.GetWorkOrderByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workorder.Part{}, fmt.Errorf("%w: work order %s", apperr.ErrNotFound, id)
		}
		return workorder.Part{}, err
	}
	if !partAttachableStatuses[order.Status] {
		return workorder.Part{}, fmt.Errorf("%w: cannot add parts to a %s work order", apperr.ErrInvalidTransition, order.Status)
	}

	part, err := s.Repos.Catalog.GetSparePartByID(input.PartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workorder.Part{}, fmt.Errorf("%w: spare part %s", apperr.ErrNotFound, input.PartID)
		}
		return workorder.Part{}, err
	}
	if !part.IsActive {
		return workorder.Part{}, fmt.Errorf("%w: spare part is not active", apperr.ErrValidation)
	}

	// Price captured once, never re-read.
	line := workorder.Part{
		WorkOrderID: id,
		PartID:      part.ID,
		Qty:         input.Qty,
		UnitPrice:   part.UnitPrice,
		LineTotal:   input.Qty * part.UnitPrice,
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.WorkOrder.AddPart(&line); err != nil {
			return err
		}
		if err := tx.WorkOrder.IncrementTotalCost(id, line.LineTotal); err != nil {
			return err
		}
		return tx.WorkOrder.AppendEvent(&workorder.Event{
			WorkOrderID:   id,
			EventType:     workorder.EventPartAdded,
			NewValue:      strPtr(fmt.Sprintf("%s x%.2f", part.NameEn, input.Qty)),
			PerformedByID: &actor.ID,
		})
	})
	if err != nil {
		return workorder.Part{}, err
	}
	return line, nil
}

func (s *WorkOrderService) ListParts(actor Actor, id string) ([]workorder.Part, error) {
	if _, err := s.Get(actor, id); err != nil {
		return nil, err
	}
	return s.Repos.WorkOrder.ListParts(id)
}

func (s *WorkOrderService) ListEvents(actor Actor, id string) ([]workorder.Event, error) {
	if _, err := s.Get(actor, id); err != nil {
		return nil, err
	}
	return s.Repos.WorkOrder.ListEvents(id)
}

// transition runs the shared guard/update/event sequence. The status
// check-and-set is one conditional UPDATE so concurrent duplicate
// requests cannot both succeed from a stale read.
func (s *WorkOrderService) transition(
	actor Actor,
	id string,
	action transitionAction,
	eventType workorder.EventType,
	fields map[string]interface{},
	guard func(workorder.WorkOrder) error,
) (workorder.WorkOrder, error) {
	from := transitionSource[action]

	current, err := s.Repos.WorkOrder.GetWorkOrderByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workorder.WorkOrder{}, fmt.Errorf("%w: work order %s", apperr.ErrNotFound, id)
		}
		return workorder.WorkOrder{}, err
	}
	// An unlisted source state is an InvalidTransition before any
	// ownership concern; the conditional UPDATE below re-checks under
	// the transaction for races past this read.
	if current.Status != from {
		return workorder.WorkOrder{}, fmt.Errorf("%w: work order is %s, expected %s", apperr.ErrInvalidTransition, current.Status, from)
	}
	if guard != nil {
		if err := guard(current); err != nil {
			return workorder.WorkOrder{}, err
		}
	}

	prev := string(from)
	next := fmt.Sprint(fields["status"])

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		rows, err := tx.WorkOrder.UpdateWorkOrderIf(id, from, fields)
		if err != nil {
			return err
		}
		if rows == 0 {
			return fmt.Errorf("%w: work order is %s, expected %s", apperr.ErrInvalidTransition, current.Status, from)
		}
		return tx.WorkOrder.AppendEvent(&workorder.Event{
			WorkOrderID:   id,
			EventType:     eventType,
			PreviousValue: &prev,
			NewValue:      &next,
			PerformedByID: &actor.ID,
		})
	})
	if err != nil {
		return workorder.WorkOrder{}, err
	}
	return s.Repos.WorkOrder.GetWorkOrderByID(id)
}

// requireAssignedEngineer restricts start/finish to the engineer the
// order was assigned to.
func (s *WorkOrderService) requireAssignedEngineer(actor Actor) func(workorder.WorkOrder) error {
	return func(w workorder.WorkOrder) error {
		if w.AssignedEngineerID == nil || *w.AssignedEngineerID != actor.ID {
			return fmt.Errorf("%w: work order is not assigned to you", apperr.ErrUnauthorized)
		}
		return nil
	}
}

func strPtr(s string) *string { return &s }
