package repository

import (
	"github.com/yemenhybrid/workshop-go/internal/domain/workorder"
	"gorm.io/gorm"
)

type WorkOrderRepo interface {
	ListWorkOrders(filter workorder.ListFilter) ([]workorder.WorkOrder, error)
	GetWorkOrderByID(id string) (workorder.WorkOrder, error)
	CreateWorkOrder(w *workorder.WorkOrder) error
	// UpdateWorkOrderIf applies fields only where the order's current
	// status equals from, returning the number of rows matched. Zero
	// rows means the order was not in the required source state.
	UpdateWorkOrderIf(id string, from workorder.Status, fields map[string]interface{}) (int64, error)
	// UpdateWorkOrderIfAny is the cancel variant: any of the listed
	// source statuses is acceptable.
	UpdateWorkOrderIfAny(id string, from []workorder.Status, fields map[string]interface{}) (int64, error)

	AddPart(p *workorder.Part) error
	ListParts(workOrderID string) ([]workorder.Part, error)
	IncrementTotalCost(workOrderID string, amount float64) error

	AppendEvent(e *workorder.Event) error
	ListEvents(workOrderID string) ([]workorder.Event, error)

	CountByStatus() (map[workorder.Status]int64, error)
	SumDeliveredRevenue() (float64, error)

	WithTx(tx *gorm.DB) WorkOrderRepo
}

type DBWorkOrderRepo struct {
	db *gorm.DB
}

func NewWorkOrderRepo(db *gorm.DB) *DBWorkOrderRepo {
	return &DBWorkOrderRepo{db: db}
}

func (r *DBWorkOrderRepo) WithTx(tx *gorm.DB) WorkOrderRepo {
	return &DBWorkOrderRepo{db: tx}
}

func (r *DBWorkOrderRepo) ListWorkOrders(filter workorder.ListFilter) ([]workorder.WorkOrder, error) {
	q := r.db.Order("opened_at DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != "" {
		q = q.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.AssignedEngineerID != "" {
		q = q.Where("assigned_engineer_id = ?", filter.AssignedEngineerID)
	}

	var orders []workorder.WorkOrder
	err := q.Find(&orders).Error
	return orders, err
}

func (r *DBWorkOrderRepo) GetWorkOrderByID(id string) (workorder.WorkOrder, error) {
	var w workorder.WorkOrder
	err := r.db.Where("id = ?", id).First(&w).Error
	return w, err
}

func (r *DBWorkOrderRepo) CreateWorkOrder(w *workorder.WorkOrder) error {
	return r.db.Create(w).Error
}

func (r *DBWorkOrderRepo) UpdateWorkOrderIf(id string, from workorder.Status, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&workorder.WorkOrder{}).
		Where("id = ? AND status = ?", id, from).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *DBWorkOrderRepo) UpdateWorkOrderIfAny(id string, from []workorder.Status, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&workorder.WorkOrder{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *DBWorkOrderRepo) AddPart(p *workorder.Part) error {
	return r.db.Create(p).Error
}

func (r *DBWorkOrderRepo) ListParts(workOrderID string) ([]workorder.Part, error) {
	var parts []workorder.Part
	err := r.db.Where("work_order_id = ?", workOrderID).Order("created_at").Find(&parts).Error
	return parts, err
}

func (r *DBWorkOrderRepo) IncrementTotalCost(workOrderID string, amount float64) error {
	return r.db.Model(&workorder.WorkOrder{}).
		Where("id = ?", workOrderID).
		Update("total_cost", gorm.Expr("total_cost + ?", amount)).Error
}

func (r *DBWorkOrderRepo) AppendEvent(e *workorder.Event) error {
	return r.db.Create(e).Error
}

func (r *DBWorkOrderRepo) ListEvents(workOrderID string) ([]workorder.Event, error) {
	var events []workorder.Event
	err := r.db.Where("work_order_id = ?", workOrderID).Order("created_at").Find(&events).Error
	return events, err
}

func (r *DBWorkOrderRepo) CountByStatus() (map[workorder.Status]int64, error) {
	var rows []struct {
		Status workorder.Status
		Count  int64
	}
	err := r.db.Model(&workorder.WorkOrder{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[workorder.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *DBWorkOrderRepo) SumDeliveredRevenue() (float64, error) {
	var total float64
	err := r.db.Model(&workorder.WorkOrder{}).
		Where("status = ?", workorder.StatusDelivered).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&total).Error
	return total, err
}
