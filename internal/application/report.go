package application

import (
	"fmt"

	"github.com/yemenhybrid/workshop-go/internal/apperr"
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"github.com/yemenhybrid/workshop-go/internal/domain/workorder"
	"github.com/yemenhybrid/workshop-go/internal/repository"
)

// Overview is the management dashboard snapshot.
type Overview struct {
	OrdersByStatus    map[workorder.Status]int64 `json:"ordersByStatus"`
	ActiveUsersByRole map[user.Role]int64        `json:"activeUsersByRole"`
	DeliveredRevenue  float64                    `json:"deliveredRevenue"`
}

type ReportService struct {
	Repos *repository.Repos
}

func NewReportService(repos *repository.Repos) *ReportService {
	return &ReportService{Repos: repos}
}

func (s *ReportService) Overview(actor Actor) (Overview, error) {
	if actor.Role != user.RoleAdmin && actor.Role != user.RoleSupervisor {
		return Overview{}, fmt.Errorf("%w: reports require admin or supervisor role", apperr.ErrUnauthorized)
	}

	orders, err := s.Repos.WorkOrder.CountByStatus()
	if err != nil {
		return Overview{}, fmt.Errorf("count work orders: %w", err)
	}
	users, err := s.Repos.User.CountByRole()
	if err != nil {
		return Overview{}, fmt.Errorf("count users: %w", err)
	}
	revenue, err := s.Repos.WorkOrder.SumDeliveredRevenue()
	if err != nil {
		return Overview{}, fmt.Errorf("sum revenue: %w", err)
	}

	return Overview{
		OrdersByStatus:    orders,
		ActiveUsersByRole: users,
		DeliveredRevenue:  revenue,
	}, nil
}
