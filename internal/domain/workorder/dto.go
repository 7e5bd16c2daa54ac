package workorder

type CreateWorkOrderInput struct {
	CustomerID   string  `json:"customerId" binding:"required,uuid"`
	VehicleIdent string  `json:"vehicleIdent" binding:"required"`
	VehicleMake  *string `json:"vehicleMake"`
	VehicleModel *string `json:"vehicleModel"`
	ServiceID    string  `json:"serviceId" binding:"required,uuid"`
	Notes        *string `json:"notes"`
}

type AssignInput struct {
	AssignedEngineerID string `json:"assignedEngineerId" binding:"required,uuid"`
}

type CancelInput struct {
	Reason *string `json:"reason"`
}

type AddPartInput struct {
	PartID string  `json:"partId" binding:"required,uuid"`
	Qty    float64 `json:"qty" binding:"required,gt=0"`
}

// ListFilter narrows list-work-orders; zero values mean no filter.
type ListFilter struct {
	Status             Status `form:"status"`
	CustomerID         string `form:"customerId"`
	AssignedEngineerID string `form:"assignedEngineerId"`
}
