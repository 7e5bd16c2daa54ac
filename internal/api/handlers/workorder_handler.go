package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yemenhybrid/workshop-go/internal/application"
	"github.com/yemenhybrid/workshop-go/internal/domain/workorder"
	"github.com/yemenhybrid/workshop-go/pkg/response"
)

type WorkOrderHandler struct {
	svc *application.WorkOrderService
}

func NewWorkOrderHandler(svc *application.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{svc: svc}
}

func (h *WorkOrderHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var filter workorder.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	orders, err := h.svc.List(a, filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *WorkOrderHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	order, err := h.svc.Get(a, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *WorkOrderHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var input workorder.CreateWorkOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.svc.Create(a, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *WorkOrderHandler) Assign(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var input workorder.AssignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.svc.Assign(a, c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *WorkOrderHandler) Start(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	order, err := h.svc.Start(a, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *WorkOrderHandler) Finish(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	order, err := h.svc.Finish(a, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *WorkOrderHandler) Deliver(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	order, err := h.svc.Deliver(a, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *WorkOrderHandler) Cancel(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var input workorder.CancelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.svc.Cancel(a, c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *WorkOrderHandler) AddPart(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var input workorder.AddPartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	part, err := h.svc.AddPart(a, c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, part)
}

func (h *WorkOrderHandler) ListParts(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	parts, err := h.svc.ListParts(a, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

func (h *WorkOrderHandler) ListEvents(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	events, err := h.svc.ListEvents(a, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
