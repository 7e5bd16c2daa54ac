package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yemenhybrid/workshop-go/internal/application"
	"github.com/yemenhybrid/workshop-go/internal/domain/catalog"
	"github.com/yemenhybrid/workshop-go/pkg/response"
)

type CatalogHandler struct {
	svc *application.CatalogService
}

func NewCatalogHandler(svc *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.svc.ListServices()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var input catalog.CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	svc, err := h.svc.CreateService(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var input catalog.UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	svc, err := h.svc.UpdateService(c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) DeactivateService(c *gin.Context) {
	if err := h.svc.DeactivateService(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListSpareParts(c *gin.Context) {
	parts, err := h.svc.ListSpareParts()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

func (h *CatalogHandler) CreateSparePart(c *gin.Context) {
	var input catalog.CreateSparePartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	part, err := h.svc.CreateSparePart(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, part)
}

func (h *CatalogHandler) UpdateSparePart(c *gin.Context) {
	var input catalog.UpdateSparePartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	part, err := h.svc.UpdateSparePart(c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

func (h *CatalogHandler) DeactivateSparePart(c *gin.Context) {
	if err := h.svc.DeactivateSparePart(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListSpecializations(c *gin.Context) {
	specs, err := h.svc.ListSpecializations()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, specs)
}

func (h *CatalogHandler) CreateSpecialization(c *gin.Context) {
	var input catalog.CreateSpecializationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	spec, err := h.svc.CreateSpecialization(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, spec)
}

func (h *CatalogHandler) UpdateSpecialization(c *gin.Context) {
	var input catalog.UpdateSpecializationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	spec, err := h.svc.UpdateSpecialization(c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, spec)
}

func (h *CatalogHandler) DeleteSpecialization(c *gin.Context) {
	if err := h.svc.DeleteSpecialization(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
