package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/httpresp"
	"github.com/v322/healthsync/internal/ids"
	"github.com/v322/healthsync/internal/models"
)

type DepartmentHandler struct {
	db *gorm.DB
}

func NewDepartmentHandler(db *gorm.DB) *DepartmentHandler {
	return &DepartmentHandler{db: db}
}

type DepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	dept := models.Department{
		ID:          ids.New(ids.PrefixDepartment),
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
	}

	if err := h.db.Create(&dept).Error; err != nil {
		httperr.Internal(c, "failed_to_create_department", "Failed to create department.")
		return
	}
	httpresp.Created(c, dept)
}

func (h *DepartmentHandler) Get(c *gin.Context) {
	var dept models.Department
	if err := h.db.Where("id = ?", c.Param("id")).First(&dept).Error; err != nil {
		httperr.NotFound(c, "department_not_found", "Department not found.")
		return
	}
	httpresp.OK(c, dept)
}

func (h *DepartmentHandler) GetByName(c *gin.Context) {
	var dept models.Department
	if err := h.db.Where("name = ?", c.Param("name")).First(&dept).Error; err != nil {
		httperr.NotFound(c, "department_not_found", "Department not found.")
		return
	}
	httpresp.OK(c, dept)
}

func (h *DepartmentHandler) List(c *gin.Context) {
	var depts []models.Department
	if err := h.db.Order("name ASC").Find(&depts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_departments", "Failed to list departments.")
		return
	}
	httpresp.List(c, depts)
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	var dept models.Department
	if err := h.db.Where("id = ?", c.Param("id")).First(&dept).Error; err != nil {
		httperr.NotFound(c, "department_not_found", "Department not found.")
		return
	}

	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	dept.Name = req.Name
	dept.Location = req.Location
	dept.Description = req.Description

	if err := h.db.Save(&dept).Error; err != nil {
		httperr.Internal(c, "failed_to_update_department", "Failed to update department.")
		return
	}
	httpresp.OK(c, dept)
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("id")).Delete(&models.Department{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_department", "Failed to delete department.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "department_not_found", "Department not found.")
		return
	}
	httpresp.OK(c, gin.H{"status": "deleted"})
}
