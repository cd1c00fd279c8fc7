package api

import (
	"restaurant/service"

	"github.com/gin-gonic/gin"
)

// MenuHandler 菜单接口
type MenuHandler struct {
	svc *service.CatalogService
}

// NewMenuHandler 创建菜单处理器
func NewMenuHandler(svc *service.CatalogService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// MenuCreateRequest 创建菜单 / 子菜单请求，id 可选（UUID）
type MenuCreateRequest struct {
	ID          string `json:"id" example:"a2c0e3f4-1b5d-4c8e-9f7a-0d1e2f3a4b5c"`
	Title       string `json:"title" binding:"required,max=255" example:"Lunch"`
	Description string `json:"description" binding:"max=1024" example:"Served from 12:00 to 16:00"`
}

func (r MenuCreateRequest) input() service.MenuInput {
	return service.MenuInput{ID: r.ID, Title: r.Title, Description: r.Description}
}

// MenuUpdateRequest 部分更新请求，未提供的字段保持不变
type MenuUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1024"`
}

func (r MenuUpdateRequest) patch() service.MenuPatch {
	return service.MenuPatch{Title: r.Title, Description: r.Description}
}

// List 菜单列表
// @Summary 获取菜单列表
// @Description 返回全部菜单，附带子菜单数与菜品数
// @Tags 菜单
// @Produce json
// @Success 200 {array} models.MenuView
// @Router /api/v1/menus [get]
func (h *MenuHandler) List(c *gin.Context) {
	menus, err := h.svc.ListMenus(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, menus)
}

// Get 获取菜单
// @Summary 获取菜单
// @Tags 菜单
// @Produce json
// @Param menu_id path string true "菜单ID (UUID)"
// @Success 200 {object} models.MenuView
// @Failure 404 {object} ErrorResponse "menu not found"
// @Failure 422 {object} ErrorResponse "Wrong id type"
// @Router /api/v1/menus/{menu_id} [get]
func (h *MenuHandler) Get(c *gin.Context) {
	menu, err := h.svc.GetMenu(c.Request.Context(), c.Param("menu_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, menu)
}

// Create 创建菜单
// @Summary 创建菜单
// @Tags 菜单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MenuCreateRequest true "菜单信息"
// @Success 201 {object} models.MenuView
// @Failure 400 {object} ErrorResponse "Title of Menu already registered"
// @Failure 422 {object} ErrorResponse "Wrong id type"
// @Failure 500 {object} ErrorResponse "A duplicate record already exists"
// @Router /api/v1/menus [post]
func (h *MenuHandler) Create(c *gin.Context) {
	var req MenuCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	menu, err := h.svc.CreateMenu(c.Request.Context(), req.input())
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, menu)
}

// Update 部分更新菜单
// @Summary 更新菜单
// @Tags 菜单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param menu_id path string true "菜单ID (UUID)"
// @Param request body MenuUpdateRequest true "需要更新的字段"
// @Success 200 {object} models.MenuView
// @Failure 400 {object} ErrorResponse "Title of Menu already registered"
// @Failure 404 {object} ErrorResponse "menu not found"
// @Failure 422 {object} ErrorResponse "Wrong id type"
// @Router /api/v1/menus/{menu_id} [patch]
func (h *MenuHandler) Update(c *gin.Context) {
	var req MenuUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	menu, err := h.svc.UpdateMenu(c.Request.Context(), c.Param("menu_id"), req.patch())
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, menu)
}

// Delete 删除菜单及其子菜单、菜品
// @Summary 删除菜单
// @Tags 菜单
// @Produce json
// @Security BearerAuth
// @Param menu_id path string true "菜单ID (UUID)"
// @Success 200 {object} service.DeleteResult
// @Failure 404 {object} ErrorResponse "menu not found"
// @Failure 422 {object} ErrorResponse "Wrong id type"
// @Router /api/v1/menus/{menu_id} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	res, err := h.svc.DeleteMenu(c.Request.Context(), c.Param("menu_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, res)
}
