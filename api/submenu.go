package api

import (
	"restaurant/service"

	"github.com/gin-gonic/gin"
)

// SubMenuHandler 子菜单接口
type SubMenuHandler struct {
	svc *service.CatalogService
}

// NewSubMenuHandler 创建子菜单处理器
func NewSubMenuHandler(svc *service.CatalogService) *SubMenuHandler {
	return &SubMenuHandler{svc: svc}
}

// List 子菜单列表
// @Summary 获取子菜单列表
// @Description 菜单不存在时返回空列表
// @Tags 子菜单
// @Produce json
// @Param menu_id path string true "菜单ID (UUID)"
// @Success 200 {array} models.SubMenuView
// @Failure 422 {object} ErrorResponse "Wrong id type"
// @Router /api/v1/menus/{menu_id}/submenus [get]
func (h *SubMenuHandler) List(c *gin.Context) {
	subMenus, err := h.svc.ListSubMenus(c.Request.Context(), c.Param("menu_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, subMenus)
}

// Get 获取子菜单
// @Summary 获取子菜单
// @Tags 子菜单
// @Produce json
// @Param menu_id path string true "菜单ID (UUID)"
// @Param submenu_id path string true "子菜单ID (UUID)"
// @Success 200 {object} models.SubMenuView
// @Failure 404 {object} ErrorResponse "submenu not found"
// @Failure 422 {object} ErrorResponse "Wrong id type"
// @Router /api/v1/menus/{menu_id}/submenus/{submenu_id} [get]
func (h *SubMenuHandler) Get(c *gin.Context) {
	subMenu, err := h.svc.GetSubMenu(c.Request.Context(), c.Param("menu_id"), c.Param("submenu_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, subMenu)
}

// Create 创建子菜单
// @Summary 创建子菜单
// @Tags 子菜单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param menu_id path string true "菜单ID (UUID)"
// @Param request body MenuCreateRequest true "子菜单信息"
// @Success 201 {object} models.SubMenuView
// @Failure 400 {object} ErrorResponse "ID of Menu not registered"
// @Failure 422 {object} ErrorResponse "Wrong id type"
// @Router /api/v1/menus/{menu_id}/submenus [post]
func (h *SubMenuHandler) Create(c *gin.Context) {
	var req MenuCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	subMenu, err := h.svc.CreateSubMenu(c.Request.Context(), c.Param("menu_id"), req.input())
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, subMenu)
}

// Update 部分更新子菜单
// @Summary 更新子菜单
// @Tags 子菜单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param menu_id path string true "菜单ID (UUID)"
// @Param submenu_id path string true "子菜单ID (UUID)"
// @Param request body MenuUpdateRequest true "需要更新的字段"
// @Success 200 {object} models.SubMenuView
// @Failure 400 {object} ErrorResponse "Title of Submenu already registered"
// @Failure 404 {object} ErrorResponse "submenu not found"
// @Failure 422 {object} ErrorResponse "One or more wrong types id"
// @Router /api/v1/menus/{menu_id}/submenus/{submenu_id} [patch]
func (h *SubMenuHandler) Update(c *gin.Context) {
	var req MenuUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	subMenu, err := h.svc.UpdateSubMenu(c.Request.Context(), c.Param("menu_id"), c.Param("submenu_id"), req.patch())
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, subMenu)
}

// Delete 删除子菜单及其菜品
// @Summary 删除子菜单
// @Tags 子菜单
// @Produce json
// @Security BearerAuth
// @Param menu_id path string true "菜单ID (UUID)"
// @Param submenu_id path string true "子菜单ID (UUID)"
// @Success 200 {object} service.DeleteResult
// @Failure 404 {object} ErrorResponse "submenu not found"
// @Failure 422 {object} ErrorResponse "Wrong id type"
// @Router /api/v1/menus/{menu_id}/submenus/{submenu_id} [delete]
func (h *SubMenuHandler) Delete(c *gin.Context) {
	res, err := h.svc.DeleteSubMenu(c.Request.Context(), c.Param("menu_id"), c.Param("submenu_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, res)
}
