package api

import (
	"restaurant/models"
	"restaurant/service"

	"github.com/gin-gonic/gin"
)

// DishHandler 菜品接口
type DishHandler struct {
	svc *service.CatalogService
}

// NewDishHandler 创建菜品处理器
func NewDishHandler(svc *service.CatalogService) *DishHandler {
	return &DishHandler{svc: svc}
}

// DishCreateRequest 创建菜品请求，price 可为字符串 "13.50" 或数字 13.5
type DishCreateRequest struct {
	ID          string        `json:"id"`
	Title       string        `json:"title" binding:"required,max=255" example:"Borscht"`
	Description string        `json:"description" binding:"max=1024" example:"Beet soup with sour cream"`
	Price       *models.Price `json:"price" binding:"required,price" swaggertype:"string" example:"13.50"`
}

// DishUpdateRequest 部分更新菜品
type DishUpdateRequest struct {
	Title       *string       `json:"title" binding:"omitempty,max=255"`
	Description *string       `json:"description" binding:"omitempty,max=1024"`
	Price       *models.Price `json:"price" binding:"omitempty,price" swaggertype:"string" example:"12.50"`
}

// List 菜品列表
// @Summary 获取菜品列表
// @Description 菜单与子菜单路径不匹配时返回空列表
// @Tags 菜品
// @Produce json
// @Param menu_id path string true "菜单ID (UUID)"
// @Param submenu_id path string true "子菜单ID (UUID)"
// @Success 200 {array} models.Dish
// @Failure 422 {object} ErrorResponse "Wrong id type"
// @Router /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes [get]
func (h *DishHandler) List(c *gin.Context) {
	dishes, err := h.svc.ListDishes(c.Request.Context(), c.Param("menu_id"), c.Param("submenu_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, dishes)
}

// Get 获取菜品
// @Summary 获取菜品
// @Tags 菜品
// @Produce json
// @Param menu_id path string true "菜单ID (UUID)"
// @Param submenu_id path string true "子菜单ID (UUID)"
// @Param dish_id path string true "菜品ID (UUID)"
// @Success 200 {object} models.Dish
// @Failure 404 {object} ErrorResponse "dish not found"
// @Failure 422 {object} ErrorResponse "One or more wrong types id"
// @Router /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id} [get]
func (h *DishHandler) Get(c *gin.Context) {
	dish, err := h.svc.GetDish(c.Request.Context(), c.Param("menu_id"), c.Param("submenu_id"), c.Param("dish_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, dish)
}

// Create 创建菜品
// @Summary 创建菜品
// @Description 价格四舍五入保留两位小数
// @Tags 菜品
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param menu_id path string true "菜单ID (UUID)"
// @Param submenu_id path string true "子菜单ID (UUID)"
// @Param request body DishCreateRequest true "菜品信息"
// @Success 201 {object} models.Dish
// @Failure 400 {object} ErrorResponse "ID of Submenu not registered"
// @Failure 422 {object} ErrorResponse "Wrong id type"
// @Router /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes [post]
func (h *DishHandler) Create(c *gin.Context) {
	var req DishCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	dish, err := h.svc.CreateDish(c.Request.Context(), c.Param("menu_id"), c.Param("submenu_id"), service.DishInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, dish)
}

// Update 部分更新菜品
// @Summary 更新菜品
// @Tags 菜品
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param menu_id path string true "菜单ID (UUID)"
// @Param submenu_id path string true "子菜单ID (UUID)"
// @Param dish_id path string true "菜品ID (UUID)"
// @Param request body DishUpdateRequest true "需要更新的字段"
// @Success 200 {object} models.Dish
// @Failure 400 {object} ErrorResponse "Title of Dish already registered"
// @Failure 404 {object} ErrorResponse "dish not found"
// @Router /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id} [patch]
func (h *DishHandler) Update(c *gin.Context) {
	var req DishUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	dish, err := h.svc.UpdateDish(c.Request.Context(), c.Param("menu_id"), c.Param("submenu_id"), c.Param("dish_id"),
		service.DishPatch{Title: req.Title, Description: req.Description, Price: req.Price})
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, dish)
}

// Delete 删除菜品
// @Summary 删除菜品
// @Tags 菜品
// @Produce json
// @Security BearerAuth
// @Param menu_id path string true "菜单ID (UUID)"
// @Param submenu_id path string true "子菜单ID (UUID)"
// @Param dish_id path string true "菜品ID (UUID)"
// @Success 200 {object} service.DeleteResult
// @Failure 404 {object} ErrorResponse "dish not found"
// @Router /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id} [delete]
func (h *DishHandler) Delete(c *gin.Context) {
	res, err := h.svc.DeleteDish(c.Request.Context(), c.Param("menu_id"), c.Param("submenu_id"), c.Param("dish_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, res)
}
