package repository

import (
	"context"
	"fmt"

	"restaurant/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// subMenuQuery 子菜单聚合查询：菜品数（无菜品时为 0）
func subMenuQuery(db *gorm.DB) *gorm.DB {
	return db.Table("submenus").
		Select("submenus.id, submenus.title, submenus.description, COUNT(dishes.id) AS dishes_count").
		Joins("LEFT JOIN dishes ON dishes.submenu_id = submenus.id").
		Group("submenus.id, submenus.title, submenus.description, submenus.created_at")
}

func listSubMenus(db *gorm.DB, menuID uuid.UUID) ([]models.SubMenuView, error) {
	subMenus := make([]models.SubMenuView, 0)
	err := subMenuQuery(db).
		Where("submenus.menu_id = ?", menuID).
		Order("submenus.created_at ASC").
		Scan(&subMenus).Error
	if err != nil {
		return nil, fmt.Errorf("查询子菜单列表失败: %w", err)
	}
	return subMenus, nil
}

func getSubMenu(db *gorm.DB, menuID, subMenuID uuid.UUID) (models.SubMenuView, error) {
	var subMenu models.SubMenuView
	res := subMenuQuery(db).
		Where("submenus.menu_id = ? AND submenus.id = ?", menuID, subMenuID).
		Limit(1).
		Scan(&subMenu)
	if res.Error != nil {
		return subMenu, fmt.Errorf("查询子菜单失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return subMenu, ErrNotFound
	}
	return subMenu, nil
}

// ListSubMenus 菜单下的子菜单列表
func (r *CatalogRepository) ListSubMenus(ctx context.Context, menuID uuid.UUID) ([]models.SubMenuView, error) {
	return listSubMenus(r.db.WithContext(ctx), menuID)
}

// GetSubMenu 获取菜单下的单个子菜单
func (r *CatalogRepository) GetSubMenu(ctx context.Context, menuID, subMenuID uuid.UUID) (models.SubMenuView, error) {
	return getSubMenu(r.db.WithContext(ctx), menuID, subMenuID)
}

// SubMenuTitleTaken 标题是否已被其它子菜单占用
func (r *CatalogRepository) SubMenuTitleTaken(ctx context.Context, title string, exceptID uuid.UUID) (bool, error) {
	return titleTaken(r.db.WithContext(ctx), &models.SubMenu{}, title, exceptID)
}

// CreateSubMenu 创建子菜单并回读
func (r *CatalogRepository) CreateSubMenu(ctx context.Context, subMenu *models.SubMenu) (models.SubMenuView, error) {
	var view models.SubMenuView
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(subMenu).Error; err != nil {
			return translateError(err)
		}
		var err error
		view, err = getSubMenu(tx, subMenu.MenuID, subMenu.ID)
		return err
	})
	return view, err
}

// UpdateSubMenu 部分更新子菜单并回读
func (r *CatalogRepository) UpdateSubMenu(ctx context.Context, menuID, subMenuID uuid.UUID, updates map[string]interface{}) (models.SubMenuView, error) {
	var view models.SubMenuView
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			res := tx.Model(&models.SubMenu{}).
				Where("id = ? AND menu_id = ?", subMenuID, menuID).
				Updates(updates)
			if res.Error != nil {
				return translateError(res.Error)
			}
		}
		var err error
		view, err = getSubMenu(tx, menuID, subMenuID)
		return err
	})
	return view, err
}

// DeleteSubMenu 删除子菜单及其菜品
func (r *CatalogRepository) DeleteSubMenu(ctx context.Context, menuID, subMenuID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("submenu_id = ?", subMenuID).Delete(&models.Dish{}).Error; err != nil {
			return fmt.Errorf("删除菜品失败: %w", err)
		}
		res := tx.Where("id = ? AND menu_id = ?", subMenuID, menuID).Delete(&models.SubMenu{})
		if res.Error != nil {
			return fmt.Errorf("删除子菜单失败: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
