package repository

import (
	"context"
	"errors"
	"fmt"

	"restaurant/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dishQuery 菜品查询，要求子菜单与菜单两级路径同时匹配
func dishQuery(db *gorm.DB, menuID, subMenuID uuid.UUID) *gorm.DB {
	return db.Model(&models.Dish{}).
		Joins("JOIN submenus ON submenus.id = dishes.submenu_id").
		Where("dishes.submenu_id = ? AND submenus.menu_id = ?", subMenuID, menuID)
}

func listDishes(db *gorm.DB, menuID, subMenuID uuid.UUID) ([]models.Dish, error) {
	dishes := make([]models.Dish, 0)
	if err := dishQuery(db, menuID, subMenuID).Order("dishes.created_at ASC").Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("查询菜品列表失败: %w", err)
	}
	return dishes, nil
}

func getDish(db *gorm.DB, menuID, subMenuID, dishID uuid.UUID) (models.Dish, error) {
	var dish models.Dish
	if err := dishQuery(db, menuID, subMenuID).Where("dishes.id = ?", dishID).Take(&dish).Error; err != nil {
		if err = translateError(err); errors.Is(err, ErrNotFound) {
			return dish, err
		}
		return dish, fmt.Errorf("查询菜品失败: %w", err)
	}
	return dish, nil
}

// ListDishes 子菜单下的菜品列表；路径不匹配时返回空列表
func (r *CatalogRepository) ListDishes(ctx context.Context, menuID, subMenuID uuid.UUID) ([]models.Dish, error) {
	return listDishes(r.db.WithContext(ctx), menuID, subMenuID)
}

// GetDish 按完整三级路径获取菜品
func (r *CatalogRepository) GetDish(ctx context.Context, menuID, subMenuID, dishID uuid.UUID) (models.Dish, error) {
	return getDish(r.db.WithContext(ctx), menuID, subMenuID, dishID)
}

// DishTitleTaken 标题是否已被其它菜品占用
func (r *CatalogRepository) DishTitleTaken(ctx context.Context, title string, exceptID uuid.UUID) (bool, error) {
	return titleTaken(r.db.WithContext(ctx), &models.Dish{}, title, exceptID)
}

// CreateDish 创建菜品并回读
func (r *CatalogRepository) CreateDish(ctx context.Context, menuID uuid.UUID, dish *models.Dish) (models.Dish, error) {
	var created models.Dish
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dish).Error; err != nil {
			return translateError(err)
		}
		var err error
		created, err = getDish(tx, menuID, dish.SubMenuID, dish.ID)
		return err
	})
	return created, err
}

// UpdateDish 部分更新菜品并回读
func (r *CatalogRepository) UpdateDish(ctx context.Context, menuID, subMenuID, dishID uuid.UUID, updates map[string]interface{}) (models.Dish, error) {
	var updated models.Dish
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			res := tx.Model(&models.Dish{}).
				Where("id = ? AND submenu_id = ?", dishID, subMenuID).
				Updates(updates)
			if res.Error != nil {
				return translateError(res.Error)
			}
		}
		var err error
		updated, err = getDish(tx, menuID, subMenuID, dishID)
		return err
	})
	return updated, err
}

// DeleteDish 删除菜品（要求路径匹配）
func (r *CatalogRepository) DeleteDish(ctx context.Context, menuID, subMenuID, dishID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&models.SubMenu{}).Select("id").Where("id = ? AND menu_id = ?", subMenuID, menuID)
		res := tx.Where("id = ? AND submenu_id IN (?)", dishID, owned).Delete(&models.Dish{})
		if res.Error != nil {
			return fmt.Errorf("删除菜品失败: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
