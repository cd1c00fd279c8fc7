// Package repository 菜单目录的数据访问层
//
// 所有统计字段（submenus_count、dishes_count）均在读取时通过 LEFT JOIN 实时计算，
// 不在父表中冗余存储计数。每个写操作在独立事务中执行，并在同一事务内回读结果。
package repository

import (
	"context"
	"fmt"

	"restaurant/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository 菜单 / 子菜单 / 菜品仓储
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository 创建仓储
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// menuQuery 菜单聚合查询：子菜单数与菜品数（无子项时为 0）
func menuQuery(db *gorm.DB) *gorm.DB {
	return db.Table("menus").
		Select("menus.id, menus.title, menus.description, " +
			"COUNT(DISTINCT submenus.id) AS submenus_count, COUNT(dishes.id) AS dishes_count").
		Joins("LEFT JOIN submenus ON submenus.menu_id = menus.id").
		Joins("LEFT JOIN dishes ON dishes.submenu_id = submenus.id").
		Group("menus.id, menus.title, menus.description, menus.created_at")
}

func getMenu(db *gorm.DB, id uuid.UUID) (models.MenuView, error) {
	var menu models.MenuView
	res := menuQuery(db).Where("menus.id = ?", id).Limit(1).Scan(&menu)
	if res.Error != nil {
		return menu, fmt.Errorf("查询菜单失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return menu, ErrNotFound
	}
	return menu, nil
}

// ListMenus 菜单列表（按创建时间）
func (r *CatalogRepository) ListMenus(ctx context.Context) ([]models.MenuView, error) {
	return listMenus(r.db.WithContext(ctx))
}

func listMenus(db *gorm.DB) ([]models.MenuView, error) {
	menus := make([]models.MenuView, 0)
	if err := menuQuery(db).Order("menus.created_at ASC").Scan(&menus).Error; err != nil {
		return nil, fmt.Errorf("查询菜单列表失败: %w", err)
	}
	return menus, nil
}

// GetMenu 获取单个菜单
func (r *CatalogRepository) GetMenu(ctx context.Context, id uuid.UUID) (models.MenuView, error) {
	return getMenu(r.db.WithContext(ctx), id)
}

// MenuTitleTaken 标题是否已被其它菜单占用（exceptID 为 uuid.Nil 时不排除任何记录）
func (r *CatalogRepository) MenuTitleTaken(ctx context.Context, title string, exceptID uuid.UUID) (bool, error) {
	return titleTaken(r.db.WithContext(ctx), &models.Menu{}, title, exceptID)
}

// CreateMenu 创建菜单并回读
func (r *CatalogRepository) CreateMenu(ctx context.Context, menu *models.Menu) (models.MenuView, error) {
	var view models.MenuView
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(menu).Error; err != nil {
			return translateError(err)
		}
		var err error
		view, err = getMenu(tx, menu.ID)
		return err
	})
	return view, err
}

// UpdateMenu 部分更新菜单（只更新 updates 中出现的列）并回读
func (r *CatalogRepository) UpdateMenu(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.MenuView, error) {
	var view models.MenuView
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			res := tx.Model(&models.Menu{}).Where("id = ?", id).Updates(updates)
			if res.Error != nil {
				return translateError(res.Error)
			}
		}
		var err error
		view, err = getMenu(tx, id)
		return err
	})
	return view, err
}

// DeleteMenu 删除菜单，先删除其子菜单下的菜品，再删除子菜单和菜单本身
func (r *CatalogRepository) DeleteMenu(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subMenuIDs := tx.Model(&models.SubMenu{}).Select("id").Where("menu_id = ?", id)
		if err := tx.Where("submenu_id IN (?)", subMenuIDs).Delete(&models.Dish{}).Error; err != nil {
			return fmt.Errorf("删除菜品失败: %w", err)
		}
		if err := tx.Where("menu_id = ?", id).Delete(&models.SubMenu{}).Error; err != nil {
			return fmt.Errorf("删除子菜单失败: %w", err)
		}
		res := tx.Where("id = ?", id).Delete(&models.Menu{})
		if res.Error != nil {
			return fmt.Errorf("删除菜单失败: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Catalog 读取完整菜单树（用于导出），在同一事务中读取保证一致
func (r *CatalogRepository) Catalog(ctx context.Context) ([]models.CatalogMenu, error) {
	var catalog []models.CatalogMenu
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		menus, err := listMenus(tx)
		if err != nil {
			return err
		}
		catalog = make([]models.CatalogMenu, 0, len(menus))
		for _, m := range menus {
			subMenus, err := listSubMenus(tx, m.ID)
			if err != nil {
				return err
			}
			node := models.CatalogMenu{MenuView: m, SubMenus: make([]models.CatalogSubMenu, 0, len(subMenus))}
			for _, s := range subMenus {
				dishes, err := listDishes(tx, m.ID, s.ID)
				if err != nil {
					return err
				}
				node.SubMenus = append(node.SubMenus, models.CatalogSubMenu{SubMenuView: s, Dishes: dishes})
			}
			catalog = append(catalog, node)
		}
		return nil
	})
	return catalog, err
}

// Ping 检查数据库连通性
func (r *CatalogRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func titleTaken(db *gorm.DB, model interface{}, title string, exceptID uuid.UUID) (bool, error) {
	var count int64
	q := db.Model(model).Where("title = ?", title)
	if exceptID != uuid.Nil {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("检查标题失败: %w", err)
	}
	return count > 0, nil
}
