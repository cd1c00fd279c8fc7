package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dish 菜品，隶属于一个子菜单
type Dish struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"size:1024;not null;default:''"`
	Price       Price     `json:"price" gorm:"type:decimal(10,2);not null;default:0"`
	SubMenuID   uuid.UUID `json:"-" gorm:"column:submenu_id;type:char(36);not null;index"`
	CreatedAt   time.Time `json:"-" gorm:"index"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName 设置表名
func (Dish) TableName() string {
	return "dishes"
}

// BeforeCreate 未指定 ID 时自动生成
func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// CatalogMenu 导出用的完整菜单树
type CatalogMenu struct {
	MenuView
	SubMenus []CatalogSubMenu `json:"submenus"`
}

// CatalogSubMenu 导出用的子菜单节点
type CatalogSubMenu struct {
	SubMenuView
	Dishes []Dish `json:"dishes"`
}
