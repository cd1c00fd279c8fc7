package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Menu 菜单（顶级）
type Menu struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"size:1024;not null;default:''"`
	CreatedAt   time.Time `json:"-" gorm:"index"`
	UpdatedAt   time.Time `json:"-"`
	SubMenus    []SubMenu `json:"-" gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

// TableName 设置表名
func (Menu) TableName() string {
	return "menus"
}

// BeforeCreate 未指定 ID 时自动生成
func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MenuView 菜单读取视图，附带实时统计的子菜单数与菜品数
type MenuView struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	SubmenusCount int64     `json:"submenus_count"`
	DishesCount   int64     `json:"dishes_count"`
}
