package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubMenu 子菜单，隶属于一个菜单
type SubMenu struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"size:1024;not null;default:''"`
	MenuID      uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time `json:"-" gorm:"index"`
	UpdatedAt   time.Time `json:"-"`
	Dishes      []Dish    `json:"-" gorm:"foreignKey:SubMenuID;constraint:OnDelete:CASCADE"`
}

// TableName 设置表名
func (SubMenu) TableName() string {
	return "submenus"
}

// BeforeCreate 未指定 ID 时自动生成
func (s *SubMenu) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SubMenuView 子菜单读取视图
type SubMenuView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DishesCount int64     `json:"dishes_count"`
}
