package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant/models"
	"restaurant/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repository 目录服务依赖的数据访问接口，由 repository.CatalogRepository 实现
type Repository interface {
	ListMenus(ctx context.Context) ([]models.MenuView, error)
	GetMenu(ctx context.Context, id uuid.UUID) (models.MenuView, error)
	MenuTitleTaken(ctx context.Context, title string, exceptID uuid.UUID) (bool, error)
	CreateMenu(ctx context.Context, menu *models.Menu) (models.MenuView, error)
	UpdateMenu(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.MenuView, error)
	DeleteMenu(ctx context.Context, id uuid.UUID) error

	ListSubMenus(ctx context.Context, menuID uuid.UUID) ([]models.SubMenuView, error)
	GetSubMenu(ctx context.Context, menuID, subMenuID uuid.UUID) (models.SubMenuView, error)
	SubMenuTitleTaken(ctx context.Context, title string, exceptID uuid.UUID) (bool, error)
	CreateSubMenu(ctx context.Context, subMenu *models.SubMenu) (models.SubMenuView, error)
	UpdateSubMenu(ctx context.Context, menuID, subMenuID uuid.UUID, updates map[string]interface{}) (models.SubMenuView, error)
	DeleteSubMenu(ctx context.Context, menuID, subMenuID uuid.UUID) error

	ListDishes(ctx context.Context, menuID, subMenuID uuid.UUID) ([]models.Dish, error)
	GetDish(ctx context.Context, menuID, subMenuID, dishID uuid.UUID) (models.Dish, error)
	DishTitleTaken(ctx context.Context, title string, exceptID uuid.UUID) (bool, error)
	CreateDish(ctx context.Context, menuID uuid.UUID, dish *models.Dish) (models.Dish, error)
	UpdateDish(ctx context.Context, menuID, subMenuID, dishID uuid.UUID, updates map[string]interface{}) (models.Dish, error)
	DeleteDish(ctx context.Context, menuID, subMenuID, dishID uuid.UUID) error

	Catalog(ctx context.Context) ([]models.CatalogMenu, error)
	Ping(ctx context.Context) error
}

// MenuInput 创建菜单 / 子菜单的输入，ID 可选
type MenuInput struct {
	ID          string
	Title       string
	Description string
}

// MenuPatch 部分更新菜单 / 子菜单，nil 字段保持不变
type MenuPatch struct {
	Title       *string
	Description *string
}

// DishInput 创建菜品的输入
type DishInput struct {
	ID          string
	Title       string
	Description string
	Price       models.Price
}

// DishPatch 部分更新菜品
type DishPatch struct {
	Title       *string
	Description *string
	Price       *models.Price
}

// DeleteResult 删除成功的固定响应
type DeleteResult struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

func deleted(entity Entity) DeleteResult {
	return DeleteResult{Status: true, Message: fmt.Sprintf("The %s has been deleted", entity.Lower())}
}

// CatalogService 目录服务：在调用仓储前依次完成 ID 格式、上级存在、标题唯一、记录存在的校验
type CatalogService struct {
	repo Repository
	log  zerolog.Logger
}

// NewCatalogService 创建目录服务
func NewCatalogService(repo Repository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		repo: repo,
		log:  logger.With().Str("component", "catalog").Logger(),
	}
}

// ---------- 菜单 ----------

// ListMenus 菜单列表
func (s *CatalogService) ListMenus(ctx context.Context) ([]models.MenuView, error) {
	return s.repo.ListMenus(ctx)
}

// GetMenu 获取菜单
func (s *CatalogService) GetMenu(ctx context.Context, menuID string) (models.MenuView, error) {
	ids, err := parsePathIDs(PathID{"menu_id", menuID})
	if err != nil {
		return models.MenuView{}, err
	}
	return s.getMenu(ctx, ids[0])
}

func (s *CatalogService) getMenu(ctx context.Context, id uuid.UUID) (models.MenuView, error) {
	menu, err := s.repo.GetMenu(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return menu, notFound(EntityMenu)
	}
	return menu, err
}

// CreateMenu 创建菜单
func (s *CatalogService) CreateMenu(ctx context.Context, in MenuInput) (models.MenuView, error) {
	id, err := parseBodyID(in.ID)
	if err != nil {
		return models.MenuView{}, err
	}
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return models.MenuView{}, err
	}
	if err := s.checkTitle(ctx, EntityMenu, s.repo.MenuTitleTaken, title, uuid.Nil); err != nil {
		return models.MenuView{}, err
	}

	menu, err := s.repo.CreateMenu(ctx, &models.Menu{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
	})
	if err != nil {
		return menu, storeError(EntityMenu, err)
	}
	s.log.Info().Str("menu_id", menu.ID.String()).Str("title", menu.Title).Msg("菜单已创建")
	return menu, nil
}

// UpdateMenu 部分更新菜单
func (s *CatalogService) UpdateMenu(ctx context.Context, menuID string, patch MenuPatch) (models.MenuView, error) {
	ids, err := parsePathIDs(PathID{"menu_id", menuID})
	if err != nil {
		return models.MenuView{}, err
	}
	current, err := s.getMenu(ctx, ids[0])
	if err != nil {
		return current, err
	}
	updates, err := s.menuUpdates(ctx, EntityMenu, s.repo.MenuTitleTaken, current.ID, current.Title, patch)
	if err != nil {
		return current, err
	}
	menu, err := s.repo.UpdateMenu(ctx, current.ID, updates)
	if err != nil {
		return menu, storeError(EntityMenu, err)
	}
	return menu, nil
}

// DeleteMenu 删除菜单（级联删除子菜单和菜品）
func (s *CatalogService) DeleteMenu(ctx context.Context, menuID string) (DeleteResult, error) {
	ids, err := parsePathIDs(PathID{"menu_id", menuID})
	if err != nil {
		return DeleteResult{}, err
	}
	if _, err := s.getMenu(ctx, ids[0]); err != nil {
		return DeleteResult{}, err
	}
	if err := s.repo.DeleteMenu(ctx, ids[0]); err != nil {
		return DeleteResult{}, storeError(EntityMenu, err)
	}
	s.log.Info().Str("menu_id", ids[0].String()).Msg("菜单已删除")
	return deleted(EntityMenu), nil
}

// ---------- 子菜单 ----------

// ListSubMenus 子菜单列表，菜单不存在时返回空列表
func (s *CatalogService) ListSubMenus(ctx context.Context, menuID string) ([]models.SubMenuView, error) {
	ids, err := parsePathIDs(PathID{"menu_id", menuID})
	if err != nil {
		return nil, err
	}
	return s.repo.ListSubMenus(ctx, ids[0])
}

// GetSubMenu 获取子菜单
func (s *CatalogService) GetSubMenu(ctx context.Context, menuID, subMenuID string) (models.SubMenuView, error) {
	ids, err := parseItemIDs(PathID{"menu_id", menuID}, PathID{"submenu_id", subMenuID})
	if err != nil {
		return models.SubMenuView{}, err
	}
	return s.getSubMenu(ctx, ids[0], ids[1])
}

func (s *CatalogService) getSubMenu(ctx context.Context, menuID, subMenuID uuid.UUID) (models.SubMenuView, error) {
	subMenu, err := s.repo.GetSubMenu(ctx, menuID, subMenuID)
	if errors.Is(err, repository.ErrNotFound) {
		return subMenu, notFound(EntitySubMenu)
	}
	return subMenu, err
}

// CreateSubMenu 在菜单下创建子菜单
func (s *CatalogService) CreateSubMenu(ctx context.Context, menuID string, in MenuInput) (models.SubMenuView, error) {
	ids, err := parsePathIDs(PathID{"menu_id", menuID})
	if err != nil {
		return models.SubMenuView{}, err
	}
	id, err := parseBodyID(in.ID)
	if err != nil {
		return models.SubMenuView{}, err
	}
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return models.SubMenuView{}, err
	}
	if err := s.checkParentMenu(ctx, ids[0]); err != nil {
		return models.SubMenuView{}, err
	}
	if err := s.checkTitle(ctx, EntitySubMenu, s.repo.SubMenuTitleTaken, title, uuid.Nil); err != nil {
		return models.SubMenuView{}, err
	}

	subMenu, err := s.repo.CreateSubMenu(ctx, &models.SubMenu{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		MenuID:      ids[0],
	})
	if err != nil {
		return subMenu, storeError(EntitySubMenu, err)
	}
	s.log.Info().
		Str("menu_id", ids[0].String()).
		Str("submenu_id", subMenu.ID.String()).
		Str("title", subMenu.Title).
		Msg("子菜单已创建")
	return subMenu, nil
}

// UpdateSubMenu 部分更新子菜单
func (s *CatalogService) UpdateSubMenu(ctx context.Context, menuID, subMenuID string, patch MenuPatch) (models.SubMenuView, error) {
	ids, err := parseItemIDs(PathID{"menu_id", menuID}, PathID{"submenu_id", subMenuID})
	if err != nil {
		return models.SubMenuView{}, err
	}
	current, err := s.getSubMenu(ctx, ids[0], ids[1])
	if err != nil {
		return current, err
	}
	updates, err := s.menuUpdates(ctx, EntitySubMenu, s.repo.SubMenuTitleTaken, current.ID, current.Title, patch)
	if err != nil {
		return current, err
	}
	subMenu, err := s.repo.UpdateSubMenu(ctx, ids[0], ids[1], updates)
	if err != nil {
		return subMenu, storeError(EntitySubMenu, err)
	}
	return subMenu, nil
}

// DeleteSubMenu 删除子菜单（级联删除菜品）
func (s *CatalogService) DeleteSubMenu(ctx context.Context, menuID, subMenuID string) (DeleteResult, error) {
	ids, err := parseItemIDs(PathID{"menu_id", menuID}, PathID{"submenu_id", subMenuID})
	if err != nil {
		return DeleteResult{}, err
	}
	if _, err := s.getSubMenu(ctx, ids[0], ids[1]); err != nil {
		return DeleteResult{}, err
	}
	if err := s.repo.DeleteSubMenu(ctx, ids[0], ids[1]); err != nil {
		return DeleteResult{}, storeError(EntitySubMenu, err)
	}
	s.log.Info().Str("menu_id", ids[0].String()).Str("submenu_id", ids[1].String()).Msg("子菜单已删除")
	return deleted(EntitySubMenu), nil
}

// ---------- 菜品 ----------

// ListDishes 菜品列表，路径不匹配时返回空列表
func (s *CatalogService) ListDishes(ctx context.Context, menuID, subMenuID string) ([]models.Dish, error) {
	ids, err := parsePathIDs(PathID{"menu_id", menuID}, PathID{"submenu_id", subMenuID})
	if err != nil {
		return nil, err
	}
	return s.repo.ListDishes(ctx, ids[0], ids[1])
}

// GetDish 获取菜品
func (s *CatalogService) GetDish(ctx context.Context, menuID, subMenuID, dishID string) (models.Dish, error) {
	ids, err := parseItemIDs(PathID{"menu_id", menuID}, PathID{"submenu_id", subMenuID}, PathID{"dish_id", dishID})
	if err != nil {
		return models.Dish{}, err
	}
	return s.getDish(ctx, ids[0], ids[1], ids[2])
}

func (s *CatalogService) getDish(ctx context.Context, menuID, subMenuID, dishID uuid.UUID) (models.Dish, error) {
	dish, err := s.repo.GetDish(ctx, menuID, subMenuID, dishID)
	if errors.Is(err, repository.ErrNotFound) {
		return dish, notFound(EntityDish)
	}
	return dish, err
}

// CreateDish 在子菜单下创建菜品，先检查菜单再检查子菜单
func (s *CatalogService) CreateDish(ctx context.Context, menuID, subMenuID string, in DishInput) (models.Dish, error) {
	ids, err := parsePathIDs(PathID{"menu_id", menuID}, PathID{"submenu_id", subMenuID})
	if err != nil {
		return models.Dish{}, err
	}
	id, err := parseBodyID(in.ID)
	if err != nil {
		return models.Dish{}, err
	}
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return models.Dish{}, err
	}
	if err := s.checkParentMenu(ctx, ids[0]); err != nil {
		return models.Dish{}, err
	}
	if _, err := s.repo.GetSubMenu(ctx, ids[0], ids[1]); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Dish{}, parentNotRegistered(EntitySubMenu)
		}
		return models.Dish{}, err
	}
	if err := s.checkTitle(ctx, EntityDish, s.repo.DishTitleTaken, title, uuid.Nil); err != nil {
		return models.Dish{}, err
	}

	dish, err := s.repo.CreateDish(ctx, ids[0], &models.Dish{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Price:       models.NewPrice(in.Price.Decimal),
		SubMenuID:   ids[1],
	})
	if err != nil {
		return dish, storeError(EntityDish, err)
	}
	s.log.Info().
		Str("submenu_id", ids[1].String()).
		Str("dish_id", dish.ID.String()).
		Str("price", dish.Price.String()).
		Msg("菜品已创建")
	return dish, nil
}

// UpdateDish 部分更新菜品
func (s *CatalogService) UpdateDish(ctx context.Context, menuID, subMenuID, dishID string, patch DishPatch) (models.Dish, error) {
	ids, err := parseItemIDs(PathID{"menu_id", menuID}, PathID{"submenu_id", subMenuID}, PathID{"dish_id", dishID})
	if err != nil {
		return models.Dish{}, err
	}
	current, err := s.getDish(ctx, ids[0], ids[1], ids[2])
	if err != nil {
		return current, err
	}
	updates, err := s.menuUpdates(ctx, EntityDish, s.repo.DishTitleTaken, current.ID, current.Title,
		MenuPatch{Title: patch.Title, Description: patch.Description})
	if err != nil {
		return current, err
	}
	if patch.Price != nil {
		updates["price"] = models.NewPrice(patch.Price.Decimal)
	}
	dish, err := s.repo.UpdateDish(ctx, ids[0], ids[1], ids[2], updates)
	if err != nil {
		return dish, storeError(EntityDish, err)
	}
	return dish, nil
}

// DeleteDish 删除菜品
func (s *CatalogService) DeleteDish(ctx context.Context, menuID, subMenuID, dishID string) (DeleteResult, error) {
	ids, err := parseItemIDs(PathID{"menu_id", menuID}, PathID{"submenu_id", subMenuID}, PathID{"dish_id", dishID})
	if err != nil {
		return DeleteResult{}, err
	}
	if _, err := s.getDish(ctx, ids[0], ids[1], ids[2]); err != nil {
		return DeleteResult{}, err
	}
	if err := s.repo.DeleteDish(ctx, ids[0], ids[1], ids[2]); err != nil {
		return DeleteResult{}, storeError(EntityDish, err)
	}
	s.log.Info().Str("submenu_id", ids[1].String()).Str("dish_id", ids[2].String()).Msg("菜品已删除")
	return deleted(EntityDish), nil
}

// Catalog 完整菜单树
func (s *CatalogService) Catalog(ctx context.Context) ([]models.CatalogMenu, error) {
	return s.repo.Catalog(ctx)
}

// Ping 检查存储是否可用
func (s *CatalogService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// ---------- 校验 ----------

type titleLookup func(ctx context.Context, title string, exceptID uuid.UUID) (bool, error)

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", invalidInput("title", "Title must not be empty")
	}
	return title, nil
}

func (s *CatalogService) checkParentMenu(ctx context.Context, menuID uuid.UUID) error {
	if _, err := s.repo.GetMenu(ctx, menuID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return parentNotRegistered(EntityMenu)
		}
		return err
	}
	return nil
}

func (s *CatalogService) checkTitle(ctx context.Context, entity Entity, taken titleLookup, title string, exceptID uuid.UUID) error {
	exists, err := taken(ctx, title, exceptID)
	if err != nil {
		return err
	}
	if exists {
		return duplicateTitle(entity)
	}
	return nil
}

// menuUpdates 收集需要更新的列；标题变化时检查唯一性（排除自身）
func (s *CatalogService) menuUpdates(ctx context.Context, entity Entity, taken titleLookup, id uuid.UUID, currentTitle string, patch MenuPatch) (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	if patch.Title != nil {
		title, err := normalizeTitle(*patch.Title)
		if err != nil {
			return nil, err
		}
		if title != currentTitle {
			if err := s.checkTitle(ctx, entity, taken, title, id); err != nil {
				return nil, err
			}
		}
		updates["title"] = title
	}
	if patch.Description != nil {
		updates["description"] = strings.TrimSpace(*patch.Description)
	}
	return updates, nil
}

// storeError 将仓储错误转换为领域错误
func storeError(entity Entity, err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateRecord):
		return duplicateRecord(entity, err)
	case errors.Is(err, repository.ErrNotFound):
		return notFound(entity)
	default:
		return err
	}
}
