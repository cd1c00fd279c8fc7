package service

import (
	"context"
	"errors"
	"testing"

	"restaurant/models"
	"restaurant/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*CatalogService, *fakeRepo) {
	repo := newFakeRepo()
	return NewCatalogService(repo, zerolog.Nop()), repo
}

func strPtr(s string) *string { return &s }

// seed 创建 菜单 -> 子菜单 -> 菜品 三级数据
func seed(t *testing.T, s *CatalogService) (models.MenuView, models.SubMenuView, models.Dish) {
	t.Helper()
	ctx := context.Background()
	menu, err := s.CreateMenu(ctx, MenuInput{Title: "Lunch", Description: "Daily lunch"})
	require.NoError(t, err)
	sub, err := s.CreateSubMenu(ctx, menu.ID.String(), MenuInput{Title: "Soups", Description: "Hot"})
	require.NoError(t, err)
	dish, err := s.CreateDish(ctx, menu.ID.String(), sub.ID.String(), DishInput{
		Title: "Borscht", Description: "Beet soup", Price: models.MustParsePrice("7.777"),
	})
	require.NoError(t, err)
	return menu, sub, dish
}

func assertKind(t *testing.T, err error, kind error, message string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kind), "期望错误类别 %v，实际 %v", kind, err)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, message, e.Message)
}

func TestCatalogService_CountsFollowChildren(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	menu, sub, dish := seed(t, s)

	got, err := s.GetMenu(ctx, menu.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.SubmenusCount)
	assert.Equal(t, int64(1), got.DishesCount)

	gotSub, err := s.GetSubMenu(ctx, menu.ID.String(), sub.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), gotSub.DishesCount)
	assert.Equal(t, "7.78", dish.Price.String())

	_, err = s.DeleteDish(ctx, menu.ID.String(), sub.ID.String(), dish.ID.String())
	require.NoError(t, err)
	got, err = s.GetMenu(ctx, menu.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.SubmenusCount)
	assert.Equal(t, int64(0), got.DishesCount)
}

func TestCatalogService_EmptyMenuCountsZero(t *testing.T) {
	s, _ := newTestService()
	menu, err := s.CreateMenu(context.Background(), MenuInput{Title: "Breakfast"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), menu.SubmenusCount)
	assert.Equal(t, int64(0), menu.DishesCount)
	assert.Equal(t, "", menu.Description)
}

func TestCatalogService_DeleteMenuCascades(t *testing.T) {
	s, repo := newTestService()
	ctx := context.Background()
	menu, sub, dish := seed(t, s)

	res, err := s.DeleteMenu(ctx, menu.ID.String())
	require.NoError(t, err)
	assert.Equal(t, DeleteResult{Status: true, Message: "The menu has been deleted"}, res)

	assert.Empty(t, repo.subMenus)
	assert.Empty(t, repo.dishes)

	_, err = s.GetSubMenu(ctx, menu.ID.String(), sub.ID.String())
	assertKind(t, err, ErrNotFound, "submenu not found")
	_, err = s.GetDish(ctx, menu.ID.String(), sub.ID.String(), dish.ID.String())
	assertKind(t, err, ErrNotFound, "dish not found")

	menus, err := s.ListMenus(ctx)
	require.NoError(t, err)
	assert.Empty(t, menus)
}

func TestCatalogService_DeleteSubMenuCascades(t *testing.T) {
	s, repo := newTestService()
	ctx := context.Background()
	menu, sub, _ := seed(t, s)

	res, err := s.DeleteSubMenu(ctx, menu.ID.String(), sub.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "The submenu has been deleted", res.Message)
	assert.Empty(t, repo.dishes)

	got, err := s.GetMenu(ctx, menu.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.SubmenusCount)
	assert.Equal(t, int64(0), got.DishesCount)
}

func TestCatalogService_MalformedIDs(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	menu, sub, _ := seed(t, s)

	_, err := s.GetMenu(ctx, "not-a-uuid")
	assertKind(t, err, ErrMalformedIdentifier, "Wrong id type")

	// 单条记录路径上任一 ID 不合法
	_, err = s.GetSubMenu(ctx, menu.ID.String(), "1")
	assertKind(t, err, ErrMalformedIdentifier, "One or more wrong types id")

	_, err = s.GetDish(ctx, "x", "y", uuid.NewString())
	assertKind(t, err, ErrMalformedIdentifier, "One or more wrong types id")

	_, err = s.DeleteDish(ctx, menu.ID.String(), sub.ID.String(), "bad")
	assertKind(t, err, ErrMalformedIdentifier, "One or more wrong types id")

	_, err = s.UpdateSubMenu(ctx, "1", sub.ID.String(), MenuPatch{})
	assertKind(t, err, ErrMalformedIdentifier, "One or more wrong types id")

	// 创建与列表接口只有一个 ID 不合法时
	_, err = s.CreateDish(ctx, menu.ID.String(), "1", DishInput{Title: "Tea", Price: models.MustParsePrice("1")})
	assertKind(t, err, ErrMalformedIdentifier, "Wrong id type")

	_, err = s.ListDishes(ctx, "1", sub.ID.String())
	assertKind(t, err, ErrMalformedIdentifier, "Wrong id type")

	// 显式的全零 UUID 不会被替换为生成的 ID
	_, err = s.CreateMenu(ctx, MenuInput{ID: uuid.Nil.String(), Title: "Dinner"})
	assertKind(t, err, ErrMalformedIdentifier, "Wrong id type")

	_, err = s.CreateMenu(ctx, MenuInput{ID: "123", Title: "Dinner"})
	assertKind(t, err, ErrMalformedIdentifier, "Wrong id type")

	_, err = s.ListSubMenus(ctx, "bad")
	assertKind(t, err, ErrMalformedIdentifier, "Wrong id type")
}

func TestCatalogService_NotFound(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	menu, sub, _ := seed(t, s)
	missing := uuid.NewString()

	_, err := s.GetMenu(ctx, missing)
	assertKind(t, err, ErrNotFound, "menu not found")

	_, err = s.UpdateMenu(ctx, missing, MenuPatch{Title: strPtr("x")})
	assertKind(t, err, ErrNotFound, "menu not found")

	_, err = s.DeleteMenu(ctx, missing)
	assertKind(t, err, ErrNotFound, "menu not found")

	_, err = s.GetSubMenu(ctx, menu.ID.String(), missing)
	assertKind(t, err, ErrNotFound, "submenu not found")

	_, err = s.DeleteSubMenu(ctx, missing, sub.ID.String())
	assertKind(t, err, ErrNotFound, "submenu not found")

	_, err = s.UpdateDish(ctx, menu.ID.String(), sub.ID.String(), missing, DishPatch{})
	assertKind(t, err, ErrNotFound, "dish not found")
}

func TestCatalogService_PathMustMatchHierarchy(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	_, sub, dish := seed(t, s)
	other, err := s.CreateMenu(ctx, MenuInput{Title: "Dinner"})
	require.NoError(t, err)

	// 子菜单存在但不属于该菜单
	_, err = s.GetSubMenu(ctx, other.ID.String(), sub.ID.String())
	assertKind(t, err, ErrNotFound, "submenu not found")

	_, err = s.GetDish(ctx, other.ID.String(), sub.ID.String(), dish.ID.String())
	assertKind(t, err, ErrNotFound, "dish not found")

	dishes, err := s.ListDishes(ctx, other.ID.String(), sub.ID.String())
	require.NoError(t, err)
	assert.Empty(t, dishes)
}

func TestCatalogService_ListOnMissingParentIsEmpty(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	subs, err := s.ListSubMenus(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.NotNil(t, subs)
	assert.Empty(t, subs)

	dishes, err := s.ListDishes(ctx, uuid.NewString(), uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, dishes)
}

func TestCatalogService_ParentNotRegistered(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	menu, _, _ := seed(t, s)

	_, err := s.CreateSubMenu(ctx, uuid.NewString(), MenuInput{Title: "Salads"})
	assertKind(t, err, ErrParentNotRegistered, "ID of Menu not registered")

	// 菜单不存在时优先报告菜单
	_, err = s.CreateDish(ctx, uuid.NewString(), uuid.NewString(), DishInput{Title: "Tea"})
	assertKind(t, err, ErrParentNotRegistered, "ID of Menu not registered")

	_, err = s.CreateDish(ctx, menu.ID.String(), uuid.NewString(), DishInput{Title: "Tea"})
	assertKind(t, err, ErrParentNotRegistered, "ID of Submenu not registered")
}

func TestCatalogService_DuplicateTitle(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	menu, sub, dish := seed(t, s)

	_, err := s.CreateMenu(ctx, MenuInput{Title: "Lunch"})
	assertKind(t, err, ErrDuplicateTitle, "Title of Menu already registered")

	// 标题去除首尾空白后比较
	_, err = s.CreateMenu(ctx, MenuInput{Title: "  Lunch "})
	assertKind(t, err, ErrDuplicateTitle, "Title of Menu already registered")

	_, err = s.CreateSubMenu(ctx, menu.ID.String(), MenuInput{Title: "Soups"})
	assertKind(t, err, ErrDuplicateTitle, "Title of Submenu already registered")

	_, err = s.CreateDish(ctx, menu.ID.String(), sub.ID.String(), DishInput{Title: "Borscht"})
	assertKind(t, err, ErrDuplicateTitle, "Title of Dish already registered")

	// 更新为自身当前标题不算冲突
	updated, err := s.UpdateDish(ctx, menu.ID.String(), sub.ID.String(), dish.ID.String(),
		DishPatch{Title: strPtr("Borscht")})
	require.NoError(t, err)
	assert.Equal(t, "Borscht", updated.Title)

	other, err := s.CreateMenu(ctx, MenuInput{Title: "Dinner"})
	require.NoError(t, err)
	_, err = s.UpdateMenu(ctx, other.ID.String(), MenuPatch{Title: strPtr("Lunch")})
	assertKind(t, err, ErrDuplicateTitle, "Title of Menu already registered")
}

func TestCatalogService_EmptyTitleRejected(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	menu, _, _ := seed(t, s)

	_, err := s.CreateMenu(ctx, MenuInput{Title: "   "})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = s.UpdateMenu(ctx, menu.ID.String(), MenuPatch{Title: strPtr("")})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestCatalogService_CallerSuppliedID(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	id := uuid.New()

	menu, err := s.CreateMenu(ctx, MenuInput{ID: id.String(), Title: "Brunch"})
	require.NoError(t, err)
	assert.Equal(t, id, menu.ID)

	// 主键冲突由存储层拒绝
	_, err = s.CreateMenu(ctx, MenuInput{ID: id.String(), Title: "Supper"})
	assertKind(t, err, ErrDuplicateRecord, "A duplicate record already exists")
}

func TestCatalogService_StoreConstraintMapsToDuplicateRecord(t *testing.T) {
	s, repo := newTestService()
	ctx := context.Background()
	menu, sub, _ := seed(t, s)
	repo.failWrite = repository.ErrDuplicateRecord

	_, err := s.CreateSubMenu(ctx, menu.ID.String(), MenuInput{Title: "Salads"})
	assertKind(t, err, ErrDuplicateRecord, "A duplicate record already exists")

	_, err = s.CreateDish(ctx, menu.ID.String(), sub.ID.String(), DishInput{Title: "Tea"})
	assertKind(t, err, ErrDuplicateRecord, "A duplicate record already exists")
}

func TestCatalogService_PartialUpdate(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	menu, sub, dish := seed(t, s)

	updated, err := s.UpdateMenu(ctx, menu.ID.String(), MenuPatch{Description: strPtr("Only description")})
	require.NoError(t, err)
	assert.Equal(t, "Lunch", updated.Title)
	assert.Equal(t, "Only description", updated.Description)
	assert.Equal(t, int64(1), updated.SubmenusCount)

	// 空补丁不修改任何字段
	same, err := s.UpdateSubMenu(ctx, menu.ID.String(), sub.ID.String(), MenuPatch{})
	require.NoError(t, err)
	assert.Equal(t, "Soups", same.Title)
	assert.Equal(t, "Hot", same.Description)

	price := models.MustParsePrice("115.455")
	d, err := s.UpdateDish(ctx, menu.ID.String(), sub.ID.String(), dish.ID.String(), DishPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "115.46", d.Price.String())
	assert.Equal(t, "Borscht", d.Title)
}

func TestCatalogService_ListOrderAndCatalog(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	menu, sub, _ := seed(t, s)
	_, err := s.CreateMenu(ctx, MenuInput{Title: "Dinner"})
	require.NoError(t, err)
	_, err = s.CreateDish(ctx, menu.ID.String(), sub.ID.String(), DishInput{Title: "Shchi", Price: models.MustParsePrice("5")})
	require.NoError(t, err)

	menus, err := s.ListMenus(ctx)
	require.NoError(t, err)
	require.Len(t, menus, 2)
	assert.Equal(t, "Lunch", menus[0].Title)
	assert.Equal(t, "Dinner", menus[1].Title)

	dishes, err := s.ListDishes(ctx, menu.ID.String(), sub.ID.String())
	require.NoError(t, err)
	require.Len(t, dishes, 2)
	assert.Equal(t, "5.00", dishes[1].Price.String())

	tree, err := s.Catalog(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	require.Len(t, tree[0].SubMenus, 1)
	assert.Len(t, tree[0].SubMenus[0].Dishes, 2)
	assert.Empty(t, tree[1].SubMenus)
}

func TestPathIDs(t *testing.T) {
	id := uuid.New()
	ids, err := parsePathIDs(PathID{"menu_id", " " + id.String() + " "})
	require.NoError(t, err)
	assert.Equal(t, id, ids[0])

	_, err = parsePathIDs(PathID{"menu_id", id.String()}, PathID{"submenu_id", "nope"})
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "submenu_id", e.Field)

	got, err := parseBodyID("")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, got)
}
