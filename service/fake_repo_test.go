package service

import (
	"context"

	"restaurant/models"
	"restaurant/repository"

	"github.com/google/uuid"
)

// fakeRepo 内存实现的仓储，行为与数据库实现保持一致（按插入顺序返回、实时统计）
type fakeRepo struct {
	menus    []models.Menu
	subMenus []models.SubMenu
	dishes   []models.Dish

	// 模拟数据库约束：下一次写入返回该错误
	failWrite error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{}
}

func (f *fakeRepo) menuView(m models.Menu) models.MenuView {
	v := models.MenuView{ID: m.ID, Title: m.Title, Description: m.Description}
	for _, s := range f.subMenus {
		if s.MenuID != m.ID {
			continue
		}
		v.SubmenusCount++
		for _, d := range f.dishes {
			if d.SubMenuID == s.ID {
				v.DishesCount++
			}
		}
	}
	return v
}

func (f *fakeRepo) subMenuView(s models.SubMenu) models.SubMenuView {
	v := models.SubMenuView{ID: s.ID, Title: s.Title, Description: s.Description}
	for _, d := range f.dishes {
		if d.SubMenuID == s.ID {
			v.DishesCount++
		}
	}
	return v
}

func (f *fakeRepo) ListMenus(ctx context.Context) ([]models.MenuView, error) {
	out := make([]models.MenuView, 0, len(f.menus))
	for _, m := range f.menus {
		out = append(out, f.menuView(m))
	}
	return out, nil
}

func (f *fakeRepo) GetMenu(ctx context.Context, id uuid.UUID) (models.MenuView, error) {
	for _, m := range f.menus {
		if m.ID == id {
			return f.menuView(m), nil
		}
	}
	return models.MenuView{}, repository.ErrNotFound
}

func (f *fakeRepo) MenuTitleTaken(ctx context.Context, title string, exceptID uuid.UUID) (bool, error) {
	for _, m := range f.menus {
		if m.Title == title && m.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateMenu(ctx context.Context, menu *models.Menu) (models.MenuView, error) {
	if f.failWrite != nil {
		return models.MenuView{}, f.failWrite
	}
	if menu.ID == uuid.Nil {
		menu.ID = uuid.New()
	}
	for _, m := range f.menus {
		if m.ID == menu.ID {
			return models.MenuView{}, repository.ErrDuplicateRecord
		}
	}
	f.menus = append(f.menus, *menu)
	return f.menuView(*menu), nil
}

func (f *fakeRepo) UpdateMenu(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.MenuView, error) {
	for i := range f.menus {
		if f.menus[i].ID != id {
			continue
		}
		if v, ok := updates["title"]; ok {
			f.menus[i].Title = v.(string)
		}
		if v, ok := updates["description"]; ok {
			f.menus[i].Description = v.(string)
		}
		return f.menuView(f.menus[i]), nil
	}
	return models.MenuView{}, repository.ErrNotFound
}

func (f *fakeRepo) DeleteMenu(ctx context.Context, id uuid.UUID) error {
	idx := -1
	for i, m := range f.menus {
		if m.ID == id {
			idx = i
		}
	}
	if idx < 0 {
		return repository.ErrNotFound
	}
	f.menus = append(f.menus[:idx], f.menus[idx+1:]...)

	kept := f.subMenus[:0]
	for _, s := range f.subMenus {
		if s.MenuID == id {
			f.removeDishesOf(s.ID)
			continue
		}
		kept = append(kept, s)
	}
	f.subMenus = kept
	return nil
}

func (f *fakeRepo) removeDishesOf(subMenuID uuid.UUID) {
	kept := f.dishes[:0]
	for _, d := range f.dishes {
		if d.SubMenuID != subMenuID {
			kept = append(kept, d)
		}
	}
	f.dishes = kept
}

func (f *fakeRepo) findSubMenu(menuID, subMenuID uuid.UUID) (int, bool) {
	for i, s := range f.subMenus {
		if s.ID == subMenuID && s.MenuID == menuID {
			return i, true
		}
	}
	return -1, false
}

func (f *fakeRepo) ListSubMenus(ctx context.Context, menuID uuid.UUID) ([]models.SubMenuView, error) {
	out := make([]models.SubMenuView, 0)
	for _, s := range f.subMenus {
		if s.MenuID == menuID {
			out = append(out, f.subMenuView(s))
		}
	}
	return out, nil
}

func (f *fakeRepo) GetSubMenu(ctx context.Context, menuID, subMenuID uuid.UUID) (models.SubMenuView, error) {
	if i, ok := f.findSubMenu(menuID, subMenuID); ok {
		return f.subMenuView(f.subMenus[i]), nil
	}
	return models.SubMenuView{}, repository.ErrNotFound
}

func (f *fakeRepo) SubMenuTitleTaken(ctx context.Context, title string, exceptID uuid.UUID) (bool, error) {
	for _, s := range f.subMenus {
		if s.Title == title && s.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateSubMenu(ctx context.Context, subMenu *models.SubMenu) (models.SubMenuView, error) {
	if f.failWrite != nil {
		return models.SubMenuView{}, f.failWrite
	}
	if subMenu.ID == uuid.Nil {
		subMenu.ID = uuid.New()
	}
	f.subMenus = append(f.subMenus, *subMenu)
	return f.subMenuView(*subMenu), nil
}

func (f *fakeRepo) UpdateSubMenu(ctx context.Context, menuID, subMenuID uuid.UUID, updates map[string]interface{}) (models.SubMenuView, error) {
	i, ok := f.findSubMenu(menuID, subMenuID)
	if !ok {
		return models.SubMenuView{}, repository.ErrNotFound
	}
	if v, ok := updates["title"]; ok {
		f.subMenus[i].Title = v.(string)
	}
	if v, ok := updates["description"]; ok {
		f.subMenus[i].Description = v.(string)
	}
	return f.subMenuView(f.subMenus[i]), nil
}

func (f *fakeRepo) DeleteSubMenu(ctx context.Context, menuID, subMenuID uuid.UUID) error {
	i, ok := f.findSubMenu(menuID, subMenuID)
	if !ok {
		return repository.ErrNotFound
	}
	f.subMenus = append(f.subMenus[:i], f.subMenus[i+1:]...)
	f.removeDishesOf(subMenuID)
	return nil
}

func (f *fakeRepo) findDish(menuID, subMenuID, dishID uuid.UUID) (int, bool) {
	if _, ok := f.findSubMenu(menuID, subMenuID); !ok {
		return -1, false
	}
	for i, d := range f.dishes {
		if d.ID == dishID && d.SubMenuID == subMenuID {
			return i, true
		}
	}
	return -1, false
}

func (f *fakeRepo) ListDishes(ctx context.Context, menuID, subMenuID uuid.UUID) ([]models.Dish, error) {
	out := make([]models.Dish, 0)
	if _, ok := f.findSubMenu(menuID, subMenuID); !ok {
		return out, nil
	}
	for _, d := range f.dishes {
		if d.SubMenuID == subMenuID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetDish(ctx context.Context, menuID, subMenuID, dishID uuid.UUID) (models.Dish, error) {
	if i, ok := f.findDish(menuID, subMenuID, dishID); ok {
		return f.dishes[i], nil
	}
	return models.Dish{}, repository.ErrNotFound
}

func (f *fakeRepo) DishTitleTaken(ctx context.Context, title string, exceptID uuid.UUID) (bool, error) {
	for _, d := range f.dishes {
		if d.Title == title && d.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateDish(ctx context.Context, menuID uuid.UUID, dish *models.Dish) (models.Dish, error) {
	if f.failWrite != nil {
		return models.Dish{}, f.failWrite
	}
	if dish.ID == uuid.Nil {
		dish.ID = uuid.New()
	}
	f.dishes = append(f.dishes, *dish)
	return *dish, nil
}

func (f *fakeRepo) UpdateDish(ctx context.Context, menuID, subMenuID, dishID uuid.UUID, updates map[string]interface{}) (models.Dish, error) {
	i, ok := f.findDish(menuID, subMenuID, dishID)
	if !ok {
		return models.Dish{}, repository.ErrNotFound
	}
	if v, ok := updates["title"]; ok {
		f.dishes[i].Title = v.(string)
	}
	if v, ok := updates["description"]; ok {
		f.dishes[i].Description = v.(string)
	}
	if v, ok := updates["price"]; ok {
		f.dishes[i].Price = v.(models.Price)
	}
	return f.dishes[i], nil
}

func (f *fakeRepo) DeleteDish(ctx context.Context, menuID, subMenuID, dishID uuid.UUID) error {
	i, ok := f.findDish(menuID, subMenuID, dishID)
	if !ok {
		return repository.ErrNotFound
	}
	f.dishes = append(f.dishes[:i], f.dishes[i+1:]...)
	return nil
}

func (f *fakeRepo) Catalog(ctx context.Context) ([]models.CatalogMenu, error) {
	out := make([]models.CatalogMenu, 0, len(f.menus))
	for _, m := range f.menus {
		node := models.CatalogMenu{MenuView: f.menuView(m), SubMenus: []models.CatalogSubMenu{}}
		subs, _ := f.ListSubMenus(ctx, m.ID)
		for _, s := range subs {
			dishes, _ := f.ListDishes(ctx, m.ID, s.ID)
			node.SubMenus = append(node.SubMenus, models.CatalogSubMenu{SubMenuView: s, Dishes: dishes})
		}
		out = append(out, node)
	}
	return out, nil
}

func (f *fakeRepo) Ping(ctx context.Context) error {
	return nil
}
