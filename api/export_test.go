package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"restaurant/models"
	"restaurant/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportRouter(svc *service.CatalogService) *gin.Engine {
	h := NewExportHandler(svc)
	router := gin.New()
	router.GET("/export/json", h.ExportJSON)
	router.GET("/export/csv", h.ExportCSV)
	router.GET("/export/excel", h.ExportExcel)
	return router
}

// expectCatalog 一个菜单、一个子菜单、一道菜品
func expectCatalog(mock sqlmock.Sqlmock) (uuid.UUID, uuid.UUID, uuid.UUID) {
	menuID, subID, dishID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT menus.id").
		WillReturnRows(sqlmock.NewRows(menuColumns).AddRow(menuID.String(), "Lunch", "", 1, 1))
	mock.ExpectQuery("SELECT submenus.id").
		WillReturnRows(sqlmock.NewRows(subMenuColumns).AddRow(subID.String(), "Soups", "", 1))
	mock.ExpectQuery("SELECT .* FROM `dishes` JOIN submenus").
		WillReturnRows(sqlmock.NewRows(dishColumns).
			AddRow(dishID.String(), "Borscht", "Beet soup", "13.50", subID.String(), now, now))
	mock.ExpectCommit()
	return menuID, subID, dishID
}

func TestExportHandler_ExportJSON(t *testing.T) {
	mock, svc, cleanup := setupMockDB(t)
	defer cleanup()
	menuID, _, _ := expectCatalog(mock)

	w := doRequest(exportRouter(svc), "GET", "/export/json", "")
	assert.Equal(t, 200, w.Code)

	var out CatalogExport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, 1, out.MenusCount)
	assert.Equal(t, int64(1), out.SubmenusCount)
	assert.Equal(t, int64(1), out.DishesCount)
	require.Len(t, out.Menus, 1)
	assert.Equal(t, menuID, out.Menus[0].ID)
	assert.Equal(t, "13.50", out.Menus[0].SubMenus[0].Dishes[0].Price.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportCSV(t *testing.T) {
	mock, svc, cleanup := setupMockDB(t)
	defer cleanup()
	_, _, dishID := expectCatalog(mock)

	w := doRequest(exportRouter(svc), "GET", "/export/csv", "")
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	body := strings.TrimPrefix(w.Body.String(), "\xEF\xBB\xBF")
	records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, csvHeaders, records[0])
	assert.Equal(t, dishID.String(), records[1][6])
	assert.Equal(t, "13.50", records[1][9])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportExcel(t *testing.T) {
	mock, svc, cleanup := setupMockDB(t)
	defer cleanup()
	_, _, dishID := expectCatalog(mock)

	w := doRequest(exportRouter(svc), "GET", "/export/excel", "")
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Menus", "Submenus", "Dishes"}, f.GetSheetList())

	id, err := f.GetCellValue("Dishes", "A2")
	require.NoError(t, err)
	assert.Equal(t, dishID.String(), id)
	price, err := f.GetCellValue("Dishes", "E2")
	require.NoError(t, err)
	assert.Equal(t, "13.50", price)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRows_KeepsEmptyParents(t *testing.T) {
	emptyMenu := models.CatalogMenu{MenuView: models.MenuView{ID: uuid.New(), Title: "Empty"}}
	emptySub := models.CatalogMenu{
		MenuView: models.MenuView{ID: uuid.New(), Title: "Dinner"},
		SubMenus: []models.CatalogSubMenu{{SubMenuView: models.SubMenuView{ID: uuid.New(), Title: "Desserts"}}},
	}

	rows := catalogRows([]models.CatalogMenu{emptyMenu, emptySub})
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Len(t, row, len(csvHeaders))
	}
	assert.Equal(t, "Empty", rows[0][1])
	assert.Equal(t, "", rows[0][4])
	assert.Equal(t, "Desserts", rows[1][4])
	assert.Equal(t, "", rows[1][9])
}
