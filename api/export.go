package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"restaurant/models"
	"restaurant/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 菜单目录导出
type ExportHandler struct {
	svc *service.CatalogService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(svc *service.CatalogService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// CatalogExport JSON 导出结构
type CatalogExport struct {
	ExportedAt    time.Time            `json:"exported_at"`
	MenusCount    int                  `json:"menus_count"`
	SubmenusCount int64                `json:"submenus_count"`
	DishesCount   int64                `json:"dishes_count"`
	Menus         []models.CatalogMenu `json:"menus"`
}

var csvHeaders = []string{
	"menu_id", "menu_title", "menu_description",
	"submenu_id", "submenu_title", "submenu_description",
	"dish_id", "dish_title", "dish_description", "price",
}

func exportFilename(ext string) string {
	return fmt.Sprintf("catalog_%s.%s", time.Now().Format("20060102_150405"), ext)
}

// ExportJSON 导出完整菜单树
// @Summary 导出菜单目录为 JSON
// @Description 菜单 -> 子菜单 -> 菜品 完整树，附带汇总数量
// @Tags 导出
// @Produce json
// @Success 200 {object} CatalogExport
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	menus, err := h.svc.Catalog(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	out := CatalogExport{ExportedAt: time.Now(), MenusCount: len(menus), Menus: menus}
	for _, m := range menus {
		out.SubmenusCount += m.SubmenusCount
		out.DishesCount += m.DishesCount
	}
	Success(c, out)
}

// catalogRows 每个菜品一行；没有菜品的子菜单、没有子菜单的菜单也各占一行
func catalogRows(menus []models.CatalogMenu) [][]string {
	var rows [][]string
	for _, m := range menus {
		menuCols := []string{m.ID.String(), m.Title, m.Description}
		if len(m.SubMenus) == 0 {
			rows = append(rows, append(menuCols, "", "", "", "", "", "", ""))
			continue
		}
		for _, s := range m.SubMenus {
			subCols := append(append([]string{}, menuCols...), s.ID.String(), s.Title, s.Description)
			if len(s.Dishes) == 0 {
				rows = append(rows, append(subCols, "", "", "", ""))
				continue
			}
			for _, d := range s.Dishes {
				row := append(append([]string{}, subCols...), d.ID.String(), d.Title, d.Description, d.Price.String())
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// ExportCSV 导出菜单目录为 CSV
// @Summary 导出菜单目录为 CSV
// @Tags 导出
// @Produce text/csv
// @Success 200 {file} file "CSV 文件"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	menus, err := h.svc.Catalog(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 正确识别 UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(csvHeaders); err != nil {
		InternalError(c, "Failed to generate CSV")
		return
	}
	if err := writer.WriteAll(catalogRows(menus)); err != nil {
		InternalError(c, "Failed to generate CSV")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename("csv")))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出菜单目录为 Excel，菜单 / 子菜单 / 菜品各一个工作表
// @Summary 导出菜单目录为 Excel
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "xlsx 文件"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	menus, err := h.svc.Catalog(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	f, err := buildCatalogWorkbook(menus)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to generate Excel"))
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename("xlsx")))
	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

const (
	sheetMenus    = "Menus"
	sheetSubMenus = "Submenus"
	sheetDishes   = "Dishes"
)

func buildCatalogWorkbook(menus []models.CatalogMenu) (*excelize.File, error) {
	f := excelize.NewFile()

	// 表头样式
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", sheetMenus); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{sheetSubMenus, sheetDishes} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	var menuRows, subRows, dishRows [][]interface{}
	for _, m := range menus {
		menuRows = append(menuRows, []interface{}{m.ID.String(), m.Title, m.Description, m.SubmenusCount, m.DishesCount})
		for _, s := range m.SubMenus {
			subRows = append(subRows, []interface{}{s.ID.String(), m.ID.String(), s.Title, s.Description, s.DishesCount})
			for _, d := range s.Dishes {
				dishRows = append(dishRows, []interface{}{d.ID.String(), s.ID.String(), d.Title, d.Description, d.Price.String()})
			}
		}
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]interface{}
	}{
		{sheetMenus, []string{"id", "title", "description", "submenus_count", "dishes_count"}, menuRows},
		{sheetSubMenus, []string{"id", "menu_id", "title", "description", "dishes_count"}, subRows},
		{sheetDishes, []string{"id", "submenu_id", "title", "description", "price"}, dishRows},
	}
	for _, sh := range sheets {
		if err := writeSheet(f, sh.name, sh.headers, sh.rows, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}, headerStyle int) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	// id 列较宽
	return f.SetColWidth(sheet, "A", "B", 38)
}
