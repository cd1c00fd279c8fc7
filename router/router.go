package router

import (
	"strings"

	"restaurant/api"
	"restaurant/config"
	"restaurant/database"
	_ "restaurant/docs"
	"restaurant/middleware"
	"restaurant/repository"
	"restaurant/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	// 带与不带结尾斜杠的路径都直接处理，不做重定向
	r.RedirectTrailingSlash = false

	// CORS 中间件
	r.Use(CORSMiddleware())

	api.RegisterValidators()
	middleware.InitJWT(cfg)

	svc := service.NewCatalogService(repository.NewCatalogRepository(database.GetDB()), log)
	menuHandler := api.NewMenuHandler(svc)
	subMenuHandler := api.NewSubMenuHandler(svc)
	dishHandler := api.NewDishHandler(svc)
	exportHandler := api.NewExportHandler(svc)

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", api.NewHealthHandler(svc).Check)

	v1 := r.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		v1.Use(middleware.RateLimit(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window()))
	}
	// 写接口在启用 JWT 时需要认证
	auth := middleware.OptionalJWTAuth(cfg.JWT.Enabled)

	menus := v1.Group("/menus")
	{
		handle(menus, "GET", "", menuHandler.List)
		handle(menus, "POST", "", auth, menuHandler.Create)
		handle(menus, "GET", "/:menu_id", menuHandler.Get)
		handle(menus, "PATCH", "/:menu_id", auth, menuHandler.Update)
		handle(menus, "DELETE", "/:menu_id", auth, menuHandler.Delete)

		handle(menus, "GET", "/:menu_id/submenus", subMenuHandler.List)
		handle(menus, "POST", "/:menu_id/submenus", auth, subMenuHandler.Create)
		handle(menus, "GET", "/:menu_id/submenus/:submenu_id", subMenuHandler.Get)
		handle(menus, "PATCH", "/:menu_id/submenus/:submenu_id", auth, subMenuHandler.Update)
		handle(menus, "DELETE", "/:menu_id/submenus/:submenu_id", auth, subMenuHandler.Delete)

		dishes := "/:menu_id/submenus/:submenu_id/dishes"
		handle(menus, "GET", dishes, dishHandler.List)
		handle(menus, "POST", dishes, auth, dishHandler.Create)
		handle(menus, "GET", dishes+"/:dish_id", dishHandler.Get)
		handle(menus, "PATCH", dishes+"/:dish_id", auth, dishHandler.Update)
		handle(menus, "DELETE", dishes+"/:dish_id", auth, dishHandler.Delete)
	}

	// 导出相关
	export := v1.Group("/export")
	{
		export.GET("/json", exportHandler.ExportJSON)
		export.GET("/csv", exportHandler.ExportCSV)
		export.GET("/excel", exportHandler.ExportExcel)
	}

	return r
}

// handle 同时注册 path 与 path + "/"
func handle(g *gin.RouterGroup, method, path string, handlers ...gin.HandlerFunc) {
	g.Handle(method, path, handlers...)
	g.Handle(method, strings.TrimSuffix(path, "/")+"/", handlers...)
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
