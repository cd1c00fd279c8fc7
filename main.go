package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"restaurant/config"
	"restaurant/database"
	"restaurant/logger"
	"restaurant/middleware"
	"restaurant/router"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title 餐厅菜单 API
// @version 1.0
// @description 菜单 / 子菜单 / 菜品三级目录的增删改查，附带实时统计的子菜单数与菜品数
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
	tokenFor    string
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8000 或 :8000")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
	flag.StringVar(&tokenFor, "token", "", "为指定名称签发写接口令牌并退出")
}

// listenAddr 自动添加冒号前缀
func listenAddr(p string) string {
	if strings.Contains(p, ":") {
		return p
	}
	return ":" + p
}

// issueToken 签发写接口使用的 Bearer 令牌，有效期取 jwt.expire_hours
func issueToken(cfg *config.Config, name string) (string, error) {
	if cfg.JWT.Secret == "" {
		return "", errors.New("未配置 jwt.secret，无法签发令牌")
	}
	middleware.InitJWT(cfg)
	return middleware.GenerateToken(0, name, cfg.JWT.ExpireTime)
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("restaurant v%s\n", version)
		return
	}

	// 加载配置（.env -> 内置配置 -> 外部配置 -> 环境变量）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("加载配置失败")
	}

	if tokenFor != "" {
		token, err := issueToken(cfg, tokenFor)
		if err != nil {
			log.Fatal().Err(err).Msg("签发令牌失败")
		}
		fmt.Println(token)
		return
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		cfg.Server.Port = port
	}
	addr := listenAddr(cfg.Server.Port)

	logg := logger.New(cfg.Log)
	config.PrintConfig()

	// 初始化数据库
	if err := database.Init(cfg, logg); err != nil {
		logg.Fatal().Err(err).Msg("数据库初始化失败")
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: router.SetupRouter(cfg, logg),
	}

	go func() {
		logg.Info().
			Str("addr", addr).
			Str("swagger", fmt.Sprintf("http://localhost%s/swagger/index.html", addr)).
			Str("api", fmt.Sprintf("http://localhost%s/api/v1/menus", addr)).
			Msg("餐厅菜单服务已启动")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("服务器启动失败")
		}
	}()

	// 优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info().Msg("正在关闭服务器")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Error().Err(err).Msg("服务器关闭超时")
	}

	if sqlDB, err := database.GetDB().DB(); err == nil {
		_ = sqlDB.Close()
	}
	logg.Info().Msg("服务器已退出")
}
