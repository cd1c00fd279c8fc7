package router

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant/config"
	"restaurant/database"
	"restaurant/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var menuColumns = []string{"id", "title", "description", "submenus_count", "dishes_count"}

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Mode: gin.TestMode},
		JWT:       config.JWTConfig{Secret: "router-test-secret"},
		RateLimit: config.RateLimitConfig{Enabled: false},
	}
}

func serve(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	r := SetupRouter(testConfig(), zerolog.Nop())
	w := serve(r, "GET", "/health", "", "")
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_TrailingSlashAccepted(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT menus.id").WillReturnRows(sqlmock.NewRows(menuColumns))
	mock.ExpectQuery("SELECT menus.id").WillReturnRows(sqlmock.NewRows(menuColumns))

	r := SetupRouter(testConfig(), zerolog.Nop())
	for _, path := range []string{"/api/v1/menus", "/api/v1/menus/"} {
		w := serve(r, "GET", path, "", "")
		assert.Equal(t, 200, w.Code, path)
		assert.JSONEq(t, `[]`, w.Body.String())
	}

	// ID 格式错误在访问数据库前返回
	w := serve(r, "GET", "/api/v1/menus/1/submenus/", "", "")
	assert.Equal(t, 422, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_JWTRequiredForWrites(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	cfg.JWT.Enabled = true
	r := SetupRouter(cfg, zerolog.Nop())

	// 无 token 的写请求被拒绝
	w := serve(r, "POST", "/api/v1/menus", `{"title":"Lunch"}`, "")
	assert.Equal(t, 401, w.Code)

	// 读请求不需要认证
	mock.ExpectQuery("SELECT menus.id").WillReturnRows(sqlmock.NewRows(menuColumns))
	w = serve(r, "GET", "/api/v1/menus", "", "")
	assert.Equal(t, 200, w.Code)

	// 携带有效 token 时进入业务校验
	token, err := middleware.GenerateToken(1, "manager", time.Hour)
	require.NoError(t, err)
	w = serve(r, "DELETE", "/api/v1/menus/not-a-uuid", "", token)
	assert.Equal(t, 422, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_RateLimit(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, MaxRequests: 1, WindowSeconds: 60}
	r := SetupRouter(cfg, zerolog.Nop())

	assert.Equal(t, 422, serve(r, "GET", "/api/v1/menus/bad", "", "").Code)
	assert.Equal(t, 429, serve(r, "GET", "/api/v1/menus/bad", "", "").Code)
	// 健康检查不限流
	assert.Equal(t, 200, serve(r, "GET", "/health", "", "").Code)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	r := SetupRouter(testConfig(), zerolog.Nop())
	w := serve(r, "OPTIONS", "/api/v1/menus", "", "")
	assert.Equal(t, 204, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
