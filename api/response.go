package api

import (
	"errors"
	"net/http"

	"restaurant/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Success 成功响应，直接返回实体
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error 错误响应
func Error(c *gin.Context, code int, detail string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Detail: detail})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, detail string) {
	Error(c, http.StatusInternalServerError, detail)
}

// StatusOf 领域错误对应的 HTTP 状态码
func StatusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrMalformedIdentifier):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrParentNotRegistered),
		errors.Is(err, service.ErrDuplicateTitle),
		errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HandleError 将服务层错误写为 {"detail": ...}
// 非领域错误在 release 模式下不暴露内部信息
func HandleError(c *gin.Context, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	var domainErr *service.Error
	if errors.As(err, &domainErr) {
		Error(c, status, domainErr.Message)
		return
	}
	InternalError(c, SafeErrorMessage(err, "Internal server error"))
}

// bindError 请求体解析或校验失败
func bindError(c *gin.Context, err error) {
	BadRequest(c, SafeErrorMessage(err, "Invalid request body"))
}
