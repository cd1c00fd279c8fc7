package service

import (
	"errors"
	"fmt"
	"strings"
)

// 目录领域错误类别，使用 errors.Is 判断
var (
	// ErrMalformedIdentifier 路径或请求体中的 ID 不是合法 UUID
	ErrMalformedIdentifier = errors.New("malformed identifier")

	// ErrNotFound ID 合法但记录不存在
	ErrNotFound = errors.New("not found")

	// ErrParentNotRegistered 创建时声明的上级菜单/子菜单不存在
	ErrParentNotRegistered = errors.New("parent not registered")

	// ErrDuplicateTitle 同类记录中已存在相同标题
	ErrDuplicateTitle = errors.New("title already registered")

	// ErrDuplicateRecord 数据库约束拒绝写入（应用层检查未能拦截）
	ErrDuplicateRecord = errors.New("duplicate record")

	// ErrInvalidInput 请求内容不合法（如标题为空）
	ErrInvalidInput = errors.New("invalid input")
)

// Entity 目录中的实体层级
type Entity string

const (
	EntityMenu    Entity = "Menu"
	EntitySubMenu Entity = "Submenu"
	EntityDish    Entity = "Dish"
)

// Lower 小写名称，用于 "menu not found" 一类提示
func (e Entity) Lower() string {
	return strings.ToLower(string(e))
}

// Error 目录领域错误
type Error struct {
	Kind    error
	Entity  Entity
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Is 按错误类别匹配
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func malformedID(field string) *Error {
	return &Error{Kind: ErrMalformedIdentifier, Field: field, Message: "Wrong id type"}
}

func malformedIDs() *Error {
	return &Error{Kind: ErrMalformedIdentifier, Message: "One or more wrong types id"}
}

func notFound(entity Entity) *Error {
	return &Error{Kind: ErrNotFound, Entity: entity, Message: entity.Lower() + " not found"}
}

func parentNotRegistered(entity Entity) *Error {
	return &Error{Kind: ErrParentNotRegistered, Entity: entity, Message: fmt.Sprintf("ID of %s not registered", entity)}
}

func duplicateTitle(entity Entity) *Error {
	return &Error{Kind: ErrDuplicateTitle, Entity: entity, Field: "title", Message: fmt.Sprintf("Title of %s already registered", entity)}
}

func duplicateRecord(entity Entity, cause error) *Error {
	return &Error{Kind: ErrDuplicateRecord, Entity: entity, Message: "A duplicate record already exists", Err: cause}
}

func invalidInput(field, message string) *Error {
	return &Error{Kind: ErrInvalidInput, Field: field, Message: message}
}
