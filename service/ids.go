package service

import (
	"strings"

	"github.com/google/uuid"
)

// PathID 路径参数名与原始值
type PathID struct {
	Name  string
	Value string
}

// parsePathIDs 在访问数据库之前校验全部路径 ID
// 只有一个不合法时返回 "Wrong id type"，多个同时不合法时返回概括性的提示
func parsePathIDs(params ...PathID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(params))
	var bad []string
	for i, p := range params {
		id, err := uuid.Parse(strings.TrimSpace(p.Value))
		if err != nil {
			bad = append(bad, p.Name)
			continue
		}
		ids[i] = id
	}
	switch len(bad) {
	case 0:
		return ids, nil
	case 1:
		return nil, malformedID(bad[0])
	default:
		return nil, malformedIDs()
	}
}

// parseItemIDs 校验子菜单 / 菜品单条记录路径上的全部 ID
// 路径含多个 ID 时，任意一个不合法都返回 "One or more wrong types id"
func parseItemIDs(params ...PathID) ([]uuid.UUID, error) {
	ids, err := parsePathIDs(params...)
	if err != nil && len(params) > 1 {
		return nil, malformedIDs()
	}
	return ids, err
}

// parseBodyID 解析调用方指定的 ID，为空时返回 uuid.Nil 由数据层生成
// 显式传入全零 UUID 视为不合法
func parseBodyID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, malformedID("id")
	}
	return id, nil
}
