package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceScale 价格保留的小数位数
const PriceScale = 2

// Price 菜品价格，始终保留两位小数
// 舍入规则：四舍五入（远离零），如 7.777 -> 7.78、115.455 -> 115.46
type Price struct {
	decimal.Decimal
}

// NewPrice 由 decimal 构造价格并按规则舍入
func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d.Round(PriceScale)}
}

// ParsePrice 解析字符串价格，如 "13.50"
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Price{}, fmt.Errorf("无效的价格 %q: %w", s, err)
	}
	return NewPrice(d), nil
}

// MustParsePrice 解析价格，失败则 panic（仅用于常量和测试数据）
func MustParsePrice(s string) Price {
	p, err := ParsePrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String 固定两位小数输出
func (p Price) String() string {
	return p.StringFixed(PriceScale)
}

// MarshalJSON 价格以字符串形式输出，如 "13.50"
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON 同时接受字符串 "7.777" 和数字 7.777
func (p *Price) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("无效的价格: %w", err)
	}
	p.Decimal = d.Round(PriceScale)
	return nil
}

// Value 写入数据库时同样固定两位小数
func (p Price) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan 从数据库 decimal(10,2) 列读取
func (p *Price) Scan(value interface{}) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}
	p.Decimal = d.Round(PriceScale)
	return nil
}
