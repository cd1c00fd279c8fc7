package api

import (
	"reflect"
	"sync"

	"restaurant/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxPrice decimal(10,2) 能存储的上限（不含）
var maxPrice = decimal.New(1, 8)

var registerOnce sync.Once

// RegisterValidators 向 gin 的校验器注册价格类型与 price 规则
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(priceValue, models.Price{})
		_ = v.RegisterValidation("price", validatePrice)
	})
}

// priceValue 校验时将 Price 视为其两位小数字符串
func priceValue(field reflect.Value) interface{} {
	if p, ok := field.Interface().(models.Price); ok {
		return p.String()
	}
	return nil
}

// validatePrice 价格不能为负，且不超过 decimal(10,2) 的范围
func validatePrice(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative() && d.LessThan(maxPrice)
}
