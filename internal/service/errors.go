package service

import (
	"errors"
	"fmt"
)

// 业务错误定义，handler 层通过 errors.Is/As 映射为响应码
var (
	ErrNotFound           = errors.New("资源不存在")
	ErrForbidden          = errors.New("无权操作该资源")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrEmailExists        = errors.New("邮箱已被注册")
	ErrInvalidEmail       = errors.New("邮箱格式不正确")
	ErrInvalidRole        = errors.New("角色不合法")
	ErrAdminLoginDenied   = errors.New("管理员请使用管理端登录")
	ErrNotAdmin           = errors.New("该账号不是管理员")

	ErrProductNotFound = errors.New("商品不存在")
	ErrInvalidPrice    = errors.New("价格不合法")
	ErrInvalidStock    = errors.New("库存不合法")

	ErrCartEmpty        = errors.New("购物车为空")
	ErrCartItemNotFound = errors.New("购物车项不存在")
	ErrInvalidQuantity  = errors.New("数量必须大于 0")

	ErrInvalidPaymentMethod = errors.New("不支持的支付方式")
	ErrOrderNotFound        = errors.New("订单不存在")
	ErrInvalidOrderStatus   = errors.New("订单状态不合法")

	ErrWishlistExists   = errors.New("商品已在心愿单中")
	ErrWishlistNotFound = errors.New("心愿单中不存在该商品")

	ErrInvalidPeriod = errors.New("不支持的统计周期")
)

// InsufficientStockError 库存不足错误，携带商品名与剩余库存
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s. Only %d available.", e.ProductName, e.Available)
}
