package constants

// 用户角色常量
const (
	RoleBuyer   = "buyer"
	RoleArtisan = "artisan"
	RoleAdmin   = "admin"
)

// IsValidRole 判断角色是否属于闭合角色集合
func IsValidRole(role string) bool {
	switch role {
	case RoleBuyer, RoleArtisan, RoleAdmin:
		return true
	}
	return false
}

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// IsValidOrderStatus 判断订单状态是否合法
func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// 支付方式常量
const (
	PaymentMethodCreditCard     = "credit_card"
	PaymentMethodCashOnDelivery = "cash_on_delivery"
)

// 统计周期常量
const (
	AnalyticsPeriodDay   = "day"
	AnalyticsPeriodWeek  = "week"
	AnalyticsPeriodMonth = "month"
	AnalyticsPeriodYear  = "year"
)

// 异步队列常量
const (
	QueueDefault = "default"

	TaskAnalyticsOrderPlaced = "analytics:order_placed"
)
