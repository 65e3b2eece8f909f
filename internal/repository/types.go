package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page        int
	PageSize    int
	Category    string
	ArtisanID   uint
	Search      string
	WithArtisan bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Role     string
	Keyword  string
}
