package catalogdto

// ProductCreateInput dữ liệu đầu vào khi tạo sản phẩm.
// CompanyID chỉ admin được chỉ định, công ty thường nhận từ phiên đăng nhập.
type ProductCreateInput struct {
	Name        string  `json:"name" validate:"required,no_xss,max=200"`
	Description string  `json:"description,omitempty" validate:"omitempty,no_xss,max=2000"`
	Price       float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	ImageURL    string  `json:"imageUrl,omitempty" validate:"omitempty,max=1000"`
	Category    string  `json:"category,omitempty" validate:"omitempty,no_xss,max=100"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=active hidden" transform:"string,default=active"`
	CompanyID   string  `json:"companyId,omitempty" transform:"str_objectid,optional"`
}

// ProductUpdateInput dữ liệu đầu vào khi cập nhật sản phẩm
type ProductUpdateInput struct {
	Name        string  `json:"name,omitempty" validate:"omitempty,no_xss,max=200"`
	Description string  `json:"description,omitempty" validate:"omitempty,no_xss,max=2000"`
	Price       float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	ImageURL    string  `json:"imageUrl,omitempty" validate:"omitempty,max=1000"`
	Category    string  `json:"category,omitempty" validate:"omitempty,no_xss,max=100"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=active hidden"`
}

// CatalogSearchQuery params từ query string của endpoint tìm kiếm công khai
type CatalogSearchQuery struct {
	Query    string `query:"query" validate:"omitempty,max=200"`
	Mode     string `query:"mode" validate:"omitempty,oneof=byProduct bySeller"`
	Sort     string `query:"sort" validate:"omitempty,oneof=relevance nameAsc priceAsc priceDesc"`
	Page     int64  `query:"page" validate:"omitempty,min=1"`
	PageSize int64  `query:"pageSize" validate:"omitempty,min=1,max=100"`
}

// CompanyCatalogParams params từ URL của endpoint danh mục theo công ty
type CompanyCatalogParams struct {
	CompanyID string `uri:"companyId" validate:"required" transform:"str_objectid"`
}
