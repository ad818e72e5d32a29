package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductStatus định nghĩa các trạng thái của sản phẩm
const (
	ProductStatusActive = "active" // Hiển thị trên storefront
	ProductStatusHidden = "hidden" // Ẩn khỏi storefront, chỉ thấy trong trang quản trị
)

// Product đại diện cho một sản phẩm thuộc về một công ty
type Product struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của sản phẩm

	Name        string  `json:"name" bson:"name" index:"text"`                       // Tên sản phẩm
	Description string  `json:"description,omitempty" bson:"description,omitempty"`  // Mô tả sản phẩm
	Price       float64 `json:"price" bson:"price"`                                  // Giá bán, 0 nếu chưa đặt giá
	ImageURL    string  `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`        // URL ảnh đại diện
	Category    string  `json:"category,omitempty" bson:"category,omitempty" index:"single:1"` // Danh mục sản phẩm
	Status      string  `json:"status" bson:"status" index:"single:1" default:"active"`        // Trạng thái: active, hidden

	CompanyID primitive.ObjectID `json:"companyId" bson:"companyId" index:"single:1"` // Công ty sở hữu sản phẩm

	// SellerName là tên công ty bán, được join tại thời điểm đọc, không lưu trong collection
	SellerName string `json:"sellerName,omitempty" bson:"-"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"` // Thời gian tạo, dùng cho thứ tự mới nhất trước
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                   // Thời gian cập nhật
}
