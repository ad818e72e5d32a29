package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarouselImage là một ảnh trong carousel tự xoay ở đầu trang chủ,
// do quản trị hệ thống quản lý
type CarouselImage struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của ảnh

	URL     string `json:"url" bson:"url"`                               // URL ảnh đã upload
	Caption string `json:"caption,omitempty" bson:"caption,omitempty"`   // Chú thích hiển thị đè lên ảnh
	LinkURL string `json:"linkUrl,omitempty" bson:"linkUrl,omitempty"`   // Trang đích khi bấm vào ảnh
	Order   int64  `json:"order" bson:"order" index:"single:1"`          // Thứ tự hiển thị tăng dần
	Visible *bool  `json:"visible" bson:"visible" default:"true"`        // Pointer để phân biệt false người dùng gửi với chưa gửi; false để ẩn tạm thời khỏi trang chủ

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// CampaignImage là một ảnh chiến dịch hiển thị ở khu vực khuyến mãi của trang chủ
type CampaignImage struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của ảnh

	URL     string `json:"url" bson:"url"`                             // URL ảnh đã upload
	Title   string `json:"title,omitempty" bson:"title,omitempty"`     // Tiêu đề chiến dịch
	LinkURL string `json:"linkUrl,omitempty" bson:"linkUrl,omitempty"` // Trang đích khi bấm vào ảnh
	Order   int64  `json:"order" bson:"order" index:"single:1"`        // Thứ tự hiển thị tăng dần
	Visible *bool  `json:"visible" bson:"visible" default:"true"`      // Pointer để phân biệt false người dùng gửi với chưa gửi; false để ẩn tạm thời khỏi trang chủ

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
