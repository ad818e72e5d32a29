package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompanyStatus định nghĩa các trạng thái của công ty
const (
	CompanyStatusActive   = "active"   // Đang hoạt động, storefront hiển thị công khai
	CompanyStatusInactive = "inactive" // Tạm ngưng, storefront bị ẩn
)

// AdminLoginCode là mã đăng nhập của tài khoản quản trị hệ thống.
// Công ty mang mã này được coi là admin khi đăng nhập bằng định danh "adm".
const AdminLoginCode = "ADM"

// MaxSecondaryCredentials là số cặp định danh/mật khẩu phụ tối đa của một công ty
const MaxSecondaryCredentials = 3

// Company đại diện cho một công ty (tenant) sở hữu storefront riêng.
// Các trường hash mật khẩu chỉ tồn tại trong MongoDB, không bao giờ được serialize ra JSON.
type Company struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của công ty

	// ===== THÔNG TIN CƠ BẢN =====
	Name        string `json:"name" bson:"name" index:"text"`                            // Tên công ty hiển thị trên storefront
	Description string `json:"description,omitempty" bson:"description,omitempty"`      // Mô tả ngắn về công ty
	AboutUs     string `json:"aboutUs,omitempty" bson:"aboutUs,omitempty"`               // Nội dung trang giới thiệu
	OpeningHours string `json:"openingHours,omitempty" bson:"openingHours,omitempty"`    // Giờ mở cửa hiển thị ở footer
	Status      string `json:"status" bson:"status" index:"single:1" default:"active"`   // Trạng thái: active, inactive

	// ===== LIÊN HỆ =====
	Email    string `json:"email" bson:"email" index:"unique"`                  // Email chính, đồng thời là định danh đăng nhập chính
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`             // Số điện thoại liên hệ
	Whatsapp string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`       // Số Whatsapp hiển thị nút chat
	Address  string `json:"address,omitempty" bson:"address,omitempty"`         // Địa chỉ cửa hàng
	Website  string `json:"website,omitempty" bson:"website,omitempty"`         // Website riêng (nếu có)
	Facebook string `json:"facebook,omitempty" bson:"facebook,omitempty"`       // Link trang Facebook
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`    // Link trang Instagram

	// ===== GIAO DIỆN STOREFRONT =====
	LogoURL        string   `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`                           // URL logo công ty
	BannerURLs     []string `json:"bannerUrls,omitempty" bson:"bannerUrls,omitempty"`                     // Danh sách URL banner storefront
	PrimaryColor   string   `json:"primaryColor" bson:"primaryColor" default:"#1F2937"`                   // Màu chủ đạo của storefront
	SecondaryColor string   `json:"secondaryColor" bson:"secondaryColor" default:"#F59E0B"`               // Màu phụ của storefront

	// ===== ĐĂNG NHẬP =====
	// LoginCode là mã đăng nhập duy nhất; công ty mang mã "ADM" là tài khoản quản trị hệ thống.
	LoginCode         string   `json:"loginCode,omitempty" bson:"loginCode,omitempty" index:"unique"`      // Mã đăng nhập của công ty
	PrimarySecretHash string   `json:"-" bson:"primarySecretHash,omitempty"`                               // Bcrypt hash của mật khẩu chính
	SecondaryUsernames []string `json:"secondaryUsernames,omitempty" bson:"secondaryUsernames,omitempty"`  // Tối đa 3 định danh đăng nhập phụ
	SecondarySecretHashes []string `json:"-" bson:"secondarySecretHashes,omitempty"`                       // Bcrypt hash tương ứng theo chỉ số với SecondaryUsernames

	// ===== METADATA =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
