package global

import (
	"vitrine_commerce/config"
	"vitrine_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Store_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Store_CollectionName struct {
	Companies      string // Tên collection cho công ty (gian hàng)
	Products       string // Tên collection cho sản phẩm
	CarouselImages string // Tên collection cho ảnh carousel trang chủ
	CampaignImages string // Tên collection cho ảnh chiến dịch trang chủ
}

// Các biến toàn cục
var Validate *validator.Validate                                                      // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                     // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                        // Cấu hình của server
var MongoDB_ColNames MongoDB_Store_CollectionName = *new(MongoDB_Store_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
