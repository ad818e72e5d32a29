package main

import (
	"context"

	"vitrine_commerce/config"
	catalogmodels "vitrine_commerce/internal/api/catalog/models"
	companymodels "vitrine_commerce/internal/api/company/models"
	homemodels "vitrine_commerce/internal/api/home/models"
	"vitrine_commerce/internal/database"
	"vitrine_commerce/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Companies = "companies"
	global.MongoDB_ColNames.Products = "catalog_products"
	global.MongoDB_ColNames.CarouselImages = "home_carousel_images"
	global.MongoDB_ColNames.CampaignImages = "home_campaign_images"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, hex_color, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err) // Ghi log lỗi nếu khởi tạo database thất bại
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection từ model tags
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName_Store
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Companies), companymodels.Company{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Products), catalogmodels.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CarouselImages), homemodels.CarouselImage{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CampaignImages), homemodels.CampaignImage{})

	// Index compound không định nghĩa được từ model tags
	if err := database.CreateStoreAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Warnf("Failed to create additional indexes: %v", err)
	}
}
