// Package router đăng ký các route thuộc domain Catalog: sản phẩm và tìm kiếm danh mục.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "vitrine_commerce/internal/api/catalog/handler"
	companysvc "vitrine_commerce/internal/api/company/service"
	"vitrine_commerce/internal/api/middleware"
	apirouter "vitrine_commerce/internal/api/router"
	storagesvc "vitrine_commerce/internal/api/storage/service"
)

// Register trả về hàm đăng ký route của domain catalog
func Register(sessionService *companysvc.SessionService, storage storagesvc.ObjectStorage) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		productHandler, err := cataloghdl.NewProductHandler(sessionService, storage)
		if err != nil {
			return fmt.Errorf("create product handler: %w", err)
		}

		sessionRequired := middleware.SessionRequired()

		// Tìm kiếm công khai, không cần đăng nhập
		apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/search", nil, productHandler.HandleSearchCatalog)
		apirouter.RegisterRouteWithMiddleware(v1, "/companies", "GET", "/:companyId/products", nil, productHandler.HandleCompanyCatalog)

		// Tìm kiếm theo trạng thái đã lưu trong phiên
		apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/session-search", []fiber.Handler{sessionRequired}, productHandler.HandleSessionSearch)

		// CRUD sản phẩm cho công ty đang đăng nhập, base handler tự giới hạn theo companyId
		r.RegisterCRUDRoutes(v1, "/products", productHandler, apirouter.ReadWriteConfig, []fiber.Handler{sessionRequired})

		// Tạo sản phẩm kèm ảnh trong một request multipart (hai pha, có xóa bù)
		apirouter.RegisterRouteWithMiddleware(v1, "/products", "POST", "/with-image", []fiber.Handler{sessionRequired}, productHandler.HandleCreateWithImage)

		return nil
	}
}
