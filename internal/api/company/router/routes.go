// Package router đăng ký các route thuộc domain Company: đăng nhập, phiên, hồ sơ công ty.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	companyhdl "vitrine_commerce/internal/api/company/handler"
	companysvc "vitrine_commerce/internal/api/company/service"
	"vitrine_commerce/internal/api/middleware"
	apirouter "vitrine_commerce/internal/api/router"
)

// Register trả về hàm đăng ký route của domain company.
// SessionService được truyền vào để handler dùng chung kho phiên với middleware.
func Register(sessionService *companysvc.SessionService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		companyHandler, err := companyhdl.NewCompanyHandler(sessionService)
		if err != nil {
			return fmt.Errorf("create company handler: %w", err)
		}

		sessionRequired := middleware.SessionRequired()
		adminRequired := middleware.AdminRequired()

		// Đăng nhập công khai, đăng xuất cần phiên
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/login", nil, companyHandler.HandleLogin)
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", []fiber.Handler{sessionRequired}, companyHandler.HandleLogout)

		// Trạng thái tìm kiếm lưu theo phiên
		apirouter.RegisterRouteWithMiddleware(v1, "/session", "GET", "/search-state", []fiber.Handler{sessionRequired}, companyHandler.HandleGetSearchState)
		apirouter.RegisterRouteWithMiddleware(v1, "/session", "PUT", "/search-state", []fiber.Handler{sessionRequired}, companyHandler.HandleUpdateSearchState)

		// Hồ sơ của công ty đang đăng nhập
		apirouter.RegisterRouteWithMiddleware(v1, "/companies/profile", "GET", "", []fiber.Handler{sessionRequired}, companyHandler.HandleGetProfile)
		apirouter.RegisterRouteWithMiddleware(v1, "/companies/profile", "PUT", "", []fiber.Handler{sessionRequired}, companyHandler.HandleUpdateProfile)
		apirouter.RegisterRouteWithMiddleware(v1, "/companies/profile", "POST", "/change-secret", []fiber.Handler{sessionRequired}, companyHandler.HandleChangeSecret)
		apirouter.RegisterRouteWithMiddleware(v1, "/companies/profile", "PUT", "/secondary-credentials", []fiber.Handler{sessionRequired}, companyHandler.HandleSetSecondaryCredentials)

		// Storefront công khai của một công ty
		apirouter.RegisterRouteWithMiddleware(v1, "/companies", "GET", "/:id/storefront", nil, companyHandler.HandleGetPublicStorefront)

		// Quản trị hệ thống: đăng ký công ty mới và CRUD đầy đủ.
		// Đặt dưới prefix /admin/companies để middleware của group không
		// chặn các route công khai /companies/* đăng ký sau (Use của Fiber
		// match theo prefix đường dẫn, không theo group).
		apirouter.RegisterRouteWithMiddleware(v1, "/admin/companies", "POST", "/register", []fiber.Handler{sessionRequired, adminRequired}, companyHandler.HandleRegister)
		r.RegisterCRUDRoutes(v1, "/admin/companies", companyHandler, apirouter.ReadWriteConfig, []fiber.Handler{sessionRequired, adminRequired})

		return nil
	}
}
