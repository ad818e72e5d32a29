// Package router đăng ký các route thuộc domain Home: overview trang chủ, carousel, ảnh chiến dịch.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	homehdl "vitrine_commerce/internal/api/home/handler"
	homesvc "vitrine_commerce/internal/api/home/service"
	"vitrine_commerce/internal/api/middleware"
	apirouter "vitrine_commerce/internal/api/router"
)

// Register trả về hàm đăng ký route của domain home.
// homeService được truyền vào để hai handler trang chủ dùng chung cặp rotator.
func Register(homeService *homesvc.HomeService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		homeHandler, err := homehdl.NewHomeHandler(homeService)
		if err != nil {
			return fmt.Errorf("create home handler: %w", err)
		}
		campaignHandler, err := homehdl.NewCampaignImageHandler(homeService)
		if err != nil {
			return fmt.Errorf("create campaign image handler: %w", err)
		}

		sessionRequired := middleware.SessionRequired()
		adminRequired := middleware.AdminRequired()
		adminChain := []fiber.Handler{sessionRequired, adminRequired}

		// Trang chủ công khai
		apirouter.RegisterRouteWithMiddleware(v1, "/home", "GET", "/overview", nil, homeHandler.HandleGetOverview)
		apirouter.RegisterRouteWithMiddleware(v1, "/home", "GET", "/carousel", nil, homeHandler.HandleGetCarousel)
		apirouter.RegisterRouteWithMiddleware(v1, "/home", "GET", "/campaigns", nil, campaignHandler.HandleGetCampaigns)
		apirouter.RegisterRouteWithMiddleware(v1, "/home", "GET", "/countdown", nil, homeHandler.HandleGetCountdown)

		// Trạng thái và điều khiển carousel banner
		apirouter.RegisterRouteWithMiddleware(v1, "/home", "GET", "/carousel/rotation", nil, homeHandler.HandleGetCarouselRotation)
		apirouter.RegisterRouteWithMiddleware(v1, "/home", "POST", "/carousel/rotation/next", nil, homeHandler.HandleCarouselNext)
		apirouter.RegisterRouteWithMiddleware(v1, "/home", "POST", "/carousel/rotation/prev", nil, homeHandler.HandleCarouselPrev)

		// Trạng thái và điều khiển dải ảnh chiến dịch
		apirouter.RegisterRouteWithMiddleware(v1, "/home", "GET", "/campaigns/rotation", nil, campaignHandler.HandleGetRotation)
		apirouter.RegisterRouteWithMiddleware(v1, "/home", "POST", "/campaigns/rotation/next", nil, campaignHandler.HandleRotationNext)
		apirouter.RegisterRouteWithMiddleware(v1, "/home", "POST", "/campaigns/rotation/prev", nil, campaignHandler.HandleRotationPrev)

		// Quản trị ảnh trang chủ
		r.RegisterCRUDRoutes(v1, "/home/carousel-images", homeHandler, apirouter.ReadWriteConfig, adminChain)
		apirouter.RegisterRouteWithMiddleware(v1, "/home/carousel-images", "POST", "/:id/visibility", adminChain, homeHandler.HandleSetVisibility)

		r.RegisterCRUDRoutes(v1, "/home/campaign-images", campaignHandler, apirouter.ReadWriteConfig, adminChain)
		apirouter.RegisterRouteWithMiddleware(v1, "/home/campaign-images", "POST", "/:id/visibility", adminChain, campaignHandler.HandleSetVisibility)

		return nil
	}
}
