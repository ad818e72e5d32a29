package homehdl

import (
	"fmt"

	basehdl "vitrine_commerce/internal/api/base/handler"
	basesvc "vitrine_commerce/internal/api/base/service"
	homedto "vitrine_commerce/internal/api/home/dto"
	homemodels "vitrine_commerce/internal/api/home/models"
	homesvc "vitrine_commerce/internal/api/home/service"

	"github.com/gofiber/fiber/v3"
)

// homeImageFilterOptions dùng chung cho hai handler ảnh trang chủ
var homeImageFilterOptions = basehdl.FilterOptions{
	DeniedFields:     []string{"password", "token", "secret", "hash"},
	AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
	MaxFields:        10,
}

// HomeHandler xử lý các request của trang chủ: overview, carousel, đếm ngược
type HomeHandler struct {
	*basehdl.BaseHandler[homemodels.CarouselImage, homedto.CarouselImageCreateInput, homedto.CarouselImageUpdateInput]
	HomeService     *homesvc.HomeService
	CarouselService *homesvc.CarouselImageService
}

// NewHomeHandler tạo mới HomeHandler.
// homeService là instance dùng chung của toàn ứng dụng để hai handler
// trang chủ thao tác trên cùng một cặp rotator.
func NewHomeHandler(homeService *homesvc.HomeService) (*HomeHandler, error) {
	carouselService, err := homesvc.NewCarouselImageService()
	if err != nil {
		return nil, fmt.Errorf("create carousel image service: %v", err)
	}
	hdl := &HomeHandler{
		HomeService:     homeService,
		CarouselService: carouselService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[homemodels.CarouselImage, homedto.CarouselImageCreateInput, homedto.CarouselImageUpdateInput](carouselService.BaseServiceMongoImpl)
	hdl.SetFilterOptions(homeImageFilterOptions)
	return hdl, nil
}

// HandleGetOverview trả về toàn bộ dữ liệu trang chủ trong một response
func (h *HomeHandler) HandleGetOverview(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		overview, err := h.HomeService.GetOverview(c.Context())
		h.HandleResponse(c, overview, err)
		return nil
	})
}

// HandleGetCarousel trả về các ảnh carousel đang hiển thị theo thứ tự
func (h *HomeHandler) HandleGetCarousel(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		images, err := h.CarouselService.FindVisibleOrdered(c.Context())
		h.HandleResponse(c, images, err)
		return nil
	})
}

// HandleGetCountdown trả về trạng thái đồng hồ đếm ngược flash sale
func (h *HomeHandler) HandleGetCountdown(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		h.HandleResponse(c, h.HomeService.GetCountdown(), nil)
		return nil
	})
}

// HandleGetCarouselRotation trả về trạng thái hiện tại của carousel banner
func (h *HomeHandler) HandleGetCarouselRotation(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		state, err := h.HomeService.CarouselRotation(c.Context())
		h.HandleResponse(c, state, err)
		return nil
	})
}

// HandleCarouselNext chuyển carousel banner sang ảnh kế tiếp
func (h *HomeHandler) HandleCarouselNext(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		state, err := h.HomeService.CarouselAdvance(c.Context(), 1)
		h.HandleResponse(c, state, err)
		return nil
	})
}

// HandleCarouselPrev chuyển carousel banner về ảnh trước
func (h *HomeHandler) HandleCarouselPrev(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		state, err := h.HomeService.CarouselAdvance(c.Context(), -1)
		h.HandleResponse(c, state, err)
		return nil
	})
}

// HandleSetVisibility đặt cờ hiển thị của một ảnh carousel.
// Endpoint riêng vì partial update bỏ qua giá trị false.
func (h *HomeHandler) HandleSetVisibility(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		setImageVisibility(c, h.BaseHandler.BaseService, h.GetIDFromContext(c), func(data interface{}, err error) {
			h.HandleResponse(c, data, err)
		})
		return nil
	})
}

// CampaignImageHandler xử lý CRUD ảnh chiến dịch trang chủ
type CampaignImageHandler struct {
	*basehdl.BaseHandler[homemodels.CampaignImage, homedto.CampaignImageCreateInput, homedto.CampaignImageUpdateInput]
	HomeService     *homesvc.HomeService
	CampaignService *homesvc.CampaignImageService
}

// NewCampaignImageHandler tạo mới CampaignImageHandler
func NewCampaignImageHandler(homeService *homesvc.HomeService) (*CampaignImageHandler, error) {
	campaignService, err := homesvc.NewCampaignImageService()
	if err != nil {
		return nil, fmt.Errorf("create campaign image service: %v", err)
	}
	hdl := &CampaignImageHandler{
		HomeService:     homeService,
		CampaignService: campaignService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[homemodels.CampaignImage, homedto.CampaignImageCreateInput, homedto.CampaignImageUpdateInput](campaignService.BaseServiceMongoImpl)
	hdl.SetFilterOptions(homeImageFilterOptions)
	return hdl, nil
}

// HandleGetCampaigns trả về các ảnh chiến dịch đang hiển thị theo thứ tự
func (h *CampaignImageHandler) HandleGetCampaigns(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		images, err := h.CampaignService.FindVisibleOrdered(c.Context())
		h.HandleResponse(c, images, err)
		return nil
	})
}

// HandleGetRotation trả về trạng thái hiện tại của dải ảnh chiến dịch
func (h *CampaignImageHandler) HandleGetRotation(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		state, err := h.HomeService.CampaignRotation(c.Context())
		h.HandleResponse(c, state, err)
		return nil
	})
}

// HandleRotationNext chuyển dải chiến dịch sang ảnh kế tiếp
func (h *CampaignImageHandler) HandleRotationNext(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		state, err := h.HomeService.CampaignAdvance(c.Context(), 1)
		h.HandleResponse(c, state, err)
		return nil
	})
}

// HandleRotationPrev chuyển dải chiến dịch về ảnh trước
func (h *CampaignImageHandler) HandleRotationPrev(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		state, err := h.HomeService.CampaignAdvance(c.Context(), -1)
		h.HandleResponse(c, state, err)
		return nil
	})
}

// HandleSetVisibility đặt cờ hiển thị của một ảnh chiến dịch
func (h *CampaignImageHandler) HandleSetVisibility(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		setImageVisibility(c, h.BaseHandler.BaseService, h.GetIDFromContext(c), func(data interface{}, err error) {
			h.HandleResponse(c, data, err)
		})
		return nil
	})
}
