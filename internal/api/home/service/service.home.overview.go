package homesvc

import (
	"context"

	catalogsvc "vitrine_commerce/internal/api/catalog/service"
	homemodels "vitrine_commerce/internal/api/home/models"

	"golang.org/x/sync/errgroup"
)

// HomeOverview là toàn bộ dữ liệu trang chủ gom trong một response
type HomeOverview struct {
	CarouselImages []homemodels.CarouselImage `json:"carouselImages"` // Ảnh carousel theo thứ tự
	CampaignImages []homemodels.CampaignImage `json:"campaignImages"` // Ảnh chiến dịch theo thứ tự
	Products       catalogsvc.SearchResult    `json:"products"`       // Trang đầu của danh mục, mới nhất trước
	Countdown      CountdownView              `json:"countdown"`      // Đồng hồ đếm ngược flash sale
}

// HomeService gom dữ liệu trang chủ từ các service thành phần
type HomeService struct {
	carouselService *CarouselImageService
	campaignService *CampaignImageService
	productService  *catalogsvc.ProductService
	countdown       *HourCountdown
	carouselRotator *Rotator
	campaignRotator *Rotator
}

// NewHomeService tạo mới HomeService
func NewHomeService() (*HomeService, error) {
	carouselService, err := NewCarouselImageService()
	if err != nil {
		return nil, err
	}
	campaignService, err := NewCampaignImageService()
	if err != nil {
		return nil, err
	}
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, err
	}
	return &HomeService{
		carouselService: carouselService,
		campaignService: campaignService,
		productService:  productService,
		countdown:       NewHourCountdown(),
		carouselRotator: NewRotator(0, DefaultRotateInterval),
		campaignRotator: NewRotator(0, DefaultRotateInterval),
	}, nil
}

// StartRotation chạy chu kỳ tự chuyển ảnh của hai carousel trang chủ.
// Các goroutine dừng khi ctx bị hủy.
func (s *HomeService) StartRotation(ctx context.Context) {
	s.carouselRotator.Start(ctx)
	s.campaignRotator.Start(ctx)
}

// RotationState là trạng thái hiện tại của một carousel
type RotationState struct {
	Index int `json:"index"` // Chỉ số ảnh đang hiển thị
	Count int `json:"count"` // Tổng số ảnh đang hiển thị
}

// CarouselRotation đọc lại danh sách ảnh và trả về trạng thái carousel banner
func (s *HomeService) CarouselRotation(ctx context.Context) (RotationState, error) {
	if err := s.refreshRotator(ctx, s.carouselRotator, s.carouselCount); err != nil {
		return RotationState{}, err
	}
	return RotationState{Index: s.carouselRotator.Index(), Count: s.carouselRotator.Count()}, nil
}

// CarouselAdvance chuyển carousel banner theo hướng delta (1 = tiếp, -1 = lùi)
func (s *HomeService) CarouselAdvance(ctx context.Context, delta int) (RotationState, error) {
	if err := s.refreshRotator(ctx, s.carouselRotator, s.carouselCount); err != nil {
		return RotationState{}, err
	}
	return s.advanceRotator(s.carouselRotator, delta), nil
}

// CampaignRotation đọc lại danh sách ảnh và trả về trạng thái dải chiến dịch
func (s *HomeService) CampaignRotation(ctx context.Context) (RotationState, error) {
	if err := s.refreshRotator(ctx, s.campaignRotator, s.campaignCount); err != nil {
		return RotationState{}, err
	}
	return RotationState{Index: s.campaignRotator.Index(), Count: s.campaignRotator.Count()}, nil
}

// CampaignAdvance chuyển dải chiến dịch theo hướng delta (1 = tiếp, -1 = lùi)
func (s *HomeService) CampaignAdvance(ctx context.Context, delta int) (RotationState, error) {
	if err := s.refreshRotator(ctx, s.campaignRotator, s.campaignCount); err != nil {
		return RotationState{}, err
	}
	return s.advanceRotator(s.campaignRotator, delta), nil
}

func (s *HomeService) carouselCount(ctx context.Context) (int, error) {
	images, err := s.carouselService.FindVisibleOrdered(ctx)
	if err != nil {
		return 0, err
	}
	return len(images), nil
}

func (s *HomeService) campaignCount(ctx context.Context) (int, error) {
	images, err := s.campaignService.FindVisibleOrdered(ctx)
	if err != nil {
		return 0, err
	}
	return len(images), nil
}

// refreshRotator đồng bộ số ảnh của rotator với danh sách đang hiển thị trong database
func (s *HomeService) refreshRotator(ctx context.Context, r *Rotator, count func(context.Context) (int, error)) error {
	n, err := count(ctx)
	if err != nil {
		return err
	}
	r.SetCount(n)
	return nil
}

// advanceRotator dịch rotator theo delta. Chuyển thủ công không đặt lại chu kỳ tự chuyển.
func (s *HomeService) advanceRotator(r *Rotator, delta int) RotationState {
	var index int
	if delta < 0 {
		index = r.Prev()
	} else {
		index = r.Next()
	}
	return RotationState{Index: index, Count: r.Count()}
}

// GetOverview tải song song toàn bộ dữ liệu trang chủ.
// Một truy vấn thất bại thì cả overview thất bại, không trả về kết quả dở dang.
func (s *HomeService) GetOverview(ctx context.Context) (*HomeOverview, error) {
	overview := &HomeOverview{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		images, err := s.carouselService.FindVisibleOrdered(gctx)
		if err != nil {
			return err
		}
		overview.CarouselImages = images
		return nil
	})

	g.Go(func() error {
		images, err := s.campaignService.FindVisibleOrdered(gctx)
		if err != nil {
			return err
		}
		overview.CampaignImages = images
		return nil
	})

	g.Go(func() error {
		result, err := s.productService.SearchCatalog(gctx, catalogsvc.SearchParams{
			Mode:     catalogsvc.SearchModeByProduct,
			Sort:     catalogsvc.SortRelevance,
			Page:     1,
			PageSize: catalogsvc.DefaultPageSize,
		})
		if err != nil {
			return err
		}
		overview.Products = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview.Countdown = s.countdown.Snapshot()
	return overview, nil
}

// GetCountdown trả về trạng thái hiện tại của đồng hồ đếm ngược
func (s *HomeService) GetCountdown() CountdownView {
	return s.countdown.Snapshot()
}
