package homesvc

import (
	"context"
	"fmt"

	basesvc "vitrine_commerce/internal/api/base/service"
	homemodels "vitrine_commerce/internal/api/home/models"
	"vitrine_commerce/internal/common"
	"vitrine_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CarouselImageService là service quản lý ảnh carousel trang chủ
type CarouselImageService struct {
	*basesvc.BaseServiceMongoImpl[homemodels.CarouselImage]
}

// NewCarouselImageService tạo mới CarouselImageService
func NewCarouselImageService() (*CarouselImageService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CarouselImages)
	if !exist {
		return nil, fmt.Errorf("failed to get carousel_images collection: %v", common.ErrNotFound)
	}
	return &CarouselImageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[homemodels.CarouselImage](collection),
	}, nil
}

// FindVisibleOrdered trả về các ảnh carousel đang hiển thị theo thứ tự cấu hình
func (s *CarouselImageService) FindVisibleOrdered(ctx context.Context) ([]homemodels.CarouselImage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	return s.Find(ctx, map[string]interface{}{"visible": true}, opts)
}

// CampaignImageService là service quản lý ảnh chiến dịch trang chủ
type CampaignImageService struct {
	*basesvc.BaseServiceMongoImpl[homemodels.CampaignImage]
}

// NewCampaignImageService tạo mới CampaignImageService
func NewCampaignImageService() (*CampaignImageService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CampaignImages)
	if !exist {
		return nil, fmt.Errorf("failed to get campaign_images collection: %v", common.ErrNotFound)
	}
	return &CampaignImageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[homemodels.CampaignImage](collection),
	}, nil
}

// FindVisibleOrdered trả về các ảnh chiến dịch đang hiển thị theo thứ tự cấu hình
func (s *CampaignImageService) FindVisibleOrdered(ctx context.Context) ([]homemodels.CampaignImage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	return s.Find(ctx, map[string]interface{}{"visible": true}, opts)
}
