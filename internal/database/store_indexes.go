// Package database - Index bổ sung cho cửa hàng (compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"vitrine_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateStoreAdditionalIndexes tạo các index bổ sung cho cửa hàng (compound).
// Gọi sau CreateIndexes cho từng collection.
func CreateStoreAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// catalog_products: (companyId, createdAt desc) — danh sách sản phẩm theo công ty, mới nhất trước
	products := db.Collection(global.MongoDB_ColNames.Products)
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "companyId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("product_company_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_products: createdAt desc — trang chủ lấy toàn bộ catalog mới nhất trước
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("product_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// home_carousel_images: order asc — carousel hiển thị theo thứ tự
	carousel := db.Collection(global.MongoDB_ColNames.CarouselImages)
	if _, err := carousel.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "order", Value: 1},
		},
		Options: options.Index().SetName("carousel_order"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// home_campaign_images: (visible, order) — chỉ lấy chiến dịch đang hiển thị, theo thứ tự
	campaigns := db.Collection(global.MongoDB_ColNames.CampaignImages)
	if _, err := campaigns.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "visible", Value: 1},
			{Key: "order", Value: 1},
		},
		Options: options.Index().SetName("campaign_visible_order"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
