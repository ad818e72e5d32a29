package catalogsvc

import (
	"context"
	"fmt"

	basesvc "vitrine_commerce/internal/api/base/service"
	catalogmodels "vitrine_commerce/internal/api/catalog/models"
	companymodels "vitrine_commerce/internal/api/company/models"
	"vitrine_commerce/internal/common"
	"vitrine_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductService là service quản lý sản phẩm và cung cấp dữ liệu cho pipeline tìm kiếm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
	companyService *basesvc.BaseServiceMongoImpl[companymodels.Company]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	companyCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Companies)
	if !exist {
		return nil, fmt.Errorf("failed to get companies collection: %v", common.ErrNotFound)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](productCol),
		companyService:       basesvc.NewBaseServiceMongo[companymodels.Company](companyCol),
	}, nil
}

// FindPublicCatalog trả về toàn bộ sản phẩm đang hiển thị, mới nhất trước,
// đã join tên công ty bán vào từng sản phẩm
func (s *ProductService) FindPublicCatalog(ctx context.Context) ([]catalogmodels.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	products, err := s.Find(ctx, map[string]interface{}{"status": catalogmodels.ProductStatusActive}, opts)
	if err != nil {
		return nil, err
	}
	return s.attachSellerNames(ctx, products)
}

// FindCompanyCatalog trả về sản phẩm đang hiển thị của một công ty, mới nhất trước
func (s *ProductService) FindCompanyCatalog(ctx context.Context, companyID primitive.ObjectID) ([]catalogmodels.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	products, err := s.Find(ctx, map[string]interface{}{
		"companyId": companyID,
		"status":    catalogmodels.ProductStatusActive,
	}, opts)
	if err != nil {
		return nil, err
	}
	return s.attachSellerNames(ctx, products)
}

// SearchCatalog tải danh mục công khai rồi chạy pipeline tìm kiếm trên đó
func (s *ProductService) SearchCatalog(ctx context.Context, params SearchParams) (SearchResult, error) {
	products, err := s.FindPublicCatalog(ctx)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchProducts(products, params), nil
}

// SearchCompanyCatalog chạy pipeline tìm kiếm trong phạm vi một công ty, không phân trang
func (s *ProductService) SearchCompanyCatalog(ctx context.Context, companyID primitive.ObjectID, params SearchParams) (SearchResult, error) {
	products, err := s.FindCompanyCatalog(ctx, companyID)
	if err != nil {
		return SearchResult{}, err
	}
	params.PageSize = 0
	return SearchProducts(products, params), nil
}

// attachSellerNames join tên công ty vào danh sách sản phẩm.
// Chỉ truy vấn các công ty xuất hiện trong danh sách thay vì toàn bộ collection.
func (s *ProductService) attachSellerNames(ctx context.Context, products []catalogmodels.Product) ([]catalogmodels.Product, error) {
	if len(products) == 0 {
		return products, nil
	}

	seen := make(map[primitive.ObjectID]bool)
	ids := make([]primitive.ObjectID, 0)
	for _, p := range products {
		if !seen[p.CompanyID] {
			seen[p.CompanyID] = true
			ids = append(ids, p.CompanyID)
		}
	}

	companies, err := s.companyService.Find(ctx, map[string]interface{}{
		"_id": map[string]interface{}{"$in": ids},
	}, options.Find().SetProjection(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	names := make(map[primitive.ObjectID]string, len(companies))
	for _, c := range companies {
		names[c.ID] = c.Name
	}

	for i := range products {
		products[i].SellerName = names[products[i].CompanyID]
	}
	return products, nil
}
