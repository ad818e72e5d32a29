package cataloghdl

import (
	"fmt"

	basehdl "vitrine_commerce/internal/api/base/handler"
	catalogdto "vitrine_commerce/internal/api/catalog/dto"
	catalogmodels "vitrine_commerce/internal/api/catalog/models"
	catalogsvc "vitrine_commerce/internal/api/catalog/service"
	companysvc "vitrine_commerce/internal/api/company/service"
	storagesvc "vitrine_commerce/internal/api/storage/service"
	"vitrine_commerce/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// ProductHandler xử lý các request liên quan đến sản phẩm và tìm kiếm danh mục
type ProductHandler struct {
	*basehdl.BaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	ProductService *catalogsvc.ProductService
	SessionService *companysvc.SessionService
	Storage        storagesvc.ObjectStorage
}

// NewProductHandler tạo mới ProductHandler
func NewProductHandler(sessionService *companysvc.SessionService, storage storagesvc.ObjectStorage) (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("create product service: %v", err)
	}
	hdl := &ProductHandler{
		ProductService: productService,
		SessionService: sessionService,
		Storage:        storage,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService.BaseServiceMongoImpl)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{"password", "token", "secret", "hash"},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}

// searchParamsFromQuery chuyển query string thành tham số pipeline với các mặc định
func searchParamsFromQuery(q catalogdto.CatalogSearchQuery) catalogsvc.SearchParams {
	params := catalogsvc.SearchParams{
		Query:    q.Query,
		Mode:     q.Mode,
		Sort:     q.Sort,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if params.Mode == "" {
		params.Mode = catalogsvc.SearchModeByProduct
	}
	if params.Sort == "" {
		params.Sort = catalogsvc.SortRelevance
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize <= 0 {
		params.PageSize = catalogsvc.DefaultPageSize
	}
	return params
}

// HandleSearchCatalog tìm kiếm trên danh mục công khai theo tham số từ query string
func (h *ProductHandler) HandleSearchCatalog(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var query catalogdto.CatalogSearchQuery
		if err := h.BindQuery(c, &query); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.ProductService.SearchCatalog(c.Context(), searchParamsFromQuery(query))
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleSessionSearch tìm kiếm theo trạng thái tìm kiếm đã lưu trong phiên,
// để chuyển trang giữa các view không mất bộ lọc đang áp dụng
func (h *ProductHandler) HandleSessionSearch(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		token, _ := c.Locals("session_token").(string)
		state, err := h.SessionService.GetSearchState(token)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.ProductService.SearchCatalog(c.Context(), catalogsvc.SearchParams{
			Query:    state.Query,
			Mode:     state.Mode,
			Sort:     state.Sort,
			Page:     state.Page,
			PageSize: catalogsvc.DefaultPageSize,
		})
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleCompanyCatalog trả về danh mục của một công ty, không phân trang.
// Tìm theo người bán không có ý nghĩa trong phạm vi một công ty nên mode bị bỏ qua.
func (h *ProductHandler) HandleCompanyCatalog(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var params catalogdto.CompanyCatalogParams
		if err := h.ParseRequestParams(c, &params); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var query catalogdto.CatalogSearchQuery
		if err := h.BindQuery(c, &query); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		searchParams := searchParamsFromQuery(query)
		searchParams.Mode = catalogsvc.SearchModeByProduct

		result, err := h.ProductService.SearchCompanyCatalog(c.Context(),
			utility.String2ObjectID(params.CompanyID), searchParams)
		h.HandleResponse(c, result, err)
		return nil
	})
}
