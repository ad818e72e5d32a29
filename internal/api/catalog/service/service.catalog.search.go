package catalogsvc

import (
	"sort"
	"strings"

	catalogmodels "vitrine_commerce/internal/api/catalog/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Các chế độ tìm kiếm của pipeline
const (
	SearchModeByProduct = "byProduct" // Khớp với tên hoặc mô tả sản phẩm
	SearchModeBySeller  = "bySeller"  // Khớp với tên công ty bán
)

// Các cách sắp xếp của pipeline
const (
	SortRelevance = "relevance" // Giữ nguyên thứ tự đầu vào
	SortNameAsc   = "nameAsc"   // Tên A-Z theo quy tắc locale
	SortPriceAsc  = "priceAsc"  // Giá tăng dần, thiếu giá coi như 0
	SortPriceDesc = "priceDesc" // Đảo ngược chính xác của priceAsc
)

// DefaultPageSize là kích thước trang của trang danh mục toàn hệ thống
const DefaultPageSize = 12

// nameCollator so sánh tên sản phẩm theo quy tắc tiếng Bồ Đào Nha,
// khớp với ngôn ngữ hiển thị của storefront
var nameCollator = collate.New(language.BrazilianPortuguese, collate.Loose)

// SearchParams là đầu vào của pipeline tìm kiếm
type SearchParams struct {
	Query    string // Chuỗi tìm kiếm, rỗng nghĩa là lấy tất cả
	Mode     string // byProduct hoặc bySeller
	Sort     string // relevance, nameAsc, priceAsc, priceDesc
	Page     int64  // Trang 1-based
	PageSize int64  // Kích thước trang, <= 0 nghĩa là không phân trang
}

// SearchResult là đầu ra của pipeline tìm kiếm
type SearchResult struct {
	PageItems    []catalogmodels.Product `json:"pageItems"`    // Các sản phẩm của trang hiện tại
	TotalMatches int64                   `json:"totalMatches"` // Tổng số sản phẩm khớp filter
	TotalPages   int64                   `json:"totalPages"`   // Tổng số trang, tối thiểu 1
	Page         int64                   `json:"page"`         // Trang đã trả về
}

// SearchProducts chạy pipeline lọc, sắp xếp rồi phân trang trên danh sách sản phẩm.
// Hàm thuần túy: không thay đổi danh sách đầu vào, không trả về lỗi.
func SearchProducts(products []catalogmodels.Product, params SearchParams) SearchResult {
	filtered := FilterProducts(products, params.Query, params.Mode)
	sorted := SortProducts(filtered, params.Sort)
	return Paginate(sorted, params.Page, params.PageSize)
}

// FilterProducts giữ lại các sản phẩm khớp chuỗi tìm kiếm theo chế độ đã chọn.
// So khớp substring không phân biệt hoa thường; trường thiếu coi như chuỗi rỗng.
// Chuỗi rỗng khớp mọi sản phẩm. Luôn trả về slice mới.
func FilterProducts(products []catalogmodels.Product, query, mode string) []catalogmodels.Product {
	result := make([]catalogmodels.Product, 0, len(products))
	if query == "" {
		return append(result, products...)
	}

	q := strings.ToLower(query)
	for _, p := range products {
		switch mode {
		case SearchModeBySeller:
			if strings.Contains(strings.ToLower(p.SellerName), q) {
				result = append(result, p)
			}
		default:
			if strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Description), q) {
				result = append(result, p)
			}
		}
	}
	return result
}

// SortProducts sắp xếp ổn định theo khóa đã chọn, trả về slice mới.
// priceDesc là đảo ngược chính xác của priceAsc, kể cả thứ tự các phần tử bằng giá.
// Khóa không hợp lệ giữ nguyên thứ tự đầu vào.
func SortProducts(products []catalogmodels.Product, sortKey string) []catalogmodels.Product {
	result := make([]catalogmodels.Product, len(products))
	copy(result, products)

	switch sortKey {
	case SortNameAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return nameCollator.CompareString(result[i].Name, result[j].Name) < 0
		})
	case SortPriceAsc:
		sortByPriceAsc(result)
	case SortPriceDesc:
		sortByPriceAsc(result)
		reverseProducts(result)
	}
	return result
}

func sortByPriceAsc(products []catalogmodels.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Price < products[j].Price
	})
}

func reverseProducts(products []catalogmodels.Product) {
	for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
		products[i], products[j] = products[j], products[i]
	}
}

// Paginate cắt danh sách thành trang cố định.
// totalPages tối thiểu là 1 kể cả khi danh sách rỗng;
// yêu cầu trang vượt quá totalPages trả về trang rỗng, không phải lỗi.
func Paginate(products []catalogmodels.Product, page, pageSize int64) SearchResult {
	total := int64(len(products))

	if pageSize <= 0 {
		// Không phân trang: trả về toàn bộ trong một trang duy nhất
		return SearchResult{
			PageItems:    products,
			TotalMatches: total,
			TotalPages:   1,
			Page:         1,
		}
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return SearchResult{
		PageItems:    products[start:end],
		TotalMatches: total,
		TotalPages:   totalPages,
		Page:         page,
	}
}
