// Package catalogsvc - Test pipeline lọc, sắp xếp, phân trang sản phẩm.
package catalogsvc

import (
	"reflect"
	"testing"

	catalogmodels "vitrine_commerce/internal/api/catalog/models"
)

func sampleProducts() []catalogmodels.Product {
	return []catalogmodels.Product{
		{Name: "Chair", Price: 50, SellerName: "Móveis Silva"},
		{Name: "Apple", Price: 10, SellerName: "Frutas do João"},
		{Name: "Banana", Price: 10, SellerName: "Frutas do João"},
	}
}

func names(products []catalogmodels.Product) []string {
	result := make([]string, 0, len(products))
	for _, p := range products {
		result = append(result, p.Name)
	}
	return result
}

func TestSearch_EmptyQueryNameAscPaged(t *testing.T) {
	result := SearchProducts(sampleProducts(), SearchParams{
		Query: "", Mode: SearchModeByProduct, Sort: SortNameAsc, Page: 1, PageSize: 2,
	})
	if got := names(result.PageItems); !reflect.DeepEqual(got, []string{"Apple", "Banana"}) {
		t.Errorf("Trang 1 = %v, muốn [Apple Banana]", got)
	}
	if result.TotalPages != 2 {
		t.Errorf("TotalPages = %d, muốn 2", result.TotalPages)
	}
	if result.TotalMatches != 3 {
		t.Errorf("TotalMatches = %d, muốn 3", result.TotalMatches)
	}
}

func TestSort_PriceAscStableTies(t *testing.T) {
	sorted := SortProducts(sampleProducts(), SortPriceAsc)
	// Apple và Banana cùng giá 10, phải giữ thứ tự gốc
	if got := names(sorted); !reflect.DeepEqual(got, []string{"Apple", "Banana", "Chair"}) {
		t.Errorf("priceAsc = %v, muốn [Apple Banana Chair]", got)
	}
}

func TestSort_PriceDescIsExactReverseOfAsc(t *testing.T) {
	products := sampleProducts()
	asc := SortProducts(products, SortPriceAsc)
	desc := SortProducts(products, SortPriceDesc)

	if len(asc) != len(desc) {
		t.Fatalf("Độ dài khác nhau: asc=%d desc=%d", len(asc), len(desc))
	}
	for i := range asc {
		j := len(desc) - 1 - i
		if asc[i].Name != desc[j].Name {
			t.Errorf("desc không phải đảo ngược chính xác của asc: asc[%d]=%s desc[%d]=%s",
				i, asc[i].Name, j, desc[j].Name)
		}
	}
}

func TestSort_Idempotent(t *testing.T) {
	once := SortProducts(sampleProducts(), SortNameAsc)
	twice := SortProducts(once, SortNameAsc)
	if !reflect.DeepEqual(names(once), names(twice)) {
		t.Errorf("Sắp xếp lần hai đổi thứ tự: %v != %v", names(once), names(twice))
	}
}

func TestSort_MissingPriceTreatedAsZero(t *testing.T) {
	products := []catalogmodels.Product{
		{Name: "Có giá", Price: 5},
		{Name: "Chưa đặt giá"}, // Price zero value
	}
	sorted := SortProducts(products, SortPriceAsc)
	if sorted[0].Name != "Chưa đặt giá" {
		t.Errorf("Sản phẩm thiếu giá phải được coi như giá 0 và đứng đầu, nhận được %v", names(sorted))
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	original := names(products)
	SortProducts(products, SortNameAsc)
	SearchProducts(products, SearchParams{Sort: SortPriceDesc, Page: 1, PageSize: 1})
	if !reflect.DeepEqual(names(products), original) {
		t.Errorf("Pipeline đã thay đổi danh sách đầu vào: %v", names(products))
	}
}

func TestFilter_ByProductSubstringCaseInsensitive(t *testing.T) {
	filtered := FilterProducts(sampleProducts(), "an", SearchModeByProduct)
	if got := names(filtered); !reflect.DeepEqual(got, []string{"Banana"}) {
		t.Errorf("Query 'an' phải chỉ khớp Banana, nhận được %v", got)
	}

	filtered = FilterProducts(sampleProducts(), "APPLE", SearchModeByProduct)
	if got := names(filtered); !reflect.DeepEqual(got, []string{"Apple"}) {
		t.Errorf("So khớp phải không phân biệt hoa thường, nhận được %v", got)
	}
}

func TestFilter_ByProductMatchesDescription(t *testing.T) {
	products := []catalogmodels.Product{
		{Name: "Vinho", Description: "Tinto seco da serra"},
		{Name: "Cerveja"},
	}
	filtered := FilterProducts(products, "serra", SearchModeByProduct)
	if got := names(filtered); !reflect.DeepEqual(got, []string{"Vinho"}) {
		t.Errorf("Query phải khớp cả mô tả, nhận được %v", got)
	}
}

func TestFilter_BySeller(t *testing.T) {
	filtered := FilterProducts(sampleProducts(), "joão", SearchModeBySeller)
	if got := names(filtered); !reflect.DeepEqual(got, []string{"Apple", "Banana"}) {
		t.Errorf("Tìm theo người bán 'joão' phải khớp Apple và Banana, nhận được %v", got)
	}
}

func TestFilter_MissingSellerNameDoesNotMatch(t *testing.T) {
	products := []catalogmodels.Product{
		{Name: "Sản phẩm mồ côi"}, // SellerName rỗng
	}
	filtered := FilterProducts(products, "silva", SearchModeBySeller)
	if len(filtered) != 0 {
		t.Errorf("SellerName thiếu phải coi như không khớp, nhận được %v", names(filtered))
	}
}

func TestFilter_EmptyQueryReturnsAll(t *testing.T) {
	filtered := FilterProducts(sampleProducts(), "", SearchModeBySeller)
	if len(filtered) != 3 {
		t.Errorf("Query rỗng phải trả về tất cả, nhận được %d sản phẩm", len(filtered))
	}
}

func TestPaginate_CoversListExactlyOnce(t *testing.T) {
	products := SortProducts(sampleProducts(), SortNameAsc)
	first := Paginate(products, 1, 2)

	var concatenated []string
	for page := int64(1); page <= first.TotalPages; page++ {
		result := Paginate(products, page, 2)
		concatenated = append(concatenated, names(result.PageItems)...)
	}
	if !reflect.DeepEqual(concatenated, names(products)) {
		t.Errorf("Nối tất cả các trang phải tái tạo đúng danh sách: %v != %v", concatenated, names(products))
	}
}

func TestPaginate_EmptyListHasOnePage(t *testing.T) {
	result := SearchProducts(nil, SearchParams{Query: "bất kỳ", Sort: SortNameAsc, Page: 1, PageSize: 12})
	if result.TotalPages != 1 {
		t.Errorf("Danh sách rỗng vẫn phải có TotalPages = 1, nhận được %d", result.TotalPages)
	}
	if len(result.PageItems) != 0 {
		t.Errorf("PageItems phải rỗng, nhận được %d phần tử", len(result.PageItems))
	}
}

func TestPaginate_PageBeyondTotalReturnsEmpty(t *testing.T) {
	result := Paginate(sampleProducts(), 99, 2)
	if len(result.PageItems) != 0 {
		t.Errorf("Trang vượt quá totalPages phải rỗng, nhận được %d phần tử", len(result.PageItems))
	}
	if result.TotalPages != 2 {
		t.Errorf("TotalPages = %d, muốn 2", result.TotalPages)
	}
}

func TestPaginate_UnpaginatedReturnsAll(t *testing.T) {
	result := Paginate(sampleProducts(), 1, 0)
	if len(result.PageItems) != 3 {
		t.Errorf("PageSize 0 phải trả về toàn bộ, nhận được %d phần tử", len(result.PageItems))
	}
	if result.TotalPages != 1 {
		t.Errorf("Không phân trang thì TotalPages = 1, nhận được %d", result.TotalPages)
	}
}

func TestSort_NameAscLocaleAware(t *testing.T) {
	products := []catalogmodels.Product{
		{Name: "Único"},
		{Name: "Abacaxi"},
		{Name: "Água"},
		{Name: "Banana"},
	}
	sorted := SortProducts(products, SortNameAsc)
	// Collation bỏ qua dấu: Água đứng sau Abacaxi, trước Banana; Único cuối cùng
	want := []string{"Abacaxi", "Água", "Banana", "Único"}
	if got := names(sorted); !reflect.DeepEqual(got, want) {
		t.Errorf("nameAsc theo locale = %v, muốn %v", got, want)
	}
}
