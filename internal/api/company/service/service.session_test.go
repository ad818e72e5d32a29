// Package companysvc - Test vòng đời phiên đăng nhập và trạng thái tìm kiếm theo phiên.
package companysvc

import (
	"errors"
	"testing"
	"time"

	companymodels "vitrine_commerce/internal/api/company/models"
	"vitrine_commerce/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestCompany() companymodels.Company {
	return companymodels.Company{
		ID:   primitive.NewObjectID(),
		Name: "Cửa hàng test",
	}
}

func TestSessionCreate_TokenUniqueAndValid(t *testing.T) {
	svc := NewSessionService(time.Hour)
	company := newTestCompany()

	s1, err := svc.Create(company, false)
	if err != nil {
		t.Fatalf("Create trả về lỗi: %v", err)
	}
	s2, err := svc.Create(company, false)
	if err != nil {
		t.Fatalf("Create lần hai trả về lỗi: %v", err)
	}
	if s1.Token == s2.Token {
		t.Error("Hai phiên phải có token khác nhau")
	}
	if len(s1.Token) != 64 {
		t.Errorf("Token phải là 64 ký tự hex, nhận được %d ký tự", len(s1.Token))
	}

	info, err := svc.Validate(s1.Token)
	if err != nil {
		t.Fatalf("Validate trả về lỗi: %v", err)
	}
	if info.CompanyID != company.ID.Hex() {
		t.Errorf("CompanyID của phiên = %s, muốn %s", info.CompanyID, company.ID.Hex())
	}
	if info.IsAdmin {
		t.Error("Phiên thường không được đánh dấu admin")
	}
}

func TestSessionValidate_AdminFlag(t *testing.T) {
	svc := NewSessionService(time.Hour)
	s, err := svc.Create(newTestCompany(), true)
	if err != nil {
		t.Fatalf("Create trả về lỗi: %v", err)
	}
	info, err := svc.Validate(s.Token)
	if err != nil {
		t.Fatalf("Validate trả về lỗi: %v", err)
	}
	if !info.IsAdmin {
		t.Error("Phiên admin phải giữ cờ IsAdmin")
	}
}

func TestSessionValidate_UnknownToken(t *testing.T) {
	svc := NewSessionService(time.Hour)
	if _, err := svc.Validate("token-khong-ton-tai"); !errors.Is(err, common.ErrSessionInvalid) {
		t.Errorf("Token lạ phải trả về ErrSessionInvalid, nhận được: %v", err)
	}
}

func TestSessionValidate_ExpiredTokenRemoved(t *testing.T) {
	svc := NewSessionService(time.Minute)
	current := time.Now()
	svc.now = func() time.Time { return current }

	s, err := svc.Create(newTestCompany(), false)
	if err != nil {
		t.Fatalf("Create trả về lỗi: %v", err)
	}

	// Đẩy đồng hồ qua thời điểm hết hạn
	current = current.Add(2 * time.Minute)

	if _, err := svc.Validate(s.Token); !errors.Is(err, common.ErrSessionExpired) {
		t.Fatalf("Phiên hết hạn phải trả về ErrSessionExpired, nhận được: %v", err)
	}
	if svc.Count() != 0 {
		t.Error("Phiên hết hạn phải bị xóa ngay khi Validate")
	}
}

func TestSessionDestroy(t *testing.T) {
	svc := NewSessionService(time.Hour)
	s, _ := svc.Create(newTestCompany(), false)

	svc.Destroy(s.Token)
	if _, err := svc.Validate(s.Token); !errors.Is(err, common.ErrSessionInvalid) {
		t.Errorf("Phiên đã đăng xuất phải không còn hợp lệ, nhận được: %v", err)
	}

	// Destroy token không tồn tại không được panic
	svc.Destroy("token-khong-ton-tai")
}

func TestSweepExpired_OnlyRemovesExpired(t *testing.T) {
	svc := NewSessionService(time.Minute)
	current := time.Now()
	svc.now = func() time.Time { return current }

	old, _ := svc.Create(newTestCompany(), false)

	current = current.Add(30 * time.Second)
	fresh, _ := svc.Create(newTestCompany(), false)

	current = current.Add(45 * time.Second) // old đã quá 60s, fresh mới 45s
	removed := svc.sweepExpired()
	if removed != 1 {
		t.Fatalf("sweepExpired phải xóa đúng 1 phiên, đã xóa %d", removed)
	}
	if _, err := svc.Validate(old.Token); err == nil {
		t.Error("Phiên cũ phải bị quét")
	}
	if _, err := svc.Validate(fresh.Token); err != nil {
		t.Errorf("Phiên mới không được bị quét: %v", err)
	}
}

func TestSearchState_Defaults(t *testing.T) {
	svc := NewSessionService(time.Hour)
	s, _ := svc.Create(newTestCompany(), false)

	state, err := svc.GetSearchState(s.Token)
	if err != nil {
		t.Fatalf("GetSearchState trả về lỗi: %v", err)
	}
	if state.Query != "" || state.Mode != SearchModeByProduct || state.Sort != SearchSortRelevance || state.Page != 1 {
		t.Errorf("Trạng thái mặc định sai: %+v", state)
	}
}

func TestSearchState_QueryChangeResetsPage(t *testing.T) {
	svc := NewSessionService(time.Hour)
	s, _ := svc.Create(newTestCompany(), false)

	// Chuyển sang trang 3 trước
	state, err := svc.UpdateSearchState(s.Token, nil, nil, nil, 3)
	if err != nil {
		t.Fatalf("UpdateSearchState trả về lỗi: %v", err)
	}
	if state.Page != 3 {
		t.Fatalf("Page = %d, muốn 3", state.Page)
	}

	// Đổi từ khóa phải đưa trang về 1
	query := "rượu vang"
	state, _ = svc.UpdateSearchState(s.Token, &query, nil, nil, 0)
	if state.Query != "rượu vang" {
		t.Errorf("Query = %q, muốn %q", state.Query, "rượu vang")
	}
	if state.Page != 1 {
		t.Errorf("Đổi từ khóa phải đưa Page về 1, nhận được %d", state.Page)
	}
}

func TestSearchState_SortChangeResetsPage(t *testing.T) {
	svc := NewSessionService(time.Hour)
	s, _ := svc.Create(newTestCompany(), false)

	svc.UpdateSearchState(s.Token, nil, nil, nil, 5)

	sort := SearchSortPriceDesc
	state, _ := svc.UpdateSearchState(s.Token, nil, nil, &sort, 0)
	if state.Sort != SearchSortPriceDesc {
		t.Errorf("Sort = %q, muốn %q", state.Sort, SearchSortPriceDesc)
	}
	if state.Page != 1 {
		t.Errorf("Đổi cách sắp xếp phải đưa Page về 1, nhận được %d", state.Page)
	}
}

func TestSearchState_ModeChangeResetsPage(t *testing.T) {
	svc := NewSessionService(time.Hour)
	s, _ := svc.Create(newTestCompany(), false)

	svc.UpdateSearchState(s.Token, nil, nil, nil, 3)

	mode := SearchModeBySeller
	state, _ := svc.UpdateSearchState(s.Token, nil, &mode, nil, 0)
	if state.Mode != SearchModeBySeller {
		t.Errorf("Mode = %q, muốn %q", state.Mode, SearchModeBySeller)
	}
	if state.Page != 1 {
		t.Errorf("Đổi chế độ tìm phải đưa Page về 1, nhận được %d", state.Page)
	}
}

func TestSearchState_ClearQueryAlsoResetsPage(t *testing.T) {
	svc := NewSessionService(time.Hour)
	s, _ := svc.Create(newTestCompany(), false)

	query := "vang đỏ"
	svc.UpdateSearchState(s.Token, &query, nil, nil, 0)
	svc.UpdateSearchState(s.Token, nil, nil, nil, 4)

	// Gửi chuỗi rỗng tức là xóa từ khóa, vẫn phải reset trang
	empty := ""
	state, _ := svc.UpdateSearchState(s.Token, &empty, nil, nil, 0)
	if state.Query != "" {
		t.Errorf("Query phải bị xóa, nhận được %q", state.Query)
	}
	if state.Page != 1 {
		t.Errorf("Xóa từ khóa phải đưa Page về 1, nhận được %d", state.Page)
	}
}

func TestSearchState_SameValueDoesNotResetPage(t *testing.T) {
	svc := NewSessionService(time.Hour)
	s, _ := svc.Create(newTestCompany(), false)

	query := "vang"
	svc.UpdateSearchState(s.Token, &query, nil, nil, 0)
	svc.UpdateSearchState(s.Token, nil, nil, nil, 2)

	// Gửi lại đúng từ khóa cũ không được coi là thay đổi
	state, _ := svc.UpdateSearchState(s.Token, &query, nil, nil, 0)
	if state.Page != 2 {
		t.Errorf("Từ khóa không đổi thì giữ nguyên Page, nhận được %d", state.Page)
	}
}

func TestHashAndCompareSecret(t *testing.T) {
	hash, err := hashSecret("MatKhau@123")
	if err != nil {
		t.Fatalf("hashSecret trả về lỗi: %v", err)
	}
	if hash == "MatKhau@123" {
		t.Fatal("Hash không được trùng plaintext")
	}
	if !compareSecret(hash, "MatKhau@123") {
		t.Error("compareSecret phải khớp với đúng mật khẩu")
	}
	if compareSecret(hash, "MatKhauSai") {
		t.Error("compareSecret không được khớp với mật khẩu sai")
	}
}
