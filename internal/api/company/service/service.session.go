package companysvc

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	companymodels "vitrine_commerce/internal/api/company/models"
	"vitrine_commerce/internal/api/middleware"
	"vitrine_commerce/internal/common"
	"vitrine_commerce/internal/logger"
	"vitrine_commerce/internal/registry"
)

// Các giá trị mặc định của trạng thái tìm kiếm trong phiên
const (
	SearchModeByProduct = "byProduct" // Tìm theo tên/mô tả sản phẩm
	SearchModeBySeller  = "bySeller"  // Tìm theo tên người bán

	SearchSortRelevance = "relevance" // Giữ thứ tự gốc
	SearchSortNameAsc   = "nameAsc"   // Tên A-Z
	SearchSortPriceAsc  = "priceAsc"  // Giá tăng dần
	SearchSortPriceDesc = "priceDesc" // Giá giảm dần
)

// SearchState là trạng thái tìm kiếm của một phiên, lưu phía server
// để người dùng chuyển trang không mất bộ lọc đang áp dụng
type SearchState struct {
	Query string `json:"query"` // Chuỗi tìm kiếm hiện tại
	Mode  string `json:"mode"`  // Chế độ tìm: byProduct, bySeller
	Sort  string `json:"sort"`  // Cách sắp xếp: relevance, nameAsc, priceAsc, priceDesc
	Page  int64  `json:"page"`  // Trang hiện tại, bắt đầu từ 1
}

// defaultSearchState trả về trạng thái tìm kiếm ban đầu của phiên mới
func defaultSearchState() SearchState {
	return SearchState{
		Query: "",
		Mode:  SearchModeByProduct,
		Sort:  SearchSortRelevance,
		Page:  1,
	}
}

// Session là một phiên đăng nhập đang hoạt động, lưu trong bộ nhớ
type Session struct {
	Token     string // Token mờ, sinh ngẫu nhiên
	CompanyID string // Hex ObjectID của công ty sở hữu phiên
	IsAdmin   bool   // true nếu là phiên quản trị hệ thống
	CreatedAt int64  // Thời điểm tạo phiên (UnixMilli)
	ExpiresAt int64  // Thời điểm hết hạn phiên (UnixMilli)

	mu     sync.Mutex  // Bảo vệ search khi nhiều request cùng phiên chạy song song
	search SearchState // Trạng thái tìm kiếm của phiên
}

// SessionService quản lý vòng đời phiên đăng nhập trong bộ nhớ.
// Service này được inject vào middleware và handler thay vì dùng singleton
// để test có thể thay bằng implementation riêng.
type SessionService struct {
	sessions *registry.Registry[*Session]
	ttl      time.Duration
	now      func() time.Time // Cho phép test điều khiển thời gian
}

// NewSessionService tạo mới SessionService với thời gian sống của phiên
func NewSessionService(ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{
		sessions: registry.NewRegistry[*Session](),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create tạo phiên mới cho công ty vừa đăng nhập thành công
func (s *SessionService) Create(company companymodels.Company, isAdmin bool) (*Session, error) {
	token, err := generateSessionToken()
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := &Session{
		Token:     token,
		CompanyID: company.ID.Hex(),
		IsAdmin:   isAdmin,
		CreatedAt: now.UnixMilli(),
		ExpiresAt: now.Add(s.ttl).UnixMilli(),
		search:    defaultSearchState(),
	}

	if _, err := s.sessions.Register(token, session); err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể lưu phiên đăng nhập", common.StatusInternalServerError, err)
	}
	return session, nil
}

// Validate kiểm tra token và trả về thông tin phiên cho middleware.
// Phiên hết hạn bị xóa ngay tại đây thay vì chờ sweeper.
func (s *SessionService) Validate(token string) (*middleware.SessionInfo, error) {
	session, exists := s.sessions.Get(token)
	if !exists {
		return nil, common.ErrSessionInvalid
	}

	if session.ExpiresAt <= s.now().UnixMilli() {
		s.sessions.Clear(token, nil)
		return nil, common.ErrSessionExpired
	}

	return &middleware.SessionInfo{
		Token:     session.Token,
		CompanyID: session.CompanyID,
		IsAdmin:   session.IsAdmin,
	}, nil
}

// Destroy xóa phiên khi đăng xuất. Token không tồn tại không phải lỗi.
func (s *SessionService) Destroy(token string) {
	s.sessions.Clear(token, nil)
}

// Count trả về số phiên đang có trong bộ nhớ, kể cả phiên đã hết hạn chưa bị quét
func (s *SessionService) Count() int {
	return s.sessions.Len()
}

// GetSearchState trả về bản sao trạng thái tìm kiếm của phiên
func (s *SessionService) GetSearchState(token string) (SearchState, error) {
	session, exists := s.sessions.Get(token)
	if !exists {
		return SearchState{}, common.ErrSessionInvalid
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.search, nil
}

// UpdateSearchState cập nhật trạng thái tìm kiếm của phiên.
// Đổi từ khóa, chế độ tìm hoặc cách sắp xếp sẽ đưa trang về 1;
// page trong input chỉ có tác dụng khi không có thay đổi nào khác.
func (s *SessionService) UpdateSearchState(token string, query, mode, sort *string, page int64) (SearchState, error) {
	session, exists := s.sessions.Get(token)
	if !exists {
		return SearchState{}, common.ErrSessionInvalid
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	changed := false
	if query != nil && *query != session.search.Query {
		session.search.Query = *query
		changed = true
	}
	if mode != nil && *mode != session.search.Mode {
		session.search.Mode = *mode
		changed = true
	}
	if sort != nil && *sort != session.search.Sort {
		session.search.Sort = *sort
		changed = true
	}

	if changed {
		session.search.Page = 1
	} else if page >= 1 {
		session.search.Page = page
	}

	return session.search, nil
}

// StartSweeper chạy goroutine quét định kỳ các phiên hết hạn.
// Goroutine dừng khi context bị hủy.
func (s *SessionService) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed := s.sweepExpired()
				if removed > 0 {
					logger.GetAppLogger().WithField("removed", removed).Debug("Đã quét các phiên hết hạn")
				}
			}
		}
	}()
}

// sweepExpired xóa tất cả phiên đã hết hạn, trả về số phiên bị xóa
func (s *SessionService) sweepExpired() int {
	nowMs := s.now().UnixMilli()

	var expired []string
	s.sessions.Range(func(token string, session *Session) bool {
		if session.ExpiresAt <= nowMs {
			expired = append(expired, token)
		}
		return true
	})

	for _, token := range expired {
		s.sessions.Clear(token, nil)
	}
	return len(expired)
}

// generateSessionToken sinh token phiên 256 bit từ crypto/rand
func generateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", common.NewError(common.ErrCodeInternalServer,
			fmt.Sprintf("Không thể sinh token phiên: %v", err), common.StatusInternalServerError, err)
	}
	return hex.EncodeToString(buf), nil
}
