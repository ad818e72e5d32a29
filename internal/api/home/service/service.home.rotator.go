package homesvc

import (
	"context"
	"sync"
	"time"
)

// DefaultRotateInterval là chu kỳ tự chuyển ảnh của carousel
const DefaultRotateInterval = 5 * time.Second

// Rotator là máy trạng thái của carousel: giữ chỉ số ảnh hiện tại trong [0, n)
// và tự chuyển sang ảnh kế tiếp theo chu kỳ cố định.
// Chuyển ảnh thủ công không tạm dừng hay đặt lại chu kỳ tự chuyển.
type Rotator struct {
	mu       sync.Mutex
	index    int
	count    int
	interval time.Duration
	cancel   context.CancelFunc
	onChange func(index int) // Gọi mỗi khi chỉ số thay đổi, có thể nil
}

// NewRotator tạo rotator cho count ảnh với chu kỳ tự chuyển.
// interval <= 0 dùng chu kỳ mặc định 5 giây.
func NewRotator(count int, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultRotateInterval
	}
	return &Rotator{
		count:    count,
		interval: interval,
	}
}

// OnChange đặt callback được gọi sau mỗi lần chuyển ảnh
func (r *Rotator) OnChange(fn func(index int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

// Index trả về chỉ số ảnh hiện tại
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Count trả về số ảnh hiện tại của rotator
func (r *Rotator) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Next chuyển sang ảnh kế tiếp, quay vòng về 0 sau ảnh cuối.
// Không có ảnh nào thì giữ nguyên chỉ số 0.
func (r *Rotator) Next() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.advance(1)
}

// Prev chuyển về ảnh trước, từ ảnh đầu quay vòng về ảnh cuối
func (r *Rotator) Prev() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.advance(-1)
}

// advance dịch chỉ số theo delta trong [0, count). Caller phải giữ lock.
func (r *Rotator) advance(delta int) int {
	if r.count <= 0 {
		return r.index
	}
	r.index = (r.index + delta + r.count) % r.count
	if r.onChange != nil {
		r.onChange(r.index)
	}
	return r.index
}

// SetCount cập nhật số ảnh khi danh sách carousel thay đổi.
// Chỉ số hiện tại vượt quá số ảnh mới thì quay về 0.
func (r *Rotator) SetCount(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count = count
	if count <= 0 || r.index >= count {
		r.index = 0
	}
}

// Start chạy goroutine tự chuyển ảnh theo chu kỳ.
// Goroutine dừng khi context bị hủy hoặc khi gọi Stop.
func (r *Rotator) Start(ctx context.Context) {
	r.mu.Lock()
	if r.cancel != nil {
		r.mu.Unlock()
		return // đã chạy
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	interval := r.interval
	r.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Next()
			}
		}
	}()
}

// Stop hủy chu kỳ tự chuyển. Gọi nhiều lần vô hại.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
