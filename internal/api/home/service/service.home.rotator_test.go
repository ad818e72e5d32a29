// Package homesvc - Test máy trạng thái carousel và đồng hồ đếm ngược trang chủ.
package homesvc

import (
	"context"
	"testing"
	"time"
)

func TestRotator_NextWrapsAround(t *testing.T) {
	r := NewRotator(3, 0)
	if r.Index() != 0 {
		t.Fatalf("Chỉ số khởi đầu = %d, muốn 0", r.Index())
	}
	// Ba lần next từ 0 phải quay về 0
	if got := r.Next(); got != 1 {
		t.Errorf("Next lần 1 = %d, muốn 1", got)
	}
	if got := r.Next(); got != 2 {
		t.Errorf("Next lần 2 = %d, muốn 2", got)
	}
	if got := r.Next(); got != 0 {
		t.Errorf("Next lần 3 = %d, muốn 0", got)
	}
}

func TestRotator_PrevFromZeroWrapsToLast(t *testing.T) {
	r := NewRotator(3, 0)
	if got := r.Prev(); got != 2 {
		t.Errorf("Prev từ 0 = %d, muốn 2", got)
	}
}

func TestRotator_EmptyHasNoTransitions(t *testing.T) {
	r := NewRotator(0, 0)
	if got := r.Next(); got != 0 {
		t.Errorf("Next khi không có ảnh = %d, muốn 0", got)
	}
	if got := r.Prev(); got != 0 {
		t.Errorf("Prev khi không có ảnh = %d, muốn 0", got)
	}
}

func TestRotator_SingleImageStaysAtZero(t *testing.T) {
	r := NewRotator(1, 0)
	if got := r.Next(); got != 0 {
		t.Errorf("Next với 1 ảnh = %d, muốn 0", got)
	}
	if got := r.Prev(); got != 0 {
		t.Errorf("Prev với 1 ảnh = %d, muốn 0", got)
	}
}

func TestRotator_SetCountClampsIndex(t *testing.T) {
	r := NewRotator(5, 0)
	r.Next()
	r.Next()
	r.Next() // index 3
	r.SetCount(2)
	if r.Index() != 0 {
		t.Errorf("Chỉ số vượt quá số ảnh mới phải quay về 0, nhận được %d", r.Index())
	}
}

func TestRotator_AutoAdvancesOnTicker(t *testing.T) {
	r := NewRotator(3, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	advanced := make(chan int, 10)
	r.OnChange(func(index int) { advanced <- index })

	r.Start(ctx)
	defer r.Stop()

	select {
	case index := <-advanced:
		if index != 1 {
			t.Errorf("Lần tự chuyển đầu tiên phải tới chỉ số 1, nhận được %d", index)
		}
	case <-time.After(time.Second):
		t.Fatal("Rotator không tự chuyển ảnh sau chu kỳ")
	}
}

func TestRotator_ManualNavDoesNotStopTicker(t *testing.T) {
	r := NewRotator(3, 30*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	advanced := make(chan int, 20)
	r.OnChange(func(index int) { advanced <- index })

	r.Start(ctx)
	defer r.Stop()

	r.Prev() // chuyển thủ công, chu kỳ tự chuyển vẫn phải chạy tiếp

	deadline := time.After(time.Second)
	ticks := 0
	for ticks < 2 {
		select {
		case <-advanced:
			ticks++
		case <-deadline:
			t.Fatal("Chu kỳ tự chuyển phải tiếp tục sau khi chuyển thủ công")
		}
	}
}

func TestRotator_StopCancelsTicker(t *testing.T) {
	r := NewRotator(3, 10*time.Millisecond)
	r.Start(context.Background())
	r.Stop()

	// Chờ qua vài chu kỳ rồi kiểm tra chỉ số đứng yên
	time.Sleep(50 * time.Millisecond)
	before := r.Index()
	time.Sleep(50 * time.Millisecond)
	if r.Index() != before {
		t.Error("Rotator vẫn tự chuyển sau khi Stop")
	}
}

func TestCountdown_TwoSecondsBeforeBoundary(t *testing.T) {
	c := NewHourCountdown()
	c.now = func() time.Time {
		return time.Date(2026, 8, 31, 14, 59, 58, 0, time.UTC)
	}
	view := c.Snapshot()
	if view.Display != "00:00:02" {
		t.Errorf("Còn 2 giây trước đầu giờ phải hiển thị 00:00:02, nhận được %s", view.Display)
	}
}

func TestCountdown_RollsOverAfterBoundary(t *testing.T) {
	c := NewHourCountdown()
	c.now = func() time.Time {
		return time.Date(2026, 8, 31, 15, 0, 1, 0, time.UTC)
	}
	view := c.Snapshot()
	if view.Display != "00:59:59" {
		t.Errorf("Ngay sau đầu giờ phải quay về 00:59:59, nhận được %s", view.Display)
	}
}

func TestCountdown_ExactlyAtBoundary(t *testing.T) {
	c := NewHourCountdown()
	c.now = func() time.Time {
		return time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	}
	view := c.Snapshot()
	if view.Display != "01:00:00" {
		t.Errorf("Đúng đầu giờ phải hiển thị trọn một giờ mới, nhận được %s", view.Display)
	}
}

func TestCountdown_FloorsSubSecond(t *testing.T) {
	c := NewHourCountdown()
	c.now = func() time.Time {
		return time.Date(2026, 8, 31, 14, 59, 58, 400_000_000, time.UTC)
	}
	view := c.Snapshot()
	if view.Display != "00:00:01" {
		t.Errorf("Phần lẻ giây phải bị làm tròn xuống, nhận được %s", view.Display)
	}
}
