package homesvc

import (
	"fmt"
	"time"
)

// CountdownView là thời gian còn lại đến đầu giờ kế tiếp, đã tách thành phần hiển thị
type CountdownView struct {
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
	Display string `json:"display"` // Dạng HH:MM:SS
	EndsAt  int64  `json:"endsAt"`  // Thời điểm đầu giờ kế tiếp (UnixMilli)
}

// HourCountdown tính thời gian còn lại đến đầu giờ kế tiếp.
// Mốc kết thúc được tính lại từ "bây giờ" tại mỗi lần gọi,
// nên qua đúng đầu giờ thì đồng hồ tự quay về một giờ trọn vẹn mới.
type HourCountdown struct {
	now func() time.Time // Cho phép test điều khiển thời gian
}

// NewHourCountdown tạo countdown chạy theo đồng hồ hệ thống
func NewHourCountdown() *HourCountdown {
	return &HourCountdown{now: time.Now}
}

// Snapshot trả về thời gian còn lại tại thời điểm gọi, làm tròn xuống giây
func (c *HourCountdown) Snapshot() CountdownView {
	now := c.now()
	boundary := now.Truncate(time.Hour).Add(time.Hour)
	remaining := boundary.Sub(now).Truncate(time.Second)

	total := int(remaining / time.Second)
	view := CountdownView{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
		EndsAt:  boundary.UnixMilli(),
	}
	view.Display = fmt.Sprintf("%02d:%02d:%02d", view.Hours, view.Minutes, view.Seconds)
	return view
}
