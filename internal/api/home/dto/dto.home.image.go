package homedto

// CarouselImageCreateInput dữ liệu đầu vào khi thêm ảnh carousel
type CarouselImageCreateInput struct {
	URL     string `json:"url" validate:"required,max=1000"`
	Caption string `json:"caption,omitempty" validate:"omitempty,no_xss,max=300"`
	LinkURL string `json:"linkUrl,omitempty" validate:"omitempty,max=1000"`
	Order   int64  `json:"order,omitempty" validate:"omitempty,min=0"`
	Visible *bool  `json:"visible,omitempty"`
}

// CarouselImageUpdateInput dữ liệu đầu vào khi cập nhật ảnh carousel
type CarouselImageUpdateInput struct {
	URL     string `json:"url,omitempty" validate:"omitempty,max=1000"`
	Caption string `json:"caption,omitempty" validate:"omitempty,no_xss,max=300"`
	LinkURL string `json:"linkUrl,omitempty" validate:"omitempty,max=1000"`
	Order   int64  `json:"order,omitempty" validate:"omitempty,min=0"`
	Visible *bool  `json:"visible,omitempty"`
}

// CampaignImageCreateInput dữ liệu đầu vào khi thêm ảnh chiến dịch
type CampaignImageCreateInput struct {
	URL     string `json:"url" validate:"required,max=1000"`
	Title   string `json:"title,omitempty" validate:"omitempty,no_xss,max=300"`
	LinkURL string `json:"linkUrl,omitempty" validate:"omitempty,max=1000"`
	Order   int64  `json:"order,omitempty" validate:"omitempty,min=0"`
	Visible *bool  `json:"visible,omitempty"`
}

// CampaignImageUpdateInput dữ liệu đầu vào khi cập nhật ảnh chiến dịch
type CampaignImageUpdateInput struct {
	URL     string `json:"url,omitempty" validate:"omitempty,max=1000"`
	Title   string `json:"title,omitempty" validate:"omitempty,no_xss,max=300"`
	LinkURL string `json:"linkUrl,omitempty" validate:"omitempty,max=1000"`
	Order   int64  `json:"order,omitempty" validate:"omitempty,min=0"`
	Visible *bool  `json:"visible,omitempty"`
}
