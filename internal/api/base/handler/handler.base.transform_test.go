// Test transform DTO sang Model, tập trung vào field pointer không có transform tag
// (giá trị false người dùng gửi phải đi qua được tới model, nil thì bỏ qua).
package basehdl

import (
	"testing"

	homedto "vitrine_commerce/internal/api/home/dto"
	homemodels "vitrine_commerce/internal/api/home/models"
)

func TestTransformInput_VisibleFalseGiuNguyen(t *testing.T) {
	hidden := false
	input := &homedto.CampaignImageCreateInput{
		URL:     "https://cdn.example.com/sale.png",
		Title:   "Khuyến mãi tháng 9",
		Visible: &hidden,
	}

	model, err := transformInputToModel[homemodels.CampaignImage](input)
	if err != nil {
		t.Fatalf("transformInputToModel lỗi: %v", err)
	}
	if model.Visible == nil {
		t.Fatal("Visible bị mất khi copy sang model, muốn giữ false")
	}
	if *model.Visible {
		t.Errorf("Visible = true, muốn false như người dùng gửi")
	}
	if model.URL != input.URL {
		t.Errorf("URL = %q, muốn %q", model.URL, input.URL)
	}
}

func TestTransformInput_VisibleKhongGuiVanLaNil(t *testing.T) {
	input := &homedto.CarouselImageCreateInput{
		URL: "https://cdn.example.com/banner.png",
	}

	model, err := transformInputToModel[homemodels.CarouselImage](input)
	if err != nil {
		t.Fatalf("transformInputToModel lỗi: %v", err)
	}
	// nil nghĩa là chưa gửi, để tầng insert áp dụng default
	if model.Visible != nil {
		t.Errorf("Visible = %v, muốn nil khi người dùng không gửi field", *model.Visible)
	}
}
