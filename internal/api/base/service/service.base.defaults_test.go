// Test cơ chế áp dụng default tag khi insert, đặc biệt với field pointer
// (phân biệt giá trị false người dùng gửi với field chưa gửi).
package basesvc

import (
	"reflect"
	"testing"

	homemodels "vitrine_commerce/internal/api/home/models"
)

func TestApplyInsertDefaults_VisibleNilNhanDefaultTrue(t *testing.T) {
	img := &homemodels.CampaignImage{URL: "https://cdn.example.com/sale.png"}
	applyInsertDefaultsToModel(img)

	if img.Visible == nil {
		t.Fatal("Visible vẫn nil sau khi áp dụng default, muốn true")
	}
	if !*img.Visible {
		t.Errorf("Visible = false sau khi áp dụng default, muốn true")
	}
}

func TestApplyInsertDefaults_VisibleFalseKhongBiGhiDe(t *testing.T) {
	hidden := false
	img := &homemodels.CampaignImage{
		URL:     "https://cdn.example.com/sale.png",
		Visible: &hidden,
	}
	applyInsertDefaultsToModel(img)

	if img.Visible == nil {
		t.Fatal("Visible bị xóa thành nil, muốn giữ false")
	}
	if *img.Visible {
		t.Errorf("Visible = true, muốn giữ nguyên false người dùng gửi")
	}
}

func TestGetInsertDefaults_FieldPointerCoDefault(t *testing.T) {
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(homemodels.CarouselImage{}))

	raw, ok := defaults["visible"]
	if !ok {
		t.Fatal("default cho key 'visible' không được sinh ra từ field pointer")
	}
	b, ok := raw.(*bool)
	if !ok {
		t.Fatalf("default 'visible' có kiểu %T, muốn *bool", raw)
	}
	if !*b {
		t.Errorf("default 'visible' = false, muốn true")
	}
}
