package homehdl

import (
	"encoding/json"

	basesvc "vitrine_commerce/internal/api/base/service"
	"vitrine_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// visibilityInput body của endpoint đặt cờ hiển thị.
// Dùng con trỏ để bắt buộc gửi giá trị tường minh, kể cả false.
type visibilityInput struct {
	Visible *bool `json:"visible"`
}

// setImageVisibility cập nhật cờ visible của một ảnh trang chủ theo ID
func setImageVisibility[T any](c fiber.Ctx, svc basesvc.BaseServiceMongo[T], id string, respond func(interface{}, error)) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		respond(nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
		return
	}

	var input visibilityInput
	if err := json.Unmarshal(c.Body(), &input); err != nil {
		respond(nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err))
		return
	}
	if input.Visible == nil {
		respond(nil, common.NewError(common.ErrCodeValidationInput, "Thiếu trường visible", common.StatusBadRequest, nil))
		return
	}

	updated, err := svc.UpdateById(c.Context(), objectID, &basesvc.UpdateData{
		Set: map[string]interface{}{"visible": *input.Visible},
	})
	respond(updated, err)
}
