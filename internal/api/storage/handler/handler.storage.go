package storagehdl

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	basehdl "vitrine_commerce/internal/api/base/handler"
	storagesvc "vitrine_commerce/internal/api/storage/service"
	"vitrine_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
)

// MaxUploadSize là kích thước file upload tối đa (5MB)
const MaxUploadSize = 5 << 20

// StorageHandler xử lý upload file tĩnh
type StorageHandler struct {
	storage storagesvc.ObjectStorage
}

// NewStorageHandler tạo mới StorageHandler
func NewStorageHandler(storage storagesvc.ObjectStorage) *StorageHandler {
	return &StorageHandler{storage: storage}
}

// HandleUpload nhận file multipart và lưu vào storage.
// File được đặt dưới thư mục riêng của công ty đang đăng nhập.
func (h *StorageHandler) HandleUpload(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			basehdl.HandleResponseFunc(c, nil, common.NewError(common.ErrCodeValidationInput,
				"Thiếu file upload trong form field 'file'", common.StatusBadRequest, err))
			return nil
		}
		if fileHeader.Size > MaxUploadSize {
			basehdl.HandleResponseFunc(c, nil, common.NewError(common.ErrCodeValidationInput,
				"File vượt quá kích thước cho phép", common.StatusBadRequest, nil))
			return nil
		}

		file, err := fileHeader.Open()
		if err != nil {
			basehdl.HandleResponseFunc(c, nil, common.ErrStorageUpload)
			return nil
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			basehdl.HandleResponseFunc(c, nil, common.ErrStorageUpload)
			return nil
		}

		path := BuildUploadPath(c, fileHeader.Filename)
		url, err := h.storage.Upload(path, data)
		if err != nil {
			basehdl.HandleResponseFunc(c, nil, err)
			return nil
		}

		basehdl.HandleResponseFunc(c, map[string]interface{}{
			"url":  url,
			"path": path,
		}, nil)
		return nil
	})
}

// HandleRemove xóa một file đã upload theo path
func (h *StorageHandler) HandleRemove(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		path := c.Query("path")
		if path == "" {
			basehdl.HandleResponseFunc(c, nil, common.NewError(common.ErrCodeValidationInput,
				"Thiếu tham số path", common.StatusBadRequest, nil))
			return nil
		}

		// Công ty thường chỉ được xóa file trong thư mục của mình
		isAdmin, _ := c.Locals("is_admin").(bool)
		if !isAdmin {
			companyID, _ := c.Locals("company_id").(string)
			if companyID == "" || !strings.HasPrefix(path, companyID+"/") {
				basehdl.HandleResponseFunc(c, nil, common.ErrForbiddenScope)
				return nil
			}
		}

		if err := h.storage.Remove(path); err != nil {
			basehdl.HandleResponseFunc(c, nil, err)
			return nil
		}
		basehdl.HandleResponseFunc(c, map[string]interface{}{"removed": path}, nil)
		return nil
	})
}

// BuildUploadPath sinh path lưu trữ duy nhất cho file upload của phiên hiện tại
func BuildUploadPath(c fiber.Ctx, filename string) string {
	owner, _ := c.Locals("company_id").(string)
	if owner == "" {
		owner = "system"
	}
	base := filepath.Base(filename)
	return fmt.Sprintf("%s/%d-%s", owner, time.Now().UnixNano(), base)
}
