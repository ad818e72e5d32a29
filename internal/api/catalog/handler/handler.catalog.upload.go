package cataloghdl

import (
	"io"
	"strconv"

	catalogmodels "vitrine_commerce/internal/api/catalog/models"
	storagehdl "vitrine_commerce/internal/api/storage/handler"
	"vitrine_commerce/internal/common"
	"vitrine_commerce/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// HandleCreateWithImage tạo sản phẩm kèm ảnh trong một request multipart.
// Thao tác hai pha: upload ảnh trước, rồi ghi bản ghi sản phẩm;
// ghi thất bại thì xóa bù ảnh vừa upload để không để lại file mồ côi.
func (h *ProductHandler) HandleCreateWithImage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		name := c.FormValue("name")
		if name == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput,
				"Thiếu tên sản phẩm", common.StatusBadRequest, nil))
			return nil
		}

		// Giá sai định dạng được ép về 0 thay vì từ chối
		price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
		if price < 0 {
			price = 0
		}

		product := catalogmodels.Product{
			Name:        name,
			Description: c.FormValue("description"),
			Price:       price,
			Category:    c.FormValue("category"),
			Status:      catalogmodels.ProductStatusActive,
		}

		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrSessionInvalid)
			return nil
		}
		product.CompanyID = *companyID

		// Pha 1: upload ảnh nếu có
		uploadedPath := ""
		if fileHeader, err := c.FormFile("image"); err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				h.HandleResponse(c, nil, common.ErrStorageUpload)
				return nil
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				h.HandleResponse(c, nil, common.ErrStorageUpload)
				return nil
			}

			uploadedPath = storagehdl.BuildUploadPath(c, fileHeader.Filename)
			url, err := h.Storage.Upload(uploadedPath, data)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			product.ImageURL = url
		}

		// Pha 2: ghi bản ghi, thất bại thì xóa bù ảnh đã upload
		inserted, err := h.ProductService.InsertOne(c.Context(), product)
		if err != nil {
			if uploadedPath != "" {
				if removeErr := h.Storage.Remove(uploadedPath); removeErr != nil {
					logger.GetAppLogger().WithFields(map[string]interface{}{
						"path":  uploadedPath,
						"error": removeErr.Error(),
					}).Error("Không thể xóa bù ảnh sau khi ghi sản phẩm thất bại")
				}
			}
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, inserted, nil)
		return nil
	})
}
