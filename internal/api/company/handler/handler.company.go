package companyhdl

import (
	"fmt"

	basehdl "vitrine_commerce/internal/api/base/handler"
	companydto "vitrine_commerce/internal/api/company/dto"
	companymodels "vitrine_commerce/internal/api/company/models"
	companysvc "vitrine_commerce/internal/api/company/service"
	"vitrine_commerce/internal/common"
	"vitrine_commerce/internal/logger"
	"vitrine_commerce/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// CompanyHandler xử lý các request liên quan đến công ty, đăng nhập và phiên
type CompanyHandler struct {
	*basehdl.BaseHandler[companymodels.Company, companydto.CompanyCreateInput, companydto.CompanyUpdateInput]
	CompanyService *companysvc.CompanyService
	SessionService *companysvc.SessionService
}

// NewCompanyHandler tạo mới CompanyHandler.
// SessionService được truyền từ ngoài vào để toàn hệ thống dùng chung một kho phiên.
func NewCompanyHandler(sessionService *companysvc.SessionService) (*CompanyHandler, error) {
	companyService, err := companysvc.NewCompanyService()
	if err != nil {
		return nil, fmt.Errorf("failed to create company service: %v", err)
	}
	hdl := &CompanyHandler{
		CompanyService: companyService,
		SessionService: sessionService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[companymodels.Company, companydto.CompanyCreateInput, companydto.CompanyUpdateInput](companyService.BaseServiceMongoImpl)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{"password", "token", "secret", "hash", "primarySecretHash", "secondarySecretHashes", "loginCode"},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}

// HandleLogin xác thực định danh/mật khẩu và mở phiên mới.
// Mọi thất bại đều trả về cùng một lỗi đăng nhập không chính xác.
func (h *CompanyHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input companydto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		company, isAdmin, err := h.CompanyService.Authenticate(c.Context(), input.Identifier, input.Secret)
		if err != nil {
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"identifier": input.Identifier,
				"ip":         c.IP(),
			}).Warn("❌ [AUTH] Đăng nhập thất bại")
			h.HandleResponse(c, nil, common.ErrInvalidCredentials)
			return nil
		}

		session, err := h.SessionService.Create(company, isAdmin)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.GetAppLogger().WithFields(map[string]interface{}{
			"companyId": company.ID.Hex(),
			"isAdmin":   isAdmin,
		}).Info("✅ [AUTH] Đăng nhập thành công")

		result := companydto.LoginResult{
			Token:     session.Token,
			IsAdmin:   session.IsAdmin,
			CompanyID: session.CompanyID,
			ExpiresAt: session.ExpiresAt,
			Company:   company,
		}
		h.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleLogout đóng phiên hiện tại
func (h *CompanyHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		token, _ := c.Locals("session_token").(string)
		if token != "" {
			h.SessionService.Destroy(token)
		}
		h.HandleResponse(c, map[string]interface{}{"loggedOut": true}, nil)
		return nil
	})
}

// HandleRegister tạo công ty mới kèm thông tin đăng nhập.
// Khác InsertOne của base handler vì mật khẩu phải được hash trước khi lưu.
func (h *CompanyHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input companydto.CompanyCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		company, err := h.CompanyService.Create(c.Context(), &input)
		h.HandleResponse(c, company, err)
		return nil
	})
}

// HandleGetProfile trả về thông tin công ty của phiên hiện tại
func (h *CompanyHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrSessionInvalid)
			return nil
		}

		company, err := h.CompanyService.FindOneById(c.Context(), *companyID)
		h.HandleResponse(c, company, err)
		return nil
	})
}

// HandleUpdateProfile cập nhật thông tin công ty của phiên hiện tại
func (h *CompanyHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrSessionInvalid)
			return nil
		}

		updateData, err := h.ParseUpdateBody(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		company, err := h.CompanyService.UpdateById(c.Context(), *companyID, updateData)
		h.HandleResponse(c, company, err)
		return nil
	})
}

// HandleChangeSecret đổi mật khẩu chính của công ty trong phiên hiện tại
func (h *CompanyHandler) HandleChangeSecret(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrSessionInvalid)
			return nil
		}

		var input companydto.ChangeSecretInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.CompanyService.ChangeSecret(c.Context(), *companyID, input.CurrentSecret, input.NewSecret); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, map[string]interface{}{"changed": true}, nil)
		return nil
	})
}

// HandleSetSecondaryCredentials thay danh sách đăng nhập phụ của công ty trong phiên hiện tại
func (h *CompanyHandler) HandleSetSecondaryCredentials(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrSessionInvalid)
			return nil
		}

		var input companydto.SetSecondaryCredentialsInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.CompanyService.SetSecondaryCredentials(c.Context(), *companyID, input.Credentials); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, map[string]interface{}{"count": len(input.Credentials)}, nil)
		return nil
	})
}

// HandleGetPublicStorefront trả về thông tin công khai của storefront một công ty.
// Endpoint không cần đăng nhập nên chỉ trả về công ty đang active.
func (h *CompanyHandler) HandleGetPublicStorefront(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var params companydto.CompanyIDParams
		if err := h.ParseRequestParams(c, &params); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		company, err := h.CompanyService.FindOne(c.Context(), map[string]interface{}{
			"_id":    utility.String2ObjectID(params.ID),
			"status": companymodels.CompanyStatusActive,
		}, nil)
		h.HandleResponse(c, company, err)
		return nil
	})
}

// HandleGetSearchState trả về trạng thái tìm kiếm hiện tại của phiên
func (h *CompanyHandler) HandleGetSearchState(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		token, _ := c.Locals("session_token").(string)
		state, err := h.SessionService.GetSearchState(token)
		h.HandleResponse(c, state, err)
		return nil
	})
}

// HandleUpdateSearchState cập nhật trạng thái tìm kiếm của phiên.
// Đổi từ khóa, chế độ hoặc cách sắp xếp sẽ đưa trang về 1.
func (h *CompanyHandler) HandleUpdateSearchState(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		token, _ := c.Locals("session_token").(string)

		var input companydto.SearchStateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		state, err := h.SessionService.UpdateSearchState(token, input.Query, input.Mode, input.Sort, input.Page)
		h.HandleResponse(c, state, err)
		return nil
	})
}
