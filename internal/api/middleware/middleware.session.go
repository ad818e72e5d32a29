package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"vitrine_commerce/internal/common"
	"vitrine_commerce/internal/logger"
)

// SessionInfo chứa thông tin phiên đã xác thực, do session service trả về
type SessionInfo struct {
	Token     string // Token của phiên
	CompanyID string // ID công ty (hex), rỗng với phiên admin
	IsAdmin   bool   // Phiên admin hay phiên công ty
}

// SessionValidator xác thực token phiên. Implementation do company/service cung cấp,
// được inject qua SetSessionValidator lúc khởi động để tránh import cycle.
type SessionValidator interface {
	Validate(token string) (*SessionInfo, error)
}

var sessionValidator SessionValidator

// SetSessionValidator inject session service vào middleware. Gọi một lần lúc khởi động server.
func SetSessionValidator(v SessionValidator) {
	sessionValidator = v
}

// SessionRequired middleware xác thực phiên cho Fiber.
// Đọc token từ header X-Session-Token, validate qua session service
// và lưu company_id / is_admin vào context cho các handler phía sau.
func SessionRequired() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := c.Get("X-Session-Token")
		if token == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing X-Session-Token header")
			HandleErrorResponse(c, common.ErrSessionMissing)
			return nil
		}

		if sessionValidator == nil {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeInternalServer,
				"Session service chưa được khởi tạo",
				common.StatusInternalServerError,
				nil,
			))
			return nil
		}

		info, err := sessionValidator.Validate(token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Session token không hợp lệ hoặc đã hết hạn")
			HandleErrorResponse(c, err)
			return nil
		}

		// Lưu thông tin phiên vào context
		c.Locals("session_token", info.Token)
		c.Locals("company_id", info.CompanyID)
		c.Locals("is_admin", info.IsAdmin)

		return c.Next()
	}
}

// AdminRequired middleware yêu cầu phiên admin. Phải đặt SAU SessionRequired trong chain.
func AdminRequired() fiber.Handler {
	return func(c fiber.Ctx) error {
		isAdmin, ok := c.Locals("is_admin").(bool)
		if !ok || !isAdmin {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Yêu cầu quyền admin")
			HandleErrorResponse(c, common.ErrForbiddenScope)
			return nil
		}
		return c.Next()
	}
}
