// Package router đăng ký các route thuộc domain Storage: upload và xóa file tĩnh.
package router

import (
	"github.com/gofiber/fiber/v3"

	"vitrine_commerce/internal/api/middleware"
	apirouter "vitrine_commerce/internal/api/router"
	storagehdl "vitrine_commerce/internal/api/storage/handler"
	storagesvc "vitrine_commerce/internal/api/storage/service"
)

// Register trả về hàm đăng ký route của domain storage
func Register(storage storagesvc.ObjectStorage) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		storageHandler := storagehdl.NewStorageHandler(storage)

		sessionRequired := middleware.SessionRequired()

		apirouter.RegisterRouteWithMiddleware(v1, "/storage", "POST", "/upload", []fiber.Handler{sessionRequired}, storageHandler.HandleUpload)
		apirouter.RegisterRouteWithMiddleware(v1, "/storage", "DELETE", "/remove", []fiber.Handler{sessionRequired}, storageHandler.HandleRemove)

		return nil
	}
}
