package main

import (
	"context"

	companydto "vitrine_commerce/internal/api/company/dto"
	companymodels "vitrine_commerce/internal/api/company/models"
	companysvc "vitrine_commerce/internal/api/company/service"
	"vitrine_commerce/internal/global"
	"vitrine_commerce/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định cho hệ thống.
// Hiện tại chỉ gồm tài khoản công ty quản trị (mã đăng nhập "ADM").
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	if err := initAdminCompany(); err != nil {
		log.Fatalf("Failed to initialize admin company: %v", err)
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}

// initAdminCompany tạo công ty quản trị nếu chưa tồn tại.
// Bỏ qua nếu ADMIN_SECRET không được cấu hình.
func initAdminCompany() error {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	if cfg.AdminSecret == "" {
		log.Info("ADMIN_SECRET not set, skipping admin company seed")
		return nil
	}

	companyService, err := companysvc.NewCompanyService()
	if err != nil {
		return err
	}

	ctx := context.TODO()

	// Đã có công ty quản trị thì không tạo lại
	existing, err := companyService.FindOne(ctx, map[string]interface{}{"loginCode": companymodels.AdminLoginCode}, nil)
	if err == nil {
		log.Infof("Admin company already exists (ID: %s)", existing.ID.Hex())
		return nil
	}

	admin, err := companyService.Create(ctx, &companydto.CompanyCreateInput{
		Name:      "Administração",
		Email:     cfg.AdminEmail,
		LoginCode: companymodels.AdminLoginCode,
		Secret:    cfg.AdminSecret,
	})
	if err != nil {
		return err
	}

	log.Infof("✅ [INIT] Admin company created (ID: %s, email: %s)", admin.ID.Hex(), admin.Email)
	return nil
}
