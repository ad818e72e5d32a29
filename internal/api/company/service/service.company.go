package companysvc

import (
	"context"
	"fmt"
	"strings"

	basesvc "vitrine_commerce/internal/api/base/service"
	companydto "vitrine_commerce/internal/api/company/dto"
	companymodels "vitrine_commerce/internal/api/company/models"
	"vitrine_commerce/internal/common"
	"vitrine_commerce/internal/global"
	"vitrine_commerce/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// adminIdentifier là định danh đặc biệt để đăng nhập vào tài khoản quản trị,
// so sánh không phân biệt hoa thường.
const adminIdentifier = "adm"

// dummySecretHash là bcrypt hash của một giá trị ngẫu nhiên, dùng để so sánh
// khi không tìm thấy công ty nhằm giữ thời gian phản hồi đồng đều giữa
// trường hợp sai định danh và sai mật khẩu.
const dummySecretHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// CompanyService là service quản lý công ty (tenant) và thông tin đăng nhập
type CompanyService struct {
	*basesvc.BaseServiceMongoImpl[companymodels.Company]
}

// NewCompanyService tạo mới CompanyService
func NewCompanyService() (*CompanyService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Companies)
	if !exist {
		return nil, fmt.Errorf("failed to get companies collection: %v", common.ErrNotFound)
	}
	return &CompanyService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[companymodels.Company](collection),
	}, nil
}

// Create tạo công ty mới từ input đăng ký, hash toàn bộ mật khẩu trước khi lưu
func (s *CompanyService) Create(ctx context.Context, input *companydto.CompanyCreateInput) (companymodels.Company, error) {
	var zero companymodels.Company

	if len(input.SecondaryCredentials) > companymodels.MaxSecondaryCredentials {
		return zero, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Chỉ cho phép tối đa %d bộ đăng nhập phụ", companymodels.MaxSecondaryCredentials),
			common.StatusBadRequest, nil)
	}

	primaryHash, err := hashSecret(input.Secret)
	if err != nil {
		return zero, err
	}

	usernames := make([]string, 0, len(input.SecondaryCredentials))
	hashes := make([]string, 0, len(input.SecondaryCredentials))
	for _, cred := range input.SecondaryCredentials {
		h, err := hashSecret(cred.Secret)
		if err != nil {
			return zero, err
		}
		usernames = append(usernames, cred.Username)
		hashes = append(hashes, h)
	}

	company := companymodels.Company{
		Name:                  input.Name,
		Description:           input.Description,
		AboutUs:               input.AboutUs,
		OpeningHours:          input.OpeningHours,
		Email:                 input.Email,
		Phone:                 input.Phone,
		Whatsapp:              input.Whatsapp,
		Address:               input.Address,
		Website:               input.Website,
		Facebook:              input.Facebook,
		Instagram:             input.Instagram,
		LogoURL:               input.LogoURL,
		BannerURLs:            input.BannerURLs,
		PrimaryColor:          input.PrimaryColor,
		SecondaryColor:        input.SecondaryColor,
		LoginCode:             input.LoginCode,
		PrimarySecretHash:     primaryHash,
		SecondaryUsernames:    usernames,
		SecondarySecretHashes: hashes,
	}

	return s.InsertOne(ctx, company)
}

// ChangeSecret đổi mật khẩu chính của công ty sau khi xác nhận mật khẩu hiện tại
func (s *CompanyService) ChangeSecret(ctx context.Context, companyID primitive.ObjectID, currentSecret, newSecret string) error {
	company, err := s.FindOneById(ctx, companyID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(company.PrimarySecretHash), []byte(currentSecret)); err != nil {
		return common.ErrInvalidCredentials
	}

	newHash, err := hashSecret(newSecret)
	if err != nil {
		return err
	}

	_, err = s.UpdateById(ctx, companyID, &basesvc.UpdateData{
		Set: map[string]interface{}{"primarySecretHash": newHash},
	})
	return err
}

// SetSecondaryCredentials thay toàn bộ danh sách đăng nhập phụ của công ty.
// Hai mảng username và hash luôn được ghi cùng nhau để giữ tương ứng theo chỉ số.
func (s *CompanyService) SetSecondaryCredentials(ctx context.Context, companyID primitive.ObjectID, creds []companydto.SecondaryCredentialInput) error {
	if len(creds) > companymodels.MaxSecondaryCredentials {
		return common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Chỉ cho phép tối đa %d bộ đăng nhập phụ", companymodels.MaxSecondaryCredentials),
			common.StatusBadRequest, nil)
	}

	usernames := make([]string, 0, len(creds))
	hashes := make([]string, 0, len(creds))
	for _, cred := range creds {
		h, err := hashSecret(cred.Secret)
		if err != nil {
			return err
		}
		usernames = append(usernames, cred.Username)
		hashes = append(hashes, h)
	}

	_, err := s.UpdateById(ctx, companyID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"secondaryUsernames":    usernames,
			"secondarySecretHashes": hashes,
		},
	})
	return err
}

// Authenticate xác thực cặp định danh/mật khẩu và trả về công ty tương ứng.
// Thứ tự kiểm tra:
//  1. Định danh "adm" (không phân biệt hoa thường): tìm công ty có mã đăng nhập "ADM",
//     so khớp mật khẩu chính, thành công thì phiên là phiên quản trị.
//  2. Email chính của công ty, so khớp mật khẩu chính.
//  3. Định danh phụ: so khớp mật khẩu phụ có cùng chỉ số với định danh.
//
// Mọi thất bại, kể cả lỗi truy vấn database, đều trả về ErrInvalidCredentials
// để không lộ thông tin định danh nào tồn tại trong hệ thống.
func (s *CompanyService) Authenticate(ctx context.Context, identifier, secret string) (companymodels.Company, bool, error) {
	var zero companymodels.Company

	if strings.EqualFold(identifier, adminIdentifier) {
		company, err := s.FindOne(ctx, map[string]interface{}{"loginCode": companymodels.AdminLoginCode}, nil)
		if err != nil {
			logger.GetAppLogger().WithField("identifier", identifier).Warn("❌ [AUTH] Không tìm thấy tài khoản quản trị")
			compareSecret(dummySecretHash, secret)
			return zero, false, common.ErrInvalidCredentials
		}
		if !compareSecret(company.PrimarySecretHash, secret) {
			return zero, false, common.ErrInvalidCredentials
		}
		return company, true, nil
	}

	// Đăng nhập bằng email chính
	company, err := s.FindOne(ctx, map[string]interface{}{"email": identifier}, nil)
	if err == nil {
		if !compareSecret(company.PrimarySecretHash, secret) {
			return zero, false, common.ErrInvalidCredentials
		}
		return company, false, nil
	}

	// Đăng nhập bằng định danh phụ
	company, err = s.FindOne(ctx, map[string]interface{}{"secondaryUsernames": identifier}, nil)
	if err != nil {
		compareSecret(dummySecretHash, secret)
		return zero, false, common.ErrInvalidCredentials
	}

	for i, username := range company.SecondaryUsernames {
		if username != identifier {
			continue
		}
		if i >= len(company.SecondarySecretHashes) {
			break
		}
		if compareSecret(company.SecondarySecretHashes[i], secret) {
			return company, false, nil
		}
		return zero, false, common.ErrInvalidCredentials
	}

	compareSecret(dummySecretHash, secret)
	return zero, false, common.ErrInvalidCredentials
}

// hashSecret hash mật khẩu bằng bcrypt với cost mặc định
func hashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, err)
	}
	return string(hash), nil
}

// compareSecret so khớp mật khẩu với hash, bcrypt đảm bảo so sánh constant-time
func compareSecret(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
