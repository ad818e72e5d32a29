package storagesvc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vitrine_commerce/internal/common"
	"vitrine_commerce/internal/logger"
)

// ObjectStorage là hợp đồng lưu trữ file tĩnh. Handler nhận interface này
// để test có thể thay bằng implementation giả.
type ObjectStorage interface {
	// Upload lưu dữ liệu dưới path tương đối, ghi đè nếu đã tồn tại,
	// trả về URL công khai của file
	Upload(path string, data []byte) (string, error)
	// Remove xóa file theo path tương đối. File không tồn tại không phải lỗi.
	Remove(path string) error
	// PublicURL trả về URL công khai của một path đã lưu
	PublicURL(path string) string
}

// LocalStorage lưu file trên đĩa cục bộ và phục vụ qua static route của server
type LocalStorage struct {
	rootDir string // Thư mục gốc chứa file upload
	baseURL string // Base URL công khai, ví dụ http://localhost:8080
}

// NewLocalStorage tạo storage cục bộ, tạo sẵn thư mục gốc nếu chưa có
func NewLocalStorage(rootDir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", rootDir, err)
	}
	return &LocalStorage{
		rootDir: rootDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload ghi file xuống đĩa và trả về URL công khai
func (s *LocalStorage) Upload(path string, data []byte) (string, error) {
	cleaned, err := s.sanitizePath(path)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.rootDir, cleaned)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", common.NewError(common.ErrCodeStorageUpload,
			fmt.Sprintf("Không thể tạo thư mục cho %s", cleaned), common.StatusInternalServerError, err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", common.NewError(common.ErrCodeStorageUpload,
			fmt.Sprintf("Không thể ghi file %s", cleaned), common.StatusInternalServerError, err)
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"path": cleaned,
		"size": len(data),
	}).Debug("Đã lưu file upload")

	return s.PublicURL(cleaned), nil
}

// Remove xóa file đã upload. Dùng làm bước bù trừ khi thao tác ghi
// tiếp theo thất bại, tránh để lại file mồ côi không bản ghi nào tham chiếu.
func (s *LocalStorage) Remove(path string) error {
	cleaned, err := s.sanitizePath(path)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.rootDir, cleaned)); err != nil && !os.IsNotExist(err) {
		return common.NewError(common.ErrCodeStorage,
			fmt.Sprintf("Không thể xóa file %s", cleaned), common.StatusInternalServerError, err)
	}
	return nil
}

// PublicURL trả về URL công khai của một path đã lưu
func (s *LocalStorage) PublicURL(path string) string {
	return fmt.Sprintf("%s/uploads/%s", s.baseURL, filepath.ToSlash(path))
}

// sanitizePath chuẩn hóa path tương đối và chặn các path thoát khỏi thư mục gốc
func (s *LocalStorage) sanitizePath(path string) (string, error) {
	cleaned := filepath.Clean(strings.TrimLeft(path, "/"))
	if cleaned == "." || cleaned == "" || strings.HasPrefix(cleaned, "..") {
		return "", common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Path không hợp lệ: %s", path), common.StatusBadRequest, nil)
	}
	return cleaned, nil
}
