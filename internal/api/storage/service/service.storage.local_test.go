// Package storagesvc - Test lưu trữ file cục bộ.
package storagesvc

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/")
	if err != nil {
		t.Fatalf("NewLocalStorage trả về lỗi: %v", err)
	}
	return s
}

func TestUpload_WritesFileAndReturnsURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.Upload("products/abc/anh.jpg", []byte("jpeg-data"))
	if err != nil {
		t.Fatalf("Upload trả về lỗi: %v", err)
	}
	if url != "http://localhost:8080/uploads/products/abc/anh.jpg" {
		t.Errorf("URL = %s, không đúng dạng mong muốn", url)
	}

	data, err := os.ReadFile(filepath.Join(s.rootDir, "products", "abc", "anh.jpg"))
	if err != nil {
		t.Fatalf("File không được ghi xuống đĩa: %v", err)
	}
	if string(data) != "jpeg-data" {
		t.Errorf("Nội dung file = %q, muốn %q", data, "jpeg-data")
	}
}

func TestUpload_OverwritesExistingPath(t *testing.T) {
	s := newTestStorage(t)

	if _, err := s.Upload("logo.png", []byte("cu")); err != nil {
		t.Fatalf("Upload lần 1 lỗi: %v", err)
	}
	if _, err := s.Upload("logo.png", []byte("moi")); err != nil {
		t.Fatalf("Upload ghi đè lỗi: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(s.rootDir, "logo.png"))
	if string(data) != "moi" {
		t.Errorf("Ghi đè không thay nội dung, nhận được %q", data)
	}
}

func TestUpload_RejectsPathEscape(t *testing.T) {
	s := newTestStorage(t)

	if _, err := s.Upload("../ngoai-thu-muc.txt", []byte("x")); err == nil {
		t.Error("Path chứa .. phải bị từ chối")
	}
	if _, err := s.Upload("", []byte("x")); err == nil {
		t.Error("Path rỗng phải bị từ chối")
	}
}

func TestRemove_DeletesFile(t *testing.T) {
	s := newTestStorage(t)

	s.Upload("xoa-toi.txt", []byte("x"))
	if err := s.Remove("xoa-toi.txt"); err != nil {
		t.Fatalf("Remove trả về lỗi: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.rootDir, "xoa-toi.txt")); !os.IsNotExist(err) {
		t.Error("File phải bị xóa khỏi đĩa")
	}
}

func TestRemove_MissingFileIsNotError(t *testing.T) {
	s := newTestStorage(t)
	if err := s.Remove("chua-bao-gio-ton-tai.txt"); err != nil {
		t.Errorf("Xóa file không tồn tại không được coi là lỗi: %v", err)
	}
}
