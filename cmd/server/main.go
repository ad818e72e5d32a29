package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	companysvc "vitrine_commerce/internal/api/company/service"
	homesvc "vitrine_commerce/internal/api/home/service"
	storagesvc "vitrine_commerce/internal/api/storage/service"
	"vitrine_commerce/internal/database"
	"vitrine_commerce/internal/global"
	"vitrine_commerce/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Khởi tạo logger với cấu hình mặc định
	// Logger sẽ tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Log thông tin khởi tạo bằng logger mới
	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server, dừng êm khi nhận SIGINT/SIGTERM
func main_thread(app *fiber.App) {
	// Khởi động server với cấu hình listen
	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	// Helper function để resolve đường dẫn tương đối từ thư mục gốc của dự án
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	// Context nhận tín hiệu dừng từ hệ điều hành
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)

	// Kiểm tra xem có bật TLS không
	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		// Resolve đường dẫn certificate và key
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		// Kiểm tra file certificate và key tồn tại
		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		// Load certificate và key
		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		// Tạo listener với TLS
		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		// Cấu hình TLS
		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}

		// Wrap listener với TLS
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		go func() {
			serveErr <- app.Listener(tlsListener)
		}()
	} else {
		// Khởi động server HTTP thông thường
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		go func() {
			serveErr <- app.Listen(address, fiber.ListenConfig{})
		}()
	}

	select {
	case err := <-serveErr:
		if err != nil {
			log.Fatalf("Error in Fiber server: %v", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received, stopping server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Errorf("Error during server shutdown: %v", err)
		}

		if err := database.CloseInstance(global.MongoDB_Session); err != nil {
			log.Errorf("Error closing MongoDB connection: %v", err)
		}

		log.Info("Server stopped gracefully")
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo dữ liệu mặc định
	InitDefaultData()

	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	// Context cho các goroutine nền (sweeper phiên, rotator carousel)
	bgCtx, cancelBg := context.WithCancel(context.Background())
	defer cancelBg()

	// Khởi tạo service quản lý phiên đăng nhập (in-memory)
	sessionTTL := time.Duration(cfg.SessionTTL) * time.Second
	sessionService := companysvc.NewSessionService(sessionTTL)
	sessionService.StartSweeper(bgCtx, 10*time.Minute)
	log.Infof("Session service initialized (TTL: %s)", sessionTTL)

	// Khởi tạo storage lưu file upload trên đĩa
	storage, err := storagesvc.NewLocalStorage(cfg.StorageDir, cfg.StoragePublicURL)
	if err != nil {
		log.Fatalf("Failed to initialize local storage: %v", err)
	}
	log.Infof("Local storage initialized (dir: %s)", cfg.StorageDir)

	// Khởi tạo service trang chủ và chạy chu kỳ tự chuyển carousel
	homeService, err := homesvc.NewHomeService()
	if err != nil {
		log.Fatalf("Failed to initialize home service: %v", err)
	}
	homeService.StartRotation(bgCtx)
	log.Info("Home service initialized, carousel rotation started")

	// Khởi tạo app với cấu hình và chạy trên main thread
	app := InitFiberApp(sessionService, storage, homeService)
	main_thread(app)
}
