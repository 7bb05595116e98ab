package main

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	practicesvc "ca_practice/internal/api/practice/service"
	"ca_practice/internal/database"
	"ca_practice/internal/global"
	"ca_practice/internal/logger"
	"ca_practice/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Không khởi tạo được logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger đã sẵn sàng")
}

// main_thread khởi tạo và chạy Fiber server trên main thread
func main_thread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	address := ":" + cfg.Address
	log := logger.GetAppLogger()

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			log.Fatalf("Không load được TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Không tạo được listener: %v", err)
		}

		tlsListener := tls.NewListener(ln, &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		})

		log.WithField("address", address).Info("Khởi động server HTTPS")
		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Lỗi Fiber Listener với TLS: %v", err)
		}
		return
	}

	log.WithField("address", address).Info("Khởi động server HTTP")
	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Lỗi Fiber Listen: %v", err)
	}
}

func main() {
	initLogger()

	// Khởi tạo config, database, validator
	InitGlobal()

	// Đăng ký collections vào registry
	InitRegistry()

	// Seed dữ liệu mặc định nếu bật INITMODE
	if global.MongoDB_ServerConfig.InitMode {
		InitDefaultData()
	}

	// Worker đánh dấu hóa đơn quá hạn chạy nền theo chu kỳ cấu hình
	interval := time.Duration(global.MongoDB_ServerConfig.OverdueCheckMinutes) * time.Minute
	overdueWorker := worker.NewInvoiceOverdueWorker(practicesvc.NewInvoiceService(), interval)
	overdueWorker.Start()

	// Dọn dẹp khi nhận tín hiệu dừng
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log := logger.GetAppLogger()
		log.Info("Nhận tín hiệu dừng, đang dọn dẹp...")

		overdueWorker.Stop()
		if err := database.CloseInstance(global.MongoDB_Session); err != nil {
			log.Warnf("Lỗi khi đóng kết nối MongoDB: %v", err)
		}
		logger.Close()
		os.Exit(0)
	}()

	main_thread()
}
