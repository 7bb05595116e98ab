// Package worker - các tiến trình nền chạy định kỳ của server.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	practicesvc "ca_practice/internal/api/practice/service"
	"ca_practice/internal/logger"
)

// InvoiceOverdueWorker định kỳ quét các hóa đơn Pending/Partial quá hạn
// thanh toán và gán trạng thái Overdue. Trạng thái quá hạn do server
// quyết định, client chỉ hiển thị.
type InvoiceOverdueWorker struct {
	invoiceService *practicesvc.InvoiceService
	interval       time.Duration
	cancel         context.CancelFunc
	wg             sync.WaitGroup
	startOnce      sync.Once
	stopOnce       sync.Once
}

// NewInvoiceOverdueWorker tạo worker với chu kỳ quét cho trước
func NewInvoiceOverdueWorker(invoiceService *practicesvc.InvoiceService, interval time.Duration) *InvoiceOverdueWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &InvoiceOverdueWorker{
		invoiceService: invoiceService,
		interval:       interval,
	}
}

// Start chạy worker trong goroutine riêng. Quét một lần ngay khi khởi động
// rồi lặp lại theo chu kỳ cho tới khi Stop được gọi.
func (w *InvoiceOverdueWorker) Start() {
	w.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		w.cancel = cancel

		w.wg.Add(1)
		go w.run(ctx)
	})
}

// Stop dừng worker và chờ vòng quét đang chạy kết thúc
func (w *InvoiceOverdueWorker) Stop() {
	w.stopOnce.Do(func() {
		if w.cancel != nil {
			w.cancel()
		}
		w.wg.Wait()
	})
}

func (w *InvoiceOverdueWorker) run(ctx context.Context) {
	defer w.wg.Done()

	log := logger.GetWorkerLogger()
	log.WithFields(logrus.Fields{
		"interval": w.interval.String(),
	}).Info("InvoiceOverdueWorker: Bắt đầu chạy")

	w.sweep(ctx, log)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("InvoiceOverdueWorker: Dừng")
			return
		case <-ticker.C:
			w.sweep(ctx, log)
		}
	}
}

// sweep quét một lượt, recover để một lần lỗi không giết worker
func (w *InvoiceOverdueWorker) sweep(ctx context.Context, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(logrus.Fields{"panic": r}).Error("InvoiceOverdueWorker: Panic trong vòng quét")
		}
	}()

	sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	marked, err := w.invoiceService.MarkOverdueInvoices(sweepCtx, time.Now().UTC())
	if err != nil {
		log.WithFields(logrus.Fields{"error": err.Error()}).Error("InvoiceOverdueWorker: Quét thất bại")
		return
	}
	if marked > 0 {
		log.WithFields(logrus.Fields{"marked": marked}).Info("InvoiceOverdueWorker: Đã đánh dấu hóa đơn quá hạn")
	}
}
