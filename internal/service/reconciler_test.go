package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glowcare/clinic/config"
	"github.com/glowcare/clinic/internal/domain/entity"
	"github.com/glowcare/clinic/internal/gateway"
	"github.com/glowcare/clinic/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newReconcilerFixture(t *testing.T, upstream http.Handler, maxAttempts int) (*OutboxReconciler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&entity.ConfirmationOutbox{}); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	baseURL := ""
	if upstream != nil {
		server := httptest.NewServer(upstream)
		t.Cleanup(server.Close)
		baseURL = server.URL
	} else {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseURL = server.URL
		server.Close()
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	clientCfg := config.ClientConfig{Timeout: 2 * time.Second, RetryMax: 0, RetryWait: 10 * time.Millisecond}
	client := gateway.NewAppointmentClient(baseURL, clientCfg, log)

	r := NewOutboxReconciler(db, log, repository.NewConfirmationOutboxRepository(), client, "@every 1m", maxAttempts)
	return r, db
}

func seedOutbox(t *testing.T, db *gorm.DB, record *entity.ConfirmationOutbox) {
	t.Helper()
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to seed outbox: %v", err)
	}
}

func TestSweep_DeliversPendingConfirmations(t *testing.T) {
	var calls int64
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		if r.URL.Path != "/appointments/7/confirm-payment" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true}`))
	})

	r, db := newReconcilerFixture(t, upstream, 5)
	seedOutbox(t, db, &entity.ConfirmationOutbox{
		PaymentID:     3,
		AppointmentID: 7,
		Status:        entity.OutboxStatusPending,
	})

	r.Sweep()

	var record entity.ConfirmationOutbox
	if err := db.First(&record).Error; err != nil {
		t.Fatalf("failed to read outbox: %v", err)
	}
	if record.Status != entity.OutboxStatusSent {
		t.Fatalf("expected sent, got %q", record.Status)
	}
	if record.SentAt == nil {
		t.Fatalf("expected sent_at to be set")
	}
	if record.Attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", record.Attempts)
	}
	if got := atomic.LoadInt64(&calls); got != 1 {
		t.Fatalf("expected 1 upstream call, got %d", got)
	}

	// A delivered row is not swept again.
	r.Sweep()
	if got := atomic.LoadInt64(&calls); got != 1 {
		t.Fatalf("expected no further upstream calls, got %d", got)
	}
}

func TestSweep_DeadLettersAfterMaxAttempts(t *testing.T) {
	r, db := newReconcilerFixture(t, nil, 2)
	seedOutbox(t, db, &entity.ConfirmationOutbox{
		PaymentID:     3,
		AppointmentID: 7,
		Status:        entity.OutboxStatusPending,
	})

	r.Sweep()

	var record entity.ConfirmationOutbox
	if err := db.First(&record).Error; err != nil {
		t.Fatalf("failed to read outbox: %v", err)
	}
	if record.Status != entity.OutboxStatusPending {
		t.Fatalf("expected still pending after first failure, got %q", record.Status)
	}
	if record.Attempts != 1 || record.LastError == "" {
		t.Fatalf("expected recorded failure, got attempts=%d last_error=%q", record.Attempts, record.LastError)
	}

	r.Sweep()

	if err := db.First(&record).Error; err != nil {
		t.Fatalf("failed to read outbox: %v", err)
	}
	if record.Status != entity.OutboxStatusFailed {
		t.Fatalf("expected dead-lettered, got %q", record.Status)
	}
	if record.Attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", record.Attempts)
	}
}

func TestSweep_LeavesRejectedRowsForRetry(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r, db := newReconcilerFixture(t, upstream, 5)
	seedOutbox(t, db, &entity.ConfirmationOutbox{
		PaymentID:     3,
		AppointmentID: 404,
		Status:        entity.OutboxStatusPending,
	})

	r.Sweep()

	var record entity.ConfirmationOutbox
	if err := db.First(&record).Error; err != nil {
		t.Fatalf("failed to read outbox: %v", err)
	}
	if record.Status != entity.OutboxStatusPending {
		t.Fatalf("expected pending after rejection, got %q", record.Status)
	}
	if record.LastError == "" {
		t.Fatalf("expected last_error to carry the rejection")
	}
}
