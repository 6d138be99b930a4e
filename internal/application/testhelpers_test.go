package application

import (
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/walker-cleaning/site-api/internal/events"
	"github.com/walker-cleaning/site-api/internal/platform/metrics"
	"github.com/walker-cleaning/site-api/internal/repository"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// One connection only: every pooled sqlite connection to :memory: would
	// otherwise open its own empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&repository.BookingModel{},
		&repository.ServiceModel{},
		&repository.PackageModel{},
		&repository.SettingsModel{},
	))
	return db
}

func newTestBookingService(t *testing.T, db *gorm.DB) *BookingService {
	t.Helper()
	return NewBookingService(
		repository.NewGormBookingRepository(db),
		events.NopPublisher{},
		metrics.New(prometheus.NewRegistry()),
		zap.NewNop(),
	)
}

func newTestCatalogService(t *testing.T, db *gorm.DB) *CatalogService {
	t.Helper()
	return NewCatalogService(
		repository.NewGormServiceRepository(db),
		repository.NewGormPackageRepository(db),
		zap.NewNop(),
	)
}

func newTestSettingsService(t *testing.T, db *gorm.DB) *SettingsService {
	t.Helper()
	return NewSettingsService(repository.NewGormSettingsRepository(db), zap.NewNop())
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
