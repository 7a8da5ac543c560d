package services_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/repairtrack/backend/internal/config"
	"github.com/repairtrack/backend/internal/dto"
	"github.com/repairtrack/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database. A single connection keeps
// every query on the same in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Report{},
		&models.PendingReport{},
		&models.Purchase{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
		AdminEmails:      "boss@shop.test",
		DefaultPageSize:  10,
		MaxPageSize:      100,
	}
}

func validReportRequest() *dto.ReportRequest {
	return &dto.ReportRequest{
		SerialNumber:       "SN-1001",
		CustomerName:       "Jane Doe",
		CustomerEmail:      "jane@example.com",
		PhoneNumber:        "555-1234",
		ProblemDescription: "cracked screen",
		DateGiven:          "2026-08-01",
	}
}

// seedReports inserts n reports directly, with strictly increasing creation
// times so list ordering is deterministic.
func seedReports(t *testing.T, db *gorm.DB, n int, mutate func(i int, r *models.Report)) []models.Report {
	t.Helper()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	reports := make([]models.Report, 0, n)
	for i := 0; i < n; i++ {
		r := models.Report{
			ID:                 uuid.New(),
			SerialNumber:       "SN-" + strconv.Itoa(i),
			CustomerName:       "Customer " + strconv.Itoa(i),
			PhoneNumber:        "555-" + strconv.Itoa(1000+i),
			ProblemDescription: "does not power on",
			Status:             "Pending Diagnosis",
			CreatedAt:          base.Add(time.Duration(i) * time.Minute),
		}
		if mutate != nil {
			mutate(i, &r)
		}
		require.NoError(t, db.Create(&r).Error)
		reports = append(reports, r)
	}
	return reports
}
