package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"carrego/internal/domain"
	"carrego/internal/logging"
	"carrego/internal/ports"
)

// SQLiteCache implements ports.ListingCache using GORM. It keeps the last
// successful fetch of each listing so the UI can show something while a
// refresh is in flight or the network is down.
type SQLiteCache struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.ListingCache = (*SQLiteCache)(nil)

// gormLogger wraps the carrego logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("CARREGO_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteCache opens (or creates) the cache database at dbPath
func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps the TUI responsive when a refresh lands mid-read
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&TripModel{}, &VehicleModel{}, &ReportModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cache schema: %w", err)
	}

	return &SQLiteCache{db: db}, nil
}

// PutTrips replaces the cached listing for one transport mode
func (c *SQLiteCache) PutTrips(ctx context.Context, mode domain.TripMode, trips []domain.Trip) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mode = ?", string(mode)).Delete(&TripModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear cached trips: %w", err)
		}
		for _, trip := range trips {
			model := domainToTripModel(trip)
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to cache trip %s: %w", trip.ID, err)
			}
		}
		return nil
	})
}

// Trips returns the cached listing for one transport mode
func (c *SQLiteCache) Trips(ctx context.Context, mode domain.TripMode) ([]domain.Trip, error) {
	var models []TripModel
	if err := c.db.WithContext(ctx).
		Where("mode = ?", string(mode)).
		Order("trip_created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to read cached trips: %w", err)
	}

	trips := make([]domain.Trip, 0, len(models))
	for _, m := range models {
		trips = append(trips, tripModelToDomain(m))
	}
	return trips, nil
}

// PutVehicles replaces the cached vehicle listing
func (c *SQLiteCache) PutVehicles(ctx context.Context, vehicles []domain.Vehicle) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&VehicleModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear cached vehicles: %w", err)
		}
		for _, vehicle := range vehicles {
			model := domainToVehicleModel(vehicle)
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to cache vehicle %s: %w", vehicle.ID, err)
			}
		}
		return nil
	})
}

// Vehicles returns the cached vehicle listing
func (c *SQLiteCache) Vehicles(ctx context.Context) ([]domain.Vehicle, error) {
	var models []VehicleModel
	if err := c.db.WithContext(ctx).
		Order("vehicle_created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to read cached vehicles: %w", err)
	}

	vehicles := make([]domain.Vehicle, 0, len(models))
	for _, m := range models {
		vehicles = append(vehicles, vehicleModelToDomain(m))
	}
	return vehicles, nil
}

// PutReports replaces the cached report listing
func (c *SQLiteCache) PutReports(ctx context.Context, reports []domain.Report) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ReportModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear cached reports: %w", err)
		}
		for _, report := range reports {
			model := domainToReportModel(report)
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to cache report %s: %w", report.ID, err)
			}
		}
		return nil
	})
}

// Reports returns the cached report listing
func (c *SQLiteCache) Reports(ctx context.Context) ([]domain.Report, error) {
	var models []ReportModel
	if err := c.db.WithContext(ctx).
		Order("report_created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to read cached reports: %w", err)
	}

	reports := make([]domain.Report, 0, len(models))
	for _, m := range models {
		reports = append(reports, reportModelToDomain(m))
	}
	return reports, nil
}

// Close closes the underlying database connection
func (c *SQLiteCache) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}
