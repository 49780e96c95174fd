package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"convivio_backend/internals/configs"
)

var DB *gorm.DB

const (
	connectAttempts = 5
	connectBackoff  = 3 * time.Second
)

// ConnectDB opens the PostgreSQL connection, retrying a bounded number of
// times so the service survives the database coming up after it.
func ConnectDB() {
	log.Println("[INFO] Connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=convivio&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // PgBouncer transaction pooling friendly
		}), &gorm.Config{
			Logger: configs.NewGormLogger(),
		})
		if err == nil {
			break
		}
		log.Printf("[WARN] DB connect attempt %d/%d failed: %v", attempt, connectAttempts, err)
		time.Sleep(connectBackoff)
	}
	if err != nil {
		log.Fatalf("[ERROR] DB connection failed after %d attempts: %v", connectAttempts, err)
	}

	DB = db
	log.Println("[INFO] DB connected.")
}

// TunePool sizes the underlying sql.DB pool to the Postgres instance limits.
func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Ping reports whether the connection is still alive; used by /health.
func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
