package config

import (
	"log"
	"os"
	"sync"

	"canteen-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

var (
	jwtSecret     []byte
	jwtSecretOnce sync.Once
)

// JWTSecret returns the token signing key, read from env or fallback.
// Resolved on first use rather than at program start so a value supplied
// only through .env (loaded by LoadEnv) is honored.
func JWTSecret() []byte {
	jwtSecretOnce.Do(func() {
		jwtSecret = []byte(getEnv("JWT_SECRET", "canteen_super_secret_2024"))
	})
	return jwtSecret
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv reads an optional .env file before any env lookups happen.
// Missing files are fine; deployed environments set real env vars.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("CANTEEN_DB", "canteen.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// Migrate runs the schema migration and seeds the canteen row.
// Split out from InitDB so tests can run it against their own database.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Canteen{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Earning{},
	)
	if err != nil {
		return err
	}

	// The earnings rollup assumes exactly one canteen row
	var canteen models.Canteen
	return db.Where(models.Canteen{ID: 1}).
		Attrs(models.Canteen{Name: getEnv("CANTEEN_NAME", "Campus Canteen")}).
		FirstOrCreate(&canteen).Error
}
