package models

import (
	"time"

	"gorm.io/gorm"
)

// Canteen holds the running earnings total. Exactly one row is expected;
// callers that find none skip the rollup rather than failing.
type Canteen struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name" gorm:"not null"`
	TotalEarnings float64 `json:"total_earnings" gorm:"default:0"`
}

// Earning is an immutable ledger entry for recognized revenue from one order.
type Earning struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	OrderID   uint      `json:"order_id" gorm:"not null"`
	Amount    float64   `json:"amount" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func sumEarningsBetween(db *gorm.DB, start, end time.Time) (float64, error) {
	var total float64
	err := db.Model(&Earning{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// DailyEarnings sums earnings recorded today (server-local clock).
func DailyEarnings(db *gorm.DB, now time.Time) (float64, error) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return sumEarningsBetween(db, start, start.AddDate(0, 0, 1))
}

// MonthlyEarnings sums earnings recorded in the current month.
func MonthlyEarnings(db *gorm.DB, now time.Time) (float64, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return sumEarningsBetween(db, start, start.AddDate(0, 1, 0))
}

// YearlyEarnings sums earnings recorded in the current year.
func YearlyEarnings(db *gorm.DB, now time.Time) (float64, error) {
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	return sumEarningsBetween(db, start, start.AddDate(1, 0, 0))
}
