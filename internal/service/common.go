package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const dayFormat = "2006-01-02"

// dbtx is the statement surface shared by *sql.DB and *sql.Tx. Helpers take
// it so a logical update can run all its reads and writes on one
// transaction; with the single sqlite connection, a db call while a tx is
// open would block.
type dbtx interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validatePositiveFloat(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

// normalizeDay trims and validates a YYYY-MM-DD date string, defaulting to
// fallback's calendar day when empty.
func normalizeDay(date string, fallback time.Time) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return fallback.Format(dayFormat), nil
	}
	if _, err := time.ParseInLocation(dayFormat, date, time.Local); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

func parseDay(date string) (time.Time, error) {
	t, err := time.ParseInLocation(dayFormat, strings.TrimSpace(date), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

func oneOf(name, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (use %s)", name, value, strings.Join(allowed, ", "))
}

func optionalOneOf(name, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	return oneOf(name, value, allowed...)
}
