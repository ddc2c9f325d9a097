package services

import (
	"time"

	"github.com/imok-app/imok/internal/models"
)

const localDateLayout = "2006-01-02"

// LocalDate formats value as the local calendar date (YYYY-MM-DD) in location.
func LocalDate(value time.Time, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return value.In(location).Format(localDateLayout)
}

// MinutesOfDay returns minutes since local midnight for value.
func MinutesOfDay(value time.Time, location *time.Location) int {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	return localized.Hour()*60 + localized.Minute()
}

// FilterRecordsForDate keeps only records belonging to the given calendar date.
func FilterRecordsForDate(records []models.CheckInRecord, date string) []models.CheckInRecord {
	filtered := make([]models.CheckInRecord, 0, len(records))
	for _, record := range records {
		if record.Date == date {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
