package datenorm

import (
	"testing"
	"time"
)

func msUTC(y int, mo time.Month, d, h, mi, s int) int64 {
	return time.Date(y, mo, d, h, mi, s, 0, time.UTC).UnixMilli()
}

func TestToEpochMillis(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int64
	}{
		{"native time value", time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC), msUTC(2024, time.March, 5, 12, 0, 0)},
		{"zero time value", time.Time{}, 0},
		{"nil pointer", (*time.Time)(nil), 0},
		{"nil", nil, 0},
		{"dotnet json date", "/Date(1695383393000)/", 1695383393000},
		{"bare seconds", "1695383393", 1695383393000},
		{"bare milliseconds", "1695383393000", 1695383393000},
		{"numeric seconds", int64(1695383393), 1695383393000},
		{"numeric milliseconds", float64(1695383393000), 1695383393000},
		{"iso with offset", "2024-01-01T10:30:00+00:00", msUTC(2024, time.January, 1, 10, 30, 0)},
		{"iso no offset", "2025-08-15T04:18:50", msUTC(2025, time.August, 15, 4, 18, 50)},
		{"iso fractional seconds", "2025-08-15T04:18:50.04", time.Date(2025, time.August, 15, 4, 18, 50, 40000000, time.UTC).UnixMilli()},
		{"plain iso date", "2024-01-01", msUTC(2024, time.January, 1, 0, 0, 0)},
		{"dd/mm/yyyy", "25/12/2024", msUTC(2024, time.December, 25, 0, 0, 0)},
		{"dd-mm-yyyy with time", "25-12-2024 13:45", msUTC(2024, time.December, 25, 13, 45, 0)},
		{"dd/mm/yyyy with seconds", "01/02/2024 08:30:15", msUTC(2024, time.February, 1, 8, 30, 15)},
		{"yyyy/mm/dd", "2024/12/25", msUTC(2024, time.December, 25, 0, 0, 0)},
		{"yyyy/mm/dd with time", "2024/12/25 13:45:10", msUTC(2024, time.December, 25, 13, 45, 10)},
		{"mm/dd/yyyy falls through when day-first invalid", "12/25/2024", msUTC(2024, time.December, 25, 0, 0, 0)},
		{"mm-dd-yyyy with time", "12-25-2024 06:00", msUTC(2024, time.December, 25, 6, 0, 0)},
		{"ambiguous slash date reads day first", "02/03/2024", msUTC(2024, time.March, 2, 0, 0, 0)},
		{"garbage", "garbage", 0},
		{"empty string", "", 0},
		{"whitespace", "   ", 0},
		{"impossible date", "31/02/2024", 0},
		{"unsupported type", struct{}{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToEpochMillis(tt.input); got != tt.want {
				t.Errorf("ToEpochMillis(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestCreatedTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		record map[string]any
		want   int64
	}{
		{"camelCase createdDate", map[string]any{"createdDate": "2024-01-01"}, msUTC(2024, time.January, 1, 0, 0, 0)},
		{"snake_case created_at", map[string]any{"created_at": "2024-01-01T10:00:00"}, msUTC(2024, time.January, 1, 10, 0, 0)},
		{"PascalCase CreatedOn", map[string]any{"CreatedOn": "/Date(1695383393000)/"}, 1695383393000},
		{"first non-zero candidate wins", map[string]any{"createdDate": "garbage", "createdAt": "2024-05-01"}, msUTC(2024, time.May, 1, 0, 0, 0)},
		{"no candidate", map[string]any{"name": "x"}, 0},
		{"nil record", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CreatedTimestamp(tt.record); got != tt.want {
				t.Errorf("CreatedTimestamp() = %d, want %d", got, tt.want)
			}
		})
	}
}
