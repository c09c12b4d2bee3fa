package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseMetaTime interpreta os timestamps da Graph API (RFC3339 com offset
// sem dois-pontos, ex: 2024-01-15T10:00:00-0300).
func ParseMetaTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse("2006-01-02T15:04:05-0700", value); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, value)
}
