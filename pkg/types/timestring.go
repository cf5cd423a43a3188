package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeString represents a time of day in canonical "HH:MM:SS" form.
// It is stored in PostgreSQL TIME columns and rendered as-is in JSON.
type TimeString string

const (
	canonicalLayout = "15:04:05"
	shortLayout     = "15:04"

	// MinutesPerDay количество минут в сутках, граница для AddMinutes
	MinutesPerDay = 24 * 60
)

// ErrPastMidnight возвращается, когда арифметика над временем выходит за пределы суток
var ErrPastMidnight = fmt.Errorf("types: time arithmetic crosses midnight")

// NewTimeString создает TimeString из компоненты времени time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(canonicalLayout))
}

// NewTimeStringFromString парсит строку "HH:MM:SS" или "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(canonicalLayout, s); err == nil {
		return TimeString(t.Format(canonicalLayout)), nil
	}
	if t, err := time.Parse(shortLayout, s); err == nil {
		return TimeString(t.Format(canonicalLayout)), nil
	}
	return "", fmt.Errorf("types: invalid time string format %q, expected HH:MM or HH:MM:SS", s)
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", ErrPastMidnight
	}
	return TimeString(fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)), nil
}

// String returns the canonical "HH:MM:SS" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true when the value is empty (not set).
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение является корректным временем суток
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// Minutes returns the value as minutes since midnight. Seconds are truncated.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(canonicalLayout, string(t))
	if err != nil {
		// Допускаем короткую форму, если значение пришло извне без секунд
		parsed, err = time.Parse(shortLayout, string(t))
		if err != nil {
			return 0, fmt.Errorf("types: invalid time string %q: %v", string(t), err)
		}
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на delta минут вперед.
// Выход за пределы суток считается ошибкой (ErrPastMidnight).
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	mins, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(mins + delta)
}

// IsBefore reports whether t is strictly earlier than other.
// Canonical fixed-width form makes lexicographic comparison correct.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer for TIME columns.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan implements sql.Scanner. lib/pq returns TIME columns as time.Time or []byte.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

// MarshalJSON renders the canonical string form.
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON accepts "HH:MM" and "HH:MM:SS".
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = ""
		return nil
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
