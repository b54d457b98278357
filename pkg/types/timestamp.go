package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimestampLayout is the canonical text form of a temporal value in the
// store: UTC with nine fractional digits, so stored values sort
// lexicographically in time order.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

// Timestamp is a temporal column value. It scans from the store's text form
// and writes itself back in TimestampLayout.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, normalized to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses RFC 3339 text, which includes TimestampLayout and
// any other RFC 3339 text such as millisecond precision values.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	return t.UTC(), nil
}

// LooksLikeTimestamp reports whether s starts with a date-time prefix of
// the form dddd-dd-ddTdd:dd:dd. It checks structure only and never parses.
func LooksLikeTimestamp(s string) bool {
	const prefix = "dddd-dd-ddTdd:dd:dd"
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := s[i]
		switch prefix[i] {
		case 'd':
			if c < '0' || c > '9' {
				return false
			}
		default:
			if c != prefix[i] {
				return false
			}
		}
	}
	return true
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	return FormatTimestamp(t.Time), nil
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	case []byte:
		parsed, err := ParseTimestamp(string(v))
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimestamp, src)
	}
}

// String returns the canonical text form.
func (t Timestamp) String() string {
	return FormatTimestamp(t.Time)
}

// TimestampPtr returns a pointer to a Timestamp for t, for optional columns.
func TimestampPtr(t time.Time) *Timestamp {
	ts := NewTimestamp(t)
	return &ts
}
