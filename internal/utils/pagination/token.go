package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Cursor identifies the last transaction of a page in display order (date descending,
// sequence ascending).
type Cursor struct {
	Date     time.Time
	Sequence int64
}

// After reports whether a transaction with the given date and sequence comes after the
// cursor in display order.
func (c Cursor) After(date time.Time, sequence int64) bool {
	if !date.Equal(c.Date) {
		return date.Before(c.Date)
	}
	return sequence > c.Sequence
}

// EncodeToken creates a base64 encoded token from a transaction date and insertion sequence.
func EncodeToken(date time.Time, sequence int64) string {
	return EncodeMultiFieldToken(date.UTC().Format(timeFormat), strconv.FormatInt(sequence, 10))
}

// DecodeToken parses the base64 encoded token back into a cursor.
func DecodeToken(token string) (Cursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return Cursor{}, err
	}
	if len(parts) != 2 {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	sequence, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (sequence parse): %w", err)
	}

	return Cursor{Date: date, Sequence: sequence}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}
