// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"
)

// secondsCeiling separates fractional epoch seconds from milliseconds.
// 1e11 ms is March 1973, 1e11 s is the year 5138.
const secondsCeiling = 1e11

// Timestamp is a point in time in epoch milliseconds.
//
// On the wire it is a JSON number. Integers are always milliseconds. A
// number with a fraction or exponent whose magnitude is below 1e11 is read
// as epoch seconds, which is what backends writing Python timestamps send.
type Timestamp int64

// TimestampFromTime converts t to a Timestamp.
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// Time returns the timestamp as a local time.Time.
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(int64(t))
}

// IsZero reports whether the timestamp is unset.
func (t Timestamp) IsZero() bool {
	return t == 0
}

// Millis returns the raw epoch milliseconds.
func (t Timestamp) Millis() int64 {
	return int64(t)
}

// MarshalJSON writes the timestamp as an integer.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, t.Millis(), 10), nil
}

// UnmarshalJSON accepts integer milliseconds or fractional seconds.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		*t = 0
		return nil
	}

	if n, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
		*t = Timestamp(n)
		return nil
	}

	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", raw, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid timestamp %s", raw)
	}
	if math.Abs(f) < secondsCeiling {
		f *= 1000
	}
	f = math.Round(f)
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return fmt.Errorf("timestamp %s out of range", raw)
	}
	*t = Timestamp(f)
	return nil
}
