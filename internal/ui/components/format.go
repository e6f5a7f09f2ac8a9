// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jeranaias/memchat-tui/internal/model"
)

// DefaultTimeFormat renders message times as local hour:minute.
const DefaultTimeFormat = "03:04 PM"

// FormatRelevance renders a relevance score in [0,1] as a percentage with
// one decimal, e.g. 0.8675 -> "86.8%". Exact halves round up.
func FormatRelevance(relevance float64) string {
	return formatTenths(relevance*100) + "%"
}

// formatTenths renders x with one decimal, rounding the exact binary value
// to nearest and breaking exact ties away from zero. A tie needs x*10 to end
// in exactly .5, which for a float64 means x*4 is an odd integer.
func formatTenths(x float64) string {
	if x == 0 {
		x = 0 // drop the sign of -0
	}
	if q := x * 4; q == math.Trunc(q) && math.Mod(q, 2) != 0 && !math.IsInf(q, 0) {
		x = math.Copysign(math.Ceil(math.Abs(x)*10)/10, x)
	}
	return strconv.FormatFloat(x, 'f', 1, 64)
}

// FormatRecallCount renders "Recalled N times" with locale digit grouping.
func FormatRecallCount(p *message.Printer, count int) string {
	if p == nil {
		p = NewPrinter("")
	}
	return p.Sprintf("Recalled %d times", count)
}

// FormatTimestamp renders ts in local time using layout. A zero timestamp
// renders as an empty string.
func FormatTimestamp(ts model.Timestamp, layout string) string {
	if ts.IsZero() {
		return ""
	}
	if layout == "" {
		layout = DefaultTimeFormat
	}
	return ts.Time().Local().Format(layout)
}

// ToggleLabel is the memory toggle text for n citations.
func ToggleLabel(n int, expanded bool) string {
	if expanded {
		return "Hide Memories"
	}
	return fmt.Sprintf("%d Memories Used", n)
}

// NewPrinter returns a number printer for a BCP 47 locale. Unparseable
// or empty locales fall back to English.
func NewPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}
