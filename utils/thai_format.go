package utils

import (
	"strconv"
	"time"
)

var thaiMonths = []string{
	"มกราคม",
	"กุมภาพันธ์",
	"มีนาคม",
	"เมษายน",
	"พฤษภาคม",
	"มิถุนายน",
	"กรกฎาคม",
	"สิงหาคม",
	"กันยายน",
	"ตุลาคม",
	"พฤศจิกายน",
	"ธันวาคม",
}

// FormatThaiDate returns the date formatted using Thai month names and Buddhist Era year.
func FormatThaiDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	localTime := t.In(time.Local)
	monthIndex := int(localTime.Month()) - 1
	if monthIndex < 0 || monthIndex >= len(thaiMonths) {
		return localTime.Format("02/01/2006")
	}

	day := localTime.Day()
	monthName := thaiMonths[monthIndex]
	year := localTime.Year() + 543

	return strconv.Itoa(day) + " " + monthName + " " + strconv.Itoa(year)
}

// FormatThaiDatePtr returns Thai formatted date for pointer values.
func FormatThaiDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatThaiDate(*t)
}
