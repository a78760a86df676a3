package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/es_ES"
)

// DateFormatter renders timestamps as Spanish long-form dates
type DateFormatter struct {
	loc        *time.Location
	translator locales.Translator
}

// NewDateFormatter creates a formatter that displays dates in loc. Timestamps
// without a zone are read as loc as well. A nil loc means UTC.
func NewDateFormatter(loc *time.Location) *DateFormatter {
	if loc == nil {
		loc = time.UTC
	}
	return &DateFormatter{
		loc:        loc,
		translator: es_ES.New(),
	}
}

// Parse reads a CMS timestamp. ok is false for empty or unparseable input.
func (f *DateFormatter) Parse(value string) (t time.Time, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(value, f.loc)
	if err != nil {
		return time.Time{}, false
	}
	return t.In(f.loc), true
}

// Format returns "<day> de <month> de <year>", or "" when the timestamp
// cannot be read.
func (f *DateFormatter) Format(value string) string {
	t, ok := f.Parse(value)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d de %s de %04d", t.Day(), f.translator.MonthWide(t.Month()), t.Year())
}
