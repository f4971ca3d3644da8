package gantt

import (
	"time"

	"golang.org/x/text/language"
)

// Locale holds the label text for one language.
type Locale struct {
	Tag      language.Tag
	Week     string
	weekdays [7]string  // Indexed by time.Weekday
	months   [12]string // Indexed by time.Month - 1
}

// Weekday returns the short weekday name.
func (l Locale) Weekday(d time.Weekday) string {
	return l.weekdays[d]
}

// Month returns the short month name.
func (l Locale) Month(m time.Month) string {
	return l.months[m-1]
}

// English is the default locale.
var English = Locale{
	Tag:      language.English,
	Week:     "Week",
	weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// Spanish uses the abbreviations of the es-ES calendar.
var Spanish = Locale{
	Tag:      language.Spanish,
	Week:     "Semana",
	weekdays: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	months:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
}

var (
	locales = []Locale{English, Spanish}
	matcher = language.NewMatcher([]language.Tag{English.Tag, Spanish.Tag})
)

// LookupLocale picks the closest supported locale for a BCP 47 tag such as
// "es-ES" or "en_US". Unknown or empty tags fall back to English.
func LookupLocale(tag string) Locale {
	if tag == "" {
		return English
	}
	_, index := language.MatchStrings(matcher, tag)
	return locales[index]
}
