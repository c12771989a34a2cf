// Package settings holds the process-wide display preferences. Scoring
// engines never read them.
package settings

import (
	"sync"

	"github.com/merev/scoreboard-api/internal/i18n"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

func (t Theme) Valid() bool { return t == Light || t == Dark }

type Settings struct {
	Locale string `json:"locale"`
	Theme  Theme  `json:"theme"`
}

var (
	mu       sync.RWMutex
	defaults = Settings{Locale: i18n.Match("").String(), Theme: Dark}
	current  = defaults
)

func (s *Settings) merge(o Settings) {
	if o.Locale != "" {
		s.Locale = i18n.Match(o.Locale).String()
	}
	if o.Theme.Valid() {
		s.Theme = o.Theme
	}
}

// SetDefaults records the startup preferences that Reset returns to and
// makes them current.
func SetDefaults(s Settings) Settings {
	mu.Lock()
	defer mu.Unlock()
	defaults.merge(s)
	current = defaults
	return current
}

// Init replaces the current settings. Invalid fields keep their present
// value.
func Init(s Settings) Settings {
	mu.Lock()
	defer mu.Unlock()
	current.merge(s)
	return current
}

// Reset goes back to the startup preferences.
func Reset() Settings {
	mu.Lock()
	defer mu.Unlock()
	current = defaults
	return current
}

func Current() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetLocale switches to the supported locale closest to locale.
func SetLocale(locale string) Settings {
	return Init(Settings{Locale: locale})
}

// SetTheme ignores unknown themes.
func SetTheme(t Theme) Settings {
	return Init(Settings{Theme: t})
}

// Translator returns a translator for the current locale.
func Translator() *i18n.Translator {
	return i18n.New(Current().Locale)
}
