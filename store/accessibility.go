package store

import "newsportal/models"

// Accessibility option names accepted by ToggleOption.
const (
	OptionHighContrast   = "highContrast"
	OptionGrayscale      = "grayscale"
	OptionHighlightLinks = "highlightLinks"
	OptionStopAnimations = "stopAnimations"
)

// maxFontSize is the largest discrete font level the presentation layer
// knows how to scale.
const maxFontSize = 2

// Accessibility returns the current accessibility preferences. They are
// held in memory only; the presentation layer maps them to styling.
func (a *App) Accessibility() models.AccessibilitySettings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.accessibility
}

// ToggleOption flips one boolean preference. The font size has its own
// setter and is excluded here; unknown options report false.
func (a *App) ToggleOption(option string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch option {
	case OptionHighContrast:
		a.accessibility.HighContrast = !a.accessibility.HighContrast
	case OptionGrayscale:
		a.accessibility.Grayscale = !a.accessibility.Grayscale
	case OptionHighlightLinks:
		a.accessibility.HighlightLinks = !a.accessibility.HighlightLinks
	case OptionStopAnimations:
		a.accessibility.StopAnimations = !a.accessibility.StopAnimations
	default:
		return false
	}
	return true
}

// SetFontSize sets the discrete font level. Levels outside the known
// set are ignored.
func (a *App) SetFontSize(level int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if level < 0 || level > maxFontSize {
		return
	}
	a.accessibility.FontSize = level
}

// ResetAccessibility restores every preference to its default.
func (a *App) ResetAccessibility() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accessibility = models.AccessibilitySettings{}
}
