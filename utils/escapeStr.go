package utils

import "html"

// escapes special characters in user-supplied text to prevent HTML injection

func EscapeString(s string) string {
	return html.EscapeString(s)
}
