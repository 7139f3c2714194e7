package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FallbackIcon is used for categories missing from the icon table.
const FallbackIcon = "📦"

// categoryIcons maps lower-cased category ids to their display icon.
var categoryIcons = map[string]string{
	"production":    "🚀",
	"productivity":  "⚡",
	"automation":    "🤖",
	"data":          "📊",
	"devtools":      "🛠️",
	"communication": "💬",
	"experimental":  "🧪",
}

// deployNames maps raw deploy strings from the catalog source to their
// canonical display names. Unrecognized raw values pass through as-is.
var deployNames = map[string]string{
	"Local":        "Local",
	"local":        "Local",
	"lambda":       "AWS Lambda",
	"AWS Lambda":   "AWS Lambda",
	"gh-actions":   "GitHub Actions",
	"cron":         "Cron",
	"docker":       "Docker",
	"raspberry-pi": "Raspberry Pi",
}

var titleCaser = cases.Title(language.English)

// CategoryIcon returns the icon for a category, case-insensitively,
// falling back to FallbackIcon for unknown categories.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[strings.ToLower(category)]; ok {
		return icon
	}
	return FallbackIcon
}

// CategoryID returns the aggregate id for a category string.
func CategoryID(category string) string {
	return strings.ToLower(category)
}

// CategoryName returns the display name for a category id.
func CategoryName(id string) string {
	return titleCaser.String(id)
}

// NormalizeDeploy maps a raw deploy value to its canonical name.
// Unknown values are returned unchanged.
func NormalizeDeploy(raw string) string {
	if canonical, ok := deployNames[raw]; ok {
		return canonical
	}
	return raw
}
