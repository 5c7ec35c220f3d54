package models

// CoverStyle is the display style for a cover or label color tag.
type CoverStyle struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

var coverStyles = map[string]CoverStyle{
	"green":  {Background: "#61bd4f", Foreground: "#ffffff"},
	"yellow": {Background: "#f2d600", Foreground: "#1d2125"},
	"orange": {Background: "#ff9f1a", Foreground: "#1d2125"},
	"red":    {Background: "#eb5a46", Foreground: "#ffffff"},
	"purple": {Background: "#c377e0", Foreground: "#ffffff"},
	"blue":   {Background: "#0079bf", Foreground: "#ffffff"},
	"sky":    {Background: "#00c2e0", Foreground: "#1d2125"},
	"lime":   {Background: "#51e898", Foreground: "#1d2125"},
	"pink":   {Background: "#ff78cb", Foreground: "#1d2125"},
	"black":  {Background: "#344563", Foreground: "#ffffff"},
}

// StyleForColor maps a color tag to its display style. Unknown or
// empty tags get a neutral default so the lookup is total.
func StyleForColor(tag string) CoverStyle {
	if s, ok := coverStyles[tag]; ok {
		return s
	}
	return CoverStyle{Background: "#dfe1e6", Foreground: "#1d2125"}
}
