package dashboard

import (
	"fmt"
	"strconv"
	"strings"
)

// EmbedField identifies one editable field of the embed preview.
type EmbedField int

const (
	EmbedTitle EmbedField = iota
	EmbedDescription
	EmbedColor
	EmbedThumbnail
	EmbedFooter
)

// EmbedFields lists the editable fields in form order.
var EmbedFields = []EmbedField{EmbedTitle, EmbedDescription, EmbedColor, EmbedThumbnail, EmbedFooter}

func (f EmbedField) String() string {
	switch f {
	case EmbedTitle:
		return "Title"
	case EmbedDescription:
		return "Description"
	case EmbedColor:
		return "Color"
	case EmbedThumbnail:
		return "Thumbnail"
	case EmbedFooter:
		return "Footer"
	}
	return fmt.Sprintf("EmbedField(%d)", int(f))
}

// Embed is the Discord message preview.
type Embed struct {
	Title       string
	Description string
	Color       string
	Thumbnail   string
	Footer      string
}

// DefaultEmbed returns the sample announcement shown on first load.
func DefaultEmbed() Embed {
	return Embed{
		Title: "🎮 New Game Available!",
		Description: "**Cyberpunk 2077: Phantom Liberty**\n\n" +
			"An epic expansion for the world of Night City. Dive into a new story full of action and intrigue.\n\n" +
			"💰 **Price:** €29.99\n🏷️ **Discount:** -20%\n📅 **Available:** Now",
		Color:     "#5865F2",
		Thumbnail: "🎮",
		Footer:    "Gaming Bot • Today at 14:30",
	}
}

// Get returns the value of field f.
func (e Embed) Get(f EmbedField) string {
	switch f {
	case EmbedTitle:
		return e.Title
	case EmbedDescription:
		return e.Description
	case EmbedColor:
		return e.Color
	case EmbedThumbnail:
		return e.Thumbnail
	case EmbedFooter:
		return e.Footer
	}
	return ""
}

// Set returns a copy of e with field f replaced.
func (e Embed) Set(f EmbedField, value string) Embed {
	switch f {
	case EmbedTitle:
		e.Title = value
	case EmbedDescription:
		e.Description = value
	case EmbedColor:
		e.Color = value
	case EmbedThumbnail:
		e.Thumbnail = value
	case EmbedFooter:
		e.Footer = value
	}
	return e
}

// ValidColor reports whether s is a #RRGGBB hex color.
func ValidColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 16, 32)
	return err == nil
}

// StripMarkdown removes the bold markers Discord renders, for terminals that
// show the description as plain text.
func StripMarkdown(s string) string {
	return strings.ReplaceAll(s, "**", "")
}
