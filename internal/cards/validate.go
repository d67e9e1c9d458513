package cards

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// ErrInvalidDescription is matched by every validation failure.
var ErrInvalidDescription = errors.New("invalid card description")

type InvalidDescriptionError struct {
	Field  string
	Reason string
}

func (e *InvalidDescriptionError) Error() string {
	return fmt.Sprintf("invalid card description: %s: %s", e.Field, e.Reason)
}

func (e *InvalidDescriptionError) Is(target error) bool {
	return target == ErrInvalidDescription
}

// Input bounds. Text is rasterised one line at a time, so these keep a
// single description from asking for unbounded surfaces.
const (
	MaxLevel          = 13
	MaxTextSize       = 200
	MaxTitleSizeDelta = 40
	MaxLineLength     = 80
	MaxTextLength     = 2000
)

func invalid(field, format string, args ...any) error {
	return &InvalidDescriptionError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the description before any asset is requested.
func (d *CardDescription) Validate() error {
	if err := checkSegment("template_language", d.TemplateLanguage); err != nil {
		return err
	}
	if err := checkSegment("template_key", d.TemplateKey); err != nil {
		return err
	}
	switch d.Type {
	case Monster, Spell, Trap:
	default:
		return invalid("type", "unknown card type %q", d.Type)
	}
	switch d.Rarity {
	case "", RarityNormal, RarityRare, RarityUltraRare:
	default:
		return invalid("rarity", "unknown rarity %q", d.Rarity)
	}
	if err := checkSegment("attribute", d.Attribute); err != nil {
		return err
	}
	if !d.IsMonster() && (d.IsXyz || d.IsLink || d.IsPendulum) {
		return invalid("type", "%s cards cannot be Xyz, Link or Pendulum", d.Type)
	}
	if d.IsXyz && d.IsLink {
		return invalid("subtype", "a card cannot be both Xyz and Link")
	}
	if d.Level < 0 || d.Level > MaxLevel {
		return invalid("level", "must be between 0 and %d, got %d", MaxLevel, d.Level)
	}
	if err := checkSize("effect_size", d.EffectTextSizePt); err != nil {
		return err
	}
	if d.IsPendulum {
		if err := checkSize("pendulum_size", d.PendulumTextSizePt); err != nil {
			return err
		}
	}
	if delta := d.Offsets().TitleFontSizeDelta; math.IsNaN(delta) || math.Abs(delta) > MaxTitleSizeDelta {
		return invalid("title_font_size_delta", "must be within ±%d, got %v", MaxTitleSizeDelta, delta)
	}
	lines := []struct{ field, v string }{
		{"title", d.Title},
		{"atk", d.Attack},
		{"def", d.Defense},
		{"code", d.SecretCode},
	}
	for _, l := range lines {
		if n := utf8.RuneCountInString(l.v); n > MaxLineLength {
			return invalid(l.field, "at most %d characters, got %d", MaxLineLength, n)
		}
	}
	texts := []struct{ field, v string }{
		{"effect", d.EffectText},
		{"pendulum_text", d.PendulumEffectText},
	}
	for _, t := range texts {
		if n := utf8.RuneCountInString(t.v); n > MaxTextLength {
			return invalid(t.field, "at most %d characters, got %d", MaxTextLength, n)
		}
	}
	return nil
}

func checkSize(field string, v int) error {
	if v <= 0 || v > MaxTextSize {
		return invalid(field, "must be between 1 and %d, got %d", MaxTextSize, v)
	}
	return nil
}

// checkSegment rejects values that cannot be used as one path segment.
func checkSegment(field, v string) error {
	if v == "" {
		return invalid(field, "required")
	}
	if v == "." || v == ".." || strings.ContainsAny(v, `/\`) {
		return invalid(field, "%q is not a valid asset name", v)
	}
	return nil
}
