package cards

import "strings"

const (
	DefaultEffectTextSize   = 25
	DefaultPendulumTextSize = 23
	SecretCodeDigits        = 8
)

// DefaultLanguageOffsets are the built-in nudges per template language.
var DefaultLanguageOffsets = map[string]LayoutOffsets{
	"en": {},
	"zh": {TitleShiftY: 2, EffectShiftY: -4, EffectLineHeightDelta: 2},
	"jp": {TitleShiftY: 3, TitleFontSizeDelta: -2, EffectShiftY: -3, EffectLineHeightDelta: 3},
}

// TemplateKeyFor derives the template background name from the card
// taxonomy, e.g. "Xyz", "EffectPendulum", "Spell".
func TemplateKeyFor(t CardType, subtype string, pendulum bool) string {
	switch t {
	case Spell, Trap:
		return string(t)
	}
	key := strings.TrimSpace(subtype)
	if key == "" {
		key = "Normal"
	}
	if pendulum && !strings.EqualFold(key, "Token") {
		key += "Pendulum"
	}
	return key
}

// PaddedCode left-pads the secret code with zeros to eight digits.
// Longer codes are returned unchanged.
func PaddedCode(code string) string {
	if n := SecretCodeDigits - len(code); n > 0 {
		return strings.Repeat("0", n) + code
	}
	return code
}

// Normalize fills the fields that can be derived from the rest of the
// description. offsets is the per-language table used when the description
// carries no layout offsets of its own; nil means DefaultLanguageOffsets.
func (d *CardDescription) Normalize(offsets map[string]LayoutOffsets) {
	if offsets == nil {
		offsets = DefaultLanguageOffsets
	}
	if d.TemplateLanguage == "" {
		d.TemplateLanguage = "en"
	}
	switch {
	case strings.EqualFold(d.Subtype, "Xyz"):
		d.IsXyz = true
	case strings.EqualFold(d.Subtype, "Link"):
		d.IsLink = true
	}
	if d.TemplateKey == "" {
		d.TemplateKey = TemplateKeyFor(d.Type, d.Subtype, d.IsPendulum)
	}
	if (d.Type == Spell || d.Type == Trap) && d.Attribute == "" {
		d.Attribute = string(d.Type)
	}
	if d.EffectTextSizePt == 0 {
		d.EffectTextSizePt = DefaultEffectTextSize
	}
	if d.PendulumTextSizePt == 0 {
		d.PendulumTextSizePt = DefaultPendulumTextSize
	}
	if d.FontStack.IsZero() {
		d.FontStack = DefaultFontStack
	}
	if d.LayoutOffsets == nil {
		if o, ok := offsets[d.TemplateLanguage]; ok {
			d.LayoutOffsets = &o
		}
	}
}
