package cards

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLinkArrows(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		count int
	}{
		{"", "", 0},
		{"1,3,7,9", "1,3,7,9", 4},
		{"9 1/3", "1,3,9", 3},
		{"2,5,8", "2,8", 2},
		{"5", "", 0},
		{"4,4,6", "4,6", 2},
		{"1,2,3,4,6,7,8,9", "1,2,3,4,6,7,8,9", 8},
	}
	for _, tt := range tests {
		got, err := ParseLinkArrows(tt.in)
		if err != nil {
			t.Fatalf("ParseLinkArrows(%q): %v", tt.in, err)
		}
		if got.String() != tt.want {
			t.Errorf("ParseLinkArrows(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got.Count() != tt.count {
			t.Errorf("ParseLinkArrows(%q).Count() = %d, want %d", tt.in, got.Count(), tt.count)
		}
	}
}

func TestParseLinkArrowsRejectsGarbage(t *testing.T) {
	for _, in := range []string{"0", "10", "up", "1,x"} {
		if _, err := ParseLinkArrows(in); err == nil {
			t.Errorf("ParseLinkArrows(%q) succeeded", in)
		}
	}
}

func TestLinkArrowsFromMapDropsCentre(t *testing.T) {
	s := LinkArrowsFromMap(map[int]bool{1: true, 5: true, 6: true, 9: false})
	if s.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", s.Count())
	}
	if !s.Has(TopLeft) || !s.Has(Right) || s.Has(BottomRight) {
		t.Errorf("unexpected arrows %q", s)
	}
}

func TestArrowPositionsRoundTrip(t *testing.T) {
	for _, a := range AllLinkArrows {
		got, ok := ArrowAt(a.Position())
		if !ok || got != a {
			t.Errorf("ArrowAt(%d) = %v, %v, want %v", a.Position(), got, ok, a)
		}
	}
	if _, ok := ArrowAt(5); ok {
		t.Error("ArrowAt(5) reported an arrow")
	}
}

func TestTemplateKeyFor(t *testing.T) {
	tests := []struct {
		typ      CardType
		subtype  string
		pendulum bool
		want     string
	}{
		{Monster, "Normal", false, "Normal"},
		{Monster, "Effect", true, "EffectPendulum"},
		{Monster, "Xyz", true, "XyzPendulum"},
		{Monster, "Link", false, "Link"},
		{Monster, "", false, "Normal"},
		{Monster, "Token", true, "Token"},
		{Spell, "Quick-Play", false, "Spell"},
		{Trap, "Counter", false, "Trap"},
	}
	for _, tt := range tests {
		if got := TemplateKeyFor(tt.typ, tt.subtype, tt.pendulum); got != tt.want {
			t.Errorf("TemplateKeyFor(%s, %q, %v) = %q, want %q", tt.typ, tt.subtype, tt.pendulum, got, tt.want)
		}
	}
}

func TestPaddedCode(t *testing.T) {
	tests := map[string]string{
		"42":         "00000042",
		"89631139":   "89631139",
		"":           "00000000",
		"1234567890": "1234567890",
	}
	for in, want := range tests {
		if got := PaddedCode(in); got != want {
			t.Errorf("PaddedCode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	d := CardDescription{Type: Monster, Subtype: "Xyz", IsPendulum: true, TemplateLanguage: "jp"}
	d.Normalize(nil)

	if !d.IsXyz || d.IsLink {
		t.Errorf("IsXyz = %v, IsLink = %v", d.IsXyz, d.IsLink)
	}
	if d.TemplateKey != "XyzPendulum" {
		t.Errorf("TemplateKey = %q", d.TemplateKey)
	}
	if d.EffectTextSizePt != DefaultEffectTextSize || d.PendulumTextSizePt != DefaultPendulumTextSize {
		t.Errorf("sizes = %d, %d", d.EffectTextSizePt, d.PendulumTextSizePt)
	}
	if d.FontStack != DefaultFontStack {
		t.Errorf("FontStack = %v", d.FontStack)
	}
	if got := d.Offsets(); got != DefaultLanguageOffsets["jp"] {
		t.Errorf("Offsets() = %+v", got)
	}
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	own := &LayoutOffsets{TitleShiftX: 7}
	d := CardDescription{
		Type:             Spell,
		TemplateKey:      "Field",
		EffectTextSizePt: 18,
		LayoutOffsets:    own,
	}
	d.Normalize(map[string]LayoutOffsets{"en": {TitleShiftX: 1}})

	if d.TemplateLanguage != "en" {
		t.Errorf("TemplateLanguage = %q", d.TemplateLanguage)
	}
	if d.TemplateKey != "Field" || d.EffectTextSizePt != 18 {
		t.Errorf("explicit values overwritten: %q, %d", d.TemplateKey, d.EffectTextSizePt)
	}
	if d.Attribute != "Spell" {
		t.Errorf("Attribute = %q, want Spell", d.Attribute)
	}
	if d.Offsets().TitleShiftX != 7 {
		t.Errorf("layout offsets replaced: %+v", d.Offsets())
	}
}

func validMonster() CardDescription {
	d := CardDescription{Type: Monster, Subtype: "Normal", Attribute: "DARK", Level: 7}
	d.Normalize(nil)
	return d
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*CardDescription)
		field string
	}{
		{"unknown type", func(d *CardDescription) { d.Type = "Ritual" }, "type"},
		{"unknown rarity", func(d *CardDescription) { d.Rarity = "Secret" }, "rarity"},
		{"xyz and link", func(d *CardDescription) { d.IsXyz, d.IsLink = true, true }, "subtype"},
		{"spell pendulum", func(d *CardDescription) { d.Type, d.IsPendulum = Spell, true }, "type"},
		{"negative level", func(d *CardDescription) { d.Level = -1 }, "level"},
		{"level too high", func(d *CardDescription) { d.Level = MaxLevel + 1 }, "level"},
		{"path in language", func(d *CardDescription) { d.TemplateLanguage = "../en" }, "template_language"},
		{"empty template key", func(d *CardDescription) { d.TemplateKey = "" }, "template_key"},
		{"dotdot attribute", func(d *CardDescription) { d.Attribute = ".." }, "attribute"},
		{"negative effect size", func(d *CardDescription) { d.EffectTextSizePt = -3 }, "effect_size"},
		{"huge effect size", func(d *CardDescription) { d.EffectTextSizePt = 100000 }, "effect_size"},
		{"huge pendulum size", func(d *CardDescription) { d.IsPendulum, d.PendulumTextSizePt = true, MaxTextSize+1 }, "pendulum_size"},
		{"title shrunk to nothing", func(d *CardDescription) { d.LayoutOffsets = &LayoutOffsets{TitleFontSizeDelta: -60} }, "title_font_size_delta"},
		{"title blown up", func(d *CardDescription) { d.LayoutOffsets = &LayoutOffsets{TitleFontSizeDelta: 500} }, "title_font_size_delta"},
		{"long title", func(d *CardDescription) { d.Title = strings.Repeat("W", MaxLineLength+1) }, "title"},
		{"long attack", func(d *CardDescription) { d.Attack = strings.Repeat("9", MaxLineLength+1) }, "atk"},
		{"long effect", func(d *CardDescription) { d.EffectText = strings.Repeat("x", MaxTextLength+1) }, "effect"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validMonster()
			tt.edit(&d)
			err := d.Validate()
			if !errors.Is(err, ErrInvalidDescription) {
				t.Fatalf("Validate() = %v, want ErrInvalidDescription", err)
			}
			var ide *InvalidDescriptionError
			if !errors.As(err, &ide) || ide.Field != tt.field {
				t.Errorf("field = %v, want %q", err, tt.field)
			}
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	d := validMonster()
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	d.Level = 0
	if err := d.Validate(); err != nil {
		t.Fatalf("level 0: %v", err)
	}
	d.EffectTextSizePt = MaxTextSize
	d.LayoutOffsets = &LayoutOffsets{TitleFontSizeDelta: -MaxTitleSizeDelta}
	d.Title = strings.Repeat("W", MaxLineLength)
	d.EffectText = strings.Repeat("x", MaxTextLength)
	if err := d.Validate(); err != nil {
		t.Fatalf("values at the bounds: %v", err)
	}
}

func TestFontStack(t *testing.T) {
	f := FontStack{"Title", "", "Body", "", "CJK"}
	if got := f.Title(); len(got) != 3 || got[0] != "Title" || got[2] != "CJK" {
		t.Errorf("Title() = %v", got)
	}
	if got := f.Body(); len(got) != 2 || got[0] != "Body" {
		t.Errorf("Body() = %v", got)
	}
	if f.Secondary() != "" {
		t.Errorf("Secondary() = %q", f.Secondary())
	}
}
