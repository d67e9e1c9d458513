package cards

import (
	"fmt"
	"strconv"
	"strings"
)

type CardType string

const (
	Monster CardType = "Monster"
	Spell   CardType = "Spell"
	Trap    CardType = "Trap"
)

type Rarity string

const (
	RarityNormal    Rarity = "Normal"
	RarityRare      Rarity = "Rare"
	RarityUltraRare Rarity = "UltraRare"
)

// LinkArrow is one of the eight compass positions a link arrow can point to.
// The centre of the 3x3 grid has no arrow, so there is no member for it.
type LinkArrow int

const (
	TopLeft LinkArrow = iota
	Top
	TopRight
	Left
	Right
	BottomLeft
	Bottom
	BottomRight
)

// AllLinkArrows lists the arrows in keypad order.
var AllLinkArrows = [...]LinkArrow{TopLeft, Top, TopRight, Left, Right, BottomLeft, Bottom, BottomRight}

var arrowPositions = [...]int{1, 2, 3, 4, 6, 7, 8, 9}

// Position returns the keypad number of the arrow (1-4, 6-9).
func (a LinkArrow) Position() int {
	return arrowPositions[a]
}

// ArrowAt maps a keypad number to its arrow. 5 and out of range numbers
// report false.
func ArrowAt(position int) (LinkArrow, bool) {
	for i, p := range arrowPositions {
		if p == position {
			return LinkArrow(i), true
		}
	}
	return 0, false
}

// LinkArrows is the set of active link arrows.
type LinkArrows uint8

func (s LinkArrows) Has(a LinkArrow) bool {
	return s&(1<<uint(a)) != 0
}

func (s LinkArrows) With(a LinkArrow) LinkArrows {
	return s | 1<<uint(a)
}

// Count is the link rating.
func (s LinkArrows) Count() int {
	n := 0
	for _, a := range AllLinkArrows {
		if s.Has(a) {
			n++
		}
	}
	return n
}

// Active returns the active arrows in keypad order.
func (s LinkArrows) Active() []LinkArrow {
	var out []LinkArrow
	for _, a := range AllLinkArrows {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// LinkArrowsFromMap builds a set from a keypad position -> active mapping.
// Position 5 is dropped even when marked active.
func LinkArrowsFromMap(m map[int]bool) LinkArrows {
	var s LinkArrows
	for pos, on := range m {
		if !on {
			continue
		}
		if a, ok := ArrowAt(pos); ok {
			s = s.With(a)
		}
	}
	return s
}

// ParseLinkArrows reads a list of keypad numbers separated by commas,
// slashes or spaces, e.g. "1,3,7,9". Position 5 is ignored.
func ParseLinkArrows(s string) (LinkArrows, error) {
	var out LinkArrows
	for _, p := range parseListCell(strings.NewReplacer(",", "/", " ", "/").Replace(s)) {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 9 {
			return 0, fmt.Errorf("invalid link arrow position %q", p)
		}
		if a, ok := ArrowAt(n); ok {
			out = out.With(a)
		}
	}
	return out, nil
}

func (s LinkArrows) String() string {
	parts := make([]string, 0, 8)
	for _, a := range s.Active() {
		parts = append(parts, strconv.Itoa(a.Position()))
	}
	return strings.Join(parts, ",")
}

func (s LinkArrows) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *LinkArrows) UnmarshalText(b []byte) error {
	v, err := ParseLinkArrows(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// FontStack is the ordered font family fallback list. Index 0 is the
// title font, 1 the secondary display font, 2 the body font and 3-5 are
// further fallbacks (CJK and the like). Empty entries are skipped.
type FontStack [6]string

var DefaultFontStack = FontStack{"Go Bold", "Go Medium", "Go"}

func (f FontStack) from(i int) []string {
	var out []string
	for _, name := range f[i:] {
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Title is the whole chain starting at the display font.
func (f FontStack) Title() []string { return f.from(0) }

// Body is the chain starting at the body font.
func (f FontStack) Body() []string { return f.from(2) }

// Secondary returns the secondary display family, or "" when unset.
func (f FontStack) Secondary() string { return f[1] }

func (f FontStack) IsZero() bool { return f == FontStack{} }

// LayoutOffsets are per-language nudges for scripts that do not sit well
// on templates drawn for Latin text.
type LayoutOffsets struct {
	TitleShiftX           float64 `json:"title_shift_x" toml:"title_shift_x"`
	TitleShiftY           float64 `json:"title_shift_y" toml:"title_shift_y"`
	TitleFontSizeDelta    float64 `json:"title_font_size_delta" toml:"title_font_size_delta"`
	EffectShiftX          float64 `json:"effect_shift_x" toml:"effect_shift_x"`
	EffectShiftY          float64 `json:"effect_shift_y" toml:"effect_shift_y"`
	EffectLineHeightDelta float64 `json:"effect_line_height_delta" toml:"effect_line_height_delta"`
}

// CardDescription is everything the renderer needs for one card.
type CardDescription struct {
	TemplateLanguage string `json:"template_language" toml:"template_language"`
	TemplateKey      string `json:"template_key" toml:"template_key"`

	Title     string   `json:"title" toml:"title"`
	Type      CardType `json:"type" toml:"type"`
	Subtype   string   `json:"subtype" toml:"subtype"`
	Attribute string   `json:"attribute" toml:"attribute"`
	Level     int      `json:"level" toml:"level"`

	IsXyz      bool       `json:"is_xyz" toml:"is_xyz"`
	IsLink     bool       `json:"is_link" toml:"is_link"`
	IsPendulum bool       `json:"is_pendulum" toml:"is_pendulum"`
	LinkArrows LinkArrows `json:"link_arrows" toml:"link_arrows"`

	Rarity      Rarity `json:"rarity" toml:"rarity"`
	FoilEnabled bool   `json:"foil" toml:"foil"`
	SecretCode  string `json:"code" toml:"code"`

	Attack  string `json:"atk" toml:"atk"`
	Defense string `json:"def" toml:"def"`

	PendulumScaleBlue  int    `json:"scale_blue" toml:"scale_blue"`
	PendulumScaleRed   int    `json:"scale_red" toml:"scale_red"`
	PendulumEffectText string `json:"pendulum_text" toml:"pendulum_text"`
	PendulumTextSizePt int    `json:"pendulum_size" toml:"pendulum_size"`

	EffectText       string `json:"effect" toml:"effect"`
	EffectTextSizePt int    `json:"effect_size" toml:"effect_size"`

	// Artwork holds the encoded user artwork. Nil selects the placeholder.
	Artwork     []byte `json:"artwork,omitempty" toml:"-"`
	ArtworkPath string `json:"-" toml:"artwork_path"`

	LayoutOffsets *LayoutOffsets `json:"layout_offsets,omitempty" toml:"layout_offsets"`
	FontStack     FontStack      `json:"font_stack" toml:"font_stack"`
}

// Offsets returns the layout offsets, zero when none were set.
func (d *CardDescription) Offsets() LayoutOffsets {
	if d.LayoutOffsets == nil {
		return LayoutOffsets{}
	}
	return *d.LayoutOffsets
}

// IsMonster reports whether the card is a monster.
func (d *CardDescription) IsMonster() bool {
	return d.Type == Monster
}

// HasLevel reports whether level or rank pips are drawn.
func (d *CardDescription) HasLevel() bool {
	return d.IsMonster() && !d.IsLink
}

// EffectiveRarity maps the empty rarity to Normal.
func (d *CardDescription) EffectiveRarity() Rarity {
	if d.Rarity == "" {
		return RarityNormal
	}
	return d.Rarity
}

// UnmarshalTOML accepts a TOML array of up to six family names.
func (f *FontStack) UnmarshalTOML(v any) error {
	items, ok := v.([]any)
	if !ok {
		return fmt.Errorf("font_stack: expected array, got %T", v)
	}
	if len(items) > len(f) {
		return fmt.Errorf("font_stack: at most %d families, got %d", len(f), len(items))
	}
	var out FontStack
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return fmt.Errorf("font_stack[%d]: expected string, got %T", i, item)
		}
		out[i] = s
	}
	*f = out
	return nil
}
