package imagepkg

import (
	"context"
	"errors"
	"image"
	"strconv"
	"strings"
	"time"

	"github.com/youruser/cardmaker/internal/assets"
	"github.com/youruser/cardmaker/internal/cards"
	"github.com/youruser/cardmaker/internal/fonts"
)

const infinity = "∞"

// Renderer turns card descriptions into card images. It is safe for
// concurrent use; each call draws on its own surface.
type Renderer struct {
	fonts   *fonts.Registry
	loader  assets.Loader
	timeout time.Duration
}

type Option func(*Renderer)

// WithCache keeps decoded template and icon images between renders.
// The cache must not be shared with renders against another asset store.
func WithCache(c *assets.Cache) Option {
	return func(r *Renderer) { r.loader.Cache = c }
}

// WithResolveTimeout bounds the asset loading phase of each render.
func WithResolveTimeout(d time.Duration) Option {
	return func(r *Renderer) { r.timeout = d }
}

func NewRenderer(reg *fonts.Registry, opts ...Option) *Renderer {
	if reg == nil {
		reg = fonts.NewRegistry()
	}
	r := &Renderer{fonts: reg}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render validates d, loads its assets through res and draws the card.
// Nothing is returned unless every step succeeded.
func (r *Renderer) Render(ctx context.Context, d *cards.CardDescription, res assets.Resolver) (*image.NRGBA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	log := logger().With("language", d.TemplateLanguage, "template", d.TemplateKey)
	log.Debug("render start")

	set, err := r.loadAssets(ctx, d, res)
	if err != nil {
		var nf *assets.AssetNotFoundError
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			log.Warn("asset load timed out", "timeout", r.timeout, "elapsed", time.Since(start))
		case errors.As(err, &nf):
			log.Warn("asset load failed", "key", nf.Key.String(), "path", nf.Path, "err", nf.Err)
		}
		return nil, err
	}

	c := newRasterCanvas(r.fonts)
	defer c.Close()
	Compose(c, d, set)
	if err := c.Err(); err != nil {
		return nil, err
	}
	log.Debug("render done", "assets", set.Len(), "elapsed", time.Since(start))
	return c.Image(), nil
}

func (r *Renderer) loadAssets(ctx context.Context, d *cards.CardDescription, res assets.Resolver) (*assets.Set, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return r.loader.Load(ctx, res, assets.Plan(d))
}

// Compose draws the card onto c in z-order. Images missing from set are
// skipped.
func Compose(c Canvas, d *cards.CardDescription, set *assets.Set) {
	off := d.Offsets()

	drawArtwork(c, d.IsPendulum, set.Get(assets.KeyArtwork))
	drawImage(c, set.Get(assets.KeyTemplate), image.Rect(0, 0, CanvasWidth, CanvasHeight))
	drawImage(c, set.Get(assets.KeyAttribute), attributeBox)

	c.FillText(d.Title, titleX+off.TitleShiftX, titleY+off.TitleShiftY, TextStyle{
		Font:     Font{Families: d.FontStack.Title(), Size: titleSize + off.TitleFontSizeDelta},
		Paint:    TitlePaint(d.EffectiveRarity()),
		MaxWidth: titleMaxWidth,
	})

	if d.HasLevel() {
		pip := set.Get(assets.KeyPip)
		for i := 0; i < d.Level; i++ {
			drawImage(c, pip, box(PipX(i, d.IsXyz), pipY, pipSize, pipSize))
		}
	}
	if d.IsLink {
		for _, a := range d.LinkArrows.Active() {
			drawImage(c, set.Get(assets.KeyArrow(a)), ArrowBox(a, d.IsPendulum))
		}
	}

	drawSecretCode(c, d)

	if d.FoilEnabled {
		drawImage(c, set.Get(assets.KeyFoil), foilBox)
	}
	if d.IsMonster() {
		drawStats(c, d)
	}

	body := d.FontStack.Body()
	if d.IsPendulum {
		scale := TextStyle{
			Font:     Font{Families: []string{fonts.FamilyStats}, Size: scaleSize},
			Paint:    Solid(Black),
			Align:    AlignCenter,
			MaxWidth: scaleMaxWidth,
		}
		c.FillText(strconv.Itoa(d.PendulumScaleBlue), blueScaleX, scaleY, scale)
		c.FillText(strconv.Itoa(d.PendulumScaleRed), redScaleX, scaleY, scale)

		size := float64(d.PendulumTextSizePt)
		drawWrapped(c, d.PendulumEffectText,
			pendulumTextX+off.EffectShiftX, pendulumTextY+off.EffectShiftY,
			pendulumTextWidth, size+off.EffectLineHeightDelta,
			Font{Families: body, Size: size})
	}

	size := float64(d.EffectTextSizePt)
	drawWrapped(c, d.EffectText,
		effectTextX+off.EffectShiftX, effectTextY+off.EffectShiftY,
		effectTextWidth, size+off.EffectLineHeightDelta,
		Font{Families: body, Size: size})
}

func drawImage(c Canvas, img image.Image, dst image.Rectangle) {
	if img != nil {
		c.DrawImage(img, dst)
	}
}

func drawArtwork(c Canvas, pendulum bool, art image.Image) {
	if art == nil {
		return
	}
	window, threshold := ArtBox(pendulum)
	c.DrawImageClipped(art, CoverRect(art.Bounds().Size(), window, threshold), window)
}

func drawSecretCode(c Canvas, d *cards.CardDescription) {
	if d.SecretCode == "" {
		return
	}
	families := []string{fonts.FamilyCardKey}
	if s := d.FontStack.Secondary(); s != "" {
		families = append(families, s)
	}
	paint := Solid(Black)
	if d.IsXyz && !d.IsPendulum {
		paint = Solid(White)
	}
	c.FillText(cards.PaddedCode(d.SecretCode), codeX, codeY, TextStyle{
		Font:  Font{Families: append(families, d.FontStack.Body()...), Size: codeSize},
		Paint: paint,
	})
}

// statFont picks the numeral font; the stats face draws a poor infinity
// sign, so values containing one use a bold serif at a smaller size.
func statFont(v string) Font {
	if strings.Contains(v, infinity) {
		return Font{Families: []string{fonts.FamilySerifBold}, Size: infinitySize}
	}
	return Font{Families: []string{fonts.FamilyStats}, Size: statSize}
}

func drawStats(c Canvas, d *cards.CardDescription) {
	stat := func(v string, right float64, f Font) {
		c.FillText(v, right, statY, TextStyle{
			Font:     f,
			Paint:    Solid(Black),
			Align:    AlignRight,
			MaxWidth: statMaxWidth,
		})
	}
	stat(d.Attack, atkRight, statFont(d.Attack))
	if d.IsLink {
		stat(strconv.Itoa(d.LinkArrows.Count()), linkRight,
			Font{Families: []string{fonts.FamilyLink}, Size: linkSize})
		return
	}
	stat(d.Defense, defRight, statFont(d.Defense))
}

func drawWrapped(c Canvas, text string, x, y, maxWidth, lineHeight float64, f Font) {
	measure := func(s string) float64 { return c.MeasureText(s, f) }
	style := TextStyle{Font: f, Paint: Solid(Black)}
	for _, line := range WrapText(text, y, maxWidth, lineHeight, measure) {
		c.FillText(line.Text, x, line.Y, style)
	}
}
