package assets

import (
	"fmt"
	"path"

	"github.com/youruser/cardmaker/internal/cards"
)

// Key names one image slot of a render.
type Key int

const (
	KeyTemplate Key = iota
	KeyAttribute
	KeyPip
	KeyArtwork
	KeyFoil
	keyArrowBase
)

// KeyArrow is the slot of one link arrow icon.
func KeyArrow(a cards.LinkArrow) Key {
	return keyArrowBase + Key(a)
}

// Arrow reports which link arrow the key belongs to.
func (k Key) Arrow() (cards.LinkArrow, bool) {
	if k < keyArrowBase || k >= keyArrowBase+Key(len(cards.AllLinkArrows)) {
		return 0, false
	}
	return cards.LinkArrow(k - keyArrowBase), true
}

func (k Key) String() string {
	switch k {
	case KeyTemplate:
		return "template"
	case KeyAttribute:
		return "attribute"
	case KeyPip:
		return "pip"
	case KeyArtwork:
		return "artwork"
	case KeyFoil:
		return "foil"
	}
	if a, ok := k.Arrow(); ok {
		return fmt.Sprintf("link%d", a.Position())
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

const Ext = ".png"

// Well-known paths inside the asset store.
const (
	LevelPath   = "icon/Level" + Ext
	RankPath    = "icon/Rank" + Ext
	FoilPath    = "icon/holo" + Ext
	DefaultArt  = "icon/default" + Ext
	templateDir = "template"
	attrDir     = "attr"
)

func TemplatePath(lang, key string) string {
	return path.Join(templateDir, lang, key+Ext)
}

func AttributePath(lang, attr string) string {
	return path.Join(attrDir, lang, attr+Ext)
}

func ArrowPath(a cards.LinkArrow) string {
	return fmt.Sprintf("icon/LINK%d%s", a.Position(), Ext)
}

// Request is one asset to fetch. Data, when set, is decoded directly
// instead of going through the resolver.
type Request struct {
	Key  Key
	Path string
	Data []byte
}

// Plan lists every asset a render of d needs.
func Plan(d *cards.CardDescription) []Request {
	reqs := []Request{
		{Key: KeyTemplate, Path: TemplatePath(d.TemplateLanguage, d.TemplateKey)},
		{Key: KeyAttribute, Path: AttributePath(d.TemplateLanguage, d.Attribute)},
	}
	if d.IsLink {
		for _, a := range d.LinkArrows.Active() {
			reqs = append(reqs, Request{Key: KeyArrow(a), Path: ArrowPath(a)})
		}
	}
	if d.HasLevel() {
		p := LevelPath
		if d.IsXyz {
			p = RankPath
		}
		reqs = append(reqs, Request{Key: KeyPip, Path: p})
	}
	if len(d.Artwork) > 0 {
		reqs = append(reqs, Request{Key: KeyArtwork, Path: "artwork", Data: d.Artwork})
	} else {
		reqs = append(reqs, Request{Key: KeyArtwork, Path: DefaultArt})
	}
	return append(reqs, Request{Key: KeyFoil, Path: FoilPath})
}
