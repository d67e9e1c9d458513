package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/cardmaker/internal/assets"
	"github.com/youruser/cardmaker/internal/cards"
	imagepkg "github.com/youruser/cardmaker/internal/image"
)

// Handler serves the card rendering API.
type Handler struct {
	Renderer *imagepkg.Renderer
	Assets   assets.Resolver
	// Offsets is the per-language layout table applied to requests that
	// carry no offsets of their own.
	Offsets map[string]cards.LayoutOffsets
	// MaxBodyBytes caps a render request body. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// DefaultMaxBodyBytes leaves room for base64 artwork at the asset size limit.
const DefaultMaxBodyBytes = 48 << 20

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// render takes a JSON card description and returns the card image.
// Query: format=png|jpeg, width=<thumbnail width>.
func (h *Handler) render(c *gin.Context) {
	limit := h.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	var d cards.CardDescription
	if err := c.ShouldBindJSON(&d); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format, err := imagepkg.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	width := 0
	if s := c.Query("width"); s != "" {
		if width, err = strconv.Atoi(s); err != nil || width < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "width must be a non-negative integer"})
			return
		}
	}

	d.Normalize(h.Offsets)
	img, err := h.Renderer.Render(c.Request.Context(), &d, h.Assets)
	if err != nil {
		var nf *assets.AssetNotFoundError
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
		case errors.Is(err, assets.ErrAssetTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		case errors.Is(err, cards.ErrInvalidDescription):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &nf):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "asset": nf.Path})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	buf := new(bytes.Buffer)
	if err := imagepkg.Encode(buf, imagepkg.Thumbnail(img, width), format); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, format.ContentType, buf.Bytes())
}

// templateKey reports the template a card taxonomy selects.
func templateKey(c *gin.Context) {
	t := cards.CardType(c.Query("type"))
	switch t {
	case cards.Monster, cards.Spell, cards.Trap:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be Monster, Spell or Trap"})
		return
	}
	pendulum, _ := strconv.ParseBool(c.Query("pendulum"))
	c.JSON(http.StatusOK, gin.H{"template_key": cards.TemplateKeyFor(t, c.Query("subtype"), pendulum)})
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	sizeStr := c.Query("size")
	size := 400
	if sizeStr != "" {
		if v, err := strconv.Atoi(sizeStr); err == nil {
			size = v
		}
	}
	b, err := imagepkg.ShareQR(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
