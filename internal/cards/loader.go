package cards

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

func parseListCell(s string) []string {
	s = strings.ReplaceAll(s, "／", "/")
	parts := strings.Split(s, "/")
	out := []string{}
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" && t != "-" {
			out = append(out, t)
		}
	}
	return out
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}

func parseInt(field, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}

// LoadTOML reads a single card description. artwork_path is resolved
// relative to the file and read into Artwork.
func LoadTOML(path string) (*CardDescription, error) {
	var d CardDescription
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := readArtwork(&d, filepath.Dir(path)); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadCSV reads a batch of card descriptions, one per row. The header
// names the columns; unknown columns are ignored and missing ones are empty.
func LoadCSV(path string) ([]CardDescription, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	header := rows[0]
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return row[idx]
		}
		return ""
	}

	dir := filepath.Dir(path)
	out := []CardDescription{}
	for n, row := range rows[1:] {
		line := n + 2
		d := CardDescription{
			TemplateLanguage:   get(row, "language"),
			TemplateKey:        get(row, "template_key"),
			Title:              get(row, "title"),
			Type:               CardType(get(row, "type")),
			Subtype:            get(row, "subtype"),
			Attribute:          get(row, "attribute"),
			IsPendulum:         parseBool(get(row, "pendulum")),
			Rarity:             Rarity(get(row, "rarity")),
			FoilEnabled:        parseBool(get(row, "foil")),
			SecretCode:         strings.TrimSpace(get(row, "code")),
			Attack:             get(row, "atk"),
			Defense:            get(row, "def"),
			PendulumEffectText: unescapeNewlines(get(row, "pendulum_text")),
			EffectText:         unescapeNewlines(get(row, "effect")),
			ArtworkPath:        get(row, "artwork"),
		}
		ints := []struct {
			name string
			dst  *int
		}{
			{"level", &d.Level},
			{"scale_blue", &d.PendulumScaleBlue},
			{"scale_red", &d.PendulumScaleRed},
			{"pendulum_size", &d.PendulumTextSizePt},
			{"effect_size", &d.EffectTextSizePt},
		}
		for _, f := range ints {
			v, err := parseInt(f.name, get(row, f.name))
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", path, line, err)
			}
			*f.dst = v
		}
		arrows, err := ParseLinkArrows(get(row, "link_arrows"))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		d.LinkArrows = arrows
		if err := readArtwork(&d, dir); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// unescapeNewlines lets spreadsheet cells carry line breaks as a literal \n.
func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func readArtwork(d *CardDescription, dir string) error {
	if d.ArtworkPath == "" || d.Artwork != nil {
		return nil
	}
	p := d.ArtworkPath
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("reading artwork: %w", err)
	}
	d.Artwork = b
	return nil
}
