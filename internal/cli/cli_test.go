package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/youruser/cardmaker/internal/assets/assetstest"
)

// workspace lays out an asset pack and a config pointing at it.
func workspace(t *testing.T) (dir, cfg string) {
	t.Helper()
	dir = t.TempDir()
	if err := os.CopyFS(filepath.Join(dir, "pack"), assetstest.Pack()); err != nil {
		t.Fatal(err)
	}
	cfg = filepath.Join(dir, "config.toml")
	conf := "[assets]\ndir = \"pack\"\n\n[log]\nlevel = \"error\"\n"
	if err := os.WriteFile(cfg, []byte(conf), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, cfg
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	dir, cfg := workspace(t)
	card := filepath.Join(dir, "dragon.toml")
	err := os.WriteFile(card, []byte(`
title = "Blue-Eyes White Dragon"
type = "Monster"
subtype = "Normal"
attribute = "LIGHT"
level = 8
atk = "3000"
def = "2500"
code = "89631139"
rarity = "UltraRare"
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out", "dragon.png")
	if _, err := run(t, "render", card, "-o", out, "--width", "0", "--config", cfg); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 1000 || b.Dy() != 1450 {
		t.Errorf("bounds = %v", b)
	}
}

func TestBatchCommand(t *testing.T) {
	dir, cfg := workspace(t)
	csv := filepath.Join(dir, "set.csv")
	err := os.WriteFile(csv, []byte(`title,type,subtype,attribute,level,link_arrows,effect
Dark Magician,Monster,Normal,DARK,7,,The ultimate wizard.
Decode Talker,Monster,Link,DARK,,1/3/8,Gains 500 ATK.
Pot of Greed,Spell,,,,,Draw 2 cards.
Mirror Force,Trap,,,,,Destroy all attack position monsters.
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(dir, "out")
	sheet := filepath.Join(outDir, "sheet.jpg")
	stdout, err := run(t, "batch", csv, "-o", outDir, "--type", "Monster,Spell", "--sheet", sheet, "--config", cfg)
	if err != nil {
		t.Fatalf("%v\n%s", err, stdout)
	}
	for _, name := range []string{"001-dark-magician.png", "002-decode-talker.png", "003-pot-of-greed.png", "sheet.jpg"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing %s", name)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "004-mirror-force.png")); err == nil {
		t.Error("filtered trap was rendered")
	}
	if !strings.Contains(stdout, "3 of 3 cards rendered") {
		t.Errorf("summary missing from output:\n%s", stdout)
	}
}

func TestBatchCommandWithoutSheet(t *testing.T) {
	dir, cfg := workspace(t)
	csv := filepath.Join(dir, "set.csv")
	err := os.WriteFile(csv, []byte(`title,type,effect
Pot of Greed,Spell,Draw 2 cards.
Monster Reborn,Spell,Special Summon 1 monster from either GY.
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(dir, "out")
	stdout, err := run(t, "batch", csv, "-o", outDir, "--sheet", "", "--config", cfg)
	if err != nil {
		t.Fatalf("%v\n%s", err, stdout)
	}
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if want := []string{"001-pot-of-greed.png", "002-monster-reborn.png"}; !slices.Equal(names, want) {
		t.Errorf("output files = %v, want %v", names, want)
	}
	if !strings.Contains(stdout, "2 of 2 cards rendered") {
		t.Errorf("summary missing from output:\n%s", stdout)
	}
}

func TestTemplateKeyCommand(t *testing.T) {
	out, err := run(t, "template-key", "--type", "Monster", "--subtype", "Effect", "--pendulum")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "EffectPendulum" {
		t.Errorf("output = %q", out)
	}
	if _, err := run(t, "template-key", "--type", "Ritual", "--pendulum=false"); err == nil {
		t.Error("unknown type accepted")
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardmaker", "config.toml")
	if _, err := run(t, "config", "init", "--config", path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "config", "init", "--config", path, "--force=false"); err == nil {
		t.Error("existing config overwritten without --force")
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Blue-Eyes White Dragon": "blue-eyes-white-dragon",
		"  ???  ":                "card",
		"Number 39: Utopia":      "number-39-utopia",
	}
	for in, want := range tests {
		if got := slug(in); got != want {
			t.Errorf("slug(%q) = %q, want %q", in, got, want)
		}
	}
}
