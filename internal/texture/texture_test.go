package texture

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxFaces(t *testing.T) {
	got := BoxFaces(0, 0, 8, 8, 8)
	want := Faces{
		Top:    Rect{8, 0, 8, 8},
		Bottom: Rect{16, 0, 8, 8},
		Right:  Rect{0, 8, 8, 8},
		Front:  Rect{8, 8, 8, 8},
		Left:   Rect{16, 8, 8, 8},
		Back:   Rect{24, 8, 8, 8},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("head faces mismatch (-want +got):\n%s", diff)
	}
}

func TestBoxFaces_Body(t *testing.T) {
	got := BoxFaces(16, 16, 8, 12, 4)
	want := Faces{
		Top:    Rect{20, 16, 8, 4},
		Bottom: Rect{28, 16, 8, 4},
		Right:  Rect{16, 20, 4, 12},
		Front:  Rect{20, 20, 8, 12},
		Left:   Rect{28, 20, 4, 12},
		Back:   Rect{32, 20, 8, 12},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("body faces mismatch (-want +got):\n%s", diff)
	}
}

func TestShade(t *testing.T) {
	img := NewCanvas(8, 8)
	base, hi, lo := rgba(100, 100, 100, 255), rgba(200, 200, 200, 255), rgba(50, 50, 50, 255)
	Shade(img, 0, 0, 6, 6, base, hi, lo)

	assert.Equal(t, hi, img.RGBAAt(0, 0), "top edge is lit")
	assert.Equal(t, hi, img.RGBAAt(5, 0), "top-right corner keeps the top color")
	assert.Equal(t, hi, img.RGBAAt(0, 3), "left edge is lit")
	assert.Equal(t, lo, img.RGBAAt(3, 5), "bottom edge is shadowed")
	assert.Equal(t, lo, img.RGBAAt(5, 3), "right edge is shadowed")
	assert.Equal(t, base, img.RGBAAt(3, 3), "interior stays base")
	assert.Equal(t, Transparent, img.RGBAAt(7, 7), "outside the rect stays clear")
}

func TestDither(t *testing.T) {
	img := NewCanvas(8, 8)
	base, lo := rgba(100, 100, 100, 255), rgba(50, 50, 50, 255)
	dither(img, 2, 2, 4, 4, base, lo)

	assert.Equal(t, base, img.RGBAAt(2, 2))
	assert.Equal(t, lo, img.RGBAAt(3, 2))
	assert.Equal(t, lo, img.RGBAAt(2, 3))
	assert.Equal(t, base, img.RGBAAt(3, 3))
}

func TestPaintAllyKnight(t *testing.T) {
	img := NewSkin()
	PaintAllyKnight(img)

	// Visor eyes on the head front.
	assert.Equal(t, akEye, img.RGBAAt(10, 11))
	assert.Equal(t, akEye, img.RGBAAt(13, 11))
	// Gold cross on the tabard.
	assert.Equal(t, akGold, img.RGBAAt(23, 24))
	assert.Equal(t, akGold, img.RGBAAt(21, 26))
	// Blue plume stripe across the head top.
	assert.Equal(t, akBlue, img.RGBAAt(11, 0))
	assert.Equal(t, akBlue, img.RGBAAt(12, 7))
	// Brown boots in the bottom four rows of the right leg front.
	assert.Equal(t, akBrown, img.RGBAAt(5, 28))
	assert.Equal(t, akBrownLo, img.RGBAAt(5, 31))
}

func TestPaintBossSiegeLord(t *testing.T) {
	img := NewSkin()
	PaintBossSiegeLord(img)

	// Gold crown rows on the head top.
	assert.Equal(t, slGold, img.RGBAAt(8, 6))
	assert.Equal(t, slGoldHi, img.RGBAAt(15, 7))
	// Dual eye slits.
	assert.Equal(t, slCrimHi, img.RGBAAt(10, 11))
	assert.Equal(t, slCrimHi, img.RGBAAt(13, 11))
	// Crimson war cloak on the body back.
	assert.Equal(t, slCrim, img.RGBAAt(35, 25))
	// Gold belt.
	assert.Equal(t, slGold, img.RGBAAt(20, 28))
}

func TestPaintEnemyWizard_FireHands(t *testing.T) {
	img := NewSkin()
	PaintEnemyWizard(img)

	// Right arm front is at (44,20) 4x12; hands occupy the bottom 2 rows.
	assert.Equal(t, ewFireHi, img.RGBAAt(45, 30))
	assert.Equal(t, ewFireLo, img.RGBAAt(44, 31))
	// Glowing eyes.
	assert.Equal(t, ewEye, img.RGBAAt(10, 12))
}

func TestPaintArmorTier_Chainmail(t *testing.T) {
	main, legs := NewArmorTex(), NewArmorTex()
	var style TierStyle
	for _, tier := range ArmorTiers {
		if tier.Name == "mk_squire" {
			style = tier.Style
		}
	}
	require.True(t, style.Chainmail)
	PaintArmorTier(main, legs, style)

	// Chest front (20,20) dithers on absolute pixel parity.
	assert.Equal(t, style.Base, main.RGBAAt(22, 22))
	assert.Equal(t, style.Lo, main.RGBAAt(23, 22))
	// Legs texture leg region dithers too, with a highlight row on top.
	assert.Equal(t, style.Hi, legs.RGBAAt(5, 20))
}

func TestPaintArmorTier_MegaTrim(t *testing.T) {
	main, legs := NewArmorTex(), NewArmorTex()
	style := ArmorTiers[len(ArmorTiers)-1].Style
	require.True(t, style.TrimAll)
	PaintArmorTier(main, legs, style)

	// Gold trim along the chest front borders.
	assert.Equal(t, megaGold, main.RGBAAt(20, 20))
	assert.Equal(t, megaGold, main.RGBAAt(27, 31))
	// Glow pixels inside the chest.
	assert.Equal(t, megaGlow, main.RGBAAt(22, 23))
	assert.Equal(t, megaGlow, main.RGBAAt(25, 23))
}

func TestPaintIconShape(t *testing.T) {
	img := NewIcon()
	base, hi, lo := rgba(100, 100, 100, 255), rgba(200, 200, 200, 255), rgba(50, 50, 50, 255)
	PaintIconShape(img, helmetShape, base, hi, lo)

	// Row 2 is the helmet crown: all edge, lit.
	assert.Equal(t, hi, img.RGBAAt(7, 2))
	// Interior pixel.
	assert.Equal(t, base, img.RGBAAt(7, 6))
	// Transparent outside the shape.
	assert.Equal(t, Transparent, img.RGBAAt(0, 0))
	assert.Equal(t, Transparent, img.RGBAAt(7, 11))
}

func TestPaintTokenIcon(t *testing.T) {
	img := NewIcon()
	PaintTokenIcon(img, squire, squireHi, squireLo, tokenCross)

	// Ring edge pixels shade by side.
	assert.Equal(t, squireHi, img.RGBAAt(3, 5))
	assert.Equal(t, squireLo, img.RGBAAt(4, 6))
	// Symbols clip to the template, so the hollow center stays clear.
	assert.Equal(t, Transparent, img.RGBAAt(7, 7))
}

func TestPaintBlueprintIcon(t *testing.T) {
	img := NewIcon()
	PaintBlueprintIcon(img, bpTower)

	assert.Equal(t, bpPaperHi, img.RGBAAt(2, 3), "frame edge is lit")
	assert.Equal(t, bpSeal, img.RGBAAt(10, 10), "wax seal")
	// Drawings clip to the template; the open center stays clear.
	assert.Equal(t, Transparent, img.RGBAAt(7, 7))
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()

	var lines int
	n, err := Generate(root, func(format string, args ...any) { lines++ })
	require.NoError(t, err)
	assert.Equal(t, 46, n)
	assert.Equal(t, 41, lines, "armor tiers log one line per pair")

	count := 0
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".png" {
			count++
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 46, count)

	// Spot-check a few outputs decode to the right dimensions.
	for _, tc := range []struct {
		rel  string
		w, h int
	}{
		{filepath.Join("entity", "mk_boss_siege_lord.png"), 64, 64},
		{filepath.Join("models", "armor", "mk_squire_main.png"), 64, 32},
		{filepath.Join("items", "mk_mega_knight_helmet.png"), 16, 16},
		{filepath.Join("items", "mk_blueprint_great_hall.png"), 16, 16},
	} {
		f, err := os.Open(filepath.Join(root, tc.rel))
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err, tc.rel)
		assert.Equal(t, tc.w, img.Bounds().Dx(), tc.rel)
		assert.Equal(t, tc.h, img.Bounds().Dy(), tc.rel)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, b := NewSkin(), NewSkin()
	PaintAllyWizard(a)
	PaintAllyWizard(b)
	if diff := cmp.Diff(a.Pix, b.Pix); diff != "" {
		t.Errorf("painting is not deterministic:\n%s", diff)
	}
}
