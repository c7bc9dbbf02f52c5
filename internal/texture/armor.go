package texture

import (
	"image"
	"image/color"
)

// NewArmorTex returns a blank 64x32 armor model canvas.
func NewArmorTex() *image.RGBA { return NewCanvas(64, 32) }

// TierStyle describes one armor tier's look. Spec, Accent and Accent2 are
// skipped when left zero.
type TierStyle struct {
	Base, Hi, Lo    color.RGBA
	Spec            color.RGBA
	Accent, Accent2 color.RGBA
	Chainmail       bool
	Stitch          bool
	TrimAll         bool
	Glow            bool
}

func isSet(c color.RGBA) bool { return c != (color.RGBA{}) }

// PaintArmorTier paints the two armor model textures for one tier. The
// main texture carries helmet, chestplate, arms and boots; the legs
// texture carries the leggings. Left limbs mirror right.
func PaintArmorTier(main, legs *image.RGBA, s TierStyle) {
	// Helmet.
	armorHeadUV.ForEach(func(name string, r Rect) {
		switch name {
		case "front":
			Shade(main, r.X, r.Y, r.W, r.H, s.Base, s.Hi, s.Lo)
			// Visor opening.
			Fill(main, r.X+1, r.Y+r.H-3, r.W-2, 2, s.Lo)
			if isSet(s.Spec) {
				Set(main, r.X+2, r.Y+1, s.Spec)
			}
			if s.TrimAll && isSet(s.Accent) {
				HLine(main, r.X, r.Y+r.H-1, r.W, s.Accent)
			}
		case "top":
			Shade(main, r.X, r.Y, r.W, r.H, s.Hi, s.Hi, s.Base)
			if s.TrimAll && isSet(s.Accent) {
				HLine(main, r.X, r.Y+r.H-1, r.W, s.Accent)
			}
		default:
			Shade(main, r.X, r.Y, r.W, r.H, s.Base, s.Hi, s.Lo)
			if s.TrimAll && isSet(s.Accent) {
				HLine(main, r.X, r.Y+r.H-1, r.W, s.Accent)
			}
		}
	})

	// Chestplate.
	armorBodyUV.ForEach(func(name string, r Rect) {
		if name != "front" {
			Shade(main, r.X, r.Y, r.W, r.H, s.Base, s.Hi, s.Lo)
			if s.Chainmail {
				dither(main, r.X+1, r.Y+1, r.W-2, r.H-2, s.Base, s.Lo)
			}
			return
		}
		if s.Chainmail {
			dither(main, r.X, r.Y, r.W, r.H, s.Base, s.Lo)
			HLine(main, r.X, r.Y, r.W, s.Hi)
			HLine(main, r.X, r.Y+r.H-1, r.W, s.Lo)
		} else {
			Shade(main, r.X, r.Y, r.W, r.H, s.Base, s.Hi, s.Lo)
		}
		if s.Stitch {
			VLine(main, r.X+2, r.Y+1, r.H-2, s.Lo)
			VLine(main, r.X+5, r.Y+1, r.H-2, s.Lo)
		}
		if isSet(s.Spec) {
			Set(main, r.X+3, r.Y+2, s.Spec)
			Set(main, r.X+4, r.Y+2, s.Spec)
		}
		if isSet(s.Accent) && !s.Chainmail {
			HLine(main, r.X, r.Y+r.H/2, r.W, s.Accent) // belt
		}
		if isSet(s.Accent2) {
			Set(main, r.X+3, r.Y+4, s.Accent2)
			Set(main, r.X+4, r.Y+4, s.Accent2)
		}
		if s.TrimAll && isSet(s.Accent) {
			HLine(main, r.X, r.Y, r.W, s.Accent)
			HLine(main, r.X, r.Y+r.H-1, r.W, s.Accent)
			VLine(main, r.X, r.Y, r.H, s.Accent)
			VLine(main, r.X+r.W-1, r.Y, r.H, s.Accent)
		}
		if s.Glow {
			Set(main, r.X+2, r.Y+3, megaGlow)
			Set(main, r.X+5, r.Y+3, megaGlow)
		}
	})

	// Arms.
	armorArmUV.ForEach(func(name string, r Rect) {
		if s.Chainmail {
			dither(main, r.X, r.Y, r.W, r.H, s.Base, s.Lo)
		} else {
			Shade(main, r.X, r.Y, r.W, r.H, s.Base, s.Hi, s.Lo)
		}
		if s.TrimAll && isSet(s.Accent) {
			HLine(main, r.X, r.Y, r.W, s.Accent)
		}
	})

	// Boots.
	armorLegUV.ForEach(func(name string, r Rect) {
		Shade(main, r.X, r.Y, r.W, r.H, s.Base, s.Hi, s.Lo)
		if s.TrimAll && isSet(s.Accent) {
			HLine(main, r.X, r.Y, r.W, s.Accent)
		}
	})

	// Leggings texture.
	armorBodyUV.ForEach(func(name string, r Rect) {
		Shade(legs, r.X, r.Y, r.W, r.H, s.Base, s.Hi, s.Lo)
		if s.Chainmail && (name == "front" || name == "back") {
			dither(legs, r.X+1, r.Y+1, r.W-2, r.H-2, s.Base, s.Lo)
		}
	})

	armorLegUV.ForEach(func(name string, r Rect) {
		if s.Chainmail {
			dither(legs, r.X, r.Y, r.W, r.H, s.Base, s.Lo)
			HLine(legs, r.X, r.Y, r.W, s.Hi)
			HLine(legs, r.X, r.Y+r.H-1, r.W, s.Lo)
		} else {
			Shade(legs, r.X, r.Y, r.W, r.H, s.Base, s.Hi, s.Lo)
		}
		if s.Stitch {
			VLine(legs, r.X+1, r.Y+1, r.H-2, s.Lo)
		}
		if s.TrimAll && isSet(s.Accent) {
			HLine(legs, r.X, r.Y, r.W, s.Accent)
		}
	})
}

// ArmorTiers maps armor texture base names to their styles, in
// progression order.
var ArmorTiers = []struct {
	Name  string
	Style TierStyle
}{
	{"mk_page", TierStyle{Base: page, Hi: pageHi, Lo: pageLo, Stitch: true}},
	{"mk_squire", TierStyle{Base: squire, Hi: squireHi, Lo: squireLo, Chainmail: true}},
	{"mk_knight", TierStyle{Base: knight, Hi: knightHi, Lo: knightLo, Spec: knightSpec}},
	{"mk_champion", TierStyle{Base: champ, Hi: champHi, Lo: champLo, Spec: champSpec, Accent: champGem, Accent2: champGem}},
	{"mk_mega_knight", TierStyle{Base: mega, Hi: megaHi, Lo: megaLo, Accent: megaGold, TrimAll: true, Glow: true}},
}
