package texture

import (
	"image"
	"image/color"
)

// NewSkin returns a blank 64x64 entity skin canvas.
func NewSkin() *image.RGBA { return NewCanvas(64, 64) }

// paintPart shades all six faces of a body part with orientation-aware
// lighting. Top faces read brighter, bottom and back faces darker.
func paintPart(img *image.RGBA, f Faces, base, hi, lo color.RGBA) {
	f.ForEach(func(name string, r Rect) {
		switch name {
		case "top":
			Shade(img, r.X, r.Y, r.W, r.H, hi, hi, base)
		case "bottom":
			Shade(img, r.X, r.Y, r.W, r.H, lo, lo, lo)
		case "back":
			Shade(img, r.X, r.Y, r.W, r.H, lo, base, lo)
		default:
			Shade(img, r.X, r.Y, r.W, r.H, base, hi, lo)
		}
	})
}

// PaintAllyKnight paints the ally knight skin: steel plate, blue tabard
// with a gold cross, blue plume.
func PaintAllyKnight(img *image.RGBA) {
	for _, p := range SkinUV.Parts() {
		paintPart(img, p, akSteel, akSteelHi, akSteelLo)
	}

	// Head front: closed helmet with visor slit.
	hx, hy := 8, 8
	Fill(img, hx, hy, 8, 8, akSteel)
	HLine(img, hx, hy, 8, akSteelHi)
	HLine(img, hx, hy+1, 8, akSteelHi)
	HLine(img, hx+1, hy+3, 6, akDark)
	HLine(img, hx+1, hy+4, 6, akDark)
	Set(img, hx+2, hy+3, akEye)
	Set(img, hx+5, hy+3, akEye)
	HLine(img, hx, hy+7, 8, akSteelLo)
	VLine(img, hx+7, hy, 8, akSteelLo)

	// Head top: blue plume stripe.
	tx, ty := 8, 0
	Fill(img, tx, ty, 8, 8, akSteel)
	VLine(img, tx+3, ty, 8, akBlue)
	VLine(img, tx+4, ty, 8, akBlue)

	// Body front: blue tabard over steel shoulders.
	bx, by := 20, 20
	Fill(img, bx, by, 8, 12, akBlue)
	HLine(img, bx, by, 8, akBlueHi)
	VLine(img, bx, by, 12, akBlueHi)
	Fill(img, bx, by, 8, 2, akSteel)
	HLine(img, bx, by, 8, akSteelHi)
	// Gold cross emblem.
	VLine(img, bx+3, by+4, 5, akGold)
	HLine(img, bx+1, by+6, 6, akGold)
	// Belt with buckle.
	HLine(img, bx, by+9, 8, akBrown)
	Set(img, bx+3, by+9, akGold)
	Set(img, bx+4, by+9, akGold)
	HLine(img, bx, by+11, 8, akBlueLo)
	VLine(img, bx+7, by, 12, akBlueLo)

	// Body back: blue cape with fold lines.
	bkx, bky := 32, 20
	Fill(img, bkx, bky, 8, 12, akBlue)
	HLine(img, bkx, bky, 8, akBlueHi)
	VLine(img, bkx+2, bky+1, 10, akBlueLo)
	VLine(img, bkx+5, bky+1, 10, akBlueLo)
	HLine(img, bkx, bky+11, 8, akBlueLo)

	Set(img, bx+2, by+3, akSteelHi)

	// Arms: blue stripe plus gauntlet.
	for _, arm := range SkinUV.Arms() {
		r := arm.Front
		Shade(img, r.X, r.Y, r.W, r.H, akSteel, akSteelHi, akSteelLo)
		VLine(img, r.X+1, r.Y+2, 8, akBlue)
		Fill(img, r.X, r.Y+r.H-3, r.W, 3, akSteelLo)
		HLine(img, r.X, r.Y+r.H-3, r.W, akSteel)
	}

	// Legs: blue with brown boots.
	for _, leg := range SkinUV.Legs() {
		r := leg.Front
		Shade(img, r.X, r.Y, r.W, r.H, akBlue, akBlueHi, akBlueLo)
		Fill(img, r.X, r.Y+r.H-4, r.W, 4, akBrown)
		HLine(img, r.X, r.Y+r.H-4, r.W, akBrown)
		HLine(img, r.X, r.Y+r.H-1, r.W, akBrownLo)
	}
}

// PaintEnemyKnight paints the enemy knight skin: dark battered steel with
// a crimson X mark.
func PaintEnemyKnight(img *image.RGBA) {
	for _, p := range SkinUV.Parts() {
		paintPart(img, p, ekSteel, ekSteelHi, ekSteelLo)
	}

	// Head front: narrow visor, red eyes, battle scratches.
	hx, hy := 8, 8
	Fill(img, hx, hy, 8, 8, ekSteel)
	HLine(img, hx, hy, 8, ekSteelHi)
	HLine(img, hx+1, hy+3, 6, ekDark)
	Set(img, hx+2, hy+3, ekEye)
	Set(img, hx+5, hy+3, ekEye)
	Set(img, hx+6, hy+1, ekSteelLo)
	Set(img, hx+5, hy+2, ekSteelLo)
	HLine(img, hx, hy+7, 8, ekSteelLo)
	VLine(img, hx+7, hy, 8, ekSteelLo)

	// Head top: horn nubs.
	Fill(img, 8, 0, 8, 8, ekSteel)
	Set(img, 10, 0, ekSteelHi)
	Set(img, 13, 0, ekSteelHi)

	// Body front: crimson X.
	bx, by := 20, 20
	Fill(img, bx, by, 8, 12, ekSteel)
	HLine(img, bx, by, 8, ekSteelHi)
	VLine(img, bx, by, 12, ekSteelHi)
	Set(img, bx+2, by+3, ekRed)
	Set(img, bx+5, by+3, ekRed)
	Set(img, bx+3, by+4, ekRed)
	Set(img, bx+4, by+4, ekRed)
	Set(img, bx+3, by+5, ekRed)
	Set(img, bx+4, by+5, ekRed)
	Set(img, bx+2, by+6, ekRed)
	Set(img, bx+5, by+6, ekRed)
	HLine(img, bx, by+9, 8, ekDark)
	HLine(img, bx, by+11, 8, ekSteelLo)
	VLine(img, bx+7, by, 12, ekSteelLo)

	// Body back: scratched, no cape.
	bkx := 32
	Fill(img, bkx, 20, 8, 12, ekSteelLo)
	VLine(img, bkx+2, 22, 6, ekDark)
	VLine(img, bkx+5, 23, 5, ekDark)

	for _, arm := range SkinUV.Arms() {
		r := arm.Front
		Shade(img, r.X, r.Y, r.W, r.H, ekSteel, ekSteelHi, ekSteelLo)
		VLine(img, r.X+1, r.Y+2, 4, ekRedLo)
	}

	for _, leg := range SkinUV.Legs() {
		r := leg.Front
		Shade(img, r.X, r.Y, r.W, r.H, ekSteel, ekSteelHi, ekSteelLo)
		Fill(img, r.X, r.Y+r.H-4, r.W, 4, ekSteelLo)
		HLine(img, r.X, r.Y+r.H-4, r.W, ekSteel)
	}
}

// PaintAllyArcher paints the ally archer skin: green hood, leather tunic,
// quiver of arrows on the back.
func PaintAllyArcher(img *image.RGBA) {
	for _, p := range SkinUV.Parts() {
		paintPart(img, p, aaGreen, aaGreenHi, aaGreenLo)
	}

	// Head front: hood over a visible face.
	hx, hy := 8, 8
	Fill(img, hx, hy, 8, 3, aaGreen)
	HLine(img, hx, hy, 8, aaGreenHi)
	HLine(img, hx+1, hy+2, 6, aaGreenLo)
	Fill(img, hx+1, hy+3, 6, 4, aaSkin)
	for i := 3; i <= 5; i++ {
		Set(img, hx, hy+i, aaGreen)
		Set(img, hx+7, hy+i, aaGreen)
	}
	Set(img, hx+2, hy+4, aaEye)
	Set(img, hx+5, hy+4, aaEye)
	HLine(img, hx+3, hy+6, 2, aaSkinLo)
	Fill(img, hx, hy+7, 8, 1, aaGreenLo)

	// Head top: all hood.
	Fill(img, 8, 0, 8, 8, aaGreen)
	HLine(img, 8, 0, 8, aaGreenHi)

	// Head sides: hood with a face peek.
	for _, r := range []Rect{SkinUV.Head.Right, SkinUV.Head.Left} {
		Fill(img, r.X, r.Y, r.W, r.H, aaGreen)
		Fill(img, r.X, r.Y+3, r.W, 4, aaGreenLo)
		Fill(img, r.X+2, r.Y+3, r.W-3, 3, aaSkin)
	}

	// Head back: hood drawstring.
	bk := SkinUV.Head.Back
	Fill(img, bk.X, bk.Y, bk.W, bk.H, aaGreen)
	Set(img, bk.X+3, bk.Y+6, aaGreenLo)
	Set(img, bk.X+4, bk.Y+6, aaGreenLo)

	// Body front: tan tunic, diagonal quiver strap, belt.
	bx, by := 20, 20
	Fill(img, bx, by, 8, 12, aaTan)
	HLine(img, bx, by, 8, aaTanHi)
	VLine(img, bx, by, 12, aaTanHi)
	HLine(img, bx+1, by, 6, aaGreen)
	for i := 0; i < 6; i++ {
		Set(img, bx+6-i, by+1+i, aaQuiver)
	}
	HLine(img, bx, by+8, 8, aaLeath)
	Set(img, bx+3, by+8, aaGreenHi)
	Fill(img, bx, by+9, 8, 3, aaTanLo)
	HLine(img, bx, by+11, 8, aaTanLo)
	VLine(img, bx+7, by, 12, aaTanLo)

	// Body back: quiver with fletched arrows.
	bkx, bky := 32, 20
	Fill(img, bkx, bky, 8, 12, aaTan)
	HLine(img, bkx, bky, 8, aaTanHi)
	Fill(img, bkx+5, bky+1, 2, 6, aaQuiver)
	VLine(img, bkx+5, bky+1, 5, aaArrow)
	VLine(img, bkx+6, bky+1, 4, aaArrow)
	Set(img, bkx+5, bky+1, aaFletch)
	Set(img, bkx+6, bky+1, aaFletch)
	Set(img, bkx+4, bky+2, aaQuiver)
	Set(img, bkx+3, bky+3, aaQuiver)
	HLine(img, bkx, bky+11, 8, aaTanLo)

	// Arms: leather bracers.
	for _, arm := range SkinUV.Arms() {
		r := arm.Front
		Shade(img, r.X, r.Y, r.W, r.H, aaGreen, aaGreenHi, aaGreenLo)
		Fill(img, r.X, r.Y+r.H-4, r.W, 4, aaLeath)
		HLine(img, r.X, r.Y+r.H-4, r.W, aaLeathHi)
		HLine(img, r.X, r.Y+r.H-3, r.W, aaLeathLo)
		HLine(img, r.X, r.Y+r.H-1, r.W, aaLeathLo)
	}

	// Legs: leather boots.
	for _, leg := range SkinUV.Legs() {
		r := leg.Front
		Shade(img, r.X, r.Y, r.W, r.H, aaGreen, aaGreenHi, aaGreenLo)
		Fill(img, r.X, r.Y+r.H-5, r.W, 5, aaLeath)
		HLine(img, r.X, r.Y+r.H-5, r.W, aaLeathHi)
		HLine(img, r.X, r.Y+r.H-1, r.W, aaLeathLo)
	}
}

// PaintEnemyArcher paints the enemy archer skin: near-black hood hiding
// the face, slit eyes, maroon tunic.
func PaintEnemyArcher(img *image.RGBA) {
	for _, p := range SkinUV.Parts() {
		paintPart(img, p, eaGreen, eaGreenHi, eaGreenLo)
	}

	hx, hy := 8, 8
	Fill(img, hx, hy, 8, 8, eaGreen)
	HLine(img, hx, hy, 8, eaGreenHi)
	Fill(img, hx+1, hy+3, 6, 4, eaGreenLo)
	Set(img, hx+2, hy+4, eaEye)
	Set(img, hx+5, hy+4, eaEye)
	HLine(img, hx, hy+7, 8, eaGreenLo)
	VLine(img, hx+7, hy, 8, eaGreenLo)

	Fill(img, 8, 0, 8, 8, eaGreen)

	bx, by := 20, 20
	Fill(img, bx, by, 8, 12, eaMaroon)
	HLine(img, bx, by, 8, eaMaroonHi)
	for i := 0; i < 5; i++ {
		Set(img, bx+6-i, by+1+i, eaLeathLo)
	}
	HLine(img, bx, by+8, 8, eaLeathLo)
	HLine(img, bx, by+11, 8, eaMaroonLo)
	VLine(img, bx+7, by, 12, eaMaroonLo)

	bkx, bky := 32, 20
	Fill(img, bkx, bky, 8, 12, eaMaroonLo)
	Fill(img, bkx+5, bky+1, 2, 6, eaLeathLo)
	VLine(img, bkx+5, bky+1, 5, eaLeath)
	VLine(img, bkx+6, bky+1, 4, eaLeath)
	Set(img, bkx+5, bky+1, eaMaroon)
	Set(img, bkx+6, bky+1, eaMaroon)

	for _, arm := range SkinUV.Arms() {
		r := arm.Front
		Shade(img, r.X, r.Y, r.W, r.H, eaGreen, eaGreenHi, eaGreenLo)
		Fill(img, r.X, r.Y+r.H-4, r.W, 4, eaLeath)
		HLine(img, r.X, r.Y+r.H-4, r.W, eaLeathHi)
	}

	for _, leg := range SkinUV.Legs() {
		r := leg.Front
		Shade(img, r.X, r.Y, r.W, r.H, eaMaroon, eaMaroonHi, eaMaroonLo)
		Fill(img, r.X, r.Y+r.H-5, r.W, 5, eaLeath)
		HLine(img, r.X, r.Y+r.H-5, r.W, eaLeathHi)
	}
}

// PaintAllyWizard paints the ally wizard skin: pointed hat with gold brim,
// white beard, star emblem, glowing cyan hands.
func PaintAllyWizard(img *image.RGBA) {
	for _, p := range SkinUV.Parts() {
		paintPart(img, p, awPurp, awPurpHi, awPurpLo)
	}

	// Head front: hat brim, face, beard.
	hx, hy := 8, 8
	Fill(img, hx, hy, 8, 3, awPurp)
	HLine(img, hx, hy, 8, awPurpHi)
	HLine(img, hx+1, hy+1, 6, awPurpHi)
	HLine(img, hx, hy+2, 8, awGold)
	Fill(img, hx+1, hy+3, 6, 2, awSkin)
	Set(img, hx, hy+3, awPurpLo)
	Set(img, hx+7, hy+3, awPurpLo)
	Set(img, hx+2, hy+3, awEyeInk)
	Set(img, hx+5, hy+3, awEyeInk)
	Fill(img, hx+1, hy+5, 6, 2, awBeard)
	Fill(img, hx+2, hy+4, 4, 1, awBeardHi)
	Set(img, hx, hy+5, awPurpLo)
	Set(img, hx+7, hy+5, awPurpLo)
	Fill(img, hx+2, hy+6, 4, 1, awBeard)
	Fill(img, hx+3, hy+7, 2, 1, awBeardLo)

	// Head top: hat point narrowing toward center, gold band.
	tx, ty := 8, 0
	Fill(img, tx, ty, 8, 8, awPurp)
	Fill(img, tx+2, ty, 4, 2, awPurpHi)
	Fill(img, tx+3, ty, 2, 1, awPurpHi)
	HLine(img, tx, ty+7, 8, awGold)

	// Body front: robes, gold star emblem, sash.
	bx, by := 20, 20
	Fill(img, bx, by, 8, 12, awPurp)
	HLine(img, bx, by, 8, awPurpHi)
	VLine(img, bx, by, 12, awPurpHi)
	HLine(img, bx+1, by, 6, awGold)
	VLine(img, bx+2, by+2, 8, awPurpLo)
	VLine(img, bx+5, by+2, 8, awPurpLo)
	Set(img, bx+3, by+3, awGold)
	Set(img, bx+4, by+3, awGold)
	Set(img, bx+3, by+2, awGold)
	Set(img, bx+4, by+4, awGold)
	Set(img, bx+2, by+3, awGold)
	Set(img, bx+5, by+3, awGold)
	HLine(img, bx, by+7, 8, awGold)
	HLine(img, bx+1, by+7, 6, awGoldLo)
	HLine(img, bx, by+11, 8, awPurpLo)
	HLine(img, bx+1, by+11, 6, awGoldLo)
	VLine(img, bx+7, by, 12, awPurpLo)

	// Body back: fold lines and gold hem.
	bkx, bky := 32, 20
	Fill(img, bkx, bky, 8, 12, awPurpLo)
	VLine(img, bkx+2, bky+1, 10, awPurp)
	VLine(img, bkx+5, bky+1, 10, awPurp)
	HLine(img, bkx+1, bky+11, 6, awGoldLo)

	// Arms: wide sleeves, glowing hands.
	for _, arm := range SkinUV.Arms() {
		r := arm.Front
		Shade(img, r.X, r.Y, r.W, r.H, awPurp, awPurpHi, awPurpLo)
		HLine(img, r.X, r.Y+r.H-2, r.W, awPurpHi)
		Fill(img, r.X, r.Y+r.H-2, r.W, 2, awCyan)
		HLine(img, r.X, r.Y+r.H-1, r.W, awCyanLo)
	}

	// Legs: robe continuation with boots peeking out.
	for _, leg := range SkinUV.Legs() {
		r := leg.Front
		Shade(img, r.X, r.Y, r.W, r.H, awPurp, awPurpHi, awPurpLo)
		VLine(img, r.X+1, r.Y+1, r.H-2, awPurpLo)
		Fill(img, r.X, r.Y+r.H-2, r.W, 2, awPurpLo)
	}
}

// PaintEnemyWizard paints the enemy wizard skin: deep hood with glowing
// red eyes, rune mark, fire hands, skull on the back.
func PaintEnemyWizard(img *image.RGBA) {
	for _, p := range SkinUV.Parts() {
		paintPart(img, p, ewDark, ewDarkHi, ewDarkLo)
	}

	hx, hy := 8, 8
	Fill(img, hx, hy, 8, 8, ewDark)
	HLine(img, hx, hy, 8, ewDarkHi)
	Fill(img, hx+1, hy+3, 6, 4, ewShadow)
	Set(img, hx+2, hy+4, ewEye)
	Set(img, hx+5, hy+4, ewEye)
	Set(img, hx+1, hy+4, ewGlowWide)
	Set(img, hx+6, hy+4, ewGlowWide)
	Set(img, hx+2, hy+3, ewGlowDim)
	Set(img, hx+5, hy+3, ewGlowDim)
	HLine(img, hx, hy+7, 8, ewDarkLo)
	VLine(img, hx+7, hy, 8, ewDarkLo)

	Fill(img, 8, 0, 8, 8, ewDark)

	bx, by := 20, 20
	Fill(img, bx, by, 8, 12, ewDark)
	HLine(img, bx, by, 8, ewDarkHi)
	VLine(img, bx+2, by+2, 8, ewDarkLo)
	VLine(img, bx+5, by+2, 8, ewDarkLo)
	Set(img, bx+3, by+3, ewRed)
	Set(img, bx+4, by+3, ewRed)
	Set(img, bx+2, by+4, ewRed)
	Set(img, bx+5, by+4, ewRed)
	Set(img, bx+3, by+5, ewRed)
	Set(img, bx+4, by+5, ewRed)
	HLine(img, bx, by+7, 8, ewRed)
	HLine(img, bx, by+11, 8, ewDarkLo)
	VLine(img, bx+7, by, 12, ewDarkLo)

	// Body back: faint skull.
	bkx, bky := 32, 20
	Fill(img, bkx, bky, 8, 12, ewDarkLo)
	Set(img, bkx+2, bky+3, ewDarkHi)
	Set(img, bkx+5, bky+3, ewDarkHi)
	Set(img, bkx+3, bky+4, ewDarkHi)
	Set(img, bkx+4, bky+4, ewDarkHi)
	HLine(img, bkx+2, bky+5, 4, ewDarkHi)

	for _, arm := range SkinUV.Arms() {
		r := arm.Front
		Shade(img, r.X, r.Y, r.W, r.H, ewDark, ewDarkHi, ewDarkLo)
		Fill(img, r.X, r.Y+r.H-2, r.W, 2, ewFire)
		Set(img, r.X+1, r.Y+r.H-2, ewFireHi)
		HLine(img, r.X, r.Y+r.H-1, r.W, ewFireLo)
	}

	for _, leg := range SkinUV.Legs() {
		r := leg.Front
		Shade(img, r.X, r.Y, r.W, r.H, ewDark, ewDarkHi, ewDarkLo)
		VLine(img, r.X+1, r.Y+1, r.H-2, ewDarkLo)
	}
}

// PaintAllyDarkKnight paints the ally dark knight skin: navy plate with a
// glowing blue visor and diamond emblem.
func PaintAllyDarkKnight(img *image.RGBA) {
	for _, p := range SkinUV.Parts() {
		paintPart(img, p, adNavy, adNavyHi, adNavyLo)
	}

	hx, hy := 8, 8
	Fill(img, hx, hy, 8, 8, adNavy)
	HLine(img, hx, hy, 8, adNavyHi)
	HLine(img, hx, hy+1, 8, adNavyHi)
	HLine(img, hx+1, hy+3, 6, adBlue)
	HLine(img, hx+1, hy+4, 6, adBlueLo)
	Set(img, hx+3, hy+3, adBlueHi)
	Set(img, hx+4, hy+3, adBlueHi)
	VLine(img, hx, hy+3, 4, adNavyHi)
	VLine(img, hx+7, hy+3, 4, adNavyLo)
	HLine(img, hx, hy+7, 8, adNavyLo)

	Fill(img, 8, 0, 8, 8, adNavy)
	HLine(img, 8, 0, 8, adNavyHi)

	bx, by := 20, 20
	Fill(img, bx, by, 8, 12, adNavy)
	HLine(img, bx, by, 8, adNavyHi)
	VLine(img, bx, by, 12, adNavyHi)
	// Blue diamond emblem.
	Set(img, bx+3, by+2, adBlue)
	Set(img, bx+4, by+2, adBlue)
	Set(img, bx+2, by+3, adBlue)
	Set(img, bx+5, by+3, adBlue)
	Set(img, bx+3, by+3, adBlueHi)
	Set(img, bx+4, by+3, adBlueHi)
	Set(img, bx+2, by+4, adBlue)
	Set(img, bx+5, by+4, adBlue)
	Set(img, bx+3, by+5, adBlue)
	Set(img, bx+4, by+5, adBlue)
	HLine(img, bx, by+6, 8, adNavyLo)
	HLine(img, bx, by+9, 8, adNavyLo)
	Set(img, bx, by+1, adSilver)
	Set(img, bx+7, by+1, adSilver)
	HLine(img, bx, by+11, 8, adNavyLo)
	VLine(img, bx+7, by, 12, adNavyLo)

	bkx, bky := 32, 20
	Fill(img, bkx, bky, 8, 12, adNavyLo)
	HLine(img, bkx, bky, 8, adBlueLo)
	VLine(img, bkx+3, bky+1, 10, adNavy)
	VLine(img, bkx+5, bky+1, 10, adNavy)

	for _, arm := range SkinUV.Arms() {
		r := arm.Front
		Shade(img, r.X, r.Y, r.W, r.H, adNavy, adNavyHi, adNavyLo)
		VLine(img, r.X+1, r.Y+2, 6, adBlue)
		Fill(img, r.X, r.Y+r.H-3, r.W, 3, adNavyLo)
		HLine(img, r.X, r.Y+r.H-3, r.W, adNavy)
	}

	for _, leg := range SkinUV.Legs() {
		r := leg.Front
		Shade(img, r.X, r.Y, r.W, r.H, adNavy, adNavyHi, adNavyLo)
		Fill(img, r.X, r.Y+r.H-4, r.W, 4, adNavyLo)
		HLine(img, r.X, r.Y+r.H-4, r.W, adNavy)
		Set(img, r.X+1, r.Y+r.H-1, adSilver)
		Set(img, r.X+2, r.Y+r.H-1, adSilver)
	}
}

// PaintEnemyDarkKnight paints the enemy dark knight skin: black plate,
// crimson slash mark, rust damage, horn nubs.
func PaintEnemyDarkKnight(img *image.RGBA) {
	for _, p := range SkinUV.Parts() {
		paintPart(img, p, edBlack, edBlackHi, edBlackLo)
	}

	hx, hy := 8, 8
	Fill(img, hx, hy, 8, 8, edBlack)
	HLine(img, hx, hy, 8, edBlackHi)
	HLine(img, hx+1, hy+3, 6, edVisor)
	Set(img, hx+2, hy+3, edCrimHi)
	Set(img, hx+5, hy+3, edCrimHi)
	Set(img, hx+1, hy+3, edCrim)
	Set(img, hx+6, hy+3, edCrim)
	Set(img, hx+6, hy+1, edRust)
	Set(img, hx+5, hy+2, edRust)
	Set(img, hx+1, hy+6, edRust)
	HLine(img, hx, hy+7, 8, edBlackLo)

	Fill(img, 8, 0, 8, 8, edBlack)
	Set(img, 10, 0, edBlackHi)
	Set(img, 13, 0, edBlackHi)
	Set(img, 10, 1, edBlackHi)
	Set(img, 13, 1, edBlackHi)

	bx, by := 20, 20
	Fill(img, bx, by, 8, 12, edBlack)
	HLine(img, bx, by, 8, edBlackHi)
	// Crimson slash mark.
	Set(img, bx+2, by+3, edCrim)
	Set(img, bx+3, by+4, edCrim)
	Set(img, bx+4, by+5, edCrim)
	Set(img, bx+5, by+4, edCrim)
	Set(img, bx+4, by+3, edCrim)
	// Rust patches.
	Set(img, bx+6, by+2, edRust)
	Set(img, bx+1, by+7, edRust)
	Set(img, bx+6, by+8, edRust)
	// Jagged plate lines.
	HLine(img, bx, by+6, 4, edBlackLo)
	HLine(img, bx+4, by+7, 4, edBlackLo)
	Set(img, bx, by+1, edCrim)
	Set(img, bx+7, by+1, edCrim)
	HLine(img, bx, by+11, 8, edBlackLo)
	VLine(img, bx+7, by, 12, edBlackLo)

	bkx, bky := 32, 20
	Fill(img, bkx, bky, 8, 12, edBlackLo)
	VLine(img, bkx+2, bky+2, 6, edRust)
	VLine(img, bkx+5, bky+3, 5, edRust)

	for _, arm := range SkinUV.Arms() {
		r := arm.Front
		Shade(img, r.X, r.Y, r.W, r.H, edBlack, edBlackHi, edBlackLo)
		VLine(img, r.X+1, r.Y+2, 4, edCrim)
	}

	for _, leg := range SkinUV.Legs() {
		r := leg.Front
		Shade(img, r.X, r.Y, r.W, r.H, edBlack, edBlackHi, edBlackLo)
		Fill(img, r.X, r.Y+r.H-4, r.W, 4, edBlackLo)
	}
}

// PaintBossSiegeLord paints the siege lord boss skin: black plate with a
// gold crown, gold borders, crimson skull emblem, and war cloak.
func PaintBossSiegeLord(img *image.RGBA) {
	for _, p := range SkinUV.Parts() {
		paintPart(img, p, slBlack, slBlackHi, slBlackLo)
	}

	// Head front: dual eye slits, gold jaw trim and horn suggestions.
	hx, hy := 8, 8
	Fill(img, hx, hy, 8, 8, slBlack)
	HLine(img, hx, hy, 8, slBlackHi)
	HLine(img, hx, hy+7, 8, slGold)
	Set(img, hx+1, hy+3, slCrim)
	Set(img, hx+2, hy+3, slCrimHi)
	Set(img, hx+5, hy+3, slCrimHi)
	Set(img, hx+6, hy+3, slCrim)
	Set(img, hx+1, hy+2, slGlowDark)
	Set(img, hx+2, hy+2, slGlowMid)
	Set(img, hx+5, hy+2, slGlowMid)
	Set(img, hx+6, hy+2, slGlowDark)
	Set(img, hx, hy, slGoldHi)
	Set(img, hx+1, hy, slGold)
	Set(img, hx+6, hy, slGold)
	Set(img, hx+7, hy, slGoldHi)
	Set(img, hx, hy+1, slGold)
	Set(img, hx+7, hy+1, slGold)

	// Head top: crown crenellation along the front edge.
	tx, ty := 8, 0
	Fill(img, tx, ty, 8, 8, slBlack)
	HLine(img, tx, ty+6, 8, slGold)
	HLine(img, tx, ty+7, 8, slGoldHi)
	for _, dx := range []int{0, 2, 4, 6} {
		Set(img, tx+dx, ty+5, slGoldHi)
	}
	for _, dx := range []int{1, 3, 5, 7} {
		Set(img, tx+dx, ty+4, slGold)
	}

	// Head sides: gold trim.
	for _, r := range []Rect{SkinUV.Head.Right, SkinUV.Head.Left} {
		Fill(img, r.X, r.Y, r.W, r.H, slBlack)
		HLine(img, r.X, r.Y+r.H-1, r.W, slGold)
	}

	// Body front: gold borders framing a crimson skull.
	bx, by := 20, 20
	Fill(img, bx, by, 8, 12, slBlack)
	HLine(img, bx, by, 8, slGold)
	VLine(img, bx, by, 12, slGoldLo)
	VLine(img, bx+7, by, 12, slGoldLo)
	HLine(img, bx+1, by+2, 6, slGoldLo)
	HLine(img, bx+1, by+7, 6, slGoldLo)
	VLine(img, bx+1, by+2, 6, slGoldLo)
	VLine(img, bx+6, by+2, 6, slGoldLo)
	Set(img, bx+2, by+3, slCrimHi)
	Set(img, bx+5, by+3, slCrimHi)
	Set(img, bx+3, by+4, slCrim)
	Set(img, bx+4, by+4, slCrim)
	Set(img, bx+3, by+5, slCrimHi)
	Set(img, bx+4, by+5, slCrimHi)
	Set(img, bx+2, by+5, slCrim)
	Set(img, bx+5, by+5, slCrim)
	Set(img, bx+2, by+6, slCrim)
	Set(img, bx+5, by+6, slCrim)
	Set(img, bx+3, by+6, slCrimHi)
	Set(img, bx+4, by+6, slCrimHi)
	HLine(img, bx, by+8, 8, slGold)
	Set(img, bx+3, by+8, slGoldHi)
	Set(img, bx+4, by+8, slGoldHi)
	HLine(img, bx, by+11, 8, slGoldLo)

	// Body back: crimson war cloak with gold trim.
	bkx, bky := 32, 20
	Fill(img, bkx, bky, 8, 12, slCrim)
	HLine(img, bkx, bky, 8, slGold)
	VLine(img, bkx, bky, 12, slGoldLo)
	VLine(img, bkx+7, bky, 12, slGoldLo)
	VLine(img, bkx+2, bky+2, 8, slCloakFold)
	VLine(img, bkx+5, bky+2, 8, slCloakFold)
	HLine(img, bkx, bky+11, 8, slGoldLo)

	for _, arm := range SkinUV.Arms() {
		r := arm.Front
		Shade(img, r.X, r.Y, r.W, r.H, slBlack, slBlackHi, slBlackLo)
		HLine(img, r.X, r.Y, r.W, slGold)
		VLine(img, r.X+1, r.Y+3, 4, slCrim)
		HLine(img, r.X, r.Y+r.H-3, r.W, slGoldLo)
		Fill(img, r.X, r.Y+r.H-2, r.W, 2, slBlackLo)
	}

	for _, leg := range SkinUV.Legs() {
		r := leg.Front
		Shade(img, r.X, r.Y, r.W, r.H, slBlack, slBlackHi, slBlackLo)
		Set(img, r.X+1, r.Y+4, slGold)
		Set(img, r.X+2, r.Y+4, slGold)
		Set(img, r.X+1, r.Y+5, slGoldLo)
		Set(img, r.X+2, r.Y+5, slGoldLo)
		HLine(img, r.X, r.Y+r.H-4, r.W, slGoldLo)
		Fill(img, r.X, r.Y+r.H-3, r.W, 3, slBlackLo)
	}
}
