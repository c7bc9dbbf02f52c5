package texture

import "image/color"

func rgba(r, g, b, a uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: a} }

// Ally Knight
var (
	akSteelHi = rgba(208, 208, 216, 255)
	akSteel   = rgba(138, 142, 150, 255)
	akSteelLo = rgba(74, 78, 90, 255)
	akBlueHi  = rgba(91, 141, 217, 255)
	akBlue    = rgba(46, 91, 168, 255)
	akBlueLo  = rgba(26, 58, 110, 255)
	akGold    = rgba(212, 168, 50, 255)
	akDark    = rgba(30, 30, 40, 255)
	akEye     = rgba(180, 210, 255, 255)
	akBrown   = rgba(101, 80, 52, 255)
	akBrownLo = rgba(70, 55, 36, 255)
)

// Enemy Knight
var (
	ekSteelHi = rgba(144, 144, 152, 255)
	ekSteel   = rgba(88, 88, 96, 255)
	ekSteelLo = rgba(42, 42, 50, 255)
	ekRed     = rgba(160, 24, 24, 255)
	ekRedLo   = rgba(96, 16, 16, 255)
	ekDark    = rgba(25, 20, 20, 255)
	ekEye     = rgba(255, 60, 60, 255)
)

// Ally Archer
var (
	aaGreenHi = rgba(106, 174, 74, 255)
	aaGreen   = rgba(60, 122, 40, 255)
	aaGreenLo = rgba(30, 78, 20, 255)
	aaLeathHi = rgba(196, 154, 108, 255)
	aaLeath   = rgba(139, 105, 65, 255)
	aaLeathLo = rgba(90, 62, 34, 255)
	aaSkin    = rgba(212, 165, 116, 255)
	aaSkinLo  = rgba(180, 130, 90, 255)
	aaEye     = rgba(60, 40, 20, 255)
	aaTanHi   = rgba(232, 216, 176, 255)
	aaTan     = rgba(196, 170, 120, 255)
	aaTanLo   = rgba(138, 122, 80, 255)
	aaQuiver  = rgba(90, 58, 30, 255)
	aaArrow   = rgba(196, 160, 96, 255)
	aaFletch  = rgba(200, 50, 50, 255)
)

// Enemy Archer
var (
	eaGreenHi  = rgba(58, 64, 48, 255)
	eaGreen    = rgba(42, 45, 42, 255)
	eaGreenLo  = rgba(21, 24, 21, 255)
	eaMaroonHi = rgba(90, 48, 48, 255)
	eaMaroon   = rgba(74, 26, 26, 255)
	eaMaroonLo = rgba(45, 15, 15, 255)
	eaLeathHi  = rgba(90, 68, 48, 255)
	eaLeath    = rgba(58, 40, 24, 255)
	eaLeathLo  = rgba(42, 28, 16, 255)
	eaEye      = rgba(200, 50, 30, 255)
)

// Ally Wizard
var (
	awPurpHi  = rgba(139, 95, 199, 255)
	awPurp    = rgba(106, 49, 144, 255)
	awPurpLo  = rgba(68, 10, 95, 255)
	awGold    = rgba(251, 194, 0, 255)
	awGoldLo  = rgba(180, 140, 0, 255)
	awSkin    = rgba(212, 165, 116, 255)
	awBeardHi = rgba(240, 240, 245, 255)
	awBeard   = rgba(210, 210, 215, 255)
	awBeardLo = rgba(175, 175, 185, 255)
	awCyan    = rgba(127, 212, 255, 255)
	awCyanLo  = rgba(80, 160, 210, 255)
	awEyeInk  = rgba(50, 50, 80, 255)
)

// Enemy Wizard
var (
	ewDarkHi   = rgba(46, 24, 52, 255)
	ewDark     = rgba(27, 0, 54, 255)
	ewDarkLo   = rgba(15, 0, 32, 255)
	ewRed      = rgba(220, 20, 60, 255)
	ewFireHi   = rgba(255, 100, 30, 255)
	ewFire     = rgba(255, 69, 0, 255)
	ewFireLo   = rgba(180, 40, 0, 255)
	ewShadow   = rgba(20, 15, 20, 255)
	ewEye      = rgba(255, 0, 0, 255)
	ewGlowWide = rgba(80, 10, 20, 255)
	ewGlowDim  = rgba(60, 5, 15, 255)
)

// Ally Dark Knight
var (
	adNavyHi = rgba(30, 40, 70, 255)
	adNavy   = rgba(26, 26, 46, 255)
	adNavyLo = rgba(15, 15, 26, 255)
	adBlue   = rgba(0, 102, 255, 255)
	adBlueHi = rgba(102, 178, 255, 255)
	adBlueLo = rgba(0, 60, 160, 255)
	adSilver = rgba(136, 153, 170, 255)
)

// Enemy Dark Knight
var (
	edBlackHi = rgba(28, 28, 28, 255)
	edBlack   = rgba(13, 13, 13, 255)
	edBlackLo = rgba(0, 0, 0, 255)
	edCrim    = rgba(139, 0, 0, 255)
	edCrimHi  = rgba(204, 0, 0, 255)
	edRust    = rgba(74, 32, 32, 255)
	edVisor   = rgba(20, 5, 5, 255)
)

// Boss: Siege Lord
var (
	slBlackHi   = rgba(28, 28, 28, 255)
	slBlack     = rgba(13, 13, 13, 255)
	slBlackLo   = rgba(0, 0, 0, 255)
	slCrim      = rgba(180, 0, 0, 255)
	slCrimHi    = rgba(220, 30, 30, 255)
	slGoldHi    = rgba(255, 215, 0, 255)
	slGold      = rgba(218, 165, 32, 255)
	slGoldLo    = rgba(139, 105, 20, 255)
	slGlowDark  = rgba(60, 0, 0, 255)
	slGlowMid   = rgba(80, 5, 5, 255)
	slCloakFold = rgba(120, 0, 0, 255)
)

// Armor tier colors
var (
	pageHi     = rgba(232, 212, 168, 255)
	page       = rgba(210, 180, 140, 255)
	pageLo     = rgba(139, 105, 65, 255)
	squireHi   = rgba(200, 200, 200, 255)
	squire     = rgba(168, 168, 168, 255)
	squireLo   = rgba(80, 80, 80, 255)
	knightHi   = rgba(160, 192, 216, 255)
	knight     = rgba(70, 130, 180, 255)
	knightLo   = rgba(30, 61, 107, 255)
	knightSpec = rgba(255, 255, 255, 255)
	champHi    = rgba(255, 215, 0, 255)
	champ      = rgba(218, 165, 32, 255)
	champLo    = rgba(139, 105, 20, 255)
	champSpec  = rgba(255, 248, 220, 255)
	champGem   = rgba(220, 20, 60, 255)
	megaHi     = rgba(155, 89, 182, 255)
	mega       = rgba(75, 0, 130, 255)
	megaLo     = rgba(26, 26, 46, 255)
	megaGold   = rgba(255, 215, 0, 255)
	megaGlow   = rgba(200, 160, 255, 255)
)

// Blueprint icon colors
var (
	bpPaper   = rgba(212, 228, 247, 255)
	bpPaperHi = rgba(232, 242, 255, 255)
	bpPaperLo = rgba(170, 190, 220, 255)
	bpInk     = rgba(40, 70, 120, 255)
	bpSeal    = rgba(180, 40, 40, 255)
)
