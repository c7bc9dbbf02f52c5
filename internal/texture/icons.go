package texture

import (
	"image"
	"image/color"
)

// NewIcon returns a blank 16x16 item icon canvas.
func NewIcon() *image.RGBA { return NewCanvas(16, 16) }

// Shape templates: '#' is filled, '.' is transparent.
var helmetShape = []string{
	"................",
	"................",
	".....######.....",
	"....########....",
	"...##########...",
	"...##########...",
	"...##########...",
	"...##########...",
	"...##########...",
	"...##########...",
	"...###....###...",
	"...##......##...",
	"....#......#....",
	"................",
	"................",
	"................",
}

var chestShape = []string{
	"................",
	"................",
	"...##......##...",
	"...############.",
	"....##########..",
	"....##########..",
	"....##########..",
	"....##########..",
	"....##########..",
	"....##########..",
	"....##########..",
	".....########...",
	".....###..###...",
	"................",
	"................",
	"................",
}

var legsShape = []string{
	"................",
	"................",
	"....##########..",
	"....##########..",
	"....##########..",
	"....####..####..",
	"....####..####..",
	"....####..####..",
	"....####..####..",
	"....####..####..",
	"....####..####..",
	"....####..####..",
	"....####..####..",
	"................",
	"................",
	"................",
}

var bootsShape = []string{
	"................",
	"................",
	"................",
	"................",
	"................",
	"....###..###....",
	"....###..###....",
	"....###..###....",
	"....###..###....",
	"....###..###....",
	"...####..####...",
	"...####..####...",
	"..#####..#####..",
	"................",
	"................",
	"................",
}

var tokenShape = []string{
	"................",
	"................",
	".....######.....",
	"....########....",
	"...##########...",
	"...##......##...",
	"...##......##...",
	"...##......##...",
	"...##......##...",
	"...##......##...",
	"...##########...",
	"....########....",
	".....######.....",
	"................",
	"................",
	"................",
}

var blueprintShape = []string{
	"................",
	"...##########...",
	"..############..",
	"..##........##..",
	"..##........##..",
	"..##........##..",
	"..##........##..",
	"..##........##..",
	"..##........##..",
	"..##........##..",
	"..##........##..",
	"..##........##..",
	"..############..",
	"...##########...",
	"................",
	"................",
}

type point struct{ x, y int }

// Token center symbols, in icon coordinates.
var (
	tokenCross = []point{{7, 5}, {8, 5}, {7, 6}, {8, 6}, {6, 7}, {9, 7}, {7, 7}, {8, 7}, {6, 8}, {9, 8}, {7, 8}, {8, 8}, {7, 9}, {8, 9}, {7, 10}, {8, 10}}
	tokenStar  = []point{{7, 5}, {8, 5}, {6, 6}, {9, 6}, {7, 6}, {8, 6}, {5, 7}, {6, 7}, {7, 7}, {8, 7}, {9, 7}, {10, 7}, {5, 8}, {6, 8}, {7, 8}, {8, 8}, {9, 8}, {10, 8}, {6, 9}, {9, 9}, {7, 9}, {8, 9}, {7, 10}, {8, 10}}
	tokenCrown = []point{{5, 6}, {6, 5}, {7, 6}, {8, 6}, {9, 5}, {10, 6}, {5, 7}, {6, 7}, {7, 7}, {8, 7}, {9, 7}, {10, 7}, {5, 8}, {6, 8}, {7, 8}, {8, 8}, {9, 8}, {10, 8}, {5, 9}, {6, 9}, {7, 9}, {8, 9}, {9, 9}, {10, 9}}
)

// Blueprint inner drawings.
var (
	bpTower = []point{{7, 4}, {8, 4}, {7, 5}, {8, 5}, {6, 6}, {7, 6}, {8, 6}, {9, 6}, {6, 7}, {7, 7}, {8, 7}, {9, 7}, {7, 8}, {8, 8}, {7, 9}, {8, 9}, {7, 10}, {8, 10}, {7, 11}, {8, 11}}
	bpGate  = []point{{5, 4}, {6, 4}, {9, 4}, {10, 4}, {5, 5}, {6, 5}, {9, 5}, {10, 5}, {5, 6}, {6, 6}, {7, 6}, {8, 6}, {9, 6}, {10, 6}, {5, 7}, {6, 7}, {7, 7}, {8, 7}, {9, 7}, {10, 7}, {5, 8}, {6, 8}, {9, 8}, {10, 8}, {5, 9}, {6, 9}, {9, 9}, {10, 9}, {5, 10}, {6, 10}, {7, 10}, {8, 10}, {9, 10}, {10, 10}}
	bpHall  = []point{{4, 5}, {5, 5}, {6, 5}, {7, 5}, {8, 5}, {9, 5}, {10, 5}, {11, 5}, {4, 6}, {5, 6}, {6, 6}, {7, 6}, {8, 6}, {9, 6}, {10, 6}, {11, 6}, {5, 7}, {6, 7}, {7, 7}, {8, 7}, {9, 7}, {10, 7}, {5, 8}, {6, 8}, {7, 8}, {8, 8}, {9, 8}, {10, 8}, {5, 9}, {6, 9}, {7, 9}, {8, 9}, {9, 9}, {10, 9}, {5, 10}, {6, 10}, {7, 10}, {8, 10}, {9, 10}, {10, 10}}
)

func shapeFilled(shape []string, x, y int) bool {
	return y >= 0 && y < 16 && x >= 0 && x < 16 && shape[y][x] == '#'
}

// PaintIconShape paints a 16x16 icon from a shape template. Edge pixels
// get highlight on the top/left side and shadow on the bottom/right.
func PaintIconShape(img *image.RGBA, shape []string, base, hi, lo color.RGBA) {
	for y, row := range shape {
		for x := range row {
			if row[x] != '#' {
				continue
			}
			above := y > 0 && shape[y-1][x] == '#'
			below := y < 15 && shape[y+1][x] == '#'
			left := x > 0 && shape[y][x-1] == '#'
			right := x < 15 && shape[y][x+1] == '#'
			switch {
			case above && below && left && right:
				Set(img, x, y, base)
			case !above || !left:
				Set(img, x, y, hi)
			case !below || !right:
				Set(img, x, y, lo)
			default:
				Set(img, x, y, base)
			}
		}
	}
}

// paintIconDetail overlays detail pixels, clipped to the shape.
func paintIconDetail(img *image.RGBA, shape []string, pts []point, c color.RGBA) {
	for _, p := range pts {
		if shapeFilled(shape, p.x, p.y) {
			Set(img, p.x, p.y, c)
		}
	}
}

// armorPieceShapes maps item piece names to their icon templates, in the
// slot order of a full set.
var armorPieceShapes = []struct {
	Name  string
	Shape []string
}{
	{"helmet", helmetShape},
	{"chestplate", chestShape},
	{"leggings", legsShape},
	{"boots", bootsShape},
}

// PaintArmorIcon paints one tier's armor piece icon, including the
// champion and mega knight embellishments.
func PaintArmorIcon(img *image.RGBA, tier, piece string, shape []string, base, hi, lo color.RGBA) {
	PaintIconShape(img, shape, base, hi, lo)
	switch tier {
	case "champion":
		if piece == "chestplate" {
			Set(img, 7, 6, champGem)
			Set(img, 8, 6, champGem)
		}
		if piece == "helmet" {
			Set(img, 7, 2, champHi)
			Set(img, 8, 2, champHi)
		}
	case "mega_knight":
		// Gold trim along every upper edge.
		for y, row := range shape {
			for x := range row {
				if row[x] == '#' && !(y > 0 && shape[y-1][x] == '#') {
					Set(img, x, y, megaGold)
				}
			}
		}
		if piece == "chestplate" {
			Set(img, 7, 6, megaGlow)
			Set(img, 8, 6, megaGlow)
		}
	}
}

// PaintTokenIcon paints a tier token: the ring template plus a center
// symbol. The mega knight token carries a gold symbol, the rest cream.
func PaintTokenIcon(img *image.RGBA, base, hi, lo color.RGBA, symbol []point) {
	PaintIconShape(img, tokenShape, base, hi, lo)
	symColor := rgba(255, 240, 200, 255)
	if base == mega {
		symColor = megaGold
	}
	paintIconDetail(img, tokenShape, symbol, symColor)
}

// PaintBlueprintIcon paints a blueprint: paper template, ink drawing,
// and a red wax seal in the corner.
func PaintBlueprintIcon(img *image.RGBA, drawing []point) {
	PaintIconShape(img, blueprintShape, bpPaper, bpPaperHi, bpPaperLo)
	paintIconDetail(img, blueprintShape, drawing, bpInk)
	Set(img, 10, 10, bpSeal)
	Set(img, 11, 10, bpSeal)
	Set(img, 10, 11, bpSeal)
	Set(img, 11, 11, bpSeal)
}
