package texture

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
)

// Skins maps entity skin names to their painters, in generation order.
var Skins = []struct {
	Name  string
	Paint func(*image.RGBA)
}{
	{"mk_ally_knight", PaintAllyKnight},
	{"mk_ally_archer", PaintAllyArcher},
	{"mk_ally_wizard", PaintAllyWizard},
	{"mk_ally_dark_knight", PaintAllyDarkKnight},
	{"mk_enemy_knight", PaintEnemyKnight},
	{"mk_enemy_archer", PaintEnemyArcher},
	{"mk_enemy_wizard", PaintEnemyWizard},
	{"mk_enemy_dark_knight", PaintEnemyDarkKnight},
	{"mk_boss_siege_lord", PaintBossSiegeLord},
}

// iconTiers lists the armor tiers in progression order with their icon
// base colors.
var iconTiers = []struct {
	Name         string
	Base, Hi, Lo color.RGBA
}{
	{"page", page, pageHi, pageLo},
	{"squire", squire, squireHi, squireLo},
	{"knight", knight, knightHi, knightLo},
	{"champion", champ, champHi, champLo},
	{"mega_knight", mega, megaHi, megaLo},
}

// tokens lists the tier token icons and their center symbols.
var tokens = []struct {
	Name         string
	Base, Hi, Lo color.RGBA
	Symbol       []point
}{
	{"mk_squire_token", squire, squireHi, squireLo, tokenCross},
	{"mk_knight_token", knight, knightHi, knightLo, tokenCross},
	{"mk_champion_token", champ, champHi, champLo, tokenStar},
	{"mk_mega_knight_token", mega, megaHi, megaLo, tokenCrown},
}

// blueprints lists the blueprint icons and their ink drawings.
var blueprints = []struct {
	Name    string
	Drawing []point
}{
	{"mk_blueprint_small_tower", bpTower},
	{"mk_blueprint_gatehouse", bpGate},
	{"mk_blueprint_great_hall", bpHall},
}

// Generate writes every texture PNG under root: entity skins to
// entity/, icons to items/, armor model textures to models/armor/.
// logf receives one line per asset written; pass nil to silence it.
// Returns the number of files written.
func Generate(root string, logf func(format string, args ...any)) (int, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	entityDir := filepath.Join(root, "entity")
	itemsDir := filepath.Join(root, "items")
	armorDir := filepath.Join(root, "models", "armor")
	for _, dir := range []string{entityDir, itemsDir, armorDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	written := 0

	for _, s := range Skins {
		img := NewSkin()
		s.Paint(img)
		if err := WritePNG(filepath.Join(entityDir, s.Name+".png"), img); err != nil {
			return written, err
		}
		logf("  [skin] %s.png", s.Name)
		written++
	}

	for _, t := range ArmorTiers {
		main, legs := NewArmorTex(), NewArmorTex()
		PaintArmorTier(main, legs, t.Style)
		if err := WritePNG(filepath.Join(armorDir, t.Name+"_main.png"), main); err != nil {
			return written, err
		}
		written++
		if err := WritePNG(filepath.Join(armorDir, t.Name+"_legs.png"), legs); err != nil {
			return written, err
		}
		written++
		logf("  [armor] %s_main.png + %s_legs.png", t.Name, t.Name)
	}

	for _, tier := range iconTiers {
		for _, piece := range armorPieceShapes {
			img := NewIcon()
			PaintArmorIcon(img, tier.Name, piece.Name, piece.Shape, tier.Base, tier.Hi, tier.Lo)
			name := fmt.Sprintf("mk_%s_%s", tier.Name, piece.Name)
			if err := WritePNG(filepath.Join(itemsDir, name+".png"), img); err != nil {
				return written, err
			}
			logf("  [item] %s.png", name)
			written++
		}
	}

	for _, tk := range tokens {
		img := NewIcon()
		PaintTokenIcon(img, tk.Base, tk.Hi, tk.Lo, tk.Symbol)
		if err := WritePNG(filepath.Join(itemsDir, tk.Name+".png"), img); err != nil {
			return written, err
		}
		logf("  [token] %s.png", tk.Name)
		written++
	}

	for _, bp := range blueprints {
		img := NewIcon()
		PaintBlueprintIcon(img, bp.Drawing)
		if err := WritePNG(filepath.Join(itemsDir, bp.Name+".png"), img); err != nil {
			return written, err
		}
		logf("  [blueprint] %s.png", bp.Name)
		written++
	}

	return written, nil
}
