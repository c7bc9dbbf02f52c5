package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mkharness/internal/texture"
)

var texturesOut string

var texturesCmd = &cobra.Command{
	Use:   "textures",
	Short: "Generate the resource pack's pixel art textures",
	Long: `Procedurally paints every texture in the Mega Knights resource pack:
entity skins (64x64), armor model textures (64x32), and item icons
(16x16). Output is deterministic, so regenerating overwrites the pack
with identical files unless a painter changed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := texturesOut
		if out == "" {
			out = cfg.TexturesPath()
		}
		fmt.Println("Generating Mega Knights textures...")
		n, err := texture.Generate(out, func(format string, args ...any) {
			fmt.Printf(format+"\n", args...)
		})
		if err != nil {
			return err
		}
		fmt.Printf("\nDone! %d textures written to %s\n", n, out)
		return nil
	},
}

func init() {
	texturesCmd.Flags().StringVar(&texturesOut, "out", "", "Output textures directory (default: the pack inside the workspace)")
}
