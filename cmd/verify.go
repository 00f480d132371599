package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/k1LoW/icongen"
	"github.com/k1LoW/icongen/config"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "verify that existing icon files match a fresh render",
	Long: `verify that existing icon files match a fresh render.

Each icon is re-rendered in memory and compared against the file on disk,
first by checksum and then by perceptual hash.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(profile)
		if err != nil {
			return err
		}
		dir := out
		if dir == "" {
			dir = cfg.Out
		}
		if dir == "" {
			dir = "."
		}
		opts := []icongen.Option{
			icongen.WithDir(dir),
			icongen.WithLogger(newLogger()),
		}
		if len(cfg.FontPaths) > 0 {
			opts = append(opts, icongen.WithRenderer(&icongen.RasterRenderer{
				FontPaths: append(cfg.FontPaths, icongen.DefaultFontPaths...),
			}))
		}
		g, err := icongen.New(opts...)
		if err != nil {
			return err
		}
		results, err := g.Verify(cmd.Context())
		if err != nil {
			return err
		}
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)
		stale := 0
		for _, r := range results {
			switch r.Status {
			case icongen.VerifyOK:
				green.Print("✓ ")
				cmd.Printf("%s\n", r.Filename)
			default:
				stale++
				red.Print("✗ ")
				cmd.Printf("%s (%s)\n", r.Filename, r.Status)
			}
		}
		if stale > 0 {
			return fmt.Errorf("%d icon(s) missing or out of date, run `icongen gen`", stale)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVarP(&out, "out", "o", "", "directory containing the icons (default: current directory)")
}
