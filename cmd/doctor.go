package cmd

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/k1LoW/icongen"
	"github.com/k1LoW/icongen/config"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check icongen environment and configuration",
	Long:  `Check icongen environment and configuration to ensure everything is set up correctly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Color setup
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)
		yellow := color.New(color.FgYellow)
		bold := color.New(color.Bold)

		allOK := true

		// 1. Check configuration file
		cmd.Print("🔧 Checking configuration file ... ")

		cfg, err := config.Load(profile)
		if err != nil {
			red.Println("✗ CONFIG ERROR")
			cmd.Printf("   Error loading config: %v\n", err)
			allOK = false
			cfg = &config.Config{}
		} else {
			green.Println("✓ OK")
		}

		// 2. Check font candidates
		cmd.Print("🔍 Checking font candidates ... ")

		fontPath := ""
		for _, p := range append(cfg.FontPaths, icongen.DefaultFontPaths...) {
			if _, err := os.Stat(p); err == nil {
				fontPath = p
				break
			}
		}
		if fontPath == "" {
			// Not a failure: rendering falls back to the built-in face.
			yellow.Println("⚠ NONE FOUND")
			cmd.Println("   No system font found, icons will use the built-in bitmap face")
		} else {
			green.Println("✓ OK")
			cmd.Printf("   Font: %s\n", fontPath)
		}

		// 3. Check output directory writability
		cmd.Print("📁 Checking output directory ... ")

		dir := cfg.Out
		if dir == "" {
			dir = "."
		}
		probe := filepath.Join(dir, ".icongen-doctor")
		if err := os.WriteFile(probe, nil, 0o644); err != nil {
			red.Println("✗ NOT WRITABLE")
			cmd.Printf("   Cannot write to %s: %v\n", dir, err)
			allOK = false
		} else {
			_ = os.Remove(probe)
			green.Println("✓ OK")
			cmd.Printf("   Output directory: %s\n", dir)
		}

		// Final message
		cmd.Println()
		if allOK {
			bold.Printf("🎉 ")
			green.Print("All checks passed! You are ready to use icongen")
			bold.Println(".")
			cmd.Println()
			cmd.Println("Try generating the icons:")
			yellow.Println("  icongen gen")
		} else {
			red.Println("⚠️  Setup is incomplete.")
			cmd.Println("\nPlease fix the issues above to use icongen properly.")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
