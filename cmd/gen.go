/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/k1LoW/icongen"
	"github.com/k1LoW/icongen/config"
	"github.com/spf13/cobra"
)

var (
	out  string
	stub bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "generate placeholder icon files",
	Long: `generate placeholder icon files.

Writes icon16.png, icon48.png and icon128.png into the output directory.
With --stub, text stubs are written under the same names instead of images.`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

// runGen is also the root command's default action, so a bare `icongen`
// invocation generates the icons into the current directory.
func runGen(cmd *cobra.Command, args []string) error {
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
	if stub {
		// Imaging capability explicitly absent: write text stubs only.
		opts = append(opts, icongen.WithRenderer(nil))
	} else if len(cfg.FontPaths) > 0 {
		opts = append(opts, icongen.WithRenderer(&icongen.RasterRenderer{
			FontPaths: append(cfg.FontPaths, icongen.DefaultFontPaths...),
		}))
	}
	g, err := icongen.New(opts...)
	if err != nil {
		return err
	}
	return g.GenerateAll(cmd.Context())
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default: current directory)")
	genCmd.Flags().BoolVarP(&stub, "stub", "", false, "write text stubs instead of images")
}
