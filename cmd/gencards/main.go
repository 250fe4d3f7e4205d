// Command gencards renders every card in the data directory's CSVs to a
// PNG in the output directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/tdhowe/Ballquest/internal/cards"
	"github.com/tdhowe/Ballquest/internal/config"
	"github.com/tdhowe/Ballquest/internal/deck"
	imagepkg "github.com/tdhowe/Ballquest/internal/image"
	"github.com/tdhowe/Ballquest/internal/output"
	"github.com/tdhowe/Ballquest/internal/render"
	"github.com/tdhowe/Ballquest/internal/util"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	cfg    config.Config
	colors string
	slots  string
	sheet  string
	qr     bool
}

func parseFlags(args []string) (options, error) {
	o := options{cfg: config.FromEnv()}
	fs := flag.NewFlagSet("gencards", flag.ContinueOnError)
	fs.StringVar(&o.cfg.DataDir, "data", o.cfg.DataDir, "directory holding BallQuest.csv")
	fs.StringVar(&o.cfg.ImagesDir, "images", o.cfg.ImagesDir, "artwork directory")
	fs.StringVar(&o.cfg.OutDir, "out", o.cfg.OutDir, "output directory")
	fs.StringVar(&o.cfg.FontDir, "fonts", o.cfg.FontDir, "directory with regular/bold/italic/bolditalic .ttf files")
	fs.IntVar(&o.cfg.Workers, "workers", o.cfg.Workers, "cards rendered in parallel")
	fs.StringVar(&o.colors, "color", "", "comma-separated colors to render")
	fs.StringVar(&o.slots, "slot", "", "comma-separated slots to render")
	fs.StringVar(&o.sheet, "sheet", "", "also write a print sheet with this deck name")
	fs.BoolVar(&o.qr, "qr", false, "add a QR code of the deck list to the sheet")
	err := fs.Parse(args)
	return o, err
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg := o.cfg

	all, err := cards.LoadCardsFromDataDir(cfg.DataDir)
	var rowErr *cards.RowError
	switch {
	case errors.As(err, &rowErr):
		log.Println("Warning: skipped CSV rows:", err)
	case err != nil:
		return err
	}
	specs := cards.Filter(all, cards.FilterOptions{Colors: splitList(o.colors), Slots: splitList(o.slots)})

	fonts := render.DefaultFonts()
	if cfg.FontDir != "" {
		if fonts, err = render.LoadFonts(cfg.FontDir); err != nil {
			return err
		}
	}
	r := render.NewRenderer(fonts, imagepkg.NewLibrary(cfg.ImagesDir))

	results := output.RenderAll(r, output.Writer{Dir: cfg.OutDir}, specs, cfg.Workers)
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			log.Printf("card %q: %v", res.Name, res.Err)
			continue
		}
		log.Println("wrote", res.Path)
	}

	if o.sheet != "" {
		if err := writeSheet(cfg.OutDir, o.sheet, results, o.qr); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d cards failed", failed, len(specs))
	}
	return nil
}

// writeSheet lays the cards written by RenderAll out on one print sheet,
// reading them back from disk. Failed cards were already reported and are
// left off.
func writeSheet(outDir, name string, results []output.Result, withQR bool) error {
	d := deck.Deck{Name: name, Cards: map[string]int{}}
	var imgs []image.Image
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		img, err := imaging.Open(res.Path)
		if err != nil {
			log.Printf("Warning: card %q left off the sheet: %v", res.Name, err)
			continue
		}
		d.Cards[res.Name]++
		imgs = append(imgs, img)
	}

	var qr image.Image
	if withQR {
		q, err := imagepkg.GenerateQRImage(deck.ExportDeckText(d), 400)
		if err != nil {
			return err
		}
		qr = q
	}
	b, err := imagepkg.EncodePNG(imagepkg.ComposeSheet(imgs, qr, imagepkg.DefaultSheetOptions()))
	if err != nil {
		return err
	}
	if err := util.EnsureDir(outDir); err != nil {
		return err
	}
	path := filepath.Join(outDir, "sheet_"+output.FileName(name))
	if err := util.WriteFileAtomic(path, b); err != nil {
		return err
	}
	log.Println("wrote", path)
	return nil
}
