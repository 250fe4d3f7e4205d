package imagepkg

import (
	"image"
	"image/color"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/tdhowe/Ballquest/internal/cards"
)

// Library resolves card artwork and type icons under an images directory.
// Files that are missing, unreadable or outside Dir are replaced by a
// placeholder and a warning is logged; a card never fails to render for
// want of art. Only images that loaded are cached, so a file added later
// is picked up on the next lookup. A Library is safe for concurrent use.
type Library struct {
	Dir string
	// Remote lets cards fetch artwork from their ArtworkURL.
	Remote bool

	mu    sync.Mutex
	cache map[string]image.Image
}

func NewLibrary(dir string) *Library {
	return &Library{Dir: dir, cache: map[string]image.Image{}}
}

func (l *Library) Artwork(spec *cards.CardSpec) image.Image {
	if l.Remote && spec.ArtworkURL != "" {
		img, err := DownloadImage(spec.ArtworkURL)
		if err == nil {
			return img
		}
		log.Printf("Warning: artwork for %q from %s: %v", spec.Name, spec.ArtworkURL, err)
	}
	return l.load(spec.ArtworkPath(), Placeholder)
}

func (l *Library) TypeIcon(t cards.SpecialType) image.Image {
	return l.load(filepath.Join("types", t.String()+".png"), PlaceholderIcon)
}

// resolve joins rel onto Dir, refusing paths that climb out of it.
func (l *Library) resolve(rel string) (string, bool) {
	path := filepath.Join(l.Dir, rel)
	r, err := filepath.Rel(filepath.Clean(l.Dir), path)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", false
	}
	return path, true
}

func (l *Library) load(rel string, fallback func() image.Image) image.Image {
	path, ok := l.resolve(rel)
	if !ok {
		log.Printf("Warning: using placeholder image: %q is outside %s", rel, l.Dir)
		return fallback()
	}

	l.mu.Lock()
	img, ok := l.cache[path]
	l.mu.Unlock()
	if ok {
		return img
	}

	// decode outside the lock so workers don't queue behind disk reads
	img, err := imaging.Open(path)
	if err != nil {
		log.Println("Warning: using placeholder image:", err)
		return fallback()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cache == nil {
		l.cache = map[string]image.Image{}
	}
	if cached, ok := l.cache[path]; ok {
		return cached
	}
	l.cache[path] = img
	return img
}

var (
	placeholderLight = color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	placeholderDark  = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
)

var (
	placeholderOnce sync.Once
	placeholder     image.Image
	placeholderIcon image.Image
)

func buildPlaceholders() {
	placeholder = checkerboard(400, 4)
	placeholderIcon = checkerboard(64, 2)
}

// Placeholder is a 4×4 checkerboard standing in for missing artwork.
// Every call returns the same image; callers must not draw on it.
func Placeholder() image.Image {
	placeholderOnce.Do(buildPlaceholders)
	return placeholder
}

// PlaceholderIcon stands in for a missing type icon.
func PlaceholderIcon() image.Image {
	placeholderOnce.Do(buildPlaceholders)
	return placeholderIcon
}

func checkerboard(size, cells int) image.Image {
	img := imaging.New(size, size, placeholderLight)
	cell := size / cells
	square := imaging.New(cell, cell, placeholderDark)
	for row := 0; row < cells; row++ {
		for col := 0; col < cells; col++ {
			if (row+col)%2 == 1 {
				img = imaging.Paste(img, square, image.Pt(col*cell, row*cell))
			}
		}
	}
	return img
}
