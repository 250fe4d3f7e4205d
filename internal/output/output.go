package output

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"unicode"

	imagepkg "github.com/tdhowe/Ballquest/internal/image"
	"github.com/tdhowe/Ballquest/internal/util"
)

// FileName turns a card name into a safe PNG file name. Spaces become
// underscores; anything but letters, digits and -_.() is dropped,
// including path separators.
func FileName(cardName string) string {
	var b strings.Builder
	for _, r := range strings.ReplaceAll(cardName, " ", "_") {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("-_.()", r) {
			b.WriteRune(r)
		}
	}
	name := strings.Trim(b.String(), ".")
	if name == "" {
		name = "card"
	}
	return name + ".png"
}

// Writer stores rendered cards under Dir.
type Writer struct {
	Dir string
}

// Write encodes img in full before anything touches the disk, then
// writes it atomically. It returns the file's path.
func (w Writer) Write(cardName string, img image.Image) (string, error) {
	data, err := imagepkg.EncodePNG(img)
	if err != nil {
		return "", fmt.Errorf("encoding %q: %w", cardName, err)
	}
	if err := util.EnsureDir(w.Dir); err != nil {
		return "", err
	}
	path := filepath.Join(w.Dir, FileName(cardName))
	if err := util.WriteFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("writing %q: %w", cardName, err)
	}
	return path, nil
}
