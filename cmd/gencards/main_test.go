package main

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	imagepkg "github.com/tdhowe/Ballquest/internal/image"
	"github.com/tdhowe/Ballquest/internal/output"
)

const testCSV = `Name,Color,Slot,Type,Price,Appeal,Priority,Damage,Damage Type,HP,Capacity,Passive,Ability,Description
Test/Brown:Card,Brown,Trinket,Wild,2,-4,0,,,8,1,Destroy this:,Deal 10m damage.,
Test Blue Card,Blue,Head,,1,2/Beast,,,,6,3,,,This item comes from the witch of dag'raba in the fallen swamp.
Overfull,Red,Chest,,3,Red Match 3,2,6,Blunt,6,2,,,
`

func TestRun(t *testing.T) {
	data := t.TempDir()
	out := filepath.Join(t.TempDir(), "gen")
	require.NoError(t, os.WriteFile(filepath.Join(data, "BallQuest.csv"), []byte(testCSV), 0o644))

	err := run([]string{"-data", data, "-images", t.TempDir(), "-out", out, "-workers", "2", "-sheet", "All", "-qr"})
	require.NoError(t, err, "rows with too many stats are skipped at load time")

	for _, name := range []string{"TestBrownCard.png", "Test_Blue_Card.png", "sheet_All.png"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(out, "Overfull.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunFilters(t *testing.T) {
	data := t.TempDir()
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(data, "BallQuest.csv"), []byte(testCSV), 0o644))

	require.NoError(t, run([]string{"-data", data, "-images", t.TempDir(), "-out", out, "-color", "blue"}))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Test_Blue_Card.png", entries[0].Name())
}

func TestRunMissingData(t *testing.T) {
	assert.Error(t, run([]string{"-data", t.TempDir(), "-out", t.TempDir()}))
}

func TestWriteSheet(t *testing.T) {
	out := t.TempDir()
	card := filepath.Join(out, "A.png")
	require.NoError(t, imaging.Save(imaging.New(75, 105, color.Black), card))

	results := []output.Result{
		{Name: "A", Path: card},
		{Name: "B", Err: errors.New("render failed")},
		{Name: "C", Path: filepath.Join(out, "gone.png")},
	}
	require.NoError(t, writeSheet(out, "Mixed", results, false))

	sheet, err := imaging.Open(filepath.Join(out, "sheet_Mixed.png"))
	require.NoError(t, err)
	opt := imagepkg.DefaultSheetOptions()
	assert.Equal(t, opt.Gap+opt.CardHeight+opt.Gap, sheet.Bounds().Dy(), "only the one readable card is placed")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Red", "Blue"}, splitList(" Red, ,Blue "))
	assert.Nil(t, splitList(""))
}
