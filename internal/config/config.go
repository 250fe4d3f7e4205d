package config

import "runtime"

// Config holds the paths and knobs shared by the CLI and the server.
type Config struct {
	DataDir   string
	ImagesDir string
	OutDir    string
	// FontDir optionally holds regular.ttf, bold.ttf, italic.ttf and
	// bolditalic.ttf. Empty means the bundled fonts.
	FontDir string
	Workers int
	Port    string
	// RemoteArtwork allows cards to fetch artwork by URL.
	RemoteArtwork bool
}

func Default() Config {
	return Config{
		DataDir:   "data",
		ImagesDir: "Images",
		OutDir:    "gen",
		Workers:   runtime.NumCPU(),
		Port:      "8080",
	}
}
