package api

import (
	"errors"
	"image"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tdhowe/Ballquest/internal/cards"
	"github.com/tdhowe/Ballquest/internal/deck"
	imagepkg "github.com/tdhowe/Ballquest/internal/image"
	"github.com/tdhowe/Ballquest/internal/output"
	"github.com/tdhowe/Ballquest/internal/render"
)

// Server holds what the handlers share.
type Server struct {
	DataDir  string
	Renderer *render.Renderer
}

// loadCards reads the card CSVs, logging rows that were skipped.
func (s *Server) loadCards() ([]cards.CardSpec, error) {
	all, err := cards.LoadCardsFromDataDir(s.DataDir)
	var rowErr *cards.RowError
	if err != nil && errors.As(err, &rowErr) {
		log.Println("Warning: skipped CSV rows:", err)
		return all, nil
	}
	return all, err
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) filterHandler(c *gin.Context) {
	var opt cards.FilterOptions
	if err := c.BindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	all, err := s.loadCards()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := cards.Filter(all, opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

// renderHandler takes one card as JSON and answers with its PNG.
func (s *Server) renderHandler(c *gin.Context) {
	var spec cards.CardSpec
	if err := c.BindJSON(&spec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := spec.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	img, err := s.Renderer.Render(&spec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	b, err := imagepkg.EncodePNG(img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+output.FileName(spec.Name)+`"`)
	c.Data(http.StatusOK, "image/png", b)
}

// deck image: accepts a deck (name + card counts) and returns a print sheet
// of its cards, with a QR code of the deck list when qr is set.
func (s *Server) deckImageHandler(c *gin.Context) {
	var req struct {
		deck.Deck
		Columns int  `json:"columns"`
		QR      bool `json:"qr"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	all, err := s.loadCards()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	specs, err := req.Resolve(all)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cardImgs []image.Image
	for i := range specs {
		img, err := s.Renderer.Render(&specs[i])
		if err != nil {
			log.Println("card render error:", err)
			continue
		}
		cardImgs = append(cardImgs, img)
	}
	var qrImg image.Image
	if req.QR {
		q, err := imagepkg.GenerateQRImage(deck.ExportDeckText(req.Deck), 400)
		if err == nil {
			qrImg = q
		}
	}
	opt := imagepkg.DefaultSheetOptions()
	if req.Columns > 0 {
		opt.Columns = req.Columns
	}
	out := imagepkg.ComposeSheet(cardImgs, qrImg, opt)
	b, err := imagepkg.EncodePNG(out)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// QR edge length bounds for /api/qr, in pixels.
const (
	minQRSize = 64
	maxQRSize = 1024
)

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = "ballquest"
	}
	size := 400
	if sizeStr := c.Query("size"); sizeStr != "" {
		if v, err := strconv.Atoi(sizeStr); err == nil {
			size = min(max(v, minQRSize), maxQRSize)
		}
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
