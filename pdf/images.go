package pdf

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"pkt.systems/slides"
	"pkt.systems/slides/catalog"
)

func imageTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "PNG"
	case ".jpg", ".jpeg":
		return "JPG"
	case ".gif":
		return "GIF"
	default:
		return ""
	}
}

func validateImagePath(path string) error {
	if imageTypeForPath(path) == "" {
		return fmt.Errorf("image %s: must be PNG, JPEG or GIF", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("image missing: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("image %s is a directory", path)
	}
	return nil
}

// image fits the picture into box keeping its aspect ratio and puts the
// description under it. Unreadable paths draw a framed placeholder.
func (d *deck) image(box catalog.Rect, area catalog.Area, img slides.Image, f face, spacing float64) error {
	captionSize := area.FontSize * captionScale
	captionHeight := 0.0
	if img.Description != "" {
		captionHeight = captionSize * spacing
	}
	room := catalog.Rect{Orig: box.Orig, Size: catalog.Point{X: box.Size.X, Y: box.Size.Y - captionHeight}}
	if room.Size.Y <= 0 {
		room.Size.Y = box.Size.Y
		captionHeight = 0
	}

	path := resolvePath(d.baseDir, img.Path)
	if err := validateImagePath(path); err != nil {
		d.logger.Warn("image replaced by placeholder", "path", path, "error", err)
		d.placeholder(room, img, f)
	} else {
		opts := gofpdf.ImageOptions{ImageType: imageTypeForPath(path)}
		info := d.pdf.RegisterImageOptions(path, opts)
		if err := d.pdf.Error(); err != nil {
			return fmt.Errorf("load image %s: %w", path, err)
		}
		iw, ih := info.Extent()
		if iw <= 0 || ih <= 0 {
			return fmt.Errorf("image %s: invalid dimensions", path)
		}
		scale := math.Min(room.Size.X/iw, room.Size.Y/ih)
		w, h := iw*scale, ih*scale
		x := room.Orig.X + horizontalOffset(area.Orientation.Horizontal, room.Size.X, w)
		y := room.Orig.Y + verticalOffset(area.Orientation.Vertical, box.Size.Y, h+captionHeight)
		d.pdf.ImageOptions(path, x, y, w, h, false, opts, 0, "")
		room = catalog.Rect{Orig: catalog.Point{X: room.Orig.X, Y: y}, Size: catalog.Point{X: room.Size.X, Y: h}}
	}
	if captionHeight > 0 {
		d.pdf.SetFontSize(captionSize)
		d.pdf.SetXY(box.Orig.X, room.Orig.Y+room.Size.Y)
		d.pdf.CellFormat(box.Size.X, captionHeight, f.tr(img.Description), "", 0, "CM", false, 0, "")
		d.pdf.SetFontSize(area.FontSize)
	}
	return d.pdf.Error()
}

func (d *deck) placeholder(room catalog.Rect, img slides.Image, f face) {
	d.pdf.SetDrawColor(128, 128, 128)
	d.pdf.SetLineWidth(1)
	d.pdf.Rect(room.Orig.X, room.Orig.Y, room.Size.X, room.Size.Y, "D")
	d.pdf.SetXY(room.Orig.X, room.Orig.Y)
	d.pdf.CellFormat(room.Size.X, room.Size.Y, f.tr(img.Path), "", 0, "CM", false, 0, "")
}
