package helper

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"net/http"
	"strings"

	"golang.org/x/image/draw"
)

var ErrInvalidDataURL = errors.New("invalid base64 payload")

const maxUploadSize = 5 * 1024 * 1024

// DecodeDataURL menerima "data:<mime>;base64,<payload>" atau base64 polos.
// Content type diambil dari header data URL, fallback sniff 512 byte.
func DecodeDataURL(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, "", ErrInvalidDataURL
	}
	declared := ""
	if strings.HasPrefix(s, "data:") {
		comma := strings.IndexByte(s, ',')
		if comma < 0 || !strings.HasSuffix(s[:comma], ";base64") {
			return nil, "", ErrInvalidDataURL
		}
		declared = strings.TrimSuffix(strings.TrimPrefix(s[:comma], "data:"), ";base64")
		s = s[comma+1:]
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(s); err != nil {
			return nil, "", ErrInvalidDataURL
		}
	}
	if len(data) == 0 {
		return nil, "", ErrInvalidDataURL
	}
	if len(data) > maxUploadSize {
		return nil, "", fmt.Errorf("file too large (max %d MB)", maxUploadSize/(1024*1024))
	}

	ct := declared
	if ct == "" {
		ct = sniffContentType(data)
	}
	return data, ct, nil
}

func sniffContentType(data []byte) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return http.DetectContentType(head)
}

func decodeImage(data []byte) (image.Image, string, error) {
	ct := sniffContentType(data)
	switch {
	case strings.Contains(ct, "jpeg"):
		img, err := jpeg.Decode(bytes.NewReader(data))
		return img, "image/jpeg", err
	case strings.Contains(ct, "png"):
		img, err := png.Decode(bytes.NewReader(data))
		return img, "image/png", err
	}
	return nil, ct, fmt.Errorf("unsupported image format: %s", ct)
}

/* =======================================================================
   Resize helper (keep aspect). Pakai CatmullRom.
======================================================================= */

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := int(math.Max(1, math.Round(float64(w)*scale)))
	nh := int(math.Max(1, math.Round(float64(h)*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// PrepareImage: decode jpeg/png, perkecil ke maxW x maxH, encode ulang
// dengan format asal. Mengembalikan bytes, content type, dan ekstensi.
func PrepareImage(data []byte, maxW, maxH int) ([]byte, string, string, error) {
	img, ct, err := decodeImage(data)
	if err != nil {
		return nil, "", "", err
	}
	scaled := downscaleIfNeeded(img, maxW, maxH)
	if scaled == img {
		return data, ct, extFor(ct), nil
	}

	buf := new(bytes.Buffer)
	switch ct {
	case "image/png":
		err = png.Encode(buf, scaled)
	default:
		err = jpeg.Encode(buf, scaled, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, "", "", fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), ct, extFor(ct), nil
}

func extFor(ct string) string {
	switch {
	case strings.Contains(ct, "png"):
		return ".png"
	case strings.Contains(ct, "jpeg"):
		return ".jpg"
	case strings.Contains(ct, "pdf"):
		return ".pdf"
	case strings.Contains(ct, "webp"):
		return ".webp"
	case strings.Contains(ct, "gif"):
		return ".gif"
	}
	return ".bin"
}
