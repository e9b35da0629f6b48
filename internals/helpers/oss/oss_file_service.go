package helper

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService adalah facade upload yang seragam untuk controller.
Input selalu base64 / data URL dari body JSON, output public URL.
*/
type BlobService interface {
	UploadImage(ctx context.Context, dir, dataURL string) (publicURL string, err error)
	UploadFile(ctx context.Context, dir, dataURL string) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

const (
	imageMaxW = 800
	imageMaxH = 800
)

// --------------------------------------------------
// Implementasi berbasis Aliyun OSS (OSSService)
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

func NewOSSBlobService(svc *OSSService) *OSSBlobService {
	return &OSSBlobService{svc: svc}
}

func (b *OSSBlobService) UploadImage(ctx context.Context, dir, dataURL string) (string, error) {
	data, _, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	out, ct, ext, err := PrepareImage(data, imageMaxW, imageMaxH)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return b.put(ctx, dir, out, ct, ext)
}

// UploadFile tanpa proses gambar (mis. sertifikat PDF).
func (b *OSSBlobService) UploadFile(ctx context.Context, dir, dataURL string) (string, error) {
	data, ct, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if strings.HasPrefix(ct, "image/") {
		if out, ict, ext, perr := PrepareImage(data, imageMaxW*2, imageMaxH*2); perr == nil {
			return b.put(ctx, dir, out, ict, ext)
		}
	}
	return b.put(ctx, dir, data, ct, extFor(ct))
}

func (b *OSSBlobService) put(ctx context.Context, dir string, data []byte, ct, ext string) (string, error) {
	key := buildObjectKey(b.svc.Prefix, dir, ext)
	if err := b.svc.UploadStream(ctx, key, bytes.NewReader(data), ct); err != nil {
		log.Printf("[OSS] upload %s gagal: %v", key, err)
		return "", fiber.NewError(fiber.StatusBadGateway, "Failed to upload file")
	}
	return b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := b.svc.KeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return b.svc.DeleteObject(ctx, key)
}

// --------------------------------------------------
// Tanpa konfigurasi OSS: semua upload → 503
// --------------------------------------------------

type DisabledBlobService struct{}

var errBlobDisabled = fiber.NewError(fiber.StatusServiceUnavailable, "File storage is not configured")

func (DisabledBlobService) UploadImage(context.Context, string, string) (string, error) {
	return "", errBlobDisabled
}

func (DisabledBlobService) UploadFile(context.Context, string, string) (string, error) {
	return "", errBlobDisabled
}

func (DisabledBlobService) DeleteByPublicURL(context.Context, string) error {
	return nil
}

// --------------------------------------------------
// MemoryBlobService: untuk test & dev lokal
// --------------------------------------------------

type MemoryBlobService struct {
	BaseURL string

	mu      sync.Mutex
	Objects map[string][]byte
}

func NewMemoryBlobService(baseURL string) *MemoryBlobService {
	return &MemoryBlobService{BaseURL: baseURL, Objects: map[string][]byte{}}
}

func (m *MemoryBlobService) UploadImage(ctx context.Context, dir, dataURL string) (string, error) {
	data, _, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	out, _, ext, err := PrepareImage(data, imageMaxW, imageMaxH)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return m.store(dir, ext, out), nil
}

func (m *MemoryBlobService) UploadFile(ctx context.Context, dir, dataURL string) (string, error) {
	data, ct, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return m.store(dir, extFor(ct), data), nil
}

func (m *MemoryBlobService) store(dir, ext string, data []byte) string {
	key := buildObjectKey("", dir, ext)
	m.mu.Lock()
	m.Objects[key] = data
	m.mu.Unlock()
	return publicURL(m.BaseURL, "", "", key)
}

func (m *MemoryBlobService) DeleteByPublicURL(ctx context.Context, u string) error {
	key, err := keyFromPublicURL(m.BaseURL, u)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Objects[key]; !ok {
		return fmt.Errorf("object %s not found", key)
	}
	delete(m.Objects, key)
	return nil
}
