// internals/helpers/oss/oss_client.go
package helper

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"csms_backend/internals/configs"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	PublicBase string
	Prefix     string // optional: "csms"
}

// NewOSSService membuat client dari config. Config tidak lengkap → error.
func NewOSSService(cfg configs.OSSConfig, prefix string) (*OSSService, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("missing config: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := oss.New(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// Verifikasi ringan lokasi bucket
	if loc, err := client.GetBucketLocation(cfg.Bucket); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s)", cfg.Bucket)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", cfg.Bucket, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   cfg.Endpoint,
		BucketName: cfg.Bucket,
		PublicBase: cfg.PublicBase,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (s *OSSService) UploadStream(ctx context.Context, key string, r io.Reader, contentType string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.Bucket.PutObject(key, r,
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	)
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

/* =======================================================================
   Public URL & Key utils
======================================================================= */

func (s *OSSService) PublicURL(key string) string {
	return publicURL(s.PublicBase, s.Endpoint, s.BucketName, key)
}

func publicURL(base, endpoint, bucket, key string) string {
	if key == "" {
		return ""
	}
	if base = strings.TrimSpace(base); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	if endpoint == "" || bucket == "" {
		return ""
	}
	end := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", bucket, end, key)
}

func (s *OSSService) KeyFromPublicURL(u string) (string, error) {
	return keyFromPublicURL(s.PublicBase, u)
}

func keyFromPublicURL(base, u string) (string, error) {
	if u == "" {
		return "", fmt.Errorf("empty url")
	}
	if base = strings.TrimSpace(base); base != "" {
		base = strings.TrimRight(base, "/") + "/"
		if strings.HasPrefix(u, base) {
			return strings.TrimPrefix(u, base), nil
		}
	}
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	if i := strings.Index(u, "/"); i >= 0 && i+1 < len(u) {
		return u[i+1:], nil
	}
	return "", fmt.Errorf("cannot extract key from url: %s", u)
}

// buildObjectKey: <prefix>/<dir>/<yyyymmdd_hhmmss>_<rand6><ext>
func buildObjectKey(prefix, dir, ext string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{prefix, dir} {
		if p = safePart(p); p != "" {
			parts = append(parts, p)
		}
	}
	name := fmt.Sprintf("%s_%s%s", time.Now().UTC().Format("20060102_150405"), randHex(3), ext)
	return strings.Join(append(parts, name), "/")
}

func safePart(s string) string {
	s = strings.ToLower(strings.Trim(strings.TrimSpace(s), "/"))
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '/' {
			return r
		}
		if r == ' ' || r == '_' {
			return '-'
		}
		return -1
	}, s)
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
