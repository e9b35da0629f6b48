package helper

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestDecodeDataURL(t *testing.T) {
	raw := pngBytes(t, 2, 2)
	b64 := base64.StdEncoding.EncodeToString(raw)

	data, ct, err := DecodeDataURL("data:image/png;base64," + b64)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
	assert.Equal(t, "image/png", ct)

	// base64 polos → content type dari sniffing
	data, ct, err = DecodeDataURL(b64)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
	assert.Equal(t, "image/png", ct)

	for _, bad := range []string{"", "   ", "data:image/png,abc", "data:image/png;base64", "!!!not base64!!!"} {
		_, _, err := DecodeDataURL(bad)
		assert.ErrorIs(t, err, ErrInvalidDataURL, bad)
	}
}

func TestPrepareImage(t *testing.T) {
	small := pngBytes(t, 4, 4)
	out, ct, ext, err := PrepareImage(small, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, small, out)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, ".png", ext)

	out, _, _, err = PrepareImage(pngBytes(t, 40, 20), 10, 10)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 5, img.Bounds().Dy())

	_, _, _, err = PrepareImage([]byte("%PDF-1.4 not an image"), 10, 10)
	assert.Error(t, err)
}

func TestPublicURLAndKey(t *testing.T) {
	assert.Equal(t, "https://cdn.test/a/b.png", publicURL("https://cdn.test/", "", "", "a/b.png"))
	assert.Equal(t, "https://bucket.oss-ap.aliyuncs.com/a/b.png",
		publicURL("", "https://oss-ap.aliyuncs.com", "bucket", "a/b.png"))
	assert.Empty(t, publicURL("", "", "", "a/b.png"))

	key, err := keyFromPublicURL("https://cdn.test", "https://cdn.test/students/x.png")
	require.NoError(t, err)
	assert.Equal(t, "students/x.png", key)

	key, err = keyFromPublicURL("", "https://bucket.oss-ap.aliyuncs.com/csms/teachers/y.jpg")
	require.NoError(t, err)
	assert.Equal(t, "csms/teachers/y.jpg", key)

	_, err = keyFromPublicURL("", "")
	assert.Error(t, err)
}

func TestBuildObjectKey(t *testing.T) {
	key := buildObjectKey("csms", "Student Photos", ".png")
	assert.True(t, strings.HasPrefix(key, "csms/student-photos/"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)
}

func TestMemoryBlobService(t *testing.T) {
	ctx := context.Background()
	blob := NewMemoryBlobService("https://cdn.test")

	url, err := blob.UploadImage(ctx, "students", "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngBytes(t, 3, 3)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.test/students/"))
	assert.Len(t, blob.Objects, 1)

	require.NoError(t, blob.DeleteByPublicURL(ctx, url))
	assert.Empty(t, blob.Objects)
	assert.Error(t, blob.DeleteByPublicURL(ctx, url))

	_, err = blob.UploadImage(ctx, "students", "data:text/plain;base64,"+base64.StdEncoding.EncodeToString([]byte("hello")))
	assert.Error(t, err)

	var disabled DisabledBlobService
	_, err = disabled.UploadFile(ctx, "certificates", "abc")
	assert.Error(t, err)
}
