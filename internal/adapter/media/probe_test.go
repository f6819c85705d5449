package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardenpalme/app/internal/config/configs"
	"github.com/ardenpalme/app/internal/core/domain"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func newTestProbe(run runner) *Probe {
	p := New(configs.Media{FFmpegPath: "ffmpeg", FFprobePath: "ffprobe", ThumbMaxWidth: 8, ThumbSeek: 500_000_000})
	p.run = run
	return p
}

func TestMetadata_Image(t *testing.T) {
	path := writeTemp(t, "a.png", pngBytes(t, 12, 7))
	p := newTestProbe(nil)

	md, err := p.Metadata(context.Background(), path, "image/png")
	require.NoError(t, err)
	require.NotNil(t, md.Width)
	require.NotNil(t, md.Height)
	assert.Equal(t, 12, *md.Width)
	assert.Equal(t, 7, *md.Height)
	assert.Nil(t, md.Duration)
}

func TestMetadata_UnknownImageFormat(t *testing.T) {
	path := writeTemp(t, "a.svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))

	md, err := newTestProbe(nil).Metadata(context.Background(), path, "image/svg+xml")
	require.NoError(t, err)
	assert.Equal(t, domain.MediaMetadata{}, md)
}

func TestMetadata_CorruptImage(t *testing.T) {
	data := pngBytes(t, 4, 4)
	path := writeTemp(t, "a.png", data[:20])

	_, err := newTestProbe(nil).Metadata(context.Background(), path, "image/png")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMetadata_OtherTypes(t *testing.T) {
	md, err := newTestProbe(nil).Metadata(context.Background(), "/does/not/matter", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, domain.MediaMetadata{}, md)
}

func TestMetadata_Video(t *testing.T) {
	var gotName string
	p := newTestProbe(func(_ context.Context, name string, _ ...string) ([]byte, error) {
		gotName = name
		return []byte(`{"streams":[{"width":1920,"height":1080}],"format":{"duration":"12.500000"}}`), nil
	})

	md, err := p.Metadata(context.Background(), "/tmp/clip.mp4", "video/mp4")
	require.NoError(t, err)
	assert.Equal(t, "ffprobe", gotName)
	assert.Equal(t, 1920, *md.Width)
	assert.Equal(t, 1080, *md.Height)
	assert.InDelta(t, 12.5, *md.Duration, 1e-9)
}

func TestMetadata_VideoWithoutFFprobe(t *testing.T) {
	p := newTestProbe(func(context.Context, string, ...string) ([]byte, error) {
		return nil, &exec.Error{Name: "ffprobe", Err: exec.ErrNotFound}
	})

	md, err := p.Metadata(context.Background(), "/tmp/clip.mp4", "video/mp4")
	require.NoError(t, err)
	assert.Equal(t, domain.MediaMetadata{}, md)
}

func TestMetadata_VideoProbeFails(t *testing.T) {
	p := newTestProbe(func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("exit status 1: invalid data found")
	})

	_, err := p.Metadata(context.Background(), "/tmp/clip.mp4", "video/mp4")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVideoThumbnail(t *testing.T) {
	frame := pngBytes(t, 32, 16)
	var seeks []string
	p := newTestProbe(func(_ context.Context, name string, args ...string) ([]byte, error) {
		if name != "ffmpeg" {
			return nil, fmt.Errorf("unexpected command %s", name)
		}
		seeks = append(seeks, args[3])
		return frame, nil
	})

	out, err := p.VideoThumbnail(context.Background(), "/tmp/clip.mp4")
	require.NoError(t, err)
	assert.Equal(t, []string{"0.500"}, seeks)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
}

func TestVideoThumbnail_ShortClipFallsBackToFirstFrame(t *testing.T) {
	frame := pngBytes(t, 4, 4)
	var seeks []string
	p := newTestProbe(func(_ context.Context, _ string, args ...string) ([]byte, error) {
		seeks = append(seeks, args[3])
		if args[3] == "0.500" {
			return nil, nil
		}
		return frame, nil
	})

	_, err := p.VideoThumbnail(context.Background(), "/tmp/clip.mp4")
	require.NoError(t, err)
	assert.Equal(t, []string{"0.500", "0.000"}, seeks)
}

func TestVideoThumbnail_NoFFmpeg(t *testing.T) {
	p := newTestProbe(func(context.Context, string, ...string) ([]byte, error) {
		return nil, &exec.Error{Name: "ffmpeg", Err: exec.ErrNotFound}
	})

	_, err := p.VideoThumbnail(context.Background(), "/tmp/clip.mp4")
	assert.ErrorIs(t, err, ErrToolMissing)
}
