package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ardenpalme/app/internal/config/configs"
	"github.com/ardenpalme/app/internal/core/domain"
	"github.com/ardenpalme/app/internal/core/port"
)

var _ port.MediaProbe = (*Probe)(nil)

// ErrToolMissing is returned when ffmpeg is not installed.
var ErrToolMissing = errors.New("ffmpeg is not available")

// runner executes an external command and returns its stdout.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Probe implements port.MediaProbe. Images are decoded in process; videos
// go through ffprobe and ffmpeg.
type Probe struct {
	ffmpeg   string
	ffprobe  string
	maxWidth int
	seek     time.Duration
	run      runner
}

// New returns a Probe configured by cfg.
func New(cfg configs.Media) *Probe {
	maxWidth := cfg.ThumbMaxWidth
	if maxWidth <= 0 {
		maxWidth = 480
	}
	return &Probe{
		ffmpeg:   cfg.FFmpegPath,
		ffprobe:  cfg.FFprobePath,
		maxWidth: maxWidth,
		seek:     cfg.ThumbSeek,
		run:      runCommand,
	}
}

// Metadata derives dimensions (and duration for videos) of the file at
// path. Types it cannot inspect yield empty metadata and no error.
func (p *Probe) Metadata(ctx context.Context, path, contentType string) (domain.MediaMetadata, error) {
	ct := strings.ToLower(contentType)
	switch {
	case strings.HasPrefix(ct, "image/"):
		return imageMetadata(path)
	case domain.IsVideoType(ct):
		return p.videoMetadata(ctx, path)
	default:
		return domain.MediaMetadata{}, nil
	}
}

func imageMetadata(path string) (domain.MediaMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.MediaMetadata{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if errors.Is(err, image.ErrFormat) {
		// svg and friends
		return domain.MediaMetadata{}, nil
	}
	if err != nil {
		return domain.MediaMetadata{}, domain.NewValidationError("file", "cannot decode image: "+err.Error())
	}
	w, h := cfg.Width, cfg.Height
	return domain.MediaMetadata{Width: &w, Height: &h}, nil
}

type ffprobeOutput struct {
	Streams []struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func (p *Probe) videoMetadata(ctx context.Context, path string) (domain.MediaMetadata, error) {
	out, err := p.run(ctx, p.ffprobe,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height:format=duration",
		"-print_format", "json",
		path,
	)
	if errors.Is(err, exec.ErrNotFound) {
		slog.Debug("ffprobe not available, skipping video metadata", "path", path)
		return domain.MediaMetadata{}, nil
	}
	if err != nil {
		return domain.MediaMetadata{}, domain.NewValidationError("file", "cannot probe video: "+err.Error())
	}

	var parsed ffprobeOutput
	if err = json.Unmarshal(out, &parsed); err != nil {
		return domain.MediaMetadata{}, fmt.Errorf("parse ffprobe output: %w", err)
	}

	var md domain.MediaMetadata
	if len(parsed.Streams) > 0 {
		w, h := parsed.Streams[0].Width, parsed.Streams[0].Height
		md.Width, md.Height = &w, &h
	}
	if d, err := strconv.ParseFloat(parsed.Format.Duration, 64); err == nil {
		md.Duration = &d
	}
	return md, nil
}

// VideoThumbnail grabs a single frame near the start of the video, scales
// it down to the configured width and encodes it as JPEG.
func (p *Probe) VideoThumbnail(ctx context.Context, path string) ([]byte, error) {
	frame, err := p.grabFrame(ctx, path, p.seek)
	if err == nil && len(frame) == 0 && p.seek > 0 {
		// clip shorter than the seek offset
		frame, err = p.grabFrame(ctx, path, 0)
	}
	if errors.Is(err, exec.ErrNotFound) {
		return nil, ErrToolMissing
	}
	if err != nil {
		return nil, fmt.Errorf("extract frame: %w", err)
	}
	if len(frame) == 0 {
		return nil, errors.New("extract frame: no frame decoded")
	}

	img, _, err := image.Decode(bytes.NewReader(frame))
	if err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}

	buf := &bytes.Buffer{}
	if err = jpeg.Encode(buf, resizeImage(img, p.maxWidth), &jpeg.Options{Quality: 75}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Probe) grabFrame(ctx context.Context, path string, at time.Duration) ([]byte, error) {
	return p.run(ctx, p.ffmpeg,
		"-v", "error",
		"-ss", strconv.FormatFloat(at.Seconds(), 'f', 3, 64),
		"-i", path,
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-",
	)
}

// resizeImage scales src down to maxWidth keeping the aspect ratio.
// Smaller images are returned as is.
func resizeImage(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxWidth {
		return src
	}

	nw := maxWidth
	nh := int(float64(h) * float64(maxWidth) / float64(w))
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	imagedraw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, imagedraw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
