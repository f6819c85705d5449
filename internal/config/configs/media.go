package configs

import "time"

// Media configures local metadata extraction. Video probing and thumbnail
// extraction shell out to ffprobe/ffmpeg.
type Media struct {
	FFmpegPath    string        `env:"FFMPEG_PATH" envDefault:"ffmpeg"`
	FFprobePath   string        `env:"FFPROBE_PATH" envDefault:"ffprobe"`
	ThumbMaxWidth int           `env:"THUMB_MAX_WIDTH" envDefault:"480"`
	ThumbSeek     time.Duration `env:"THUMB_SEEK" envDefault:"500ms"`
}
