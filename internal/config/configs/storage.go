package configs

import "time"

// Storage configures the S3-compatible object store holding creative
// payloads. Endpoint is optional and selects a non-AWS provider such as
// Cloudflare R2 or MinIO; path-style addressing is used in that case.
type Storage struct {
	Region    string `env:"REGION" envDefault:"auto"`
	Bucket    string `env:"BUCKET" envDefault:"creatives"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Endpoint  string `env:"ENDPOINT"`
	// ThumbnailPrefix is prepended to derived video thumbnail keys. The
	// full key is recorded on the creative, so changing it only affects
	// new uploads.
	ThumbnailPrefix string `env:"THUMBNAIL_PREFIX" envDefault:"thumbnails/"`
	// Timeout bounds single object operations other than uploads.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
