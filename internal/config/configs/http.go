package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// CORSAllowedOrigins lists browser origins allowed to call the API.
	// Empty disables the CORS middleware.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	// MaxUploadBytes caps the size of a single multipart upload.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"209715200"`
	// RequestTimeout bounds ordinary API requests. Uploads are exempt.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
}
