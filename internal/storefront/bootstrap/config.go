package bootstrap

import "time"

type StorefrontConfig struct {
	HttpPort string `env:"HTTP_PORT" envDefault:":8080"`

	BackendURL     string        `env:"BACKEND_URL,required"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`

	// JwtSecret enables signature checks on incoming tokens. Left empty, tokens are only decoded.
	JwtSecret string `env:"JWT_SECRET"`

	WebsiteID       string        `env:"WEBSITE_ID"`
	DefaultCurrency string        `env:"DEFAULT_CURRENCY" envDefault:"Kredi"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	OtelEndpoint string `env:"OTEL_ENDPOINT"`
}
