package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Jwt struct {
	Secret        string        `envconfig:"SECRET" required:"true"`
	ExpiryMinutes int           `envconfig:"EXPIRY_MINUTES" default:"60"`
	Algorithm     string        `envconfig:"ALGORITHM" default:"HS256"`
	CookieName    string        `envconfig:"COOKIE_NAME" default:"access_token"`
	OtpTTL        time.Duration `envconfig:"OTP_TTL" default:"10m"`
}

// Expiry returns the configured token lifetime as a duration.
func (j *Jwt) Expiry() time.Duration {
	return time.Duration(j.ExpiryMinutes) * time.Minute
}

type Smtp struct {
	Host     string `envconfig:"HOST" default:"smtp.gmail.com"`
	Port     int    `envconfig:"PORT" default:"587"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	From     string `envconfig:"FROM"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"json"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

// Stream controls the dashboard server-push endpoint.
type Stream struct {
	PollInterval      time.Duration `envconfig:"POLL_INTERVAL" default:"2s"`
	HeartbeatInterval time.Duration `envconfig:"HEARTBEAT_INTERVAL" default:"15s"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Jwt       *Jwt       `envconfig:"JWT"`
	Smtp      *Smtp      `envconfig:"SMTP"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Stream    *Stream    `envconfig:"STREAM"`
}
