package conf

import "time"

type Log struct {
	Enable     bool   `json:"enable" env:"ENABLE"`
	Name       string `json:"name" env:"NAME"`
	MaxSize    int    `json:"max_size" env:"MAX_SIZE"`
	MaxBackups int    `json:"max_backups" env:"MAX_BACKUPS"`
	MaxAge     int    `json:"max_age" env:"MAX_AGE"`
	Compress   bool   `json:"compress" env:"COMPRESS"`
}

type Config struct {
	// Token is sent as the "token" form field of every upload when not empty.
	Token     string `json:"token" env:"API_KEY"`
	APIURL    string `json:"api_url" env:"API_URL"`
	UploadURL string `json:"upload_url" env:"UPLOAD_URL"`
	Zone      string `json:"zone" env:"ZONE"`

	DiscoveryTimeout time.Duration `json:"discovery_timeout" env:"DISCOVERY_TIMEOUT"`
	UploadTimeout    time.Duration `json:"upload_timeout" env:"UPLOAD_TIMEOUT"`
	// UploadLimit is in KiB/s, not positive means unlimited.
	UploadLimit int `json:"upload_limit" env:"UPLOAD_LIMIT"`

	Debug bool `json:"debug" env:"DEBUG"`
	Log   Log  `json:"log" envPrefix:"LOG_"`
}

func DefaultConfig() *Config {
	return &Config{
		APIURL:           DefaultAPIURL,
		UploadURL:        DefaultUploadURL,
		DiscoveryTimeout: 10 * time.Second,
		UploadTimeout:    30 * time.Second,
		UploadLimit:      -1,
		Log: Log{
			Enable:     false,
			Name:       "gofile-up.log",
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     28,
		},
	}
}
