package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, loaded from the environment (a .env
// file is honored through the godotenv autoload import in main).
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	// Base64-encoded HMAC secret shared with the token issuer. When empty,
	// every request is treated as anonymous and protected routes answer 401.
	JWTSecret string `env:"JWT_SECRET"`

	MonolitoURL       string        `env:"MONOLITO_URL"`
	UsuarioServiceURL string        `env:"USUARIO_SERVICE_URL"`
	HTTPTimeout       time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"10s"`

	// What to do when the post-commit monolito sync fails: "log" swallows the
	// failure, "propagar" reports it to the caller (the committed transition
	// stands either way).
	MonolitoSyncPolicy string `env:"MONOLITO_SYNC_POLICY" envDefault:"log"`

	UsuarioCacheTTL  time.Duration `env:"USUARIO_CACHE_TTL" envDefault:"10m"`
	UsuarioCacheSize int           `env:"USUARIO_CACHE_SIZE" envDefault:"1024"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
