package config

import (
	"github.com/caarlos0/env/v9"
)

// Config carries the S3 endpoint and region passed through to the backend
// client. Credentials are never read here: the backends resolve those from
// their own environment.
type Config struct {
	AWSEndpointURL string `env:"AWS_ENDPOINT_URL_S3"`
	S3EndpointURL  string `env:"S3_ENDPOINT_URL"`
	Region         string `env:"S3_REGION"`
}

func NewConfig() (*Config, error) {
	cfg := Config{}

	err := env.Parse(&cfg)

	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Endpoint prefers the AWS SDK variable over the legacy S3_ENDPOINT_URL form.
func (c *Config) Endpoint() string {
	if c.AWSEndpointURL != "" {
		return c.AWSEndpointURL
	}
	return c.S3EndpointURL
}
