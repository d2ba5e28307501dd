// Package config handles configuration for the server,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the lunchboxd server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - MongoURI / DatabaseName: MongoDB connection settings.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: bearer token lifetime.
//   - StoreTimeout: per-call deadline for document store operations.
//   - ResultLimit: cap on records returned by a single list query.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings for images.
type Config struct {
	EndpointAddrHTTP      string        `envconfig:"SERVER_ADDRESS"`
	MongoURI              string        `envconfig:"MONGODB_URL"`
	DatabaseName          string        `envconfig:"DB_NAME"`
	SecretKey             string        `envconfig:"SECRET_KEY"`
	TokenValidityDuration time.Duration `envconfig:"TOKEN_VALIDITY_DURATION"`
	StoreTimeout          time.Duration `envconfig:"STORE_TIMEOUT"`
	ResultLimit           int64         `envconfig:"RESULT_LIMIT"`
	S3RootUser            string        `envconfig:"S3_ROOT_USER"`
	S3RootPassword        string        `envconfig:"S3_ROOT_PASSWORD"`
	S3Bucket              string        `envconfig:"S3_BUCKET"`
	S3Region              string        `envconfig:"S3_REGION"`
	S3BaseEndpoint        string        `envconfig:"S3_BASE_ENDPOINT"`
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.MongoURI = "mongodb://localhost:27017"
	c.DatabaseName = "lunchboxd"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.StoreTimeout = 5 * time.Second
	c.ResultLimit = 100
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "lunchboxd-media"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
