package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddrHTTP, ":8000")
	assert.Equal(t, c.MongoURI, "mongodb://localhost:27017")
	assert.Equal(t, c.DatabaseName, "lunchboxd")
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.TokenValidityDuration, 24*time.Hour)
	assert.Equal(t, c.StoreTimeout, 5*time.Second)
	assert.Equal(t, c.ResultLimit, int64(100))
	assert.Equal(t, c.S3RootUser, "admin")
	assert.Equal(t, c.S3RootPassword, "secretpassword")
	assert.Equal(t, c.S3Bucket, "lunchboxd-media")
	assert.Equal(t, c.S3Region, "us-east-1")
	assert.Equal(t, c.S3BaseEndpoint, "http://127.0.0.1:9000/")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.EndpointAddrHTTP, ":8000")
	assert.Equal(t, c.MongoURI, "mongodb://localhost:27017")
	assert.Equal(t, c.DatabaseName, "lunchboxd")
	assert.Equal(t, c.TokenValidityDuration, 24*time.Hour)
}

func TestParseJson_OverridesOnlyPresentKeys(t *testing.T) {
	var c Config
	c.LoadDefaults()

	partial := []byte(`{"mongo_uri": "mongodb://mongo:27017", "token_validity_duration": "1h"}`)

	var jc JsonConfig
	require.NoError(t, json.Unmarshal(partial, &jc))
	jc.apply(&c)

	assert.Equal(t, c.MongoURI, "mongodb://mongo:27017")
	assert.Equal(t, c.TokenValidityDuration, time.Hour)

	// keys absent from the file keep their layered values
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.ResultLimit, int64(100))
	assert.Equal(t, c.StoreTimeout, 5*time.Second)
}

func TestParseEnv_OverridesOnlyPresentVariables(t *testing.T) {
	var c Config
	c.LoadDefaults()

	t.Setenv("MONGODB_URL", "mongodb://mongo:27017")
	t.Setenv("DB_NAME", "lunchboxd_test")
	t.Setenv("TOKEN_VALIDITY_DURATION", "1h")

	parseEnv(&c)

	assert.Equal(t, c.MongoURI, "mongodb://mongo:27017")
	assert.Equal(t, c.DatabaseName, "lunchboxd_test")
	assert.Equal(t, c.TokenValidityDuration, time.Hour)

	// untouched by the overlay
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.EndpointAddrHTTP, ":8000")
}
