package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/brickrouge-dev/brickrouge/internal/errors"
)

// Environment variables overriding brickrouge.json.
const (
	EnvPort       = "BRICKROUGE_PORT"
	EnvHost       = "BRICKROUGE_HOST"
	EnvLocale     = "BRICKROUGE_LOCALE"
	EnvS3Bucket   = "BRICKROUGE_S3_BUCKET"
	EnvS3Region   = "BRICKROUGE_S3_REGION"
	EnvS3Endpoint = "BRICKROUGE_S3_ENDPOINT"
)

// envFiles are read in order; earlier files win.
var envFiles = []string{".env.local", ".env"}

// ApplyEnv overlays the BRICKROUGE_* variables. Values come from the
// process environment first, then from .env.local and .env in dir.
func (c *Config) ApplyEnv(dir string) error {
	env, err := readEnv(dir)
	if err != nil {
		return err
	}

	if v := env[EnvPort]; v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.New(errors.CodeConfigInvalid).
				WithDetailf("%s must be a number, got %q", EnvPort, v)
		}
		c.Preview.Port = port
	}
	if v := env[EnvHost]; v != "" {
		c.Preview.Host = v
	}
	if v := env[EnvLocale]; v != "" {
		c.I18n.Locale = v
	}
	if v := env[EnvS3Bucket]; v != "" {
		c.Publish.Bucket = v
	}
	if v := env[EnvS3Region]; v != "" {
		c.Publish.Region = v
	}
	if v := env[EnvS3Endpoint]; v != "" {
		c.Publish.Endpoint = v
	}
	return nil
}

// readEnv merges the env files of dir under the process environment.
func readEnv(dir string) (map[string]string, error) {
	env := map[string]string{}
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, errors.New(errors.CodeConfigRead).
				WithDetail("Failed to parse " + path).
				Wrap(err)
		}
		for k, v := range values {
			if _, ok := env[k]; !ok {
				env[k] = v
			}
		}
	}

	for _, key := range []string{EnvPort, EnvHost, EnvLocale, EnvS3Bucket, EnvS3Region, EnvS3Endpoint} {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			env[key] = v
		}
	}
	return env, nil
}
