package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// FromEnv resolves configuration from the process environment on top of
// the defaults. API_MODEL, when set, overrides both tool models.
func FromEnv() *Config {
	cfg := Default()

	envMap := map[string]*string{
		"API_BASE_URL":         &cfg.APIBaseURL,
		"API_KEY":              &cfg.APIKey,
		"API_QA_SYSTEM_PROMPT": &cfg.QASystemPrompt,
		"PRODUCT_SLUG":         &cfg.ProductSlug,
		"PRODUCT_NAME":         &cfg.ProductName,
	}
	for env, ptr := range envMap {
		if val := os.Getenv(env); val != "" {
			*ptr = val
		}
	}

	if model := os.Getenv("API_MODEL"); model != "" {
		cfg.SearchModel = model
		cfg.QAModel = model
	}

	return cfg
}

// LoadDotEnv loads variables from a dotenv file into the process
// environment. Values already present in the environment win. A missing
// file is not an error.
func LoadDotEnv(path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	for key, value := range values {
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}
