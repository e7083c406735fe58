// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Defaults applied when neither flags nor the config file set a value.
const (
	DefaultMaxResults = 10
	DefaultMaxRetries = 3
	DefaultRetryDelay = 1 * time.Second
	DefaultTimeout    = 30 * time.Second
	DefaultUserAgent  = "websearch/0.1"
)

// HTTPConfig holds settings for the HTTP client used to reach the provider.
type HTTPConfig struct {
	// Timeout bounds each HTTP request. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is sent with every provider request.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SearchConfig holds settings for one retrieval.
type SearchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxResults caps the number of results returned (default 10).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// MaxRetries is the number of full attempts made before giving up (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// RetryDelay is the fixed wait between attempts (default 1s).
	RetryDelay time.Duration `json:"retry_delay" yaml:"retry_delay" mapstructure:"retry_delay"`
}

// Credentials identifies the caller to the Custom Search API.
type Credentials struct {
	// APIKey is the Google API key (GOOGLE_API_KEY).
	APIKey string `json:"-" yaml:"-"`

	// SearchEngineID is the programmable search engine ID (GOOGLE_SEARCH_CX).
	SearchEngineID string `json:"search_engine_id" yaml:"search_engine_id"`
}
