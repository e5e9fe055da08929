package keyring

import (
	"fmt"
	"time"
)

// Provider names an API whose keys are kept in the registry.
type Provider string

const (
	ProviderNewsAPI Provider = "newsapi"
	ProviderIGDB    Provider = "igdb"
	ProviderTwitter Provider = "twitter"
	ProviderGoogle  Provider = "google"
)

// Providers lists every provider with a key table.
var Providers = []Provider{ProviderNewsAPI, ProviderIGDB, ProviderTwitter, ProviderGoogle}

// timeouts is how long a failed key rests before it is tried again.
var timeouts = map[Provider]time.Duration{
	ProviderNewsAPI: 24 * time.Hour,
	ProviderIGDB:    30 * 24 * time.Hour,
	ProviderTwitter: 15 * time.Minute,
	ProviderGoogle:  24 * time.Hour,
}

// Key is one API key row. Every provider has its own key_<provider> table.
type Key struct {
	KeyID  int    `gorm:"column:key_id;primaryKey"`
	APIKey string `gorm:"column:api_key;type:text"`
}

// ParseProvider validates a provider name.
func ParseProvider(name string) (Provider, error) {
	for _, p := range Providers {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown key provider %q (want one of %v)", name, Providers)
}

// Table returns the key table of p.
func (p Provider) Table() string {
	return "key_" + string(p)
}

// Timeout returns the rest period of a failed key.
func (p Provider) Timeout() time.Duration {
	return timeouts[p]
}

// Mask hides all but the last four characters of a key.
func Mask(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
