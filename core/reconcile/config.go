package reconcile

import "strings"

// Config holds the merge settings loaded from the environment.
type Config struct {
	// TweetCap is the number of tweets linked per game.
	TweetCap int `mapstructure:"tweet_cap" default:"75"`
	// Blacklist is a comma separated list of title keywords that drop an article.
	Blacklist string `mapstructure:"blacklist" default:"amazon,trump,morgage,chuckit,walmart"`
	// Outlets is a comma separated NewsAPI outlet whitelist. Empty keeps the
	// built-in list.
	Outlets string `mapstructure:"outlets" default:""`
	// Trim prunes low-quality games and developers after merge-all.
	Trim bool `mapstructure:"trim" default:"false"`
}

// Options converts the configuration into merge options.
func (c Config) Options() Options {
	return Options{
		TweetCap:  c.TweetCap,
		Blacklist: SplitList(c.Blacklist),
	}
}

// OutletList returns the configured outlet whitelist, nil when unset.
func (c Config) OutletList() []string {
	return SplitList(c.Outlets)
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
