package reconcile

import (
	"time"

	"gameframe/core/registry"
)

// DefaultTweetCap bounds the tweets linked to one game.
const DefaultTweetCap = 75

// DefaultBlacklist holds the keywords that drop an article by title.
var DefaultBlacklist = []string{"amazon", "trump", "morgage", "chuckit", "walmart"}

// Options tunes a merge pass.
type Options struct {
	// TweetCap is the number of tweets linked per game. Zero or less disables
	// the cap.
	TweetCap int

	// Blacklist holds keywords that reject an article when they appear as a
	// whole word in its conditioned title.
	Blacklist []string
}

// DefaultOptions returns the options used by the merge commands.
func DefaultOptions() Options {
	return Options{
		TweetCap:  DefaultTweetCap,
		Blacklist: append([]string(nil), DefaultBlacklist...),
	}
}

// Report summarizes one merge pass.
type Report struct {
	Kind registry.Kind `json:"kind"`

	// Scanned counts every registry row visited.
	Scanned int `json:"scanned"`

	// Skipped counts rows without any usable payload.
	Skipped int `json:"skipped"`

	// Merged counts rows that produced or enriched a canonical entity.
	Merged int `json:"merged"`

	// Malformed counts rows with a payload missing required fields. A row
	// can be both merged and malformed when a secondary payload is broken.
	Malformed int `json:"malformed"`

	// Rejected counts rows dropped by the blacklist or relevance filters.
	Rejected int `json:"rejected"`

	// Linked counts rows linked to their parent game.
	Linked int `json:"linked"`

	Duration time.Duration `json:"duration"`
}

// ActionType represents the type of registry mutation.
type ActionType string

const (
	// ActionDeleteRegistry deletes a row from the registry.
	ActionDeleteRegistry ActionType = "delete_registry"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the internal id of the registry row.
	Key int `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// CleanPlan lists the registry rows the cleaner would delete.
type CleanPlan struct {
	Kind    registry.Kind `json:"kind"`
	Actions []Action      `json:"actions"`
	Summary PlanSummary   `json:"summary"`
}

// PlanSummary provides aggregate counts for a clean plan.
type PlanSummary struct {
	// TotalRows is the number of registry rows scanned.
	TotalRows int `json:"total_rows"`

	// Invalid counts rows no provider validates.
	Invalid int `json:"invalid"`

	// Irrelevant counts valid rows judged unrelated to their game.
	Irrelevant int `json:"irrelevant"`

	// DeleteActions counts planned deletions.
	DeleteActions int `json:"delete_actions"`
}

// CleanOptions gates the execution of a clean plan.
type CleanOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the operator confirmed the deletion.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}
