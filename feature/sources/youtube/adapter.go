package youtube

import (
	"encoding/json"
	"fmt"
	"time"

	"gameframe/core/reconcile"
	"gameframe/core/registry"
	"gameframe/core/utils"
	"gameframe/core/workingset"
)

// WatchURL is the public link of a video id.
const WatchURL = "https://www.youtube.com/watch?v="

// thumbnailSizes lists thumbnail keys from best to worst.
var thumbnailSizes = []string{"maxres", "standard", "high", "medium", "default"}

// Adapter reads YouTube Data API payloads.
type Adapter struct{}

// NewAdapter creates a new YouTube adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Provider returns the registry provider this adapter reads.
func (a *Adapter) Provider() registry.Provider {
	return registry.ProviderYouTube
}

// ExtractTitle returns the video title.
func (a *Adapter) ExtractTitle(kind registry.Kind, payload json.RawMessage) (reconcile.Title, error) {
	if kind != registry.KindVideo {
		return reconcile.Title{}, fmt.Errorf("%w: youtube has no %s titles", reconcile.ErrMissingPayload, kind)
	}
	var p videoPayload
	if err := reconcile.Decode(registry.ProviderYouTube, kind, payload, &p); err != nil {
		return reconcile.Title{}, err
	}
	return reconcile.Title{Name: p.Snippet.Title}, nil
}

// BuildVideo sets the link, thumbnail, channel, description and timestamp.
func (a *Adapter) BuildVideo(v *workingset.Video, payload json.RawMessage) error {
	if payload == nil {
		return nil
	}
	var p videoPayload
	if err := reconcile.Decode(registry.ProviderYouTube, registry.KindVideo, payload, &p); err != nil {
		return err
	}

	if id := utils.Field(p.ID, "videoId"); id != "" {
		v.VideoLink = WatchURL + id
	}
	if thumb := bestThumbnail(p.Snippet.Thumbnails); thumb != "" {
		v.Thumbnail = thumb
	}
	if p.Snippet.ChannelTitle != "" {
		v.Channel = p.Snippet.ChannelTitle
	}
	if p.Snippet.Description != "" {
		v.Description = p.Snippet.Description
	}
	if ts, err := time.Parse(time.RFC3339, p.Snippet.PublishedAt); err == nil {
		ts = ts.UTC()
		v.Timestamp = &ts
	}
	return nil
}

// ValidateVideo reports whether a payload names a video with a channel and a
// thumbnail.
func (a *Adapter) ValidateVideo(payload json.RawMessage) bool {
	if payload == nil {
		return false
	}
	var p videoPayload
	if err := reconcile.Decode(registry.ProviderYouTube, registry.KindVideo, payload, &p); err != nil {
		return false
	}
	v := validVideo{
		VideoID:   utils.Field(p.ID, "videoId"),
		Title:     p.Snippet.Title,
		Channel:   p.Snippet.ChannelTitle,
		Thumbnail: bestThumbnail(p.Snippet.Thumbnails),
	}
	return reconcile.Validate(v) == nil
}

func bestThumbnail(thumbs map[string]thumbnail) string {
	for _, size := range thumbnailSizes {
		if t, ok := thumbs[size]; ok && t.URL != "" {
			return t.URL
		}
	}
	return ""
}
