package covers

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
)

// Candidate is one possible cover of a game.
type Candidate struct {
	// Path is a local file to upload. Empty for remote covers.
	Path string
	// URL is a remote cover linked as is.
	URL string
	// Area is the pixel area, 0 when unknown.
	Area int
}

// Remote reports whether the candidate is linked instead of uploaded.
func (c *Candidate) Remote() bool {
	return c != nil && c.Path == ""
}

// Choose picks the best cover. The Steam capsule wins whenever it exists;
// otherwise the larger of the IGDB cover and the IGDB capsule is used, the
// cover winning ties.
func Choose(steamCapsule, igdbCover, igdbCapsule *Candidate) *Candidate {
	if steamCapsule != nil {
		return steamCapsule
	}
	if igdbCover == nil {
		return igdbCapsule
	}
	if igdbCapsule != nil && igdbCapsule.Area > igdbCover.Area {
		return igdbCapsule
	}
	return igdbCover
}

// localCandidate returns the cached image at path, nil when it does not exist.
func localCandidate(path string) (*Candidate, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	return &Candidate{Path: path, Area: cfg.Width * cfg.Height}, nil
}
