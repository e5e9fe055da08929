package covers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gameframe/core/registry"
	"gameframe/core/storage"
	"gameframe/core/workingset"
	"gameframe/feature/sources/igdb"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Report summarises one cover pass.
type Report struct {
	Scanned  int
	Linked   int
	Uploaded int
	Reused   int
	Missing  int
}

// Service selects game covers and uploads local ones to the bucket.
type Service struct {
	client storage.Client
	bucket string
	cfg    Config
	cache  *registry.Cache
	logger *zap.Logger
}

// NewService creates a new cover service.
func NewService(client storage.Client, bucket string, cfg Config, cache *registry.Cache, logger *zap.Logger) *Service {
	return &Service{client: client, bucket: bucket, cfg: cfg, cache: cache, logger: logger}
}

// ObjectName returns the bucket key of a game's uploaded cover.
func ObjectName(steamID, igdbID *int) string {
	return fmt.Sprintf("%d-%d.png", deref(steamID), deref(igdbID))
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func (s *Service) uploaded(cover string) bool {
	return s.cfg.CDN != "" && strings.HasPrefix(cover, strings.TrimSuffix(s.cfg.CDN, "/")+"/")
}

// Merge chooses a cover for every game of ws that has not been uploaded yet.
func (s *Service) Merge(ctx context.Context, ws *workingset.Set) (Report, error) {
	var report Report

	ix, err := registry.Load[registry.CachedGame](ctx, s.cache, "igdb_id")
	if err != nil {
		return report, err
	}

	for _, g := range ws.Games() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if s.uploaded(g.Cover) {
			continue
		}
		report.Scanned++

		choice := s.candidates(ix, g)
		if choice == nil {
			report.Missing++
			continue
		}
		if choice.Remote() {
			g.Cover = choice.URL
			report.Linked++
			continue
		}

		unique := ObjectName(g.SteamID, g.IGDBID)
		reused, err := s.upload(ctx, choice.Path, s.cfg.Prefix+unique)
		if err != nil {
			return report, err
		}
		if reused {
			report.Reused++
		} else {
			report.Uploaded++
		}
		g.Cover = strings.TrimSuffix(s.cfg.CDN, "/") + "/" + unique

		s.logger.Debug("Cover merged",
			zap.Int("game_id", g.ID),
			zap.String("cover", g.Cover),
			zap.Bool("reused", reused),
		)
	}

	s.logger.Info("Cover merge complete",
		zap.Int("scanned", report.Scanned),
		zap.Int("linked", report.Linked),
		zap.Int("uploaded", report.Uploaded),
		zap.Int("reused", report.Reused),
		zap.Int("missing", report.Missing),
	)
	return report, nil
}

func (s *Service) candidates(ix *registry.Index[registry.CachedGame], g *workingset.Game) *Candidate {
	var steamCapsule, igdbCover, igdbCapsule *Candidate

	if g.SteamID != nil {
		steamCapsule = s.local(g, filepath.Join(s.cfg.SteamDir, fmt.Sprintf("%d.png", *g.SteamID)))
	}
	if g.IGDBID != nil {
		for _, row := range ix.Get(*g.IGDBID) {
			if url, area := igdb.CoverArea(row.IGDBData.JSON); url != "" {
				igdbCover = &Candidate{URL: url, Area: area}
				break
			}
		}
		igdbCapsule = s.local(g, filepath.Join(s.cfg.IGDBDir, fmt.Sprintf("%d.png", *g.IGDBID)))
	}
	return Choose(steamCapsule, igdbCover, igdbCapsule)
}

// local reads a cached capsule. Unreadable images are logged and count as
// missing.
func (s *Service) local(g *workingset.Game, path string) *Candidate {
	c, err := localCandidate(path)
	if err != nil {
		s.logger.Warn("Skipping unreadable cover",
			zap.Int("game_id", g.ID),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}
	return c
}

// upload stores path under key unless the object already exists.
func (s *Service) upload(ctx context.Context, path, key string) (bool, error) {
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err == nil {
		return true, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open cover %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("failed to stat cover %s: %w", path, err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, f, info.Size(), minio.PutObjectOptions{
		ContentType: "image/png",
	})
	if err != nil {
		return false, fmt.Errorf("failed to upload cover %s: %w", key, err)
	}
	return false, nil
}
