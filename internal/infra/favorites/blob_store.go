// Package favorites keeps the device-local favorite set in a gocloud.dev
// blob bucket under a single JSON object.
package favorites

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"homeat/config"
	"homeat/internal/domain/repository"
	"homeat/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
	"go.uber.org/fx"
)

// Key is the object holding the JSON array of favorited recipe IDs.
const Key = "homeat_favorites"

// BlobStore is the favorite set. It loads lazily on first use and writes
// the whole set back on every toggle.
type BlobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger

	mu     sync.Mutex
	loaded bool
	ids    []int64
}

var _ repository.FavoriteRepository = (*BlobStore)(nil)

// Params holds dependencies for the store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (repository.FavoriteRepository, error) {
	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Favorites.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open favorites bucket %q", params.Config.Favorites.BucketURL)
	}

	params.Logger.Info("Favorites bucket opened", slog.String("bucket_url", params.Config.Favorites.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStore(bucket, params.Logger), nil
}

// NewBlobStore wraps an already opened bucket. The caller owns the bucket.
func NewBlobStore(bucket *blob.Bucket, logger *slog.Logger) *BlobStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &BlobStore{bucket: bucket, logger: logger}
}

// Contains reports whether id is a favorite.
func (s *BlobStore) Contains(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	return slices.Contains(s.ids, id), nil
}

// IDs returns a copy of the set in insertion order.
func (s *BlobStore) IDs(ctx context.Context) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	return slices.Clone(s.ids), nil
}

// Toggle removes id if present, appends it otherwise, and persists the set.
// A failed write leaves the in-memory set unchanged.
func (s *BlobStore) Toggle(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	previous := s.ids
	idx := slices.Index(previous, id)
	wasFavorite := idx >= 0

	var next []int64
	if wasFavorite {
		next = slices.Delete(slices.Clone(previous), idx, idx+1)
	} else {
		next = append(slices.Clone(previous), id)
	}

	if err := s.persist(ctx, next); err != nil {
		return false, err
	}
	s.ids = next

	return wasFavorite, nil
}

func (s *BlobStore) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	data, err := s.bucket.ReadAll(ctx, Key)
	switch {
	case gcerrors.Code(err) == gcerrors.NotFound:
		s.ids = nil
	case err != nil:
		return errors.Wrap(err, "read favorites")
	default:
		var ids []int64
		if err := json.Unmarshal(data, &ids); err != nil {
			return errors.Wrapf(err, "decode %s", Key)
		}
		s.ids = ids
	}

	s.loaded = true
	s.logger.Debug("Favorites loaded", slog.Int("count", len(s.ids)))

	return nil
}

func (s *BlobStore) persist(ctx context.Context, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.bucket.WriteAll(ctx, Key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrap(err, "write favorites")
	}

	return nil
}
