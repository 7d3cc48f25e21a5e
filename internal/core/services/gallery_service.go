package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"solview/internal/core/classify"
	"solview/internal/core/domain"
	"solview/internal/core/ports"
)

// ErrStale is returned when a newer Execute call was issued before this one
// finished. Callers driving interactive views drop stale results instead of
// rendering them over fresher ones.
var ErrStale = errors.New("gallery result superseded by a newer request")

// GalleryService runs the fetch-classify-group-sort pipeline. One Execute
// call performs at most one fetch; everything downstream of the fetch is
// synchronous and pure.
type GalleryService struct {
	source ports.AssetSource
	cache  ports.GalleryCache
	rules  []classify.CustomArtistRule
	log    *zap.Logger
	gen    atomic.Uint64
}

// NewGalleryService creates a new gallery service. cache may be nil to
// disable caching; log may be nil.
func NewGalleryService(source ports.AssetSource, cache ports.GalleryCache, rules []classify.CustomArtistRule, log *zap.Logger) *GalleryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &GalleryService{
		source: source,
		cache:  cache,
		rules:  rules,
		log:    log,
	}
}

// GalleryRequest describes one pipeline run.
type GalleryRequest struct {
	Address  string
	View     domain.ViewType
	Sort     domain.SortKey
	Filter   domain.Category
	Quantity domain.QuantityFilter

	// Refresh bypasses the cache for this run.
	Refresh bool

	// OnProgress, when set, receives a monotonically increasing percentage
	// in [0,100] as the pipeline advances. No step count is guaranteed.
	OnProgress func(percent int)
}

// GalleryResponse is the result of one pipeline run.
type GalleryResponse struct {
	Gallery domain.Gallery

	// TotalAssets is the size of the asset set the gallery was built from,
	// before category and quantity filtering.
	TotalAssets int

	// FromCache reports that the fetch-and-classify path was skipped.
	FromCache bool
}

// Execute loads, classifies, groups, and sorts the assets of one address.
//
// Failure semantics: a fetch error degrades to an empty gallery with a logged
// warning, and an empty address is a no-op; neither is an error. The only
// error conditions are a superseded request (ErrStale) and a cache write
// problem, which is also only logged.
func (s *GalleryService) Execute(ctx context.Context, req GalleryRequest) (*GalleryResponse, error) {
	report := func(p int) {
		if req.OnProgress != nil {
			req.OnProgress(p)
		}
	}

	applyRequestDefaults(&req)
	token := s.gen.Add(1)

	if req.Address == "" {
		report(100)
		return &GalleryResponse{}, nil
	}

	key := cacheKey(req.Address, req.View, req.Filter)
	if s.cache != nil && !req.Refresh {
		if groups, ok := s.cache.Get(key); ok {
			report(100)
			return s.finish(groups, req, token, true)
		}
	}

	report(5)
	assets, err := s.source.FetchAssets(ctx, req.Address, req.View)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.log.Warn("asset fetch failed, serving empty gallery",
			zap.String("address", req.Address),
			zap.String("view", string(req.View)),
			zap.Error(err))
		assets = nil
	}
	report(20)

	cls := classify.NewClassifier(assets, s.rules)
	filtered := make([]domain.Asset, 0, len(assets))
	for i := 0; i < cls.Len(); i++ {
		if cls.Matches(i, req.Filter) {
			filtered = append(filtered, assets[i])
		}
		report(20 + (i+1)*60/len(assets))
	}
	report(80)

	groups := classify.Group(filtered, s.groupKey(req.Filter))
	if s.cache != nil {
		if err := s.cache.Set(key, groups); err != nil {
			s.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	report(90)

	resp, err := s.finish(groups, req, token, false)
	if err != nil {
		return nil, err
	}
	resp.TotalAssets = len(assets)
	report(100)
	return resp, nil
}

// groupKey picks the grouping key selector for a category. Legit galleries
// group under the curated display name; everything else groups under the raw
// creator id.
func (s *GalleryService) groupKey(cat domain.Category) func(domain.Asset) string {
	if cat != domain.CategoryLegit {
		return classify.ResolveCreatorID
	}
	return func(a domain.Asset) string {
		id := classify.ResolveCreatorID(a)
		if name, ok := classify.MatchCustomArtist(s.rules, id, a.Name); ok {
			return name
		}
		return id
	}
}

// finish applies the quantity filter and sort to a (possibly cached) group
// list and guards against stale results. The input slice is not mutated.
func (s *GalleryService) finish(groups []domain.ArtistGroup, req GalleryRequest, token uint64, fromCache bool) (*GalleryResponse, error) {
	total := 0
	out := make([]domain.ArtistGroup, 0, len(groups))
	for _, g := range groups {
		total += len(g.Assets)
		if req.Quantity.Keep(len(g.Assets)) {
			out = append(out, g)
		}
	}
	classify.SortGroups(out, req.Sort)

	if s.gen.Load() != token {
		return nil, ErrStale
	}
	return &GalleryResponse{
		Gallery:     domain.Gallery{Groups: out},
		TotalAssets: total,
		FromCache:   fromCache,
	}, nil
}

func applyRequestDefaults(req *GalleryRequest) {
	if req.View == "" {
		req.View = domain.ViewOwned
	}
	if req.Sort == "" {
		req.Sort = domain.SortQuantityDesc
	}
	if req.Filter == "" {
		req.Filter = domain.CategoryAll
	}
	if req.Quantity == "" {
		req.Quantity = domain.QuantityAll
	}
}

func cacheKey(address string, view domain.ViewType, cat domain.Category) string {
	return fmt.Sprintf("%s_%s_%s", address, view, cat)
}
