package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"solview/internal/core/classify"
	"solview/internal/core/domain"
	"solview/internal/core/ports"
)

// StatsService aggregates a wallet's asset set into per-category counts and
// top-artist tallies. It fetches once and evaluates every category over the
// same snapshot.
type StatsService struct {
	source ports.AssetSource
	rules  []classify.CustomArtistRule
	log    *zap.Logger
}

// NewStatsService creates a new stats service. log may be nil.
func NewStatsService(source ports.AssetSource, rules []classify.CustomArtistRule, log *zap.Logger) *StatsService {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatsService{source: source, rules: rules, log: log}
}

// StatsRequest describes one stats run.
type StatsRequest struct {
	Address string
	View    domain.ViewType

	// TopN caps the top-artist tally; 0 means 10.
	TopN int
}

// ArtistTally is one creator's asset count, keyed by projected display name.
type ArtistTally struct {
	Name  string
	Count int
}

// StatsResponse is the aggregate over one fetched asset set.
type StatsResponse struct {
	TotalAssets    int
	TotalArtists   int
	AnimatedAssets int
	CategoryCounts map[domain.Category]int
	TopArtists     []ArtistTally
}

// Execute fetches and aggregates. Like the gallery pipeline, a fetch failure
// degrades to empty aggregates with a logged warning.
func (s *StatsService) Execute(ctx context.Context, req StatsRequest) (*StatsResponse, error) {
	if req.View == "" {
		req.View = domain.ViewOwned
	}
	topN := req.TopN
	if topN <= 0 {
		topN = 10
	}

	var assets []domain.Asset
	if req.Address != "" {
		var err error
		assets, err = s.source.FetchAssets(ctx, req.Address, req.View)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.log.Warn("asset fetch failed, serving empty stats",
				zap.String("address", req.Address), zap.Error(err))
			assets = nil
		}
	}

	cls := classify.NewClassifier(assets, s.rules)
	counts := make(map[domain.Category]int, len(domain.Categories()))
	perArtist := make(map[string]int)
	animated := 0

	for i := range assets {
		for _, cat := range domain.Categories() {
			if cls.Matches(i, cat) {
				counts[cat]++
			}
		}
		perArtist[cls.CreatorID(i)]++
		if assets[i].HasAnimation() {
			animated++
		}
	}

	tallies := make([]ArtistTally, 0, len(perArtist))
	for id, n := range perArtist {
		tallies = append(tallies, ArtistTally{Name: classify.ProjectDisplayName(id), Count: n})
	}
	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].Count != tallies[j].Count {
			return tallies[i].Count > tallies[j].Count
		}
		return tallies[i].Name < tallies[j].Name
	})
	if len(tallies) > topN {
		tallies = tallies[:topN]
	}

	return &StatsResponse{
		TotalAssets:    len(assets),
		TotalArtists:   len(perArtist),
		AnimatedAssets: animated,
		CategoryCounts: counts,
		TopArtists:     tallies,
	}, nil
}
