package classify

import "solview/internal/core/domain"

// Group partitions assets into per-creator buckets. The key selector is
// explicit because the pipeline keys legit galleries by curated display name
// and everything else by raw creator id; keeping the choice at the call site
// makes that coupling visible.
//
// Groups appear in the order their first asset was encountered, and assets
// keep their relative input order inside each group. Keys are compared
// exactly; any normalization happens upstream in the resolver or rule engine.
func Group(assets []domain.Asset, keyFor func(domain.Asset) string) []domain.ArtistGroup {
	index := make(map[string]int, len(assets))
	groups := make([]domain.ArtistGroup, 0, len(assets))

	for _, a := range assets {
		key := keyFor(a)
		if i, ok := index[key]; ok {
			groups[i].Assets = append(groups[i].Assets, a)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, domain.ArtistGroup{
			Name:   key,
			Assets: []domain.Asset{a},
		})
	}
	return groups
}
