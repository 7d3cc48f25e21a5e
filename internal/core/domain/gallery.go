package domain

// ArtistGroup is one creator's bucket of assets, in the order the grouper
// encountered them.
type ArtistGroup struct {
	Name   string  `json:"name"`
	Assets []Asset `json:"assets"`
}

// Gallery is the ordered, grouped result of one pipeline run. Group order is
// the sorter's output order and is meaningful to presentation.
type Gallery struct {
	Groups []ArtistGroup `json:"groups"`
}

// ArtistCount returns the number of creator groups.
func (g Gallery) ArtistCount() int {
	return len(g.Groups)
}

// AssetCount returns the total number of assets across all groups.
func (g Gallery) AssetCount() int {
	n := 0
	for _, grp := range g.Groups {
		n += len(grp.Assets)
	}
	return n
}

// AnimatedCount returns how many assets carry an animation URL.
func (g Gallery) AnimatedCount() int {
	n := 0
	for _, grp := range g.Groups {
		for _, a := range grp.Assets {
			if a.HasAnimation() {
				n++
			}
		}
	}
	return n
}
