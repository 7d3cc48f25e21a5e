package classify

import (
	"strings"

	"solview/internal/core/domain"
)

// spamSiblingThreshold is the number of assets sharing one creator id at
// which an unrecognized creator starts looking like a spray campaign.
const spamSiblingThreshold = 3

// DripStyle reports whether a resolved creator id belongs to the drip-style
// bucket: a "DRIP:" platform id, a rewritten "@" handle, a bare base58-looking
// identifier, or a curated extra - minus the curated exclusions.
func DripStyle(creatorID string) bool {
	for _, ex := range dripExclusions {
		if containsFold(creatorID, ex) {
			return false
		}
	}
	if strings.HasPrefix(creatorID, "DRIP:") || strings.HasSuffix(creatorID, " @") || hashLike(creatorID) {
		return true
	}
	for _, name := range additionalDripArtists {
		if containsFold(creatorID, name) {
			return true
		}
	}
	return false
}

// Classifier evaluates category membership for one fetched asset set. It
// resolves every creator id up front and counts siblings per creator, so the
// per-asset predicates stay O(1).
type Classifier struct {
	assets   []domain.Asset
	rules    []CustomArtistRule
	ids      []string
	siblings map[string]int
}

// NewClassifier builds a classifier over a snapshot of assets and a custom
// artist rule table.
func NewClassifier(assets []domain.Asset, rules []CustomArtistRule) *Classifier {
	c := &Classifier{
		assets:   assets,
		rules:    rules,
		ids:      make([]string, len(assets)),
		siblings: make(map[string]int, len(assets)),
	}
	for i := range assets {
		id := ResolveCreatorID(assets[i])
		c.ids[i] = id
		c.siblings[id]++
	}
	return c
}

// Len returns the number of assets in the set.
func (c *Classifier) Len() int {
	return len(c.assets)
}

// CreatorID returns the resolved creator id of asset i.
func (c *Classifier) CreatorID(i int) string {
	return c.ids[i]
}

// LegitName returns the curated display name for asset i when a custom artist
// rule matches it.
func (c *Classifier) LegitName(i int) (string, bool) {
	return MatchCustomArtist(c.rules, c.ids[i], c.assets[i].Name)
}

func (c *Classifier) isLegit(i int) bool {
	_, ok := c.LegitName(i)
	return ok
}

// IsSpam applies the spam policy to asset i. An asset is spam when any of the
// following holds:
//   - its creator has spamSiblingThreshold or more assets in the set and
//     carries no drip, legit, or base58 signal
//   - its name marks it as an airdrop claim
//   - it carries an external link and is neither drip-style nor legit
func (c *Classifier) IsSpam(i int) bool {
	id := c.ids[i]
	drip := DripStyle(id)
	legit := c.isLegit(i)
	if c.siblings[id] >= spamSiblingThreshold && !drip && !legit && !hashLike(id) {
		return true
	}
	if strings.HasPrefix(c.assets[i].Name, "Claim") {
		return true
	}
	if c.assets[i].ExternalURL != "" && !drip && !legit {
		return true
	}
	return false
}

// Matches reports whether asset i belongs to the given filter category.
// Categories are independent predicates; only "all"/"spam" are complementary
// by construction, and "???" is disjoint from everything recognized.
func (c *Classifier) Matches(i int, cat domain.Category) bool {
	switch cat {
	case domain.CategoryAll:
		return !c.IsSpam(i)
	case domain.CategoryDrip:
		return DripStyle(c.ids[i])
	case domain.CategoryLegit:
		return c.isLegit(i)
	case domain.CategorySpam:
		return c.IsSpam(i)
	case domain.CategoryUnclassified:
		if c.assets[i].ExternalURL != "" {
			return false
		}
		return !DripStyle(c.ids[i]) && !c.isLegit(i) && !c.IsSpam(i)
	default:
		return true
	}
}
