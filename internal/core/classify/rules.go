package classify

import (
	"fmt"
	"strings"
)

// RuleType selects how a CustomArtistRule matches an asset.
type RuleType string

const (
	// RuleCreatorIDPrefix matches when the creator id starts with the
	// rule value (case-sensitive).
	RuleCreatorIDPrefix RuleType = "creatorIdPrefix"
	// RuleNFTNamePrefix matches when the asset name starts with the rule
	// value (case-sensitive).
	RuleNFTNamePrefix RuleType = "nftNamePrefix"
	// RuleNFTNameContains matches when the asset name contains the rule
	// value, case-insensitively.
	RuleNFTNameContains RuleType = "nftNameContains"
	// RuleAnyContains matches when either the creator id or the asset name
	// contains any of the rule values, case-insensitively, unless the
	// asset name exactly equals one of the Exclude entries.
	RuleAnyContains RuleType = "anyContains"
)

// CustomArtistRule is one entry of the curated artist override table. Rules
// are evaluated in table order and the first match wins, so overlapping rules
// must keep their relative order.
type CustomArtistRule struct {
	Name    string   `yaml:"name"`
	Type    RuleType `yaml:"rule"`
	Values  []string `yaml:"values"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// matches evaluates a single rule. Prefix rule types only consult the first
// value; anyContains consults all of them.
func (r CustomArtistRule) matches(creatorID, nftName string) bool {
	switch r.Type {
	case RuleCreatorIDPrefix:
		return strings.HasPrefix(creatorID, r.Values[0])
	case RuleNFTNamePrefix:
		return nftName != "" && strings.HasPrefix(nftName, r.Values[0])
	case RuleNFTNameContains:
		return nftName != "" && containsFold(nftName, r.Values[0])
	case RuleAnyContains:
		hit := false
		for _, v := range r.Values {
			if containsFold(creatorID, v) || (nftName != "" && containsFold(nftName, v)) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
		// The exclude list is a hard veto on an otherwise-positive match.
		for _, ex := range r.Exclude {
			if strings.EqualFold(nftName, ex) {
				return false
			}
		}
		return true
	}
	return false
}

// MatchCustomArtist runs the rule table against a resolved creator id and an
// asset name. It returns the canonical display name of the first matching
// rule, or ok=false when no rule matches.
func MatchCustomArtist(rules []CustomArtistRule, creatorID, nftName string) (string, bool) {
	cleanID := stripLegitPrefix(creatorID)
	for _, r := range rules {
		if r.matches(cleanID, nftName) {
			return r.Name, true
		}
	}
	return "", false
}

// ValidateRules rejects a malformed rule table. Rule tables are static
// configuration, so a bad table is a startup error rather than a per-request
// condition.
func ValidateRules(rules []CustomArtistRule) error {
	for i, r := range rules {
		if r.Name == "" {
			return fmt.Errorf("rule %d: empty artist name", i)
		}
		switch r.Type {
		case RuleCreatorIDPrefix, RuleNFTNamePrefix, RuleNFTNameContains, RuleAnyContains:
		default:
			return fmt.Errorf("rule %d (%s): unknown rule type %q", i, r.Name, r.Type)
		}
		if len(r.Values) == 0 || r.Values[0] == "" {
			return fmt.Errorf("rule %d (%s): no match values", i, r.Name)
		}
	}
	return nil
}

// stripLegitPrefix removes a "LEGIT:" marker and any following whitespace.
// A no-op when the prefix is absent.
func stripLegitPrefix(creatorID string) string {
	if rest, ok := strings.CutPrefix(creatorID, "LEGIT:"); ok {
		return strings.TrimLeft(rest, " \t")
	}
	return creatorID
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
