package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"solview/internal/core/domain"
)

const (
	dripBaseURL    = "https://drip.haus"
	unknownCreator = "Unknown"
)

// ResolveCreatorID derives the grouping identity for an asset. It walks a
// cascade of signals from strongest to weakest and never returns an empty
// string; an asset with no identity signal at all resolves to "Unknown".
//
// The cascade, first match wins:
//  1. drip.haus external URL -> "DRIP: <last path segment>"
//  2. any other external URL, stripped of scheme/www/trailing slash
//  3. an "artist" attribute value (trait key matched case-insensitively,
//     under either of the two upstream field-name aliases)
//  4. the token symbol
//  5. the first authority address; "@handle" addresses are rewritten to
//     "Handle @" so they sort with text instead of punctuation
//  6. the compression creator hash, truncated to "xxxx..."
func ResolveCreatorID(a domain.Asset) string {
	if a.ExternalURL == dripBaseURL || strings.HasPrefix(a.ExternalURL, dripBaseURL+"/") {
		seg := a.ExternalURL[strings.LastIndex(a.ExternalURL, "/")+1:]
		if seg == "" {
			seg = "drip.haus"
		}
		return "DRIP: " + seg
	}
	if a.ExternalURL != "" {
		return trimSiteURL(a.ExternalURL)
	}
	if v := artistAttribute(a.Attributes); v != "" {
		return v
	}
	if a.Symbol != "" {
		return a.Symbol
	}
	if a.CreatorAddress != "" {
		if name, ok := strings.CutPrefix(a.CreatorAddress, "@"); ok {
			return capitalizeFirst(name) + " @"
		}
		return a.CreatorAddress
	}
	if a.Compression != nil && a.Compression.CreatorHash != "" {
		return truncateHash(a.Compression.CreatorHash)
	}
	return unknownCreator
}

// ProjectDisplayName converts a raw creator id into the form shown to users
// and compared by the name sorts. The transforms are applied in sequence, so
// projecting an already-projected name is a no-op.
func ProjectDisplayName(creatorID string) string {
	name := strings.TrimPrefix(creatorID, "DRIP: ")
	name = strings.TrimPrefix(name, "LEGIT: ")
	if rest, ok := strings.CutPrefix(name, "@"); ok {
		name = capitalizeFirst(rest) + " @"
	}
	name = strings.TrimSuffix(name, " @")
	if hashLike(name) {
		return truncateHash(name)
	}
	return name
}

// trimSiteURL reduces an external URL to a bare site identity: no scheme, no
// leading "www.", no trailing slash.
func trimSiteURL(u string) string {
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimPrefix(u, "www.")
	return strings.TrimSuffix(u, "/")
}

// artistAttribute returns the value of the first non-empty "artist" trait,
// checking both trait key aliases.
func artistAttribute(attrs []domain.Attribute) string {
	for _, attr := range attrs {
		if attr.Value == "" {
			continue
		}
		if strings.EqualFold(attr.TraitType, "artist") || strings.EqualFold(attr.TraitKey, "artist") {
			return attr.Value
		}
	}
	return ""
}

// hashLike reports whether a creator id looks like a bare base58 identifier:
// 40+ characters with no embedded space.
func hashLike(s string) bool {
	return len(s) >= 40 && !strings.Contains(s, " ")
}

func truncateHash(s string) string {
	if len(s) > 4 {
		s = s[:4]
	}
	return s + "..."
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
