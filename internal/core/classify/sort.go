package classify

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"solview/internal/core/domain"
)

// SortGroups orders artist groups in place by the given sort key. The sort is
// stable, so quantity ties keep the grouper's insertion order.
//
// Name sorts compare projected display names with a locale-aware collator so
// that accented artist names interleave sensibly. Names whose projection
// starts with a digit always sort to the end of the list, in both directions;
// short hash fallbacks like "a1b2..." should trail the human-readable names,
// not mix with them.
func SortGroups(groups []domain.ArtistGroup, key domain.SortKey) {
	switch key {
	case domain.SortQuantityDesc:
		sort.SliceStable(groups, func(i, j int) bool {
			return len(groups[i].Assets) > len(groups[j].Assets)
		})
	case domain.SortQuantityAsc:
		sort.SliceStable(groups, func(i, j int) bool {
			return len(groups[i].Assets) < len(groups[j].Assets)
		})
	case domain.SortNameAsc:
		sortByName(groups, false)
	case domain.SortNameDesc:
		sortByName(groups, true)
	}
}

func sortByName(groups []domain.ArtistGroup, desc bool) {
	coll := collate.New(language.English)
	sort.SliceStable(groups, func(i, j int) bool {
		a := ProjectDisplayName(groups[i].Name)
		b := ProjectDisplayName(groups[j].Name)

		aDigit := startsWithDigit(a)
		if bDigit := startsWithDigit(b); aDigit != bDigit {
			// Digit-leading names go last regardless of direction.
			return !aDigit
		}

		cmp := coll.CompareString(a, b)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func startsWithDigit(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsDigit(r)
}
