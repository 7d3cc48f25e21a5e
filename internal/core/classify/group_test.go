package classify

import (
	"testing"

	"solview/internal/core/domain"
)

func TestGroup(t *testing.T) {
	assets := []domain.Asset{
		{ID: "1", Symbol: "AAA"},
		{ID: "2", Symbol: "BBB"},
		{ID: "3", Symbol: "AAA"},
		{ID: "4", Symbol: "aaa"}, // keys are case-sensitive
	}

	groups := Group(assets, ResolveCreatorID)

	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	// Groups appear in first-encounter order.
	wantNames := []string{"AAA", "BBB", "aaa"}
	for i, want := range wantNames {
		if groups[i].Name != want {
			t.Errorf("group %d name = %q, want %q", i, groups[i].Name, want)
		}
	}
	// Assets keep their relative input order inside a group.
	if groups[0].Assets[0].ID != "1" || groups[0].Assets[1].ID != "3" {
		t.Errorf("AAA group order = %v", []string{groups[0].Assets[0].ID, groups[0].Assets[1].ID})
	}
}

func TestGroupCustomKeySelector(t *testing.T) {
	rules := DefaultCustomArtists()
	assets := []domain.Asset{
		{ID: "1", Name: "Faceless #1", Symbol: "FCL"},
		{ID: "2", Name: "Faceless #2", Symbol: "OTHER"},
	}

	// Keyed by curated display name, both land in one bucket even though
	// their raw creator ids differ.
	keyFor := func(a domain.Asset) string {
		id := ResolveCreatorID(a)
		if name, ok := MatchCustomArtist(rules, id, a.Name); ok {
			return name
		}
		return id
	}
	groups := Group(assets, keyFor)
	if len(groups) != 1 || groups[0].Name != "Faceless" {
		t.Fatalf("groups = %+v, want single Faceless group", groups)
	}

	// Keyed by raw creator id they split.
	groups = Group(assets, ResolveCreatorID)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
}

func TestGroupEmpty(t *testing.T) {
	groups := Group(nil, ResolveCreatorID)
	if len(groups) != 0 {
		t.Errorf("got %d groups, want 0", len(groups))
	}
}
