package classify

import (
	"testing"

	"solview/internal/core/domain"
)

func TestResolveCreatorID(t *testing.T) {
	tests := []struct {
		name  string
		asset domain.Asset
		want  string
	}{
		{
			name:  "drip url with artist segment",
			asset: domain.Asset{ExternalURL: "https://drip.haus/alice"},
			want:  "DRIP: alice",
		},
		{
			name:  "bare drip url",
			asset: domain.Asset{ExternalURL: "https://drip.haus"},
			want:  "DRIP: drip.haus",
		},
		{
			name:  "drip url with trailing slash",
			asset: domain.Asset{ExternalURL: "https://drip.haus/"},
			want:  "DRIP: drip.haus",
		},
		{
			name: "drip wins over every other signal",
			asset: domain.Asset{
				ExternalURL:    "https://drip.haus/zeta",
				Symbol:         "XYZ",
				CreatorAddress: "someaddress",
				Attributes:     []domain.Attribute{{TraitType: "artist", Value: "Someone"}},
			},
			want: "DRIP: zeta",
		},
		{
			name:  "generic url stripped of scheme and www",
			asset: domain.Asset{ExternalURL: "https://www.example.com/"},
			want:  "example.com",
		},
		{
			name:  "http url stripped",
			asset: domain.Asset{ExternalURL: "http://gallery.art"},
			want:  "gallery.art",
		},
		{
			name: "artist attribute, case-insensitive trait key",
			asset: domain.Asset{
				Attributes: []domain.Attribute{
					{TraitType: "Background", Value: "blue"},
					{TraitType: "ARTIST", Value: "Maya"},
				},
			},
			want: "Maya",
		},
		{
			name: "artist attribute under the aliased key field",
			asset: domain.Asset{
				Attributes: []domain.Attribute{{TraitKey: "artist", Value: "Nina"}},
			},
			want: "Nina",
		},
		{
			name: "empty artist attribute falls through to symbol",
			asset: domain.Asset{
				Attributes: []domain.Attribute{{TraitType: "artist", Value: ""}},
				Symbol:     "ABC",
			},
			want: "ABC",
		},
		{
			name:  "symbol",
			asset: domain.Asset{Symbol: "DEGEN"},
			want:  "DEGEN",
		},
		{
			name:  "plain creator address",
			asset: domain.Asset{CreatorAddress: "E3zHh78ujEffBETguxjVnqPP9Ut42BCbbxXkdk9YQjLC"},
			want:  "E3zHh78ujEffBETguxjVnqPP9Ut42BCbbxXkdk9YQjLC",
		},
		{
			name:  "handle address rewritten to trailing marker",
			asset: domain.Asset{CreatorAddress: "@bob"},
			want:  "Bob @",
		},
		{
			name:  "bare at sign",
			asset: domain.Asset{CreatorAddress: "@"},
			want:  " @",
		},
		{
			name:  "creator hash fallback",
			asset: domain.Asset{Compression: &domain.Compression{CreatorHash: "a1b2c3d4e5f6"}},
			want:  "a1b2...",
		},
		{
			name:  "no signal at all",
			asset: domain.Asset{ID: "x"},
			want:  "Unknown",
		},
		{
			name:  "compression present but hash empty",
			asset: domain.Asset{Compression: &domain.Compression{Compressed: true}},
			want:  "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCreatorID(tt.asset)
			if got != tt.want {
				t.Errorf("ResolveCreatorID() = %q, want %q", got, tt.want)
			}
			if got == "" {
				t.Error("ResolveCreatorID() returned an empty identity")
			}
		})
	}
}

func TestProjectDisplayName(t *testing.T) {
	long := "E3zHh78ujEffBETguxjVnqPP9Ut42BCbbxXkdk9YQjLC"

	tests := []struct {
		in   string
		want string
	}{
		{"DRIP: alice", "alice"},
		{"LEGIT: Superteam", "Superteam"},
		{"@bob", "Bob"},
		{"Bob @", "Bob"},
		{"Alice", "Alice"},
		{long, "E3zH..."},
		{"a1b2...", "a1b2..."},
		{"", ""},
		{"name with spaces that is much longer than forty chars", "name with spaces that is much longer than forty chars"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ProjectDisplayName(tt.in)
			if got != tt.want {
				t.Errorf("ProjectDisplayName(%q) = %q, want %q", tt.in, got, tt.want)
			}
			// Projecting twice must be a no-op.
			if again := ProjectDisplayName(got); again != got {
				t.Errorf("projection not idempotent: %q -> %q -> %q", tt.in, got, again)
			}
		})
	}
}

func TestHandleRoundTrip(t *testing.T) {
	id := ResolveCreatorID(domain.Asset{CreatorAddress: "@bob"})
	if id != "Bob @" {
		t.Fatalf("resolved id = %q, want %q", id, "Bob @")
	}
	if got := ProjectDisplayName(id); got != "Bob" {
		t.Errorf("ProjectDisplayName(%q) = %q, want %q", id, got, "Bob")
	}
}
