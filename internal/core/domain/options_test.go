package domain

import "testing"

func TestParseViewType(t *testing.T) {
	for _, s := range []string{"owned", "created"} {
		if _, err := ParseViewType(s); err != nil {
			t.Errorf("ParseViewType(%q): %v", s, err)
		}
	}
	if _, err := ParseViewType("minted"); err == nil {
		t.Error("ParseViewType(minted): expected error")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{in: "all", want: CategoryAll},
		{in: "drip", want: CategoryDrip},
		{in: "legit", want: CategoryLegit},
		{in: "spam", want: CategorySpam},
		{in: "???", want: CategoryUnclassified},
		{in: "unclassified", want: CategoryUnclassified},
		{in: "good", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCategory(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseSortKey(t *testing.T) {
	for _, s := range []string{"quantityDesc", "quantityAsc", "nameAsc", "nameDesc"} {
		if _, err := ParseSortKey(s); err != nil {
			t.Errorf("ParseSortKey(%q): %v", s, err)
		}
	}
	if _, err := ParseSortKey("quantity"); err == nil {
		t.Error("ParseSortKey(quantity): expected error")
	}
}

func TestQuantityFilterKeep(t *testing.T) {
	tests := []struct {
		filter QuantityFilter
		size   int
		want   bool
	}{
		{QuantityAll, 1, true},
		{QuantityAll, 100, true},
		{QuantityOverThree, 3, false},
		{QuantityOverThree, 4, true},
		{QuantitySingle, 1, true},
		{QuantitySingle, 2, false},
	}
	for _, tt := range tests {
		if got := tt.filter.Keep(tt.size); got != tt.want {
			t.Errorf("%q.Keep(%d) = %v, want %v", tt.filter, tt.size, got, tt.want)
		}
	}
	if _, err := ParseQuantityFilter(">3"); err != nil {
		t.Errorf("ParseQuantityFilter(>3): %v", err)
	}
	if _, err := ParseQuantityFilter(">5"); err == nil {
		t.Error("ParseQuantityFilter(>5): expected error")
	}
}

func TestCategoriesOrder(t *testing.T) {
	got := Categories()
	want := []Category{CategoryAll, CategoryDrip, CategoryLegit, CategorySpam, CategoryUnclassified}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Categories() = %v, want %v", got, want)
		}
	}
}
