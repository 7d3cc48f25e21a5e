package cmd

import (
	"testing"

	"solview/internal/core/classify"
	"solview/internal/core/domain"
	"solview/internal/core/ports/mocks"
	"solview/internal/core/services"
	"solview/pkg/config"
)

// TestCommandStructure verifies that all commands are properly registered
func TestCommandStructure(t *testing.T) {
	commands := []string{
		"browse", "explore", "artists", "stats", "cache", "config", "version",
	}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{cmdName})
			if err != nil {
				t.Errorf("Command '%s' not found: %v", cmdName, err)
			}
			if cmd == nil {
				t.Errorf("Command '%s' is nil", cmdName)
			}
			if cmd.Use == "" {
				t.Errorf("Command '%s' has no Use field", cmdName)
			}
		})
	}
}

// TestRootCommandExists verifies the root command is properly configured
func TestRootCommandExists(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("Root command is nil")
	}

	if rootCmd.Use != "solview" {
		t.Errorf("Expected root command Use to be 'solview', got '%s'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Root command Short description is empty")
	}
}

// TestCommandsHaveHelp verifies all commands have help text
func TestCommandsHaveHelp(t *testing.T) {
	commands := rootCmd.Commands()

	if len(commands) == 0 {
		t.Fatal("No commands registered")
	}

	for _, cmd := range commands {
		t.Run(cmd.Name(), func(t *testing.T) {
			if cmd.Short == "" {
				t.Errorf("Command '%s' has no Short description", cmd.Name())
			}
		})
	}
}

// TestSubcommands verifies the cache subcommands exist
func TestSubcommands(t *testing.T) {
	tests := []struct {
		parent     string
		subcommand string
	}{
		{"cache", "status"},
		{"cache", "purge"},
	}

	for _, tt := range tests {
		t.Run(tt.parent+"_"+tt.subcommand, func(t *testing.T) {
			parentCmd, _, err := rootCmd.Find([]string{tt.parent})
			if err != nil {
				t.Fatalf("Parent command '%s' not found: %v", tt.parent, err)
			}

			found := false
			for _, cmd := range parentCmd.Commands() {
				if cmd.Name() == tt.subcommand {
					found = true
					break
				}
			}

			if !found {
				t.Errorf("Subcommand '%s' not found under '%s'", tt.subcommand, tt.parent)
			}
		})
	}
}

// TestFlagsExist verifies important flags are registered
func TestFlagsExist(t *testing.T) {
	tests := []struct {
		command  string
		flagName string
	}{
		{"browse", "view"},
		{"browse", "sort"},
		{"browse", "filter"},
		{"browse", "quantity"},
		{"browse", "refresh"},
		{"browse", "limit"},
		{"explore", "view"},
		{"explore", "sort"},
		{"explore", "filter"},
		{"artists", "pick"},
		{"artists", "rules"},
		{"stats", "top"},
		{"stats", "html"},
		{"config", "init"},
	}

	for _, tt := range tests {
		t.Run(tt.command+"_"+tt.flagName, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{tt.command})
			if err != nil {
				t.Fatalf("Command '%s' not found: %v", tt.command, err)
			}

			flag := cmd.Flags().Lookup(tt.flagName)
			if flag == nil {
				t.Errorf("Flag '--%s' not found on command '%s'", tt.flagName, tt.command)
			}
		})
	}
}

// TestServiceInitialization verifies services can be initialized with mocks
func TestServiceInitialization(t *testing.T) {
	mockSource := mocks.NewMockAssetSource(nil)
	mockCache := mocks.NewMockGalleryCache()
	rules := classify.DefaultCustomArtists()

	gallery := services.NewGalleryService(mockSource, mockCache, rules, nil)
	if gallery == nil {
		t.Error("GalleryService is nil")
	}

	stats := services.NewStatsService(mockSource, rules, nil)
	if stats == nil {
		t.Error("StatsService is nil")
	}
}

// TestParseGalleryOptions verifies flag parsing falls back to config defaults
func TestParseGalleryOptions(t *testing.T) {
	appConfig = config.DefaultConfig()
	appConfig.DefaultSort = "nameAsc"

	opts, err := parseGalleryOptions(browseCmd, "owned", "quantityDesc", "all", "all")
	if err != nil {
		t.Fatalf("parseGalleryOptions: %v", err)
	}
	// No flag was set on the command line, so the config default wins over
	// the flag default passed in.
	if opts.Sort != domain.SortNameAsc {
		t.Errorf("Sort = %q, want config default nameAsc", opts.Sort)
	}
	if opts.View != domain.ViewOwned || opts.Filter != domain.CategoryAll {
		t.Errorf("opts = %+v", opts)
	}
	if opts.Quantity != domain.QuantityAll {
		t.Errorf("Quantity = %q, want all", opts.Quantity)
	}
}

func TestParseGalleryOptionsInvalid(t *testing.T) {
	appConfig = config.DefaultConfig()
	appConfig.DefaultView = "minted"

	if _, err := parseGalleryOptions(browseCmd, "", "", "", ""); err == nil {
		t.Fatal("expected error for invalid view")
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "artist"); got != "1 artist" {
		t.Errorf("pluralize(1) = %q", got)
	}
	if got := pluralize(3, "artist"); got != "3 artists" {
		t.Errorf("pluralize(3) = %q", got)
	}
}

// TestVersionCommand verifies version command exists
func TestVersionCommand(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"version"})
	if err != nil {
		t.Fatalf("Version command not found: %v", err)
	}

	if cmd == nil {
		t.Fatal("Version command is nil")
	}
}
