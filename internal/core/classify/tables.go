package classify

// Curated tables. These are manually maintained content, not logic: the rule
// table overrides noisy on-chain metadata for well-known creators, and the
// drip lists patch the drip-style heuristic in both directions.

// DefaultCustomArtists is the built-in artist override table. Order matters:
// the first matching rule wins, and the broad Superteam rule deliberately
// sits above later, narrower rules that could otherwise shadow it.
func DefaultCustomArtists() []CustomArtistRule {
	return []CustomArtistRule{
		{
			Name:   "Solana Ecosystem Call",
			Type:   RuleNFTNamePrefix,
			Values: []string{"Solana Ecosystem Call"},
		},
		{
			Name:    "Superteam",
			Type:    RuleAnyContains,
			Values:  []string{"superteam", "red hoodie"},
			Exclude: []string{"SuperteamDAO Loot Box", "Superteam Member NFT"},
		},
		{
			Name:   "Faceless",
			Type:   RuleNFTNamePrefix,
			Values: []string{"Faceless"},
		},
		{
			Name:   "SMB Raffle",
			Type:   RuleNFTNamePrefix,
			Values: []string{"SMB Raffle Ticket"},
		},
		{
			Name:   "SMB Monke",
			Type:   RuleNFTNamePrefix,
			Values: []string{"SMB Gen3"},
		},
		{
			Name:   "E3zH...",
			Type:   RuleCreatorIDPrefix,
			Values: []string{"E3zHh78ujEffBETguxjVnqPP9Ut42BCbbxXkdk9YQjLC"},
		},
		{
			Name:   "thenetworkstate.com",
			Type:   RuleCreatorIDPrefix,
			Values: []string{"thenetworkstate.com"},
		},
	}
}

// additionalDripArtists are creators treated as drip-style even though their
// resolved id carries none of the structural drip markers.
var additionalDripArtists = []string{
	"mooar.com",
	"3.land",
	"MADhouse",
	"monmonmon",
	"Poetonic",
}

// dripExclusions are creators that must never classify as drip-style,
// whatever the other signals say.
var dripExclusions = []string{
	"blogs.shyft",
}
