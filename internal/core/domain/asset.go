package domain

// Asset is one NFT record as returned by the indexing source. Every field
// except ID may be missing upstream; consumers treat empty values as absent.
type Asset struct {
	ID           string      `json:"id"`
	Name         string      `json:"name,omitempty"`
	Description  string      `json:"description,omitempty"`
	Symbol       string      `json:"symbol,omitempty"`
	Attributes   []Attribute `json:"attributes,omitempty"`
	ExternalURL  string      `json:"external_url,omitempty"`
	AnimationURL string      `json:"animation_url,omitempty"`
	ImageURL     string      `json:"image_url,omitempty"`

	// CreatorAddress is the first authority address associated with the
	// asset. It can be a base58 address or a social handle like "@name".
	CreatorAddress string `json:"creator_address,omitempty"`

	Mutable     bool         `json:"mutable"`
	Compression *Compression `json:"compression,omitempty"`
}

// Attribute is a single trait on an asset. Upstream indexers disagree on the
// trait key field name, so both aliases are carried and checked.
type Attribute struct {
	TraitType string `json:"trait_type,omitempty"`
	TraitKey  string `json:"trait_key,omitempty"`
	Value     string `json:"value,omitempty"`
}

// Compression holds the compressed-NFT fields relevant to creator identity.
type Compression struct {
	Compressed  bool   `json:"compressed"`
	CreatorHash string `json:"creator_hash,omitempty"`
}

// HasAnimation reports whether the asset carries a playable animation URL.
func (a Asset) HasAnimation() bool {
	return a.AnimationURL != ""
}
