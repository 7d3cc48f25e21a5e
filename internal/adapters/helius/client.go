// Package helius implements the AssetSource port against the Helius DAS
// JSON-RPC API. One POST per fetch; no pagination, no retries.
package helius

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"solview/internal/core/domain"
	"solview/internal/core/ports"
)

// DefaultEndpoint is the mainnet DAS endpoint. The api-key query parameter is
// appended per request.
const DefaultEndpoint = "https://mainnet.helius-rpc.com/"

const defaultTimeout = 30 * time.Second

// Client is a Helius DAS API client.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	log      *zap.Logger
}

// Ensure it implements the port
var _ ports.AssetSource = (*Client)(nil)

// NewClient creates a DAS client. endpoint may be empty for mainnet; timeout
// zero means 30s; log may be nil.
func NewClient(endpoint, apiKey string, timeout time.Duration, log *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
		log:      log,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcResponse struct {
	Result *struct {
		Total int       `json:"total"`
		Items []dasItem `json:"items"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// FetchAssets queries getAssetsByOwner or getAssetsByCreator for the address
// and maps the returned items into domain assets. A response without a result
// block is treated as an empty list, matching the upstream API's habit of
// omitting it for unknown addresses.
func (c *Client) FetchAssets(ctx context.Context, address string, view domain.ViewType) ([]domain.Asset, error) {
	method := "getAssetsByOwner"
	params := map[string]any{"ownerAddress": address}
	if view == domain.ViewCreated {
		method = "getAssetsByCreator"
		params = map[string]any{"creatorAddress": address}
	}

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      "solview",
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := c.endpoint
	if c.apiKey != "" {
		url += "?api-key=" + c.apiKey
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%s: unexpected status %s", method, resp.Status)
	}

	var rpc rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpc); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", method, err)
	}
	if rpc.Error != nil {
		return nil, fmt.Errorf("%s: rpc error %d: %s", method, rpc.Error.Code, rpc.Error.Message)
	}
	if rpc.Result == nil {
		c.log.Warn("rpc response missing result", zap.String("method", method), zap.String("address", address))
		return []domain.Asset{}, nil
	}

	assets := make([]domain.Asset, 0, len(rpc.Result.Items))
	for _, item := range rpc.Result.Items {
		assets = append(assets, item.toDomain())
	}
	return assets, nil
}

// dasItem mirrors the slice of the DAS asset schema the pipeline consumes.
type dasItem struct {
	ID      string `json:"id"`
	Content struct {
		Metadata struct {
			Name        string         `json:"name"`
			Symbol      string         `json:"symbol"`
			Description string         `json:"description"`
			Attributes  []dasAttribute `json:"attributes"`
		} `json:"metadata"`
		Links struct {
			Image        string `json:"image"`
			AnimationURL string `json:"animation_url"`
			ExternalURL  string `json:"external_url"`
		} `json:"links"`
	} `json:"content"`
	Authorities []struct {
		Address string `json:"address"`
	} `json:"authorities"`
	Mutable     bool `json:"mutable"`
	Compression *struct {
		Compressed  bool   `json:"compressed"`
		CreatorHash string `json:"creator_hash"`
	} `json:"compression"`
}

// dasAttribute tolerates the two trait-key aliases seen upstream and
// non-string attribute values (numeric rarity scores and the like).
type dasAttribute struct {
	TraitType string `json:"trait_type"`
	TraitKey  string `json:"traitType"`
	Value     any    `json:"value"`
}

func (it dasItem) toDomain() domain.Asset {
	a := domain.Asset{
		ID:           it.ID,
		Name:         it.Content.Metadata.Name,
		Symbol:       it.Content.Metadata.Symbol,
		Description:  it.Content.Metadata.Description,
		ExternalURL:  it.Content.Links.ExternalURL,
		AnimationURL: it.Content.Links.AnimationURL,
		ImageURL:     it.Content.Links.Image,
		Mutable:      it.Mutable,
	}
	for _, attr := range it.Content.Metadata.Attributes {
		a.Attributes = append(a.Attributes, domain.Attribute{
			TraitType: attr.TraitType,
			TraitKey:  attr.TraitKey,
			Value:     attributeValue(attr.Value),
		})
	}
	if len(it.Authorities) > 0 {
		a.CreatorAddress = it.Authorities[0].Address
	}
	if it.Compression != nil {
		a.Compression = &domain.Compression{
			Compressed:  it.Compression.Compressed,
			CreatorHash: it.Compression.CreatorHash,
		}
	}
	return a
}

func attributeValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
