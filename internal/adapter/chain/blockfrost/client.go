// Package blockfrost implements ports.ChainProvider against the Blockfrost
// Cardano API.
package blockfrost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/CAR-dano/cardano-backend-sub000/config"
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"

	"github.com/rs/zerolog"
)

// HTTPClient is the http.Client surface the adapter needs, for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to a Blockfrost-compatible endpoint.
type Client struct {
	baseURL    string
	projectID  string
	httpClient HTTPClient
	log        zerolog.Logger
}

// New creates a Client from configuration.
func New(cfg config.CardanoConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.ProviderURL,
		projectID:  cfg.ProjectID,
		httpClient: httpClient,
		log:        log,
	}
}

// utxoJSON is the provider's spendable-output wire shape. Amount is kept
// raw because the wallet-scoped path does not guarantee a single shape.
type utxoJSON struct {
	TxHash      string          `json:"tx_hash"`
	OutputIndex uint32          `json:"output_index"`
	Amount      json.RawMessage `json:"amount"`
}

// QuerySpendableOutputs fetches the address's UTXOs via the wallet-scoped
// path. Amount shapes are decoded leniently; anything unrecognized becomes
// a minimal output with no amount, which the selector escalates.
func (c *Client) QuerySpendableOutputs(ctx context.Context, address string) ([]domain.ProviderOutput, error) {
	return c.queryUTXOs(ctx, address)
}

// QuerySpendableOutputsAuthoritative satisfies the port's escalation query.
// Blockfrost serves a single address-UTXO route whose amounts are always
// populated, so both query paths share it; a provider whose wallet-scoped
// answer can degrade would point this at a distinct endpoint.
func (c *Client) QuerySpendableOutputsAuthoritative(ctx context.Context, address string) ([]domain.ProviderOutput, error) {
	return c.queryUTXOs(ctx, address)
}

func (c *Client) queryUTXOs(ctx context.Context, address string) ([]domain.ProviderOutput, error) {
	var raw []utxoJSON
	if err := c.get(ctx, "/addresses/"+address+"/utxos", &raw); err != nil {
		return nil, err
	}

	outputs := make([]domain.ProviderOutput, 0, len(raw))
	for _, u := range raw {
		outputs = append(outputs, domain.ProviderOutput{
			TxHash: u.TxHash,
			Index:  u.OutputIndex,
			Amount: decodeAmount(u.Amount),
		})
	}
	return outputs, nil
}

// decodeAmount maps the provider's amount JSON onto the closed set of
// shapes the normalizer understands. Unparseable input yields nil (the
// minimal shape), never an error.
func decodeAmount(raw json.RawMessage) domain.ProviderAmount {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	switch trimmed[0] {
	case '[':
		var units []domain.UnitQuantity
		if err := json.Unmarshal(trimmed, &units); err != nil {
			return nil
		}
		return domain.AmountUnits(units)
	case '{':
		var m map[string]json.Number
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return nil
		}
		am := make(domain.AmountMap, len(m))
		for unit, qty := range m {
			am[unit] = qty.String()
		}
		return am
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil
		}
		return domain.AmountString(s)
	default:
		var n uint64
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return nil
		}
		return domain.AmountBare(n)
	}
}

// GetBalance sums the address's lovelace holdings.
func (c *Client) GetBalance(ctx context.Context, address string) (uint64, error) {
	var info struct {
		Amount []domain.UnitQuantity `json:"amount"`
	}
	if err := c.get(ctx, "/addresses/"+address, &info); err != nil {
		return 0, err
	}

	var balance uint64
	for _, uq := range info.Amount {
		if uq.Unit != domain.LovelaceUnit {
			continue
		}
		if v, ok := domain.ParseLovelace(uq.Quantity); ok {
			balance += v
		}
	}
	return balance, nil
}

// Submit posts the signed transaction CBOR. On rejection the response body
// is classified into a *domain.SubmitError; this is the only place the
// ledger's validation-error markers are matched.
func (c *Client) Submit(ctx context.Context, tx domain.SignedTransaction) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tx/submit", bytes.NewReader(tx))
	if err != nil {
		return "", fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("project_id", c.projectID)
	req.Header.Set("Content-Type", "application/cbor")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit transaction: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read submit response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		subErr := classifySubmitError(resp.StatusCode, body)
		c.log.Debug().
			Int("status", resp.StatusCode).
			Str("reason", string(subErr.Reason)).
			Msg("submission rejected")
		return "", subErr
	}

	// The API returns the transaction hash as a JSON string.
	var txID string
	if err := json.Unmarshal(body, &txID); err != nil {
		return "", fmt.Errorf("decode transaction id: %w", err)
	}
	return txID, nil
}

// GetTransactionMetadata reads a transaction's metadata labels.
func (c *Client) GetTransactionMetadata(ctx context.Context, txID string) ([]domain.TxMetadataEntry, error) {
	var raw []struct {
		Label        string          `json:"label"`
		JSONMetadata json.RawMessage `json:"json_metadata"`
	}
	if err := c.get(ctx, "/txs/"+txID+"/metadata", &raw); err != nil {
		return nil, err
	}

	entries := make([]domain.TxMetadataEntry, 0, len(raw))
	for _, e := range raw {
		entries = append(entries, domain.TxMetadataEntry{Label: e.Label, JSON: e.JSONMetadata})
	}
	return entries, nil
}

// GetAsset reads the indexer's view of an asset.
func (c *Client) GetAsset(ctx context.Context, assetID string) (*domain.AssetInfo, error) {
	info := &domain.AssetInfo{}
	if err := c.get(ctx, "/assets/"+assetID, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (c *Client) get(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("project_id", c.projectID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
