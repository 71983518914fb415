package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentMints fires concurrent mint requests for distinct
// inspections backed by the same wallet address. The Redis address lock
// must serialize the balance-check-to-submit window of every mint, so the
// fake ledger should never observe overlapping sequences, every mint should
// succeed, and each should receive a distinct transaction and asset.
func TestConcurrentMints(t *testing.T) {
	app := newTestApp(t)
	token := app.token(t)

	concurrency := 10

	// Create and approve one inspection per worker up front.
	ids := make([]string, concurrency)
	for i := 0; i < concurrency; i++ {
		ids[i] = createInspection(t, app, token, fmt.Sprintf("B %04d ZZ", i))

		resp, _ := app.do(t, http.MethodPost, "/api/v1/inspections/"+ids[i]+"/approve", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	type mintOutcome struct {
		status  int
		txID    string
		assetID string
	}
	outcomes := make([]mintOutcome, concurrency)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			resp, body := app.do(t, http.MethodPost, "/api/v1/inspections/"+ids[idx]+"/mint", token, nil)
			outcome := mintOutcome{status: resp.StatusCode}
			if data, ok := body["data"].(map[string]interface{}); ok {
				outcome.txID, _ = data["tx_id"].(string)
				outcome.assetID, _ = data["asset_id"].(string)
			}
			outcomes[idx] = outcome
		}(i)
	}
	wg.Wait()

	txIDs := make(map[string]bool)
	assetIDs := make(map[string]bool)
	for i, outcome := range outcomes {
		assert.Equal(t, http.StatusCreated, outcome.status, "mint %d failed", i)
		assert.NotEmpty(t, outcome.txID, "mint %d missing tx id", i)
		txIDs[outcome.txID] = true
		assetIDs[outcome.assetID] = true
	}

	// Every mint landed its own transaction and asset.
	assert.Len(t, txIDs, concurrency)
	assert.Len(t, assetIDs, concurrency)
	assert.Equal(t, int64(concurrency), app.chain.submits.Load())

	// The address lock never let two mint sequences overlap.
	assert.Equal(t, int32(1), app.chain.maxConcurrent())
}
