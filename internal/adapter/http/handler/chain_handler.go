package handler

import (
	"encoding/json"

	"github.com/CAR-dano/cardano-backend-sub000/internal/adapter/http/dto"
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/ports"
	"github.com/CAR-dano/cardano-backend-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// ChainHandler exposes the indexer read paths for minted assets.
type ChainHandler struct {
	chainSvc ports.ChainReadService
}

// NewChainHandler creates a new ChainHandler.
func NewChainHandler(chainSvc ports.ChainReadService) *ChainHandler {
	return &ChainHandler{chainSvc: chainSvc}
}

// GetTransactionMetadata handles GET /api/v1/chain/txs/:id/metadata.
func (h *ChainHandler) GetTransactionMetadata(c *gin.Context) {
	entries, err := h.chainSvc.GetTransactionMetadata(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.TxMetadataResponse, 0, len(entries))
	for _, e := range entries {
		var decoded any
		if err := json.Unmarshal(e.JSON, &decoded); err != nil {
			decoded = string(e.JSON)
		}
		out = append(out, dto.TxMetadataResponse{Label: e.Label, JSON: decoded})
	}
	response.OK(c, out)
}

// GetAsset handles GET /api/v1/chain/assets/:id.
func (h *ChainHandler) GetAsset(c *gin.Context) {
	info, err := h.chainSvc.GetAsset(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AssetResponse{
		AssetID:           info.AssetID,
		PolicyID:          info.PolicyID,
		AssetName:         info.AssetName,
		Quantity:          info.Quantity,
		InitialMintTxHash: info.InitialMintTxHash,
	})
}
