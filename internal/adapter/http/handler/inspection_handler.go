package handler

import (
	"strconv"
	"time"

	"github.com/CAR-dano/cardano-backend-sub000/internal/adapter/http/dto"
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/ports"
	"github.com/CAR-dano/cardano-backend-sub000/pkg/apperror"
	"github.com/CAR-dano/cardano-backend-sub000/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InspectionHandler handles inspection lifecycle endpoints, including the
// mint trigger.
type InspectionHandler struct {
	inspSvc ports.InspectionService
}

// NewInspectionHandler creates a new InspectionHandler.
func NewInspectionHandler(inspSvc ports.InspectionService) *InspectionHandler {
	return &InspectionHandler{inspSvc: inspSvc}
}

// Create handles POST /api/v1/inspections.
func (h *InspectionHandler) Create(c *gin.Context) {
	var req dto.CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStrings(&req)

	inspection, err := h.inspSvc.Create(c.Request.Context(), ports.CreateInspectionRequest{
		VehicleNumber: req.VehicleNumber,
		PDFHash:       req.PDFHash,
		InspectorName: req.InspectorName,
		OverallRating: req.OverallRating,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toInspectionResponse(inspection))
}

// Get handles GET /api/v1/inspections/:id.
func (h *InspectionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid inspection id"))
		return
	}

	inspection, err := h.inspSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toInspectionResponse(inspection))
}

// List handles GET /api/v1/inspections.
func (h *InspectionHandler) List(c *gin.Context) {
	params := ports.InspectionListParams{Page: 1, PageSize: 20}
	if p, err := parsePositiveInt(c.Query("page")); err == nil && p > 0 {
		params.Page = p
	}
	if p, err := parsePositiveInt(c.Query("page_size")); err == nil && p > 0 {
		params.PageSize = p
	}
	if s := c.Query("status"); s != "" {
		status := domain.InspectionStatus(s)
		params.Status = &status
	}

	inspections, total, err := h.inspSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.InspectionResponse, 0, len(inspections))
	for i := range inspections {
		items = append(items, toInspectionResponse(&inspections[i]))
	}
	response.OK(c, dto.InspectionListResponse{
		Items:    items,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}

// Approve handles POST /api/v1/inspections/:id/approve.
func (h *InspectionHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid inspection id"))
		return
	}

	inspection, err := h.inspSvc.Approve(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toInspectionResponse(inspection))
}

// Mint handles POST /api/v1/inspections/:id/mint. Synchronous: the
// response carries the terminal mint outcome.
func (h *InspectionHandler) Mint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid inspection id"))
		return
	}

	record, err := h.inspSvc.MintInspection(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.MintRecordResponse{
		InspectionID: record.InspectionID.String(),
		TxID:         record.TxID,
		AssetID:      record.AssetID,
		PolicyID:     record.PolicyID,
		AssetName:    record.AssetName,
		Attempts:     record.Attempts,
		CreatedAt:    record.CreatedAt.Format(time.RFC3339),
	})
}

func parsePositiveInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// toInspectionResponse converts domain.Inspection to its DTO.
func toInspectionResponse(i *domain.Inspection) dto.InspectionResponse {
	resp := dto.InspectionResponse{
		ID:            i.ID.String(),
		VehicleNumber: i.VehicleNumber,
		PDFHash:       i.PDFHash,
		InspectorName: i.InspectorName,
		OverallRating: i.OverallRating,
		Status:        string(i.Status),
		CreatedAt:     i.CreatedAt.Format(time.RFC3339),
	}
	if i.MintedAt != nil {
		s := i.MintedAt.Format(time.RFC3339)
		resp.MintedAt = &s
	}
	return resp
}
