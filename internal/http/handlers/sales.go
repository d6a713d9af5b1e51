package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
	"github.com/yungbote/salesflow-backend/internal/http/response"
	"github.com/yungbote/salesflow-backend/internal/modules/sales/script"
	"github.com/yungbote/salesflow-backend/internal/normalization"
	"github.com/yungbote/salesflow-backend/internal/platform/apierr"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
	"github.com/yungbote/salesflow-backend/internal/services"
)

const internalServerError = "Internal server error"

type SalesHandlerDeps struct {
	Log   *logger.Logger
	Sales services.SalesScriptService
}

type SalesHandler struct {
	log   *logger.Logger
	sales services.SalesScriptService
}

func NewSalesHandlerWithDeps(deps SalesHandlerDeps) *SalesHandler {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	return &SalesHandler{
		log:   log.With("handler", "SalesHandler"),
		sales: deps.Sales,
	}
}

func NewSalesHandler(log *logger.Logger, sales services.SalesScriptService) *SalesHandler {
	return NewSalesHandlerWithDeps(SalesHandlerDeps{Log: log, Sales: sales})
}

type generateStepResponse struct {
	Step types.DynamicStep `json:"step"`
}

// POST /api/admin/sales/generate-step
func (h *SalesHandler) GenerateStep(c *gin.Context) {
	var req types.GenerateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Error generating step", "error", err)
		response.RespondMessage(c, http.StatusInternalServerError, internalServerError)
		return
	}
	step, err := h.sales.GenerateStep(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Error generating step", "error", err)
		response.RespondMessage(c, http.StatusInternalServerError, internalServerError)
		return
	}
	response.RespondOK(c, generateStepResponse{Step: step})
}

// GET /api/admin/sales/strategies?response=<type>
func (h *SalesHandler) ListStrategies(c *gin.Context) {
	raw := normalization.ParseInputString(c.Query("response"))
	if raw == "" {
		response.RespondAPIError(c, apierr.BadRequest("missing_response", errors.New("response query parameter is required")))
		return
	}
	rt := types.ResponseType(raw)
	options := h.sales.RecommendStrategies(rt)
	if len(options) == 0 {
		response.RespondAPIError(c, apierr.BadRequest("unknown_response", errors.New("unknown response type: "+raw)))
		return
	}
	response.RespondOK(c, gin.H{
		"response":   rt,
		"label":      script.ResponseTypeLabels[rt],
		"strategies": options,
	})
}

// GET /api/admin/sales/vocabulary
func (h *SalesHandler) Vocabulary(c *gin.Context) {
	response.RespondOK(c, h.sales.Vocabulary())
}

// POST /api/admin/sales/grand-slam-offer
func (h *SalesHandler) GrandSlamOffer(c *gin.Context) {
	var req types.GrandSlamOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	response.RespondOK(c, gin.H{"offer": h.sales.BuildGrandSlamOffer(&req)})
}

type objectionHandlersRequest struct {
	Objection string                    `json:"objection"`
	Custom    []script.ObjectionHandler `json:"custom"`
}

// POST /api/admin/sales/objection-handlers
func (h *SalesHandler) ObjectionHandlers(c *gin.Context) {
	var req objectionHandlersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	response.RespondOK(c, gin.H{"handlers": h.sales.FindObjectionHandlers(req.Objection, req.Custom)})
}
