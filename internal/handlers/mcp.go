package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/gin-gonic/gin"

	"github.com/yishak-cs/calboost/internal/services"
)

// MCP tool names served on POST /mcp
const (
	ToolResolveMeal        = "resolve_meal"
	ToolAnalyzeDescription = "analyze_description"
	ToolLookupNutrients    = "lookup_nutrients"
)

var errBadArguments = errors.New("invalid tool arguments")

type descriptionParams struct {
	Description string `json:"description"`
}

type lookupParams struct {
	FoodName string  `json:"foodName"`
	Quantity float64 `json:"quantity"`
}

// SetupMCPRoutes exposes the meal tools to MCP clients
func (h *APIHandler) SetupMCPRoutes(router *gin.Engine) {
	router.POST("/mcp", h.CallTool)
}

// CallTool dispatches one tools/call request by name
func (h *APIHandler) CallTool(c *gin.Context) {
	var request protocol.CallToolRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid JSON: %v", err)})
		return
	}

	var (
		result *protocol.CallToolResult
		err    error
	)
	switch request.Name {
	case ToolResolveMeal:
		result, err = h.toolResolveMeal(c, &request)
	case ToolAnalyzeDescription:
		result, err = h.toolAnalyzeDescription(c, &request)
	case ToolLookupNutrients:
		result, err = h.toolLookupNutrients(c, &request)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Unknown tool: %s", request.Name)})
		return
	}

	if err != nil {
		if errors.Is(err, errBadArguments) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *APIHandler) toolResolveMeal(c *gin.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params descriptionParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Description) == "" {
		return nil, services.ValidationError(services.MsgInvalidDescription)
	}
	return textResult(h.resolver.ResolveMeal(c.Request.Context(), params.Description))
}

func (h *APIHandler) toolAnalyzeDescription(c *gin.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params descriptionParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Description) == "" {
		return nil, services.ValidationError(services.MsgInvalidDescription)
	}
	analysis, err := h.analyzer.AnalyzeDescription(c.Request.Context(), params.Description)
	if err != nil {
		return nil, err
	}
	return textResult(analysis)
}

func (h *APIHandler) toolLookupNutrients(c *gin.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params lookupParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.FoodName) == "" {
		return nil, services.ValidationError(services.MsgMissingFoodName)
	}
	if params.Quantity <= 0 {
		params.Quantity = 100
	}

	res, ok := h.adapter.Resolve(c.Request.Context(), params.FoodName, params.Quantity)
	if !ok {
		return textResult(gin.H{"found": false, "foodName": params.FoodName, "error": services.MsgNutrientsNotFound})
	}
	return textResult(gin.H{
		"found":      true,
		"foodName":   params.FoodName,
		"quantity":   params.Quantity,
		"matchedAs":  res.Record.Name,
		"sourceKind": res.Record.Source,
		"confidence": res.Confidence,
		"nutrients":  res.Nutrients,
	})
}

func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	raw, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("%w: %v", errBadArguments, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %v", errBadArguments, err)
	}
	return nil
}

func textResult(data interface{}) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}
