package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"gother/internal/ai/component"
	"gother/internal/config"
)

// consultantSystemPrompt frames the model as the storefront's bilingual
// gift consultant. The catalog digest is appended per request so the
// model only ever recommends items that actually exist.
const consultantSystemPrompt = `You are the gift consultant for an Arabic/English storefront selling animated digital gifts (SVGA, VAP, MP4, JSON, PAG assets).
Answer in the same language the customer writes in. Recommend at most three items from the catalog below and explain briefly why each fits.
Respond with a single JSON object, no markdown fences: {"reply": "<your answer>", "product_ids": ["<id>", ...]}
Only use product ids that appear in the catalog. If nothing fits, return an empty product_ids list and say so politely.`

// ConsultantChain is the recommendation pipeline: catalog digest plus
// customer query in, structured recommendation out.
type ConsultantChain struct {
	chatModel model.BaseChatModel
}

// ConsultRequest is one consultation turn
type ConsultRequest struct {
	Query         string
	CatalogDigest string
	History       []*schema.Message
}

// ConsultResponse is the parsed model output
type ConsultResponse struct {
	Reply        string
	ProductIDs   []string
	PromptTokens int
	OutputTokens int
}

// NewConsultantChain creates the consultant chain
func NewConsultantChain(ctx context.Context, cfg *config.AIConfig) (*ConsultantChain, error) {
	chatModel, err := component.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &ConsultantChain{
		chatModel: chatModel,
	}, nil
}

// Run executes one consultation turn
func (c *ConsultantChain) Run(ctx context.Context, req *ConsultRequest) (*ConsultResponse, error) {
	messages := make([]*schema.Message, 0, len(req.History)+2)
	messages = append(messages, schema.SystemMessage(
		consultantSystemPrompt+"\n\nCatalog:\n"+req.CatalogDigest))
	messages = append(messages, req.History...)
	messages = append(messages, schema.UserMessage(req.Query))

	resp, err := c.chatModel.Generate(ctx, messages)
	if err != nil {
		return nil, err
	}

	result := &ConsultResponse{}
	if resp.ResponseMeta != nil && resp.ResponseMeta.Usage != nil {
		result.PromptTokens = resp.ResponseMeta.Usage.PromptTokens
		result.OutputTokens = resp.ResponseMeta.Usage.CompletionTokens
	}

	parsed, err := parseConsultOutput(resp.Content)
	if err != nil {
		// the model broke format, fall back to raw prose with no picks
		result.Reply = strings.TrimSpace(resp.Content)
		return result, nil
	}
	result.Reply = parsed.Reply
	result.ProductIDs = parsed.ProductIDs
	return result, nil
}

type consultOutput struct {
	Reply      string   `json:"reply"`
	ProductIDs []string `json:"product_ids"`
}

// parseConsultOutput extracts the JSON object, tolerating markdown fences
// and surrounding prose some models emit anyway.
func parseConsultOutput(content string) (*consultOutput, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var out consultOutput
	if err := json.Unmarshal([]byte(content[start:end+1]), &out); err != nil {
		return nil, err
	}
	if out.Reply == "" {
		return nil, fmt.Errorf("empty reply in model output")
	}
	return &out, nil
}
