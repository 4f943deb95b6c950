package ai

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"gother/internal/config"
)

// Client is the AI capability layer. It owns the consultant chain and
// hides provider wiring from the service layer.
type Client struct {
	cfg        *config.AIConfig
	consultant *ConsultantChain
}

// NewClient creates the AI client. With no API key configured the client
// still constructs but every consultation returns an error, so the rest
// of the storefront runs without AI.
func NewClient(ctx context.Context, cfg *config.AIConfig) (*Client, error) {
	if cfg.APIKey == "" {
		log.Warn().Msg("AI API key not configured, consultant disabled")
		return &Client{cfg: cfg}, nil
	}

	consultant, err := NewConsultantChain(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create consultant chain: %w", err)
	}

	return &Client{
		cfg:        cfg,
		consultant: consultant,
	}, nil
}

// Enabled reports whether the consultant is usable
func (c *Client) Enabled() bool {
	return c.consultant != nil
}

// Consult runs one consultation turn
func (c *Client) Consult(ctx context.Context, req *ConsultRequest) (*ConsultResponse, error) {
	if c.consultant == nil {
		return nil, fmt.Errorf("consultant not configured")
	}
	return c.consultant.Run(ctx, req)
}
