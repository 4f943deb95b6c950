package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"gother/internal/ai"
	"gother/internal/model/store"
)

// ConsultResult is a consultation answer with the recommended items
// resolved against the live catalog.
type ConsultResult struct {
	Reply    string           `json:"reply"`
	Products []*store.Product `json:"products"`
}

// ConsultantService orchestrates the gift consultant: it digests the
// catalog for the model and resolves the model's picks back to products.
type ConsultantService struct {
	aiClient *ai.Client
	catalog  *CatalogService
}

// NewConsultantService creates the consultant service
func NewConsultantService(aiClient *ai.Client, catalog *CatalogService) *ConsultantService {
	return &ConsultantService{
		aiClient: aiClient,
		catalog:  catalog,
	}
}

// Enabled reports whether consultations can be served
func (s *ConsultantService) Enabled() bool {
	return s.aiClient != nil && s.aiClient.Enabled()
}

// Consult answers a customer's gifting question with recommendations
// drawn only from the current catalog.
func (s *ConsultantService) Consult(ctx context.Context, query string) (*ConsultResult, error) {
	products, err := s.catalog.ListProducts(ctx, "")
	if err != nil {
		return nil, err
	}

	resp, err := s.aiClient.Consult(ctx, &ai.ConsultRequest{
		Query:         query,
		CatalogDigest: digestCatalog(products),
	})
	if err != nil {
		log.Error().Err(err).Msg("consultation failed")
		return nil, err
	}

	byID := make(map[string]*store.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// hallucinated ids are dropped silently
	picks := make([]*store.Product, 0, len(resp.ProductIDs))
	for _, pid := range resp.ProductIDs {
		if p, ok := byID[pid]; ok {
			picks = append(picks, p)
		}
	}

	log.Info().
		Int("picks", len(picks)).
		Int("prompt_tokens", resp.PromptTokens).
		Int("output_tokens", resp.OutputTokens).
		Msg("consultation completed")

	return &ConsultResult{
		Reply:    resp.Reply,
		Products: picks,
	}, nil
}

// digestCatalog renders the catalog as compact one-line entries
func digestCatalog(products []*store.Product) string {
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "- id=%s name=%q name_ar=%q category=%s price=%.2f",
			p.ID, p.Name, p.NameAr, p.Category, p.Price)
		if len(p.Formats) > 0 {
			formats := make([]string, len(p.Formats))
			for i, f := range p.Formats {
				formats[i] = string(f)
			}
			fmt.Fprintf(&b, " formats=%s", strings.Join(formats, ","))
		}
		if p.Level != "" {
			fmt.Fprintf(&b, " level=%s", p.Level)
		}
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "(catalog is empty)"
	}
	return b.String()
}
