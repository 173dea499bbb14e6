// Package nutrition fetches nutrition facts from an external web service.
// The rest of the application only depends on the Lookup interface, and any
// lookup failure is expected to degrade to locally stored facts.
package nutrition

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/expirysense/expirysense/internal/model"
)

const (
	apiURL         = "https://api.api-ninjas.com/v1/nutrition"
	defaultTimeout = 10 * time.Second
)

// Lookup resolves nutrition facts for a food or recipe name.
type Lookup interface {
	Facts(ctx context.Context, food string) (*model.Nutrition, error)
}

type client struct {
	httpClient *resty.Client
	url        string
}

// NewClient creates a configured nutrition API client.
func NewClient(apiKey string) Lookup {
	hc := resty.New().
		SetHeader("X-Api-Key", apiKey).
		SetHeader("Accept", "application/json").
		SetTimeout(defaultTimeout)

	return &client{httpClient: hc, url: apiURL}
}

type nutritionItem struct {
	Name           string  `json:"name"`
	Calories       float64 `json:"calories"`
	ProteinG       float64 `json:"protein_g"`
	FatTotalG      float64 `json:"fat_total_g"`
	CarbohydratesG float64 `json:"carbohydrates_total_g"`
}

// Facts queries the service for a single food name. When the query resolves
// to multiple foods (e.g. a whole recipe), the figures are summed.
func (c *client) Facts(ctx context.Context, food string) (*model.Nutrition, error) {
	var items []nutritionItem

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("query", food).
		SetResult(&items).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("querying nutrition service: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("nutrition service returned %s", resp.Status())
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no nutrition data for %q", food)
	}

	facts := &model.Nutrition{}
	for _, item := range items {
		facts.Calories += item.Calories
		facts.Protein += item.ProteinG
		facts.Fat += item.FatTotalG
		facts.Carbohydrates += item.CarbohydratesG
	}
	return facts, nil
}
