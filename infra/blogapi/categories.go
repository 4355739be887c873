package blogapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Dawaman43/blog-site-frontend/domain"
)

// categoryService implements app.CategoryService against the platform API.
type categoryService struct {
	client *Client
}

// NewCategoryService creates a CategoryService backed by the platform API.
func NewCategoryService(client *Client) *categoryService {
	return &categoryService{client: client}
}

func (s *categoryService) List(ctx context.Context) ([]domain.Category, error) {
	data, err := s.client.Get(ctx, "/api/categories")
	if err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}

	var payload struct {
		Categories []apiCategory `json:"categories"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parsing categories: %w", err)
	}

	out := make([]domain.Category, 0, len(payload.Categories))
	for _, c := range payload.Categories {
		out = append(out, domain.Category{
			ID:    c.ID,
			Slug:  c.Slug,
			Name:  c.Name,
			Count: c.Count,
		})
	}
	return out, nil
}
