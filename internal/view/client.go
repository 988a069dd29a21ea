package view

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"catchlog/internal/models"
)

type listEnvelope struct {
	Success bool                 `json:"success"`
	Data    []models.CatchRecord `json:"data"`
}

type createEnvelope struct {
	Success bool                `json:"success"`
	Data    *models.CatchRecord `json:"data"`
}

// HTTPCollaborator talks to a running catchlogd over its JSON API.
type HTTPCollaborator struct {
	base   string
	client *http.Client
}

func NewHTTPCollaborator(base string) *HTTPCollaborator {
	return &HTTPCollaborator{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{},
	}
}

func (c *HTTPCollaborator) List(ctx context.Context) (ListResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/catches", nil)
	if err != nil {
		return ListResult{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return ListResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ListResult{}, fmt.Errorf("list catches: unexpected status %d", resp.StatusCode)
	}

	var env listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return ListResult{}, err
	}
	return ListResult{Success: env.Success, Data: env.Data}, nil
}

func (c *HTTPCollaborator) Create(ctx context.Context, payload models.CatchInput) (CreateResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return CreateResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/catches", bytes.NewReader(body))
	if err != nil {
		return CreateResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return CreateResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		// Drain so the connection can be reused; the view only needs the
		// binary outcome.
		_, _ = io.Copy(io.Discard, resp.Body)
		return CreateResult{Success: false}, nil
	}

	var env createEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return CreateResult{}, err
	}
	return CreateResult{Success: env.Success, Data: env.Data}, nil
}
