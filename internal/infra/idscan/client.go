package idscan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/identity"
	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/config"
	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/errs"
)

// Client talks to the kiosk identity service (document scanner and face
// camera) over its HTTP API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.IdentityConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type scanResponse struct {
	Success    bool   `json:"success"`
	Name       string `json:"name"`
	IDNumber   string `json:"idNumber"`
	Gender     string `json:"gender"`
	BirthDate  string `json:"birthDate"`
	Address    string `json:"address"`
	Photo      string `json:"photo"`
	ExpiryDate string `json:"expiryDate"`
}

type faceMatchRequest struct {
	ReferencePhoto string `json:"referencePhoto"`
}

type faceMatchResponse struct {
	IsMatch   bool    `json:"isMatch"`
	Score     float64 `json:"score"`
	Liveness  bool    `json:"liveness"`
	LivePhoto string  `json:"livePhoto"`
}

func (c *Client) ScanDocument(ctx context.Context) (identity.ScanResult, error) {
	var res scanResponse
	if err := c.post(ctx, "/v1/scan", nil, &res); err != nil {
		return identity.ScanResult{}, err
	}
	return identity.ScanResult{
		Success:    res.Success,
		Name:       res.Name,
		IDNumber:   res.IDNumber,
		Gender:     res.Gender,
		BirthDate:  res.BirthDate,
		Address:    res.Address,
		PhotoB64:   res.Photo,
		ExpiryDate: res.ExpiryDate,
	}, nil
}

func (c *Client) MatchFace(ctx context.Context, referencePhotoB64 string) (identity.FaceMatchResult, error) {
	var res faceMatchResponse
	req := faceMatchRequest{ReferencePhoto: referencePhotoB64}
	if err := c.post(ctx, "/v1/face-match", req, &res); err != nil {
		return identity.FaceMatchResult{}, err
	}
	return identity.FaceMatchResult{
		IsMatch:  res.IsMatch,
		Score:    res.Score,
		Liveness: res.Liveness,
		PhotoB64: res.LivePhoto,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return errs.Wrap(err, "failed to encode identity request")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return errs.Wrap(err, "failed to build identity request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "identity service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.New(fmt.Sprintf("identity service returned status %d", resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode identity response")
	}
	return nil
}
