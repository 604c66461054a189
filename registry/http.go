package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient implements Client against the registry's REST API.
type HTTPClient struct {
	client  *http.Client
	address string
	token   string
}

func NewHTTPClient(cfg *Config) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: time.Duration(cfg.RegistryTimeout) * time.Second},
		address: cfg.RegistryAddress,
		token:   cfg.RegistryToken,
	}
}

type holdingsResponse struct {
	Quantity uint64 `json:"quantity"`
}

type transferRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Quantity uint64 `json:"quantity"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *HTTPClient) AmountOwned(ctx context.Context, assetID, accountID string) (uint64, error) {
	url := fmt.Sprintf("%s/v1/assets/%s/holdings/%s", c.address, assetID, accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		// unknown asset or account: nothing owned
		return 0, nil
	}
	if resp.StatusCode != http.StatusOK {
		return 0, readError(resp)
	}

	holdings := holdingsResponse{}
	if err = json.NewDecoder(resp.Body).Decode(&holdings); err != nil {
		return 0, err
	}
	return holdings.Quantity, nil
}

func (c *HTTPClient) Transfer(ctx context.Context, assetID, from, to string, quantity uint64) error {
	payload := new(bytes.Buffer)
	if err := json.NewEncoder(payload).Encode(transferRequest{From: from, To: to, Quantity: quantity}); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/v1/assets/%s/transfers", c.address, assetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return readError(resp)
	}
	return nil
}

func (c *HTTPClient) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func readError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("registry: status %d", resp.StatusCode)
	}
	errResp := errorResponse{}
	if err = json.Unmarshal(body, &errResp); err != nil || errResp.Message == "" {
		return fmt.Errorf("registry: status %d, body: %s", resp.StatusCode, body)
	}
	if errResp.Code == "not_enough_holdings" {
		return ErrNotEnoughHoldings
	}
	return fmt.Errorf("registry: %s", errResp.Message)
}
