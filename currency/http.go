package currency

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient implements Client against the ledger's REST API.
type HTTPClient struct {
	client  *http.Client
	address string
	token   string
}

func NewHTTPClient(cfg *Config) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: time.Duration(cfg.LedgerTimeout) * time.Second},
		address: cfg.LedgerAddress,
		token:   cfg.LedgerToken,
	}
}

type transferRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    int64  `json:"amount"`
	KeepAlive bool   `json:"keep_alive"`
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *HTTPClient) Transfer(ctx context.Context, from, to string, amount int64, keepAlive bool) error {
	payload := new(bytes.Buffer)
	err := json.NewEncoder(payload).Encode(transferRequest{From: from, To: to, Amount: amount, KeepAlive: keepAlive})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address+"/v1/transfers", payload)
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

func (c *HTTPClient) Balance(ctx context.Context, accountID string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.address+"/v1/balances/"+accountID, nil)
	if err != nil {
		return 0, err
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, readError(resp)
	}

	balance := balanceResponse{}
	if err = json.NewDecoder(resp.Body).Decode(&balance); err != nil {
		return 0, err
	}
	return balance.Balance, nil
}

func (c *HTTPClient) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func readError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("currency: status %d", resp.StatusCode)
	}
	errResp := errorResponse{}
	if err = json.Unmarshal(body, &errResp); err != nil || errResp.Message == "" {
		return fmt.Errorf("currency: status %d, body: %s", resp.StatusCode, body)
	}
	switch errResp.Code {
	case "insufficient_funds":
		return ErrInsufficientFunds
	case "balance_too_low":
		return ErrBalanceTooLow
	}
	return fmt.Errorf("currency: %s", errResp.Message)
}
