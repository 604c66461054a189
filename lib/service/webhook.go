package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// StartWebhookSubscription posts every event on the channel to the webhook
// url until the context is cancelled. Callers subscribe the channel before
// starting this loop (SubscribeListedSoldEvents) so no event published in
// the meantime is dropped.
func (svc *MarketService) StartWebhookSubscription(ctx context.Context, url string, events chan Event) {
	svc.Logger.Infof("Starting webhook subscription with webhook url %s", url)
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-events:
			svc.postToWebhook(event, url)
		}
	}
}

func (svc *MarketService) postToWebhook(event Event, url string) {
	payload := new(bytes.Buffer)
	err := json.NewEncoder(payload).Encode(event)
	if err != nil {
		svc.Logger.Error(err)
		return
	}

	resp, err := http.Post(url, "application/json", payload)
	if err != nil {
		svc.Logger.Error(err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(resp.Body)
		if err != nil {
			svc.Logger.Error(err)
		}
		svc.Logger.Errorf("Webhook status code was %d, body: %s", resp.StatusCode, msg)
	}
}
