package services

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"loyalty/internal/config"
	"loyalty/internal/metrics"
)

type MailingListServiceInterface interface {
	// SyncContact upserts the address into the configured audience,
	// best-effort. It returns immediately and never fails the caller.
	SyncContact(email string)
}

// mailchimpService talks to the Mailchimp marketing API v3. Member upsert is a
// PUT against the md5 of the lowercased address, so repeat syncs are idempotent.
type mailchimpService struct {
	cfg    config.MailingConfig
	client *http.Client
}

func NewMailchimpService(cfg config.MailingConfig) MailingListServiceInterface {
	return &mailchimpService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.SyncTimeout},
	}
}

func (m *mailchimpService) SyncContact(email string) {
	if m.cfg.APIKey == "" || m.cfg.ListID == "" {
		return
	}

	go func() {
		if err := m.upsertMember(email); err != nil {
			metrics.DispatchFailures.WithLabelValues("mailing").Inc()
			log.Printf("Mailchimp error: %v", err)
			return
		}
		log.Printf("Added %s to Mailchimp", email)
	}()
}

func (m *mailchimpService) upsertMember(email string) error {
	sum := md5.Sum([]byte(strings.ToLower(email)))
	endpoint := fmt.Sprintf("https://%s.api.mailchimp.com/3.0/lists/%s/members/%s",
		m.cfg.ServerPrefix, m.cfg.ListID, hex.EncodeToString(sum[:]))

	payload, err := json.Marshal(map[string]string{
		"email_address": email,
		"status_if_new": "subscribed",
	})
	if err != nil {
		return err
	}

	request, err := http.NewRequest(http.MethodPut, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	request.SetBasicAuth("anystring", m.cfg.APIKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := m.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		return fmt.Errorf("mailchimp responded %s", response.Status)
	}
	return nil
}
