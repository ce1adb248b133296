package services

import (
	"context"
	"time"

	fcm "google.golang.org/api/fcm/v1"
	"google.golang.org/api/option"
	"golang.org/x/time/rate"

	"loyalty/internal/config"
)

// PushProvider is the outbound push transport. Implementations return provider
// errors; swallowing them is the dispatcher's job, not the provider's.
type PushProvider interface {
	Send(ctx context.Context, token, title, body string) error
}

type fcmPushProvider struct {
	messages *fcm.ProjectsMessagesService
	parent   string
	limiter  *rate.Limiter
	timeout  time.Duration
}

func NewFCMPushProvider(cfg config.FCMConfig) (PushProvider, error) {
	svc, err := fcm.NewService(context.Background(), option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, err
	}

	burst := int(cfg.SendsPerSecond)
	if burst < 1 {
		burst = 1
	}

	return &fcmPushProvider{
		messages: svc.Projects.Messages,
		parent:   "projects/" + cfg.ProjectID,
		limiter:  rate.NewLimiter(rate.Limit(cfg.SendsPerSecond), burst),
		timeout:  cfg.SendTimeout,
	}, nil
}

// Send delivers one push. The deadline covers both the rate-limiter wait and
// the provider call so a hung FCM endpoint cannot stall the caller.
func (p *fcmPushProvider) Send(ctx context.Context, token, title, body string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}

	request := &fcm.SendMessageRequest{
		Message: &fcm.Message{
			Token: token,
			Notification: &fcm.Notification{
				Title: title,
				Body:  body,
			},
		},
	}

	_, err := p.messages.Send(p.parent, request).Context(ctx).Do()
	return err
}
