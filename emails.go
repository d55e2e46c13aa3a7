package mailrify

import (
	"context"
	"time"
)

// Emails sends and tracks transactional email.
type Emails interface {
	// Send queues one email. From and at least one To address are required.
	Send(ctx context.Context, req SendEmailRequest) (*SendEmailResponse, error)

	// Get returns an email with its delivery events.
	Get(ctx context.Context, emailID string) (*Email, error)

	// List returns one page of emails.
	List(ctx context.Context, params ListEmailsParams) (*ListEmailsResponse, error)

	// UpdateSchedule moves a scheduled email to a new time.
	UpdateSchedule(ctx context.Context, emailID string, scheduledAt time.Time) (*UpdateScheduleResponse, error)

	// Cancel cancels a scheduled email.
	Cancel(ctx context.Context, emailID string) (*CancelScheduleResponse, error)

	// Batch queues several emails in one request. Each one is validated
	// like Send.
	Batch(ctx context.Context, emails []SendEmailRequest) (*BatchEmailResponse, error)
}

type emailsImpl struct {
	client *Client
}

// Emails returns the email service.
func (c *Client) Emails() Emails {
	return &emailsImpl{client: c}
}

func (e *emailsImpl) Send(ctx context.Context, req SendEmailRequest) (*SendEmailResponse, error) {
	if err := e.client.checkClosed(); err != nil {
		return nil, err
	}
	return e.client.apiClient.SendEmail(ctx, req)
}

func (e *emailsImpl) Get(ctx context.Context, emailID string) (*Email, error) {
	if err := e.client.checkClosed(); err != nil {
		return nil, err
	}
	return e.client.apiClient.GetEmail(ctx, emailID)
}

func (e *emailsImpl) List(ctx context.Context, params ListEmailsParams) (*ListEmailsResponse, error) {
	if err := e.client.checkClosed(); err != nil {
		return nil, err
	}
	return e.client.apiClient.ListEmails(ctx, params)
}

func (e *emailsImpl) UpdateSchedule(ctx context.Context, emailID string, scheduledAt time.Time) (*UpdateScheduleResponse, error) {
	if err := e.client.checkClosed(); err != nil {
		return nil, err
	}
	return e.client.apiClient.UpdateEmailSchedule(ctx, emailID, scheduledAt)
}

func (e *emailsImpl) Cancel(ctx context.Context, emailID string) (*CancelScheduleResponse, error) {
	if err := e.client.checkClosed(); err != nil {
		return nil, err
	}
	return e.client.apiClient.CancelEmail(ctx, emailID)
}

func (e *emailsImpl) Batch(ctx context.Context, emails []SendEmailRequest) (*BatchEmailResponse, error) {
	if err := e.client.checkClosed(); err != nil {
		return nil, err
	}
	return e.client.apiClient.SendBatch(ctx, emails)
}
