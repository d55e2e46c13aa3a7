package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mailrify/mailrify-go/internal/apierrors"
	"github.com/mailrify/mailrify-go/internal/validation"
)

// SendEmail queues one email for delivery.
func (c *Client) SendEmail(ctx context.Context, req SendEmailRequest) (*SendEmailResponse, error) {
	req = req.Normalize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var result SendEmailResponse
	if err := c.Call(ctx, "POST", "/v1/emails", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetEmail retrieves an email with its delivery events.
func (c *Client) GetEmail(ctx context.Context, emailID string) (*Email, error) {
	if err := validation.ID("email id", emailID); err != nil {
		return nil, err
	}

	var result Email
	if err := c.Call(ctx, "GET", emailPath(emailID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListEmails returns one page of emails matching params.
func (c *Client) ListEmails(ctx context.Context, params ListEmailsParams) (*ListEmailsResponse, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	var result ListEmailsResponse
	if err := c.CallQuery(ctx, "GET", "/v1/emails", params.Query(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateEmailSchedule moves a scheduled email to scheduledAt.
func (c *Client) UpdateEmailSchedule(ctx context.Context, emailID string, scheduledAt time.Time) (*UpdateScheduleResponse, error) {
	if err := validation.ID("email id", emailID); err != nil {
		return nil, err
	}
	if scheduledAt.IsZero() {
		return nil, apierrors.NewValidationError("scheduledAt must be provided when updating a schedule")
	}

	body := struct {
		ScheduledAt time.Time `json:"scheduledAt"`
	}{ScheduledAt: scheduledAt}

	var result UpdateScheduleResponse
	if err := c.Call(ctx, "PATCH", emailPath(emailID), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CancelEmail cancels a scheduled email.
func (c *Client) CancelEmail(ctx context.Context, emailID string) (*CancelScheduleResponse, error) {
	if err := validation.ID("email id", emailID); err != nil {
		return nil, err
	}

	var result CancelScheduleResponse
	if err := c.Call(ctx, "POST", emailPath(emailID)+"/cancel", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendBatch queues several emails in one request.
func (c *Client) SendBatch(ctx context.Context, emails []SendEmailRequest) (*BatchEmailResponse, error) {
	if len(emails) == 0 {
		return nil, apierrors.NewValidationError("at least one email must be provided for batch sending")
	}

	payload := make([]SendEmailRequest, len(emails))
	for i, email := range emails {
		payload[i] = email.Normalize()
		if err := validation.Struct(payload[i]); err != nil {
			return nil, fmt.Errorf("email %d: %w", i, err)
		}
	}

	var result BatchEmailResponse
	if err := c.Call(ctx, "POST", "/v1/emails/batch", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func emailPath(emailID string) string {
	return fmt.Sprintf("/v1/emails/%s", url.PathEscape(emailID))
}
