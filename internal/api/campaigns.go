package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mailrify/mailrify-go/internal/apierrors"
	"github.com/mailrify/mailrify-go/internal/validation"
)

// CreateCampaign creates a campaign for a contact book.
func (c *Client) CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*Campaign, error) {
	req = req.Normalize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var result Campaign
	if err := c.Call(ctx, "POST", "/v1/campaigns", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCampaign retrieves a campaign with its delivery counters.
func (c *Client) GetCampaign(ctx context.Context, campaignID string) (*Campaign, error) {
	if err := validation.ID("campaign id", campaignID); err != nil {
		return nil, err
	}

	var result Campaign
	if err := c.Call(ctx, "GET", campaignPath(campaignID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ScheduleCampaign schedules a campaign or changes its batch size.
func (c *Client) ScheduleCampaign(ctx context.Context, campaignID string, req ScheduleCampaignRequest) (*ScheduleCampaignResponse, error) {
	if err := validation.ID("campaign id", campaignID); err != nil {
		return nil, err
	}
	if req.ScheduledAt == nil && req.BatchSize == nil {
		return nil, apierrors.NewValidationError("at least %q or %q must be provided when scheduling a campaign", "scheduledAt", "batchSize")
	}
	if req.ScheduledAt != nil && req.ScheduledAt.IsZero() {
		return nil, apierrors.NewValidationError("scheduledAt cannot be empty when provided")
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var result ScheduleCampaignResponse
	if err := c.Call(ctx, "POST", campaignPath(campaignID)+"/schedule", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PauseCampaign pauses a running campaign.
func (c *Client) PauseCampaign(ctx context.Context, campaignID string) (*SuccessResponse, error) {
	return c.campaignAction(ctx, campaignID, "pause")
}

// ResumeCampaign resumes a paused campaign.
func (c *Client) ResumeCampaign(ctx context.Context, campaignID string) (*SuccessResponse, error) {
	return c.campaignAction(ctx, campaignID, "resume")
}

func (c *Client) campaignAction(ctx context.Context, campaignID, action string) (*SuccessResponse, error) {
	if err := validation.ID("campaign id", campaignID); err != nil {
		return nil, err
	}

	var result SuccessResponse
	if err := c.Call(ctx, "POST", campaignPath(campaignID)+"/"+action, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func campaignPath(campaignID string) string {
	return fmt.Sprintf("/v1/campaigns/%s", url.PathEscape(campaignID))
}
