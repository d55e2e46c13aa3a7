package mailrify

import "context"

// Campaigns manages bulk sends to contact books.
type Campaigns interface {
	// Create creates a campaign. Name, From, Subject and ContactBookID are
	// required.
	Create(ctx context.Context, req CreateCampaignRequest) (*Campaign, error)

	// Get returns a campaign with its delivery counters.
	Get(ctx context.Context, campaignID string) (*Campaign, error)

	// Schedule sets the send time or batch size. At least one is required.
	Schedule(ctx context.Context, campaignID string, req ScheduleCampaignRequest) (*ScheduleCampaignResponse, error)

	Pause(ctx context.Context, campaignID string) (*SuccessResponse, error)

	Resume(ctx context.Context, campaignID string) (*SuccessResponse, error)
}

type campaignsImpl struct {
	client *Client
}

// Campaigns returns the campaign service.
func (c *Client) Campaigns() Campaigns {
	return &campaignsImpl{client: c}
}

func (s *campaignsImpl) Create(ctx context.Context, req CreateCampaignRequest) (*Campaign, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	return s.client.apiClient.CreateCampaign(ctx, req)
}

func (s *campaignsImpl) Get(ctx context.Context, campaignID string) (*Campaign, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	return s.client.apiClient.GetCampaign(ctx, campaignID)
}

func (s *campaignsImpl) Schedule(ctx context.Context, campaignID string, req ScheduleCampaignRequest) (*ScheduleCampaignResponse, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	return s.client.apiClient.ScheduleCampaign(ctx, campaignID, req)
}

func (s *campaignsImpl) Pause(ctx context.Context, campaignID string) (*SuccessResponse, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	return s.client.apiClient.PauseCampaign(ctx, campaignID)
}

func (s *campaignsImpl) Resume(ctx context.Context, campaignID string) (*SuccessResponse, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	return s.client.apiClient.ResumeCampaign(ctx, campaignID)
}
