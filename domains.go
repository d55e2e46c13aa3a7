package mailrify

import "context"

// Domains manages sending domains.
type Domains interface {
	// List returns all domains of the team.
	List(ctx context.Context) ([]Domain, error)

	// Create registers a domain. Name and Region are required.
	Create(ctx context.Context, req CreateDomainRequest) (*Domain, error)

	// Get returns a domain with its DNS records.
	Get(ctx context.Context, domainID string) (*Domain, error)

	// Delete removes a domain.
	Delete(ctx context.Context, domainID string) (*DeleteDomainResponse, error)

	// Verify asks the service to check the domain's DNS records again.
	Verify(ctx context.Context, domainID string) (*VerifyDomainResponse, error)
}

type domainsImpl struct {
	client *Client
}

// Domains returns the domain service.
func (c *Client) Domains() Domains {
	return &domainsImpl{client: c}
}

func (d *domainsImpl) List(ctx context.Context) ([]Domain, error) {
	if err := d.client.checkClosed(); err != nil {
		return nil, err
	}
	return d.client.apiClient.ListDomains(ctx)
}

func (d *domainsImpl) Create(ctx context.Context, req CreateDomainRequest) (*Domain, error) {
	if err := d.client.checkClosed(); err != nil {
		return nil, err
	}
	return d.client.apiClient.CreateDomain(ctx, req)
}

func (d *domainsImpl) Get(ctx context.Context, domainID string) (*Domain, error) {
	if err := d.client.checkClosed(); err != nil {
		return nil, err
	}
	return d.client.apiClient.GetDomain(ctx, domainID)
}

func (d *domainsImpl) Delete(ctx context.Context, domainID string) (*DeleteDomainResponse, error) {
	if err := d.client.checkClosed(); err != nil {
		return nil, err
	}
	return d.client.apiClient.DeleteDomain(ctx, domainID)
}

func (d *domainsImpl) Verify(ctx context.Context, domainID string) (*VerifyDomainResponse, error) {
	if err := d.client.checkClosed(); err != nil {
		return nil, err
	}
	return d.client.apiClient.VerifyDomain(ctx, domainID)
}
