package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mailrify/mailrify-go/internal/validation"
)

// ListDomains returns the team's domains.
func (c *Client) ListDomains(ctx context.Context) ([]Domain, error) {
	var result []Domain
	if err := c.Call(ctx, "GET", "/v1/domains", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateDomain registers a domain for sending.
func (c *Client) CreateDomain(ctx context.Context, req CreateDomainRequest) (*Domain, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Region = strings.TrimSpace(req.Region)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var result Domain
	if err := c.Call(ctx, "POST", "/v1/domains", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDomain retrieves a domain with its DNS records.
func (c *Client) GetDomain(ctx context.Context, domainID string) (*Domain, error) {
	if err := validation.ID("domain id", domainID); err != nil {
		return nil, err
	}

	var result Domain
	if err := c.Call(ctx, "GET", domainPath(domainID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteDomain removes a domain.
func (c *Client) DeleteDomain(ctx context.Context, domainID string) (*DeleteDomainResponse, error) {
	if err := validation.ID("domain id", domainID); err != nil {
		return nil, err
	}

	var result DeleteDomainResponse
	if err := c.Call(ctx, "DELETE", domainPath(domainID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// VerifyDomain asks the service to re-check the domain's DNS records.
func (c *Client) VerifyDomain(ctx context.Context, domainID string) (*VerifyDomainResponse, error) {
	if err := validation.ID("domain id", domainID); err != nil {
		return nil, err
	}

	var result VerifyDomainResponse
	if err := c.Call(ctx, "PUT", domainPath(domainID)+"/verify", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func domainPath(domainID string) string {
	return fmt.Sprintf("/v1/domains/%s", url.PathEscape(domainID))
}
