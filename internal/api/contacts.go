package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mailrify/mailrify-go/internal/apierrors"
	"github.com/mailrify/mailrify-go/internal/validation"
)

// ListContacts returns contacts of a contact book.
func (c *Client) ListContacts(ctx context.Context, bookID string, params ListContactsParams) ([]Contact, error) {
	if err := validation.ID("contact book id", bookID); err != nil {
		return nil, err
	}
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	var result []Contact
	if err := c.CallQuery(ctx, "GET", contactsPath(bookID), params.Query(), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateContact adds a contact to a book.
func (c *Client) CreateContact(ctx context.Context, bookID string, req ContactRequest) (*CreateContactResponse, error) {
	if err := validation.ID("contact book id", bookID); err != nil {
		return nil, err
	}
	req, err := prepareContact(req, true)
	if err != nil {
		return nil, err
	}

	var result CreateContactResponse
	if err := c.Call(ctx, "POST", contactsPath(bookID), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetContact retrieves one contact.
func (c *Client) GetContact(ctx context.Context, bookID, contactID string) (*Contact, error) {
	path, err := contactPath(bookID, contactID)
	if err != nil {
		return nil, err
	}

	var result Contact
	if err := c.Call(ctx, "GET", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateContact changes the fields set in req.
func (c *Client) UpdateContact(ctx context.Context, bookID, contactID string, req ContactRequest) (*UpdateContactResponse, error) {
	path, err := contactPath(bookID, contactID)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, apierrors.NewValidationError("at least one field is required to update a contact")
	}
	req, err = prepareContact(req, false)
	if err != nil {
		return nil, err
	}

	var result UpdateContactResponse
	if err := c.Call(ctx, "PATCH", path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpsertContact creates or replaces the contact with contactID.
func (c *Client) UpsertContact(ctx context.Context, bookID, contactID string, req ContactRequest) (*UpsertContactResponse, error) {
	path, err := contactPath(bookID, contactID)
	if err != nil {
		return nil, err
	}
	req, err = prepareContact(req, true)
	if err != nil {
		return nil, err
	}

	var result UpsertContactResponse
	if err := c.Call(ctx, "PUT", path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteContact removes a contact from a book.
func (c *Client) DeleteContact(ctx context.Context, bookID, contactID string) (*DeleteContactResponse, error) {
	path, err := contactPath(bookID, contactID)
	if err != nil {
		return nil, err
	}

	var result DeleteContactResponse
	if err := c.Call(ctx, "DELETE", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func prepareContact(req ContactRequest, requireEmail bool) (ContactRequest, error) {
	req.Email = strings.TrimSpace(req.Email)
	if requireEmail && req.Email == "" {
		return req, apierrors.NewValidationError("the %q field is required for this operation", "email")
	}
	return req, nil
}

func contactsPath(bookID string) string {
	return fmt.Sprintf("/v1/contactBooks/%s/contacts", url.PathEscape(bookID))
}

func contactPath(bookID, contactID string) (string, error) {
	if err := validation.ID("contact book id", bookID); err != nil {
		return "", err
	}
	if err := validation.ID("contact id", contactID); err != nil {
		return "", err
	}
	return contactsPath(bookID) + "/" + url.PathEscape(contactID), nil
}
