package mailrify

import "context"

// Contacts manages the contacts of a contact book.
type Contacts interface {
	List(ctx context.Context, bookID string, params ListContactsParams) ([]Contact, error)

	// Create adds a contact. Email is required.
	Create(ctx context.Context, bookID string, req ContactRequest) (*CreateContactResponse, error)

	Get(ctx context.Context, bookID, contactID string) (*Contact, error)

	// Update changes the fields set in req. At least one must be set.
	Update(ctx context.Context, bookID, contactID string, req ContactRequest) (*UpdateContactResponse, error)

	// Upsert creates or replaces a contact. Email is required. Upserts are
	// not retried.
	Upsert(ctx context.Context, bookID, contactID string, req ContactRequest) (*UpsertContactResponse, error)

	Delete(ctx context.Context, bookID, contactID string) (*DeleteContactResponse, error)
}

type contactsImpl struct {
	client *Client
}

// Contacts returns the contact service.
func (c *Client) Contacts() Contacts {
	return &contactsImpl{client: c}
}

func (s *contactsImpl) List(ctx context.Context, bookID string, params ListContactsParams) ([]Contact, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	return s.client.apiClient.ListContacts(ctx, bookID, params)
}

func (s *contactsImpl) Create(ctx context.Context, bookID string, req ContactRequest) (*CreateContactResponse, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	return s.client.apiClient.CreateContact(ctx, bookID, req)
}

func (s *contactsImpl) Get(ctx context.Context, bookID, contactID string) (*Contact, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	return s.client.apiClient.GetContact(ctx, bookID, contactID)
}

func (s *contactsImpl) Update(ctx context.Context, bookID, contactID string, req ContactRequest) (*UpdateContactResponse, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	return s.client.apiClient.UpdateContact(ctx, bookID, contactID, req)
}

func (s *contactsImpl) Upsert(ctx context.Context, bookID, contactID string, req ContactRequest) (*UpsertContactResponse, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	return s.client.apiClient.UpsertContact(ctx, bookID, contactID, req)
}

func (s *contactsImpl) Delete(ctx context.Context, bookID, contactID string) (*DeleteContactResponse, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	return s.client.apiClient.DeleteContact(ctx, bookID, contactID)
}
