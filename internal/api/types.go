package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AddressList is one or more email addresses. A single address is sent as
// a JSON string and several as an array; both shapes decode.
type AddressList []string

// MarshalJSON implements json.Marshaler.
func (a AddressList) MarshalJSON() ([]byte, error) {
	switch len(a) {
	case 0:
		return []byte("null"), nil
	case 1:
		return json.Marshal(a[0])
	default:
		return json.Marshal([]string(a))
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AddressList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AddressList{s}
		return nil
	default:
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("address list: %w", err)
		}
		*a = list
		return nil
	}
}

// Clean returns the trimmed, non-blank addresses.
func (a AddressList) Clean() AddressList {
	var out AddressList
	for _, addr := range a {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// FlexString decodes a JSON string or number into a string.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// DomainStatus is the verification state of a domain or DNS record.
type DomainStatus string

// Domain statuses.
const (
	DomainStatusNotStarted       DomainStatus = "NOT_STARTED"
	DomainStatusPending          DomainStatus = "PENDING"
	DomainStatusSuccess          DomainStatus = "SUCCESS"
	DomainStatusFailed           DomainStatus = "FAILED"
	DomainStatusTemporaryFailure DomainStatus = "TEMPORARY_FAILURE"
)

// EmailStatus is the delivery state of an email.
type EmailStatus string

// Email statuses.
const (
	EmailStatusScheduled        EmailStatus = "SCHEDULED"
	EmailStatusQueued           EmailStatus = "QUEUED"
	EmailStatusSent             EmailStatus = "SENT"
	EmailStatusDeliveryDelayed  EmailStatus = "DELIVERY_DELAYED"
	EmailStatusBounced          EmailStatus = "BOUNCED"
	EmailStatusRejected         EmailStatus = "REJECTED"
	EmailStatusRenderingFailure EmailStatus = "RENDERING_FAILURE"
	EmailStatusDelivered        EmailStatus = "DELIVERED"
	EmailStatusOpened           EmailStatus = "OPENED"
	EmailStatusClicked          EmailStatus = "CLICKED"
	EmailStatusComplained       EmailStatus = "COMPLAINED"
	EmailStatusFailed           EmailStatus = "FAILED"
	EmailStatusCancelled        EmailStatus = "CANCELLED"
	EmailStatusSuppressed       EmailStatus = "SUPPRESSED"
)

// Domain is a sending domain.
type Domain struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	TeamID            int          `json:"teamId"`
	Status            DomainStatus `json:"status"`
	Region            string       `json:"region"`
	ClickTracking     bool         `json:"clickTracking"`
	OpenTracking      bool         `json:"openTracking"`
	PublicKey         string       `json:"publicKey"`
	DKIMStatus        *string      `json:"dkimStatus"`
	SPFDetails        *string      `json:"spfDetails"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
	DMARCAdded        bool         `json:"dmarcAdded"`
	IsVerifying       bool         `json:"isVerifying"`
	ErrorMessage      *string      `json:"errorMessage"`
	Subdomain         *string      `json:"subdomain"`
	VerificationError *string      `json:"verificationError"`
	LastCheckedTime   *time.Time   `json:"lastCheckedTime"`
	DNSRecords        []DNSRecord  `json:"dnsRecords"`
}

// DNSRecord is a record the domain owner must publish.
type DNSRecord struct {
	Type        string       `json:"type"`
	Name        string       `json:"name"`
	Value       string       `json:"value"`
	TTL         FlexString   `json:"ttl"`
	Priority    *FlexString  `json:"priority"`
	Status      DomainStatus `json:"status"`
	Recommended bool         `json:"recommended"`
}

// UnmarshalJSON defaults Status to NOT_STARTED.
func (r *DNSRecord) UnmarshalJSON(data []byte) error {
	type alias DNSRecord
	aux := alias{Status: DomainStatusNotStarted}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = DNSRecord(aux)
	return nil
}

// CreateDomainRequest registers a domain.
type CreateDomainRequest struct {
	Name   string `json:"name" validate:"notblank"`
	Region string `json:"region" validate:"notblank"`
}

// DeleteDomainResponse is returned by domain deletion.
type DeleteDomainResponse struct {
	ID      int    `json:"id"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VerifyDomainResponse is returned when verification is requested.
type VerifyDomainResponse struct {
	Message string `json:"message"`
}

// Attachment is a file sent with an email. Content is base64 encoded.
type Attachment struct {
	Filename string `json:"filename" validate:"notblank"`
	Content  string `json:"content" validate:"notblank"`
}

// SendEmailRequest describes one outbound email.
type SendEmailRequest struct {
	To          AddressList       `json:"to" validate:"notblank"`
	From        string            `json:"from" validate:"notblank"`
	Subject     string            `json:"subject,omitempty"`
	TemplateID  string            `json:"templateId,omitempty"`
	Variables   map[string]string `json:"variables,omitempty"`
	ReplyTo     AddressList       `json:"replyTo,omitempty"`
	CC          AddressList       `json:"cc,omitempty"`
	BCC         AddressList       `json:"bcc,omitempty"`
	Text        string            `json:"text,omitempty"`
	HTML        string            `json:"html,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Attachments []Attachment      `json:"attachments,omitempty" validate:"omitempty,dive"`
	ScheduledAt *time.Time        `json:"scheduledAt,omitempty"`
	InReplyToID string            `json:"inReplyToId,omitempty"`
}

// Normalize trims From and drops blank addresses.
func (r SendEmailRequest) Normalize() SendEmailRequest {
	r.From = strings.TrimSpace(r.From)
	r.To = r.To.Clean()
	r.ReplyTo = r.ReplyTo.Clean()
	r.CC = r.CC.Clean()
	r.BCC = r.BCC.Clean()
	return r
}

// SendEmailResponse identifies a queued email.
type SendEmailResponse struct {
	EmailID string `json:"emailId"`
}

// UpdateScheduleResponse identifies a rescheduled email.
type UpdateScheduleResponse struct {
	EmailID string `json:"emailId"`
}

// CancelScheduleResponse identifies a cancelled email.
type CancelScheduleResponse struct {
	EmailID string `json:"emailId"`
}

// BatchEmailResponse lists the ids of a batch, in request order.
type BatchEmailResponse struct {
	Data []SendEmailResponse `json:"data"`
}

// EmailEvent is one delivery event.
type EmailEvent struct {
	EmailID   string      `json:"emailId"`
	Status    EmailStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	Data      any         `json:"data"`
}

// Email is a sent or scheduled email with its events.
type Email struct {
	ID          string       `json:"id"`
	TeamID      int          `json:"teamId"`
	To          AddressList  `json:"to"`
	ReplyTo     AddressList  `json:"replyTo"`
	CC          AddressList  `json:"cc"`
	BCC         AddressList  `json:"bcc"`
	From        string       `json:"from"`
	Subject     string       `json:"subject"`
	HTML        *string      `json:"html"`
	Text        *string      `json:"text"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	EmailEvents []EmailEvent `json:"emailEvents"`
}

// EmailSummary is an email as returned by the list endpoint.
type EmailSummary struct {
	ID           string       `json:"id"`
	To           AddressList  `json:"to"`
	ReplyTo      AddressList  `json:"replyTo"`
	CC           AddressList  `json:"cc"`
	BCC          AddressList  `json:"bcc"`
	From         string       `json:"from"`
	Subject      string       `json:"subject"`
	HTML         *string      `json:"html"`
	Text         *string      `json:"text"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	LatestStatus *EmailStatus `json:"latestStatus"`
	ScheduledAt  *time.Time   `json:"scheduledAt"`
	DomainID     *int         `json:"domainId"`
}

// ListEmailsParams filters the email list.
type ListEmailsParams struct {
	Page      int       `validate:"gte=0"`
	Limit     int       `validate:"gte=0"`
	StartDate time.Time
	EndDate   time.Time
	DomainIDs []string
}

// Query renders the parameters, leaving zero values out.
func (p ListEmailsParams) Query() Query {
	q := Query{}
	if p.Page > 0 {
		q["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	if !p.StartDate.IsZero() {
		q["startDate"] = p.StartDate.UTC().Format(time.RFC3339)
	}
	if !p.EndDate.IsZero() {
		q["endDate"] = p.EndDate.UTC().Format(time.RFC3339)
	}
	switch len(p.DomainIDs) {
	case 0:
	case 1:
		q["domainId"] = p.DomainIDs[0]
	default:
		q["domainId"] = p.DomainIDs
	}
	return q
}

// ListEmailsResponse is one page of emails.
type ListEmailsResponse struct {
	Data  []EmailSummary `json:"data"`
	Count int            `json:"count"`
}

// UnmarshalJSON defaults Count to the page length when absent.
func (r *ListEmailsResponse) UnmarshalJSON(data []byte) error {
	var aux struct {
		Data  []EmailSummary `json:"data"`
		Count *int           `json:"count"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Data = aux.Data
	r.Count = len(aux.Data)
	if aux.Count != nil {
		r.Count = *aux.Count
	}
	return nil
}

// Contact is a member of a contact book.
type Contact struct {
	ID            string            `json:"id"`
	FirstName     *string           `json:"firstName"`
	LastName      *string           `json:"lastName"`
	Email         string            `json:"email"`
	Subscribed    bool              `json:"subscribed"`
	Properties    map[string]string `json:"properties"`
	ContactBookID string            `json:"contactBookId"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// UnmarshalJSON defaults Subscribed to true when absent.
func (c *Contact) UnmarshalJSON(data []byte) error {
	type alias Contact
	aux := struct {
		*alias
		Subscribed *bool `json:"subscribed"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Subscribed = aux.Subscribed == nil || *aux.Subscribed
	return nil
}

// ContactRequest is the payload for creating, updating or upserting a
// contact. Nil fields are left out.
type ContactRequest struct {
	Email      string            `json:"email,omitempty"`
	FirstName  *string           `json:"firstName,omitempty"`
	LastName   *string           `json:"lastName,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
	Subscribed *bool             `json:"subscribed,omitempty"`
}

// IsEmpty reports whether no field is set.
func (r ContactRequest) IsEmpty() bool {
	return strings.TrimSpace(r.Email) == "" && r.FirstName == nil && r.LastName == nil &&
		len(r.Properties) == 0 && r.Subscribed == nil
}

// ListContactsParams filters the contacts of a book. Emails and IDs are
// comma-separated lists.
type ListContactsParams struct {
	Emails string
	Page   int `validate:"gte=0"`
	Limit  int `validate:"gte=0"`
	IDs    string
}

// Query renders the parameters, leaving zero values out.
func (p ListContactsParams) Query() Query {
	q := Query{}
	if p.Emails != "" {
		q["emails"] = p.Emails
	}
	if p.Page > 0 {
		q["page"] = p.Page
	}
	if p.Limit > 0 {
		q["limit"] = p.Limit
	}
	if p.IDs != "" {
		q["ids"] = p.IDs
	}
	return q
}

// CreateContactResponse identifies a created contact.
type CreateContactResponse struct {
	ContactID string `json:"contactId"`
}

// UpdateContactResponse identifies an updated contact.
type UpdateContactResponse struct {
	ContactID string `json:"contactId"`
}

// UpsertContactResponse identifies an upserted contact.
type UpsertContactResponse struct {
	ContactID string `json:"contactId"`
}

// DeleteContactResponse reports contact deletion.
type DeleteContactResponse struct {
	Success bool `json:"success"`
}

// Campaign is a bulk send to a contact book.
type Campaign struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	From               string      `json:"from"`
	Subject            string      `json:"subject"`
	PreviewText        *string     `json:"previewText"`
	ContactBookID      *string     `json:"contactBookId"`
	Content            *string     `json:"content"`
	HTML               *string     `json:"html"`
	Status             string      `json:"status"`
	ScheduledAt        *time.Time  `json:"scheduledAt"`
	BatchSize          *int        `json:"batchSize"`
	BatchWindowMinutes *int        `json:"batchWindowMinutes"`
	Total              int         `json:"total"`
	Sent               int         `json:"sent"`
	Delivered          int         `json:"delivered"`
	Opened             int         `json:"opened"`
	Clicked            int         `json:"clicked"`
	Unsubscribed       int         `json:"unsubscribed"`
	Bounced            int         `json:"bounced"`
	HardBounced        int         `json:"hardBounced"`
	Complained         int         `json:"complained"`
	ReplyTo            AddressList `json:"replyTo"`
	CC                 AddressList `json:"cc"`
	BCC                AddressList `json:"bcc"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// CreateCampaignRequest describes a new campaign.
type CreateCampaignRequest struct {
	Name          string      `json:"name" validate:"notblank"`
	From          string      `json:"from" validate:"notblank"`
	Subject       string      `json:"subject" validate:"notblank"`
	ContactBookID string      `json:"contactBookId" validate:"notblank"`
	PreviewText   *string     `json:"previewText,omitempty"`
	Content       *string     `json:"content,omitempty"`
	HTML          *string     `json:"html,omitempty"`
	ReplyTo       AddressList `json:"replyTo,omitempty"`
	CC            AddressList `json:"cc,omitempty"`
	BCC           AddressList `json:"bcc,omitempty"`
	SendNow       *bool       `json:"sendNow,omitempty"`
	ScheduledAt   *time.Time  `json:"scheduledAt,omitempty"`
	BatchSize     *int        `json:"batchSize,omitempty" validate:"omitempty,gt=0"`
}

// Normalize trims the required fields and drops blank addresses.
func (r CreateCampaignRequest) Normalize() CreateCampaignRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.From = strings.TrimSpace(r.From)
	r.Subject = strings.TrimSpace(r.Subject)
	r.ContactBookID = strings.TrimSpace(r.ContactBookID)
	r.ReplyTo = r.ReplyTo.Clean()
	r.CC = r.CC.Clean()
	r.BCC = r.BCC.Clean()
	return r
}

// ScheduleCampaignRequest schedules a campaign. At least one field is required.
type ScheduleCampaignRequest struct {
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	BatchSize   *int       `json:"batchSize,omitempty" validate:"omitempty,gt=0"`
}

// ScheduleCampaignResponse reports campaign scheduling.
type ScheduleCampaignResponse struct {
	Success bool `json:"success"`
}

// SuccessResponse reports a state change.
type SuccessResponse struct {
	Success bool `json:"success"`
}
