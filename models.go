package mailrify

import "github.com/mailrify/mailrify-go/internal/api"

// AddressList is one or more email addresses. A single address is sent as
// a JSON string and several as an array; both shapes decode.
type AddressList = api.AddressList

// DomainStatus is the verification state of a domain or DNS record.
type DomainStatus = api.DomainStatus

// Domain statuses.
const (
	DomainStatusNotStarted       = api.DomainStatusNotStarted
	DomainStatusPending          = api.DomainStatusPending
	DomainStatusSuccess          = api.DomainStatusSuccess
	DomainStatusFailed           = api.DomainStatusFailed
	DomainStatusTemporaryFailure = api.DomainStatusTemporaryFailure
)

// EmailStatus is the delivery state of an email.
type EmailStatus = api.EmailStatus

// Email statuses.
const (
	EmailStatusScheduled        = api.EmailStatusScheduled
	EmailStatusQueued           = api.EmailStatusQueued
	EmailStatusSent             = api.EmailStatusSent
	EmailStatusDeliveryDelayed  = api.EmailStatusDeliveryDelayed
	EmailStatusBounced          = api.EmailStatusBounced
	EmailStatusRejected         = api.EmailStatusRejected
	EmailStatusRenderingFailure = api.EmailStatusRenderingFailure
	EmailStatusDelivered        = api.EmailStatusDelivered
	EmailStatusOpened           = api.EmailStatusOpened
	EmailStatusClicked          = api.EmailStatusClicked
	EmailStatusComplained       = api.EmailStatusComplained
	EmailStatusFailed           = api.EmailStatusFailed
	EmailStatusCancelled        = api.EmailStatusCancelled
	EmailStatusSuppressed       = api.EmailStatusSuppressed
)

// Domain models.
type (
	Domain               = api.Domain
	DNSRecord            = api.DNSRecord
	CreateDomainRequest  = api.CreateDomainRequest
	DeleteDomainResponse = api.DeleteDomainResponse
	VerifyDomainResponse = api.VerifyDomainResponse
)

// Email models.
type (
	Attachment             = api.Attachment
	SendEmailRequest       = api.SendEmailRequest
	SendEmailResponse      = api.SendEmailResponse
	Email                  = api.Email
	EmailEvent             = api.EmailEvent
	EmailSummary           = api.EmailSummary
	ListEmailsParams       = api.ListEmailsParams
	ListEmailsResponse     = api.ListEmailsResponse
	UpdateScheduleResponse = api.UpdateScheduleResponse
	CancelScheduleResponse = api.CancelScheduleResponse
	BatchEmailResponse     = api.BatchEmailResponse
)

// Contact models.
type (
	Contact               = api.Contact
	ContactRequest        = api.ContactRequest
	ListContactsParams    = api.ListContactsParams
	CreateContactResponse = api.CreateContactResponse
	UpdateContactResponse = api.UpdateContactResponse
	UpsertContactResponse = api.UpsertContactResponse
	DeleteContactResponse = api.DeleteContactResponse
)

// Campaign models.
type (
	Campaign                 = api.Campaign
	CreateCampaignRequest    = api.CreateCampaignRequest
	ScheduleCampaignRequest  = api.ScheduleCampaignRequest
	ScheduleCampaignResponse = api.ScheduleCampaignResponse
	SuccessResponse          = api.SuccessResponse
)
