package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailrify/mailrify-go/internal/apierrors"
)

func ptr[T any](v T) *T { return &v }

func TestDomainEndpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `[{"id":1,"name":"a.com"},{"id":2,"name":"b.com"}]`)}}
		c, _ := newTestClient(t, transport, 0)

		domains, err := c.ListDomains(ctx)
		require.NoError(t, err)
		assert.Len(t, domains, 2)
		assert.Equal(t, "GET", transport.requests[0].Method)
		assert.Equal(t, "https://api.test/v1/domains", transport.requests[0].URL)
	})

	t.Run("create trims fields", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"id":9,"name":"a.com","region":"us-east-1"}`)}}
		c, _ := newTestClient(t, transport, 0)

		domain, err := c.CreateDomain(ctx, CreateDomainRequest{Name: " a.com ", Region: " us-east-1 "})
		require.NoError(t, err)
		assert.Equal(t, 9, domain.ID)
		assert.Equal(t, "POST", transport.requests[0].Method)
		assert.JSONEq(t, `{"name":"a.com","region":"us-east-1"}`, string(transport.requests[0].Body))
	})

	t.Run("create requires name and region", func(t *testing.T) {
		transport := &fakeTransport{}
		c, _ := newTestClient(t, transport, 0)

		_, err := c.CreateDomain(ctx, CreateDomainRequest{Name: "  "})
		var vErr *apierrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Errors, 2)
		assert.Contains(t, vErr.Error(), `"name"`)
		assert.Contains(t, vErr.Error(), `"region"`)
		assert.Equal(t, 0, transport.sends())
	})

	t.Run("get escapes id", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"id":1}`)}}
		c, _ := newTestClient(t, transport, 0)

		_, err := c.GetDomain(ctx, "a/b c")
		require.NoError(t, err)
		assert.Equal(t, "https://api.test/v1/domains/a%2Fb%20c", transport.requests[0].URL)
	})

	t.Run("delete", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"id":1,"success":true,"message":"deleted"}`)}}
		c, _ := newTestClient(t, transport, 0)

		resp, err := c.DeleteDomain(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, DeleteDomainResponse{ID: 1, Success: true, Message: "deleted"}, *resp)
		assert.Equal(t, "DELETE", transport.requests[0].Method)
	})

	t.Run("verify", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"message":"verification started"}`)}}
		c, _ := newTestClient(t, transport, 0)

		resp, err := c.VerifyDomain(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "verification started", resp.Message)
		assert.Equal(t, "PUT", transport.requests[0].Method)
		assert.Equal(t, "https://api.test/v1/domains/1/verify", transport.requests[0].URL)
	})

	t.Run("blank id", func(t *testing.T) {
		transport := &fakeTransport{}
		c, _ := newTestClient(t, transport, 0)

		_, err := c.GetDomain(ctx, " ")
		assert.ErrorIs(t, err, apierrors.ErrValidation)
		assert.Equal(t, 0, transport.sends())
	})
}

func TestEmailEndpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("send normalizes addresses", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"emailId":"em_1"}`)}}
		c, _ := newTestClient(t, transport, 0)

		resp, err := c.SendEmail(ctx, SendEmailRequest{
			From:    "  sender@example.com ",
			To:      AddressList{" a@example.com ", "", "b@example.com"},
			CC:      AddressList{"  "},
			Subject: "Hi",
		})
		require.NoError(t, err)
		assert.Equal(t, "em_1", resp.EmailID)
		assert.Equal(t, "https://api.test/v1/emails", transport.requests[0].URL)
		assert.JSONEq(t, `{"from":"sender@example.com","to":["a@example.com","b@example.com"],"subject":"Hi"}`,
			string(transport.requests[0].Body))
	})

	t.Run("send requires from and to", func(t *testing.T) {
		transport := &fakeTransport{}
		c, _ := newTestClient(t, transport, 0)

		_, err := c.SendEmail(ctx, SendEmailRequest{From: " ", To: AddressList{"a@example.com"}})
		assert.ErrorIs(t, err, apierrors.ErrValidation)

		_, err = c.SendEmail(ctx, SendEmailRequest{From: "s@example.com", To: AddressList{" "}})
		assert.ErrorIs(t, err, apierrors.ErrValidation)
		assert.Equal(t, 0, transport.sends())
	})

	t.Run("get", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200,
			`{"id":"em_1","to":"a@example.com","emailEvents":[{"emailId":"em_1","status":"DELIVERED","createdAt":"2026-01-01T00:00:00Z"}]}`)}}
		c, _ := newTestClient(t, transport, 0)

		email, err := c.GetEmail(ctx, "em_1")
		require.NoError(t, err)
		assert.Equal(t, AddressList{"a@example.com"}, email.To)
		require.Len(t, email.EmailEvents, 1)
		assert.Equal(t, EmailStatusDelivered, email.EmailEvents[0].Status)
	})

	t.Run("list", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"data":[{"id":"em_1","latestStatus":"SENT"}]}`)}}
		c, _ := newTestClient(t, transport, 0)

		resp, err := c.ListEmails(ctx, ListEmailsParams{Page: 1, Limit: 10, DomainIDs: []string{"d1"}})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Count)
		require.NotNil(t, resp.Data[0].LatestStatus)
		assert.Equal(t, EmailStatusSent, *resp.Data[0].LatestStatus)
		assert.Equal(t, "https://api.test/v1/emails?domainId=d1&limit=10&page=1", transport.requests[0].URL)
	})

	t.Run("list rejects negative page", func(t *testing.T) {
		transport := &fakeTransport{}
		c, _ := newTestClient(t, transport, 0)

		_, err := c.ListEmails(ctx, ListEmailsParams{Page: -1})
		assert.ErrorIs(t, err, apierrors.ErrValidation)
	})

	t.Run("update schedule", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"emailId":"em_1"}`)}}
		c, _ := newTestClient(t, transport, 0)

		at := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
		resp, err := c.UpdateEmailSchedule(ctx, "em_1", at)
		require.NoError(t, err)
		assert.Equal(t, "em_1", resp.EmailID)
		assert.Equal(t, "PATCH", transport.requests[0].Method)
		assert.JSONEq(t, `{"scheduledAt":"2026-05-01T09:30:00Z"}`, string(transport.requests[0].Body))

		_, err = c.UpdateEmailSchedule(ctx, "em_1", time.Time{})
		assert.ErrorIs(t, err, apierrors.ErrValidation)
	})

	t.Run("cancel", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"emailId":"em_1"}`)}}
		c, _ := newTestClient(t, transport, 0)

		resp, err := c.CancelEmail(ctx, "em_1")
		require.NoError(t, err)
		assert.Equal(t, "em_1", resp.EmailID)
		assert.Equal(t, "POST", transport.requests[0].Method)
		assert.Equal(t, "https://api.test/v1/emails/em_1/cancel", transport.requests[0].URL)
	})

	t.Run("batch", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"data":[{"emailId":"a"},{"emailId":"b"}]}`)}}
		c, _ := newTestClient(t, transport, 0)

		resp, err := c.SendBatch(ctx, []SendEmailRequest{
			{From: "s@example.com", To: AddressList{"a@example.com"}},
			{From: "s@example.com", To: AddressList{"b@example.com", "c@example.com"}},
		})
		require.NoError(t, err)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "b", resp.Data[1].EmailID)
		assert.JSONEq(t, `[{"from":"s@example.com","to":"a@example.com"},{"from":"s@example.com","to":["b@example.com","c@example.com"]}]`,
			string(transport.requests[0].Body))
	})

	t.Run("batch validation", func(t *testing.T) {
		transport := &fakeTransport{}
		c, _ := newTestClient(t, transport, 0)

		_, err := c.SendBatch(ctx, nil)
		assert.ErrorIs(t, err, apierrors.ErrValidation)

		_, err = c.SendBatch(ctx, []SendEmailRequest{{From: "s@example.com", To: AddressList{"a@example.com"}}, {From: "s@example.com"}})
		assert.ErrorIs(t, err, apierrors.ErrValidation)
		assert.Contains(t, err.Error(), "email 1")
		assert.Equal(t, 0, transport.sends())
	})

	t.Run("send is not retried", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(503, `{"error":"unavailable"}`)}}
		c, _ := newTestClient(t, transport, 3)

		_, err := c.SendEmail(ctx, SendEmailRequest{From: "s@example.com", To: AddressList{"a@example.com"}})
		assert.ErrorIs(t, err, apierrors.ErrAPI)
		assert.Equal(t, 1, transport.sends())
	})
}

func TestContactEndpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `[{"id":"c1","email":"a@example.com"}]`)}}
		c, _ := newTestClient(t, transport, 0)

		contacts, err := c.ListContacts(ctx, "book_1", ListContactsParams{Emails: "a@example.com,b@example.com", Limit: 5})
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.True(t, contacts[0].Subscribed)
		assert.Equal(t, "https://api.test/v1/contactBooks/book_1/contacts?emails=a%40example.com%2Cb%40example.com&limit=5",
			transport.requests[0].URL)
	})

	t.Run("create requires email", func(t *testing.T) {
		transport := &fakeTransport{}
		c, _ := newTestClient(t, transport, 0)

		_, err := c.CreateContact(ctx, "book_1", ContactRequest{FirstName: ptr("Ada")})
		assert.ErrorIs(t, err, apierrors.ErrValidation)
		assert.Equal(t, 0, transport.sends())
	})

	t.Run("create", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"contactId":"c1"}`)}}
		c, _ := newTestClient(t, transport, 0)

		resp, err := c.CreateContact(ctx, "book_1", ContactRequest{
			Email:      " ada@example.com ",
			FirstName:  ptr("Ada"),
			Properties: map[string]string{"plan": "pro"},
			Subscribed: ptr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "c1", resp.ContactID)
		assert.Equal(t, "POST", transport.requests[0].Method)
		assert.JSONEq(t, `{"email":"ada@example.com","firstName":"Ada","properties":{"plan":"pro"},"subscribed":false}`,
			string(transport.requests[0].Body))
	})

	t.Run("get", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"id":"c1","email":"a@example.com","subscribed":false}`)}}
		c, _ := newTestClient(t, transport, 0)

		contact, err := c.GetContact(ctx, "book_1", "c1")
		require.NoError(t, err)
		assert.False(t, contact.Subscribed)
		assert.Equal(t, "https://api.test/v1/contactBooks/book_1/contacts/c1", transport.requests[0].URL)
	})

	t.Run("update needs a field", func(t *testing.T) {
		transport := &fakeTransport{}
		c, _ := newTestClient(t, transport, 0)

		_, err := c.UpdateContact(ctx, "book_1", "c1", ContactRequest{})
		assert.ErrorIs(t, err, apierrors.ErrValidation)
		assert.Equal(t, 0, transport.sends())
	})

	t.Run("update", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"contactId":"c1"}`)}}
		c, _ := newTestClient(t, transport, 0)

		resp, err := c.UpdateContact(ctx, "book_1", "c1", ContactRequest{LastName: ptr("Lovelace")})
		require.NoError(t, err)
		assert.Equal(t, "c1", resp.ContactID)
		assert.Equal(t, "PATCH", transport.requests[0].Method)
		assert.JSONEq(t, `{"lastName":"Lovelace"}`, string(transport.requests[0].Body))
	})

	t.Run("upsert is not retried", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(500, `{}`)}}
		c, _ := newTestClient(t, transport, 3)

		_, err := c.UpsertContact(ctx, "book_1", "c1", ContactRequest{Email: "a@example.com"})
		assert.ErrorIs(t, err, apierrors.ErrAPI)
		assert.Equal(t, "PUT", transport.requests[0].Method)
		assert.Equal(t, 1, transport.sends())
	})

	t.Run("upsert requires email", func(t *testing.T) {
		transport := &fakeTransport{}
		c, _ := newTestClient(t, transport, 0)

		_, err := c.UpsertContact(ctx, "book_1", "c1", ContactRequest{FirstName: ptr("Ada")})
		assert.ErrorIs(t, err, apierrors.ErrValidation)
	})

	t.Run("delete", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"success":true}`)}}
		c, _ := newTestClient(t, transport, 0)

		resp, err := c.DeleteContact(ctx, "book_1", "c1")
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "DELETE", transport.requests[0].Method)
	})

	t.Run("blank ids", func(t *testing.T) {
		transport := &fakeTransport{}
		c, _ := newTestClient(t, transport, 0)

		_, err := c.GetContact(ctx, "", "c1")
		assert.ErrorIs(t, err, apierrors.ErrValidation)
		_, err = c.DeleteContact(ctx, "book_1", " ")
		assert.ErrorIs(t, err, apierrors.ErrValidation)
		assert.Equal(t, 0, transport.sends())
	})
}

func TestCampaignEndpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"id":"cmp_1","name":"Launch","status":"DRAFT","total":0}`)}}
		c, _ := newTestClient(t, transport, 0)

		campaign, err := c.CreateCampaign(ctx, CreateCampaignRequest{
			Name:          " Launch ",
			From:          "team@example.com",
			Subject:       "Hello",
			ContactBookID: "book_1",
			ReplyTo:       AddressList{"reply@example.com"},
			BatchSize:     ptr(100),
		})
		require.NoError(t, err)
		assert.Equal(t, "cmp_1", campaign.ID)
		assert.JSONEq(t, `{"name":"Launch","from":"team@example.com","subject":"Hello","contactBookId":"book_1","replyTo":"reply@example.com","batchSize":100}`,
			string(transport.requests[0].Body))
	})

	t.Run("create validation", func(t *testing.T) {
		transport := &fakeTransport{}
		c, _ := newTestClient(t, transport, 0)

		_, err := c.CreateCampaign(ctx, CreateCampaignRequest{Name: "x", From: "f", Subject: "s"})
		var vErr *apierrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), `"contactBookId"`)

		_, err = c.CreateCampaign(ctx, CreateCampaignRequest{Name: "x", From: "f", Subject: "s", ContactBookID: "b", BatchSize: ptr(0)})
		assert.ErrorIs(t, err, apierrors.ErrValidation)
		assert.Equal(t, 0, transport.sends())
	})

	t.Run("get", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"id":"cmp_1","cc":["a@example.com","b@example.com"],"sent":10,"batchSize":null}`)}}
		c, _ := newTestClient(t, transport, 0)

		campaign, err := c.GetCampaign(ctx, "cmp_1")
		require.NoError(t, err)
		assert.Equal(t, 10, campaign.Sent)
		assert.Nil(t, campaign.BatchSize)
		assert.Equal(t, AddressList{"a@example.com", "b@example.com"}, campaign.CC)
	})

	t.Run("schedule", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"success":true}`)}}
		c, _ := newTestClient(t, transport, 0)

		resp, err := c.ScheduleCampaign(ctx, "cmp_1", ScheduleCampaignRequest{BatchSize: ptr(50)})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "https://api.test/v1/campaigns/cmp_1/schedule", transport.requests[0].URL)
		assert.JSONEq(t, `{"batchSize":50}`, string(transport.requests[0].Body))
	})

	t.Run("schedule validation", func(t *testing.T) {
		transport := &fakeTransport{}
		c, _ := newTestClient(t, transport, 0)

		_, err := c.ScheduleCampaign(ctx, "cmp_1", ScheduleCampaignRequest{})
		assert.ErrorIs(t, err, apierrors.ErrValidation)

		_, err = c.ScheduleCampaign(ctx, "cmp_1", ScheduleCampaignRequest{BatchSize: ptr(0)})
		assert.ErrorIs(t, err, apierrors.ErrValidation)

		_, err = c.ScheduleCampaign(ctx, "cmp_1", ScheduleCampaignRequest{ScheduledAt: &time.Time{}})
		assert.ErrorIs(t, err, apierrors.ErrValidation)
		assert.Equal(t, 0, transport.sends())
	})

	t.Run("pause and resume", func(t *testing.T) {
		transport := &fakeTransport{steps: []step{jsonResponse(200, `{"success":true}`)}}
		c, _ := newTestClient(t, transport, 0)

		_, err := c.PauseCampaign(ctx, "cmp_1")
		require.NoError(t, err)
		_, err = c.ResumeCampaign(ctx, "cmp_1")
		require.NoError(t, err)

		require.Equal(t, 2, transport.sends())
		assert.Equal(t, "https://api.test/v1/campaigns/cmp_1/pause", transport.requests[0].URL)
		assert.Equal(t, "https://api.test/v1/campaigns/cmp_1/resume", transport.requests[1].URL)
		assert.Equal(t, "POST", transport.requests[1].Method)
	})
}
