// Package mailrify provides a Go client SDK for Mailrify, a transactional
// and campaign email service.
//
// The SDK covers domains, emails, contacts and campaigns. Requests are
// validated locally before anything is sent, GET and HEAD requests are
// retried with exponential backoff on network failures, 429 and 5xx
// responses, and failures are reported as typed errors.
//
// Basic usage:
//
//	client, err := mailrify.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Emails().Send(ctx, mailrify.SendEmailRequest{
//	    From:    "hello@example.com",
//	    To:      mailrify.AddressList{"user@example.com"},
//	    Subject: "Welcome",
//	    HTML:    "<p>Thanks for signing up.</p>",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Queued:", resp.EmailID)
//
// Configuration is read from options first, then from the MAILRIFY_API_KEY,
// MAILRIFY_BASE_URL, MAILRIFY_TIMEOUT, MAILRIFY_MAX_RETRIES, MAILRIFY_DEBUG
// and MAILRIFY_USER_AGENT environment variables, then from defaults.
//
// Errors can be inspected with errors.Is against the sentinels, with
// errors.As against the concrete types, or with KindOf:
//
//	switch mailrify.KindOf(err) {
//	case mailrify.KindRateLimit:
//	    var apiErr *mailrify.APIError
//	    errors.As(err, &apiErr)
//	    time.Sleep(apiErr.RetryAfter)
//	case mailrify.KindValidation:
//	    // fix the request
//	}
package mailrify
