package mailrify

import "github.com/mailrify/mailrify-go/internal/api"

// Version is the SDK release.
const Version = api.Version
