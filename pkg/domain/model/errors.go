package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for categorization. Every error surfaced by an export run
// carries one of them.
var (
	ErrTagMissingCredential     = goerr.NewTag("missing_credential")
	ErrTagInvalidOutputFormat   = goerr.NewTag("invalid_output_format")
	ErrTagUpstreamRequestFailed = goerr.NewTag("upstream_request_failed")
	ErrTagMalformedMember       = goerr.NewTag("malformed_member")
)
