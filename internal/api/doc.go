// Package api handles incoming HTTP requests for the account and
// workout endpoints: routing glue, request decoding and validation,
// error-to-status mapping, and response formatting. It adapts HTTP
// concerns to the service layer and nothing below it.
package api
