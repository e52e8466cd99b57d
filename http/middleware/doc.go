/*
Package middleware defines what a middleware is in cardstore and the set
the API server composes around its routes.

The available middlewares are:
- CORS
- CurrentUser
- Idempotent
- InjectIPAddress
- LogRequest
- RateLimit
- ReportPanic
- RequestID
- StripFunctionPrefix

Due to the amount of configuration required, middleware does not provide
a default middleware chain; the server package composes its own.
*/
package middleware
