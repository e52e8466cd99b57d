/*
Package router wraps [mux.Router] with a standardized data model for
registering how requests should be routed.

A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

It is often the case that many routes for a server share identical middleware stacks,
which aid in directing, redirecting, or adding contextual information to a request.
Thus, a [Router] provides conveniences for making a single call to register many
logically associated Routes, and for applying a stack to every request.
*/
package router
