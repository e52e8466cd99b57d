/*
Package handler implements the storefront's resource endpoints.

One file per resource holds every HTTP-method branch of one path
prefix. Handlers share a small contract: parse the request's parameters
into a typed struct, enforce user scoping where the resource demands
it, make sequential calls against the injected DatabaseService, and
hand the payload or the error to the responder. No handler retries a
failed database call or recovers partway, with the single exception of
the row-by-row collection import.
*/
package handler
