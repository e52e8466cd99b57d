/*
Package auth resolves bearer tokens into user identities.

The storefront's auth provider is external; what reaches this server is
the Authorization header of each request. Handlers that require a user
pass the stripped token to a Verifier and scope every subsequent query
to the Claims it returns.
*/
package auth
