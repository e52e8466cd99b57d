/*
Package req provides ergonomics for handling an HTTP request.

Handlers parse a request's parameters into application specific structs
with a Parser. A struct names its keys with "json" and "schema" struct
tags and its rules with "validate" tags.

Clients reach this API through several generations of storefront code,
so the same parameter may arrive as a query param on one request and a
JSON body key on the next. Parser.Parse folds both shapes into one
struct with a fixed precedence rather than forcing handlers to care.

The parade of errors that may propagate from decoding is translated to
cardstore sentinel errors in order to provide a consistent interface
for issues that arise across encoding types.
*/
package req
