/*
Package resp provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

Every response is JSON. The status code follows from the shape of what
a handler hands over: payloads write with a 200, payloads describing a
client mistake (an "error" key) write with a 400, and a thrown error
writes the {"error": ...} envelope with a 500.
*/
package resp
