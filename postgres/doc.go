/*
Package postgres manages our database connection. As part of the connection process, we also ensure
that all migrations have been run on the proper database. The situation where the database is simply
a target for some testing has been considered as well. In this scenario, we are dropping the public
schema.

A basic set of query methods has been implemented as well. The DatabaseService interface exposes
those to resource handlers such that it can be substituted for testing that does not need an actual
database running in the environment. RPC rounds the interface out by invoking the storefront's
database-side routines by name.
*/
package postgres
