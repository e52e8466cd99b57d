/*
Package server initializes and runs a cardstore app with sane defaults.

A Server ought to be constructed with New using a Config read by NewConfig.
(*Server).Run begins the web server and blocks until a shutdown signal
or (*Server).Shutdown stops it.

Configuration happens through environment variables, which may be set in
a file called ".env" found in the directory the application is executed
from. The available environment variables are:

  - DATABASE_HOST: the host the database is running on; default: localhost
  - DATABASE_NAME: the name of the database
  - DATABASE_PASSWORD: the password for authenticating a connection to the database
  - DATABASE_PORT: the port the database is listening on; default: 5432
  - DATABASE_SSLMODE: the sslmode to connect with; default: prefer
  - DATABASE_URL: the fully-qualified connection string; replaces all other DATABASE_* env vars
  - DATABASE_USER: the user for authenticating a connection to the database
  - ENVIRONMENT: the environment the application is running in; default: DEVELOPMENT
  - FUNCTION_NAME: a deployment path prefix to strip from request URLs before routing
  - LOG_LEVEL: the level at which to begin logging; default: INFO
  - PORT: the port the application should listen on; default: :8000
  - REDIS_URL: the connection string of a Redis instance backing the checkout idempotency cache
  - SENTRY_DSN: the DSN errors and panics are reported to
  - SERVER_IDLE_TIMEOUT: the keep-alive idle timeout, as understood by time.ParseDuration; default: 120s
  - SERVER_READ_TIMEOUT: the timeout for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout for writing HTTP responses; default: 10s
  - SERVICE_KEY: the HMAC secret bearer tokens are verified against
*/
package server
