/*

Package logger provides logging functionality to a cardstore app by defining the required behavior in [Logger]
and providing an implementation of it with [StoreLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [StoreLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*StoreLogger.Warn], [*StoreLogger.Error], and [*StoreLogger.Fatal] produce messages.

# StoreLogger

The [StoreLogger] provides all the logging functionality needed for a cardstore app.
It is the implementation of [Logger] returned by the [New] function.

Log messages emitted by [StoreLogger] are composed of a few parts:
	- timestamp
	- log level
	- call site
	- message
	- log context

Here's an example:
	2023/11/02 15:55:21 [DEBUG] handler/cards.go:43 'such fun!' log_context: "{"user":"{"id": 1, "email": "store@example.com"}}"

The file, line number, and parent directory of where a [StoreLogger] comprise the call site.
The message is the actual string passed into the [StoreLogger] method, in this example, [*StoreLogger.Debug].
Lastly, the log context is a JSON-encoded [*LogContext].
The last component allows for including additional data inessential to the message proper,
but provides a fuller picture of the application state at the time of logging.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.
*/
package logger
