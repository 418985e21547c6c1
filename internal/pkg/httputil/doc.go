// Package httputil provides shared HTTP response helpers for handlers.
//
// Failure bodies follow the JSend shape {"status": "failed", "message": ...}.
// 5xx helpers log the real error and send only the public message.
package httputil
