// Package response writes HTTP/1.x responses to a connection.
//
// A [Response] passes through three states:
//
//	unwritten ──WriteHead/Write/Flush/End──▶ headers_written ──End──▶ closed
//
// While unwritten, the status, version and header fields can be changed.
// The head is written exactly once, repeating [Response.WriteHead] writes nothing.
// [Response.End] flushes the buffered bytes and half-closes the connection,
// so the peer sees the end of the response while the read side stays open.
//
// Misuse, like changing headers after the head was sent or writing after the end,
// fails with [ErrInvalidStateTransition]. Connection failures are reported with [ErrIO]
// wrapping the original error; the response is never retried.
//
// Example usage:
//
//	res := response.New(conn, &response.Options{Clock: clock.New()})
//	res.SetHeader(header.CacheControl{header.NoStore()})
//	res.Write(body)
//	res.End()
package response
