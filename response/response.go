package response

//go:generate go tool errtrace -w .

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/benbjohnson/clock"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/httphead/header"
	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/grammar"
	"github.com/ghettovoice/httphead/internal/ioutil"
	"github.com/ghettovoice/httphead/internal/log"
)

// Conn is the write side of a connection a response is sent over.
// [*net.TCPConn], [*net.UnixConn] and [*tls.Conn] satisfy it.
type Conn interface {
	io.Writer
	// CloseWrite shuts down the writing side of the connection.
	CloseWrite() error
}

// State is a write state of a response.
type State string

const (
	// StateUnwritten is the initial state, the status and headers can still be modified.
	StateUnwritten State = "unwritten"
	// StateHeadersWritten means the head was sent, only the body can be written.
	StateHeadersWritten State = "headers_written"
	// StateClosed means the response was ended and the connection write side was shut down.
	StateClosed State = "closed"
)

const (
	evtWriteHead = "write_head"
	evtWrite     = "write"
	evtEnd       = "end"
	evtMutate    = "mutate"
)

// DefaultBufferSize is the size of the write buffer used when [Options.BufferSize] is not set.
const DefaultBufferSize = 4096

// Options are used to configure a [Response].
type Options struct {
	// Version is the protocol version written in the status line.
	// If zero, [HTTP11] is used.
	Version Version
	// BufferSize is the size of the buffer in front of the connection.
	// If zero, [DefaultBufferSize] is used.
	BufferSize int
	// Clock is used to stamp the Date header when the head is written.
	// If nil, no Date header is added automatically.
	Clock clock.Clock
	// Log is the logger that will be used with the response.
	// If nil, the [log.Noop] will be used.
	Log *slog.Logger
}

func (o *Options) version() Version {
	if o == nil || o.Version == (Version{}) {
		return HTTP11
	}
	return o.Version
}

func (o *Options) bufferSize() int {
	if o == nil || o.BufferSize <= 0 {
		return DefaultBufferSize
	}
	return o.BufferSize
}

func (o *Options) clock() clock.Clock {
	if o == nil {
		return nil
	}
	return o.Clock
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Noop
	}
	return o.Log
}

// Response serializes one HTTP/1.x response to a connection.
//
// The head (status line and header fields) is written once, on the first of
// [Response.WriteHead], [Response.Write], [Response.Flush] or [Response.End].
// After that the status and headers can't be changed anymore.
// [Response.End] flushes the buffered bytes and shuts down the write side of the connection,
// the read side stays open.
//
// A Response must be used by one goroutine at a time.
type Response struct {
	conn    Conn
	bw      *bufio.Writer
	status  Status
	version Version
	hdrs    header.Headers
	clock   clock.Clock
	log     *slog.Logger
	fsm     *stateless.StateMachine
}

// New creates a response with the status 200 OK that will be written to conn.
// Options are optional and can be nil.
func New(conn Conn, opts *Options) *Response {
	r := &Response{
		conn:    conn,
		bw:      bufio.NewWriterSize(conn, opts.bufferSize()),
		status:  StatusOK,
		version: opts.version(),
		clock:   opts.clock(),
		log:     opts.log(),
	}
	r.initFSM()
	return r
}

func (r *Response) initFSM() {
	r.fsm = stateless.NewStateMachineWithMode(StateUnwritten, stateless.FiringImmediate)

	r.fsm.Configure(StateUnwritten).
		InternalTransition(evtMutate, r.actMutate).
		Permit(evtWriteHead, StateHeadersWritten).
		Permit(evtWrite, StateHeadersWritten)

	r.fsm.Configure(StateHeadersWritten).
		OnEntry(r.actWriteHead).
		Ignore(evtWriteHead).
		Ignore(evtWrite).
		Permit(evtEnd, StateClosed)

	r.fsm.Configure(StateClosed).
		OnEntry(r.actEnd).
		Ignore(evtWriteHead)

	r.fsm.OnUnhandledTrigger(r.actUnhandled)
	r.fsm.OnTransitioned(r.logTransition)
}

// State returns the current write state.
func (r *Response) State() State {
	return r.fsm.MustState().(State) //nolint:forcetypeassert
}

// Status returns the response status.
func (r *Response) Status() Status { return r.status }

// Version returns the protocol version of the response.
func (r *Response) Version() Version { return r.version }

// Header returns a copy of the raw lines of the named header field.
func (r *Response) Header(name string) (header.Raw, bool) { return r.hdrs.Get(name) }

// Headers returns a copy of the response header fields.
func (r *Response) Headers() *header.Headers { return r.hdrs.Clone() }

// SetStatus sets the response status.
// It fails with [ErrInvalidStateTransition] once the head is written.
func (r *Response) SetStatus(status Status) error {
	if !status.IsValid() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid status %d", uint(status)))
	}
	return errtrace.Wrap(r.mutate(func() error {
		r.status = status
		return nil
	}))
}

// SetVersion sets the protocol version of the status line.
// It fails with [ErrInvalidStateTransition] once the head is written.
func (r *Response) SetVersion(ver Version) error {
	if !ver.IsValid() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unsupported version %s", ver))
	}
	return errtrace.Wrap(r.mutate(func() error {
		r.version = ver
		return nil
	}))
}

// SetHeader replaces the field of the typed header with its formatted value.
// It fails with [ErrInvalidStateTransition] once the head is written.
//
// Example usage:
//
//	res.SetHeader(header.CacheControl{header.Public(), header.MaxAge(3600)})
func (r *Response) SetHeader(hdr header.Header) error {
	return errtrace.Wrap(r.mutate(func() error { return errtrace.Wrap(r.hdrs.Set(hdr)) }))
}

// SetRawHeader replaces all lines of the named header field.
// It fails with [ErrInvalidStateTransition] once the head is written.
func (r *Response) SetRawHeader(name string, lines ...string) error {
	return errtrace.Wrap(r.mutate(func() error { return errtrace.Wrap(r.hdrs.SetRaw(name, lines...)) }))
}

// AddRawHeader adds a line to the named header field.
// It fails with [ErrInvalidStateTransition] once the head is written.
func (r *Response) AddRawHeader(name, line string) error {
	return errtrace.Wrap(r.mutate(func() error { return errtrace.Wrap(r.hdrs.Append(name, line)) }))
}

// DelHeader removes the named header field.
// It fails with [ErrInvalidStateTransition] once the head is written.
func (r *Response) DelHeader(name string) error {
	return errtrace.Wrap(r.mutate(func() error {
		r.hdrs.Del(name)
		return nil
	}))
}

func (r *Response) mutate(fn func() error) error {
	return errtrace.Wrap(r.fsm.Fire(evtMutate, fn))
}

// WriteHead writes the status line and header fields to the buffer.
// Calling it after the head was written or the response was ended is a no-op.
func (r *Response) WriteHead() error {
	return errtrace.Wrap(r.fsm.Fire(evtWriteHead))
}

// Write writes body bytes, writing the head first if needed.
// It fails with [ErrInvalidStateTransition] after [Response.End].
func (r *Response) Write(p []byte) (int, error) {
	if err := r.fsm.Fire(evtWrite); err != nil {
		return 0, errtrace.Wrap(err)
	}
	n, err := r.bw.Write(p)
	if err != nil {
		return n, errtrace.Wrap(errorutil.NewWrapperError(ErrIO, err))
	}
	return n, nil
}

// Flush sends the buffered bytes to the connection, writing the head first if needed.
// It fails with [ErrInvalidStateTransition] after [Response.End].
func (r *Response) Flush() error {
	if err := r.fsm.Fire(evtWrite); err != nil {
		return errtrace.Wrap(err)
	}
	if err := r.bw.Flush(); err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrIO, err))
	}
	return nil
}

// End finishes the response: writes the head if needed, flushes the buffered bytes
// and shuts down the write side of the connection.
// Calling it a second time fails with [ErrInvalidStateTransition].
func (r *Response) End() error {
	if err := r.fsm.Fire(evtWriteHead); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(r.fsm.Fire(evtEnd))
}

func (r *Response) actMutate(_ context.Context, args ...any) error {
	fn := args[0].(func() error) //nolint:forcetypeassert
	return errtrace.Wrap(fn())
}

func (r *Response) actWriteHead(ctx context.Context, _ ...any) error {
	if r.clock != nil && !r.hdrs.Has("Date") {
		if err := r.hdrs.Set(&header.Date{Time: r.clock.Now()}); err != nil {
			return errtrace.Wrap(err)
		}
	}

	cw := ioutil.GetCountingWriter(r.bw)
	defer ioutil.FreeCountingWriter(cw)
	cw.Line(r.version.String(), " ", r.status.String())
	cw.Call(r.hdrs.RenderTo)
	cw.WriteString(grammar.CRLF)
	num, err := cw.Result()
	if err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrIO, err))
	}

	r.log.LogAttrs(ctx, slog.LevelDebug, "response head written",
		slog.Any("response", r),
		slog.Int("bytes", num),
	)
	return nil
}

func (r *Response) actEnd(ctx context.Context, _ ...any) error {
	buffered := r.bw.Buffered()
	flushErr := r.bw.Flush()
	closeErr := r.conn.CloseWrite()
	if err := errors.Join(flushErr, closeErr); err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrIO, err))
	}

	r.log.LogAttrs(ctx, slog.LevelDebug, "response ended",
		slog.Any("response", r),
		slog.Int("flushed", buffered),
	)
	return nil
}

func (r *Response) actUnhandled(_ context.Context, state stateless.State, trigger stateless.Trigger, _ []string) error {
	return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidStateTransition, "%v in state %v", trigger, state))
}

func (r *Response) logTransition(ctx context.Context, tr stateless.Transition) {
	r.log.LogAttrs(ctx, slog.LevelDebug, "response state changed",
		slog.Any("from", tr.Source),
		slog.Any("to", tr.Destination),
		slog.Any("event", tr.Trigger),
	)
}

// LogValue implements [slog.LogValuer].
func (r *Response) LogValue() slog.Value {
	if r == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("status", r.status.String()),
		slog.String("version", r.version.String()),
		slog.Any("state", r.State()),
	)
}
