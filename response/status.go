package response

import "strconv"

// Status is an HTTP response status code (RFC 9110 Section 15).
type Status uint

const (
	StatusContinue           Status = 100
	StatusSwitchingProtocols Status = 101

	StatusOK                   Status = 200
	StatusCreated              Status = 201
	StatusAccepted             Status = 202
	StatusNonAuthoritativeInfo Status = 203
	StatusNoContent            Status = 204
	StatusResetContent         Status = 205
	StatusPartialContent       Status = 206

	StatusMultipleChoices   Status = 300
	StatusMovedPermanently  Status = 301
	StatusFound             Status = 302
	StatusSeeOther          Status = 303
	StatusNotModified       Status = 304
	StatusUseProxy          Status = 305
	StatusTemporaryRedirect Status = 307
	StatusPermanentRedirect Status = 308

	StatusBadRequest           Status = 400
	StatusUnauthorized         Status = 401
	StatusPaymentRequired      Status = 402
	StatusForbidden            Status = 403
	StatusNotFound             Status = 404
	StatusMethodNotAllowed     Status = 405
	StatusNotAcceptable        Status = 406
	StatusProxyAuthRequired    Status = 407
	StatusRequestTimeout       Status = 408
	StatusConflict             Status = 409
	StatusGone                 Status = 410
	StatusLengthRequired       Status = 411
	StatusPreconditionFailed   Status = 412
	StatusContentTooLarge      Status = 413
	StatusURITooLong           Status = 414
	StatusUnsupportedMediaType Status = 415
	StatusRangeNotSatisfiable  Status = 416
	StatusExpectationFailed    Status = 417
	StatusMisdirectedRequest   Status = 421
	StatusUnprocessableContent Status = 422
	StatusUpgradeRequired      Status = 426

	StatusInternalServerError     Status = 500
	StatusNotImplemented          Status = 501
	StatusBadGateway              Status = 502
	StatusServiceUnavailable      Status = 503
	StatusGatewayTimeout          Status = 504
	StatusHTTPVersionNotSupported Status = 505
)

var statusReasons = map[Status]string{
	StatusContinue:           "Continue",
	StatusSwitchingProtocols: "Switching Protocols",

	StatusOK:                   "OK",
	StatusCreated:              "Created",
	StatusAccepted:             "Accepted",
	StatusNonAuthoritativeInfo: "Non-Authoritative Information",
	StatusNoContent:            "No Content",
	StatusResetContent:         "Reset Content",
	StatusPartialContent:       "Partial Content",

	StatusMultipleChoices:   "Multiple Choices",
	StatusMovedPermanently:  "Moved Permanently",
	StatusFound:             "Found",
	StatusSeeOther:          "See Other",
	StatusNotModified:       "Not Modified",
	StatusUseProxy:          "Use Proxy",
	StatusTemporaryRedirect: "Temporary Redirect",
	StatusPermanentRedirect: "Permanent Redirect",

	StatusBadRequest:           "Bad Request",
	StatusUnauthorized:         "Unauthorized",
	StatusPaymentRequired:      "Payment Required",
	StatusForbidden:            "Forbidden",
	StatusNotFound:             "Not Found",
	StatusMethodNotAllowed:     "Method Not Allowed",
	StatusNotAcceptable:        "Not Acceptable",
	StatusProxyAuthRequired:    "Proxy Authentication Required",
	StatusRequestTimeout:       "Request Timeout",
	StatusConflict:             "Conflict",
	StatusGone:                 "Gone",
	StatusLengthRequired:       "Length Required",
	StatusPreconditionFailed:   "Precondition Failed",
	StatusContentTooLarge:      "Content Too Large",
	StatusURITooLong:           "URI Too Long",
	StatusUnsupportedMediaType: "Unsupported Media Type",
	StatusRangeNotSatisfiable:  "Range Not Satisfiable",
	StatusExpectationFailed:    "Expectation Failed",
	StatusMisdirectedRequest:   "Misdirected Request",
	StatusUnprocessableContent: "Unprocessable Content",
	StatusUpgradeRequired:      "Upgrade Required",

	StatusInternalServerError:     "Internal Server Error",
	StatusNotImplemented:          "Not Implemented",
	StatusBadGateway:              "Bad Gateway",
	StatusServiceUnavailable:      "Service Unavailable",
	StatusGatewayTimeout:          "Gateway Timeout",
	StatusHTTPVersionNotSupported: "HTTP Version Not Supported",
}

// Reason returns the standard reason phrase of the status, or an empty string for unknown codes.
func (s Status) Reason() string { return statusReasons[s] }

// IsValid reports whether the status is a three-digit code.
func (s Status) IsValid() bool { return s >= 100 && s <= 999 }

func (s Status) IsInformational() bool { return s >= 100 && s < 200 }

func (s Status) IsSuccessful() bool { return s >= 200 && s < 300 }

func (s Status) IsRedirection() bool { return s >= 300 && s < 400 }

func (s Status) IsClientError() bool { return s >= 400 && s < 500 }

func (s Status) IsServerError() bool { return s >= 500 && s < 600 }

// String returns the status as it appears in the status line, e.g. "200 OK".
func (s Status) String() string {
	return strconv.FormatUint(uint64(s), 10) + " " + s.Reason()
}
