package core

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	errInvalidPrecision = errors.New("precision must be in [0,8]")
	errInvalidAmount    = errors.New("amount must be positive")
)

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrInvalidInput malformed or out-of-range caller parameters,
	// rejected before any remote call
	ErrInvalidInput ErrorCode = 100001
	// ErrInvalidAddress address failed node-side validation
	ErrInvalidAddress ErrorCode = 100002

	// ErrRemote transport, timeout or protocol error from the node
	ErrRemote ErrorCode = 100100
	// ErrFundingFailed node rejected funding the transaction
	ErrFundingFailed ErrorCode = 100101
	// ErrIssuanceFailed node rejected attaching the issuance
	ErrIssuanceFailed ErrorCode = 100102
	// ErrBlindingFailed node failed to blind the transaction
	ErrBlindingFailed ErrorCode = 100103
	// ErrSigningFailed node failed to sign the transaction
	ErrSigningFailed ErrorCode = 100104
	// ErrBroadcastFailed node rejected broadcast after a positive mempool test
	ErrBroadcastFailed ErrorCode = 100105
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}

// Failure a named stage failure. Every aborted pipeline run surfaces as a
// Failure so the caller knows which stage gave up.
type Failure struct {
	Code    ErrorCode     `json:"code"`
	Stage   PipelineStage `json:"stage"`
	Message string        `json:"msg"`

	cause error
}

// NewFailure failure with a cause
func NewFailure(code ErrorCode, stage PipelineStage, cause error) *Failure {
	f := &Failure{
		Code:  code,
		Stage: stage,
		cause: cause,
	}

	if cause != nil {
		f.Message = cause.Error()
	}

	return f
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s failed: %s", f.Stage, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// RemoteError protocol-level error returned by the node, or a transport
// failure talking to it
type RemoteError struct {
	Method  string `json:"method"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("rpc %s: %s", e.Method, e.Message)
}
