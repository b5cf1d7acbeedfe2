package helpers

import "sync/atomic"

// -----------------------------------------------------------------------------
// PlatformErrorState records the platform's "last error" code, the way trade
// terminals keep an errno-like slot that message construction samples.
// -----------------------------------------------------------------------------

type PlatformErrorState struct {
	code atomic.Int64
}

// -----------------------------------------------------------------------------

func NewPlatformErrorState() *PlatformErrorState {
	return &PlatformErrorState{}
}

// -----------------------------------------------------------------------------

// LastError returns the most recently recorded error code.
func (p *PlatformErrorState) LastError() int {
	return int(p.code.Load())
}

// -----------------------------------------------------------------------------

// SetLastError records an error code.
func (p *PlatformErrorState) SetLastError(code int) {
	p.code.Store(int64(code))
}
