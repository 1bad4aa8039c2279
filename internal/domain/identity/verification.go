package identity

import "errors"

var (
	ErrScanNotPending    = errors.New("no document scan in progress")
	ErrScanNotCompleted  = errors.New("document scan not completed")
	ErrScanRetryExceeded = errors.New("document scan retry limit exceeded")
	ErrScanUnreadable    = errors.New("document could not be read")
	ErrNameMismatch      = errors.New("document name does not match reservation")
	ErrFaceRejected      = errors.New("face verification rejected")
	ErrAlreadyTerminal   = errors.New("verification already in a terminal state")
)

// ScanResult is the structured record produced by the document scanner.
type ScanResult struct {
	Success    bool
	Name       string
	IDNumber   string
	Gender     string
	BirthDate  string
	Address    string
	PhotoB64   string
	ExpiryDate string
}

// FaceMatchResult compares a live camera capture against the scanned document
// photo. Both IsMatch and Liveness must hold for the gate to pass.
type FaceMatchResult struct {
	IsMatch   bool
	Score     float64 // similarity in [0,100]
	Liveness  bool
	PhotoB64  string
}

type State string

const (
	StateNotStarted  State = "not_started"
	StateScanPending State = "scan_pending"
	StateScanFailed  State = "scan_failed"
	StateScanOK      State = "scan_ok"
	StateFaceFailed  State = "face_failed"
	StateVerified    State = "verified"
)

// RetryPolicy bounds automatic retries on hard scan failures. Face mismatch
// is never retried: document misreads are often transient, identity
// mismatches are not assumed to be.
type RetryPolicy struct {
	MaxScanAttempts int
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxScanAttempts: 2}
}

// Verification is the two-factor gate state machine:
// NotStarted → ScanPending → ScanFailed(retry) → ScanOK → FaceFailed | Verified.
// Room allocation may proceed only from StateVerified.
type Verification struct {
	expectedName string
	policy       RetryPolicy
	state        State
	scanAttempts int
	scan         *ScanResult
	face         *FaceMatchResult
}

func NewVerification(expectedName string, policy RetryPolicy) *Verification {
	if policy.MaxScanAttempts < 1 {
		policy.MaxScanAttempts = 1
	}
	return &Verification{
		expectedName: expectedName,
		policy:       policy,
		state:        StateNotStarted,
	}
}

// BeginScan opens a scan attempt. After a hard failure it is allowed again
// until the retry budget runs out.
func (v *Verification) BeginScan() error {
	switch v.state {
	case StateNotStarted, StateScanFailed:
		if v.scanAttempts >= v.policy.MaxScanAttempts {
			return ErrScanRetryExceeded
		}
		v.scanAttempts++
		v.state = StateScanPending
		return nil
	case StateScanPending:
		return nil
	default:
		return ErrAlreadyTerminal
	}
}

// RecordScanFailure records a device/read error and reports whether another
// attempt is permitted.
func (v *Verification) RecordScanFailure() (retryAllowed bool, err error) {
	if v.state != StateScanPending {
		return false, ErrScanNotPending
	}
	v.state = StateScanFailed
	return v.scanAttempts < v.policy.MaxScanAttempts, nil
}

// RecordScanResult applies a completed scan. An unreadable document is a
// terminal stop without retry, as is a name that does not exactly match the
// reservation's guest name. A mismatched name is never silently corrected.
func (v *Verification) RecordScanResult(res ScanResult) error {
	if v.state != StateScanPending {
		return ErrScanNotPending
	}
	v.scan = &res
	if !res.Success {
		v.state = StateScanFailed
		v.scanAttempts = v.policy.MaxScanAttempts
		return ErrScanUnreadable
	}
	if res.Name != v.expectedName {
		v.state = StateScanFailed
		v.scanAttempts = v.policy.MaxScanAttempts
		return ErrNameMismatch
	}
	v.state = StateScanOK
	return nil
}

// RecordFaceResult applies the face match outcome. A failed attempt is
// terminal for this verification.
func (v *Verification) RecordFaceResult(res FaceMatchResult) error {
	if v.state != StateScanOK {
		return ErrScanNotCompleted
	}
	v.face = &res
	if !res.IsMatch || !res.Liveness {
		v.state = StateFaceFailed
		return ErrFaceRejected
	}
	v.state = StateVerified
	return nil
}

func (v *Verification) State() State { return v.state }

func (v *Verification) Verified() bool {
	return v.state == StateVerified
}

func (v *Verification) ScanAttempts() int { return v.scanAttempts }

func (v *Verification) Scan() *ScanResult { return v.scan }

func (v *Verification) FaceScore() float64 {
	if v.face == nil {
		return 0
	}
	return v.face.Score
}
