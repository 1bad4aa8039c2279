package idscan

import (
	"context"
	"sync"

	"github.com/cagegit/hotel-front-desk-agent/internal/domain/identity"
)

// MockService returns canned scanner/camera results for local development
// and demos. Scripted results, when queued, are consumed in order before the
// defaults apply.
type MockService struct {
	mu           sync.Mutex
	defaultScan  identity.ScanResult
	defaultFace  identity.FaceMatchResult
	queuedScans  []scriptedScan
	queuedFaces  []scriptedFace
}

type scriptedScan struct {
	res identity.ScanResult
	err error
}

type scriptedFace struct {
	res identity.FaceMatchResult
	err error
}

func NewMockService() *MockService {
	return &MockService{
		defaultScan: identity.ScanResult{
			Success:    true,
			Name:       "张伟",
			IDNumber:   "110101199003077777",
			Gender:     "男",
			BirthDate:  "1990-03-07",
			Address:    "北京市东城区某某街道1号",
			PhotoB64:   "mock-id-photo-base64",
			ExpiryDate: "2030-03-07",
		},
		defaultFace: identity.FaceMatchResult{
			IsMatch:  true,
			Score:    96.5,
			Liveness: true,
			PhotoB64: "mock-live-photo-base64",
		},
	}
}

func (m *MockService) ScanDocument(ctx context.Context) (identity.ScanResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queuedScans) > 0 {
		next := m.queuedScans[0]
		m.queuedScans = m.queuedScans[1:]
		return next.res, next.err
	}
	return m.defaultScan, nil
}

func (m *MockService) MatchFace(ctx context.Context, referencePhotoB64 string) (identity.FaceMatchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queuedFaces) > 0 {
		next := m.queuedFaces[0]
		m.queuedFaces = m.queuedFaces[1:]
		return next.res, next.err
	}
	return m.defaultFace, nil
}

// SetDefaultScan replaces the fallback scan result.
func (m *MockService) SetDefaultScan(res identity.ScanResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultScan = res
}

// QueueScan schedules a one-shot scan outcome ahead of the default.
func (m *MockService) QueueScan(res identity.ScanResult, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queuedScans = append(m.queuedScans, scriptedScan{res: res, err: err})
}

// QueueFace schedules a one-shot face match outcome ahead of the default.
func (m *MockService) QueueFace(res identity.FaceMatchResult, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queuedFaces = append(m.queuedFaces, scriptedFace{res: res, err: err})
}
