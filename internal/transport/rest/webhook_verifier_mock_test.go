package rest

import (
	"net/http"
	"sync"
)

var _ webhookVerifier = &webhookVerifierMock{}

type webhookVerifierMock struct {
	VerifyFunc func(header http.Header, body []byte) error

	calls struct {
		Verify []struct {
			Header http.Header
			Body   []byte
		}
	}
	lockVerify sync.RWMutex
}

func (mock *webhookVerifierMock) Verify(header http.Header, body []byte) error {
	if mock.VerifyFunc == nil {
		panic("webhookVerifierMock.VerifyFunc: method is nil but webhookVerifier.Verify was just called")
	}
	callInfo := struct {
		Header http.Header
		Body   []byte
	}{Header: header, Body: body}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(header, body)
}

func (mock *webhookVerifierMock) VerifyCalls() []struct {
	Header http.Header
	Body   []byte
} {
	var calls []struct {
		Header http.Header
		Body   []byte
	}
	mock.lockVerify.RLock()
	calls = mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
