package rest

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/internal/service/ai"
	"sync"
)

var _ aiService = &aiServiceMock{}

type aiServiceMock struct {
	AnalyzeRequestFunc func(ctx context.Context, input ai.AnalyzeInput) (domain.Classification, error)
	TranscribeFunc     func(ctx context.Context, input ai.TranscribeInput) (ai.Transcription, error)
	ImproveTextFunc    func(ctx context.Context, input ai.ImproveInput) (ai.Improvement, error)

	calls struct {
		AnalyzeRequest []struct {
			Ctx   context.Context
			Input ai.AnalyzeInput
		}
		Transcribe []struct {
			Ctx   context.Context
			Input ai.TranscribeInput
		}
		ImproveText []struct {
			Ctx   context.Context
			Input ai.ImproveInput
		}
	}
	lockAnalyzeRequest sync.RWMutex
	lockTranscribe     sync.RWMutex
	lockImproveText    sync.RWMutex
}

func (mock *aiServiceMock) AnalyzeRequest(ctx context.Context, input ai.AnalyzeInput) (domain.Classification, error) {
	if mock.AnalyzeRequestFunc == nil {
		panic("aiServiceMock.AnalyzeRequestFunc: method is nil but aiService.AnalyzeRequest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ai.AnalyzeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAnalyzeRequest.Lock()
	mock.calls.AnalyzeRequest = append(mock.calls.AnalyzeRequest, callInfo)
	mock.lockAnalyzeRequest.Unlock()
	return mock.AnalyzeRequestFunc(ctx, input)
}

func (mock *aiServiceMock) AnalyzeRequestCalls() []struct {
	Ctx   context.Context
	Input ai.AnalyzeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input ai.AnalyzeInput
	}
	mock.lockAnalyzeRequest.RLock()
	calls = mock.calls.AnalyzeRequest
	mock.lockAnalyzeRequest.RUnlock()
	return calls
}

func (mock *aiServiceMock) Transcribe(ctx context.Context, input ai.TranscribeInput) (ai.Transcription, error) {
	if mock.TranscribeFunc == nil {
		panic("aiServiceMock.TranscribeFunc: method is nil but aiService.Transcribe was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ai.TranscribeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockTranscribe.Lock()
	mock.calls.Transcribe = append(mock.calls.Transcribe, callInfo)
	mock.lockTranscribe.Unlock()
	return mock.TranscribeFunc(ctx, input)
}

func (mock *aiServiceMock) TranscribeCalls() []struct {
	Ctx   context.Context
	Input ai.TranscribeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input ai.TranscribeInput
	}
	mock.lockTranscribe.RLock()
	calls = mock.calls.Transcribe
	mock.lockTranscribe.RUnlock()
	return calls
}

func (mock *aiServiceMock) ImproveText(ctx context.Context, input ai.ImproveInput) (ai.Improvement, error) {
	if mock.ImproveTextFunc == nil {
		panic("aiServiceMock.ImproveTextFunc: method is nil but aiService.ImproveText was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ai.ImproveInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockImproveText.Lock()
	mock.calls.ImproveText = append(mock.calls.ImproveText, callInfo)
	mock.lockImproveText.Unlock()
	return mock.ImproveTextFunc(ctx, input)
}

func (mock *aiServiceMock) ImproveTextCalls() []struct {
	Ctx   context.Context
	Input ai.ImproveInput
} {
	var calls []struct {
		Ctx   context.Context
		Input ai.ImproveInput
	}
	mock.lockImproveText.RLock()
	calls = mock.calls.ImproveText
	mock.lockImproveText.RUnlock()
	return calls
}
