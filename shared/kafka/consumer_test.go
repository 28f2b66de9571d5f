package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

func datasetMessage(t *testing.T, result types.DiscoveryResult) []byte {
	t.Helper()
	b, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("failed to marshal dataset: %v", err)
	}
	return b
}

func TestTypedMessageHandlerProcessesDataset(t *testing.T) {
	var received *types.DiscoveryResult
	handler := &TypedMessageHandler[types.DiscoveryResult]{
		Process: func(ctx context.Context, msg *types.DiscoveryResult) error {
			received = msg
			return nil
		},
	}

	msg := datasetMessage(t, types.DiscoveryResult{
		BusinessType: "service",
		KeywordCount: 1,
		Keywords: []*types.KeywordRecord{
			{Text: "seo services", Source: types.SourceLLMExpansion, SearchVolume: 5000},
		},
	})

	shouldMark, err := handler.HandleMessage(context.Background(), msg)
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if !shouldMark {
		t.Error("processed message should be marked")
	}
	if received == nil || received.KeywordCount != 1 || received.Keywords[0].Text != "seo services" {
		t.Errorf("dataset not decoded: %+v", received)
	}
}

func TestTypedMessageHandlerProcessErrorLeavesUnmarked(t *testing.T) {
	handler := &TypedMessageHandler[types.DiscoveryResult]{
		Process: func(ctx context.Context, msg *types.DiscoveryResult) error {
			return errors.New("downstream unavailable")
		},
	}

	shouldMark, err := handler.HandleMessage(context.Background(), datasetMessage(t, types.DiscoveryResult{KeywordCount: 1}))
	if err == nil {
		t.Error("expected the process error to propagate")
	}
	if shouldMark {
		t.Error("failed message must stay unmarked so it can be retried")
	}
}

func TestTypedMessageHandlerInvalidJSON(t *testing.T) {
	called := false
	handler := &TypedMessageHandler[types.DiscoveryResult]{
		Process: func(ctx context.Context, msg *types.DiscoveryResult) error {
			called = true
			return nil
		},
		AlwaysMark: true,
	}

	shouldMark, err := handler.HandleMessage(context.Background(), []byte("not json"))
	if err != nil {
		t.Fatalf("invalid payloads are skipped, not errored: %v", err)
	}
	if !shouldMark {
		t.Error("AlwaysMark should mark undecodable messages")
	}
	if called {
		t.Error("Process must not run for undecodable messages")
	}
}

func TestTypedMessageHandlerValidationFailure(t *testing.T) {
	called := false
	handler := &TypedMessageHandler[types.DiscoveryResult]{
		Validate: func(msg *types.DiscoveryResult) bool {
			return msg.KeywordCount > 0
		},
		Process: func(ctx context.Context, msg *types.DiscoveryResult) error {
			called = true
			return nil
		},
	}

	shouldMark, err := handler.HandleMessage(context.Background(), datasetMessage(t, types.DiscoveryResult{KeywordCount: 0}))
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if shouldMark {
		t.Error("rejected message should not be marked without AlwaysMark")
	}
	if called {
		t.Error("Process must not run for rejected messages")
	}
}
