package usecases_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/infrastructure/logging"
	usecases "pdfshrink/internal/usecase"
)

// fakeOptimizer управляемая стратегия для проверки политики сжатия
type fakeOptimizer struct {
	output     []byte
	err        error
	panicValue interface{}
	calls      int
}

func (f *fakeOptimizer) Name() string { return "fake" }

func (f *fakeOptimizer) Optimize(data []byte) ([]byte, error) {
	f.calls++
	if f.panicValue != nil {
		panic(f.panicValue)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func makeDocument(t *testing.T, size int) *entities.Document {
	t.Helper()
	doc, err := entities.NewDocument("input.pdf", bytes.Repeat([]byte{0xAB}, size))
	if err != nil {
		t.Fatalf("NewDocument() unexpected error: %v", err)
	}
	return doc
}

func TestExecute_AcceptsStrictlySmallerCandidate(t *testing.T) {
	doc := makeDocument(t, 1000)
	optimizer := &fakeOptimizer{output: bytes.Repeat([]byte{0xCD}, 600)}

	uc := usecases.NewCompressDocumentUseCase(optimizer, nil)
	outcome := uc.Execute(doc)

	if outcome.Kind != entities.OutcomeOptimized {
		t.Errorf("Expected OutcomeOptimized, got %v", outcome.Kind)
	}
	if !bytes.Equal(outcome.Data, optimizer.output) {
		t.Error("Expected candidate bytes to be selected")
	}
	if outcome.Reason != nil {
		t.Errorf("Expected nil reason, got %v", outcome.Reason)
	}
}

func TestExecute_FallbackIsByteIdentical(t *testing.T) {
	tests := []struct {
		name      string
		optimizer *fakeOptimizer
		wantKind  entities.OutcomeKind
	}{
		{
			name:      "Optimizer fails",
			optimizer: &fakeOptimizer{err: errors.New("битый xref")},
			wantKind:  entities.OutcomeFallback,
		},
		{
			name:      "Optimizer panics",
			optimizer: &fakeOptimizer{panicValue: "index out of range"},
			wantKind:  entities.OutcomeFallback,
		},
		{
			name:      "Candidate larger than original",
			optimizer: &fakeOptimizer{output: bytes.Repeat([]byte{0xCD}, 1500)},
			wantKind:  entities.OutcomeNoImprovement,
		},
		{
			name:      "Candidate exactly original size",
			optimizer: &fakeOptimizer{output: bytes.Repeat([]byte{0xCD}, 1000)},
			wantKind:  entities.OutcomeNoImprovement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := makeDocument(t, 1000)

			uc := usecases.NewCompressDocumentUseCase(tt.optimizer, nil)
			outcome := uc.Execute(doc)

			if outcome.Kind != tt.wantKind {
				t.Errorf("Expected kind %v, got %v", tt.wantKind, outcome.Kind)
			}
			if !bytes.Equal(outcome.Data, doc.Data) {
				t.Error("Fallback must return the original bytes unchanged")
			}
		})
	}
}

func TestExecute_FallbackCarriesReason(t *testing.T) {
	doc := makeDocument(t, 100)
	cause := errors.New("документ зашифрован")
	optimizer := &fakeOptimizer{err: cause}

	uc := usecases.NewCompressDocumentUseCase(optimizer, nil)
	outcome := uc.Execute(doc)

	if !errors.Is(outcome.Reason, cause) {
		t.Errorf("Expected reason to wrap %v, got %v", cause, outcome.Reason)
	}
}

func TestExecute_OutputNeverLargerThanInput(t *testing.T) {
	outputs := [][]byte{
		nil,
		{},
		bytes.Repeat([]byte{1}, 1),
		bytes.Repeat([]byte{1}, 999),
		bytes.Repeat([]byte{1}, 1000),
		bytes.Repeat([]byte{1}, 100000),
	}

	for _, output := range outputs {
		doc := makeDocument(t, 1000)
		uc := usecases.NewCompressDocumentUseCase(&fakeOptimizer{output: output}, nil)
		outcome := uc.Execute(doc)

		if len(outcome.Data) > len(doc.Data) {
			t.Errorf("Candidate of %d bytes: output %d bytes exceeds input %d bytes",
				len(output), len(outcome.Data), len(doc.Data))
		}
	}
}

func TestExecute_ReportsPhasesInOrder(t *testing.T) {
	doc := makeDocument(t, 1000)
	optimizer := &fakeOptimizer{output: bytes.Repeat([]byte{0xCD}, 500)}

	uc := usecases.NewCompressDocumentUseCase(optimizer, nil)

	var percents []int
	uc.SetProgressReporter(func(status entities.PipelineStatus) {
		percents = append(percents, status.Phase.Percent())
	})

	uc.Execute(doc)

	expected := []int{25, 50, 75, 100}
	if len(percents) != len(expected) {
		t.Fatalf("Expected %d progress updates, got %d", len(expected), len(percents))
	}
	for i, want := range expected {
		if percents[i] != want {
			t.Errorf("Update %d: expected %d%%, got %d%%", i, want, percents[i])
		}
	}
}

func TestExecute_SurvivesDisabledFileLogger(t *testing.T) {
	logger, err := logging.NewFileLogger(
		filepath.Join(t.TempDir(), "app.log"), "info", 0, false)
	if err != nil {
		t.Fatalf("NewFileLogger() unexpected error: %v", err)
	}

	doc := makeDocument(t, 1000)
	optimizer := &fakeOptimizer{output: bytes.Repeat([]byte{0xCD}, 500)}

	uc := usecases.NewCompressDocumentUseCase(optimizer, logger)
	outcome := uc.Execute(doc)

	if outcome.Kind != entities.OutcomeOptimized {
		t.Errorf("Expected OutcomeOptimized, got %v", outcome.Kind)
	}
}

func TestExecute_FinalStatusCarriesOutcome(t *testing.T) {
	doc := makeDocument(t, 1000)
	optimizer := &fakeOptimizer{err: errors.New("сбой")}

	uc := usecases.NewCompressDocumentUseCase(optimizer, nil)

	var last entities.PipelineStatus
	uc.SetProgressReporter(func(status entities.PipelineStatus) {
		last = status
	})

	uc.Execute(doc)

	if !last.IsComplete {
		t.Error("Final status must be complete")
	}
	if last.Outcome == nil {
		t.Fatal("Final status must carry the outcome")
	}
	if last.Outcome.Kind != entities.OutcomeFallback {
		t.Errorf("Expected OutcomeFallback, got %v", last.Outcome.Kind)
	}
}
