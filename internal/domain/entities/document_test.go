package entities_test

import (
	"bytes"
	"testing"

	"pdfshrink/internal/domain/entities"
)

func TestValidateIntake(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		size     int64
		wantErr  error
	}{
		{"Lowercase extension", "report.pdf", 1024, nil},
		{"Uppercase extension", "SCAN.PDF", 1024, nil},
		{"Mixed case extension", "Invoice.Pdf", 1024, nil},
		{"Wrong extension", "notes.txt", 1024, entities.ErrInvalidExtension},
		{"No extension", "document", 1024, entities.ErrInvalidExtension},
		{"PDF substring but wrong suffix", "file.pdf.zip", 1024, entities.ErrInvalidExtension},
		{"Exactly at size limit", "big.pdf", 104857600, nil},
		{"One byte over limit", "huge.pdf", 104857601, entities.ErrFileTooLarge},
		{"Empty file", "empty.pdf", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entities.ValidateIntake(tt.fileName, tt.size)
			if err != tt.wantErr {
				t.Errorf("ValidateIntake(%q, %d) = %v, want %v", tt.fileName, tt.size, err, tt.wantErr)
			}
		})
	}
}

func TestNewDocument(t *testing.T) {
	data := []byte("%PDF-1.7 fake content")

	doc, err := entities.NewDocument("report.pdf", data)
	if err != nil {
		t.Fatalf("NewDocument() unexpected error: %v", err)
	}

	if doc.Name != "report.pdf" {
		t.Errorf("Expected name %q, got %q", "report.pdf", doc.Name)
	}
	if !bytes.Equal(doc.Data, data) {
		t.Error("Document data differs from input")
	}
	if doc.Size() != int64(len(data)) {
		t.Errorf("Expected size %d, got %d", len(data), doc.Size())
	}
}

func TestNewDocument_RejectionKeepsNoState(t *testing.T) {
	doc, err := entities.NewDocument("notes.txt", []byte("not a pdf"))
	if err != entities.ErrInvalidExtension {
		t.Errorf("Expected ErrInvalidExtension, got %v", err)
	}
	if doc != nil {
		t.Error("Rejected intake must not return a document")
	}
}

func TestDocument_CompressedName(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		expected string
	}{
		{"Lowercase", "report.pdf", "report_compressed.pdf"},
		{"Uppercase", "SCAN.PDF", "SCAN_compressed.pdf"},
		{"With spaces", "annual report.pdf", "annual report_compressed.pdf"},
		{"With dots", "v1.2.final.pdf", "v1.2.final_compressed.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := entities.NewDocument(tt.fileName, []byte("data"))
			if err != nil {
				t.Fatalf("NewDocument() unexpected error: %v", err)
			}
			if got := doc.CompressedName(); got != tt.expected {
				t.Errorf("CompressedName() = %q, want %q", got, tt.expected)
			}
		})
	}
}
