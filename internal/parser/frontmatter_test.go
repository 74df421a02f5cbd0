package parser

import (
	"errors"
	"testing"

	"github.com/starford/ansuz/internal/apperr"
)

func TestExtractFrontMatter_AliasRoundTrip(t *testing.T) {
	fm, err := ExtractFrontMatter("---\nalias: foo\n---\nbody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fm == nil {
		t.Fatal("expected front matter")
	}
	if got, _ := fm["alias"].(string); got != "foo" {
		t.Errorf("alias = %q, want %q", got, "foo")
	}
}

func TestExtractFrontMatter_Absent(t *testing.T) {
	fm, err := ExtractFrontMatter("# Heading\nno block here")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fm != nil {
		t.Errorf("expected nil front matter, got %v", fm)
	}
}

func TestExtractFrontMatter_Unterminated(t *testing.T) {
	fm, err := ExtractFrontMatter("---\nalias: foo\nno closing delimiter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fm != nil {
		t.Errorf("expected nil front matter, got %v", fm)
	}
}

func TestExtractFrontMatter_NotAtByteZero(t *testing.T) {
	fm, err := ExtractFrontMatter("\n---\nalias: foo\n---\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fm != nil {
		t.Errorf("block must start at byte 0, got %v", fm)
	}
}

func TestExtractFrontMatter_LaterDelimiterIgnored(t *testing.T) {
	fm, err := ExtractFrontMatter("---\nalias: foo\n---\nbody\n---\nmore body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := fm["alias"].(string); got != "foo" {
		t.Errorf("alias = %q, want %q", got, "foo")
	}
}

func TestExtractFrontMatter_MalformedIsParseError(t *testing.T) {
	_, err := ExtractFrontMatter("---\n: invalid: yaml: {{{\n---\nbody")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.Is(err, apperr.ErrParse) {
		t.Errorf("err = %v, want apperr.ErrParse", err)
	}
}

func TestExtractFrontMatter_EmptyBlockPresent(t *testing.T) {
	fm, err := ExtractFrontMatter("---\n---\nbody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fm == nil {
		t.Error("empty block should still count as present")
	}
}
