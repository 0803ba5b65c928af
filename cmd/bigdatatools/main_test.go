package main

import (
	"testing"
	"time"

	"github.com/randomouscrap98/bigdata/pattern"
)

func TestPreviewFilename(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	name := previewFilename(pattern.ModeIntegrity, "gif", now)
	if name != "preview_integrity_20240309-140507.gif" {
		t.Fatalf("Unexpected preview name %s", name)
	}
}
