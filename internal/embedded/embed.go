// Package embedded ships the sample registration case inside the binary.
package embedded

import (
	"embed"

	"github.com/agentstation/docverify/pkg/documents"
)

// SampleCasePath is the path of the sample case inside FS.
const SampleCasePath = "sample/case.yaml"

// FS embeds the sample case files at build time.
//
//go:embed sample/*
var FS embed.FS

// SampleCase decodes the embedded sample case.
func SampleCase() (*documents.Case, error) {
	return documents.LoadCaseFS(FS, SampleCasePath)
}
