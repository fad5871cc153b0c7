package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_SynthesizesTemplate(t *testing.T) {
	t.Parallel()

	chainHCL := `
chain "workers" {
  resources = ["worker", "worker"]

  resource_properties = {
    image = "worker:v2"
  }
}
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(chainHCL), 0600))

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{"-project", "show", filePath})

	require.NoError(t, err)
	require.Contains(t, out.String(), "type: worker")
	require.Contains(t, out.String(), `depends_on: "0"`)
	require.Contains(t, out.String(), "show: show")
}

func TestRun_AnalyzesOwningTemplate(t *testing.T) {
	t.Parallel()

	chainHCL := `
chain "workers" {
  resources = ["worker", "worker"]
}
`
	ownerHCL := `
locals {
  health = workers.attributes.status
}
`
	tempDir := t.TempDir()
	chainPath := filepath.Join(tempDir, "main.hcl")
	ownerPath := filepath.Join(tempDir, "owner.hcl")
	require.NoError(t, os.WriteFile(chainPath, []byte(chainHCL), 0600))
	require.NoError(t, os.WriteFile(ownerPath, []byte(ownerHCL), 0600))

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{"-template", ownerPath, "-c", chainPath})

	require.NoError(t, err)
	require.Contains(t, out.String(), "attributes, status")
}

func TestRun_LoadError(t *testing.T) {
	t.Parallel()

	invalidHCL := `
chain "broken" {
  resources = ["worker"
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600))

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{filePath})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load configuration")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{"-h"})

	require.NoError(t, err)
	require.Contains(t, logs.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
