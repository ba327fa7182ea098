// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type configuration struct {
	ListenAddress string `yaml:"listenAddress" validate:"nonzero"`
	Replicas      int    `yaml:"replicas" validate:"min=1"`
}

func writeFile(t *testing.T, dir, name, contents string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadFileNoFiles(t *testing.T) {
	var cfg configuration
	require.Equal(t, errNoFilesToLoad, LoadFiles(&cfg, nil, Options{}))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "conf.yaml", "listenAddress: localhost:9000\nreplicas: 3\n")

	var cfg configuration
	require.NoError(t, LoadFile(&cfg, path, Options{}))
	assert.Equal(t, "localhost:9000", cfg.ListenAddress)
	assert.Equal(t, 3, cfg.Replicas)
}

func TestLoadFilesLastValueWins(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.yaml", "listenAddress: localhost:9000\nreplicas: 3\n")
	second := writeFile(t, dir, "second.yaml", "replicas: 5\n")

	var cfg configuration
	require.NoError(t, LoadFiles(&cfg, []string{first, second}, Options{}))
	assert.Equal(t, "localhost:9000", cfg.ListenAddress)
	assert.Equal(t, 5, cfg.Replicas)
}

func TestLoadFileValidationFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "conf.yaml", "listenAddress: localhost:9000\nreplicas: 0\n")

	var cfg configuration
	require.Error(t, LoadFile(&cfg, path, Options{}))
}

func TestLoadFileStrict(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "conf.yaml", "listenAddress: a\nreplicas: 1\nunknown: true\n")

	var cfg configuration
	require.Error(t, LoadFile(&cfg, path, Options{}))
	require.NoError(t, LoadFile(&cfg, path, Options{DisableUnmarshalStrict: true}))
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(configuration{ListenAddress: "a", Replicas: 2}, &buf))
	assert.Equal(t, "listenAddress: a\nreplicas: 2\n", buf.String())
}
