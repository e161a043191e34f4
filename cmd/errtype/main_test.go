/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dirpx.dev/errtype/internal/config"
)

const sampleSource = `package apperr

error_type! {
    pub enum AppError {
        Missing(string) {
            desc (name) "missing: " + name;
        },
        Wrapped(error) {
            cause;
        }
    }
}
`

func testConfig() *config.Config {
	return &config.Config{
		OutSuffix: "_errtype.go",
		Logger:    config.LoggerConfig{Level: "info", Format: "console"},
	}
}

func TestRunWritesGeneratedFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "app.errtype", []byte(sampleSource), 0o644))

	err := run(fsys, testConfig(), zap.NewNop(), "", false, []string{"app.errtype"}, &bytes.Buffer{})
	require.NoError(t, err)

	b, err := afero.ReadFile(fsys, "app_errtype.go")
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, "package apperr")
	assert.Contains(t, out, "type AppError struct")
	assert.Contains(t, out, "DO NOT EDIT")
}

func TestRunStdout(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "app.errtype", []byte(sampleSource), 0o644))

	var out bytes.Buffer
	err := run(fsys, testConfig(), zap.NewNop(), "", true, []string{"app.errtype"}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "type AppError struct")

	// Nothing written next to the input in stdout mode.
	exists, err := afero.Exists(fsys, "app_errtype.go")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunHeaderFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "app.errtype", []byte(sampleSource), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "boilerplate.txt", []byte("// Copyright 2025 Acme Inc."), 0o644))

	err := run(fsys, testConfig(), zap.NewNop(), "boilerplate.txt", false, []string{"app.errtype"}, &bytes.Buffer{})
	require.NoError(t, err)

	b, err := afero.ReadFile(fsys, "app_errtype.go")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("// Copyright 2025 Acme Inc.")))
}

func TestRunMissingInput(t *testing.T) {
	fsys := afero.NewMemMapFs()
	err := run(fsys, testConfig(), zap.NewNop(), "", false, []string{"nope.errtype"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.errtype")
}

func TestRunNoInputs(t *testing.T) {
	err := run(afero.NewMemMapFs(), testConfig(), zap.NewNop(), "", false, nil, &bytes.Buffer{})
	require.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "dir/app_errtype.go", outputPath("dir/app.errtype", "_errtype.go"))
	assert.Equal(t, "plain_gen.go", outputPath("plain.errtype", "_gen.go"))
}
