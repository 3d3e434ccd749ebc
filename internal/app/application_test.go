package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/allsafeASM/assetspec/internal/common"
	"github.com/allsafeASM/assetspec/internal/config"
	"github.com/allsafeASM/assetspec/internal/models"
	"github.com/allsafeASM/assetspec/internal/suffix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			LogLevel:     "error",
			BatchWorkers: 2,
			MaxBatchSize: 100,
		},
		Suffix: config.SuffixConfig{Provider: config.SuffixProviderPSL},
	}
}

func TestRunWithTargets(t *testing.T) {
	application, err := NewApplication(testConfig())
	require.NoError(t, err)

	var out bytes.Buffer
	report, err := application.Run(context.Background(), Options{
		Targets: []string{"Example.com", "192.168.1.0/24", "not a domain"},
	}, nil, &out)
	require.NoError(t, err)

	assert.Equal(t, models.ImportModeTarget, report.Mode)
	assert.Equal(t, 2, report.ValidCount)
	assert.Equal(t, 1, report.InvalidCount)
	assert.NotEmpty(t, report.RunID)

	var decoded models.ImportReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, report.RunID, decoded.RunID)
	assert.Equal(t, report.Total, decoded.Total)
}

func TestRunReadsListFileThenStdin(t *testing.T) {
	application, err := NewApplication(testConfig())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "targets.txt")
	require.NoError(t, os.WriteFile(path, []byte("a.example.com\nb.example.com\n"), 0o600))

	var out bytes.Buffer
	report, err := application.Run(context.Background(), Options{
		Mode:     "SUBDOMAIN",
		ListFile: path,
	}, strings.NewReader("ignored.example.org\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, []string{"example.com"}, report.Groups.RootDomains())

	out.Reset()
	report, err = application.Run(context.Background(), Options{Mode: "group"},
		strings.NewReader("# stdin\nx.test.org\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)
	assert.Equal(t, []string{"test.org"}, report.Groups.RootDomains())
}

func TestRunWithoutInputs(t *testing.T) {
	application, err := NewApplication(testConfig())
	require.NoError(t, err)

	_, err = application.Run(context.Background(), Options{}, strings.NewReader(""), &bytes.Buffer{})
	assert.True(t, common.IsType(err, common.ErrorTypeInput))

	_, err = application.Run(context.Background(), Options{
		ListFile: filepath.Join(t.TempDir(), "missing.txt"),
	}, nil, &bytes.Buffer{})
	assert.True(t, common.IsType(err, common.ErrorTypeInput))
}

func TestRunUnknownMode(t *testing.T) {
	application, err := NewApplication(testConfig())
	require.NoError(t, err)

	_, err = application.Run(context.Background(), Options{Mode: "ports", Targets: []string{"example.com"}}, nil, &bytes.Buffer{})
	assert.True(t, common.IsType(err, common.ErrorTypeValidation))
}

func TestNewApplicationRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.App.BatchWorkers = 0
	_, err := NewApplication(cfg)
	assert.True(t, common.IsType(err, common.ErrorTypeConfiguration))

	cfg = testConfig()
	cfg.Suffix.ListFile = filepath.Join(t.TempDir(), "missing.dat")
	_, err = NewApplication(cfg)
	assert.True(t, common.IsType(err, common.ErrorTypeConfiguration))
}

func TestNewSuffixLookup(t *testing.T) {
	lookup, err := newSuffixLookup(config.SuffixConfig{Provider: config.SuffixProviderXNet})
	require.NoError(t, err)
	assert.IsType(t, suffix.XNetLookup{}, lookup)

	lookup, err = newSuffixLookup(config.SuffixConfig{Provider: config.SuffixProviderPSL, IgnorePrivate: true})
	require.NoError(t, err)
	assert.Equal(t, "io", lookup.PublicSuffix("user.github.io").Suffix)

	lookup, err = newSuffixLookup(config.SuffixConfig{Provider: config.SuffixProviderPSL})
	require.NoError(t, err)
	assert.Equal(t, "github.io", lookup.PublicSuffix("user.github.io").Suffix)
}
