package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out bytes.Buffer
	root := NewRootCmd("test")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), err
}

func TestRoutesCmd(t *testing.T) {
	out, err := run(t, "routes")
	require.NoError(t, err)

	for _, want := range []string{"/about", "/skill", "/project/{id}", "project-detail", "error"} {
		assert.Contains(t, out, want)
	}
}

func TestResolveCmd(t *testing.T) {
	out, err := run(t, "resolve", "/", "/project/food-ordering-platform", "/project/does-not-exist", "/xyz123")
	require.NoError(t, err)

	assert.Contains(t, out, "/ -> home\n")
	assert.Contains(t, out, "/project/food-ordering-platform -> project-detail (Food Ordering Platform)")
	assert.Contains(t, out, "/project/does-not-exist -> project-detail (project not found)")
	assert.Contains(t, out, "/xyz123 -> error\n")
}

func TestResolveCmdNeedsPath(t *testing.T) {
	_, err := run(t, "resolve")
	require.Error(t, err)
}

func TestProjectsCmd(t *testing.T) {
	out, err := run(t, "projects")
	require.NoError(t, err)

	assert.Contains(t, out, "Online Learning Platform (online-learning-platform)")
	assert.Contains(t, out, "Page:   /project/health-care-web-app")
}

func TestMissingConfigFile(t *testing.T) {
	_, err := run(t, "--config", "does-not-exist.yaml", "projects")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
