package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cardinal/config"
)

func TestBuildInfoText(t *testing.T) {
	t.Parallel()

	text := buildInfoText()
	assert.Contains(t, text, "Version: "+config.Version)
	assert.Contains(t, text, "Commit: "+config.GitCommit)
	assert.Equal(t, !config.IsRelease(), strings.Contains(text, "(development build)"))
}
