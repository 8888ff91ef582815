package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInfoFallbacks(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, GitCommit)
	assert.NotEmpty(t, BuildTime)
	assert.Equal(t, Version != "dev", IsRelease())
}
