package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitScopes(t *testing.T) {
	assert.Equal(t, []string{"write", "admin"}, splitScopes(" write, ,admin "))
	assert.Nil(t, splitScopes(""))
}
