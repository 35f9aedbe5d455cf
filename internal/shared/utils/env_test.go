package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SWAPI_TEST_VALUE", "tatooine")

	assert.Equal(t, "tatooine", GetEnv("SWAPI_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SWAPI_TEST_MISSING", "fallback"))
}

func TestGetEnvEmptyIsNotFallback(t *testing.T) {
	t.Setenv("SWAPI_TEST_EMPTY", "")

	assert.Equal(t, "", GetEnv("SWAPI_TEST_EMPTY", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SWAPI_TEST_INT", "42")
	t.Setenv("SWAPI_TEST_BAD_INT", "forty-two")

	assert.Equal(t, 42, GetEnvInt("SWAPI_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("SWAPI_TEST_BAD_INT", 7))
	assert.Equal(t, 7, GetEnvInt("SWAPI_TEST_MISSING", 7))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("SWAPI_TEST_BOOL", "true")
	t.Setenv("SWAPI_TEST_BAD_BOOL", "yes please")

	assert.True(t, GetEnvBool("SWAPI_TEST_BOOL", false))
	assert.False(t, GetEnvBool("SWAPI_TEST_BAD_BOOL", false))
}

func TestGetEnvSeconds(t *testing.T) {
	t.Setenv("SWAPI_TEST_SECONDS", "15")

	assert.Equal(t, 15*time.Second, GetEnvSeconds("SWAPI_TEST_SECONDS", 60))
	assert.Equal(t, time.Minute, GetEnvSeconds("SWAPI_TEST_MISSING", 60))
}
