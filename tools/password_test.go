package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash := PasswordEncrypt("s3cret")
	require.NotEqual(t, "s3cret", hash)
	require.True(t, PasswordCompare("s3cret", hash))
	require.False(t, PasswordCompare("wrong", hash))
}

func TestPasswordHashesDiffer(t *testing.T) {
	require.NotEqual(t, PasswordEncrypt("s3cret"), PasswordEncrypt("s3cret"))
}
