package cardstore_test

import (
	"testing"
	"time"

	"github.com/carloscedeno/cardstore"
	"github.com/stretchr/testify/require"
)

func TestKeyString(t *testing.T) {
	require.Equal(t, "cardstore context key: CurrentUserKey", cardstore.CurrentUserKey.String())
}

func TestModelExists(t *testing.T) {
	require.False(t, cardstore.Model{}.Exists())
	require.True(t, cardstore.Model{CreatedAt: time.Now()}.Exists())
}

func TestEnvironmentValid(t *testing.T) {
	for _, tc := range []struct {
		input cardstore.Environment
		err   error
	}{
		{cardstore.Development, nil},
		{cardstore.Production, nil},
		{cardstore.Review, nil},
		{cardstore.Staging, nil},
		{cardstore.Testing, nil},
		{cardstore.Environment(""), cardstore.ErrNotValid},
		{cardstore.Environment("LOCAL"), cardstore.ErrNotValid},
	} {
		require.ErrorIs(t, tc.input.Valid(), tc.err, "env %q", tc.input)
	}
}

func TestEnvVarOrEnv(t *testing.T) {
	for _, tc := range []struct {
		name     string
		val      string
		expected cardstore.Environment
	}{
		{"Unset", "", cardstore.Staging},
		{"Lowercased", "production", cardstore.Production},
		{"Exact", "TESTING", cardstore.Testing},
		{"Unknown", "sandbox", cardstore.Staging},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			t.Setenv("CARDSTORE_TEST_ENV", tc.val)

			// Act + Assert
			require.Equal(t, tc.expected, cardstore.EnvVarOrEnv("CARDSTORE_TEST_ENV", cardstore.Staging))
		})
	}
}

func TestEnvVarOrDuration(t *testing.T) {
	// Arrange
	t.Setenv("CARDSTORE_TEST_DURATION", "45s")

	// Act + Assert
	require.Equal(t, 45*time.Second, cardstore.EnvVarOrDuration("CARDSTORE_TEST_DURATION", time.Minute))
	require.Equal(t, time.Minute, cardstore.EnvVarOrDuration("CARDSTORE_TEST_DURATION_UNSET", time.Minute))
}

func TestEnvVarOrInt(t *testing.T) {
	// Arrange
	t.Setenv("CARDSTORE_TEST_INT", "12")

	// Act + Assert
	require.Equal(t, 12, cardstore.EnvVarOrInt("CARDSTORE_TEST_INT", 3))
	require.Equal(t, 3, cardstore.EnvVarOrInt("CARDSTORE_TEST_INT_UNSET", 3))
}
