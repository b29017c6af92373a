package postgres_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/hasbyte1/go-secure-hash/credential"
	"github.com/hasbyte1/go-secure-hash/credential/credentialtest"
	"github.com/hasbyte1/go-secure-hash/credential/postgres"
)

// startPostgres runs a throwaway PostgreSQL container and returns its DSN.
// Integration tests only run when SECUREHASH_INTEGRATION=1.
func startPostgres(t *testing.T) string {
	t.Helper()
	if os.Getenv("SECUREHASH_INTEGRATION") != "1" {
		t.Skip("set SECUREHASH_INTEGRATION=1 to run PostgreSQL integration tests")
	}
	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("securehash"),
		tcpostgres.WithUsername("securehash"),
		tcpostgres.WithPassword("securehash"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

func TestStore_Conformance(t *testing.T) {
	dsn := startPostgres(t)
	credentialtest.RunStoreTests(t, func(t *testing.T) credential.Store {
		ctx := context.Background()
		// One table per subtest keeps them independent.
		table := "cred_" + strings.ToLower(strings.NewReplacer("/", "_", "-", "_").Replace(t.Name()))
		s, err := postgres.Connect(ctx, dsn, table)
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		require.NoError(t, s.EnsureSchema(ctx))
		return s
	})
}
