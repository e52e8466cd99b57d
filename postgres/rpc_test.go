package postgres

import (
	"testing"

	"github.com/carloscedeno/cardstore"
	"github.com/stretchr/testify/require"
)

func TestRPCRejectsBadFunctionNames(t *testing.T) {
	// Arrange
	db := NewDB(nil)

	for _, fn := range []string{
		"",
		"1starts_with_digit",
		"has space",
		"has-dash",
		"drop table users; --",
		"UPPER_CASE",
	} {
		// Act
		err := db.RPC(&[]map[string]any{}, fn)

		// Assert
		require.ErrorIs(t, err, cardstore.ErrNotValid, "fn %q", fn)
	}
}

func TestRPCNamesAreValid(t *testing.T) {
	// Arrange + Act + Assert
	for _, fn := range []string{
		RPCBulkImportInventory,
		RPCCalculatePriceTrends,
		RPCCreateOrderAtomic,
		RPCSearchCards,
		RPCUniqueCards,
		RPCUserCollectionStats,
	} {
		require.True(t, rpcNameRegex.MatchString(fn), "fn %q", fn)
	}
}
