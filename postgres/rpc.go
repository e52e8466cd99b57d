package postgres

import (
	"fmt"
	"regexp"
	"strings"

	cardstore "github.com/carloscedeno/cardstore"
)

// Server-side routines owned by the database, invoked by name.
// Their internals (ranking, atomicity, aggregation) are opaque to this application.
const (
	RPCBulkImportInventory  = "bulk_import_inventory"
	RPCCalculatePriceTrends = "calculate_price_trends"
	RPCCreateOrderAtomic    = "create_order_atomic"
	RPCSearchCards          = "search_cards_with_prices"
	RPCUniqueCards          = "get_unique_cards_optimized"
	RPCUserCollectionStats  = "get_user_collection_stats"
)

var rpcNameRegex = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// RPC invokes the database-side function fn with args,
// scanning whatever it returns into dest.
//
// fn must be a bare function name; anything else returns ErrNotValid
// before touching the database.
func (db *DB) RPC(dest any, fn string, args ...any) error {
	if !rpcNameRegex.MatchString(fn) {
		return fmt.Errorf("%w: %q is not a function name", cardstore.ErrNotValid, fn)
	}

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = "?"
	}

	stmt := fmt.Sprintf("SELECT * FROM %s(%s)", fn, strings.Join(placeholders, ", "))

	return db.Raw(dest, stmt, args...)
}
