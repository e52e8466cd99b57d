package postgres

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	cardstore "github.com/carloscedeno/cardstore"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type DB struct {
	// *gorm.DB's methods are generally unsafe to use.
	// Specifically, some *gorm.DB methods are not thread-safe
	// and mutate the state of the *gorm.DB backing DB.
	//
	// If a *gorm.DB method does not call *gorm.DB.getInstance,
	// use *gorm.DB.Session to force a clean pointer.
	db *gorm.DB
}

// NewDB constructs a *DB from a *gorm.DB.
func NewDB(db *gorm.DB) *DB { return &DB{db: db} }

// DB exposes the underlying *gorm.DB backing DB.
//
// NB: use in exceptional circumstances only.
func (db *DB) DB() *gorm.DB { return db.db }

// Debug prints the current query to the logger.
func (db *DB) Debug() *DB { return &DB{db.db.Debug()} }

// **************************************************************************
// FINISHER METHODS
//
// These methods close out a current query, executing it.
// All finisher methods are terminal and cannot be chained.
// They return any errors occurring within the query chain
// or when executing the query.
//
// **************************************************************************

// Count returns the number of records matching the current query or an error.
func (db *DB) Count() (int64, error) {
	if db.db.Error != nil {
		return 0, db.db.Error
	}

	var count int64
	if err := db.db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %s", cardstore.ErrUnexpected, err)
	}

	return count, nil
}

// Create inserts value into the database, updating value with new data yielding from that insertion.
// Almost always, value is a pointer to a struct that is a database table.
//
// If value violates a foreign key constraint defined by the database, ErrNotValid returns.
// If value violates a unique constraint defined by the database, ErrExists returns.
// If value does not implement gorm.TableNamer, ErrMissingData returns.
func (db *DB) Create(value any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	err := db.db.Session(&gorm.Session{FullSaveAssociations: false}).Create(value).Error
	switch {
	case err == nil:
		return nil

	case errors.Is(err, schema.ErrUnsupportedDataType), errors.Is(err, gorm.ErrInvalidData):
		return fmt.Errorf("%w: %T does not implement gorm.TableNamer", cardstore.ErrMissingData, value)

	case errSQLScan.MatchString(err.Error()):
		return fmt.Errorf("%w: %s", cardstore.ErrNotValid, err)

	case errUniqViolation.MatchString(err.Error()):
		return fmt.Errorf("%w: %s", cardstore.ErrExists, err)

	case strings.Contains(err.Error(), violatesFK):
		return fmt.Errorf("%w: %s", cardstore.ErrNotValid, err)

	default:
		return fmt.Errorf("%w: failed creating %T: %s", cardstore.ErrUnexpected, value, err)
	}
}

// Delete archives or soft deletes the database records matching the current query for value.
//
// If nothing matches, ErrNotExist returns.
func (db *DB) Delete(value any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	res := db.db.Delete(value)
	if errors.Is(res.Error, schema.ErrUnsupportedDataType) {
		return fmt.Errorf("%w: cannot parse table name from %T", cardstore.ErrMissingData, value)
	}

	if res.Error != nil {
		return fmt.Errorf("%w: failed deleting %T: %s", cardstore.ErrUnexpected, value, res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %T", cardstore.ErrNotExist, value)
	}

	return nil
}

// Exec executes the SQL query sql, passing values to it.
//
// If the query executed does not affect any records, Exec returns ErrNotExist.
// There are many use cases where the caller ought to specifically ignore this error,
// since the execution may not change existing records.
//
// Exec does not write any data resulting from the query into Go values.
func (db *DB) Exec(sql string, values ...any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	res := db.db.Exec(sql, values...)
	if res.Error != nil {
		return fmt.Errorf("%w: %s", cardstore.ErrUnexpected, res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: exec failed to affect any rows", cardstore.ErrNotExist)
	}

	return nil
}

// Find retrieves all records matching the current query
// and stores them in dest.
//
// If dest is not a valid type for the table queried, ErrNotValid returns.
// An empty result is not an error.
func (db *DB) Find(dest any) (err error) {
	badDest := fmt.Errorf("%w: %T cannot be scanned into", cardstore.ErrNotValid, dest)
	defer func() {
		if r := recover(); r != nil {
			err = badDest
		}
	}()

	if db.db.Error != nil {
		return db.db.Error
	}

	err = db.db.Find(dest).Error
	if err != nil && errSQLScan.MatchString(err.Error()) {
		return badDest
	}

	if err != nil && errSQLSyntax.MatchString(err.Error()) {
		return fmt.Errorf("%w: %s", cardstore.ErrNotValid, err)
	}

	if err != nil {
		return fmt.Errorf("%w: %s", cardstore.ErrUnexpected, err)
	}

	return nil
}

// First retrieves a single record from the database matching the query
// and stores it in dest.
//
// If no matches are found, First returns ErrNotExist.
func (db *DB) First(dest any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	err := db.db.First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w", cardstore.ErrNotExist)
	}

	if err != nil && errSQLSyntax.MatchString(err.Error()) {
		return fmt.Errorf("%w: %s", cardstore.ErrNotValid, err)
	}

	if err != nil {
		return fmt.Errorf("%w: %s", cardstore.ErrUnexpected, err)
	}

	return nil
}

// Paged turns the results of the current query into a paginated version: PagedData.
//
// Paged requires the current query declare its table with Model.
func (db *DB) Paged(page, perPage int64) (pd PagedData, err error) {
	defer func() {
		// NOTE: this method uses reflect and so can panic.
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: Paged panicked: %s", cardstore.ErrUnexpected, r)
			pd = PagedData{}
		}
	}()

	if db.db.Error != nil {
		return PagedData{}, db.db.Error
	}

	model := db.db.Statement.Model
	if model == nil {
		return PagedData{}, fmt.Errorf("%w: must use Model with Paged", cardstore.ErrNotValid)
	}

	reflectType := reflect.TypeOf(model).Elem()
	if reflectType.Kind() != reflect.Slice {
		model = reflect.New(reflect.SliceOf(reflectType)).Interface()
	}

	pd.Items = model
	pd.Page = max(1, page)
	pd.PerPage = max(1, perPage)

	var totalRecords int64
	err = db.db.Session(safeGORMSession).Model(db.db.Statement.Model).Count(&totalRecords).Error
	if err != nil {
		return PagedData{}, fmt.Errorf("%w: %s", cardstore.ErrUnexpected, err)
	}

	offset := int((pd.Page - 1) * pd.PerPage)
	err = db.db.Limit(int(pd.PerPage)).Offset(offset).Find(pd.Items).Error
	if err != nil {
		return PagedData{}, fmt.Errorf("%w: %s", cardstore.ErrUnexpected, err)
	}

	pd.TotalItems = totalRecords
	pd.TotalPages = totalRecords / pd.PerPage
	if totalRecords%pd.PerPage != 0 {
		pd.TotalPages++
	}

	return pd, nil
}

// Raw executes sql, passing values to it, and scans the results into dest.
func (db *DB) Raw(dest any, sql string, values ...any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	err := db.db.Raw(sql, values...).Scan(dest).Error
	if err != nil && errSQLSyntax.MatchString(err.Error()) {
		return fmt.Errorf("%w: %s", cardstore.ErrNotValid, err)
	}

	if err != nil && errSQLUnaddressable.MatchString(err.Error()) {
		return fmt.Errorf("%w: %s", cardstore.ErrNotValid, err)
	}

	if err != nil {
		return fmt.Errorf("%w: failed scanning results: %s", cardstore.ErrUnexpected, err)
	}

	return nil
}

// Update replaces existing data on all records matching the query with values.
//
// If no records are updated, ErrNotExist returns.
// The caller ought to specifically handle this error
// when it's expected a query may not mutate records.
func (db *DB) Update(values Updates) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	if err := values.valid(); err != nil {
		return err
	}

	res := db.db.Updates(map[string]any(values))
	switch {
	case res.RowsAffected == 0 && res.Error == nil:
		return fmt.Errorf("%w", cardstore.ErrNotExist)

	case res.Error == nil:
		return nil

	case errUniqViolation.MatchString(res.Error.Error()):
		return fmt.Errorf("%w: %s", cardstore.ErrExists, res.Error)

	default:
		return fmt.Errorf("%w: %s", cardstore.ErrUnexpected, res.Error)
	}
}

// **************************************************************************
// QUERY BUILDING METHODS
//
// Query building methods initiate a query and then add clauses to it
// until a finisher method is called.
// The caller can chain methods.
//
// **************************************************************************

// Limit applies a LIMIT clause to the current query.
func (db *DB) Limit(limit int) *DB {
	// NOTE: GORM interprets negatives by not applying a LIMIT clause.
	// PostgreSQL errors on negative numbers.
	// This Limit mirrors PostgreSQL, not GORM.
	if limit < 0 {
		gdb := db.db.Session(safeGORMSession)
		_ = gdb.AddError(fmt.Errorf("%w: limit must not be negative", cardstore.ErrNotValid))
		return &DB{db: gdb}
	}

	return &DB{db: db.db.Limit(limit)}
}

// Model declares the table used for the query.
//
// Model computes the name for the database table from the type of model,
// unless model implements gorm.TableNamer;
// the value returned from TableName is used instead.
func (db *DB) Model(model any) *DB { return &DB{db: db.db.Model(model)} }

// Offset applies an OFFSET clause to the current query.
func (db *DB) Offset(offset int) *DB {
	if offset < 0 {
		gdb := db.db.Session(safeGORMSession)
		_ = gdb.AddError(fmt.Errorf("%w: offset must not be negative", cardstore.ErrNotValid))
		return &DB{db: gdb}
	}

	return &DB{db: db.db.Offset(offset)}
}

// Order applies an ORDER BY clause to the current query.
func (db *DB) Order(order string) *DB { return &DB{db: db.db.Order(order)} }

// Preload fetches data embedded in a model based on that model's associations.
// An association is specified by the model's field name, such as Printing or Items.
func (db *DB) Preload(association string) *DB {
	return &DB{db: db.db.Preload(association)}
}

// Select applies a SELECT statement to the current query.
func (db *DB) Select(columns ...string) *DB { return &DB{db: db.db.Select(columns)} }

// Table defines which database table to query for the current query.
// Table is similar to Model but allows for explicit definition of the table.
func (db *DB) Table(name string) *DB { return &DB{db: db.db.Table(name)} }

// Unscoped includes archived, soft deleted records in the current query.
func (db *DB) Unscoped() *DB { return &DB{db: db.db.Unscoped()} }

// Where applies the query fragment to the current query
// as a WHERE or AND clause.
func (db *DB) Where(query any, args ...any) *DB {
	return &DB{db: db.db.Where(query, args...)}
}
