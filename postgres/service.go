package postgres

// DatabaseService sets up the interface to be used at the handler level. These should be
// straightforward calls that allow us to skip creating a procedure method for the most basic
// database interactions. This has the intended functionality that we are not testing the
// database in handlers: resource handlers receive a DatabaseService and can be exercised
// against a substitute client, while *DB is tested directly against a live database.
type DatabaseService interface {
	CountByQuery(model any, query map[string]any) (int64, error)
	DeleteByQuery(model any, query map[string]any) error
	FetchByQuery(models any, query string, params []any) error
	FindByID(model any, ID any) error
	FindByQuery(model any, query map[string]any) error
	Insert(model any) error
	PagedByQuery(models any, query string, params []any, order string, page int64, perPage int64, preloads ...string) (PagedData, error)
	RPC(dest any, fn string, args ...any) error
	UpdateByQuery(model any, updates Updates, query map[string]any) error
}

var _ DatabaseService = (*DB)(nil)

// CountByQuery receives a database model and query and fetches a count for the given params.
func (db *DB) CountByQuery(model any, query map[string]any) (int64, error) {
	q := db.Model(model)
	for k, v := range query {
		q = q.Where(k, v)
	}

	return q.Count()
}

// DeleteByQuery soft deletes all records of the model's table matching the query.
func (db *DB) DeleteByQuery(model any, query map[string]any) error {
	q := db
	for k, v := range query {
		q = q.Where(k, v)
	}

	return q.Delete(model)
}

// FetchByQuery receives a slice of database models as a pointer and fetches all records matching the query.
func (db *DB) FetchByQuery(models any, query string, params []any) error {
	q := db
	if query != "" {
		q = q.Where(query, params...)
	}

	return q.Find(models)
}

// FindByID receives a database model as a pointer and fetches it using the primary ID.
func (db *DB) FindByID(model any, ID any) error { return db.Where("id = ?", ID).First(model) }

// FindByQuery receives a database model as a pointer and fetches it using the given query.
func (db *DB) FindByQuery(model any, query map[string]any) error {
	q := db
	for k, v := range query {
		q = q.Where(k, v)
	}

	return q.First(model)
}

// Insert receives a database model and inserts it into the database.
func (db *DB) Insert(model any) error { return db.Create(model) }

// PagedByQuery receives a slice of database models and paging information to build a paged database query.
func (db *DB) PagedByQuery(models any, query string, params []any, order string, page int64, perPage int64, preloads ...string) (PagedData, error) {
	q := db.Model(models)
	if query != "" {
		q = q.Where(query, params...)
	}
	if order != "" {
		q = q.Order(order)
	}
	for _, preload := range preloads {
		q = q.Preload(preload)
	}

	return q.Paged(page, perPage)
}

// UpdateByQuery replaces data on all records of the model's table matching the query with updates.
func (db *DB) UpdateByQuery(model any, updates Updates, query map[string]any) error {
	q := db.Model(model)
	for k, v := range query {
		q = q.Where(k, v)
	}

	return q.Update(updates)
}
