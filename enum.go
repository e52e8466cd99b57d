package cardstore

// An Enumerable has a closed set of valid values.
type Enumerable interface {
	String() string
	Valid() error
}
