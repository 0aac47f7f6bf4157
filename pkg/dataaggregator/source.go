package dataaggregator

import (
	"reflect"
)

// DataSource answers lookups for the record types it declares in Supports.
type DataSource interface {
	GetName() string
	Supports() []reflect.Type
	Lookup(any) (interface{}, error)
}
