package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields checks which query parameters are set
//
// queryFields contains the field names that can be used directly
// in a gorm Where statement. Fields tagged with filterField:"false"
// are processed by explicit logic in the controller and are only
// contained in setFields.
//
// setFields contains all field names set in the query parameters.
// This allows filtering for zero values without pointer fields.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	query := url.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")
		filterField := val.Type().Field(i).Tag.Get("filterField")

		if query.Has(param) {
			setFields = append(setFields, field)

			if filterField != "false" {
				queryFields = append(queryFields, field)
			}
		}
	}
	return queryFields, setFields
}
