package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// bindRequest fills a request struct from the JSON body (POST/PUT), then from
// URL parameters (`param` tag) and query string values (`query` tag).
func bindRequest(r *http.Request, req any) error {
	if r.Method == http.MethodPost || r.Method == http.MethodPut {
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(req); err != nil {
				return err
			}
		}
	}

	value := reflect.ValueOf(req).Elem()
	structType := value.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if name := field.Tag.Get("param"); name != "" {
			if err := setField(value.Field(i), chi.URLParam(r, name)); err != nil {
				return fmt.Errorf("invalid url parameter %s: %w", name, err)
			}
		}

		if name := field.Tag.Get("query"); name != "" {
			raw := r.URL.Query().Get(name)
			if raw == "" {
				continue
			}

			if err := setField(value.Field(i), raw); err != nil {
				return fmt.Errorf("invalid query value %s: %w", name, err)
			}
		}
	}

	return nil
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}

	return nil
}
