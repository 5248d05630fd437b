package param

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/gorilla/schema"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	return d
}

// Binding decode the query string of GET requests or the json body of the others
// into v, then validate it with its `valid` tags
func Binding(r *http.Request, v interface{}) error {
	switch r.Method {
	case http.MethodGet, http.MethodDelete, http.MethodHead:
		if err := decoder.Decode(v, r.URL.Query()); err != nil {
			return err
		}
	default:
		if err := json.NewDecoder(r.Body).Decode(v); err != nil && err != io.EOF {
			return err
		}
	}

	_, err := govalidator.ValidateStruct(v)
	return err
}
