package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"sort"
	"strings"
)

type Parameter map[string]string

func (p Parameter) Encode() string {
	var parameters []string
	for key, value := range p {
		parameters = append(parameters, key+"="+url.QueryEscape(value))
	}
	sort.Strings(parameters)
	return strings.Join(parameters, "&")
}

type Body interface {
	ToReader() (io.Reader, string, error)
}

type jsonBody struct {
	value any
}

// JSONBody marshals any value as an application/json request body.
func JSONBody(value any) Body {
	return jsonBody{value: value}
}

func (b jsonBody) ToReader() (io.Reader, string, error) {
	raw, err := json.Marshal(b.value)
	if err != nil {
		return nil, "", err
	}

	return bytes.NewBuffer(raw), "application/json", nil
}
