package page

import (
	"net/url"
	"sort"
	"strconv"
)

// Well known query keys.
const (
	KeyPage          = "page"
	KeyLimit         = "limit"
	KeySearch        = "search"
	KeyConfederation = "confederation"
	KeySortBy        = "sortBy"
	KeyCountryID     = "country_id"
	KeyStatus        = "status"
	KeyType          = "type"
)

// Params is a flat set of query parameters. An empty value is kept while
// merging, so it can blank out a lower layer, and dropped when encoded.
type Params map[string]string

// Merge overlays layers from lowest to highest precedence into a new map.
// None of the inputs is modified.
func Merge(layers ...Params) Params {
	size := 0
	for _, layer := range layers {
		size += len(layer)
	}
	out := make(Params, size)
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}

func (p Params) Clone() Params {
	return Merge(p)
}

// With returns a copy of p with key set to value.
func (p Params) With(key, value string) Params {
	out := Merge(p)
	out[key] = value
	return out
}

func (p Params) WithInt(key string, value int) Params {
	return p.With(key, strconv.Itoa(value))
}

// Int reads key as an integer, returning def when it is missing or invalid.
func (p Params) Int(key string, def int) int {
	raw, ok := p[key]
	if !ok || raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// Values converts p into url.Values, skipping empty values.
func (p Params) Values() url.Values {
	out := make(url.Values, len(p))
	for k, v := range p {
		if k == "" || v == "" {
			continue
		}
		out.Set(k, v)
	}
	return out
}

// Encode renders a query string with keys in sorted order.
func (p Params) Encode() string {
	return p.Values().Encode()
}

// Keys lists the non-empty keys in sorted order.
func (p Params) Keys() []string {
	out := make([]string, 0, len(p))
	for k, v := range p {
		if v != "" {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
