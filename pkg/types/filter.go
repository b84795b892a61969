package types

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Filter — параметры списка из строки запроса:
// ?search=vent&sort[name]=asc&filter[status]=faulty,in_repair&limit=20&offset=0
type Filter struct {
	Search string                 `json:"search,omitempty"`
	Sort   map[string]string      `json:"sort,omitempty"`
	Filter map[string]interface{} `json:"filter,omitempty"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

const MaxLimit = 500

// IsZero — запрос без параметров, то есть полный список по умолчанию.
func (f Filter) IsZero() bool {
	return f.Search == "" && len(f.Sort) == 0 && len(f.Filter) == 0 && f.Limit == 0 && f.Offset == 0
}

func ParseFilter(values url.Values) Filter {
	filter := Filter{
		Sort:   make(map[string]string),
		Filter: make(map[string]interface{}),
	}

	if l, err := strconv.Atoi(values.Get("limit")); err == nil && l > 0 {
		filter.Limit = min(l, MaxLimit)
	}
	if o, err := strconv.Atoi(values.Get("offset")); err == nil && o >= 0 {
		filter.Offset = o
	}

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}

		if key == "search" {
			filter.Search = vals[0]
			continue
		}

		if strings.HasPrefix(key, "sort[") && strings.HasSuffix(key, "]") {
			field := key[5 : len(key)-1]
			direction := strings.ToLower(vals[0])
			if direction == "asc" || direction == "desc" {
				filter.Sort[field] = direction
			}
			continue
		}

		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			field := key[7 : len(key)-1]
			if existing, ok := filter.Filter[field]; ok {
				filter.Filter[field] = fmt.Sprintf("%v,%s", existing, vals[0])
			} else {
				filter.Filter[field] = vals[0]
			}
		}
	}

	return filter
}
