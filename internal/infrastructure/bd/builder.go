package db

import (
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"storage-equipment/pkg/types"
)

// Psql — построитель запросов с плейсхолдерами $1, $2 для PostgreSQL.
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ApplyListParams добавляет к запросу фильтры, поиск, сортировку и страницу.
// Поля, которых нет в allowedMap, молча игнорируются. searchCols — колонки для ILIKE.
func ApplyListParams(builder sq.SelectBuilder, filter types.Filter, allowedMap map[string]string, searchCols ...string) sq.SelectBuilder {
	for jsonField, val := range filter.Filter {
		dbCol, ok := allowedMap[jsonField]
		if !ok {
			continue
		}

		if s, ok := val.(string); ok && strings.Contains(s, ",") {
			builder = builder.Where(sq.Eq{dbCol: strings.Split(s, ",")})
		} else {
			builder = builder.Where(sq.Eq{dbCol: val})
		}
	}

	if filter.Search != "" && len(searchCols) > 0 {
		or := sq.Or{}
		for _, col := range searchCols {
			or = append(or, sq.ILike{col: "%" + filter.Search + "%"})
		}
		builder = builder.Where(or)
	}

	// порядок ключей карты случаен, сортируем для стабильного SQL
	fields := make([]string, 0, len(filter.Sort))
	for jsonField := range filter.Sort {
		fields = append(fields, jsonField)
	}
	sort.Strings(fields)
	for _, jsonField := range fields {
		dbCol, ok := allowedMap[jsonField]
		if !ok {
			continue
		}
		sqlDir := "ASC"
		if strings.ToLower(filter.Sort[jsonField]) == "desc" {
			sqlDir = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", dbCol, sqlDir))
	}

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	return builder
}
