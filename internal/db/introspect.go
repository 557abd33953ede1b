package db

import "context"

type Column struct {
	Name     string `db:"column_name" json:"column_name"`
	DataType string `db:"data_type" json:"data_type"`
}

type TableInfo struct {
	Exists  bool     `json:"exists"`
	Columns []Column `json:"columns"`
}

// DescribeTables reports whether each table exists and which columns it has.
// Only used by the development debug endpoint.
func (g *Gateway) DescribeTables(ctx context.Context, names ...string) (map[string]TableInfo, error) {
	out := make(map[string]TableInfo, len(names))
	for _, name := range names {
		var info TableInfo
		err := g.Get(ctx, &info.Exists, `
			SELECT EXISTS (
				SELECT FROM information_schema.tables
				WHERE table_name = $1
			)
		`, name)
		if err != nil {
			return nil, err
		}

		info.Columns = []Column{}
		err = g.Select(ctx, &info.Columns, `
			SELECT column_name, data_type
			FROM information_schema.columns
			WHERE table_name = $1
			ORDER BY ordinal_position
		`, name)
		if err != nil {
			return nil, err
		}
		out[name] = info
	}
	return out, nil
}
