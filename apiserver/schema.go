package apiserver

import (
	"fmt"

	"github.com/logicalclocks/rondb-sub003/schema"
)

var columnTypes = map[string]schema.ColumnType{
	"fixed_binary": schema.TypeFixedBinary,
	"var_binary":   schema.TypeVarBinary,
	"var_char":     schema.TypeVarChar,
	"bit":          schema.TypeBit,
	"blob":         schema.TypeBlob,
	"text":         schema.TypeText,
}

func buildTable(spec *TableSpec) (*schema.Table, error) {
	if spec == nil {
		return nil, nil
	}
	columns := make([]schema.Column, len(spec.Columns))
	for i, c := range spec.Columns {
		t, ok := columnTypes[c.Type]
		if !ok {
			return nil, fmt.Errorf("column %q: unknown type %q", c.Name, c.Type)
		}
		storage := schema.StorageMainMemory
		if c.Storage == "disk" {
			storage = schema.StorageDisk
		}
		columns[i] = schema.Column{
			AttrID:    c.AttrID,
			Name:      c.Name,
			Type:      t,
			Length:    c.Length,
			ArraySize: c.ArraySize,
			BitLength: c.BitLength,
			Scale:     c.Scale,
			Precision: c.Precision,
			Charset:   c.Charset,
			Storage:   storage,
		}
	}
	return schema.NewTable(spec.Name, columns), nil
}
