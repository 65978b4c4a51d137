package go_ingalls

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
)

//ingalls.json is the output of CreateRetardationTableFromDrag(DragTableG1, CreateICAOAtmosphere(0 ft), 4000, 100, 10)
//
//go:embed data/ingalls.json
var ingallsData []byte

//tableDocument is the on-disk form of a retardation table: three parallel arrays
type tableDocument struct {
	Velocity []float64 `json:"v"`
	Space    []float64 `json:"s"`
	Time     []float64 `json:"t"`
}

//LoadRetardationTable reads a retardation table from a JSON document
//of the form {"v": [...], "s": [...], "t": [...]}
func LoadRetardationTable(r io.Reader) (*RetardationTable, error) {
	var doc tableDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("RetardationTable: cannot decode table (%v): %w", err, ErrInvalidTable)
	}
	return CreateRetardationTable(doc.Velocity, doc.Space, doc.Time)
}

//LoadIngallsTable loads the packaged Ingalls table.
//
//The table is parsed on every call, so load it once and pass it to CreateIngallsCalculator.
func LoadIngallsTable() (*RetardationTable, error) {
	return LoadRetardationTable(bytes.NewReader(ingallsData))
}

//MustLoadIngallsTable loads the packaged Ingalls table and panics if it cannot be parsed
func MustLoadIngallsTable() *RetardationTable {
	t, err := LoadIngallsTable()
	if err != nil {
		panic(err)
	}
	return t
}

//WriteTo writes the table in the format read by LoadRetardationTable
func (t *RetardationTable) WriteTo(w io.Writer) (int64, error) {
	doc := tableDocument{
		Velocity: make([]float64, len(t.rows)),
		Space:    make([]float64, len(t.rows)),
		Time:     make([]float64, len(t.rows)),
	}
	for i, row := range t.rows {
		doc.Velocity[i] = row.Velocity
		doc.Space[i] = row.Space
		doc.Time[i] = row.Time
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}
