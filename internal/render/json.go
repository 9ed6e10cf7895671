package render

import (
	"encoding/json"
	"io"

	"github.com/vk/dspfmodel/internal/catalog"
	"github.com/vk/dspfmodel/internal/dds"
	"github.com/vk/dspfmodel/internal/screen"
)

// jsonDoc is the stable JSON shape of one parsed source document. It is
// built from the catalog, which already carries the flattened view the
// editing tooling consumes.
type jsonDoc struct {
	File          string       `json:"file"`
	DefaultSize   jsonSize     `json:"default_size"`
	SecondarySize *jsonSize    `json:"secondary_size,omitempty"`
	Lines         int          `json:"lines"`
	Attributes    []string     `json:"attributes,omitempty"`
	Records       []jsonRecord `json:"records"`
}

type jsonSize struct {
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	Label     string `json:"label,omitempty"`
	OriginRow int    `json:"origin_row,omitempty"`
	OriginCol int    `json:"origin_col,omitempty"`
	Window    bool   `json:"window,omitempty"`
}

type jsonRecord struct {
	Name       string         `json:"name"`
	StartLine  int            `json:"start_line"`
	EndLine    int            `json:"end_line"`
	Size       jsonSize       `json:"size"`
	Attributes []string       `json:"attributes,omitempty"`
	Fields     []jsonField    `json:"fields,omitempty"`
	Constants  []jsonConstant `json:"constants,omitempty"`
}

type jsonField struct {
	Name       string   `json:"name"`
	Row        int      `json:"row,omitempty"`
	Col        int      `json:"col,omitempty"`
	Length     int      `json:"length,omitempty"`
	Attributes []string `json:"attributes,omitempty"`
	Indicators []string `json:"indicators,omitempty"`
}

type jsonConstant struct {
	Text       string   `json:"text"`
	Row        int      `json:"row,omitempty"`
	Col        int      `json:"col,omitempty"`
	Attributes []string `json:"attributes,omitempty"`
	Indicators []string `json:"indicators,omitempty"`
}

// JSON writes the model as an indented JSON document.
func JSON(w io.Writer, name string, m *dds.Model) error {
	doc := jsonDoc{
		File:        name,
		DefaultSize: sizeJSON(m.DefaultSize),
		Lines:       m.Lines,
		Records:     []jsonRecord{},
	}
	if m.AltSize != nil {
		alt := sizeJSON(*m.AltSize)
		doc.SecondarySize = &alt
	}
	if file, ok := m.Elements[0].(*dds.File); ok {
		for _, a := range file.Attributes {
			doc.Attributes = append(doc.Attributes, a.Text)
		}
	}
	for _, entry := range m.Catalog.Records() {
		doc.Records = append(doc.Records, recordJSON(entry))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func recordJSON(e *catalog.Entry) jsonRecord {
	rec := jsonRecord{
		Name:       e.RecordName,
		StartLine:  e.StartLine,
		EndLine:    e.EndLine,
		Size:       sizeJSON(e.Size),
		Attributes: e.Attributes,
	}
	for _, f := range e.Fields {
		rec.Fields = append(rec.Fields, jsonField(f))
	}
	for _, c := range e.Constants {
		rec.Constants = append(rec.Constants, jsonConstant(c))
	}
	return rec
}

func sizeJSON(s screen.Size) jsonSize {
	return jsonSize{
		Rows:      s.Rows,
		Cols:      s.Cols,
		Label:     s.Label,
		OriginRow: s.Origin.Row,
		OriginCol: s.Origin.Col,
		Window:    s.Source == screen.SourceWindow,
	}
}
