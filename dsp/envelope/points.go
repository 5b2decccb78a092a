package envelope

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Record is the persisted form of a point.
type Record struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Shape  Shape   `json:"sh"`
	Param1 float64 `json:"p1"`
	Param2 float64 `json:"p2"`
}

// PointList is an ordered, detached copy of envelope points. It is what
// copy/paste and session persistence exchange, and marshals to JSON as
// {"nodes": [{"x","y","sh","p1","p2"}, ...]}.
type PointList []Point

type nodesDoc struct {
	Nodes []Record `json:"nodes"`
}

// MarshalJSON implements json.Marshaler.
func (l PointList) MarshalJSON() ([]byte, error) {
	doc := nodesDoc{Nodes: make([]Record, len(l))}
	for i, p := range l {
		doc.Nodes[i] = Record(p)
	}
	return json.Marshal(doc)
}

// UnmarshalJSON implements json.Unmarshaler. Unknown shape codes fail.
func (l *PointList) UnmarshalJSON(data []byte) error {
	var doc nodesDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("envelope nodes: %w", err)
	}
	out := make(PointList, len(doc.Nodes))
	for i, r := range doc.Nodes {
		out[i] = Point(r)
	}
	*l = out
	return nil
}

// Export returns a copy of the points in envelope order.
func (e *Envelope) Export() PointList {
	return PointList(slices.Clone(e.points))
}

// Import replaces all points with l and sorts them. The envelope is left
// unchanged if any point carries an unknown shape.
func (e *Envelope) Import(l PointList) error {
	for i, p := range l {
		if !p.Shape.Valid() {
			_, err := ParseShape(int(p.Shape))
			return fmt.Errorf("import point %d: %w", i, err)
		}
	}
	e.RemoveAllPoints()
	for _, p := range l {
		e.AddPoint(p, false)
	}
	e.SortPoints()
	return nil
}

// Records returns the persisted form of the points, in envelope order.
func (e *Envelope) Records() []Record {
	out := make([]Record, len(e.points))
	for i, p := range e.points {
		out[i] = Record(p)
	}
	return out
}

// LoadRecords replaces the points with records and sorts them.
func (e *Envelope) LoadRecords(records []Record) error {
	l := make(PointList, len(records))
	for i, r := range records {
		l[i] = Point(r)
	}
	return e.Import(l)
}
