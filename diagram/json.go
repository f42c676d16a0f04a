package diagram

import (
	"encoding/json"
	"fmt"
	"math"
)

// infinityToken is the JSON stand-in for a never-dying death scale,
// since JSON has no representation for +Inf.
const infinityToken = "Infinity"

// diagramJSON is the wire shape: a (dimension, list-of-(birth, death))
// record for interop with external TDA tooling.
type diagramJSON struct {
	Dimension int      `json:"dimension"`
	Pairs     [][2]any `json:"pairs"`
}

// MarshalJSON encodes the diagram with "Infinity" marking never-dying
// deaths.
func (d Diagram) MarshalJSON() ([]byte, error) {
	w := diagramJSON{Dimension: d.Dimension, Pairs: make([][2]any, len(d.Pairs))}
	for i, p := range d.Pairs {
		if p.IsInfinite() {
			w.Pairs[i] = [2]any{p.Birth, infinityToken}

			continue
		}
		w.Pairs[i] = [2]any{p.Birth, p.Death}
	}

	return json.Marshal(w)
}

// UnmarshalJSON decodes the shape produced by MarshalJSON.
func (d *Diagram) UnmarshalJSON(data []byte) error {
	var w diagramJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	out := Diagram{Dimension: w.Dimension, Pairs: make([]Pair, len(w.Pairs))}
	for i, rec := range w.Pairs {
		birth, ok := rec[0].(float64)
		if !ok {
			return fmt.Errorf("diagram: pair %d: birth is not a number", i)
		}
		var death float64
		switch v := rec[1].(type) {
		case float64:
			death = v
		case string:
			if v != infinityToken {
				return fmt.Errorf("diagram: pair %d: unknown death marker %q", i, v)
			}
			death = math.Inf(1)
		default:
			return fmt.Errorf("diagram: pair %d: death is neither number nor marker", i)
		}
		out.Pairs[i] = Pair{Birth: birth, Death: death}
	}
	*d = out

	return nil
}
