package report

import (
	"encoding/json"
	"io"
)

// JSONRenderer emits the canonical report artifact: pretty-printed JSON with
// two-space indentation and a trailing newline. Key order follows struct
// declaration order, so re-rendering the same snapshot is byte-identical.
type JSONRenderer struct{}

func (r *JSONRenderer) Format() string { return "json" }

func (r *JSONRenderer) DefaultFileName() string { return "index.json" }

func (r *JSONRenderer) Render(w io.Writer, rep *Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
