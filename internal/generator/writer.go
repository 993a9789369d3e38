package generator

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vanshika/recordfactory/pkg/factory"
)

// WriteDataset serializes the dataset into one <kind>.json file per kind under the provided directory.
func WriteDataset(dataset Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, kind := range dataset.Kinds {
		records := dataset.Records[kind]
		if records == nil {
			records = []any{}
		}
		path := filepath.Join(dir, string(kind)+".json")
		if err := writeJSON(path, records); err != nil {
			return err
		}
	}
	return nil
}

// Line is one entry of the JSON lines stream.
type Line struct {
	Kind   factory.Kind `json:"kind"`
	Record any          `json:"record"`
}

// WriteJSONLines streams every record as a single {"kind":...,"record":...} object per line.
func WriteJSONLines(dataset Dataset, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	for _, kind := range dataset.Kinds {
		for _, rec := range dataset.Records[kind] {
			if err := encoder.Encode(Line{Kind: kind, Record: rec}); err != nil {
				return fmt.Errorf("encode %s record: %w", kind, err)
			}
		}
	}
	return nil
}

func writeJSON(path string, data any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode json for %s: %w", path, err)
	}
	return nil
}
