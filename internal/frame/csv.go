package frame

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"
)

// missingTokens are the field encodings treated as the missing marker on
// load. The survey export writes both empty fields and the literal "NA".
var missingTokens = map[string]bool{
	"":   true,
	"NA": true,
}

// ReadCSV loads a headered CSV file into a frame. Empty fields and "NA"
// become missing; rows shorter than the header are padded with missing and
// longer rows are truncated. A missing file is reported so that
// errors.Is(err, os.ErrNotExist) holds, since it is the one fatal input
// condition callers are expected to branch on.
func ReadCSV(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "frame: open %s", path)
	}
	defer file.Close() //nolint:errcheck

	return parseCSV(file, path)
}

func parseCSV(r io.Reader, path string) (*Frame, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // allow variable fields

	header, err := reader.Read()
	if err == io.EOF {
		return nil, eris.Errorf("frame: %s has no header row", path)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "frame: read header of %s", path)
	}

	f := New(header)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "frame: read row of %s", path)
		}

		row := make([]Value, len(header))
		for j := range header {
			if j >= len(record) || missingTokens[record[j]] {
				row[j] = Null()
				continue
			}
			row[j] = Text(record[j])
		}
		f.rows = append(f.rows, row)
	}

	return f, nil
}
