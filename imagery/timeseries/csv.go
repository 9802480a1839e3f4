package timeseries

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/djherbis/buffer"
	"github.com/djherbis/nio/v3"
)

// WriteCSV writes one row per record: scene, time, doy and the requested
// bands. Missing values are empty cells.
func WriteCSV(w io.Writer, records []Record, bands []string) error {
	r, pw := nio.Pipe(buffer.New(32 * 1024))

	go func() {
		cw := csv.NewWriter(pw)
		header := append([]string{"scene", "time", "doy"}, bands...)
		if err := cw.Write(header); err != nil {
			pw.CloseWithError(err)
			return
		}
		row := make([]string, len(header))
		for _, rec := range records {
			row[0] = rec.SceneID
			row[1] = rec.Time.UTC().Format(time.RFC3339)
			row[2] = strconv.Itoa(rec.DOY)
			for i, band := range bands {
				row[3+i] = formatValue(rec.Value(band))
			}
			if err := cw.Write(row); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		cw.Flush()
		pw.CloseWithError(cw.Error())
	}()

	_, err := io.Copy(w, r)
	if err != nil {
		r.CloseWithError(err)
	}
	return err
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
