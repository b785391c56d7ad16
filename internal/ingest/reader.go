// Package ingest loads and cleans the upstream review table. Schema
// violations fail the whole batch with the offending row identified;
// cleaning is lossy by design and happens after the schema is validated.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reviewlens/backend/internal/models"
)

// Required input columns. Matching is case-insensitive so both the raw
// dataset ("Id", "Text") and lowercase exports load.
var requiredColumns = []string{"id", "productid", "score", "time", "text"}

// ReadCSV parses the review table. A missing required column or a
// non-numeric rating/timestamp is a SchemaError and aborts the load;
// empty text is left for Clean to drop.
func ReadCSV(r io.Reader) ([]models.Review, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, &models.SchemaError{Field: name, Reason: "required column missing"}
		}
	}

	var reviews []models.Review
	row := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", row, err)
		}

		rev, serr := parseRow(record, cols, row)
		if serr != nil {
			return nil, serr
		}
		reviews = append(reviews, rev)
		row++
	}

	return reviews, nil
}

func parseRow(record []string, cols map[string]int, row int) (models.Review, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	id := field("id")
	if id == "" {
		id = uuid.NewString()
	}

	scoreRaw := field("score")
	rating, err := strconv.Atoi(scoreRaw)
	if err != nil {
		return models.Review{}, &models.SchemaError{
			Row: row, RowID: id, Field: "score",
			Reason: fmt.Sprintf("non-numeric rating %q", scoreRaw),
		}
	}
	if rating < 1 || rating > 5 {
		return models.Review{}, &models.SchemaError{
			Row: row, RowID: id, Field: "score",
			Reason: fmt.Sprintf("rating %d outside 1-5", rating),
		}
	}

	timeRaw := field("time")
	unix, err := strconv.ParseInt(timeRaw, 10, 64)
	if err != nil {
		return models.Review{}, &models.SchemaError{
			Row: row, RowID: id, Field: "time",
			Reason: fmt.Sprintf("non-numeric timestamp %q", timeRaw),
		}
	}

	return models.Review{
		ID:        id,
		ProductID: field("productid"),
		Text:      field("text"),
		Rating:    rating,
		Timestamp: time.Unix(unix, 0).UTC(),
	}, nil
}
