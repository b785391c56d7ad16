package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewlens/backend/internal/models"
)

const goodCSV = `Id,ProductId,UserId,Score,Time,Text
1,B001,U1,5,1303862400,"Great product, arrived quickly and works well."
2,B002,U2,1,1306540800,"The package arrived late and the item was broken."
3,B003,U3,3,1309132800,"It was fine. Nothing special about it, honestly."
`

func TestReadCSV(t *testing.T) {
	reviews, err := ReadCSV(strings.NewReader(goodCSV))
	require.NoError(t, err)
	require.Len(t, reviews, 3)

	first := reviews[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "B001", first.ProductID)
	assert.Equal(t, 5, first.Rating)
	assert.Equal(t, time.Unix(1303862400, 0).UTC(), first.Timestamp)
	assert.Equal(t, "Great product, arrived quickly and works well.", first.Text)
}

func TestReadCSVHeaderCaseInsensitive(t *testing.T) {
	csv := "id,productid,score,time,text\nx,B1,4,1303862400,decent enough for the price point\n"
	reviews, err := ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
}

func TestReadCSVMissingColumn(t *testing.T) {
	csv := "Id,ProductId,Time,Text\n1,B001,1303862400,no score column here\n"
	_, err := ReadCSV(strings.NewReader(csv))
	require.Error(t, err)

	var schemaErr *models.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "score", schemaErr.Field)
}

func TestReadCSVBadValues(t *testing.T) {
	tests := []struct {
		name      string
		row       string
		wantField string
	}{
		{"non-numeric rating", `9,B001,U1,five,1303862400,text here`, "score"},
		{"rating out of range", `9,B001,U1,7,1303862400,text here`, "score"},
		{"non-numeric timestamp", `9,B001,U1,3,yesterday,text here`, "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csv := "Id,ProductId,UserId,Score,Time,Text\n" + tt.row + "\n"
			_, err := ReadCSV(strings.NewReader(csv))
			require.Error(t, err)

			var schemaErr *models.SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.wantField, schemaErr.Field)
			// The offending row is identified to the caller.
			assert.Equal(t, "9", schemaErr.RowID)
			assert.Equal(t, 1, schemaErr.Row)
		})
	}
}

func TestReadCSVAssignsMissingIDs(t *testing.T) {
	csv := "Id,ProductId,Score,Time,Text\n,B001,4,1303862400,review with no identifier at all\n"
	reviews, err := ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.NotEmpty(t, reviews[0].ID)
}

func makeReview(id, text string) models.Review {
	return models.Review{ID: id, Rating: 3, Text: text, Timestamp: time.Unix(1303862400, 0).UTC()}
}

func TestCleanDropsShortAndEmpty(t *testing.T) {
	got := Clean([]models.Review{
		makeReview("1", ""),
		makeReview("2", "too short"),
		makeReview("3", "this review is comfortably long enough to keep"),
	}, CleanOptions{MinTextLength: 20})

	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestCleanDeduplicatesByText(t *testing.T) {
	text := "identical review body, posted more than once"
	got := Clean([]models.Review{
		makeReview("1", text),
		makeReview("2", text),
		makeReview("3", "a different review body that also survives"),
	}, CleanOptions{MinTextLength: 20})

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID, "first occurrence wins")
	assert.Equal(t, "3", got[1].ID)
}

func TestCleanStripsMarkup(t *testing.T) {
	got := Clean([]models.Review{
		makeReview("1", "arrived late<br />and the box was crushed flat"),
	}, CleanOptions{MinTextLength: 20})

	require.Len(t, got, 1)
	assert.Equal(t, "arrived late and the box was crushed flat", got[0].Text)
}

func TestCleanSampleCap(t *testing.T) {
	var in []models.Review
	for i := 0; i < 10; i++ {
		in = append(in, makeReview(string(rune('a'+i)), strings.Repeat("x", 20)+string(rune('a'+i))))
	}

	got := Clean(in, CleanOptions{MinTextLength: 20, SampleSize: 4})
	assert.Len(t, got, 4)
	assert.Equal(t, "a", got[0].ID)
}
