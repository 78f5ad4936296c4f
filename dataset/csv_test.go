package dataset_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basket/dataset"
)

const sampleCSV = `Member_number,Date,itemDescription
1808,21-07-2015,tropical fruit
2552,05-01-2015,whole milk
1808,21-07-2015,pip fruit
1808,21-07-2015,tropical fruit
2552,05-01-2015,whole milk
3037,20-03-2015, yogurt
`

// TestLoadCSV_GroupsAndDedupes verifies (member, date) grouping, in-basket
// deduplication and deterministic transaction order.
func TestLoadCSV_GroupsAndDedupes(t *testing.T) {
	ds, err := dataset.LoadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 6, ds.Rows(), "every non-blank row counts")
	assert.Equal(t, 3, ds.Len(), "three (member,date) baskets")
	assert.Equal(t, []string{"tropical fruit", "whole milk", "pip fruit", "yogurt"}, ds.Vocab,
		"vocabulary in first-seen order")

	// Sorted by member: 1808 < 2552 < 3037.
	assert.Equal(t, "1808", ds.Tx[0].Member)
	assert.Equal(t, []int{0, 2}, ds.Tx[0].Items, "duplicate tropical fruit collapsed")
	assert.Equal(t, []int{1}, ds.Tx[1].Items)
	assert.Equal(t, []int{3}, ds.Tx[2].Items, "leading space in item trimmed")

	want := time.Date(2015, time.July, 21, 0, 0, 0, 0, time.UTC)
	assert.True(t, ds.Tx[0].Date.Equal(want), "dd-mm-yyyy layout parsed")
}

// TestLoadCSV_CustomColumns exercises column renaming and delimiter options.
func TestLoadCSV_CustomColumns(t *testing.T) {
	in := "customer;day;product\n7;2015-02-01;butter\n7;2015-02-01;bread\n"

	ds, err := dataset.LoadCSV(strings.NewReader(in),
		dataset.WithMemberColumn("customer"),
		dataset.WithDateColumn("day"),
		dataset.WithItemColumn("product"),
		dataset.WithDateLayout("2006-01-02"),
		dataset.WithDelimiter(';'),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
	assert.Equal(t, []int{0, 1}, ds.Tx[0].Items)
}

// TestLoadCSV_Errors covers the sentinel error surface.
func TestLoadCSV_Errors(t *testing.T) {
	_, err := dataset.LoadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, dataset.ErrEmptyInput, "empty file")

	_, err = dataset.LoadCSV(strings.NewReader("Member_number,Date,itemDescription\n"))
	assert.ErrorIs(t, err, dataset.ErrEmptyInput, "header-only file")

	_, err = dataset.LoadCSV(strings.NewReader("a,b,c\n1,2,3\n"))
	assert.ErrorIs(t, err, dataset.ErrMissingColumn, "unknown header names")

	_, err = dataset.LoadCSV(strings.NewReader("Member_number,Date,itemDescription\n1,not-a-date,milk\n"))
	assert.ErrorIs(t, err, dataset.ErrBadDate, "unparseable date")
}

// TestLoadCSV_UnpaddedDatesShareBasket ensures rows whose date cells spell
// the same day differently (mixed zero-padding under an unpadded layout)
// collapse into one (member, date) basket.
func TestLoadCSV_UnpaddedDatesShareBasket(t *testing.T) {
	in := "Member_number,Date,itemDescription\n1808,05-1-2015,milk\n1808,5-1-2015,bread\n"

	ds, err := dataset.LoadCSV(strings.NewReader(in), dataset.WithDateLayout("2-1-2006"))
	require.NoError(t, err)

	require.Equal(t, 1, ds.Len(), "same member and day must form one basket")
	assert.Equal(t, []int{0, 1}, ds.Tx[0].Items)
}

// TestLoadCSV_BlankItemsSkipped ensures rows with empty items carry no
// basket information but do not fail the load.
func TestLoadCSV_BlankItemsSkipped(t *testing.T) {
	in := "Member_number,Date,itemDescription\n1,01-01-2015,\n1,01-01-2015,milk\n"

	ds, err := dataset.LoadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Rows())
	assert.Equal(t, 1, ds.Len())
}

// TestNew_Validation covers the programmatic constructor contract.
func TestNew_Validation(t *testing.T) {
	day := time.Date(2015, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, err := dataset.New(nil, nil)
	assert.ErrorIs(t, err, dataset.ErrEmptyInput)

	_, err = dataset.New([]string{"a"}, []dataset.Transaction{{Member: "m", Date: day}})
	assert.ErrorIs(t, err, dataset.ErrBadBasket, "empty basket")

	_, err = dataset.New([]string{"a"}, []dataset.Transaction{{Member: "m", Date: day, Items: []int{1}}})
	assert.ErrorIs(t, err, dataset.ErrBadBasket, "id out of vocabulary")

	_, err = dataset.New([]string{"a", "b"}, []dataset.Transaction{{Member: "m", Date: day, Items: []int{1, 0}}})
	assert.ErrorIs(t, err, dataset.ErrBadBasket, "descending ids")

	ds, err := dataset.New([]string{"a", "b"}, []dataset.Transaction{
		{Member: "m2", Date: day, Items: []int{1}},
		{Member: "m1", Date: day, Items: []int{0, 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", ds.Tx[0].Member, "transactions re-sorted by member")

	id, ok := ds.ItemID("b")
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Equal(t, []string{"a", "b"}, ds.Names([]int{0, 1}))
	assert.Equal(t, "", ds.ItemName(99), "out of range id maps to empty name")
}
