package table_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/latecalc/internal/table"
	apperrors "github.com/Tiliavir/latecalc/pkg/errors"
)

func sample() table.Table {
	return table.New("First Name", "Last Name", "Grade").
		Append("Ada", "Lovelace", "A").
		Append("Alan", "Turing", "B")
}

func TestInsertColumn(t *testing.T) {
	src := sample()
	got, err := src.InsertColumn(1, "Days", "0")
	require.NoError(t, err)

	want := [][]string{
		{"First Name", "Days", "Last Name", "Grade"},
		{"Ada", "0", "Lovelace", "A"},
		{"Alan", "0", "Turing", "B"},
	}
	if diff := cmp.Diff(want, got.Records()); diff != "" {
		t.Errorf("InsertColumn mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, src.Has("Days"), "source table must not change")
}

func TestInsertColumnAppendAndOutOfRange(t *testing.T) {
	src := sample()

	got, err := src.InsertColumn(3, "Days", "0")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Index("Days"))

	_, err = src.InsertColumn(4, "Days", "0")
	require.ErrorIs(t, err, apperrors.ErrOutOfRange)

	_, err = src.InsertColumn(0, "Grade", "0")
	require.Error(t, err)
}

func TestDropColumn(t *testing.T) {
	src := sample()
	got := src.DropColumn("Grade")

	assert.Equal(t, []string{"First Name", "Last Name"}, got.Columns)
	_, ok := got.Rows[0]["Grade"]
	assert.False(t, ok)
	assert.Equal(t, "A", src.Rows[0]["Grade"])
	assert.Equal(t, got.Records(), got.DropColumn("Missing").Records())
}

func TestFilter(t *testing.T) {
	got := sample().Filter(func(r table.Row) bool { return r["Grade"] == "B" })
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "Alan", got.Rows[0]["First Name"])
}

func TestFromRecords(t *testing.T) {
	got, err := table.FromRecords([][]string{
		{"a", "b"},
		{"1"},
		{"2", "3", "ignored"},
	})
	require.NoError(t, err)

	want := [][]string{{"a", "b"}, {"1", ""}, {"2", "3"}}
	if diff := cmp.Diff(want, got.Records()); diff != "" {
		t.Errorf("FromRecords mismatch (-want +got):\n%s", diff)
	}

	_, err = table.FromRecords(nil)
	assert.Error(t, err)
	_, err = table.FromRecords([][]string{{"a", "a"}})
	assert.Error(t, err)
}
