package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.False(t, Text("x").IsNull())
	assert.False(t, Num(1).IsNull())

	f, ok := Num(3.5).Float()
	assert.True(t, ok)
	assert.InDelta(t, 3.5, f, 0.0001)

	_, ok = Text("3.5").Float()
	assert.False(t, ok)
	_, ok = Null().Float()
	assert.False(t, ok)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "hello", Text("hello").String())
	assert.Equal(t, "42", Num(42).String())
	assert.Equal(t, "3.5", Num(3.5).String())
	assert.Equal(t, "", Null().String())
}

func TestValueAsNum(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want Value
	}{
		{"number passes through", Num(7), Num(7)},
		{"parseable text", Text("12.5"), Num(12.5)},
		{"padded text", Text(" 3 "), Num(3)},
		{"free text", Text("Less than 1 year"), Null()},
		{"empty text", Text(""), Null()},
		{"missing", Null(), Null()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.AsNum())
		})
	}
}

func newFixture(t *testing.T) *Frame {
	t.Helper()
	f := New([]string{"Country", "Comp"})
	require.NoError(t, f.AppendRow(Text("Norway"), Num(100)))
	require.NoError(t, f.AppendRow(Text("India"), Null()))
	return f
}

func TestAppendRowArity(t *testing.T) {
	f := New([]string{"a", "b"})
	assert.Error(t, f.AppendRow(Text("x")))
	assert.NoError(t, f.AppendRow(Text("x"), Text("y")))
	assert.Equal(t, 1, f.Len())
}

func TestAt(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, Text("Norway"), f.At(0, "Country"))
	assert.Equal(t, Num(100), f.At(0, "Comp"))
	assert.True(t, f.At(1, "Comp").IsNull())
	// absent column and out-of-range rows read as missing
	assert.True(t, f.At(0, "Nope").IsNull())
	assert.True(t, f.At(99, "Country").IsNull())
}

func TestColumn(t *testing.T) {
	f := newFixture(t)
	vals, ok := f.Column("Comp")
	require.True(t, ok)
	assert.Equal(t, []Value{Num(100), Null()}, vals)

	_, ok = f.Column("Nope")
	assert.False(t, ok)
}

func TestSelectLenient(t *testing.T) {
	f := newFixture(t)
	out := f.Select("Comp", "DoesNotExist")
	assert.Equal(t, []string{"Comp"}, out.Columns())
	assert.Equal(t, 2, out.Len())
	assert.Equal(t, Num(100), out.At(0, "Comp"))
}

func TestWithColumnReplacesAndAppends(t *testing.T) {
	f := newFixture(t)

	replaced, err := f.WithColumn("Comp", []Value{Num(1), Num(2)})
	require.NoError(t, err)
	assert.Equal(t, Num(1), replaced.At(0, "Comp"))
	// input untouched
	assert.Equal(t, Num(100), f.At(0, "Comp"))

	appended, err := f.WithColumn("New", []Value{Text("a"), Text("b")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Country", "Comp", "New"}, appended.Columns())
	assert.Equal(t, Text("b"), appended.At(1, "New"))
	assert.False(t, f.HasColumn("New"))

	_, err = f.WithColumn("Bad", []Value{Num(1)})
	assert.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	f := newFixture(t)
	c := f.Clone()
	require.NoError(t, c.AppendRow(Text("Ghana"), Num(5)))
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, 3, c.Len())
}

func TestFilterRows(t *testing.T) {
	f := newFixture(t)
	out := f.FilterRows(func(i int) bool { return !f.At(i, "Comp").IsNull() })
	assert.Equal(t, 1, out.Len())
	assert.Equal(t, Text("Norway"), out.At(0, "Country"))
}
