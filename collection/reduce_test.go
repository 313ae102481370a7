package collection

import (
	"slices"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asynckit-go/asynckit/commonerrors"
	"github.com/asynckit-go/asynckit/commonerrors/errortest"
	"github.com/asynckit-go/asynckit/field"
)

func TestReduce(t *testing.T) {
	concat := func(acc, e string) string { return acc + e }
	assert.Equal(t, "foobarbaz", Reduce([]string{"foo", "bar", "baz"}, "", concat))
	assert.Equal(t, "seed", Reduce(nil, "seed", concat))

	sum := func(acc, e int) int { return acc + e }
	assert.Equal(t, 10, Reduce([]int{1, 2, 3, 4}, 0, sum))
	assert.Equal(t, 10, ReducesSequence(slices.Values([]int{1, 2, 3, 4}), 0, sum))
}

func TestReduceSlots(t *testing.T) {
	concat := func(acc, e string) string { return acc + e }
	s := SparseSlots(field.ToOptionalString("foo"), nil, field.ToOptionalString("bar"), nil, field.ToOptionalString("baz"))
	assert.Equal(t, "foobarbaz", ReduceSlots(s, "", concat))

	seed := faker.Word()
	assert.Equal(t, seed, ReduceSlots([]Slot[string]{}, seed, concat))
	assert.Equal(t, seed, ReduceSlots(SparseSlots[string](nil, nil), seed, concat))
}

func TestReduceSlotsSeeded(t *testing.T) {
	concat := func(acc, e string) string { return acc + e }

	result, err := ReduceSlotsSeeded(Slots("foo", "bar", "baz"), concat)
	require.NoError(t, err)
	assert.Equal(t, "foobarbaz", result)

	// The seed is consumed, not folded over.
	result, err = ReduceSlotsSeeded(Slots("foo"), concat)
	require.NoError(t, err)
	assert.Equal(t, "foo", result)

	// Holes before the seed do not change the outcome.
	result, err = ReduceSlotsSeeded(SparseSlots(nil, field.ToOptionalString("foo"), nil, field.ToOptionalString("bar")), concat)
	require.NoError(t, err)
	assert.Equal(t, "foobar", result)

	_, err = ReduceSlotsSeeded([]Slot[string]{}, concat)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	errortest.AssertErrorDescription(t, err, "empty collection with no initial value")

	_, err = ReduceSlotsSeeded(SparseSlots[string](nil, nil, nil), concat)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}
