package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options" validate:"min=2,dive,required"`
}

func TestDecodeStrict(t *testing.T) {
	v, err := DecodeStrict[sample]("```json\n{\"question\":\"Q?\",\"options\":[\"a\",\"b\"]}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Q?", v.Question)

	v, err = DecodeStrict[sample]("Sure! Here it is:\n{\"question\":\"Q?\",\"options\":[\"a\",\"b\"]}\nGood luck.")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v.Options)

	_, err = DecodeStrict[sample](`{"question":"Q?","options":["a","b"]} and {"question":"R?","options":["a","b"]}`)
	assert.ErrorIs(t, err, ErrTrailingData)

	_, err = DecodeStrict[sample](`Sorry, I cannot help with that.`)
	assert.ErrorIs(t, err, ErrNoJSON)

	_, err = DecodeStrict[sample](`Sure! {"question":"Q?","options":["a","b"]`)
	assert.Error(t, err)

	_, err = DecodeStrict[sample](`{"question":"","options":["a","b"]}`)
	assert.Error(t, err)

	_, err = DecodeStrict[sample](`{"question":"Q?","options":["a"]}`)
	assert.Error(t, err)
}

func TestDecodeStrictSlice(t *testing.T) {
	items, err := DecodeStrict[[]sample](`[{"question":"A?","options":["x","y"]},{"question":"B?","options":["x","y","z"]}]`)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = DecodeStrict[[]sample](`[]`)
	assert.ErrorIs(t, err, ErrEmptyList)

	_, err = DecodeStrict[[]sample](`[{"question":"A?","options":["x","y"]},{"question":"","options":["x","y"]}]`)
	assert.Error(t, err)
}

func TestDecodeKeepsUnvalidated(t *testing.T) {
	items, err := Decode[[]sample](`[{"question":"","options":[]}]`)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Error(t, Validate(items[0]))
}
