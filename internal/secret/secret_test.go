package secret

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMasked_RedactsTextAndJSON(t *testing.T) {
	pan := New("4111111111111111")

	assert.Equal(t, "*** redacted ***", pan.String())
	assert.Equal(t, "*** redacted ***", fmt.Sprintf("%v", pan))
	assert.NotContains(t, fmt.Sprintf("%v", pan), "4111")

	data, err := json.Marshal(pan)
	require.NoError(t, err)
	assert.Equal(t, `"*** redacted ***"`, string(data))
	assert.NotContains(t, string(data), "4111")
}

func TestMasked_RedactsWithinStruct(t *testing.T) {
	type cardDetails struct {
		PAN Masked[string] `json:"pan"`
		CVC Masked[string] `json:"cvc"`
	}

	card := cardDetails{PAN: New("4111111111111111"), CVC: New("737")}

	data, err := json.Marshal(card)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "4111111111111111")
	assert.NotContains(t, string(data), "737")
}

func TestMasked_PeekAndExposeReturnInnerValue(t *testing.T) {
	cvv := New("737")

	assert.Equal(t, "737", cvv.Peek())
	assert.Equal(t, "737", cvv.Expose())
}

func TestMasked_UnmarshalJSONPopulatesInnerValue(t *testing.T) {
	var pan Masked[string]
	require.NoError(t, json.Unmarshal([]byte(`"4111111111111111"`), &pan))
	assert.Equal(t, "4111111111111111", pan.Peek())
}

func TestMasked_EqualComparesInnerValues(t *testing.T) {
	a := New("4111111111111111")
	b := New("4111111111111111")
	c := New("4000000000000002")

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}
