package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelRevenue_MarshalJSON(t *testing.T) {
	cases := map[string]string{
		"111":   `{"model_id":9,"revenue":"111.00"}`,
		"64.4":  `{"model_id":9,"revenue":"64.40"}`,
		"0":     `{"model_id":9,"revenue":"0.00"}`,
		"12.25": `{"model_id":9,"revenue":"12.25"}`,
	}
	for revenue, want := range cases {
		t.Run(revenue, func(t *testing.T) {
			data, err := json.Marshal(ModelRevenue{ModelID: 9, Revenue: decimal.RequireFromString(revenue)})
			require.NoError(t, err)
			assert.JSONEq(t, want, string(data))
		})
	}
}

func TestModelRevenue_RoundTrip(t *testing.T) {
	data, err := json.Marshal([]ModelRevenue{{ModelID: 6, Revenue: decimal.RequireFromString("64.4")}})
	require.NoError(t, err)

	var got []ModelRevenue
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, 6, got[0].ModelID)
	assert.True(t, decimal.RequireFromString("64.4").Equal(got[0].Revenue))
}
