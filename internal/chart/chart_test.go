package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepbook-dev/keepbook/internal/model"
)

func TestDefaultChart(t *testing.T) {
	accts := Default()
	require.NotEmpty(t, accts)

	codes := make(map[string]bool)
	for _, a := range accts {
		assert.False(t, codes[a.Code], "duplicate code %s", a.Code)
		codes[a.Code] = true
		assert.True(t, a.Type.Valid(), "account %s has invalid type %s", a.Code, a.Type)

		// Balance sheet types must carry a subtype to be bucketed.
		switch a.Type {
		case model.AccountTypeAsset, model.AccountTypeLiability, model.AccountTypeEquity:
			assert.NotEmpty(t, a.Subtype, "account %s missing subtype", a.Code)
		}
	}

	// Fixed conventions the reports depend on.
	assert.True(t, codes["5000"], "COGS account missing")
	assert.True(t, codes["1000"] && codes["1010"], "cash accounts missing")

	for _, a := range accts {
		if a.Code == "5000" {
			assert.Equal(t, model.AccountTypeExpense, a.Type)
		}
		if a.Code == "3100" {
			assert.Equal(t, model.SubtypeRetainedEarnings, a.Subtype)
		}
	}
}
