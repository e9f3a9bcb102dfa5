// Package dto defines the JSON request/response shapes of the API. Field names
// are Spanish, mirroring the frontend contract.
package dto

import "github.com/shopspring/decimal"

func init() {
	// Money fields serialize as JSON numbers ("total": 36.30), not quoted
	// strings. Clients parse amounts with a decimal library on their side.
	decimal.MarshalJSONWithoutQuotes = true
}
