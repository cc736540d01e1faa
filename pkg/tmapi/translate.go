package tmapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fraudops/opsagent/pkg/models"
)

// fieldTranslation maps TM API wire field names to the internal names
// used by scoring logic. Static; applied before any pure logic sees the
// payload.
var fieldTranslation = map[string]string{
	"txn_id":          "transaction_id",
	"card_token":      "card_id",
	"merchant_ref":    "merchant_id",
	"merchant_name":   "merchant_name",
	"mcc_code":        "mcc",
	"txn_amount":      "amount",
	"currency_code":   "currency",
	"decision":        "status",
	"country_code":    "country",
	"occurred_at":     "timestamp",
	"three_ds_result": "3ds_verified",
	"device_trust":    "device_trusted",
}

// translateFields renames wire keys to internal keys. Unknown keys pass
// through unchanged so new TM fields degrade gracefully.
func translateFields(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		if internal, ok := fieldTranslation[k]; ok {
			out[internal] = v
		} else {
			out[k] = v
		}
	}
	// TM reports decisions in uppercase; internal status values are
	// lowercase ("approved"/"declined").
	if s, ok := out["status"].(string); ok {
		out["status"] = strings.ToLower(s)
	}
	return out
}

// decodeTransaction translates and decodes one TM transaction object.
func decodeTransaction(raw map[string]any) (models.Transaction, error) {
	translated := translateFields(raw)
	buf, err := json.Marshal(translated)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to re-encode transaction: %w", err)
	}
	var txn models.Transaction
	if err := json.Unmarshal(buf, &txn); err != nil {
		return models.Transaction{}, fmt.Errorf("failed to decode transaction: %w", err)
	}
	return txn, nil
}

func decodeTransactions(raws []map[string]any) ([]models.Transaction, error) {
	out := make([]models.Transaction, 0, len(raws))
	for _, raw := range raws {
		txn, err := decodeTransaction(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, txn)
	}
	return out, nil
}
