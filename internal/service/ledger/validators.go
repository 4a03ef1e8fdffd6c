package ledger

import "strings"

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}
