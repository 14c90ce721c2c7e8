package match

import "golang.org/x/text/cases"

// Key returns the lookup key of a property or parameter name.
// Keys are case-folded, so "AccountID", "accountId" and "accountid" share one key.
// Separators are kept: "account_id" and "accountID" are different keys.
func Key(name string) string {
	return cases.Fold().String(name)
}
