package reconcile

import "strings"

// CaseName derives a slug like "aasim-durrani-ME4KC407JSA102577" from the
// buyer's first and last name and the VIN. Missing parts fall back to
// "pending", "buyer" and "PENDINGVIN".
func CaseName(buyerName, vin string) string {
	tokens := strings.Fields(buyerName)

	first, last := "pending", "buyer"
	switch len(tokens) {
	case 0:
	case 1:
		first, last = tokens[0], tokens[0]
	default:
		first, last = tokens[0], tokens[len(tokens)-1]
	}

	id := strings.Join(strings.Fields(vin), "")
	if id == "" {
		id = "PENDINGVIN"
	}

	return strings.ToLower(first) + "-" + strings.ToLower(last) + "-" + strings.ToUpper(id)
}
