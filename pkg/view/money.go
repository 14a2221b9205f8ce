package view

import "fmt"

// FormatMoney renders an amount with its currency symbol, e.g. 129.5 INR ->
// "₹129.50".
func FormatMoney(amount float64, currency string) string {
	return fmt.Sprintf("%s%.2f", currencySymbol(currency), amount)
}

func currencySymbol(code string) string {
	switch code {
	case "INR":
		return "₹"
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	default:
		return code + " "
	}
}
