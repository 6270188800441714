package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsCardNumber reports whether s is a valid campus card number. Card
// numbers issued by partner institutions carry a Luhn check digit.
func IsCardNumber(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
