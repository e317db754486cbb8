package pipeline

import (
	"fmt"
	"regexp"
)

// phonePattern accepts NANP numbers with an optional +1/1 prefix,
// optional parentheses around the area code, and space/dash/dot
// separators.
var phonePattern = regexp.MustCompile(`^\(?(?:\+? ?1?[ -.]*)?\(?(\d{3})\)?[ -.]*(\d{3})[ -.]*(\d{4})$`)

// InvalidPhoneError reports phone text that does not match the NANP
// pattern. It carries the original input.
type InvalidPhoneError struct {
	Input string
}

func (e *InvalidPhoneError) Error() string {
	return fmt.Sprintf("invalid phone number: %s", e.Input)
}

// FormatPhone normalizes a US or Canadian phone number to the
// +1 XXX-XXX-XXXX form.
func FormatPhone(phone string) (string, error) {
	m := phonePattern.FindStringSubmatch(phone)
	if m == nil {
		return "", &InvalidPhoneError{Input: phone}
	}
	return fmt.Sprintf("+1 %s-%s-%s", m[1], m[2], m[3]), nil
}
