package reports

import "errors"

// ErrDuplicatePhone is returned by stores that enforce the phone number
// unique index when Create loses a race against another writer.
var ErrDuplicatePhone = errors.New("reports: phone number already reported")

// ErrInvalidPhoneNumber means the number does not normalize to 10-15 digits.
var ErrInvalidPhoneNumber = errors.New("reports: phone number must have 10 to 15 digits")
