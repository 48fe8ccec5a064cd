package authorizenet

import (
	"fmt"
	"strings"
)

// minResponseFields is the number of delimited fields a well-formed AIM
// response carries. Only a handful of positions are read, but all must be
// present.
const minResponseFields = 68

// Semantically significant 0-based response positions.
const (
	posResponseCode       = 0
	posResponseReasonCode = 2
	posResponseReasonText = 3
	posAuthorizationCode  = 4
	posAvsResponse        = 5
	posTransactionID      = 6
	posCardCodeResponse   = 38
)

// decodeResponse splits the raw gateway response into its ordered,
// un-encapsulated field values. Every field must be wrapped front and back
// in the encapsulation character; the interior is passed through unmodified,
// since the encoder strips delimiter characters from outgoing values and
// they cannot legitimately appear.
func decodeResponse(raw string) ([]string, error) {
	fields := strings.Split(raw, string(delimChar))
	if len(fields) < minResponseFields {
		return nil, fmt.Errorf("not enough fields in response: got %d, want at least %d", len(fields), minResponseFields)
	}

	for i, value := range fields {
		if len(value) < 2 || value[0] != encapChar || value[len(value)-1] != encapChar {
			return nil, fmt.Errorf("response value not encapsulated at position %d", i)
		}
		fields[i] = value[1 : len(value)-1]
	}

	return fields, nil
}
