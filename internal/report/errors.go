package report

import "fmt"

func errDecodedByteMismatch(consumed, total int) error {
	return fmt.Errorf("report: rezi decode consumed %d/%d bytes, expected all of them", consumed, total)
}
