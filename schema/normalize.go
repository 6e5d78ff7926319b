package schema

import "fmt"

// ValidateFlipCount ensures a requested flip count is within range.
func ValidateFlipCount(count int) error {
	if count < MinFlips || count > MaxFlips {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidCount, count, MinFlips, MaxFlips)
	}
	return nil
}
