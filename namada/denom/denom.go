package denom

import (
	"fmt"
	"math/big"
	"strings"
)

// Decimals is the number of decimal places of the native token. Balances and
// bond amounts travel as base units, the signing side expects display units.
const Decimals = 6

var denominationFactor = big.NewInt(1_000_000)

// ToDisplay converts an amount expressed in base units to display units,
// trimming insignificant trailing zeros ("5000000" becomes "5",
// "1500000" becomes "1.5").
func ToDisplay(baseUnits string) (string, error) {
	value, err := parseBaseUnits(baseUnits)
	if err != nil {
		return "", err
	}

	quotient, remainder := new(big.Int).QuoRem(value, denominationFactor, new(big.Int))
	if remainder.Sign() == 0 {
		return quotient.String(), nil
	}

	fraction := strings.TrimRight(fmt.Sprintf("%06d", remainder), "0")

	return fmt.Sprintf("%s.%s", quotient.String(), fraction), nil
}

// Format converts an amount expressed in base units to display units with all
// six decimal places, as shown on balances ("2000000" becomes "2.000000").
func Format(baseUnits string) (string, error) {
	value, err := parseBaseUnits(baseUnits)
	if err != nil {
		return "", err
	}

	quotient, remainder := new(big.Int).QuoRem(value, denominationFactor, new(big.Int))

	return fmt.Sprintf("%s.%06d", quotient.String(), remainder), nil
}

func parseBaseUnits(baseUnits string) (*big.Int, error) {
	trimmed := strings.TrimSpace(baseUnits)
	if len(trimmed) == 0 {
		return nil, errEmptyAmount
	}

	value, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errInvalidAmount, baseUnits)
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", errNegativeAmount, baseUnits)
	}

	return value, nil
}
