package common

import (
	"math/big"
)

// Decimal is a coefficient*10^exponent value with a 128-bit signed
// coefficient and an 8-bit exponent (spec §3.2). It does not support NaN
// or infinity. A Decimal should always be normalized (see Normalize) so
// that Cmp and equality behave as a total order; FromPartsDenormalized
// skips normalization so decoded wire bytes can be checked with
// IsNormalized, and so constants whose parts are already normalized can
// be built directly.
type Decimal struct {
	coefficient big.Int
	exponent    int8
}

// Zero is the only valid representation of zero.
var Zero = Decimal{exponent: 0}

// One is the normalized decimal for 1.
var One = FromPartsDenormalized(big.NewInt(1), 0)

// minInt128 / maxInt128 bound the coefficient (spec: "integer widths
// beyond 128 bits" are a non-goal).
var (
	minInt128 = func() *big.Int {
		v := new(big.Int).Lsh(big.NewInt(1), 127)
		return v.Neg(v)
	}()
	maxInt128 = func() *big.Int {
		v := new(big.Int).Lsh(big.NewInt(1), 127)
		return v.Sub(v, big.NewInt(1))
	}()
)

// MinValue and MaxValue are the extreme representable decimals, with the
// exponent pushed to its maximum the way the coefficient cannot be
// normalized further without losing the 128-bit width.
func MinValue() Decimal { return FromPartsDenormalized(new(big.Int).Set(minInt128), 127) }
func MaxValue() Decimal { return FromPartsDenormalized(new(big.Int).Set(maxInt128), 127) }

// FromPartsDenormalized constructs a Decimal without normalizing it.
// Only use this when decoding raw wire bytes so normalization can be
// checked explicitly, or when you already know the parts are normalized.
func FromPartsDenormalized(coefficient *big.Int, exponent int8) Decimal {
	var d Decimal
	d.coefficient.Set(coefficient)
	d.exponent = exponent
	return d
}

// FromParts constructs and normalizes a Decimal.
func FromParts(coefficient *big.Int, exponent int8) Decimal {
	return FromPartsDenormalized(coefficient, exponent).Normalize()
}

// Coefficient returns the coefficient as a *big.Int (a copy).
func (d Decimal) Coefficient() *big.Int {
	return new(big.Int).Set(&d.coefficient)
}

// Exponent returns the exponent.
func (d Decimal) Exponent() int8 {
	return d.exponent
}

// IsZero reports whether the coefficient is zero.
func (d Decimal) IsZero() bool {
	return d.coefficient.Sign() == 0
}

// Normalize returns the unique normalized form of d: zero always becomes
// (0,0); otherwise the exponent is pushed as close to 0 as possible
// without losing precision, stopping early if going further would
// overflow the 128-bit coefficient.
func (d Decimal) Normalize() Decimal {
	if d.coefficient.Sign() == 0 {
		return Zero
	}
	if d.exponent == 0 {
		return d
	}
	ten := big.NewInt(10)
	if d.exponent > 0 {
		coeff := new(big.Int).Set(&d.coefficient)
		exp := d.exponent
		for exp > 0 {
			next := new(big.Int).Mul(coeff, ten)
			if next.Cmp(maxInt128) > 0 || next.Cmp(minInt128) < 0 {
				break
			}
			coeff = next
			exp--
		}
		return FromPartsDenormalized(coeff, exp)
	}
	// exponent < 0: divide by 10 while evenly divisible.
	coeff := new(big.Int).Set(&d.coefficient)
	exp := d.exponent
	for exp < 0 {
		q, r := new(big.Int), new(big.Int)
		q.QuoRem(coeff, ten, r)
		if r.Sign() != 0 {
			break
		}
		coeff = q
		exp++
	}
	return FromPartsDenormalized(coeff, exp)
}

// IsNormalized reports whether d is already in normalized form.
func (d Decimal) IsNormalized() bool {
	n := d.Normalize()
	return n.exponent == d.exponent && n.coefficient.Cmp(&d.coefficient) == 0
}

// Cmp implements the total, value-ordered comparison from spec §4.2:
// align to the smaller exponent (scaling the other coefficient up by
// powers of ten), saturating to Greater/Less on overflow instead of
// panicking or wrapping.
func (d Decimal) Cmp(other Decimal) int {
	if d.exponent == other.exponent {
		return d.coefficient.Cmp(&other.coefficient)
	}
	if d.exponent > other.exponent {
		scaled, ok := scaleDownTo(d.coefficient, d.exponent, other.exponent)
		if !ok {
			// d could not be scaled to other's exponent without
			// overflowing; d's magnitude dominates.
			if d.coefficient.Sign() >= 0 {
				return 1
			}
			return -1
		}
		return scaled.Cmp(&other.coefficient)
	}
	scaled, ok := scaleDownTo(other.coefficient, other.exponent, d.exponent)
	if !ok {
		if other.coefficient.Sign() >= 0 {
			return -1
		}
		return 1
	}
	return d.coefficient.Cmp(scaled)
}

// scaleDownTo multiplies coefficient by 10^(exponent-target), returning
// ok=false if that would overflow the 128-bit range.
func scaleDownTo(coefficient big.Int, exponent, target int8) (*big.Int, bool) {
	cur := new(big.Int).Set(&coefficient)
	ten := big.NewInt(10)
	for exponent > target {
		next := new(big.Int).Mul(cur, ten)
		if next.Cmp(maxInt128) > 0 || next.Cmp(minInt128) < 0 {
			return nil, false
		}
		cur = next
		exponent--
	}
	return cur, true
}

// Equal reports value equality via Cmp, not representation equality;
// callers that need representation equality should normalize first.
func (d Decimal) Equal(other Decimal) bool {
	return d.Cmp(other) == 0
}
