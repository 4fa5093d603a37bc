package unit

// Primary returns the low 32-bit half of the code: dimension ordinal plus any
// time or angle bits.
func (c Code) Primary() Code {
	return c & PrimaryMask
}

// Secondary returns the denominator code stored in the high 32-bit half, or 0
// when c is not a ratio quantity.
func (c Code) Secondary() Code {
	return (c & SecondaryMask) >> SecondaryShift
}

// IsComposite reports whether c names a ratio of two quantities.
func (c Code) IsComposite() bool {
	return c&SecondaryMask != 0
}

// Per builds the ratio quantity c per den. Only the primary halves of both
// codes are used; composite codes do not nest.
func (c Code) Per(den Code) Code {
	return c.Primary() | den.Primary()<<SecondaryShift
}

// HasTime reports whether the primary half carries a time sub-code.
func (c Code) HasTime() bool {
	return c&TimeMask != 0
}

// TimeUnit returns the calendar unit selector of c (Second ... Century), or 0.
func (c Code) TimeUnit() Code {
	return c & TimeUnitMask
}

// IsTimeMult reports whether the time sub-code means "in" rather than "per".
func (c Code) IsTimeMult() bool {
	return c&TimeMultBit != 0
}

// WithoutTime returns the primary half of c with the time sub-field cleared.
func (c Code) WithoutTime() Code {
	return c.Primary() &^ TimeMask
}

// IsPureTime reports whether c consists of time bits only, such as Hour or
// Second|TimeMult.
func (c Code) IsPureTime() bool {
	p := c.Primary()
	return p&TimeMask != 0 && p&^TimeMask == 0
}

// IsAngle reports whether c is an angle code.
func (c Code) IsAngle() bool {
	return c.Primary()&^AngleMask == Angle
}

// IsCompass reports whether c is a compass bearing.
func (c Code) IsCompass() bool {
	return c.IsAngle() && c&AngleRotationMask == Compass
}

// AngleUnit returns Radian, Degree or Arcsecond for angle codes.
func (c Code) AngleUnit() Code {
	return c & AngleUnitMask
}

// Dimension returns the dimension of the primary half. Time sub-codes are
// ignored unless the code is a pure time code.
func (c Code) Dimension() Dimension {
	return DimensionOf(c)
}

// Ordinal returns the position of c within its dimension's range, and false
// when c does not belong to a ranged dimension.
func (c Code) Ordinal() (int, bool) {
	r, ok := rangeOf(c.WithoutTime())
	if !ok {
		return 0, false
	}

	return int(c.WithoutTime() - r.start), true
}

// Valid reports whether every half of c resolves to a known dimension.
func (c Code) Valid() bool {
	if c.Dimension() == DimUnknown {
		return false
	}
	if c.IsComposite() {
		return c.Secondary().Dimension() != DimUnknown
	}

	return true
}
