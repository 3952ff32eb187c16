package codec

// SkipValue reads a header and content description and discards the
// value's self-length bytes plus every embedded value recursively.
// Used by the validator to tolerate trailing extension fields that
// aren't declared in the schema (spec §4.1, §4.2 Struct/Enum).
func SkipValue(r *Reader) error {
	h, err := ReadHeader(r)
	if err != nil {
		return err
	}
	desc, err := ReadContentDescription(r, h)
	if err != nil {
		return err
	}
	if desc.SelfLength > 0 {
		if _, err := r.ReadLengthSlice(desc.SelfLength); err != nil {
			return err
		}
	}
	for i := uint32(0); i < desc.Embedded; i++ {
		if err := SkipValue(r); err != nil {
			return err
		}
	}
	return nil
}
