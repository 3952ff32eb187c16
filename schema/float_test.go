package schema_test

import (
	"math"

	"github.com/cronosun/liquesco-go/codec"
	"github.com/cronosun/liquesco-go/common"
	"github.com/cronosun/liquesco-go/schema"
	"github.com/cronosun/liquesco-go/validate"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func buildFloat64(flags schema.FloatFlags) (*schema.TypeContainer, schema.TypeRef) {
	rng, err := common.NewRange(-1000.0, 1000.0)
	Expect(err).To(BeNil())
	t, err := schema.NewFloat64(rng, flags, schema.EmptyMeta())
	Expect(err).To(BeNil())
	b := schema.NewSchemaBuilder()
	ref, err := b.Add("ratio", t)
	Expect(err).To(BeNil())
	container, err := b.Finish(ref)
	Expect(err).To(BeNil())
	return container, ref
}

func f64Bytes(v float64) []byte {
	w := codec.NewWriter()
	w.WriteFloat64(v)
	return w.Bytes()
}

var _ = Describe("Float64", func() {
	allowAll := schema.FloatFlags{
		PositiveZero: true, NegativeZero: true, NaN: true,
		PositiveInfinity: true, NegativeInfinity: true, Subnormal: true,
	}

	It("imposes the total order NaN < -Inf < negatives < -0 < +0 < positives < +Inf", func() {
		container, ref := buildFloat64(allowAll)
		ladder := []float64{
			math.NaN(),
			math.Inf(-1),
			-1.5,
			math.Copysign(0, -1),
			0,
			1.5,
			math.Inf(1),
		}
		for i := 0; i+1 < len(ladder); i++ {
			cmp, err := validate.Compare(container, ref, f64Bytes(ladder[i]), f64Bytes(ladder[i+1]))
			Expect(err).To(BeNil())
			Expect(cmp).To(Equal(schema.Less))
		}
	})

	It("treats all NaNs as equal", func() {
		container, ref := buildFloat64(allowAll)
		otherNaN := math.Float64frombits(math.Float64bits(math.NaN()) | 1)
		cmp, err := validate.Compare(container, ref, f64Bytes(math.NaN()), f64Bytes(otherNaN))
		Expect(err).To(BeNil())
		Expect(cmp).To(Equal(schema.Equal))
	})

	It("rejects special values unless their flag allows them", func() {
		container, ref := buildFloat64(schema.FloatFlags{})
		Expect(validate.Validate(container, ref, schema.Config{}, f64Bytes(math.NaN()))).ToNot(BeNil())
		Expect(validate.Validate(container, ref, schema.Config{}, f64Bytes(math.Inf(1)))).ToNot(BeNil())
		Expect(validate.Validate(container, ref, schema.Config{}, f64Bytes(0))).ToNot(BeNil())

		permissive, permissiveRef := buildFloat64(allowAll)
		Expect(validate.Validate(permissive, permissiveRef, schema.Config{}, f64Bytes(math.NaN()))).To(BeNil())
	})

	It("range-checks only finite non-zero normal values", func() {
		container, ref := buildFloat64(allowAll)
		Expect(validate.Validate(container, ref, schema.Config{}, f64Bytes(999.0))).To(BeNil())
		Expect(validate.Validate(container, ref, schema.Config{}, f64Bytes(1001.0))).ToNot(BeNil())
		// infinity is outside the range but passes via its flag
		Expect(validate.Validate(container, ref, schema.Config{}, f64Bytes(math.Inf(1)))).To(BeNil())
	})
})
