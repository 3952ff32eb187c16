package common_test

import (
	"github.com/cronosun/liquesco-go/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Identifier", func() {
	It("accepts a simple identifier", func() {
		id, err := common.NewIdentifier("my_type")
		Expect(err).To(BeNil())
		Expect(id.String()).To(Equal("my_type"))
	})
	It("rejects uppercase segments", func() {
		_, err := common.NewIdentifier("My_Type")
		Expect(err).ToNot(BeNil())
	})
	It("rejects more than 12 segments", func() {
		id := "a_a_a_a_a_a_a_a_a_a_a_a_a"
		_, err := common.NewIdentifier(id)
		Expect(err).ToNot(BeNil())
	})
	It("rejects a segment longer than 30 bytes", func() {
		_, err := common.NewIdentifier("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
		Expect(err).ToNot(BeNil())
	})
	It("considers two identical identifiers equal", func() {
		a, _ := common.NewIdentifier("foo_bar")
		b, _ := common.NewIdentifier("foo_bar")
		Expect(a.Equal(b)).To(BeTrue())
	})
})
