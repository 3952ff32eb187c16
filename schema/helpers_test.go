package schema_test

import (
	"math/big"

	"github.com/cronosun/liquesco-go/common"
	"github.com/cronosun/liquesco-go/schema"
)

func mustIdent(s string) common.Identifier {
	id, err := common.NewIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

func u64Range(start, end uint64) common.Range[uint64] {
	r, err := common.NewRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

func bigRange(start, end int64) schema.BigIntRange {
	r, err := schema.NewBigIntRange(big.NewInt(start), big.NewInt(end))
	if err != nil {
		panic(err)
	}
	return r
}

func u8Type() *schema.TUInt {
	return schema.NewUInt(bigRange(0, 255), schema.EmptyMeta())
}

func bigIntLit(v int64) *big.Int {
	return big.NewInt(v)
}

func twoAsciiCodes() schema.CodeRange {
	cr, err := schema.NewCodeRange([]schema.CodePair{{Min: 0, MaxExclusive: 64}, {Min: 64, MaxExclusive: 128}})
	if err != nil {
		panic(err)
	}
	return cr
}
