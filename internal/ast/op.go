package ast

// BinOp is a binary operator.
type BinOp uint8

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinShl
	BinShr
	BinUshr
	BinBitAnd
	BinBitOr
	BinBitXor
	BinLogAnd
	BinLogOr
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe

	binOpCount
)

var binOpNames = [binOpCount]string{
	BinAdd:    "+",
	BinSub:    "-",
	BinMul:    "*",
	BinDiv:    "/",
	BinMod:    "%",
	BinShl:    "<<",
	BinShr:    ">>",
	BinUshr:   ">>>",
	BinBitAnd: "&",
	BinBitOr:  "|",
	BinBitXor: "^",
	BinLogAnd: "&&",
	BinLogOr:  "||",
	BinEq:     "==",
	BinNe:     "!=",
	BinLt:     "<",
	BinLe:     "<=",
	BinGt:     ">",
	BinGe:     ">=",
}

func (op BinOp) String() string {
	if op < binOpCount {
		return binOpNames[op]
	}
	return "?"
}

// AssignOp is a compound assignment operator.
type AssignOp uint8

const (
	AssignBitAnd AssignOp = iota
	AssignBitOr
	AssignBitXor
	AssignShl
	AssignShr
	AssignUshr
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod

	assignOpCount
)

var assignOpNames = [assignOpCount]string{
	AssignBitAnd: "&=",
	AssignBitOr:  "|=",
	AssignBitXor: "^=",
	AssignShl:    "<<=",
	AssignShr:    ">>=",
	AssignUshr:   ">>>=",
	AssignAdd:    "+=",
	AssignSub:    "-=",
	AssignMul:    "*=",
	AssignDiv:    "/=",
	AssignMod:    "%=",
}

func (op AssignOp) String() string {
	if op < assignOpCount {
		return assignOpNames[op]
	}
	return "?"
}

// UnaryOp is a prefix operator.
type UnaryOp uint8

const (
	UnaryNeg UnaryOp = iota
	UnaryPlus
	UnaryNot
	UnaryBitNot

	unaryOpCount
)

var unaryOpNames = [unaryOpCount]string{
	UnaryNeg:    "-",
	UnaryPlus:   "+",
	UnaryNot:    "!",
	UnaryBitNot: "~",
}

func (op UnaryOp) String() string {
	if op < unaryOpCount {
		return unaryOpNames[op]
	}
	return "?"
}
