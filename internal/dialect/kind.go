package dialect

import "fmt"

// Kind identifies the syntax a file appears to be written in. Primary is
// the dialect this toolchain parses; everything else is foreign.
type Kind uint8

const (
	Primary Kind = iota
	Python
	JavaScript
	Rust
	Go

	kindCount
)

func (k Kind) String() string {
	switch k {
	case Primary:
		return "primary"
	case Python:
		return "python"
	case JavaScript:
		return "javascript"
	case Rust:
		return "rust"
	case Go:
		return "go"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("Kind(%s)", k.String())
}

// Foreign reports whether the kind is not the primary dialect.
func (k Kind) Foreign() bool {
	return k != Primary
}
