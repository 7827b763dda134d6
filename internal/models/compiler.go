package models

import "fmt"

// Compiler identifies one of the supported cross compilers.
type Compiler string

const (
	// CompilerArmCC is Arm Compiler 5 (armcc/armasm/armlink).
	CompilerArmCC Compiler = "armcc"

	// CompilerArmClang is Arm Compiler 6 (armclang/armlink).
	CompilerArmClang Compiler = "armclang"

	// CompilerArmGCC is the GNU Arm Embedded toolchain (arm-none-eabi-gcc).
	CompilerArmGCC Compiler = "armgcc"
)

// AllCompilers lists the supported compilers in preset order.
var AllCompilers = []Compiler{CompilerArmCC, CompilerArmClang, CompilerArmGCC}

// IsValid checks if the compiler is one of the supported compilers
func (c Compiler) IsValid() bool {
	switch c {
	case CompilerArmCC, CompilerArmClang, CompilerArmGCC:
		return true
	default:
		return false
	}
}

// String returns the string representation of Compiler
func (c Compiler) String() string {
	return string(c)
}

// IsKeil reports whether the compiler ships with Keil MDK and links with armlink.
func (c Compiler) IsKeil() bool {
	return c == CompilerArmCC || c == CompilerArmClang
}

// ParseCompiler parses a string into a Compiler
func ParseCompiler(s string) (Compiler, error) {
	c := Compiler(s)
	if !c.IsValid() {
		return "", &UnknownCompilerError{Name: s}
	}
	return c, nil
}

// UnknownCompilerError reports a compiler identifier outside the supported set.
type UnknownCompilerError struct {
	Name string
}

func (e *UnknownCompilerError) Error() string {
	return fmt.Sprintf("unknown compiler: %q (must be armcc, armclang, or armgcc)", e.Name)
}
