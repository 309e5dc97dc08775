package syntax

// SyntaxConfig specifies which language features are disallowed. The zero
// value allows everything.
type SyntaxConfig struct {
	// Statements
	DisallowAssignment bool // x = value
	DisallowPrint      bool // লেখ
	DisallowVowelCheck bool // স্বরবর্ণচেক

	// Control flow
	DisallowIf    bool // যদি / নাহলে
	DisallowLoops bool // যতক্ষণ, প্রতিবার
}

// Presets for common use cases.
var (
	// Calculator allows only expression and print statements. Programs
	// cannot bind variables, branch or loop, so the input variables are
	// left untouched and every program terminates.
	Calculator = SyntaxConfig{
		DisallowAssignment: true,
		DisallowVowelCheck: true,
		DisallowIf:         true,
		DisallowLoops:      true,
	}

	// NoLoops allows everything except loops. Every program terminates
	// after running each statement at most once.
	NoLoops = SyntaxConfig{
		DisallowLoops: true,
	}

	// FullLanguage allows all features (zero value, default behavior).
	FullLanguage = SyntaxConfig{}
)
