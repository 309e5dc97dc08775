package bornomala

import (
	"encoding/json"
	"sort"

	"github.com/bornomala-lang/bornomala/errors"
	"github.com/bornomala-lang/bornomala/evaluator"
	"github.com/bornomala-lang/bornomala/token"
)

// DocsOption configures documentation retrieval.
type DocsOption func(*docsOptions)

type docsOptions struct {
	category string
	topic    string
	all      bool
}

// DocsCategory filters documentation to a specific category.
// Valid categories: "keywords", "numerals", "syntax", "errors"
func DocsCategory(cat string) DocsOption {
	return func(o *docsOptions) {
		o.category = cat
	}
}

// DocsTopic retrieves documentation for a specific keyword, numeral or
// error code.
// Examples: "যদি", "তিন", "E3002"
func DocsTopic(topic string) DocsOption {
	return func(o *docsOptions) {
		o.topic = topic
	}
}

// DocsAll returns complete documentation.
func DocsAll() DocsOption {
	return func(o *docsOptions) {
		o.all = true
	}
}

// Documentation provides structured access to the language reference.
type Documentation struct {
	data any
}

// JSON returns the documentation as a JSON string.
func (d *Documentation) JSON() string {
	b, _ := json.MarshalIndent(d.data, "", "  ")
	return string(b)
}

// Data returns the raw documentation data.
func (d *Documentation) Data() any {
	return d.data
}

// Version is the current language version.
const Version = "0.1.0"

type docsInfo struct {
	Version        string `json:"version"`
	Description    string `json:"description"`
	ExecutionModel string `json:"execution_model"`
}

type docsSyntaxPattern struct {
	Pattern     string `json:"pattern"`
	Description string `json:"description"`
}

type docsQuickReference struct {
	Language       docsInfo            `json:"language"`
	SyntaxQuickRef []docsSyntaxPattern `json:"syntax_quick_ref"`
	Topics         map[string]string   `json:"topics"`
}

// docsKeyword describes a reserved word.
type docsKeyword struct {
	Word    string `json:"word"`
	Kind    string `json:"kind"`
	Meaning string `json:"meaning"`
}

// docsNumeral describes a word or glyph that stands for a number.
type docsNumeral struct {
	Text  string `json:"text"`
	Kind  string `json:"kind"`
	Value int64  `json:"value"`
}

type docsSyntaxSection struct {
	Name  string           `json:"name"`
	Items []docsSyntaxItem `json:"items"`
}

type docsSyntaxItem struct {
	Syntax string `json:"syntax"`
	Notes  string `json:"notes"`
}

// docsErrorCode describes an error code.
type docsErrorCode struct {
	Code        string `json:"code"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type docsFullDocumentation struct {
	Language docsInfo            `json:"language"`
	Keywords []docsKeyword       `json:"keywords"`
	Numerals []docsNumeral       `json:"numerals"`
	Syntax   []docsSyntaxSection `json:"syntax"`
	Errors   []docsErrorCode     `json:"errors"`
}

// Docs returns structured documentation about the language, for tooling
// and editor integrations.
//
// Example:
//
//	// Quick reference
//	docs := bornomala.Docs()
//	fmt.Println(docs.JSON())
//
//	// One keyword
//	docs := bornomala.Docs(bornomala.DocsTopic("যতক্ষণ"))
func Docs(opts ...DocsOption) *Documentation {
	o := &docsOptions{}
	for _, opt := range opts {
		opt(o)
	}
	switch {
	case o.all:
		return &Documentation{data: buildFullDocumentation()}
	case o.category != "":
		return &Documentation{data: buildCategoryDocs(o.category)}
	case o.topic != "":
		return &Documentation{data: buildTopicDocs(o.topic)}
	}
	return &Documentation{data: buildQuickReference()}
}

var docsLanguage = docsInfo{
	Version:        Version,
	Description:    "Small imperative language with Bengali keywords and numerals",
	ExecutionModel: "source → lexer → parser → tree-walking evaluator",
}

func buildQuickReference() docsQuickReference {
	return docsQuickReference{
		Language:       docsLanguage,
		SyntaxQuickRef: docsSyntaxQuickRef,
		Topics: map[string]string{
			"keywords": "Reserved words for statements and arithmetic",
			"numerals": "Number words and Bengali digit glyphs",
			"syntax":   "Complete syntax reference",
			"errors":   "Error codes",
		},
	}
}

func buildFullDocumentation() docsFullDocumentation {
	return docsFullDocumentation{
		Language: docsLanguage,
		Keywords: docsKeywords(),
		Numerals: docsNumerals(),
		Syntax:   docsSyntaxSections,
		Errors:   docsErrorCodes(),
	}
}

func buildCategoryDocs(category string) any {
	switch category {
	case "keywords":
		kw := docsKeywords()
		return map[string]any{
			"category":    "keywords",
			"description": "Reserved words; they cannot be used as variable names",
			"count":       len(kw),
			"keywords":    kw,
		}
	case "numerals":
		nums := docsNumerals()
		return map[string]any{
			"category":    "numerals",
			"description": "Number words and single Bengali digits; longer numbers use ASCII digits",
			"count":       len(nums),
			"numerals":    nums,
		}
	case "syntax":
		return map[string]any{
			"category":    "syntax",
			"description": "Complete syntax reference",
			"sections":    docsSyntaxSections,
		}
	case "errors":
		codes := docsErrorCodes()
		return map[string]any{
			"category":    "errors",
			"description": "Error codes reported by the parser and evaluator",
			"count":       len(codes),
			"codes":       codes,
		}
	default:
		return map[string]any{
			"error": "unknown category: " + category,
		}
	}
}

func buildTopicDocs(topic string) any {
	for _, kw := range docsKeywords() {
		if kw.Word == topic {
			return map[string]any{"type": "keyword", "keyword": kw}
		}
	}
	for _, n := range docsNumerals() {
		if n.Text == topic {
			return map[string]any{"type": "numeral", "numeral": n}
		}
	}
	for _, c := range docsErrorCodes() {
		if c.Code == topic {
			return map[string]any{"type": "error", "error": c}
		}
	}
	return map[string]any{
		"error": "unknown topic: " + topic,
	}
}

var keywordMeanings = map[token.Type]docsKeyword{
	token.JOG:         {Kind: "operator", Meaning: "addition, same as +"},
	token.BIYOG:       {Kind: "operator", Meaning: "subtraction, same as -"},
	token.GUN:         {Kind: "operator", Meaning: "multiplication, same as *"},
	token.BHAG:        {Kind: "operator", Meaning: "integer division, same as /"},
	token.IF:          {Kind: "statement", Meaning: "if"},
	token.ELSE:        {Kind: "statement", Meaning: "else"},
	token.WHILE:       {Kind: "statement", Meaning: "while loop"},
	token.FOR:         {Kind: "statement", Meaning: "for loop with init, condition and step"},
	token.PRINT:       {Kind: "statement", Meaning: "print a value"},
	token.VOWEL_CHECK: {Kind: "statement", Meaning: "report whether a string contains a Bengali vowel"},
}

func docsKeywords() []docsKeyword {
	var out []docsKeyword
	for word, t := range token.Keywords() {
		kw := keywordMeanings[t]
		kw.Word = word
		out = append(out, kw)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Word < out[j].Word
	})
	return out
}

func docsNumerals() []docsNumeral {
	var out []docsNumeral
	for word, v := range token.NumberWords() {
		out = append(out, docsNumeral{Text: word, Kind: "word", Value: v})
	}
	for glyph, v := range token.Digits() {
		out = append(out, docsNumeral{Text: glyph, Kind: "digit", Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Value < out[j].Value
	})
	return out
}

func docsErrorCodes() []docsErrorCode {
	var out []docsErrorCode
	for _, c := range errors.Codes() {
		out = append(out, docsErrorCode{
			Code:        c.String(),
			Category:    c.Category(),
			Description: c.Description(),
		})
	}
	return out
}

var docsSyntaxQuickRef = []docsSyntaxPattern{
	{"লেখ দুই যোগ তিন;", "print 5"},
	{"x = ৫;", "assign a variable"},
	{"যদি (x > 3) লেখ x; নাহলে লেখ 0;", "if / else"},
	{"যতক্ষণ (x > 0) { x = x - 1; }", "while loop"},
	{"প্রতিবার (i = 0; i < 3; i = i + 1) লেখ i;", "for loop"},
	{`স্বরবর্ণচেক("আমি");`, "vowel check"},
}

var docsSyntaxSections = []docsSyntaxSection{
	{
		Name: "values",
		Items: []docsSyntaxItem{
			{"42", "ASCII digits, a signed 64-bit integer"},
			{"৩", "a single Bengali digit"},
			{"তিন", "a number word from এক to পাঁচ"},
			{`"text"`, "a string; as a value it is its length in bytes"},
			{"x", "a variable; unset variables read as 0"},
		},
	},
	{
		Name: "expressions",
		Items: []docsSyntaxItem{
			{"a + b, a যোগ b", "addition"},
			{"a - b, a " + string(token.BIYOG) + " b", "subtraction"},
			{"a * b, a গুণ b", "multiplication"},
			{"a / b, a ভাগ b", "integer division; dividing by zero is an error"},
			{"x = expr", "assignment; yields the assigned value and groups to the right"},
			{"a < b, a > b, a == b, a != b", "comparison; only valid as a condition"},
		},
	},
	{
		Name: "statements",
		Items: []docsSyntaxItem{
			{"expr;", "evaluate an expression"},
			{"লেখ expr;", "print; strings are printed as written, other values as numbers"},
			{`স্বরবর্ণচেক("...");`, "print whether the string contains a Bengali vowel"},
			{"যদি (cond) stmt নাহলে stmt", "if with optional else; else binds to the nearest if"},
			{"যতক্ষণ (cond) stmt", "while loop"},
			{"প্রতিবার (init; cond; step) stmt", "for loop"},
			{"{ stmt ... }", "block"},
		},
	},
	{
		Name: "output",
		Items: []docsSyntaxItem{
			{evaluator.PrintLabel + "5", "line written by a print statement"},
			{evaluator.VowelLabel + evaluator.Yes, "line written by a vowel check"},
		},
	},
}
