package samples

// builtinCases are the demonstration programs shipped with the interpreter.
var builtinCases = []Case{
	{
		Name:        "arithmetic",
		Description: `গাণিতিক (যোগ)`,
		Source:      `লেখ দুই যোগ তিন;`,
		Expected:    "লেখ: 5\n",
		HasExpected: true,
	},
	{
		Name:        "if_else",
		Description: `যদি-নাহলে`,
		Source:      `যদি (এক < দুই) { লেখ "ছোট"; } নাহলে { লেখ "বড়"; }`,
		Expected:    "লেখ: ছোট\n",
		HasExpected: true,
	},
	{
		Name:        "while_loop",
		Description: `যতক্ষণ লুপ`,
		Source:      `x = 0; যতক্ষণ (x < ৩) { লেখ x; x = x + ১; }`,
		Expected:    "লেখ: 0\nলেখ: 1\nলেখ: 2\n",
		HasExpected: true,
	},
	{
		Name:        "for_loop",
		Description: `প্রতিবার লুপ`,
		Source:      `প্রতিবার (i = ০; i < ৩; i = i + ১) { লেখ i; }`,
		Expected:    "লেখ: 0\nলেখ: 1\nলেখ: 2\n",
		HasExpected: true,
	},
	{
		Name:        "vowel_check",
		Description: `স্বরবর্ণচেক`,
		Source:      `স্বরবর্ণচেক("আমি");`,
		Expected:    "স্বরবর্ণ আছে: হ্যাঁ\n",
		HasExpected: true,
	},
}

// Banner is printed before the built-in samples.
const Banner = `======================================
       বাংলা প্রোগ্রামিং কম্পাইলার
======================================

সমর্থিত বৈশিষ্ট্য:
1. গাণিতিক: যোগ, বিয়োগ, গুণ, ভাগ
2. যদি-নাহলে: যদি (শর্ত) { ... } নাহলে { ... }
3. লুপ: যতক্ষণ (শর্ত) { ... }
4. লুপ: প্রতিবার (শুরু; শর্ত; পরিবর্তন) { ... }
5. স্বরবর্ণচেক: স্বরবর্ণচেক("পাঠ্য")
6. লেখ: লেখ প্রকাশ্য;

`
