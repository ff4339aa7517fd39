package sanitize

import "testing"

func TestSanitize_LiteralNewlines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "three or more converted",
			input: `line one\nline two\nline three\nline four`,
			want:  "line one\nline two\nline three\nline four",
		},
		{
			name:  "below threshold untouched",
			input: `use \n to print a newline, as in "a\nb"`,
			want:  `use \n to print a newline, as in "a\nb"`,
		},
		{
			name:  "exactly three converted",
			input: `a\nb\nc\nd`,
			want:  "a\nb\nc\nd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitize_Escapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"percent", `growth of 12\%`, `growth of 12%`},
		{"underscore", `file\_name`, `file_name`},
		{"hash", `\# not a heading`, `# not a heading`},
		{"ampersand", `Smith \& Sons`, `Smith & Sons`},
		{"dollar", `costs \$5`, `costs $5`},
		{"escaped quote", `said \"hello\"`, `said "hello"`},
		{"escaped dash", `a\-b`, `a-b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitize_MathWrappers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"inline dollars", `the value $ x + y $ is small`, `the value x + y is small`},
		{"paren delimiters", `we get \( a = b \) here`, `we get a = b here`},
		{"bracket delimiters", `display \[ E = mc^2 \] follows`, `display E = mc^2 follows`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitize_PercentAndPunctuationSpacing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"digit space percent", "7 %", "7%"},
		{"digit newline percent", "20\n\n%", "20%"},
		{"space before comma", "one , two", "one, two"},
		{"space before close paren", "(value )", "(value)"},
		{"space after open paren", "( value)", "(value)"},
		{"space after open bracket", "[ item]", "[item]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitize_Empty(t *testing.T) {
	if got := Sanitize(""); got != "" {
		t.Errorf("Sanitize(\"\") = %q, want \"\"", got)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		`growth of 12\% in Q3 , with \( a = b \) and $ x $`,
		"a\\nb\\nc\\nd with 7 % and ( spaced )",
		"| a | b |\n|---|---|\n| 1 | 2 |",
		"plain prose with no escapes at all.",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q:\nonce:  %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestSanitize_PreservesPipeTables(t *testing.T) {
	table := "| Name | Value |\n|------|-------|\n| a | 1 |"
	if got := Sanitize(table); got != table {
		t.Errorf("Sanitize altered a pipe table:\ngot:  %q\nwant: %q", got, table)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"space runs", "a    b\t\tc", "a b c"},
		{"blank line cap", "a\n\n\n\nb", "a\n\nb"},
		{"trim", "  text  ", "text"},
		{"two newlines kept", "a\n\nb", "a\n\nb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	input := "  a   b\n\n\n\nc  "
	once := Clean(input)
	if twice := Clean(once); twice != once {
		t.Errorf("Clean not idempotent: once %q, twice %q", once, twice)
	}
}

func TestNormalize(t *testing.T) {
	input := "  The result was 12\\%   over target.\n\n\n\nNext   section.  "
	want := "The result was 12% over target.\n\nNext section."
	if got := Normalize(input); got != want {
		t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
	}
}
