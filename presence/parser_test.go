package presence

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Node
	}{
		{
			name:  "bare name",
			input: "A",
			want:  NewLeaf("A"),
		},
		{
			name:  "name beginning with a digit",
			input: "64BIT",
			want:  NewLeaf("64BIT"),
		},
		{
			name:  "bare integer",
			input: "123",
			want:  NewLeaf("123"),
		},
		{
			name:  "unary not",
			input: "!A",
			want:  NewNot(NewLeaf("A")),
		},
		{
			name:  "word synonym for not",
			input: "not A",
			want:  NewNot(NewLeaf("A")),
		},
		{
			name:  "double negation is preserved by the parser",
			input: "!!A",
			want:  NewNot(NewNot(NewLeaf("A"))),
		},
		{
			name:  "conjunction",
			input: "A && B",
			want:  NewAnd(NewLeaf("A"), NewLeaf("B")),
		},
		{
			name:  "word synonym for and",
			input: "A and B",
			want:  NewAnd(NewLeaf("A"), NewLeaf("B")),
		},
		{
			name:  "n-ary conjunction stays flat",
			input: "A && B && C",
			want:  NewAnd(NewLeaf("A"), NewLeaf("B"), NewLeaf("C")),
		},
		{
			name:  "disjunction",
			input: "A || B",
			want:  NewOr(NewLeaf("A"), NewLeaf("B")),
		},
		{
			name:  "word synonym for or",
			input: "A or B",
			want:  NewOr(NewLeaf("A"), NewLeaf("B")),
		},
		{
			name:  "and binds tighter than or",
			input: "A && B || C",
			want:  NewOr(NewAnd(NewLeaf("A"), NewLeaf("B")), NewLeaf("C")),
		},
		{
			name:  "parens override precedence",
			input: "A && (B || C)",
			want:  NewAnd(NewLeaf("A"), NewOr(NewLeaf("B"), NewLeaf("C"))),
		},
		{
			name:  "equality with a single equals sign",
			input: "A = y",
			want:  NewEq(NewLeaf("A"), NewLeaf("y")),
		},
		{
			name:  "equality with a double equals sign",
			input: "A == y",
			want:  NewEq(NewLeaf("A"), NewLeaf("y")),
		},
		{
			name:  "inequality is not split into not followed by equals",
			input: "A != y",
			want:  NewNeq(NewLeaf("A"), NewLeaf("y")),
		},
		{
			name:  "whitespace is insignificant",
			input: "  A&&B  ",
			want:  NewAnd(NewLeaf("A"), NewLeaf("B")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "trailing tokens", input: "A B"},
		{name: "dangling operator", input: "A &&"},
		{name: "unmatched open paren", input: "(A"},
		{name: "unmatched close paren", input: "A)"},
		{name: "comparison operand is not a simple name", input: "A = (B)"},
		{name: "bare operator with no operand", input: "&&"},
		{name: "unrecognized character", input: "A @ B"},
		{name: "lone ampersand is not an operator", input: "A & B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want ParseError", tt.input)
			}
			if _, ok := err.(*ParseError); !ok {
				t.Fatalf("Parse(%q) error = %v (%T), want *ParseError", tt.input, err, err)
			}
		})
	}
}
