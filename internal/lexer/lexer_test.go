package lexer

import "testing"

func collectTokens(t *testing.T, input string) []Token {
	t.Helper()
	l := New(input)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}
	return tokens
}

func TestNextToken_Punctuation(t *testing.T) {
	input := `( ) { } [ ] ; , : . -> <- = == != < <= > >= + - * / mod && || ! .( .)`
	want := []TokenType{
		LPAREN, RPAREN, LBRACE, RBRACE, LBRACK, RBRACK, SEMICOLON, COMMA,
		COLON, DOT, ARROW, LARROW, ASSIGN, EQ, NEQ, LT, LE, GT, GE,
		PLUS, MINUS, STAR, SLASH, MOD, AND, OR, NOT, DOTLPAREN, DOTRPAREN, EOF,
	}
	tokens := collectTokens(t, input)
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, tt)
		}
	}
}

func TestNextToken_Keywords(t *testing.T) {
	input := "let rec in if then else while do done true false type mutable fun int bool unit string array"
	want := []TokenType{
		LET, REC, IN, IF, THEN, ELSE, WHILE, DO, DONE, TRUE, FALSE,
		TYPE, MUTABLE, FUN, INT_TYPE, BOOL_TYPE, UNIT_TYPE, STRING_TYPE, ARRAY_TYPE, EOF,
	}
	tokens := collectTokens(t, input)
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d (%q): got %s, want %s", i, tokens[i].Literal, tokens[i].Type, tt)
		}
	}
}

func TestNextToken_IdentifiersAndIntegers(t *testing.T) {
	tokens := collectTokens(t, "x foo_bar2 42 0")
	want := []struct {
		typ TokenType
		lit string
	}{
		{IDENT, "x"},
		{IDENT, "foo_bar2"},
		{INT, "42"},
		{INT, "0"},
		{EOF, ""},
	}
	for i, w := range want {
		if tokens[i].Type != w.typ || tokens[i].Literal != w.lit {
			t.Errorf("token %d: got (%s,%q), want (%s,%q)", i, tokens[i].Type, tokens[i].Literal, w.typ, w.lit)
		}
	}
}

func TestNextToken_UnderscoreContinuesButDoesNotStartIdentifier(t *testing.T) {
	tokens := collectTokens(t, "foo_bar")
	if tokens[0].Type != IDENT || tokens[0].Literal != "foo_bar" {
		t.Fatalf("got (%s,%q), want (IDENT,\"foo_bar\")", tokens[0].Type, tokens[0].Literal)
	}

	l := New("_x")
	if _, err := l.NextToken(); err == nil {
		t.Fatal("expected a lex error for an identifier starting with '_'")
	} else if le, ok := err.(*LexError); !ok || le.Kind != "bad_char" {
		t.Fatalf("got %v, want *LexError{Kind:\"bad_char\"}", err)
	}
}

func TestNextToken_String(t *testing.T) {
	tokens := collectTokens(t, `"hello\nworld\t\"quoted\""`)
	if tokens[0].Type != STRING {
		t.Fatalf("got %s, want STRING", tokens[0].Type)
	}
	want := "hello\nworld\t\"quoted\""
	if tokens[0].Literal != want {
		t.Errorf("got %q, want %q", tokens[0].Literal, want)
	}
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	_, err := l.NextToken()
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("got %T, want *LexError", err)
	}
	if lexErr.Kind != "unterminated_string" {
		t.Errorf("got kind %q, want unterminated_string", lexErr.Kind)
	}
}

func TestNextToken_BlockComments(t *testing.T) {
	tokens := collectTokens(t, "1 (* a comment (* nested *) still going *) 2")
	want := []TokenType{INT, INT, EOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, tt)
		}
	}
}

func TestNextToken_UnterminatedComment(t *testing.T) {
	l := New("(* never closes")
	_, err := l.NextToken()
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("got %T, want *LexError", err)
	}
	if lexErr.Kind != "unterminated_comment" {
		t.Errorf("got kind %q, want unterminated_comment", lexErr.Kind)
	}
}

func TestNextToken_IllegalCharacter(t *testing.T) {
	l := New("@")
	_, err := l.NextToken()
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("got %T, want *LexError", err)
	}
	if lexErr.Kind != "bad_char" {
		t.Errorf("got kind %q, want bad_char", lexErr.Kind)
	}
}

func TestNextToken_IntegerOverflow(t *testing.T) {
	l := New("99999999999999999999")
	_, err := l.NextToken()
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("got %T, want *LexError", err)
	}
	if lexErr.Kind != "int_overflow" {
		t.Errorf("got kind %q, want int_overflow", lexErr.Kind)
	}
}

func TestNextToken_LineColumnTracking(t *testing.T) {
	tokens := collectTokens(t, "let x =\n  1 in x")
	// "in" is on line 2.
	var inTok Token
	for _, tok := range tokens {
		if tok.Type == IN {
			inTok = tok
		}
	}
	if inTok.Pos.Line != 2 {
		t.Errorf("got line %d, want 2", inTok.Pos.Line)
	}
}

func TestSaveRestoreState(t *testing.T) {
	l := New(".(")
	saved := l.SaveState()
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != DOTLPAREN {
		t.Fatalf("got %s, want DOTLPAREN", tok.Type)
	}
	l.RestoreState(saved)
	tok2, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok2.Type != DOTLPAREN {
		t.Fatalf("after restore: got %s, want DOTLPAREN", tok2.Type)
	}
}
