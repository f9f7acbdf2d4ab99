package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leengari/simple-rdbms/internal/domain/errors"
)

type TokenType int

const (
	// Special
	ILLEGAL TokenType = iota
	EOF

	// Literals
	IDENTIFIER // table_name, column_name, bare text
	STRING     // 'value' or "value"
	NUMBER     // 123, -4
	WORD       // any other bare token: 2000-01-01, a@b.io

	// Keywords
	CREATE
	TABLE
	INSERT
	INTO
	VALUES
	SELECT
	FROM
	WHERE
	AND
	UPDATE
	SET
	DELETE
	JOIN
	ON
	PRIMARY
	KEY
	UNIQUE

	// Operators & Punctuation
	ASTERISK    // *
	COMMA       // ,
	PAREN_OPEN  // (
	PAREN_CLOSE // )
	EQUALS      // =
	SEMICOLON   // ;
)

var keywords = map[string]TokenType{
	"CREATE":  CREATE,
	"TABLE":   TABLE,
	"INSERT":  INSERT,
	"INTO":    INTO,
	"VALUES":  VALUES,
	"SELECT":  SELECT,
	"FROM":    FROM,
	"WHERE":   WHERE,
	"AND":     AND,
	"UPDATE":  UPDATE,
	"SET":     SET,
	"DELETE":  DELETE,
	"JOIN":    JOIN,
	"ON":      ON,
	"PRIMARY": PRIMARY,
	"KEY":     KEY,
	"UNIQUE":  UNIQUE,
}

var tokenNames = map[TokenType]string{
	ILLEGAL:     "ILLEGAL",
	EOF:         "EOF",
	IDENTIFIER:  "IDENTIFIER",
	STRING:      "STRING",
	NUMBER:      "NUMBER",
	WORD:        "WORD",
	ASTERISK:    "*",
	COMMA:       ",",
	PAREN_OPEN:  "(",
	PAREN_CLOSE: ")",
	EQUALS:      "=",
	SEMICOLON:   ";",
}

func init() {
	for name, tt := range keywords {
		tokenNames[tt] = name
	}
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q)", t.Type, t.Literal)
}

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition += 1
	l.column++
}

func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	line, col := l.line, l.column

	switch l.ch {
	case '*':
		tok = newToken(ASTERISK, l.ch, line, col)
	case ',':
		tok = newToken(COMMA, l.ch, line, col)
	case '(':
		tok = newToken(PAREN_OPEN, l.ch, line, col)
	case ')':
		tok = newToken(PAREN_CLOSE, l.ch, line, col)
	case '=':
		tok = newToken(EQUALS, l.ch, line, col)
	case ';':
		tok = newToken(SEMICOLON, l.ch, line, col)
	case '\'', '"':
		lit, ok := l.readString(l.ch)
		if !ok {
			return Token{Type: ILLEGAL, Literal: "unterminated string", Line: line, Column: col}
		}
		return Token{Type: STRING, Literal: lit, Line: line, Column: col}
	case 0:
		return Token{Type: EOF, Literal: "", Line: line, Column: col}
	default:
		lit := l.readWord()
		return Token{Type: classify(lit), Literal: lit, Line: line, Column: col}
	}

	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
}

// readWord consumes a run of characters up to the next delimiter
func (l *Lexer) readWord() string {
	position := l.position
	for l.ch != 0 && !isDelimiter(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readString consumes a quoted literal. Quotes are stripped and no escapes are processed.
func (l *Lexer) readString(quote byte) (string, bool) {
	position := l.position + 1
	for {
		l.readChar()
		if l.ch == quote || l.ch == 0 {
			break
		}
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
	}
	if l.ch == 0 {
		return "", false
	}
	lit := l.input[position:l.position]

	// Consume the closing quote
	l.readChar()

	return lit, true
}

func newToken(tokenType TokenType, ch byte, line, col int) Token {
	return Token{Type: tokenType, Literal: string(ch), Line: line, Column: col}
}

// IsKeyword reports whether t is a reserved word token
func (t TokenType) IsKeyword() bool {
	return t >= CREATE && t <= UNIQUE
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToUpper(ident)]; ok {
		return tok
	}
	return IDENTIFIER
}

func classify(word string) TokenType {
	if isIdentifier(word) {
		return LookupIdent(word)
	}
	if _, err := strconv.ParseInt(word, 10, 64); err == nil {
		return NUMBER
	}
	return WORD
}

func isIdentifier(word string) bool {
	if word == "" || isDigit(word[0]) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !isLetter(word[i]) && !isDigit(word[i]) {
			return false
		}
	}
	return true
}

func isDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '*', ',', '(', ')', '=', ';', '\'', '"':
		return true
	}
	return false
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize lexes the whole input. The trailing EOF token is not included.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		if tok.Type == ILLEGAL {
			return nil, &errors.ParseError{
				Reason: fmt.Sprintf("illegal token: %s", tok.Literal),
				Line:   tok.Line,
				Column: tok.Column,
			}
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
