package parser

import (
	"fmt"
	"strconv"

	"github.com/leengari/simple-rdbms/internal/domain/errors"
	"github.com/leengari/simple-rdbms/internal/parser/ast"
	"github.com/leengari/simple-rdbms/internal/parser/lexer"
)

type Parser struct {
	tokens  []lexer.Token
	curPos  int
	curTok  lexer.Token
	peekTok lexer.Token
}

// statementParsers is the dispatch table keyed on the leading keyword
var statementParsers = map[lexer.TokenType]func(*Parser) (ast.Statement, error){
	lexer.CREATE: (*Parser).parseCreateTable,
	lexer.INSERT: (*Parser).parseInsert,
	lexer.SELECT: (*Parser).parseSelect,
	lexer.UPDATE: (*Parser).parseUpdate,
	lexer.DELETE: (*Parser).parseDelete,
	lexer.JOIN:   (*Parser).parseJoin,
}

func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens, curPos: 0}
	// Read two tokens to set curTok and peekTok
	p.nextToken()
	p.nextToken()
	return p
}

// Parse tokenizes and parses a single statement
func Parse(input string) (ast.Statement, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.curPos < len(p.tokens) {
		p.peekTok = p.tokens[p.curPos]
		p.curPos++
	} else {
		p.peekTok = lexer.Token{Type: lexer.EOF}
	}
}

// Parse returns the statement held by the tokens. A trailing semicolon is
// optional; anything after it is an error.
func (p *Parser) Parse() (ast.Statement, error) {
	if p.curTok.Type == lexer.EOF {
		return nil, errors.NewParseError("empty statement")
	}

	parse, ok := statementParsers[p.curTok.Type]
	if !ok {
		return nil, p.errorf("unknown command %q", p.curTok.Literal)
	}

	stmt, err := parse(p)
	if err != nil {
		return nil, err
	}

	// Semicolon (Optional)
	if p.curTok.Type == lexer.SEMICOLON {
		p.nextToken()
	}
	if p.curTok.Type != lexer.EOF {
		return nil, p.errorf("unexpected %q after end of statement", p.curTok.Literal)
	}

	return stmt, nil
}

func (p *Parser) parseCreateTable() (ast.Statement, error) {
	stmt := &ast.CreateTableStatement{}

	// CREATE
	p.nextToken()
	if err := p.expect(lexer.TABLE); err != nil {
		return nil, err
	}

	name, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	if err := p.expect(lexer.PAREN_OPEN); err != nil {
		return nil, err
	}

	for {
		col, err := p.parseColumnDefinition()
		if err != nil {
			return nil, err
		}
		stmt.Columns = append(stmt.Columns, col)

		if p.curTok.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}

	if err := p.expect(lexer.PAREN_CLOSE); err != nil {
		return nil, err
	}

	primaryKeys := 0
	for _, c := range stmt.Columns {
		if c.PrimaryKey {
			primaryKeys++
		}
	}
	if primaryKeys != 1 {
		return nil, errors.NewParseError("table %s must declare exactly one PRIMARY KEY, found %d", stmt.TableName.Value, primaryKeys)
	}

	return stmt, nil
}

func (p *Parser) parseColumnDefinition() (*ast.ColumnDefinition, error) {
	name, err := p.parseIdentifier("column name")
	if err != nil {
		return nil, err
	}
	col := &ast.ColumnDefinition{Name: name}

	// Type names are validated by the schema layer, not here
	if p.curTok.Type != lexer.IDENTIFIER {
		return nil, p.errorf("expected type for column %s, got %q", name.Value, p.curTok.Literal)
	}
	col.Type = p.curTok.Literal
	p.nextToken()

	for {
		switch p.curTok.Type {
		case lexer.PRIMARY:
			p.nextToken()
			if err := p.expect(lexer.KEY); err != nil {
				return nil, err
			}
			col.PrimaryKey = true
		case lexer.UNIQUE:
			p.nextToken()
			col.Unique = true
		default:
			return col, nil
		}
	}
}

func (p *Parser) parseInsert() (ast.Statement, error) {
	stmt := &ast.InsertStatement{}

	// INSERT
	p.nextToken()
	if err := p.expect(lexer.INTO); err != nil {
		return nil, err
	}

	name, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	if err := p.expect(lexer.PAREN_OPEN); err != nil {
		return nil, err
	}
	for {
		col, err := p.parseIdentifier("column name")
		if err != nil {
			return nil, err
		}
		stmt.Columns = append(stmt.Columns, col)
		if p.curTok.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}
	if err := p.expect(lexer.PAREN_CLOSE); err != nil {
		return nil, err
	}

	if err := p.expect(lexer.VALUES); err != nil {
		return nil, err
	}

	if err := p.expect(lexer.PAREN_OPEN); err != nil {
		return nil, err
	}
	for {
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		stmt.Values = append(stmt.Values, lit)
		if p.curTok.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}
	if err := p.expect(lexer.PAREN_CLOSE); err != nil {
		return nil, err
	}

	if len(stmt.Columns) != len(stmt.Values) {
		return nil, errors.NewParseError("INSERT has %d columns but %d values", len(stmt.Columns), len(stmt.Values))
	}

	return stmt, nil
}

func (p *Parser) parseSelect() (ast.Statement, error) {
	stmt := &ast.SelectStatement{}

	// SELECT
	p.nextToken()

	// Only * is supported
	if p.curTok.Type != lexer.ASTERISK {
		return nil, p.errorf("expected *, got %q", p.curTok.Literal)
	}
	p.nextToken()

	if err := p.expect(lexer.FROM); err != nil {
		return nil, err
	}

	name, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	// WHERE (Optional)
	if p.curTok.Type == lexer.WHERE {
		p.nextToken()
		where, err := p.parseConditions()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	return stmt, nil
}

func (p *Parser) parseUpdate() (ast.Statement, error) {
	stmt := &ast.UpdateStatement{}

	// UPDATE
	p.nextToken()

	name, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	if err := p.expect(lexer.SET); err != nil {
		return nil, err
	}
	for {
		a, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		stmt.Set = append(stmt.Set, a)
		if p.curTok.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}

	if err := p.expect(lexer.WHERE); err != nil {
		return nil, err
	}
	where, err := p.parseConditions()
	if err != nil {
		return nil, err
	}
	stmt.Where = where

	return stmt, nil
}

func (p *Parser) parseDelete() (ast.Statement, error) {
	stmt := &ast.DeleteStatement{}

	// DELETE
	p.nextToken()
	if err := p.expect(lexer.FROM); err != nil {
		return nil, err
	}

	name, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}
	stmt.TableName = name

	// WHERE is mandatory: deletes address a single row by primary key
	if err := p.expect(lexer.WHERE); err != nil {
		return nil, err
	}
	where, err := p.parseConditions()
	if err != nil {
		return nil, err
	}
	stmt.Where = where

	return stmt, nil
}

func (p *Parser) parseJoin() (ast.Statement, error) {
	stmt := &ast.JoinStatement{}

	// JOIN
	p.nextToken()

	left, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}
	right, err := p.parseIdentifier("table name")
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.ON); err != nil {
		return nil, err
	}
	column, err := p.parseIdentifier("column name")
	if err != nil {
		return nil, err
	}

	stmt.Left, stmt.Right, stmt.Column = left, right, column
	return stmt, nil
}

// parseConditions parses "c = v [AND c = v ...]"
func (p *Parser) parseConditions() ([]*ast.Assignment, error) {
	var list []*ast.Assignment
	for {
		a, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		list = append(list, a)
		if p.curTok.Type != lexer.AND {
			return list, nil
		}
		p.nextToken()
	}
}

func (p *Parser) parseAssignment() (*ast.Assignment, error) {
	col, err := p.parseIdentifier("column name")
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.EQUALS); err != nil {
		return nil, err
	}
	val, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Column: col, Value: val}, nil
}

func (p *Parser) parseIdentifier(what string) (*ast.Identifier, error) {
	if !p.curTokIsWord() {
		return nil, p.errorf("expected %s, got %q", what, p.curTok.Literal)
	}
	id := &ast.Identifier{TokenLiteralValue: p.curTok.Literal, Value: p.curTok.Literal}
	p.nextToken()
	return id, nil
}

// curTokIsWord reports whether the current token can stand for a name.
// Keywords are only reserved where the grammar expects them.
func (p *Parser) curTokIsWord() bool {
	return p.curTok.Type == lexer.IDENTIFIER || p.curTok.Type.IsKeyword()
}

// parseLiteral accepts quoted and bare values. Anything that reads as an
// integer becomes an integer literal, quoted or not.
func (p *Parser) parseLiteral() (*ast.Literal, error) {
	switch {
	case p.curTokIsWord(), p.curTok.Type == lexer.STRING, p.curTok.Type == lexer.NUMBER, p.curTok.Type == lexer.WORD:
		raw := p.curTok.Literal
		p.nextToken()
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return &ast.Literal{TokenLiteralValue: raw, Value: n, Kind: ast.LiteralInt}, nil
		}
		return &ast.Literal{TokenLiteralValue: raw, Value: raw, Kind: ast.LiteralText}, nil
	default:
		return nil, p.errorf("expected value, got %q", p.curTok.Literal)
	}
}

func (p *Parser) expect(tt lexer.TokenType) error {
	if p.curTok.Type != tt {
		return p.errorf("expected %s, got %q", tt, p.curTok.Literal)
	}
	p.nextToken()
	return nil
}

func (p *Parser) errorf(format string, args ...any) *errors.ParseError {
	reason := fmt.Sprintf(format, args...)
	if p.curTok.Type == lexer.EOF {
		return &errors.ParseError{Reason: reason}
	}
	return &errors.ParseError{Reason: reason, Line: p.curTok.Line, Column: p.curTok.Column}
}
