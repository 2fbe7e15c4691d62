package internal

import "errors"

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

type callStack struct {
	function string
	kind     functionKind
}

type classContext struct {
	name          string
	hasSuperclass bool
}

// parser stores parser data
type parser struct {
	current int

	cls     []*callStack
	classes []*classContext

	state *interpreterState
}

const maxFunctionParams = 255

var (
	errExpectedFunctionName = errors.New("Expect function name.")
	errExpectedMethodName   = errors.New("Expect method name.")
	errExpectedParenAfterFn = errors.New("Expect '(' after function name.")
	errExpectedBodyFn       = errors.New("Expect '{' before function body.")
	errExpectedParenIf      = errors.New("Expect '(' after 'if'.")
	errUnclosedIfCondition  = errors.New("Expect ')' after if condition.")
	errExpectedParenWhile   = errors.New("Expect '(' after 'while'.")
	errUnclosedWhile        = errors.New("Expect ')' after condition.")
	errExpectedParenFor     = errors.New("Expect '(' after 'for'.")
	errUnclosedForClauses   = errors.New("Expect ')' after for clauses.")
)

func (p *parser) getParsingContext() *callStack {
	return p.cls[len(p.cls)-1]
}

func (p *parser) enterFunction(name string, kind functionKind) {
	p.cls = append(p.cls, &callStack{
		function: name,
		kind:     kind,
	})
}

func (p *parser) leaveFunction() {
	p.cls = p.cls[:len(p.cls)-1]
}

func (p *parser) enterClass(name string, hasSuperclass bool) {
	p.classes = append(p.classes, &classContext{
		name:          name,
		hasSuperclass: hasSuperclass,
	})
}

func (p *parser) leaveClass() {
	p.classes = p.classes[:len(p.classes)-1]
}

func (p *parser) currentClass() *classContext {
	if len(p.classes) == 0 {
		return nil
	}
	return p.classes[len(p.classes)-1]
}

func (p *parser) parse() {
	p.cls = make([]*callStack, 0)
	p.enterFunction("", fnNone)
	defer p.leaveFunction()
	for !p.isAtEnd() {
		// A statement that failed to parse comes back as nil, its error
		// is already recorded
		if st := p.declaration(); st != nil {
			p.state.stmts = append(p.state.stmts, st)
		}
	}
}

// declaration parses one declaration and on failure synchronizes to the
// next statement boundary
func (p *parser) declaration() (s Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*ParseError); !ok {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	if p.match(tkClass) {
		return p.class()
	}
	if p.match(tkFun) {
		return p.function(fnFunction)
	}
	if p.match(tkVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) class() Stmt {
	name := p.consume(tkIdentifier, errExpectedClassName)

	var superclass *variableExpr
	if p.match(tkLess) {
		class := p.consume(tkIdentifier, errExpectedSuperclassName)
		if class.Lexeme == name.Lexeme {
			p.report(class, ErrInvalidContext, errInheritSelf)
		}
		superclass = &variableExpr{
			name: class,
		}
	}

	p.enterClass(name.Lexeme, superclass != nil)
	defer p.leaveClass()

	p.consume(tkLeftBrace, errExpectedClassBody)

	var methods []*functionStmt
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		methods = append(methods, p.function(fnMethod))
	}

	p.consume(tkRightBrace, errUnclosedClassBody)

	return &classStmt{
		name:       name,
		superclass: superclass,
		methods:    methods,
	}
}

func (p *parser) function(kind functionKind) *functionStmt {
	nameErr := errExpectedFunctionName
	if kind == fnMethod {
		nameErr = errExpectedMethodName
	}
	name := p.consume(tkIdentifier, nameErr)
	if kind == fnMethod && name.Lexeme == "init" {
		kind = fnInitializer
	}

	p.enterFunction(name.Lexeme, kind)
	defer p.leaveFunction()

	p.consume(tkLeftParen, errExpectedParenAfterFn)

	var params []*Token
	if !p.check(tkRightParen) {
		for {
			if len(params) >= maxFunctionParams {
				p.report(p.peek(), ErrInvalidContext, errMaxParameters)
			}
			params = append(params, p.consume(tkIdentifier, errExpectedParamName))
			if !p.match(tkComma) {
				break
			}
		}
	}
	p.consume(tkRightParen, errUnclosedParameters)

	p.consume(tkLeftBrace, errExpectedBodyFn)
	body := p.block()

	return &functionStmt{
		name:   name,
		params: params,
		body:   body,
	}
}

func (p *parser) varDeclaration() Stmt {
	name := p.consume(tkIdentifier, errExpectedVariableName)

	var init Expr
	if p.match(tkEqual) {
		init = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolonVar)

	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() Stmt {
	if p.match(tkFor) {
		return p.forLoop()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkPrint) {
		return p.printStmt()
	}
	if p.match(tkReturn) {
		return p.ret()
	}
	if p.match(tkWhile) {
		return p.while()
	}
	if p.match(tkLeftBrace) {
		return &blockStmt{stmts: p.block()}
	}
	return p.expressionStmt()
}

// forLoop desugars into a while loop wrapped in a block holding the
// initializer
func (p *parser) forLoop() Stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, errExpectedParenFor)

	var init Stmt
	if p.match(tkSemicolon) {
		init = nil
	} else if p.match(tkVar) {
		init = p.varDeclaration()
	} else {
		init = p.expressionStmt()
	}

	var cond Expr
	if !p.check(tkSemicolon) {
		cond = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolonLoop)

	var inc Expr
	if !p.check(tkRightParen) {
		inc = p.expression()
	}
	p.consume(tkRightParen, errUnclosedForClauses)

	body := p.statement()

	if inc != nil {
		body = &blockStmt{
			stmts: []Stmt{body, &expressionStmt{expression: inc}},
		}
	}
	if cond == nil {
		cond = &literalExpr{value: loxBool(true)}
	}
	body = &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
	if init != nil {
		body = &blockStmt{
			stmts: []Stmt{init, body},
		}
	}
	return body
}

func (p *parser) ifStmt() Stmt {
	st := &ifStmt{
		keyword: p.previous(),
	}

	p.consume(tkLeftParen, errExpectedParenIf)
	st.condition = p.expression()
	p.consume(tkRightParen, errUnclosedIfCondition)

	st.thenBranch = p.statement()
	if p.match(tkElse) {
		st.elseBranch = p.statement()
	}

	return st
}

func (p *parser) printStmt() Stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolonValue)
	return &printStmt{
		keyword:    keyword,
		expression: value,
	}
}

func (p *parser) ret() Stmt {
	keyword := p.previous()
	pc := p.getParsingContext()
	if pc.kind == fnNone {
		p.report(keyword, ErrInvalidContext, errTopLevelReturn)
	}

	var value Expr
	if !p.check(tkSemicolon) {
		if pc.kind == fnInitializer {
			p.report(keyword, ErrInvalidContext, errInitializerReturn)
		}
		value = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolonRet)

	return &returnStmt{
		keyword: keyword,
		value:   value,
	}
}

func (p *parser) while() Stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, errExpectedParenWhile)
	cond := p.expression()
	p.consume(tkRightParen, errUnclosedWhile)
	body := p.statement()
	return &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
}

func (p *parser) block() []Stmt {
	stmts := make([]Stmt, 0)
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		if st := p.declaration(); st != nil {
			stmts = append(stmts, st)
		}
	}
	p.consume(tkRightBrace, errUnclosedBlock)
	return stmts
}

func (p *parser) expressionStmt() Stmt {
	expr := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolonExpr)
	return &expressionStmt{
		expression: expr,
	}
}

func (p *parser) expression() Expr {
	return p.assignment()
}

func (p *parser) assignment() Expr {
	expr := p.or()
	if p.match(tkEqual) {
		equal := p.previous()
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}
		} else if get, isGet := expr.(*getExpr); isGet {
			return &setExpr{
				object: get.object,
				name:   get.name,
				value:  value,
			}
		}

		p.report(equal, ErrInvalidAssignmentTarget, errInvalidAssignment)
	}
	return expr
}

func (p *parser) or() Expr {
	expr := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() Expr {
	expr := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() Expr {
	expr := p.comparison()
	for p.match(tkEqualEqual, tkBangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() Expr {
	expr := p.addition()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.addition()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) addition() Expr {
	expr := p.multiplication()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.multiplication()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) multiplication() Expr {
	expr := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() Expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.call()
}

func (p *parser) call() Expr {
	expr := p.primary()
	for {
		if p.match(tkLeftParen) {
			expr = p.finishCall(expr)
		} else if p.match(tkDot) {
			name := p.consume(tkIdentifier, errExpectedProp)
			expr = &getExpr{
				object: expr,
				name:   name,
			}
		} else {
			break
		}
	}
	return expr
}

func (p *parser) finishCall(callee Expr) Expr {
	arguments := make([]Expr, 0)
	if !p.check(tkRightParen) {
		for {
			if len(arguments) >= maxFunctionParams {
				p.report(p.peek(), ErrInvalidContext, errMaxArguments)
			}
			arguments = append(arguments, p.expression())
			if !p.match(tkComma) {
				break
			}
		}
	}
	paren := p.consume(tkRightParen, errUnclosedArguments)
	return &callExpr{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

func (p *parser) primary() Expr {
	if p.match(tkFalse) {
		return &literalExpr{value: loxBool(false)}
	}
	if p.match(tkTrue) {
		return &literalExpr{value: loxBool(true)}
	}
	if p.match(tkNil) {
		return &literalExpr{value: nil}
	}
	if p.match(tkNumber, tkString) {
		return &literalExpr{value: p.previous().Literal}
	}
	if p.match(tkThis) {
		keyword := p.previous()
		if p.currentClass() == nil {
			p.report(keyword, ErrInvalidContext, errThisOutsideClass)
		}
		return &thisExpr{keyword: keyword}
	}
	if p.match(tkSuper) {
		return p.superExpr()
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{expression: expr}
	}

	p.errorAt(p.peek(), ErrUnexpectedToken, errExpectExpression)
	return nil
}

func (p *parser) superExpr() Expr {
	keyword := p.previous()
	if class := p.currentClass(); class == nil {
		p.report(keyword, ErrInvalidContext, errSuperOutsideClass)
	} else if !class.hasSuperclass {
		p.report(keyword, ErrInvalidContext, errSuperWithoutSuperclass)
	}
	p.consume(tkDot, errExpectedDot)
	method := p.consume(tkIdentifier, errExpectedSuperMethod)
	return &superExpr{
		keyword: keyword,
		method:  method,
	}
}

// report records an error without aborting the current statement
func (p *parser) report(tk *Token, kind, err error) {
	p.state.setError(newParseError(tk, kind, err))
}

// errorAt records an error and abandons the current statement
func (p *parser) errorAt(tk *Token, kind, err error) {
	p.state.fatalError(newParseError(tk, kind, err))
}

func newParseError(tk *Token, kind, err error) *ParseError {
	return &ParseError{
		Kind:    kind,
		Line:    tk.Line,
		Lexeme:  tk.Lexeme,
		AtEnd:   tk.Type == tkEOF,
		Message: err.Error(),
	}
}

func (p *parser) consume(tk TokenType, err error) *Token {
	if p.check(tk) {
		return p.advance()
	}

	p.errorAt(p.peek(), ErrUnexpectedToken, err)
	return nil
}

func (p *parser) advance() *Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...TokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(token TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == token
}

func (p *parser) peek() *Token {
	return &p.state.tokens[p.current]
}

func (p *parser) previous() *Token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == tkEOF
}

func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == tkSemicolon {
			return
		}
		switch p.peek().Type {
		case tkClass, tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		}

		p.advance()
	}
}
