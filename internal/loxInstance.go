package internal

import "fmt"

type loxInstance struct {
	class  *loxClass
	fields map[string]interface{}
}

func (o *loxInstance) get(tk *Token) (interface{}, error) {
	if val, ok := o.fields[tk.Lexeme]; ok {
		return val, nil
	}
	if method := o.class.findMethod(tk.Lexeme); method != nil {
		return method.bind(o), nil
	}
	return nil, undefinedProperty(tk)
}

func (o *loxInstance) set(name *Token, value interface{}) {
	o.fields[name.Lexeme] = value
}

func (o *loxInstance) String() string {
	return fmt.Sprintf("<instance %s>", o.class.name)
}

func undefinedProperty(name *Token) error {
	return &RuntimeError{
		Kind:    ErrUndefinedProperty,
		Line:    name.Line,
		Message: fmt.Sprintf("Undefined property '%s'.", name.Lexeme),
	}
}
