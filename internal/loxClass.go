package internal

import "fmt"

type loxClass struct {
	name       string
	superclass *loxClass
	methods    map[string]*loxFunction
}

func (c *loxClass) findMethod(name string) *loxFunction {
	if method, ok := c.methods[name]; ok {
		return method
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

func (c *loxClass) arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.arity()
	}
	return 0
}

// call creates an instance and runs init on it, whatever init returns
// the result is the instance
func (c *loxClass) call(exec *exec, arguments []interface{}) interface{} {
	obj := &loxInstance{class: c, fields: make(map[string]interface{})}
	if init := c.findMethod("init"); init != nil {
		init.bind(obj).call(exec, arguments)
	}
	return obj
}

func (c *loxClass) String() string {
	if c.superclass != nil {
		return fmt.Sprintf("<class %s extends %s>", c.name, c.superclass.name)
	}
	return fmt.Sprintf("<class %s>", c.name)
}
