package internal

import "fmt"

type loxBool bool

func (c loxBool) String() string {
	return fmt.Sprintf("%v", bool(c))
}
