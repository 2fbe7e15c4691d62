package main

import (
	"fmt"
	"time"

	"golox/internal"
)

var source = `
var a = 1;
while (a < 10000000) {
    a = a + 1;
}
print a;
`

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func main() {
	start := time.Now()
	if err := internal.RunSourceWithPrinter(source, stdPrinter{}); err != nil {
		fmt.Println(err)
	}
	fmt.Println("Time elapsed is:", time.Since(start))
}
