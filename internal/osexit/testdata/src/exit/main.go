package main

import (
	"fmt"
	"os"
)

func helper() {
	// Вне main прямой вызов допустим.
	os.Exit(2)
}

func main() {
	fmt.Println("start")
	defer helper()
	os.Exit(1) // want "direct os.Exit call in main function"
	os.Exit(0) // want "direct os.Exit call in main function"
}
