package main

import "github.com/gaurav-prasanna/pdfpress/cmd"

func main() {
	cmd.Execute()
}
