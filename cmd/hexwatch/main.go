// hexwatch is a watch face whose background colour is the current time read as a hex triple.
package main

import "github.com/isabelacmor/hexwatch/internal/cli"

func main() {
	cli.Execute()
}
