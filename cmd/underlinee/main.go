// underlinee inserts decorative underline comments below selected text.
package main

import "github.com/thirteen37/underlinee/internal/cmd"

func main() {
	cmd.Execute()
}
